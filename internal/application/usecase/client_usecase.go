package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// ClientUseCase operaciones de catálogo sobre clientes habituales.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase crea el caso de uso de clientes.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

func (uc *ClientUseCase) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		CUIL:      req.CUIL,
		Phone:     req.Phone,
		Address:   req.Address,
		Photo:     req.Photo,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) Update(ctx context.Context, id int64, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.DNI = req.DNI
	client.CUIL = req.CUIL
	client.Phone = req.Phone
	client.Address = req.Address
	client.Photo = req.Photo

	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

func (uc *ClientUseCase) Get(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		DNI:       c.DNI,
		CUIL:      c.CUIL,
		Phone:     c.Phone,
		Address:   c.Address,
		Photo:     c.Photo,
	}
}
