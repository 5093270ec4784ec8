// Package auth implementa autenticación y alta de usuarios de la aplicación.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	"github.com/tu-usuario/ventas-pos/pkg/jwt"
)

// UseCase login con bcrypt + JWT y alta de usuarios (solo admin vía ruta).
type UseCase struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtIssuer     string
	jwtExpMinutes int
}

// NewUseCase crea el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMinutes int) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		jwtExpMinutes: jwtExpMinutes,
	}
}

// Login valida credenciales y devuelve un token firmado.
// Un usuario deshabilitado no puede iniciar sesión aunque la clave sea válida.
func (uc *UseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, fmt.Errorf("%w: usuario deshabilitado", domain.ErrForbidden)
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.jwtExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Register da de alta un usuario con la clave hasheada. Rol vacío cae en user.
func (uc *UseCase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)

	existing, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hasheando la clave: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		Status:       "active",
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers devuelve todos los usuarios registrados, sin hashes.
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
