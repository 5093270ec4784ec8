package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	id, type, point_of_sale, invoice_number, invoice_type, payment_method,
	invoice_date, customer_type, client_id, customer_name, customer_document,
	customer_cuit, customer_dni, customer_address, customer_phone,
	customer_without_client, total_net, total_iva, total_discount, total_final,
	created_at, updated_at`

// Create inserta la cabecera y asigna ID y timestamps.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (
			type, point_of_sale, invoice_number, invoice_type, payment_method,
			invoice_date, customer_type, client_id, customer_name,
			customer_document, customer_cuit, customer_dni, customer_address,
			customer_phone, customer_without_client, total_net, total_iva,
			total_discount, total_final, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		sale.Type, sale.PointOfSale, sale.InvoiceNumber, sale.InvoiceType, sale.PaymentMethod,
		sale.InvoiceDate, sale.CustomerType, sale.ClientID, sale.CustomerName,
		sale.CustomerDocument, sale.CustomerCUIT, sale.CustomerDNI, sale.CustomerAddress,
		sale.CustomerPhone, sale.CustomerWithoutClient, sale.TotalNet, sale.TotalIVA,
		sale.TotalDiscount, sale.TotalFinal,
	).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail inserta una línea de detalle y asigna su ID.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (
			sale_id, line_number, product_id, internal_code, description,
			quantity, unit_price, discount_rate, iva_rate, net_amount,
			iva_amount, discount_amount, total_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		detail.SaleID, detail.LineNumber, detail.ProductID, detail.InternalCode, detail.Description,
		detail.Quantity, detail.UnitPrice, detail.DiscountRate, detail.IVARate, detail.NetAmount,
		detail.IVAAmount, detail.DiscountAmount, detail.TotalAmount,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// GetDetails lista las líneas de una venta en orden de emisión.
func (r *SaleRepo) GetDetails(saleID int64) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, line_number, product_id, internal_code, description,
		       quantity, unit_price, discount_rate, iva_rate, net_amount,
		       iva_amount, discount_amount, total_amount
		FROM sale_details WHERE sale_id = $1 ORDER BY line_number`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(
			&d.ID, &d.SaleID, &d.LineNumber, &d.ProductID, &d.InternalCode, &d.Description,
			&d.Quantity, &d.UnitPrice, &d.DiscountRate, &d.IVARate, &d.NetAmount,
			&d.IVAAmount, &d.DiscountAmount, &d.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List devuelve las ventas más recientes con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT` + saleColumns + ` FROM sales ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

// NextInvoiceNumber calcula el próximo consecutivo de la serie (tipo, punto
// de venta). Dentro de una transacción de emisión el valor queda fijado por
// el insert que sigue; fuera de transacción es solo una vista previa.
func (r *SaleRepo) NextInvoiceNumber(saleType, pointOfSale string) (int64, error) {
	query := `
		SELECT COALESCE(MAX(invoice_number::bigint), 0) + 1
		FROM sales WHERE type = $1 AND point_of_sale = $2`
	var next int64
	if err := r.q.QueryRow(context.Background(), query, saleType, pointOfSale).Scan(&next); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return next, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.Type, &s.PointOfSale, &s.InvoiceNumber, &s.InvoiceType, &s.PaymentMethod,
		&s.InvoiceDate, &s.CustomerType, &s.ClientID, &s.CustomerName, &s.CustomerDocument,
		&s.CustomerCUIT, &s.CustomerDNI, &s.CustomerAddress, &s.CustomerPhone,
		&s.CustomerWithoutClient, &s.TotalNet, &s.TotalIVA, &s.TotalDiscount, &s.TotalFinal,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
