package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Price             decimal.Decimal `json:"price"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	CostBase          decimal.Decimal `json:"costBase"`
	UtilityPercentage decimal.Decimal `json:"utilityPercentage"`
	IncludeIVA        bool            `json:"includeIVA"`
	Discounts         decimal.Decimal `json:"discounts"`
	Stock             decimal.Decimal `json:"stock"`
	MinStock          decimal.Decimal `json:"minStock"`
	Supplier          string          `json:"supplier,omitempty"`
	Brand             string          `json:"brand,omitempty"`
	Category          string          `json:"category,omitempty"`
	Department        string          `json:"department,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (actualización completa).
type UpdateProductRequest = CreateProductRequest

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID                int64           `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	CostBase          decimal.Decimal `json:"costBase"`
	UtilityPercentage decimal.Decimal `json:"utilityPercentage"`
	IncludeIVA        bool            `json:"includeIVA"`
	Discounts         decimal.Decimal `json:"discounts"`
	Stock             decimal.Decimal `json:"stock"`
	MinStock          decimal.Decimal `json:"minStock"`
	Supplier          string          `json:"supplier,omitempty"`
	Brand             string          `json:"brand,omitempty"`
	Category          string          `json:"category,omitempty"`
	Department        string          `json:"department,omitempty"`
}
