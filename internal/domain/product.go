package domain

import "time"

// Product описывает товар каталога.
// SKU неизменен после создания и однозначно идентифицирует товар.
type Product struct {
	SKU        string
	Name       string
	PriceCents int64 // Цена хранится в центах
	Quantity   int32
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewProduct(sku, name string, priceCents int64, quantity int32) *Product {
	return &Product{
		SKU:        sku,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
	}
}
