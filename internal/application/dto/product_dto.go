package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y Quantity llegan
// como texto (los formularios multipart no tipan números); el caso de uso los
// parsea y valida, acumulando errores por campo.
type CreateProductRequest struct {
	CooperativeID string `json:"cooperative_id" form:"cooperative_id"`
	Name          string `json:"name" form:"name"`
	Description   string `json:"description" form:"description"`
	Price         string `json:"price" form:"price"`
	Quantity      string `json:"quantity" form:"quantity"`
}

// UpdateProductRequest actualización parcial: los campos ausentes quedan intactos.
type UpdateProductRequest struct {
	CooperativeID *string `json:"cooperative_id" form:"cooperative_id"`
	Name          *string `json:"name" form:"name"`
	Description   *string `json:"description" form:"description"`
	Price         *string `json:"price" form:"price"`
	Quantity      *string `json:"quantity" form:"quantity"`
}

// CooperativeRefResponse subconjunto público de la cooperativa dueña dentro de
// una respuesta de producto. Tele y Whatsapp se resuelven con fallback mutuo
// una sola vez al serializar; Nom por defecto es "Unknown" si la relación falta.
type CooperativeRefResponse struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Email       string `json:"email"`
	Tele        string `json:"tele"`
	Whatsapp    string `json:"whatsapp"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductResponse salida de un producto con su cooperativa. Image es URL absoluta.
type ProductResponse struct {
	ID            string                  `json:"id"`
	CooperativeID string                  `json:"cooperative_id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Image         string                  `json:"image"`
	Price         decimal.Decimal         `json:"price"`
	Quantity      int                     `json:"quantity"`
	Cooperative   *CooperativeRefResponse `json:"cooperative"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
