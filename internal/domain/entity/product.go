package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible que pertenece a exactamente una cooperativa.
// Price se maneja con semántica fija de 2 decimales; Quantity nunca es negativa.
type Product struct {
	ID            string
	CooperativeID string
	Name          string
	Description   string
	Image         string // ruta relativa bajo uploads
	Price         decimal.Decimal
	Quantity      int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Cooperative es la proyección pública de la cooperativa dueña, cargada
	// por el repositorio en lecturas. Nil si la relación no se resolvió.
	Cooperative *CooperativeRef
}

// CooperativeRef subconjunto público de la cooperativa dueña adjunto a un producto.
// Los valores por defecto para relación ausente se resuelven una sola vez al
// serializar (nunca campo por campo en los handlers).
type CooperativeRef struct {
	ID          string
	Nom         string
	Email       string
	Description string
	Image       string
	Tele        string
	Whatsapp    string
}
