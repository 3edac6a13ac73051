package entity

import "time"

// Cooperative representa una organización productora (raíz de agregado).
// El email es único en todo el sistema; los demás campos de contacto son opcionales.
// Image guarda la ruta relativa bajo el directorio público de uploads;
// la URL completa se resuelve al serializar la respuesta.
type Cooperative struct {
	ID          string
	Nom         string // nombre público (contrato de API heredado en francés)
	Email       string
	Description string
	Adresse     string
	Image       string
	Contact     string // persona de contacto
	Tele        string
	Instagram   string
	Facebook    string
	Whatsapp    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
