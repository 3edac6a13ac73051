package dto

import "time"

// CreateCooperativeRequest entrada para crear una cooperativa (JSON o multipart;
// la imagen llega como archivo aparte). Solo nom y email son obligatorios.
type CreateCooperativeRequest struct {
	Nom         string `json:"nom" form:"nom"`
	Email       string `json:"email" form:"email"`
	Description string `json:"description" form:"description"`
	Adresse     string `json:"adresse" form:"adresse"`
	Contact     string `json:"contact" form:"contact"`
	Tele        string `json:"tele" form:"tele"`
	Instagram   string `json:"instagram" form:"instagram"`
	Facebook    string `json:"facebook" form:"facebook"`
	Whatsapp    string `json:"whatsapp" form:"whatsapp"`
}

// UpdateCooperativeRequest actualización parcial: los campos ausentes quedan intactos.
type UpdateCooperativeRequest struct {
	Nom         *string `json:"nom" form:"nom"`
	Email       *string `json:"email" form:"email"`
	Description *string `json:"description" form:"description"`
	Adresse     *string `json:"adresse" form:"adresse"`
	Contact     *string `json:"contact" form:"contact"`
	Tele        *string `json:"tele" form:"tele"`
	Instagram   *string `json:"instagram" form:"instagram"`
	Facebook    *string `json:"facebook" form:"facebook"`
	Whatsapp    *string `json:"whatsapp" form:"whatsapp"`
}

// CooperativeResponse salida completa de una cooperativa. Image es URL absoluta.
type CooperativeResponse struct {
	ID          string    `json:"id"`
	Nom         string    `json:"nom"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Adresse     string    `json:"adresse"`
	Image       string    `json:"image"`
	Contact     string    `json:"contact"`
	Tele        string    `json:"tele"`
	Instagram   string    `json:"instagram"`
	Facebook    string    `json:"facebook"`
	Whatsapp    string    `json:"whatsapp"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeaturedCooperativeResponse proyección reducida para la portada (4 más recientes).
type FeaturedCooperativeResponse struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
