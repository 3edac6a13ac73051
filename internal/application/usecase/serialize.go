package usecase

import (
	"strings"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
)

// Serialización única por entidad, compartida por todos los handlers.
// Aquí se resuelven de una sola vez los valores por defecto de la relación
// producto→cooperativa y las URLs absolutas de imágenes.

// imageURL resuelve la ruta relativa guardada a URL absoluta; vacío queda vacío.
func imageURL(baseURL, relPath string) string {
	if relPath == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(relPath, "/")
}

func toCooperativeResponse(c *entity.Cooperative, baseURL string) *dto.CooperativeResponse {
	if c == nil {
		return nil
	}
	return &dto.CooperativeResponse{
		ID:          c.ID,
		Nom:         c.Nom,
		Email:       c.Email,
		Description: c.Description,
		Adresse:     c.Adresse,
		Image:       imageURL(baseURL, c.Image),
		Contact:     c.Contact,
		Tele:        c.Tele,
		Instagram:   c.Instagram,
		Facebook:    c.Facebook,
		Whatsapp:    c.Whatsapp,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toFeaturedCooperativeResponse(c *entity.Cooperative, baseURL string) dto.FeaturedCooperativeResponse {
	return dto.FeaturedCooperativeResponse{
		ID:          c.ID,
		Nom:         c.Nom,
		Description: c.Description,
		Image:       imageURL(baseURL, c.Image),
	}
}

// toCooperativeRefResponse aplica los defaults del contrato: nom "Unknown" si la
// relación falta, y fallback mutuo tele↔whatsapp.
func toCooperativeRefResponse(ref *entity.CooperativeRef, baseURL string) *dto.CooperativeRefResponse {
	if ref == nil {
		return &dto.CooperativeRefResponse{Nom: "Unknown"}
	}
	tele := ref.Tele
	if tele == "" {
		tele = ref.Whatsapp
	}
	whatsapp := ref.Whatsapp
	if whatsapp == "" {
		whatsapp = ref.Tele
	}
	return &dto.CooperativeRefResponse{
		ID:          ref.ID,
		Nom:         ref.Nom,
		Email:       ref.Email,
		Tele:        tele,
		Whatsapp:    whatsapp,
		Description: ref.Description,
		Image:       imageURL(baseURL, ref.Image),
	}
}

func toProductResponse(p *entity.Product, baseURL string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		CooperativeID: p.CooperativeID,
		Name:          p.Name,
		Description:   p.Description,
		Image:         imageURL(baseURL, p.Image),
		Price:         p.Price.Round(2),
		Quantity:      p.Quantity,
		Cooperative:   toCooperativeRefResponse(p.Cooperative, baseURL),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toUserResponse(u *entity.User, baseURL string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Adresse:   u.Adresse,
		Image:     imageURL(baseURL, u.Image),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
