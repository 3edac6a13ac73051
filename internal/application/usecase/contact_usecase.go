package usecase

import (
	"context"
	"fmt"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/domain"
	"github.com/coopmarket/coopmarket-api/internal/domain/repository"
)

// ContactUseCase formulario público de contacto: valida el mensaje y lo envía
// por correo a la cooperativa elegida o a la dirección de contacto del sitio.
type ContactUseCase struct {
	coopRepo     repository.CooperativeRepository
	mailer       ports.Mailer
	contactEmail string // destinatario por defecto cuando no se elige cooperativa
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(coopRepo repository.CooperativeRepository, mailer ports.Mailer, contactEmail string) *ContactUseCase {
	return &ContactUseCase{coopRepo: coopRepo, mailer: mailer, contactEmail: contactEmail}
}

// Send valida y envía el mensaje. El fallo del envío SMTP sí se propaga:
// el visitante debe saber que su mensaje no salió.
func (uc *ContactUseCase) Send(ctx context.Context, in dto.ContactRequest) error {
	vErr := domain.NewValidationError()
	if in.Name == "" {
		vErr.Add("name", "The name field is required.")
	}
	if in.Email == "" {
		vErr.Add("email", "The email field is required.")
	} else if !validEmail(in.Email) {
		vErr.Add("email", "The email must be a valid email address.")
	}
	if in.Message == "" {
		vErr.Add("message", "The message field is required.")
	}

	to := uc.contactEmail
	if in.CooperativeID != "" {
		coop, err := uc.coopRepo.GetByID(ctx, in.CooperativeID)
		if err != nil {
			return err
		}
		if coop == nil {
			vErr.Add("cooperative_id", "The selected cooperative id is invalid.")
		} else {
			to = coop.Email
		}
	}
	if vErr.HasErrors() {
		return vErr
	}

	subject := in.Subject
	if subject == "" {
		subject = fmt.Sprintf("Nouveau message de %s", in.Name)
	}
	return uc.mailer.Send(ports.ContactMessage{
		To:      to,
		ReplyTo: in.Email,
		Name:    in.Name,
		Subject: subject,
		Body:    in.Message,
	})
}
