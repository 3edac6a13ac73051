package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/domain"
)

// Helpers del sobre de respuesta {success, data?, message?, errors?, count?}.

func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.DataResponse{Success: true, Data: data})
}

func respondDataMessage(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.DataResponse{Success: true, Data: data, Message: message})
}

func respondList(c *fiber.Ctx, data any, count int) error {
	return c.JSON(dto.ListResponse{Success: true, Data: data, Count: count})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// respondError mapea errores de dominio a estados HTTP. El catch-all 500 expone
// el mensaje crudo del error, comportamiento heredado del contrato existente.
func respondError(c *fiber.Ctx, err error) error {
	if vErr, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  vErr.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		// Carrera perdida contra la constraint única en un update: misma
		// respuesta 422 que produce la validación previa del create.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  map[string][]string{"email": {"The email has already been taken."}},
		})
	case errors.Is(err, domain.ErrNotFound):
		return respondNotFound(c, "Resource not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return respondNotFound(c, "User not found")
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Invalid credentials"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: err.Error()})
}
