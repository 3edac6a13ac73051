package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/usecase"
	"github.com/coopmarket/coopmarket-api/internal/domain"
)

// CooperativeHandler maneja las rutas públicas de cooperativas y su CRUD admin.
type CooperativeHandler struct {
	uc        *usecase.CooperativeUseCase
	productUC *usecase.ProductUseCase
}

// NewCooperativeHandler construye el handler.
func NewCooperativeHandler(uc *usecase.CooperativeUseCase, productUC *usecase.ProductUseCase) *CooperativeHandler {
	return &CooperativeHandler{uc: uc, productUC: productUC}
}

// formImage extrae el archivo "image" de un formulario multipart, si viene.
func formImage(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

// List godoc
// @Summary      Listar cooperativas (público)
// @Tags         cooperatives
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/cooperatives [get]
func (h *CooperativeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Featured godoc
// @Summary      Cooperativas destacadas (4 más recientes, público)
// @Tags         cooperatives
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/cooperatives/featured [get]
func (h *CooperativeHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// GetByID godoc
// @Summary      Obtener cooperativa por ID (público)
// @Tags         cooperatives
// @Produce      json
// @Param        id   path  string  true  "ID de la cooperativa"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cooperatives/{id} [get]
func (h *CooperativeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "Cooperative not found")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Products godoc
// @Summary      Productos de una cooperativa (público)
// @Tags         cooperatives
// @Produce      json
// @Param        id   path  string  true  "ID de la cooperativa"
// @Success      200  {object}  dto.ListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cooperatives/{id}/products [get]
func (h *CooperativeHandler) Products(c *fiber.Ctx) error {
	products, coop, err := h.productUC.ListByCooperative(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Cooperative not found")
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"data":        products,
		"cooperative": coop,
		"count":       len(products),
	})
}

// Create godoc
// @Summary      Crear cooperativa (admin)
// @Tags         cooperatives
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.DataResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/cooperatives [post]
func (h *CooperativeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCooperativeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), in, formImage(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar cooperativa (admin, parcial)
// @Tags         cooperatives
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID de la cooperativa"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/cooperatives/{id} [put]
func (h *CooperativeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCooperativeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, formImage(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "Cooperative not found")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar cooperativa (admin; sus productos caen en cascada)
// @Tags         cooperatives
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cooperativa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/cooperatives/{id} [delete]
func (h *CooperativeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Cooperative not found")
		}
		return respondError(c, err)
	}
	return respondMessage(c, "Cooperative deleted successfully")
}
