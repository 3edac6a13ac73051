package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coopmarket/coopmarket-api/internal/application/dto"
	"github.com/coopmarket/coopmarket-api/internal/application/usecase"
	"github.com/coopmarket/coopmarket-api/internal/domain"
)

// ProductHandler maneja las rutas públicas de productos y su CRUD manager.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos con su cooperativa (público)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// Featured godoc
// @Summary      Productos destacados (6 más recientes, público)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, len(out))
}

// GetByID godoc
// @Summary      Obtener producto por ID (público)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "Product not found")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear producto (manager)
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.DataResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/manager/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Actualizar producto (manager, parcial)
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/manager/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: "Invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, formImage(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "Product not found")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar producto (manager)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Product not found")
		}
		return respondError(c, err)
	}
	return respondMessage(c, "Product deleted successfully")
}
