package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coopmarket/coopmarket-api/internal/application/usecase"
)

// DashboardHandler paneles admin y manager.
type DashboardHandler struct {
	uc      *usecase.DashboardUseCase
	baseURL string
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, baseURL string) *DashboardHandler {
	return &DashboardHandler{uc: uc, baseURL: baseURL}
}

// Admin godoc
// @Summary      Panel admin: conteos de usuarios, cooperativas y productos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.AdminSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Manager godoc
// @Summary      Panel manager: usuario autenticado y conteo de productos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/manager/dashboard [get]
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	out, err := h.uc.ManagerSummary(c.Context(), GetUserID(c), h.baseURL)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
