package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
)

// CheckupHandler maneja las peticiones HTTP de exámenes de la vista.
type CheckupHandler struct {
	uc *tenant.CheckupUseCase
}

// NewCheckupHandler construye el handler.
func NewCheckupHandler(uc *tenant.CheckupUseCase) *CheckupHandler {
	return &CheckupHandler{uc: uc}
}

// Create POST /api/checkups
func (h *CheckupHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	checkup, err := h.uc.Create(c.Context(), GetPrincipal(c), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checkup)
}

// GetByID GET /api/checkups/:id
func (h *CheckupHandler) GetByID(c *fiber.Ctx) error {
	checkup, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(checkup)
}

// ListByCustomer GET /api/customers/:id/checkups
func (h *CheckupHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.GetByCustomerID(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/checkups/:id
func (h *CheckupHandler) Update(c *fiber.Ctx) error {
	var in dto.CheckupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	checkup, err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(checkup)
}

// Delete DELETE /api/checkups/:id — 409 si hay pedidos que lo referencian.
func (h *CheckupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
