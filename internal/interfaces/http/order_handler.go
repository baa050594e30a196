package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
)

// OrderHandler maneja las peticiones HTTP de pedidos de gafas.
type OrderHandler struct {
	uc *tenant.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *tenant.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), GetPrincipal(c), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.Context(), GetPrincipal(c), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

// ListByCustomer GET /api/customers/:id/orders
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.GetByCustomerID(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

// UpdateStatus PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c), in.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SalesReport GET /api/reports/sales?start_date=&end_date=
func (h *OrderHandler) SalesReport(c *fiber.Ctx) error {
	rows, err := h.uc.SalesReport(c.Context(), GetPrincipal(c), targetStoreID(c),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}
