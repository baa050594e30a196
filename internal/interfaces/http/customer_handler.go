package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
)

// CustomerHandler maneja las peticiones HTTP de clientes (por tienda).
type CustomerHandler struct {
	uc *tenant.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *tenant.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.Context(), GetPrincipal(c), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers — admite ?phone= y ?name= como búsquedas.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	storeID := targetStoreID(c)
	if phone := c.Query("phone"); phone != "" {
		customer, err := h.uc.FindByPhone(c.Context(), p, phone, storeID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(customer)
	}
	if name := c.Query("name"); name != "" {
		list, err := h.uc.SearchByName(c.Context(), p, name, storeID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.uc.GetAll(c.Context(), p, storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), targetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}
