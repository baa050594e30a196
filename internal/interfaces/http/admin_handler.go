package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/admin"
)

// AdminHandler vistas de supervisión que cruzan todas las tiendas.
// Solo lectura; la capa de aplicación exige sesión de super admin viva.
type AdminHandler struct {
	uc *admin.AggregationUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.AggregationUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Customers GET /api/admin/customers
func (h *AdminHandler) Customers(c *fiber.Ctx) error {
	list, err := h.uc.AllCustomers(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Checkups GET /api/admin/checkups
func (h *AdminHandler) Checkups(c *fiber.Ctx) error {
	list, err := h.uc.AllCheckups(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Orders GET /api/admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	list, err := h.uc.AllOrders(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// SalesReport GET /api/admin/reports/sales?start_date=&end_date=&store_ids=a,b
// Sin store_ids cubre todas las tiendas; consolidated=true combina las tiendas
// en una sola serie por día.
func (h *AdminHandler) SalesReport(c *fiber.Ctx) error {
	storeIDs := parseStoreIDs(c)
	if c.QueryBool("consolidated") {
		rows, err := h.uc.ConsolidatedSalesReport(c.Context(), GetPrincipal(c),
			c.Query("start_date"), c.Query("end_date"), storeIDs)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(rows)
	}
	rows, err := h.uc.SalesReportByStore(c.Context(), GetPrincipal(c),
		c.Query("start_date"), c.Query("end_date"), storeIDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// CustomersByStore GET /api/admin/summary/customers-by-store
func (h *AdminHandler) CustomersByStore(c *fiber.Ctx) error {
	rows, err := h.uc.CustomersByStore(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// CheckupsByStore GET /api/admin/summary/checkups-by-store
func (h *AdminHandler) CheckupsByStore(c *fiber.Ctx) error {
	rows, err := h.uc.CheckupsByStore(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// OrdersByStore GET /api/admin/summary/orders-by-store
func (h *AdminHandler) OrdersByStore(c *fiber.Ctx) error {
	rows, err := h.uc.OrdersByStore(c.Context(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// parseStoreIDs distingue "parámetro ausente" (nil: todas las tiendas) de
// "lista vacía" (slice vacío: ninguna seleccionada).
func parseStoreIDs(c *fiber.Ctx) []string {
	raw, ok := c.Queries()["store_ids"]
	if !ok {
		return nil
	}
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
