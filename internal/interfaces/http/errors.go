package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/domain"
)

// duplicateCustomerResponse cuerpo 409 que nombra al cliente en conflicto para
// que la UI pueda ofrecer abrir su ficha.
type duplicateCustomerResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	ExistingID   string `json:"existing_id"`
	ExistingName string `json:"existing_name"`
	Phone        string `json:"phone"`
}

// referentialConflictResponse cuerpo 409 con el conteo de pedidos que impide
// borrar un examen.
type referentialConflictResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Orders  int    `json:"orders"`
}

// writeError traduce la taxonomía de errores del dominio a HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var dup *domain.DuplicateCustomerError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(duplicateCustomerResponse{
			Code:         "DUPLICATE_CUSTOMER",
			Message:      dup.Error(),
			ExistingID:   dup.ExistingID,
			ExistingName: dup.ExistingName,
			Phone:        dup.Phone,
		})
	}
	var ref *domain.ReferentialConflictError
	if errors.As(err, &ref) {
		return c.Status(fiber.StatusConflict).JSON(referentialConflictResponse{
			Code:    "REFERENTIAL_CONFLICT",
			Message: ref.Error(),
			Orders:  ref.Orders,
		})
	}
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "operación no permitida para el principal actual"})
	case errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, vuelva a autenticarse"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// targetStoreID resuelve la tienda objetivo de una petición: la de la sesión
// de tienda si existe; si no, el query param store_id (vía del super admin
// para leer una tienda concreta).
func targetStoreID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p.HasStoreSession() {
		return p.StoreID
	}
	return c.Query("store_id")
}
