package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/auth"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/session"
)

// AuthHandler maneja login, logout, refresh y estado de los dos ejes.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *session.Store
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

// StoreLogin POST /api/auth/store/login
func (h *AuthHandler) StoreLogin(c *fiber.Ctx) error {
	var in dto.StoreLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.LoginStore(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdminLogin POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.LoginSuperAdmin(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Status GET /api/auth/status
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context(), GetPrincipal(c), GetStoreSessionID(c), GetAdminSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StoreLogout POST /api/auth/store/logout — idempotente.
func (h *AuthHandler) StoreLogout(c *fiber.Ctx) error {
	if err := h.sessions.LogoutStore(c.Context(), GetStoreSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// AdminLogout POST /api/auth/admin/logout — idempotente.
func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	if err := h.sessions.LogoutSuperAdmin(c.Context(), GetAdminSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// LogoutAll POST /api/auth/logout — cierra ambos ejes.
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	if err := h.sessions.LogoutAll(c.Context(), GetStoreSessionID(c), GetAdminSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// StoreRefresh POST /api/auth/store/refresh — keep-alive explícito.
func (h *AuthHandler) StoreRefresh(c *fiber.Ctx) error {
	sess, err := h.sessions.RefreshStore(c.Context(), GetStoreSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no hay sesión de tienda viva"})
	}
	return c.JSON(dto.SessionResponse{ID: sess.ID, Timestamp: sess.Timestamp, ExpiresAt: sess.ExpiresAt})
}

// AdminRefresh POST /api/auth/admin/refresh
func (h *AuthHandler) AdminRefresh(c *fiber.Ctx) error {
	sess, err := h.sessions.RefreshSuperAdmin(c.Context(), GetAdminSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no hay sesión de super admin viva"})
	}
	return c.JSON(dto.SessionResponse{ID: sess.ID, Timestamp: sess.Timestamp, ExpiresAt: sess.ExpiresAt})
}
