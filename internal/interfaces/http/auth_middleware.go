package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/session"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/pkg/jwt"
)

// Locals keys del principal y los IDs de sesión en Fiber.
const (
	LocalPrincipal    = "principal"
	LocalStoreSession = "store_session_id"
	LocalAdminSession = "admin_session_id"
)

// AuthMiddleware resuelve los DOS ejes de autenticación y deja el principal en
// c.Locals. El eje de tienda viaja en Authorization: Bearer y el de super
// admin en X-Admin-Token; cualquiera puede faltar. El middleware nunca
// rechaza: un token ausente, inválido o con sesión vencida deja ese eje
// apagado y la puerta de acceso decide después.
func AuthMiddleware(jwtSecret string, sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p authz.Principal

		if token := bearerToken(c.Get("Authorization")); token != "" {
			kind, sessionID, _, err := jwt.Parse(jwtSecret, token)
			if err == nil && kind == jwt.KindStore {
				sess, err := sessions.GetStoreSession(c.Context(), sessionID)
				if err == nil && sess != nil {
					p.StoreID = sess.StoreID
					c.Locals(LocalStoreSession, sessionID)
				} else if errors.Is(err, domain.ErrSessionExpired) {
					// Sesión vencida: el eje queda apagado pero el ID se conserva
					// para que /auth/status pueda reportarlo.
					c.Locals(LocalStoreSession, sessionID)
				}
			}
		}

		if token := strings.TrimSpace(c.Get("X-Admin-Token")); token != "" {
			kind, sessionID, _, err := jwt.Parse(jwtSecret, token)
			if err == nil && kind == jwt.KindSuperAdmin {
				sess, err := sessions.GetSuperAdminSession(c.Context(), sessionID)
				if err == nil && sess != nil {
					p.SuperAdmin = true
					p.AdminUser = sess.Username
					c.Locals(LocalAdminSession, sessionID)
				} else if errors.Is(err, domain.ErrSessionExpired) {
					c.Locals(LocalAdminSession, sessionID)
				}
			}
		}

		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetPrincipal devuelve el principal resuelto (después del middleware).
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return authz.Principal{}
	}
	p, _ := v.(authz.Principal)
	return p
}

// GetStoreSessionID devuelve el ID de la sesión de tienda del contexto.
func GetStoreSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalStoreSession)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAdminSessionID devuelve el ID de la sesión de super admin del contexto.
func GetAdminSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminSession)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
