package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// Store mantiene los dos estados de autenticación independientes: sesión de
// tienda (24h) y sesión de super admin (2h). Se construye explícitamente y se
// inyecta; nada de estado a nivel de módulo, así cada test instancia el suyo.
type Store struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// New construye el almacén de sesiones. clock puede ser nil (usa time.Now);
// los tests inyectan un reloj falso para verificar la expiración.
func New(repo repository.SessionRepository, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{repo: repo, now: clock}
}

// CreateStoreSession crea la sesión de tienda con ventana de 24h.
func (s *Store) CreateStoreSession(ctx context.Context, store *entity.Store) (*entity.StoreSession, error) {
	now := s.now()
	sess := &entity.StoreSession{
		ID:        uuid.New().String(),
		StoreID:   store.ID,
		StoreName: store.Name,
		Timestamp: now,
		ExpiresAt: now.Add(entity.StoreSessionTTL),
	}
	if err := s.repo.SaveStore(ctx, sess, entity.StoreSessionTTL); err != nil {
		return nil, fmt.Errorf("guardar sesión de tienda: %w", err)
	}
	return sess, nil
}

// CreateSuperAdminSession crea la sesión de super admin con ventana de 2h.
func (s *Store) CreateSuperAdminSession(ctx context.Context, username string) (*entity.SuperAdminSession, error) {
	now := s.now()
	sess := &entity.SuperAdminSession{
		ID:        uuid.New().String(),
		Username:  username,
		Role:      entity.RoleSuperAdmin,
		Timestamp: now,
		ExpiresAt: now.Add(entity.SuperAdminSessionTTL),
	}
	if err := s.repo.SaveSuperAdmin(ctx, sess, entity.SuperAdminSessionTTL); err != nil {
		return nil, fmt.Errorf("guardar sesión de super admin: %w", err)
	}
	return sess, nil
}

// GetStoreSession devuelve la sesión de tienda viva o nil.
// La expiración se detecta aquí, de forma perezosa: si venció se limpia el
// registro y se devuelve ErrSessionExpired para forzar re-autenticación.
func (s *Store) GetStoreSession(ctx context.Context, id string) (*entity.StoreSession, error) {
	if id == "" {
		return nil, nil
	}
	sess, err := s.repo.GetStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer sesión de tienda: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		_ = s.repo.DeleteStore(ctx, id)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// GetSuperAdminSession devuelve la sesión de super admin viva o nil; mismo
// patrón perezoso con ventana de 2h.
func (s *Store) GetSuperAdminSession(ctx context.Context, id string) (*entity.SuperAdminSession, error) {
	if id == "" {
		return nil, nil
	}
	sess, err := s.repo.GetSuperAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer sesión de super admin: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		_ = s.repo.DeleteSuperAdmin(ctx, id)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// LogoutStore cierra la sesión de tienda. Idempotente: sobre una sesión ya
// inexistente no es error.
func (s *Store) LogoutStore(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.repo.DeleteStore(ctx, id)
}

// LogoutSuperAdmin cierra la sesión de super admin. Idempotente.
func (s *Store) LogoutSuperAdmin(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.repo.DeleteSuperAdmin(ctx, id)
}

// LogoutAll cierra ambos ejes. Cerrar uno nunca afecta al otro salvo por esta
// operación explícita.
func (s *Store) LogoutAll(ctx context.Context, storeSessionID, adminSessionID string) error {
	if err := s.LogoutStore(ctx, storeSessionID); err != nil {
		return err
	}
	return s.LogoutSuperAdmin(ctx, adminSessionID)
}

// RefreshStore re-sella la sesión de tienda extendiendo su ventana. Keep-alive
// explícito: nunca se invoca automáticamente.
func (s *Store) RefreshStore(ctx context.Context, id string) (*entity.StoreSession, error) {
	sess, err := s.GetStoreSession(ctx, id)
	if err != nil || sess == nil {
		return nil, err
	}
	now := s.now()
	sess.Timestamp = now
	sess.ExpiresAt = now.Add(entity.StoreSessionTTL)
	if err := s.repo.SaveStore(ctx, sess, entity.StoreSessionTTL); err != nil {
		return nil, fmt.Errorf("refrescar sesión de tienda: %w", err)
	}
	return sess, nil
}

// RefreshSuperAdmin re-sella la sesión de super admin.
func (s *Store) RefreshSuperAdmin(ctx context.Context, id string) (*entity.SuperAdminSession, error) {
	sess, err := s.GetSuperAdminSession(ctx, id)
	if err != nil || sess == nil {
		return nil, err
	}
	now := s.now()
	sess.Timestamp = now
	sess.ExpiresAt = now.Add(entity.SuperAdminSessionTTL)
	if err := s.repo.SaveSuperAdmin(ctx, sess, entity.SuperAdminSessionTTL); err != nil {
		return nil, fmt.Errorf("refrescar sesión de super admin: %w", err)
	}
	return sess, nil
}

// StoreTimeRemaining tiempo de vida restante de la sesión de tienda (0 si no hay).
func (s *Store) StoreTimeRemaining(ctx context.Context, id string) time.Duration {
	sess, err := s.GetStoreSession(ctx, id)
	if err != nil || sess == nil {
		return 0
	}
	return remaining(sess.ExpiresAt, s.now())
}

// AdminTimeRemaining tiempo de vida restante de la sesión de super admin.
func (s *Store) AdminTimeRemaining(ctx context.Context, id string) time.Duration {
	sess, err := s.GetSuperAdminSession(ctx, id)
	if err != nil || sess == nil {
		return 0
	}
	return remaining(sess.ExpiresAt, s.now())
}

func remaining(expiresAt, now time.Time) time.Duration {
	d := expiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatRemaining formatea el tiempo restante para la UI ("3h 12m remaining").
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "Session expired"
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	}
	return fmt.Sprintf("%dm remaining", minutes)
}
