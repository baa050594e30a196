package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// SessionRepository persiste los dos registros de sesión bajo claves
// independientes. Los Get* devuelven (nil, nil) si no hay registro; el TTL es
// una red de seguridad, la expiración autoritativa es perezosa en el caso de uso.
type SessionRepository interface {
	SaveStore(ctx context.Context, s *entity.StoreSession, ttl time.Duration) error
	GetStore(ctx context.Context, id string) (*entity.StoreSession, error)
	DeleteStore(ctx context.Context, id string) error

	SaveSuperAdmin(ctx context.Context, s *entity.SuperAdminSession, ttl time.Duration) error
	GetSuperAdmin(ctx context.Context, id string) (*entity.SuperAdminSession, error)
	DeleteSuperAdmin(ctx context.Context, id string) error
}
