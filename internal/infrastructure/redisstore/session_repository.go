package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// Prefijos de clave de cada eje de sesión.
const (
	storeSessionPrefix = "session:store:"
	adminSessionPrefix = "session:admin:"
)

// SessionRepo persiste las sesiones en Redis como JSON con TTL. El TTL es solo
// red de seguridad (limpieza); la expiración autoritativa la decide el caso de
// uso mirando ExpiresAt.
type SessionRepo struct {
	rdb *redis.Client
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(rdb *redis.Client) *SessionRepo {
	return &SessionRepo{rdb: rdb}
}

type storeSessionRecord struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	StoreName string    `json:"store_name"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

type adminSessionRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SaveStore guarda (o re-estampa) la sesión de tienda.
func (r *SessionRepo) SaveStore(ctx context.Context, s *entity.StoreSession, ttl time.Duration) error {
	payload, err := json.Marshal(storeSessionRecord{
		ID: s.ID, StoreID: s.StoreID, StoreName: s.StoreName,
		Timestamp: s.Timestamp, ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal store session: %w", err)
	}
	if err := r.rdb.Set(ctx, storeSessionPrefix+s.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save store session: %w", err)
	}
	return nil
}

// GetStore devuelve la sesión de tienda o (nil, nil) si no existe.
func (r *SessionRepo) GetStore(ctx context.Context, id string) (*entity.StoreSession, error) {
	raw, err := r.rdb.Get(ctx, storeSessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store session: %w", err)
	}
	var rec storeSessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal store session: %w", err)
	}
	return &entity.StoreSession{
		ID: rec.ID, StoreID: rec.StoreID, StoreName: rec.StoreName,
		Timestamp: rec.Timestamp, ExpiresAt: rec.ExpiresAt,
	}, nil
}

// DeleteStore elimina la sesión de tienda; borrar lo inexistente no es error.
func (r *SessionRepo) DeleteStore(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, storeSessionPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete store session: %w", err)
	}
	return nil
}

// SaveSuperAdmin guarda (o re-estampa) la sesión del super admin.
func (r *SessionRepo) SaveSuperAdmin(ctx context.Context, s *entity.SuperAdminSession, ttl time.Duration) error {
	payload, err := json.Marshal(adminSessionRecord{
		ID: s.ID, Username: s.Username, Role: s.Role,
		Timestamp: s.Timestamp, ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal admin session: %w", err)
	}
	if err := r.rdb.Set(ctx, adminSessionPrefix+s.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save admin session: %w", err)
	}
	return nil
}

// GetSuperAdmin devuelve la sesión del super admin o (nil, nil) si no existe.
func (r *SessionRepo) GetSuperAdmin(ctx context.Context, id string) (*entity.SuperAdminSession, error) {
	raw, err := r.rdb.Get(ctx, adminSessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin session: %w", err)
	}
	var rec adminSessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal admin session: %w", err)
	}
	return &entity.SuperAdminSession{
		ID: rec.ID, Username: rec.Username, Role: rec.Role,
		Timestamp: rec.Timestamp, ExpiresAt: rec.ExpiresAt,
	}, nil
}

// DeleteSuperAdmin elimina la sesión del super admin.
func (r *SessionRepo) DeleteSuperAdmin(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, adminSessionPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}
	return nil
}
