package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"regexp"

	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/session"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
	"github.com/tu-usuario/optica-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// SuperAdminCredentials credenciales inyectadas por configuración.
type SuperAdminCredentials struct {
	Username string
	Password string
}

// JWTConfig configuración para emitir tokens de sesión.
type JWTConfig struct {
	Secret string
	Issuer string
}

var pinFormat = regexp.MustCompile(`^\d{4,10}$`)

// ValidatePIN reglas de formato del PIN: 4 a 10 dígitos.
func ValidatePIN(pin string) error {
	if pin == "" {
		return fmt.Errorf("%w: el PIN es requerido", domain.ErrInvalidInput)
	}
	if !pinFormat.MatchString(pin) {
		return fmt.Errorf("%w: el PIN debe tener entre 4 y 10 dígitos", domain.ErrInvalidInput)
	}
	return nil
}

// UseCase autenticación de los dos ejes: tienda por PIN y super admin por
// usuario/contraseña. El fallo de autenticación es terminal para ese intento,
// nunca se reintenta ni se crea sesión parcial.
type UseCase struct {
	storeRepo repository.StoreRepository
	sessions  *session.Store
	creds     SuperAdminCredentials
	jwtCfg    JWTConfig
}

// New construye el caso de uso de autenticación.
func New(storeRepo repository.StoreRepository, sessions *session.Store, creds SuperAdminCredentials, jwtCfg JWTConfig) *UseCase {
	return &UseCase{storeRepo: storeRepo, sessions: sessions, creds: creds, jwtCfg: jwtCfg}
}

// LoginStore autentica una tienda por PIN y crea su sesión de 24h.
// PIN incorrecto o tienda inexistente devuelven ErrUnauthorized sin crear nada.
func (uc *UseCase) LoginStore(ctx context.Context, in dto.StoreLoginRequest) (*dto.StoreLoginResponse, error) {
	if in.StoreID == "" {
		return nil, fmt.Errorf("%w: store_id requerido", domain.ErrInvalidInput)
	}
	if err := ValidatePIN(in.PIN); err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByIDWithPIN(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		// No revelar si la tienda existe o no.
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(store.PINHash), []byte(in.PIN)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.CreateStoreSession(ctx, store)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.KindStore, sess.ID, store.ID, uc.jwtCfg.Issuer, entity.StoreSessionTTL)
	if err != nil {
		return nil, err
	}
	return &dto.StoreLoginResponse{
		Token:   token,
		Store:   ToStoreResponse(store),
		Session: dto.SessionResponse{ID: sess.ID, Timestamp: sess.Timestamp, ExpiresAt: sess.ExpiresAt},
	}, nil
}

// LoginSuperAdmin autentica al super admin contra las credenciales de
// configuración (comparación en tiempo constante) y crea su sesión de 2h.
func (uc *UseCase) LoginSuperAdmin(ctx context.Context, in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: usuario y contraseña requeridos", domain.ErrInvalidInput)
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(uc.creds.Password)) == 1
	if !userOK || !passOK {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.CreateSuperAdminSession(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.KindSuperAdmin, sess.ID, in.Username, uc.jwtCfg.Issuer, entity.SuperAdminSessionTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{
		Token:    token,
		Username: sess.Username,
		Role:     sess.Role,
		Session:  dto.SessionResponse{ID: sess.ID, Timestamp: sess.Timestamp, ExpiresAt: sess.ExpiresAt},
	}, nil
}

// Status devuelve el estado combinado de ambos ejes para el principal actual.
func (uc *UseCase) Status(ctx context.Context, p authz.Principal, storeSessionID, adminSessionID string) (*dto.AuthStatusResponse, error) {
	out := &dto.AuthStatusResponse{
		IsSuperAdmin:         p.SuperAdmin,
		IsStoreAuthenticated: p.HasStoreSession(),
		CurrentSuperAdmin:    p.AdminUser,
		HasAnyAuth:           p.HasAnyAuth(),
	}
	if p.HasStoreSession() {
		store, err := uc.storeRepo.GetByID(ctx, p.StoreID)
		if err != nil {
			return nil, err
		}
		if store != nil {
			resp := ToStoreResponse(store)
			out.CurrentStore = &resp
		}
		out.StoreTimeRemaining = session.FormatRemaining(uc.sessions.StoreTimeRemaining(ctx, storeSessionID))
	}
	if p.SuperAdmin {
		out.AdminTimeRemaining = session.FormatRemaining(uc.sessions.AdminTimeRemaining(ctx, adminSessionID))
	}
	return out, nil
}

// ToStoreResponse mapea una tienda a su DTO sin material de PIN.
func ToStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
