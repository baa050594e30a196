package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/optica-pro/internal/application/session"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del almacén de sesiones.
//
// El reloj se inyecta para poder cruzar las ventanas de 24h y 2h sin esperas
// reales; el repositorio es un fake en memoria que imita el contrato
// (nil, nil) cuando no hay registro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSessionRepo struct {
	stores map[string]*entity.StoreSession
	admins map[string]*entity.SuperAdminSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		stores: make(map[string]*entity.StoreSession),
		admins: make(map[string]*entity.SuperAdminSession),
	}
}

func (f *fakeSessionRepo) SaveStore(_ context.Context, s *entity.StoreSession, _ time.Duration) error {
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetStore(_ context.Context, id string) (*entity.StoreSession, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) DeleteStore(_ context.Context, id string) error {
	delete(f.stores, id)
	return nil
}

func (f *fakeSessionRepo) SaveSuperAdmin(_ context.Context, s *entity.SuperAdminSession, _ time.Duration) error {
	cp := *s
	f.admins[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetSuperAdmin(_ context.Context, id string) (*entity.SuperAdminSession, error) {
	s, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) DeleteSuperAdmin(_ context.Context, id string) error {
	delete(f.admins, id)
	return nil
}

// testClock reloj manual para los tests.
type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
}

func newTestStore() (*session.Store, *fakeSessionRepo, *testClock) {
	repo := newFakeSessionRepo()
	clock := newTestClock()
	return session.New(repo, clock.Now), repo, clock
}

var testStoreEntity = &entity.Store{ID: "store-a", Name: "Vista Centro"}

// ── Creación y ventanas de vida ──────────────────────────────────────────────

func TestCreateStoreSession_Ventana24h(t *testing.T) {
	s, _, clock := newTestStore()

	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	assert.Equal(t, "store-a", sess.StoreID)
	assert.Equal(t, "Vista Centro", sess.StoreName)
	assert.Equal(t, clock.Now(), sess.Timestamp)
	assert.Equal(t, clock.Now().Add(24*time.Hour), sess.ExpiresAt,
		"la sesión de tienda debe vivir exactamente 24h")
}

func TestCreateSuperAdminSession_Ventana2h(t *testing.T) {
	s, _, clock := newTestStore()

	sess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, "root", sess.Username)
	assert.Equal(t, entity.RoleSuperAdmin, sess.Role)
	assert.Equal(t, clock.Now().Add(2*time.Hour), sess.ExpiresAt,
		"la sesión de super admin debe vivir exactamente 2h")
}

// ── Expiración perezosa ──────────────────────────────────────────────────────

func TestGetStoreSession_VivaDentroDeLaVentana(t *testing.T) {
	s, _, clock := newTestStore()
	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	got, err := s.GetStoreSession(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "a las 23h la sesión sigue viva")
	assert.Equal(t, sess.ID, got.ID)
}

func TestGetStoreSession_ExpiraEnElLimiteExacto(t *testing.T) {
	s, repo, clock := newTestStore()
	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)

	// En el instante exacto de ExpiresAt la sesión YA está vencida.
	clock.Advance(24 * time.Hour)
	got, err := s.GetStoreSession(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, got)
	assert.Empty(t, repo.stores, "la sesión vencida se limpia del repositorio")
}

func TestGetSuperAdminSession_ExpiraALas2h(t *testing.T) {
	s, repo, clock := newTestStore()
	sess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	clock.Advance(2*time.Hour + time.Minute)
	got, err := s.GetSuperAdminSession(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, got)
	assert.Empty(t, repo.admins)
}

func TestGetStoreSession_IDVacioOInexistente(t *testing.T) {
	s, _, _ := newTestStore()

	got, err := s.GetStoreSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got, "id vacío: sin sesión, sin error")

	got, err = s.GetStoreSession(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, got, "sesión inexistente: nil sin error")
}

// ── Independencia de los dos ejes ────────────────────────────────────────────

func TestEjesIndependientes_ExpiraAdminPeroNoTienda(t *testing.T) {
	s, _, clock := newTestStore()
	storeSess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)
	adminSess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	// A las 3h el eje admin (2h) venció y el de tienda (24h) sigue vivo.
	clock.Advance(3 * time.Hour)

	_, err = s.GetSuperAdminSession(context.Background(), adminSess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	got, err := s.GetStoreSession(context.Background(), storeSess.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la expiración del eje admin no toca el eje de tienda")
}

func TestLogoutStore_NoAfectaAlEjeAdmin(t *testing.T) {
	s, _, _ := newTestStore()
	storeSess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)
	adminSess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	require.NoError(t, s.LogoutStore(context.Background(), storeSess.ID))

	got, err := s.GetStoreSession(context.Background(), storeSess.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "la sesión de tienda quedó cerrada")

	admin, err := s.GetSuperAdminSession(context.Background(), adminSess.ID)
	require.NoError(t, err)
	assert.NotNil(t, admin, "el eje admin sobrevive al logout de tienda")
}

func TestLogout_Idempotente(t *testing.T) {
	s, _, _ := newTestStore()
	assert.NoError(t, s.LogoutStore(context.Background(), "nunca-existio"))
	assert.NoError(t, s.LogoutSuperAdmin(context.Background(), "nunca-existio"))
	assert.NoError(t, s.LogoutStore(context.Background(), ""))
}

func TestLogoutAll_CierraAmbosEjes(t *testing.T) {
	s, _, _ := newTestStore()
	storeSess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)
	adminSess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	require.NoError(t, s.LogoutAll(context.Background(), storeSess.ID, adminSess.ID))

	got, _ := s.GetStoreSession(context.Background(), storeSess.ID)
	assert.Nil(t, got)
	admin, _ := s.GetSuperAdminSession(context.Background(), adminSess.ID)
	assert.Nil(t, admin)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefreshStore_ExtiendeLaVentana(t *testing.T) {
	s, _, clock := newTestStore()
	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)

	clock.Advance(20 * time.Hour)
	refreshed, err := s.RefreshStore(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.Equal(t, clock.Now().Add(24*time.Hour), refreshed.ExpiresAt,
		"el refresh re-sella la ventana completa de 24h")

	// Tras el refresh, 23h más siguen dentro de la nueva ventana.
	clock.Advance(23 * time.Hour)
	got, err := s.GetStoreSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRefreshStore_SesionVencidaNoSeResucita(t *testing.T) {
	s, _, clock := newTestStore()
	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	refreshed, err := s.RefreshStore(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired,
		"una sesión vencida exige re-autenticación, no refresh")
	assert.Nil(t, refreshed)
}

func TestRefreshSuperAdmin_ExtiendeLaVentana(t *testing.T) {
	s, _, clock := newTestStore()
	sess, err := s.CreateSuperAdminSession(context.Background(), "root")
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	refreshed, err := s.RefreshSuperAdmin(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.Equal(t, clock.Now().Add(2*time.Hour), refreshed.ExpiresAt)
}

// ── Tiempo restante y formato ────────────────────────────────────────────────

func TestStoreTimeRemaining(t *testing.T) {
	s, _, clock := newTestStore()
	sess, err := s.CreateStoreSession(context.Background(), testStoreEntity)
	require.NoError(t, err)

	clock.Advance(10 * time.Hour)
	assert.Equal(t, 14*time.Hour, s.StoreTimeRemaining(context.Background(), sess.ID))
	assert.Equal(t, time.Duration(0), s.StoreTimeRemaining(context.Background(), "no-existe"))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "3h 12m remaining", session.FormatRemaining(3*time.Hour+12*time.Minute))
	assert.Equal(t, "45m remaining", session.FormatRemaining(45*time.Minute))
	assert.Equal(t, "Session expired", session.FormatRemaining(0))
	assert.Equal(t, "Session expired", session.FormatRemaining(-time.Minute))
}
