package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la puerta de control de acceso.
//
// La tabla completa de decisiones es el contrato central del sistema
// multi-tenant: cualquier cambio accidental aquí abre o cierra la frontera
// entre tiendas, así que se verifica combinación por combinación.
// ──────────────────────────────────────────────────────────────────────────────

var (
	principalNone  = authz.Principal{}
	principalStore = authz.Principal{StoreID: "store-a"}
	principalAdmin = authz.Principal{SuperAdmin: true, AdminUser: "root"}
	principalDual  = authz.Principal{StoreID: "store-a", SuperAdmin: true, AdminUser: "root"}
)

func TestAuthorize_TablaDeDecisiones(t *testing.T) {
	cases := []struct {
		name        string
		p           authz.Principal
		op          authz.Operation
		target      string
		wantAllowed bool
		wantAll     bool
		wantStoreID string
	}{
		// ── Lecturas sobre una tienda concreta ──
		{"tienda lee su propia tienda", principalStore, authz.OpRead, "store-a", true, false, "store-a"},
		{"tienda NO lee otra tienda", principalStore, authz.OpRead, "store-b", false, false, ""},
		{"super admin lee cualquier tienda", principalAdmin, authz.OpRead, "store-b", true, false, "store-b"},
		{"dual lee su tienda", principalDual, authz.OpRead, "store-a", true, false, "store-a"},
		{"dual lee otra tienda (vía admin)", principalDual, authz.OpRead, "store-b", true, false, "store-b"},
		{"sin autenticación no lee nada", principalNone, authz.OpRead, "store-a", false, false, ""},

		// ── Lecturas sin tienda objetivo (agregación) ──
		{"super admin lee con alcance ALL", principalAdmin, authz.OpRead, "", true, true, ""},
		{"dual lee con alcance ALL", principalDual, authz.OpRead, "", true, true, ""},
		{"tienda sola NO obtiene alcance ALL", principalStore, authz.OpRead, "", false, false, ""},
		{"sin autenticación NO obtiene ALL", principalNone, authz.OpRead, "", false, false, ""},

		// ── Escrituras: solo la sesión de tienda coincidente ──
		{"tienda escribe en su tienda", principalStore, authz.OpWrite, "store-a", true, false, "store-a"},
		{"tienda NO escribe en otra tienda", principalStore, authz.OpWrite, "store-b", false, false, ""},
		{"super admin NO escribe datos de tienda", principalAdmin, authz.OpWrite, "store-a", false, false, ""},
		{"dual escribe solo en SU tienda", principalDual, authz.OpWrite, "store-a", true, false, "store-a"},
		{"dual NO escribe en otra tienda aunque sea admin", principalDual, authz.OpWrite, "store-b", false, false, ""},
		{"escritura sin tienda objetivo se niega", principalAdmin, authz.OpWrite, "", false, false, ""},
		{"sin autenticación no escribe", principalNone, authz.OpWrite, "store-a", false, false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := authz.Authorize(tc.p, tc.op, tc.target)
			assert.Equal(t, tc.wantAllowed, d.Allowed, "Allowed")
			assert.Equal(t, tc.wantAll, d.Scope.All, "Scope.All")
			assert.Equal(t, tc.wantStoreID, d.Scope.StoreID, "Scope.StoreID")
		})
	}
}

// La operación desconocida siempre se niega, sin importar el principal.
func TestAuthorize_OperacionDesconocidaSeNiega(t *testing.T) {
	d := authz.Authorize(principalDual, authz.Operation("delete-everything"), "store-a")
	assert.False(t, d.Allowed, "una operación desconocida nunca debe permitirse")
}

// ── AuthorizeStoreAdmin: la entidad Store invierte la regla ──────────────────

func TestAuthorizeStoreAdmin_SoloSuperAdmin(t *testing.T) {
	assert.True(t, authz.AuthorizeStoreAdmin(principalAdmin).Allowed,
		"el super admin administra tiendas")
	assert.True(t, authz.AuthorizeStoreAdmin(principalDual).Allowed,
		"el eje admin del principal dual administra tiendas")
	assert.False(t, authz.AuthorizeStoreAdmin(principalStore).Allowed,
		"una sesión de tienda NO puede crear ni editar tiendas")
	assert.False(t, authz.AuthorizeStoreAdmin(principalNone).Allowed)
}

// El eje de super admin amplía lecturas pero jamás escrituras: verificado
// explícitamente porque es la garantía read-all/write-never.
func TestAuthorize_SuperAdminNuncaEscribe(t *testing.T) {
	for _, target := range []string{"store-a", "store-b", "store-z"} {
		d := authz.Authorize(principalAdmin, authz.OpWrite, target)
		assert.False(t, d.Allowed, "super admin no debe escribir en %s", target)
	}
}

func TestPrincipal_Predicados(t *testing.T) {
	assert.False(t, principalNone.HasAnyAuth())
	assert.True(t, principalStore.HasStoreSession())
	assert.False(t, principalAdmin.HasStoreSession())
	assert.True(t, principalAdmin.HasAnyAuth())
	assert.True(t, principalDual.HasStoreSession())
	assert.True(t, principalDual.HasAnyAuth())
}
