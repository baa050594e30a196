package authz

// Paquete authz implementa la puerta de control de acceso multi-tenant.
// Es una función de decisión pura: lee el principal ya resuelto, no toca
// almacenamiento y nunca devuelve error — toda combinación prohibida sale
// como Allowed=false.

// Operation clase de operación sobre datos de tienda.
type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

// Principal es el estado de autenticación vigente. Los dos ejes son
// independientes: puede haber sesión de tienda, de super admin, ambas o
// ninguna. El eje de super admin amplía lecturas, jamás escrituras.
type Principal struct {
	StoreID    string // vacío si no hay sesión de tienda viva
	SuperAdmin bool
	AdminUser  string
}

// HasStoreSession indica si el eje de tienda está vivo.
func (p Principal) HasStoreSession() bool { return p.StoreID != "" }

// HasAnyAuth indica si algún eje está vivo.
func (p Principal) HasAnyAuth() bool { return p.HasStoreSession() || p.SuperAdmin }

// Scope es el filtro de partición que el servicio de datos debe aplicar.
type Scope struct {
	All     bool   // lectura cruzada (solo super admin)
	StoreID string // partición concreta cuando All es false
}

// Decision resultado de la puerta. Si Allowed es false el llamador debe
// detenerse sin tocar almacenamiento.
type Decision struct {
	Allowed bool
	Scope   Scope
}

var denied = Decision{}

// Authorize decide si (principal, operación, tienda objetivo) está permitido y
// con qué alcance. targetStoreID es obligatorio para OpWrite; para OpRead,
// vacío significa "sin tienda concreta" y solo el super admin puede leerlo
// (con alcance ALL).
//
// Tabla: las lecturas pueden agregarse para supervisión; las escrituras jamás
// cruzan la frontera del tenant, y tener super admin no ensancha la escritura.
func Authorize(p Principal, op Operation, targetStoreID string) Decision {
	switch op {
	case OpRead:
		if targetStoreID == "" {
			if p.SuperAdmin {
				return Decision{Allowed: true, Scope: Scope{All: true}}
			}
			return denied
		}
		if p.SuperAdmin {
			// Lectura cruzada permitida sobre una tienda concreta.
			return Decision{Allowed: true, Scope: Scope{StoreID: targetStoreID}}
		}
		if p.HasStoreSession() && p.StoreID == targetStoreID {
			return Decision{Allowed: true, Scope: Scope{StoreID: targetStoreID}}
		}
		return denied

	case OpWrite:
		if targetStoreID == "" {
			return denied
		}
		// Solo una sesión de tienda que coincida exactamente habilita escribir.
		if p.HasStoreSession() && p.StoreID == targetStoreID {
			return Decision{Allowed: true, Scope: Scope{StoreID: targetStoreID}}
		}
		return denied
	}
	return denied
}

// AuthorizeStoreAdmin decide sobre la entidad Store, que invierte la regla:
// solo el super admin crea, edita o elimina tiendas.
func AuthorizeStoreAdmin(p Principal) Decision {
	if p.SuperAdmin {
		return Decision{Allowed: true, Scope: Scope{All: true}}
	}
	return denied
}
