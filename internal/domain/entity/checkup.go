package entity

import "time"

// Checkup es un examen de la vista. Las medidas se guardan como texto tal cual
// las escribe el optometrista (pueden incluir signos y fracciones).
// CustomerID debe referenciar un cliente de la MISMA tienda; esa integridad la
// garantiza la capa de servicio, no una foreign key entre particiones.
type Checkup struct {
	ID         string
	StoreID    string
	CustomerID string
	Date       string

	RightEyeSphericalDV   string
	RightEyeCylindricalDV string
	RightEyeAxisDV        string
	RightEyeSphericalNV   string
	RightEyeCylindricalNV string
	RightEyeAxisNV        string
	LeftEyeSphericalDV    string
	LeftEyeCylindricalDV  string
	LeftEyeAxisDV         string
	LeftEyeSphericalNV    string
	LeftEyeCylindricalNV  string
	LeftEyeAxisNV         string

	BifocalDetails string
	IPDBridge      string
	TestedBy       string
	CreatedAt      time.Time
}
