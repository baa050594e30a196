package dto

import "time"

// CheckupRequest alta/edición de examen de la vista. Las medidas viajan como
// texto; cadenas en blanco se guardan como vacío.
type CheckupRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`

	RightEyeSphericalDV   string `json:"right_eye_spherical_dv"`
	RightEyeCylindricalDV string `json:"right_eye_cylindrical_dv"`
	RightEyeAxisDV        string `json:"right_eye_axis_dv"`
	RightEyeSphericalNV   string `json:"right_eye_spherical_nv"`
	RightEyeCylindricalNV string `json:"right_eye_cylindrical_nv"`
	RightEyeAxisNV        string `json:"right_eye_axis_nv"`
	LeftEyeSphericalDV    string `json:"left_eye_spherical_dv"`
	LeftEyeCylindricalDV  string `json:"left_eye_cylindrical_dv"`
	LeftEyeAxisDV         string `json:"left_eye_axis_dv"`
	LeftEyeSphericalNV    string `json:"left_eye_spherical_nv"`
	LeftEyeCylindricalNV  string `json:"left_eye_cylindrical_nv"`
	LeftEyeAxisNV         string `json:"left_eye_axis_nv"`

	BifocalDetails string `json:"bifocal_details"`
	IPDBridge      string `json:"ipd_bridge"`
	TestedBy       string `json:"tested_by"`
}

// CheckupResponse examen persistido.
type CheckupResponse struct {
	ID         string `json:"id"`
	StoreID    string `json:"store_id"`
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`

	RightEyeSphericalDV   string `json:"right_eye_spherical_dv,omitempty"`
	RightEyeCylindricalDV string `json:"right_eye_cylindrical_dv,omitempty"`
	RightEyeAxisDV        string `json:"right_eye_axis_dv,omitempty"`
	RightEyeSphericalNV   string `json:"right_eye_spherical_nv,omitempty"`
	RightEyeCylindricalNV string `json:"right_eye_cylindrical_nv,omitempty"`
	RightEyeAxisNV        string `json:"right_eye_axis_nv,omitempty"`
	LeftEyeSphericalDV    string `json:"left_eye_spherical_dv,omitempty"`
	LeftEyeCylindricalDV  string `json:"left_eye_cylindrical_dv,omitempty"`
	LeftEyeAxisDV         string `json:"left_eye_axis_dv,omitempty"`
	LeftEyeSphericalNV    string `json:"left_eye_spherical_nv,omitempty"`
	LeftEyeCylindricalNV  string `json:"left_eye_cylindrical_nv,omitempty"`
	LeftEyeAxisNV         string `json:"left_eye_axis_nv,omitempty"`

	BifocalDetails string    `json:"bifocal_details,omitempty"`
	IPDBridge      string    `json:"ipd_bridge,omitempty"`
	TestedBy       string    `json:"tested_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
