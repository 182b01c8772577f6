package dto

// CreateUsuarioInput is the admin-driven creation payload. Unlike public
// registration, the role is explicit and required.
type CreateUsuarioInput struct {
	Nombre    string   `json:"nombre" binding:"required"`
	Cedula    string   `json:"cedula" binding:"required"`
	Telefono  string   `json:"telefono" binding:"required"`
	Direccion string   `json:"direccion" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	RolID     *uint    `json:"rol_id" binding:"required"`
	Latitud   *float64 `json:"latitud"`
	Longitud  *float64 `json:"longitud"`
}

// UpdateProfileInput lists exactly the self-editable fields, each optional.
// Absent fields are left untouched; `activo` and `rol` are never here.
type UpdateProfileInput struct {
	Nombre    *string  `json:"nombre"`
	Cedula    *string  `json:"cedula"`
	Telefono  *string  `json:"telefono"`
	Direccion *string  `json:"direccion"`
	Email     *string  `json:"email"`
	Latitud   *float64 `json:"latitud"`
	Longitud  *float64 `json:"longitud"`
}

// UpdateUsuarioInput is the admin edit patch: the self-editable fields plus
// the active flag.
type UpdateUsuarioInput struct {
	Nombre    *string  `json:"nombre"`
	Cedula    *string  `json:"cedula"`
	Telefono  *string  `json:"telefono"`
	Direccion *string  `json:"direccion"`
	Email     *string  `json:"email"`
	Latitud   *float64 `json:"latitud"`
	Longitud  *float64 `json:"longitud"`
	Activo    *bool    `json:"is_active"`
}

type AsignarRolInput struct {
	RolID *uint `json:"rol_id" binding:"required"`
}
