package dto

import "time"

type RegisterInput struct {
	Nombre    string   `json:"nombre" binding:"required"`
	Cedula    string   `json:"cedula" binding:"required"`
	Telefono  string   `json:"telefono" binding:"required"`
	Direccion string   `json:"direccion" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	Latitud   *float64 `json:"latitud" binding:"required"`
	Longitud  *float64 `json:"longitud" binding:"required"`

	// RolID is an optional privilege hint, honored only when the caller also
	// presents a valid admin token; otherwise it is ignored.
	RolID *uint `json:"rol_id"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UsuarioResumen is the user summary returned on login; it never carries the
// password digest.
type UsuarioResumen struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           *string   `json:"rol"`
	Latitud       *float64  `json:"latitud"`
	Longitud      *float64  `json:"longitud"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo        bool      `json:"is_active"`
}

type LoginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Usuario UsuarioResumen `json:"usuario"`
}
