package model

// RolNombre is the closed set of role names the authorization gate compares
// against. Role identity is resolved once per request, never re-derived from
// free text at call sites.
type RolNombre string

const (
	RolAdministrador RolNombre = "Administrador"
	RolModerador     RolNombre = "Moderador"
	RolCiudadano     RolNombre = "Ciudadano"
)

type Rol struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
}
