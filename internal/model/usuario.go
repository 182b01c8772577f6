package model

import (
	"time"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/pkg/password"
)

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"size:150;not null" json:"nombre"`
	Cedula        string    `gorm:"size:20;uniqueIndex;not null" json:"cedula"`
	Telefono      string    `gorm:"size:20" json:"telefono"`
	Direccion     string    `gorm:"size:255" json:"direccion"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"size:128;not null" json:"-"`
	RolID         *uint     `json:"rol_id"`
	Rol           *Rol      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"rol,omitempty"`
	Latitud       *float64  `json:"latitud"`
	Longitud      *float64  `json:"longitud"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
	Activo        bool      `gorm:"default:true" json:"is_active"`
}

// BeforeSave hashes the password on every persistence path. Values that are
// already bcrypt digests pass through untouched, so an internal re-save never
// double-hashes a stored credential.
func (u *Usuario) BeforeSave(tx *gorm.DB) error {
	if u.Password != "" && !password.EsDigest(u.Password) {
		digest, err := password.Hash(u.Password)
		if err != nil {
			return err
		}
		u.Password = digest
	}
	return nil
}

// NombreRol returns the role name or nil when the user has no role assigned.
func (u *Usuario) NombreRol() *string {
	if u.Rol == nil {
		return nil
	}
	return &u.Rol.Nombre
}
