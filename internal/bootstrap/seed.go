package bootstrap

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
)

// SeedRoles makes sure the canonical roles exist. Existing rows are left
// untouched.
func SeedRoles(db *gorm.DB) error {
	defaultRoles := []model.Rol{
		{Nombre: string(model.RolAdministrador)},
		{Nombre: string(model.RolModerador)},
		{Nombre: string(model.RolCiudadano)},
	}

	for _, rol := range defaultRoles {
		var count int64
		if err := db.Model(&model.Rol{}).
			Where("nombre = ?", rol.Nombre).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&rol).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedClasificaciones inserts a starter taxonomy so a fresh install can
// accept denuncias right away.
func SeedClasificaciones(db *gorm.DB) error {
	iniciales := []model.Clasificacion{
		{Nombre: "Robo"},
		{Nombre: "Vandalismo"},
		{Nombre: "Ruido excesivo"},
		{Nombre: "Alumbrado dañado"},
		{Nombre: "Basura acumulada"},
		{Nombre: "Otro"},
	}

	for _, clasificacion := range iniciales {
		var count int64
		if err := db.Model(&model.Clasificacion{}).
			Where("nombre = ?", clasificacion.Nombre).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&clasificacion).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedAdminUsuario creates a development administrator account. Only meant
// for APP_ENV=development.
func SeedAdminUsuario(db *gorm.DB) error {
	var adminRol model.Rol
	if err := db.Where("nombre = ?", string(model.RolAdministrador)).First(&adminRol).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.Usuario{}).
		Where("email = ?", "admin@denuncias.local").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("admin de desarrollo ya existe, se omite el seed")
		return nil
	}

	admin := model.Usuario{
		Nombre:    "Administrador",
		Cedula:    "0000000000",
		Telefono:  "0000000000",
		Direccion: "Oficina central",
		Email:     "admin@denuncias.local",
		Password:  "admin123", // hashed by the BeforeSave hook
		RolID:     &adminRol.ID,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	zap.L().Info("admin de desarrollo creado", zap.String("email", admin.Email))
	return nil
}
