package model

import "time"

type Denuncia struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Descripcion string    `gorm:"type:text;not null" json:"descripcion"`
	Fecha       time.Time `gorm:"type:date;not null" json:"fecha"`
	// Hora is the optional HH:MM of the incident; the string form sorts
	// lexicographically, which matches chronological order.
	Hora *string `gorm:"size:5" json:"hora,omitempty"`

	ClasificacionID uint          `gorm:"not null" json:"clasificacion_id"`
	Clasificacion   Clasificacion `gorm:"constraint:OnUpdate:CASCADE" json:"clasificacion"`

	// ClasificacionAlternativa is used when the reporter characterizes the
	// incident outside the standard taxonomy.
	ClasificacionAlternativaID *uint          `json:"clasificacion_alternativa_id,omitempty"`
	ClasificacionAlternativa   *Clasificacion `gorm:"foreignKey:ClasificacionAlternativaID" json:"clasificacion_alternativa,omitempty"`

	Latitud  float64   `gorm:"not null" json:"latitud"`
	Longitud float64   `gorm:"not null" json:"longitud"`
	CreadoEn time.Time `gorm:"autoCreateTime" json:"creado_en"`

	Imagenes []ImagenDenuncia `gorm:"constraint:OnDelete:CASCADE" json:"imagenes"`
}

// ImagenDenuncia is exclusively owned by its Denuncia and is removed with it.
type ImagenDenuncia struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DenunciaID uint   `gorm:"not null;index" json:"denuncia_id"`
	URL        string `gorm:"type:text;not null" json:"url"`
}
