package model

// Clasificacion is a taxonomy entry categorizing the nature of a denuncia.
type Clasificacion struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
}
