package dto

import "io"

// ImagenArchivo is one uploaded evidence photo.
type ImagenArchivo struct {
	Reader   io.Reader
	FileName string
}

// CreateDenunciaInput arrives as multipart form fields. The intake pipeline
// validates the fields itself, in a fixed order, so nothing is tagged
// required here.
type CreateDenunciaInput struct {
	Descripcion                string `form:"descripcion"`
	Fecha                      string `form:"fecha"`
	Hora                       string `form:"hora"`
	ClasificacionID            string `form:"clasificacion_id"`
	ClasificacionAlternativaID string `form:"clasificacion_alternativa_id"`

	Latitud  *float64 `form:"latitud"`
	Longitud *float64 `form:"longitud"`
}

// UpdateDenunciaInput is the partial patch over a denuncia. Pointer fields
// distinguish "absent" from "set"; Hora set to the empty string clears it.
type UpdateDenunciaInput struct {
	Descripcion                *string  `json:"descripcion"`
	Fecha                      *string  `json:"fecha"`
	Hora                       *string  `json:"hora"`
	ClasificacionID            *uint    `json:"clasificacion_id"`
	ClasificacionAlternativaID *uint    `json:"clasificacion_alternativa_id"`
	Latitud                    *float64 `json:"latitud"`
	Longitud                   *float64 `json:"longitud"`
}
