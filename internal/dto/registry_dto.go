package dto

type CreateRolInput struct {
	Nombre string `json:"nombre" binding:"required"`
}

type CreateClasificacionInput struct {
	Nombre string `json:"nombre" binding:"required"`
}

type UpdateClasificacionInput struct {
	Nombre string `json:"nombre" binding:"required"`
}
