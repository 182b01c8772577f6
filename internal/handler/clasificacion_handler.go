package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/service"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/response"
)

type ClasificacionHandler struct {
	clasificacionService service.ClasificacionService
}

func NewClasificacionHandler(clasificacionService service.ClasificacionService) *ClasificacionHandler {
	return &ClasificacionHandler{clasificacionService: clasificacionService}
}

func (h *ClasificacionHandler) List(c *gin.Context) {
	clasificaciones, err := h.clasificacionService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clasificaciones": clasificaciones})
}

func (h *ClasificacionHandler) Create(c *gin.Context) {
	var input dto.CreateClasificacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: Nombre de clasificación es requerido.", apperror.ErrCampoRequerido))
		return
	}

	clasificacion, err := h.clasificacionService.Create(c.Request.Context(), input.Nombre)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Clasificación creada.",
		"clasificacion_id": clasificacion.ID,
	})
}

func (h *ClasificacionHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	clasificacion, err := h.clasificacionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clasificacion": clasificacion})
}

func (h *ClasificacionHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateClasificacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: Nombre de clasificación es requerido.", apperror.ErrCampoRequerido))
		return
	}

	clasificacion, err := h.clasificacionService.Update(c.Request.Context(), id, input.Nombre)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Clasificación actualizada.",
		"clasificacion": clasificacion,
	})
}

func (h *ClasificacionHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.clasificacionService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Clasificación eliminada."})
}
