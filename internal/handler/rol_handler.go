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

type RolHandler struct {
	rolService service.RolService
}

func NewRolHandler(rolService service.RolService) *RolHandler {
	return &RolHandler{rolService: rolService}
}

func (h *RolHandler) List(c *gin.Context) {
	roles, err := h.rolService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *RolHandler) Create(c *gin.Context) {
	var input dto.CreateRolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: Nombre de rol es requerido.", apperror.ErrCampoRequerido))
		return
	}

	rol, err := h.rolService.Create(c.Request.Context(), input.Nombre)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rol creado.",
		"rol_id":  rol.ID,
	})
}

func (h *RolHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rol, err := h.rolService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rol": rol})
}

func (h *RolHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.rolService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol eliminado."})
}
