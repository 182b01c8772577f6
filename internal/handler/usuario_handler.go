package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/service"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/response"
	"vecindia.com/denunciasbackend/pkg/validator"
)

// UsuarioHandler serves the admin-only user management endpoints.
type UsuarioHandler struct {
	usuarioService service.UsuarioService
}

func NewUsuarioHandler(usuarioService service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuarios": usuarios})
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var input dto.CreateUsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrFormatoInvalido, validator.FormatValidationError(err)))
		return
	}

	usuario, err := h.usuarioService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Usuario creado correctamente.",
		"usuario_id": usuario.ID,
	})
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	usuario, err := h.usuarioService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": usuario})
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateUsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrFormatoInvalido, validator.FormatValidationError(err)))
		return
	}

	usuario, err := h.usuarioService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado correctamente.",
		"usuario": usuario,
	})
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.usuarioService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente."})
}

func (h *UsuarioHandler) AsignarRol(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.AsignarRolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: rol_id es requerido", apperror.ErrCampoRequerido))
		return
	}

	if err := h.usuarioService.AsignarRol(c.Request.Context(), id, *input.RolID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol asignado correctamente."})
}
