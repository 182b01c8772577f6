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

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the profile of the authenticated user, already resolved by the
// auth middleware.
func (h *ProfileHandler) Get(c *gin.Context) {
	usuario, err := response.CurrentUsuario(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": usuario})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	usuario, err := response.CurrentUsuario(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrFormatoInvalido, validator.FormatValidationError(err)))
		return
	}

	actualizado, err := h.profileService.Update(c.Request.Context(), usuario.ID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado correctamente.",
		"usuario": actualizado,
	})
}
