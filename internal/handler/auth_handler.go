package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/middleware"
	"vecindia.com/denunciasbackend/internal/service"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/response"
	"vecindia.com/denunciasbackend/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register is public. An Authorization header, if present, is forwarded as a
// best-effort admin override for the assigned role.
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrFormatoInvalido, validator.FormatValidationError(err)))
		return
	}

	bearer := middleware.BearerToken(c.GetHeader("Authorization"))

	usuario, err := h.authService.Register(c.Request.Context(), input, bearer)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Usuario registrado correctamente.",
		"usuario_id": usuario.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", apperror.ErrFormatoInvalido, validator.FormatValidationError(err)))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
