package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/internal/token"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/response"
)

// AuthMiddleware is the authorization gate: it resolves a bearer token to a
// user before any protected handler runs.
type AuthMiddleware struct {
	tokens   *token.Service
	usuarios repository.UsuarioRepository
}

func NewAuthMiddleware(tokens *token.Service, usuarios repository.UsuarioRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, usuarios: usuarios}
}

// BearerToken extracts the token from an Authorization header value; empty
// when the header is absent or not of the Bearer form.
func BearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAuth verifies the token and attaches the resolved user to the
// request context. A token whose account was deleted after issuance resolves
// to 404: tokens are stateless and outlive their accounts.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			response.AbortError(c, apperror.ErrTokenFaltante)
			return
		}

		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		usuario, err := m.resolverUsuario(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set(response.UsuarioKey, usuario)
		c.Next()
	}
}

// RequireRoles allows only users whose role is in the given closed set. A
// user without a role is denied outright.
func (m *AuthMiddleware) RequireRoles(permitidos ...model.RolNombre) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, err := response.CurrentUsuario(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		if usuario.Rol == nil {
			response.AbortError(c, apperror.ErrPermisoDenegado)
			return
		}
		for _, rol := range permitidos {
			if usuario.Rol.Nombre == string(rol) {
				c.Next()
				return
			}
		}

		response.AbortError(c, apperror.ErrPermisoDenegado)
	}
}

func (m *AuthMiddleware) resolverUsuario(ctx context.Context, userID uint) (*model.Usuario, error) {
	usuario, err := m.usuarios.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return usuario, nil
}
