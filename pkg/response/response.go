package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/pkg/apperror"
)

// UsuarioKey is the context key under which the auth middleware stores the
// resolved user.
const UsuarioKey = "usuario"

// CurrentUsuario retrieves the authenticated user attached by the middleware.
func CurrentUsuario(c *gin.Context) (*model.Usuario, error) {
	value, exists := c.Get(UsuarioKey)
	if !exists {
		return nil, apperror.ErrTokenFaltante
	}

	usuario, ok := value.(*model.Usuario)
	if !ok {
		return nil, apperror.ErrInterno
	}
	return usuario, nil
}

// Error converts a service error into the structured JSON error response.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		zap.L().Error("error interno", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(code, gin.H{"error": "Error interno del servidor."})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
