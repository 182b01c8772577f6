package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/token"
	"vecindia.com/denunciasbackend/pkg/response"
)

const testSecret = "secreto-de-prueba"

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
}

func (r *stubUsuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error { return nil }
func (r *stubUsuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUsuarioRepo) FindAll(ctx context.Context) ([]*model.Usuario, error) { return nil, nil }
func (r *stubUsuarioRepo) Update(ctx context.Context, usuario *model.Usuario) error {
	return nil
}
func (r *stubUsuarioRepo) Delete(ctx context.Context, id uint) error { return nil }

func (r *stubUsuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return usuario, nil
}

func routerDePrueba(usuarios *stubUsuarioRepo) (*gin.Engine, *token.Service) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService(testSecret, 24*time.Hour)
	mw := NewAuthMiddleware(tokens, usuarios)

	router := gin.New()
	router.GET("/protegido", mw.RequireAuth(), func(c *gin.Context) {
		usuario, err := response.CurrentUsuario(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": usuario.Email})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireRoles(model.RolAdministrador), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, tokens
}

func solicitar(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func usuarioConRol(id uint, nombre string) *model.Usuario {
	rol := &model.Rol{ID: id, Nombre: nombre}
	return &model.Usuario{
		ID: id, Nombre: nombre, Email: nombre + "@example.com",
		RolID: &rol.ID, Rol: rol, Activo: true,
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}})

	rec := solicitar(router, "/protegido", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _ := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}})

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		rec := solicitar(router, "/protegido", header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestRequireAuthGarbageToken(t *testing.T) {
	router, _ := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}})

	rec := solicitar(router, "/protegido", "Bearer no-es-un-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	usuario := usuarioConRol(1, "Ciudadano")
	router, _ := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{1: usuario}})

	pasado := time.Now().Add(-48 * time.Hour)
	expirado, _, err := token.NewService(testSecret, 24*time.Hour).
		WithClock(func() time.Time { return pasado }).
		Issue(usuario.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := solicitar(router, "/protegido", "Bearer "+expirado)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthDeletedUser(t *testing.T) {
	router, tokens := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}})

	// Token issued for an account that no longer exists.
	huerfano, _, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := solicitar(router, "/protegido", "Bearer "+huerfano)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRequireAuthAttachesUsuario(t *testing.T) {
	usuario := usuarioConRol(1, "Ciudadano")
	router, tokens := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{1: usuario}})

	valido, _, err := tokens.Issue(usuario.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := solicitar(router, "/protegido", "Bearer "+valido)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestRequireRolesAdmitsAdministrador(t *testing.T) {
	admin := usuarioConRol(1, string(model.RolAdministrador))
	router, tokens := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{1: admin}})

	valido, _, _ := tokens.Issue(admin.ID)
	rec := solicitar(router, "/admin", "Bearer "+valido)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestRequireRolesDeniesWrongRole(t *testing.T) {
	ciudadano := usuarioConRol(2, string(model.RolCiudadano))
	router, tokens := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{2: ciudadano}})

	valido, _, _ := tokens.Issue(ciudadano.ID)
	rec := solicitar(router, "/admin", "Bearer "+valido)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRolesDeniesRolelessUser(t *testing.T) {
	sinRol := &model.Usuario{ID: 3, Nombre: "Sin Rol", Email: "sinrol@example.com", Activo: true}
	router, tokens := routerDePrueba(&stubUsuarioRepo{usuarios: map[uint]*model.Usuario{3: sinRol}})

	valido, _, _ := tokens.Issue(sinRol.ID)
	rec := solicitar(router, "/admin", "Bearer "+valido)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	casos := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", ""},
		{"Bearer", ""},
		{"", ""},
		{"Basic dXNlcg==", ""},
	}
	for _, caso := range casos {
		if got := BearerToken(caso.header); got != caso.want {
			t.Fatalf("BearerToken(%q) = %q, want %q", caso.header, got, caso.want)
		}
	}
}
