package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/token"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/password"
)

const testSecret = "secreto-de-prueba"

func float64Ptr(f float64) *float64 { return &f }
func uintPtr(u uint) *uint          { return &u }

func registroValido() dto.RegisterInput {
	return dto.RegisterInput{
		Nombre:    "Ana Pérez",
		Cedula:    "1102345678",
		Telefono:  "0991234567",
		Direccion: "Av. Central 123",
		Email:     "ana@example.com",
		Password:  "secreto123",
		Latitud:   float64Ptr(-0.18),
		Longitud:  float64Ptr(-78.47),
	}
}

func nuevoAuthService(usuarios *fakeUsuarioRepo, roles *fakeRolRepo) (AuthService, *token.Service) {
	tokens := token.NewService(testSecret, 24*time.Hour)
	svc := NewAuthService(usuarios, roles, tokens, nil, 0, string(model.RolCiudadano))
	return svc, tokens
}

func rolesBase() *fakeRolRepo {
	return newFakeRolRepo(
		&model.Rol{ID: 1, Nombre: string(model.RolAdministrador)},
		&model.Rol{ID: 2, Nombre: string(model.RolModerador)},
		&model.Rol{ID: 3, Nombre: string(model.RolCiudadano)},
	)
}

func TestRegisterAssignsDefaultRole(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	svc, _ := nuevoAuthService(usuarios, rolesBase())

	usuario, err := svc.Register(context.Background(), registroValido(), "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usuario.RolID == nil || *usuario.RolID != 3 {
		t.Fatalf("RolID = %v, want 3 (Ciudadano)", usuario.RolID)
	}
	if usuario.Password == "secreto123" {
		t.Fatal("password persisted in plaintext")
	}
}

func TestRegisterAdminOverrideAssignsRequestedRole(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	roles := rolesBase()
	svc, tokens := nuevoAuthService(usuarios, roles)

	adminRol, _ := roles.FindByID(context.Background(), 1)
	admin := usuarios.agregar(&model.Usuario{
		Nombre: "Root", Email: "root@example.com", Cedula: "99",
		RolID: &adminRol.ID, Rol: adminRol, Activo: true,
	})
	adminToken, _, err := tokens.Issue(admin.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	input := registroValido()
	input.RolID = uintPtr(2)

	usuario, err := svc.Register(context.Background(), input, adminToken)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usuario.RolID == nil || *usuario.RolID != 2 {
		t.Fatalf("RolID = %v, want 2 (override honored)", usuario.RolID)
	}
}

func TestRegisterExpiredAdminTokenFallsBackToDefault(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	svc, _ := nuevoAuthService(usuarios, rolesBase())

	// Token issued 48h in the past with a 24h TTL: expired, but same secret.
	pasado := time.Now().Add(-48 * time.Hour)
	expirado, _, err := token.NewService(testSecret, 24*time.Hour).
		WithClock(func() time.Time { return pasado }).
		Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	input := registroValido()
	input.RolID = uintPtr(1)

	usuario, err := svc.Register(context.Background(), input, expirado)
	if err != nil {
		t.Fatalf("Register must not fail on a bad override hint: %v", err)
	}
	if usuario.RolID == nil || *usuario.RolID != 3 {
		t.Fatalf("RolID = %v, want 3 (silent fallback to default)", usuario.RolID)
	}
}

func TestRegisterNonAdminCallerCannotEscalate(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	roles := rolesBase()
	svc, tokens := nuevoAuthService(usuarios, roles)

	ciudadanoRol, _ := roles.FindByID(context.Background(), 3)
	ciudadano := usuarios.agregar(&model.Usuario{
		Nombre: "Vecino", Email: "vecino@example.com", Cedula: "88",
		RolID: &ciudadanoRol.ID, Rol: ciudadanoRol, Activo: true,
	})
	tokenCiudadano, _, _ := tokens.Issue(ciudadano.ID)

	input := registroValido()
	input.RolID = uintPtr(1)

	usuario, err := svc.Register(context.Background(), input, tokenCiudadano)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usuario.RolID == nil || *usuario.RolID != 3 {
		t.Fatalf("RolID = %v, want 3 (hint from non-admin ignored)", usuario.RolID)
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	svc, _ := nuevoAuthService(usuarios, rolesBase())

	if _, err := svc.Register(context.Background(), registroValido(), ""); err != nil {
		t.Fatalf("primer Register: %v", err)
	}

	otra := registroValido()
	otra.Cedula = "distinta"
	_, err := svc.Register(context.Background(), otra, "")
	if !errors.Is(err, apperror.ErrConflicto) {
		t.Fatalf("Register duplicado = %v, want ErrConflicto", err)
	}
}

func TestLoginNoUserExistenceOracle(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	svc, _ := nuevoAuthService(usuarios, rolesBase())

	digest, _ := password.Hash("correcta")
	usuarios.agregar(&model.Usuario{
		Nombre: "Ana", Email: "ana@example.com", Cedula: "11",
		Password: digest, Activo: true,
	})

	_, errPassword := svc.Login(context.Background(), dto.LoginInput{Email: "ana@example.com", Password: "incorrecta"})
	_, errEmail := svc.Login(context.Background(), dto.LoginInput{Email: "nadie@example.com", Password: "incorrecta"})

	if !errors.Is(errPassword, apperror.ErrCredencialesInvalidas) {
		t.Fatalf("wrong password = %v, want ErrCredencialesInvalidas", errPassword)
	}
	if !errors.Is(errEmail, apperror.ErrCredencialesInvalidas) {
		t.Fatalf("unknown email = %v, want ErrCredencialesInvalidas", errEmail)
	}
	if errPassword.Error() != errEmail.Error() {
		t.Fatalf("error messages differ (%q vs %q): user-existence oracle", errPassword, errEmail)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	svc, _ := nuevoAuthService(usuarios, rolesBase())

	digest, _ := password.Hash("correcta")
	usuarios.agregar(&model.Usuario{
		Nombre: "Inactivo", Email: "ex@example.com", Cedula: "22",
		Password: digest, Activo: false,
	})

	_, err := svc.Login(context.Background(), dto.LoginInput{Email: "ex@example.com", Password: "correcta"})
	if !errors.Is(err, apperror.ErrUsuarioInactivo) {
		t.Fatalf("Login inactivo = %v, want ErrUsuarioInactivo", err)
	}
}

func TestLoginReturnsSummaryWithoutDigest(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	roles := rolesBase()
	svc, tokens := nuevoAuthService(usuarios, roles)

	ciudadanoRol, _ := roles.FindByID(context.Background(), 3)
	digest, _ := password.Hash("correcta")
	usuarios.agregar(&model.Usuario{
		Nombre: "Ana", Email: "ana@example.com", Cedula: "11",
		Password: digest, RolID: &ciudadanoRol.ID, Rol: ciudadanoRol, Activo: true,
	})

	res, err := svc.Login(context.Background(), dto.LoginInput{Email: "ana@example.com", Password: "correcta"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("login response without token")
	}
	if userID, err := tokens.Verify(res.Token); err != nil || userID != res.Usuario.ID {
		t.Fatalf("token does not verify back to the user: id=%d err=%v", userID, err)
	}
	if res.Usuario.Rol == nil || *res.Usuario.Rol != string(model.RolCiudadano) {
		t.Fatalf("Rol = %v, want Ciudadano", res.Usuario.Rol)
	}
}
