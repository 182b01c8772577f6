package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/internal/token"
	"vecindia.com/denunciasbackend/pkg/apperror"
	"vecindia.com/denunciasbackend/pkg/password"
)

type AuthService interface {
	// Register creates a citizen account. bearerToken, when present, is the
	// raw value of the Authorization header: a valid admin token lets the
	// caller pick the new account's role explicitly.
	Register(ctx context.Context, input dto.RegisterInput, bearerToken string) (*model.Usuario, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error)
}

type authService struct {
	usuarios    repository.UsuarioRepository
	roles       repository.RolRepository
	tokens      *token.Service
	throttle    *loginThrottle
	defaultRole string
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	roles repository.RolRepository,
	tokens *token.Service,
	rdb *redis.Client,
	loginLockout time.Duration,
	defaultRole string,
) AuthService {
	return &authService{
		usuarios:    usuarios,
		roles:       roles,
		tokens:      tokens,
		throttle:    &loginThrottle{rdb: rdb, lockout: loginLockout},
		defaultRole: defaultRole,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput, bearerToken string) (*model.Usuario, error) {
	// Advisory pre-check; the unique index closes the race at commit time.
	if _, err := s.usuarios.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con este correo electrónico", apperror.ErrConflicto)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	rol, err := s.roles.FindByNombre(ctx, s.defaultRole)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rol por defecto no configurado", apperror.ErrInterno)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	// A valid admin token may override the default role. Any failure along
	// this path is absorbed: registration never fails because an optional
	// privilege hint was malformed.
	if override := s.resolveAdminOverride(ctx, bearerToken, input.RolID); override != nil {
		rol = override
	}

	usuario := &model.Usuario{
		Nombre:    input.Nombre,
		Cedula:    input.Cedula,
		Telefono:  input.Telefono,
		Direccion: input.Direccion,
		Email:     input.Email,
		Password:  input.Password,
		RolID:     &rol.ID,
		Latitud:   input.Latitud,
		Longitud:  input.Longitud,
	}

	if err := s.usuarios.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: el correo o la cédula ya están en uso", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	usuario.Rol = rol
	return usuario, nil
}

// resolveAdminOverride returns the requested role when the bearer token
// belongs to an active administrator and the role exists; nil otherwise.
func (s *authService) resolveAdminOverride(ctx context.Context, bearerToken string, rolID *uint) *model.Rol {
	if bearerToken == "" || rolID == nil {
		return nil
	}

	callerID, err := s.tokens.Verify(bearerToken)
	if err != nil {
		zap.L().Debug("registro: token de override descartado", zap.Error(err))
		return nil
	}

	caller, err := s.usuarios.FindByID(ctx, callerID)
	if err != nil {
		return nil
	}
	if caller.Rol == nil || !strings.EqualFold(caller.Rol.Nombre, string(model.RolAdministrador)) {
		return nil
	}

	rol, err := s.roles.FindByID(ctx, *rolID)
	if err != nil {
		return nil
	}
	return rol
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	allowed, err := s.throttle.Allowed(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	if !allowed {
		return nil, apperror.ErrDemasiadosIntentos
	}

	usuario, err := s.usuarios.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password: no user-existence oracle.
			return nil, fmt.Errorf("%w: Credenciales inválidas.", apperror.ErrCredencialesInvalidas)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	if !password.Verify(input.Password, usuario.Password) {
		if err := s.throttle.RegisterFailure(ctx, input.Email); err != nil {
			zap.L().Warn("no se pudo registrar el intento fallido", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: Credenciales inválidas.", apperror.ErrCredencialesInvalidas)
	}

	if !usuario.Activo {
		return nil, fmt.Errorf("%w: Usuario inactivo.", apperror.ErrUsuarioInactivo)
	}

	signed, _, err := s.tokens.Issue(usuario.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	return &dto.LoginResponse{
		Message: "Login exitoso.",
		Token:   signed,
		Usuario: dto.UsuarioResumen{
			ID:            usuario.ID,
			Nombre:        usuario.Nombre,
			Email:         usuario.Email,
			Rol:           usuario.NombreRol(),
			Latitud:       usuario.Latitud,
			Longitud:      usuario.Longitud,
			FechaRegistro: usuario.FechaRegistro,
			Activo:        usuario.Activo,
		},
	}, nil
}
