package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/dto"
	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/pkg/apperror"
)

// UsuarioService is the admin-driven user management surface.
type UsuarioService interface {
	List(ctx context.Context) ([]*model.Usuario, error)
	Create(ctx context.Context, input dto.CreateUsuarioInput) (*model.Usuario, error)
	Get(ctx context.Context, id uint) (*model.Usuario, error)
	Update(ctx context.Context, id uint, input dto.UpdateUsuarioInput) (*model.Usuario, error)
	Delete(ctx context.Context, id uint) error
	AsignarRol(ctx context.Context, usuarioID, rolID uint) error
}

type usuarioService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
}

func NewUsuarioService(usuarios repository.UsuarioRepository, roles repository.RolRepository) UsuarioService {
	return &usuarioService{usuarios: usuarios, roles: roles}
}

func (s *usuarioService) List(ctx context.Context) ([]*model.Usuario, error) {
	usuarios, err := s.usuarios.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return usuarios, nil
}

func (s *usuarioService) Create(ctx context.Context, input dto.CreateUsuarioInput) (*model.Usuario, error) {
	rol, err := s.roles.FindByID(ctx, *input.RolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: el rol indicado no existe", apperror.ErrReferenciaInvalida)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
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

func (s *usuarioService) Get(ctx context.Context, id uint) (*model.Usuario, error) {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Usuario no encontrado.", apperror.ErrUsuarioNoEncontrado)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return usuario, nil
}

func (s *usuarioService) Update(ctx context.Context, id uint, input dto.UpdateUsuarioInput) (*model.Usuario, error) {
	usuario, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	aplicarPatchUsuario(usuario, dto.UpdateProfileInput{
		Nombre:    input.Nombre,
		Cedula:    input.Cedula,
		Telefono:  input.Telefono,
		Direccion: input.Direccion,
		Email:     input.Email,
		Latitud:   input.Latitud,
		Longitud:  input.Longitud,
	})
	if input.Activo != nil {
		usuario.Activo = *input.Activo
	}

	if err := s.usuarios.Update(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: el correo o la cédula ya están en uso por otro usuario", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return usuario, nil
}

func (s *usuarioService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.usuarios.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return nil
}

func (s *usuarioService) AsignarRol(ctx context.Context, usuarioID, rolID uint) error {
	usuario, err := s.Get(ctx, usuarioID)
	if err != nil {
		return err
	}

	rol, err := s.roles.FindByID(ctx, rolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: Rol no encontrado.", apperror.ErrNoEncontrado)
		}
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	usuario.RolID = &rol.ID
	usuario.Rol = rol
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return nil
}

// aplicarPatchUsuario applies the self-editable field patch: only the fields
// present in the patch change, field by field.
func aplicarPatchUsuario(usuario *model.Usuario, input dto.UpdateProfileInput) {
	if input.Nombre != nil {
		usuario.Nombre = *input.Nombre
	}
	if input.Cedula != nil {
		usuario.Cedula = *input.Cedula
	}
	if input.Telefono != nil {
		usuario.Telefono = *input.Telefono
	}
	if input.Direccion != nil {
		usuario.Direccion = *input.Direccion
	}
	if input.Email != nil {
		usuario.Email = *input.Email
	}
	if input.Latitud != nil {
		usuario.Latitud = input.Latitud
	}
	if input.Longitud != nil {
		usuario.Longitud = input.Longitud
	}
}
