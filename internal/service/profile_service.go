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

// ProfileService is the self-service edit path. It shares the patch logic
// with the admin path but can never touch `activo` or the role.
type ProfileService interface {
	Update(ctx context.Context, usuarioID uint, input dto.UpdateProfileInput) (*model.Usuario, error)
}

type profileService struct {
	usuarios repository.UsuarioRepository
}

func NewProfileService(usuarios repository.UsuarioRepository) ProfileService {
	return &profileService{usuarios: usuarios}
}

func (s *profileService) Update(ctx context.Context, usuarioID uint, input dto.UpdateProfileInput) (*model.Usuario, error) {
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Usuario no encontrado.", apperror.ErrUsuarioNoEncontrado)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}

	aplicarPatchUsuario(usuario, input)

	if err := s.usuarios.Update(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: el correo o la cédula ya están en uso por otro usuario", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return usuario, nil
}
