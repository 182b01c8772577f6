package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
	"vecindia.com/denunciasbackend/internal/repository"
	"vecindia.com/denunciasbackend/pkg/apperror"
)

type RolService interface {
	List(ctx context.Context) ([]*model.Rol, error)
	Create(ctx context.Context, nombre string) (*model.Rol, error)
	Get(ctx context.Context, id uint) (*model.Rol, error)
	Delete(ctx context.Context, id uint) error
}

type rolService struct {
	roles repository.RolRepository
}

func NewRolService(roles repository.RolRepository) RolService {
	return &rolService{roles: roles}
}

func (s *rolService) List(ctx context.Context) ([]*model.Rol, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return roles, nil
}

func (s *rolService) Create(ctx context.Context, nombre string) (*model.Rol, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: Nombre de rol es requerido.", apperror.ErrCampoRequerido)
	}

	rol := &model.Rol{Nombre: nombre}
	if err := s.roles.Create(ctx, rol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: ya existe un rol con ese nombre", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return rol, nil
}

func (s *rolService) Get(ctx context.Context, id uint) (*model.Rol, error) {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Rol no encontrado.", apperror.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return rol, nil
}

// Delete removes the role. Users holding it keep existing with the reference
// cleared; that happens inside the repository transaction.
func (s *rolService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return nil
}
