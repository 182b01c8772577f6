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

type ClasificacionService interface {
	List(ctx context.Context) ([]*model.Clasificacion, error)
	Create(ctx context.Context, nombre string) (*model.Clasificacion, error)
	Get(ctx context.Context, id uint) (*model.Clasificacion, error)
	Update(ctx context.Context, id uint, nombre string) (*model.Clasificacion, error)
	Delete(ctx context.Context, id uint) error
}

type clasificacionService struct {
	clasificaciones repository.ClasificacionRepository
}

func NewClasificacionService(clasificaciones repository.ClasificacionRepository) ClasificacionService {
	return &clasificacionService{clasificaciones: clasificaciones}
}

func (s *clasificacionService) List(ctx context.Context) ([]*model.Clasificacion, error) {
	clasificaciones, err := s.clasificaciones.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return clasificaciones, nil
}

func (s *clasificacionService) Create(ctx context.Context, nombre string) (*model.Clasificacion, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: Nombre de clasificación es requerido.", apperror.ErrCampoRequerido)
	}

	clasificacion := &model.Clasificacion{Nombre: nombre}
	if err := s.clasificaciones.Create(ctx, clasificacion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: ya existe una clasificación con ese nombre", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return clasificacion, nil
}

func (s *clasificacionService) Get(ctx context.Context, id uint) (*model.Clasificacion, error) {
	clasificacion, err := s.clasificaciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Clasificación no encontrada.", apperror.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return clasificacion, nil
}

func (s *clasificacionService) Update(ctx context.Context, id uint, nombre string) (*model.Clasificacion, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: Nombre de clasificación es requerido.", apperror.ErrCampoRequerido)
	}

	clasificacion, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clasificacion.Nombre = nombre
	if err := s.clasificaciones.Update(ctx, clasificacion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: ya existe una clasificación con ese nombre", apperror.ErrConflicto)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return clasificacion, nil
}

// Delete refuses to remove a classification still referenced by denuncias.
// Cascade-nulling would leave complaints without the classification the
// intake validation requires, so the delete is restricted instead.
func (s *clasificacionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	enUso, err := s.clasificaciones.CountDenuncias(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	if enUso > 0 {
		return fmt.Errorf("%w: la clasificación está en uso por %d denuncias", apperror.ErrConflicto, enUso)
	}

	if err := s.clasificaciones.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrInterno, err)
	}
	return nil
}
