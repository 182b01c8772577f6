package repository

import (
	"context"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
)

type RolRepository interface {
	Create(ctx context.Context, rol *model.Rol) error
	FindByID(ctx context.Context, id uint) (*model.Rol, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Rol, error)
	FindAll(ctx context.Context) ([]*model.Rol, error)
	Delete(ctx context.Context, id uint) error
}

type rolRepository struct {
	db *gorm.DB
}

func NewRolRepository(db *gorm.DB) RolRepository {
	return &rolRepository{db: db}
}

func (r *rolRepository) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepository) FindByID(ctx context.Context, id uint) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepository) FindByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepository) FindAll(ctx context.Context) ([]*model.Rol, error) {
	var roles []*model.Rol
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// Delete removes the role and clears the reference on every user that held
// it, in one transaction. Users themselves are never deleted with their role.
func (r *rolRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Usuario{}).
			Where("rol_id = ?", id).
			Update("rol_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Rol{}, "id = ?", id).Error
	})
}
