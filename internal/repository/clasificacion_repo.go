package repository

import (
	"context"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
)

type ClasificacionRepository interface {
	Create(ctx context.Context, clasificacion *model.Clasificacion) error
	FindByID(ctx context.Context, id uint) (*model.Clasificacion, error)
	FindAll(ctx context.Context) ([]*model.Clasificacion, error)
	Update(ctx context.Context, clasificacion *model.Clasificacion) error
	Delete(ctx context.Context, id uint) error
	CountDenuncias(ctx context.Context, id uint) (int64, error)
}

type clasificacionRepository struct {
	db *gorm.DB
}

func NewClasificacionRepository(db *gorm.DB) ClasificacionRepository {
	return &clasificacionRepository{db: db}
}

func (r *clasificacionRepository) Create(ctx context.Context, clasificacion *model.Clasificacion) error {
	return r.db.WithContext(ctx).Create(clasificacion).Error
}

func (r *clasificacionRepository) FindByID(ctx context.Context, id uint) (*model.Clasificacion, error) {
	var clasificacion model.Clasificacion
	if err := r.db.WithContext(ctx).First(&clasificacion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &clasificacion, nil
}

func (r *clasificacionRepository) FindAll(ctx context.Context) ([]*model.Clasificacion, error) {
	var clasificaciones []*model.Clasificacion
	if err := r.db.WithContext(ctx).Order("id").Find(&clasificaciones).Error; err != nil {
		return nil, err
	}
	return clasificaciones, nil
}

func (r *clasificacionRepository) Update(ctx context.Context, clasificacion *model.Clasificacion) error {
	return r.db.WithContext(ctx).Save(clasificacion).Error
}

func (r *clasificacionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Clasificacion{}, "id = ?", id).Error
}

// CountDenuncias counts complaints referencing the classification, either as
// the primary or the alternate one. The delete guard uses it.
func (r *clasificacionRepository) CountDenuncias(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Denuncia{}).
		Where("clasificacion_id = ? OR clasificacion_alternativa_id = ?", id, id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
