package repository

import (
	"context"

	"gorm.io/gorm"

	"vecindia.com/denunciasbackend/internal/model"
)

type DenunciaRepository interface {
	// CreateWithImagenes persists the denuncia and all its attachment rows as
	// one atomic unit. If any insert fails the whole operation rolls back and
	// no partial complaint is ever visible.
	CreateWithImagenes(ctx context.Context, denuncia *model.Denuncia, imagenes []model.ImagenDenuncia) error
	FindByID(ctx context.Context, id uint) (*model.Denuncia, error)
	FindAll(ctx context.Context) ([]*model.Denuncia, error)
	Update(ctx context.Context, denuncia *model.Denuncia) error
	Delete(ctx context.Context, id uint) error
}

type denunciaRepository struct {
	db *gorm.DB
}

func NewDenunciaRepository(db *gorm.DB) DenunciaRepository {
	return &denunciaRepository{db: db}
}

func (r *denunciaRepository) CreateWithImagenes(ctx context.Context, denuncia *model.Denuncia, imagenes []model.ImagenDenuncia) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(denuncia).Error; err != nil {
			return err
		}

		for i := range imagenes {
			imagenes[i].DenunciaID = denuncia.ID
			if err := tx.Create(&imagenes[i]).Error; err != nil {
				return err
			}
		}

		denuncia.Imagenes = imagenes
		return nil
	})
}

func (r *denunciaRepository) FindByID(ctx context.Context, id uint) (*model.Denuncia, error) {
	var denuncia model.Denuncia
	if err := r.db.WithContext(ctx).
		Preload("Clasificacion").
		Preload("ClasificacionAlternativa").
		Preload("Imagenes").
		First(&denuncia, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &denuncia, nil
}

func (r *denunciaRepository) FindAll(ctx context.Context) ([]*model.Denuncia, error) {
	var denuncias []*model.Denuncia
	if err := r.db.WithContext(ctx).
		Preload("Clasificacion").
		Preload("ClasificacionAlternativa").
		Preload("Imagenes").
		Find(&denuncias).Error; err != nil {
		return nil, err
	}
	return denuncias, nil
}

func (r *denunciaRepository) Update(ctx context.Context, denuncia *model.Denuncia) error {
	return r.db.WithContext(ctx).Save(denuncia).Error
}

// Delete removes the denuncia together with its imagenes; an orphaned
// attachment row would violate the exclusive-ownership invariant.
func (r *denunciaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ImagenDenuncia{}, "denuncia_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Denuncia{}, "id = ?", id).Error
	})
}
