package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type ComprobanteRepository interface {
	FindByID(ctx context.Context, id int) (*model.Comprobante, error)
	ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Comprobante, error)
	Create(ctx context.Context, c *model.Comprobante) error
	Delete(ctx context.Context, id int) error
}

type comprobanteRepo struct{ db *gorm.DB }

func NewComprobanteRepository(db *gorm.DB) ComprobanteRepository { return &comprobanteRepo{db: db} }

func (r *comprobanteRepo) FindByID(ctx context.Context, id int) (*model.Comprobante, error) {
	var c model.Comprobante
	err := r.db.WithContext(ctx).First(&c, "idcomprobante = ?", id).Error
	return &c, err
}

func (r *comprobanteRepo) ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Comprobante, error) {
	var comprobantes []model.Comprobante
	err := r.db.WithContext(ctx).
		Where("relasolicitud = ?", idsolicitud).
		Order("created_at DESC").
		Find(&comprobantes).Error
	return comprobantes, err
}

func (r *comprobanteRepo) Create(ctx context.Context, c *model.Comprobante) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comprobanteRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Comprobante{}, "idcomprobante = ?", id).Error
}
