package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type AdelantoRepository interface {
	ListDetallado(ctx context.Context) ([]model.Adelanto, error)
	ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Adelanto, error)
	SumBySolicitud(ctx context.Context, idsolicitud int) (decimal.Decimal, error)
	Create(ctx context.Context, a *model.Adelanto) error
	Delete(ctx context.Context, id int) error
}

type adelantoRepo struct{ db *gorm.DB }

func NewAdelantoRepository(db *gorm.DB) AdelantoRepository { return &adelantoRepo{db: db} }

func (r *adelantoRepo) ListDetallado(ctx context.Context) ([]model.Adelanto, error) {
	var adelantos []model.Adelanto
	err := r.db.WithContext(ctx).
		Preload("Solicitud.Cliente").
		Order("adelantofecha DESC").
		Find(&adelantos).Error
	return adelantos, err
}

func (r *adelantoRepo) ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Adelanto, error) {
	var adelantos []model.Adelanto
	err := r.db.WithContext(ctx).
		Where("relasolicitud = ?", idsolicitud).
		Order("adelantofecha ASC").
		Find(&adelantos).Error
	return adelantos, err
}

func (r *adelantoRepo) SumBySolicitud(ctx context.Context, idsolicitud int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Adelanto{}).
		Where("relasolicitud = ?", idsolicitud).
		Select("COALESCE(SUM(adelantoimporte), 0)").
		Scan(&total).Error
	return total, err
}

func (r *adelantoRepo) Create(ctx context.Context, a *model.Adelanto) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adelantoRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Adelanto{}, "idadelanto = ?", id).Error
}
