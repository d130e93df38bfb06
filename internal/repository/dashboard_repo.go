package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type DashboardRepository interface {
	CountSolicitudesPorEstado(ctx context.Context, estado int) (int64, error)
	CountClientes(ctx context.Context) (int64, error)
	CountCuotasImpagasDelMes(ctx context.Context, mes string) (int64, error)
	SumCobradoDelMes(ctx context.Context, mes string) (decimal.Decimal, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) CountSolicitudesPorEstado(ctx context.Context, estado int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("estado = ?", estado).Count(&count).Error
	return count, err
}

func (r *dashboardRepo) CountClientes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepo) CountCuotasImpagasDelMes(ctx context.Context, mes string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cuota{}).
		Joins("JOIN solicitud ON solicitud.idsolicitud = cuotas.relasolicitud").
		Where("cuotas.estado = ? AND solicitud.estado = ?", model.CuotaImpaga, model.SolicitudActiva).
		Where("to_char(cuotas.vencimiento, 'YYYY-MM') = ?", mes).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepo) SumCobradoDelMes(ctx context.Context, mes string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Cuota{}).
		Where("estado = ? AND to_char(fecha, 'YYYY-MM') = ?", model.CuotaPagada, mes).
		Select("COALESCE(SUM(importe), 0)").
		Scan(&total).Error
	return total, err
}
