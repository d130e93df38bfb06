package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
)

type SolicitudRepository interface {
	FindByID(ctx context.Context, id int) (*model.Solicitud, error)
	FindByIDTx(ctx context.Context, tx *gorm.DB, id int) (*model.Solicitud, error)
	FindByNro(ctx context.Context, nro string) (*model.Solicitud, error)
	List(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error)
	NroExists(ctx context.Context, nro string) (bool, error)
	// NextNro devuelve el máximo nrosolicitud numérico + 1, para el
	// autonumerado cuando el alta no trae número.
	NextNro(ctx context.Context) (int, error)
	Create(ctx context.Context, tx *gorm.DB, s *model.Solicitud) error
	Update(ctx context.Context, tx *gorm.DB, s *model.Solicitud) error
	UpdateCantidadCuotasTx(ctx context.Context, tx *gorm.DB, id, cantidad int) error
	// UpdateTotalesTx persiste los campos derivados que calcula la
	// reconciliación.
	UpdateTotalesTx(ctx context.Context, tx *gorm.DB, id int, totalabonado, porcentaje decimal.Decimal) error
	UpdateObservacion(ctx context.Context, id int, observacion string) error
	DB() *gorm.DB
}

type solicitudRepo struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository { return &solicitudRepo{db: db} }

func (r *solicitudRepo) DB() *gorm.DB { return r.db }

func (r *solicitudRepo) FindByID(ctx context.Context, id int) (*model.Solicitud, error) {
	var s model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Cliente.Localidad").
		Preload("Producto").
		Preload("Vendedor").
		First(&s, "idsolicitud = ?", id).Error
	return &s, err
}

func (r *solicitudRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id int) (*model.Solicitud, error) {
	var s model.Solicitud
	err := tx.WithContext(ctx).First(&s, "idsolicitud = ?", id).Error
	return &s, err
}

func (r *solicitudRepo) FindByNro(ctx context.Context, nro string) (*model.Solicitud, error) {
	var s model.Solicitud
	err := r.db.WithContext(ctx).
		Preload("Cliente.Localidad").
		Preload("Producto").
		Preload("Vendedor").
		Preload("Cuotas", func(db *gorm.DB) *gorm.DB { return db.Order("nrocuota ASC") }).
		First(&s, "nrosolicitud = ?", nro).Error
	return &s, err
}

func (r *solicitudRepo) List(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error) {
	var solicitudes []model.Solicitud
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Joins("JOIN cliente ON cliente.idcliente = solicitud.relacliente")

	if filter.Busqueda != "" {
		like := "%" + filter.Busqueda + "%"
		q = q.Where("solicitud.nrosolicitud ILIKE ? OR cliente.appynom ILIKE ? OR cliente.dni ILIKE ?", like, like, like)
	}
	if filter.Estado != nil {
		q = q.Where("solicitud.estado = ?", *filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente.Localidad").Preload("Producto").Preload("Vendedor").
		Order("solicitud.fechalta DESC, solicitud.idsolicitud DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&solicitudes).Error

	return solicitudes, total, err
}

func (r *solicitudRepo) NroExists(ctx context.Context, nro string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("nrosolicitud = ?", nro).Count(&count).Error
	return count > 0, err
}

func (r *solicitudRepo) NextNro(ctx context.Context) (int, error) {
	// Los nrosolicitud históricos son strings numéricos; los no numéricos
	// quedan fuera del autonumerado.
	var max int
	err := r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("nrosolicitud ~ '^[0-9]+$'").
		Select("COALESCE(MAX(nrosolicitud::int), 0)").
		Scan(&max).Error
	return max + 1, err
}

func (r *solicitudRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Solicitud) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *solicitudRepo) Update(ctx context.Context, tx *gorm.DB, s *model.Solicitud) error {
	return tx.WithContext(ctx).Model(&model.Solicitud{}).
		Where("idsolicitud = ?", s.IDSolicitud).
		Updates(map[string]interface{}{
			"relacliente":  s.RelaCliente,
			"relaproducto": s.RelaProducto,
			"relavendedor": s.RelaVendedor,
			"monto":        s.Monto,
			"totalapagar":  s.TotalAPagar,
			"estado":       s.Estado,
			"observacion":  s.Observacion,
		}).Error
}

func (r *solicitudRepo) UpdateCantidadCuotasTx(ctx context.Context, tx *gorm.DB, id, cantidad int) error {
	return tx.WithContext(ctx).Model(&model.Solicitud{}).
		Where("idsolicitud = ?", id).
		Update("cantidadcuotas", cantidad).Error
}

func (r *solicitudRepo) UpdateTotalesTx(ctx context.Context, tx *gorm.DB, id int, totalabonado, porcentaje decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Solicitud{}).
		Where("idsolicitud = ?", id).
		Updates(map[string]interface{}{
			"totalabonado":     totalabonado,
			"porcentajepagado": porcentaje,
		}).Error
}

func (r *solicitudRepo) UpdateObservacion(ctx context.Context, id int, observacion string) error {
	return r.db.WithContext(ctx).Model(&model.Solicitud{}).
		Where("idsolicitud = ?", id).
		Update("observacion", observacion).Error
}
