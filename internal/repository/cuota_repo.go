package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
)

type CuotaRepository interface {
	FindByID(ctx context.Context, id int) (*model.Cuota, error)
	ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Cuota, error)
	// UltimaCuota devuelve la cuota de mayor nrocuota de una solicitud,
	// o gorm.ErrRecordNotFound si no tiene ninguna.
	UltimaCuota(ctx context.Context, idsolicitud int) (*model.Cuota, error)
	List(ctx context.Context, filter dto.CuotaFilter) ([]model.Cuota, int64, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, cuotas []model.Cuota) error
	// PagarTx marca la cuota como pagada dentro de la transacción dada.
	PagarTx(ctx context.Context, tx *gorm.DB, c *model.Cuota) error
	UpdateImporteTx(ctx context.Context, tx *gorm.DB, id int, importe decimal.Decimal) error
	// UpdateImporteImpagasTx actualiza el importe de todas las cuotas
	// impagas de la solicitud. Las pagadas conservan su importe histórico.
	UpdateImporteImpagasTx(ctx context.Context, tx *gorm.DB, idsolicitud int, importe decimal.Decimal) error
	// SumImportePagadas es la fuente de verdad de la reconciliación.
	SumImportePagadas(ctx context.Context, tx *gorm.DB, idsolicitud int) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type cuotaRepo struct{ db *gorm.DB }

func NewCuotaRepository(db *gorm.DB) CuotaRepository { return &cuotaRepo{db: db} }

func (r *cuotaRepo) DB() *gorm.DB { return r.db }

func (r *cuotaRepo) FindByID(ctx context.Context, id int) (*model.Cuota, error) {
	var c model.Cuota
	err := r.db.WithContext(ctx).First(&c, "idcuota = ?", id).Error
	return &c, err
}

func (r *cuotaRepo) ListBySolicitud(ctx context.Context, idsolicitud int) ([]model.Cuota, error) {
	var cuotas []model.Cuota
	err := r.db.WithContext(ctx).
		Where("relasolicitud = ?", idsolicitud).
		Order("nrocuota ASC").
		Find(&cuotas).Error
	return cuotas, err
}

func (r *cuotaRepo) UltimaCuota(ctx context.Context, idsolicitud int) (*model.Cuota, error) {
	var c model.Cuota
	err := r.db.WithContext(ctx).
		Where("relasolicitud = ?", idsolicitud).
		Order("nrocuota DESC").
		First(&c).Error
	return &c, err
}

func (r *cuotaRepo) List(ctx context.Context, filter dto.CuotaFilter) ([]model.Cuota, int64, error) {
	var cuotas []model.Cuota
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Cuota{}).
		Joins("JOIN solicitud ON solicitud.idsolicitud = cuotas.relasolicitud").
		Joins("JOIN cliente ON cliente.idcliente = solicitud.relacliente")

	if filter.Busqueda != "" {
		like := "%" + filter.Busqueda + "%"
		q = q.Where("solicitud.nrosolicitud ILIKE ? OR cliente.appynom ILIKE ?", like, like)
	}
	if filter.Estado != nil {
		q = q.Where("cuotas.estado = ?", *filter.Estado)
	}
	switch filter.Filtro {
	case "pagadas":
		q = q.Where("cuotas.estado = ?", model.CuotaPagada)
	case "impagas":
		q = q.Where("cuotas.estado = ?", model.CuotaImpaga)
	case "vencidas":
		q = q.Where("cuotas.estado = ? AND cuotas.vencimiento < ?", model.CuotaImpaga, filter.Hoy)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Solicitud.Cliente.Localidad").
		Order("cuotas.vencimiento ASC, cuotas.nrocuota ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&cuotas).Error

	return cuotas, total, err
}

func (r *cuotaRepo) CreateBatch(ctx context.Context, tx *gorm.DB, cuotas []model.Cuota) error {
	return tx.WithContext(ctx).Create(&cuotas).Error
}

func (r *cuotaRepo) PagarTx(ctx context.Context, tx *gorm.DB, c *model.Cuota) error {
	return tx.WithContext(ctx).Model(&model.Cuota{}).
		Where("idcuota = ?", c.IDCuota).
		Updates(map[string]interface{}{
			"estado":        c.Estado,
			"fecha":         c.Fecha,
			"saldoanterior": c.SaldoAnterior,
		}).Error
}

func (r *cuotaRepo) UpdateImporteTx(ctx context.Context, tx *gorm.DB, id int, importe decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Cuota{}).
		Where("idcuota = ?", id).
		Update("importe", importe).Error
}

func (r *cuotaRepo) UpdateImporteImpagasTx(ctx context.Context, tx *gorm.DB, idsolicitud int, importe decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Cuota{}).
		Where("relasolicitud = ? AND estado = ?", idsolicitud, model.CuotaImpaga).
		Update("importe", importe).Error
}

func (r *cuotaRepo) SumImportePagadas(ctx context.Context, tx *gorm.DB, idsolicitud int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.WithContext(ctx).Model(&model.Cuota{}).
		Where("relasolicitud = ? AND estado = ?", idsolicitud, model.CuotaPagada).
		Select("COALESCE(SUM(importe), 0)").
		Scan(&total).Error
	return total, err
}
