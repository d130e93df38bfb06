package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/dto"
)

// reporteRowSelect arma la fila desnormalizada que consumen los reportes.
const reporteRowSelect = `
	cuotas.idcuota            AS id_cuota,
	cuotas.nrocuota           AS nro_cuota,
	cuotas.importe            AS importe,
	cuotas.vencimiento        AS vencimiento,
	cuotas.estado             AS estado_cuota,
	solicitud.idsolicitud     AS id_solicitud,
	solicitud.nrosolicitud    AS nro_solicitud,
	solicitud.estado          AS estado_solicitud,
	solicitud.cantidadcuotas  AS cantidad_cuotas,
	solicitud.totalapagar     AS total_a_pagar,
	solicitud.totalabonado    AS total_abonado,
	solicitud.porcentajepagado AS porcentaje_pagado,
	cliente.appynom           AS cliente,
	cliente.dni               AS dni,
	cliente.direccion         AS direccion,
	cliente.telefono          AS telefono,
	cliente.relalocalidad     AS rela_localidad,
	localidad.nombre          AS localidad,
	producto.descripcion      AS producto`

type ReporteRepository interface {
	// CuotasImpagasDelMes devuelve las cuotas impagas de solicitudes
	// activas cuyo vencimiento cae dentro del mes "YYYY-MM". El filtro
	// por localidad se aplica en el servicio.
	CuotasImpagasDelMes(ctx context.Context, mes string) ([]dto.ReporteRow, error)
	// CuotasPorVencimiento devuelve todas las cuotas (cualquier estado,
	// de solicitudes en cualquier estado) con vencimiento exacto en la
	// fecha dada. El servicio aplica los filtros por estado del reporte.
	CuotasPorVencimiento(ctx context.Context, vencimiento time.Time) ([]dto.ReporteRow, error)
	// SumPagadasPorSolicitud devuelve el total pagado de cada solicitud
	// del conjunto, para la variante "bajas" del reporte.
	SumPagadasPorSolicitud(ctx context.Context, ids []int) ([]dto.SolicitudPagadoTotal, error)
	ReciboCuota(ctx context.Context, idcuota int) (*dto.ReporteRow, error)
	// CuotasPagadasDeSolicitud alimenta el recibo consolidado de una
	// solicitud saldada.
	CuotasPagadasDeSolicitud(ctx context.Context, idsolicitud int) ([]dto.ReporteRow, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cuotas").
		Select(reporteRowSelect).
		Joins("JOIN solicitud ON solicitud.idsolicitud = cuotas.relasolicitud").
		Joins("JOIN cliente ON cliente.idcliente = solicitud.relacliente").
		Joins("LEFT JOIN localidad ON localidad.idlocalidad = cliente.relalocalidad").
		Joins("LEFT JOIN producto ON producto.idproducto = solicitud.relaproducto")
}

func (r *reporteRepo) CuotasImpagasDelMes(ctx context.Context, mes string) ([]dto.ReporteRow, error) {
	var rows []dto.ReporteRow
	err := r.baseQuery(ctx).
		Where("cuotas.estado = 0 AND solicitud.estado = 1").
		Where("to_char(cuotas.vencimiento, 'YYYY-MM') = ?", mes).
		Order("cliente.appynom ASC, cuotas.vencimiento ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) CuotasPorVencimiento(ctx context.Context, vencimiento time.Time) ([]dto.ReporteRow, error) {
	var rows []dto.ReporteRow
	err := r.baseQuery(ctx).
		Where("cuotas.vencimiento = ?", vencimiento.Format("2006-01-02")).
		Order("solicitud.nrosolicitud ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) SumPagadasPorSolicitud(ctx context.Context, ids []int) ([]dto.SolicitudPagadoTotal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var totales []dto.SolicitudPagadoTotal
	err := r.db.WithContext(ctx).
		Table("cuotas").
		Select("relasolicitud AS id_solicitud, COALESCE(SUM(importe), 0) AS total_pagado").
		Where("relasolicitud IN ? AND estado = 2", ids).
		Group("relasolicitud").
		Scan(&totales).Error
	return totales, err
}

func (r *reporteRepo) ReciboCuota(ctx context.Context, idcuota int) (*dto.ReporteRow, error) {
	var row dto.ReporteRow
	err := r.baseQuery(ctx).
		Where("cuotas.idcuota = ?", idcuota).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.IDCuota == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *reporteRepo) CuotasPagadasDeSolicitud(ctx context.Context, idsolicitud int) ([]dto.ReporteRow, error) {
	var rows []dto.ReporteRow
	err := r.baseQuery(ctx).
		Where("cuotas.relasolicitud = ? AND cuotas.estado = 2", idsolicitud).
		Order("cuotas.nrocuota ASC").
		Scan(&rows).Error
	return rows, err
}
