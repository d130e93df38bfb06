package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

// stubReporteRepo devuelve filas fijas, armadas por cada test.
type stubReporteRepo struct {
	impagasDelMes  []dto.ReporteRow
	porVencimiento []dto.ReporteRow
	totales        []dto.SolicitudPagadoTotal
}

func (r *stubReporteRepo) CuotasImpagasDelMes(_ context.Context, _ string) ([]dto.ReporteRow, error) {
	return r.impagasDelMes, nil
}

func (r *stubReporteRepo) CuotasPorVencimiento(_ context.Context, _ time.Time) ([]dto.ReporteRow, error) {
	return r.porVencimiento, nil
}

func (r *stubReporteRepo) SumPagadasPorSolicitud(_ context.Context, _ []int) ([]dto.SolicitudPagadoTotal, error) {
	return r.totales, nil
}

func (r *stubReporteRepo) ReciboCuota(_ context.Context, idcuota int) (*dto.ReporteRow, error) {
	for i := range r.impagasDelMes {
		if r.impagasDelMes[i].IDCuota == idcuota {
			return &r.impagasDelMes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReporteRepo) CuotasPagadasDeSolicitud(_ context.Context, _ int) ([]dto.ReporteRow, error) {
	return nil, nil
}

var _ repository.ReporteRepository = (*stubReporteRepo)(nil)

func row(idsol int, nrosol, cliente string, importe float64, estadoSol, estadoCuota, localidad int) dto.ReporteRow {
	return dto.ReporteRow{
		IDCuota:         idsol*10 + estadoCuota,
		Importe:         decimal.NewFromFloat(importe),
		IDSolicitud:     idsol,
		NroSolicitud:    nrosol,
		EstadoSolicitud: estadoSol,
		EstadoCuota:     estadoCuota,
		Cliente:         cliente,
		RelaLocalidad:   localidad,
	}
}

// ── Recibos del mes ───────────────────────────────────────────────────────────

func TestRecibosMes_MesInvalido(t *testing.T) {
	svc := NewReporteService(&stubReporteRepo{})
	_, err := svc.GetRecibosMes(context.Background(), dto.RecibosMesFilter{Mes: "03-2026"})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestRecibosMes_FiltroPorLocalidad(t *testing.T) {
	repo := &stubReporteRepo{impagasDelMes: []dto.ReporteRow{
		row(1, "10", "ALVAREZ ANA", 100, 1, 0, 1),
		row(2, "11", "GOMEZ JUAN", 150, 1, 0, 2),
		row(3, "12", "PEREZ LUIS", 200, 1, 0, 1),
	}}
	svc := NewReporteService(repo)

	// localidad 0 = todas
	todas, err := svc.GetRecibosMes(context.Background(), dto.RecibosMesFilter{Mes: "2026-03"})
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	soloUna, err := svc.GetRecibosMes(context.Background(), dto.RecibosMesFilter{Mes: "2026-03", Localidad: 1})
	require.NoError(t, err)
	require.Len(t, soloUna, 2)
	assert.Equal(t, "ALVAREZ ANA", soloUna[0].Cliente)
	assert.Equal(t, "PEREZ LUIS", soloUna[1].Cliente)
}

// ── Reporte de solicitudes por estado ─────────────────────────────────────────

func TestSolicitudesReporte_MesInvalido(t *testing.T) {
	svc := NewReporteService(&stubReporteRepo{})
	_, err := svc.GetSolicitudesReporte(context.Background(), dto.SolicitudesReporteFilter{Mes: "marzo"})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestSolicitudesReporte_PagasSumaPorCliente(t *testing.T) {
	repo := &stubReporteRepo{porVencimiento: []dto.ReporteRow{
		// GOMEZ tiene dos solicitudes activas con cuota pagada en el mes
		row(2, "11", "GOMEZ JUAN", 150, 1, 2, 1),
		row(1, "10", "ALVAREZ ANA", 200, 1, 2, 1),
		row(3, "12", "GOMEZ JUAN", 100, 1, 2, 1),
		// ruido: impaga y baja quedan fuera del filtro "pagas"
		row(4, "13", "PEREZ LUIS", 300, 1, 0, 1),
		row(5, "14", "RUIZ MARIO", 400, 0, 2, 1),
	}}
	svc := NewReporteService(repo)

	out, err := svc.GetSolicitudesReporte(context.Background(), dto.SolicitudesReporteFilter{
		Estado: "pagas", Mes: "2026-03",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// ordenado por nrosolicitud: ALVAREZ ("10") antes que GOMEZ ("11")
	assert.Equal(t, "ALVAREZ ANA", out[0].Cliente)
	assert.Equal(t, "200", out[0].Importe.String())
	assert.Equal(t, "GOMEZ JUAN", out[1].Cliente)
	assert.Equal(t, "250", out[1].Importe.String())
}

func TestSolicitudesReporte_ImpagasPrimeraPorCliente(t *testing.T) {
	repo := &stubReporteRepo{porVencimiento: []dto.ReporteRow{
		row(3, "12", "GOMEZ JUAN", 100, 1, 0, 1),
		row(2, "11", "GOMEZ JUAN", 150, 1, 0, 1),
		row(1, "10", "ALVAREZ ANA", 200, 1, 0, 1),
	}}
	svc := NewReporteService(repo)

	out, err := svc.GetSolicitudesReporte(context.Background(), dto.SolicitudesReporteFilter{
		Estado: "impagas", Mes: "2026-03",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// para impagas NO se suma: queda la primera fila de cada cliente según
	// el orden por nrosolicitud
	assert.Equal(t, "ALVAREZ ANA", out[0].Cliente)
	assert.Equal(t, "GOMEZ JUAN", out[1].Cliente)
	assert.Equal(t, "11", out[1].NroSolicitud)
	assert.Equal(t, "150", out[1].Importe.String())
}

func TestSolicitudesReporte_BajasUsaTotalHistorico(t *testing.T) {
	repo := &stubReporteRepo{
		porVencimiento: []dto.ReporteRow{
			row(7, "30", "RUIZ MARIO", 100, 0, 0, 1),
			row(8, "31", "SOSA CLARA", 120, 0, 0, 1),
		},
		totales: []dto.SolicitudPagadoTotal{
			{IDSolicitud: 7, TotalPagado: decimal.NewFromFloat(1234.5)},
		},
	}
	svc := NewReporteService(repo)

	out, err := svc.GetSolicitudesReporte(context.Background(), dto.SolicitudesReporteFilter{
		Estado: "bajas", Mes: "2026-03",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// el importe de la fila se reemplaza por el total pagado antes de la baja
	assert.Equal(t, "RUIZ MARIO", out[0].Cliente)
	assert.Equal(t, "1234.5", out[0].Importe.String())
	// sin cuotas pagadas antes de la baja no se cobró nada: importe cero
	assert.Equal(t, "0", out[1].Importe.String())
}

func TestSolicitudesReporte_ModoDetalle(t *testing.T) {
	repo := &stubReporteRepo{porVencimiento: []dto.ReporteRow{
		row(2, "11", "GOMEZ JUAN", 150, 1, 2, 1),
		row(3, "12", "GOMEZ JUAN", 100, 1, 2, 1),
		row(1, "10", "ALVAREZ ANA", 200, 1, 2, 1),
	}}
	svc := NewReporteService(repo)

	out, err := svc.GetSolicitudesReporte(context.Background(), dto.SolicitudesReporteFilter{
		Estado: "pagas", Mes: "2026-03", Modo: "detalle",
	})
	require.NoError(t, err)
	// en detalle no se agrupa: una fila por cuota, ordenadas por nrosolicitud
	require.Len(t, out, 3)
	assert.Equal(t, "10", out[0].NroSolicitud)
	assert.Equal(t, "11", out[1].NroSolicitud)
	assert.Equal(t, "12", out[2].NroSolicitud)
	assert.Equal(t, "150", out[1].Importe.String())
}

func TestReciboCuota_NoExiste(t *testing.T) {
	svc := NewReporteService(&stubReporteRepo{})
	_, err := svc.GetReciboCuota(context.Background(), 999)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
