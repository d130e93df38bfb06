package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
)

func buildCuotaSvc() (*cuotaService, *stubCuotaRepo, *stubSolicitudRepo) {
	cuotaRepo := newStubCuotaRepo()
	solicitudRepo := newStubSolicitudRepo()
	svc := &cuotaService{
		repo:          cuotaRepo,
		solicitudRepo: solicitudRepo,
		now:           func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) },
	}
	return svc, cuotaRepo, solicitudRepo
}

func TestObtenerCuota_Existente(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	c1 := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaImpaga)

	cuota, err := svc.ObtenerCuota(context.Background(), c1.IDCuota)
	require.NoError(t, err)
	assert.Equal(t, c1.IDCuota, cuota.IDCuota)
	assert.Equal(t, 1, cuota.NroCuota)
}

func TestObtenerCuota_NoExiste(t *testing.T) {
	svc, _, _ := buildCuotaSvc()

	_, err := svc.ObtenerCuota(context.Background(), 999)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestObtenerCuotas_FiltroVencidas(t *testing.T) {
	svc, cuotaRepo, _ := buildCuotaSvc()

	_, _, err := svc.ObtenerCuotas(context.Background(), dto.CuotaFilter{Filtro: "vencidas"})
	require.NoError(t, err)

	// el corte queda fijado a la medianoche del día del reloj inyectado:
	// una cuota que vence hoy todavía no cuenta como vencida
	assert.Equal(t, "vencidas", cuotaRepo.lastFilter.Filtro)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), cuotaRepo.lastFilter.Hoy)
}

func TestObtenerCuotas_SinFiltroNoFijaCorte(t *testing.T) {
	svc, cuotaRepo, _ := buildCuotaSvc()

	_, _, err := svc.ObtenerCuotas(context.Background(), dto.CuotaFilter{Filtro: "impagas"})
	require.NoError(t, err)
	assert.True(t, cuotaRepo.lastFilter.Hoy.IsZero())
}

func TestPagarCuota_MarcaPagadaYRecalcula(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	c1 := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaImpaga)
	seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaImpaga)

	resp, err := svc.PagarCuota(context.Background(), c1.IDCuota)
	require.NoError(t, err)

	assert.Equal(t, model.CuotaPagada, resp.CuotaPagada.Estado)
	require.NotNil(t, resp.CuotaPagada.Fecha)
	assert.Equal(t, "2026-08-15", resp.CuotaPagada.Fecha.Format("2006-01-02"))
	// saldoanterior conserva el importe vigente al momento del pago
	assert.True(t, resp.CuotaPagada.SaldoAnterior.Equal(decimal.NewFromInt(250)))

	// totales derivados recalculados desde las cuotas pagadas
	assert.Equal(t, "250", resp.SolicitudActualizada.TotalAbonado.String())
	assert.Equal(t, "25", resp.SolicitudActualizada.PorcentajePagado.String())

	// y persistidos en la solicitud
	assert.Equal(t, "250", sol.TotalAbonado.String())
	assert.Equal(t, "25", sol.PorcentajePagado.String())
}

func TestPagarCuota_YaPagada(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	c := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)

	_, err := svc.PagarCuota(context.Background(), c.IDCuota)
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestPagarCuota_NoExiste(t *testing.T) {
	svc, _, _ := buildCuotaSvc()
	_, err := svc.PagarCuota(context.Background(), 999)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestPagarCuota_TotalAPagarEnCero(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 0)
	c := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaImpaga)

	// división por cero en el porcentaje: se rechaza la operación
	_, err := svc.PagarCuota(context.Background(), c.IDCuota)
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestPagarCuota_PorcentajeRedondeado(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 100, 300)
	c := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 100, model.CuotaImpaga)

	resp, err := svc.PagarCuota(context.Background(), c.IDCuota)
	require.NoError(t, err)
	// 100 * 100 / 300 = 33.333… → redondeado a 2 decimales
	assert.Equal(t, "33.33", resp.SolicitudActualizada.PorcentajePagado.String())
}

func TestPagarMultiples_ErroresParciales(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	impaga := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaImpaga)
	pagada := seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaPagada)

	resp, err := svc.PagarMultiples(context.Background(), []int{impaga.IDCuota, pagada.IDCuota, 999})
	// el lote siempre es exitoso; los errores van por ítem
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalProcesadas)
	assert.Equal(t, 1, resp.Exitosas)
	assert.Equal(t, 2, resp.Fallidas)
	require.Len(t, resp.Resultados, 3)

	assert.Empty(t, resp.Resultados[0].Error)
	assert.NotNil(t, resp.Resultados[0].Pago)
	assert.NotEmpty(t, resp.Resultados[1].Error)
	assert.NotEmpty(t, resp.Resultados[2].Error)
}

func TestPagarMultiples_DosImpagasYUnaPagada(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	a := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaImpaga)
	b := seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaPagada)
	c := seedCuota(cuotaRepo, sol.IDSolicitud, 3, 250, model.CuotaImpaga)

	resp, err := svc.PagarMultiples(context.Background(), []int{a.IDCuota, b.IDCuota, c.IDCuota})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Exitosas)
	assert.Equal(t, 1, resp.Fallidas)

	// a y c quedan pagadas; b no se toca
	assert.Equal(t, model.CuotaPagada, cuotaRepo.cuotas[a.IDCuota].Estado)
	assert.Equal(t, model.CuotaPagada, cuotaRepo.cuotas[c.IDCuota].Estado)
	assert.Nil(t, cuotaRepo.cuotas[b.IDCuota].Fecha)

	// los totales reflejan las tres pagadas (b ya lo estaba)
	assert.Equal(t, "750", sol.TotalAbonado.String())
	assert.Equal(t, "75", sol.PorcentajePagado.String())
}

func TestModificarImporte_ActualizaYRecalcula(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	pagada := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)
	impaga := seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaImpaga)
	_ = pagada

	cuota, err := svc.ModificarImporte(context.Background(), impaga.IDCuota, decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.Equal(t, "300", cuota.Importe.String())

	// sólo suman las pagadas: el recálculo no cambia por la impaga
	assert.Equal(t, "250", sol.TotalAbonado.String())
}

func TestModificarImporte_CuotaPagada(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	c := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)

	_, err := svc.ModificarImporte(context.Background(), c.IDCuota, decimal.NewFromInt(300))
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestModificarImporte_ImporteInvalido(t *testing.T) {
	svc, _, _ := buildCuotaSvc()

	_, err := svc.ModificarImporte(context.Background(), 1, decimal.Zero)
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)

	_, err = svc.ModificarImporte(context.Background(), 1, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestReconciliar_Idempotente(t *testing.T) {
	svc, cuotaRepo, solicitudRepo := buildCuotaSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)
	seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaPagada)
	seedCuota(cuotaRepo, sol.IDSolicitud, 3, 250, model.CuotaImpaga)

	t1, err := svc.Reconciliar(context.Background(), sol.IDSolicitud)
	require.NoError(t, err)
	t2, err := svc.Reconciliar(context.Background(), sol.IDSolicitud)
	require.NoError(t, err)

	assert.Equal(t, "500", t1.TotalAbonado.String())
	assert.Equal(t, "50", t1.PorcentajePagado.String())
	assert.True(t, t1.TotalAbonado.Equal(t2.TotalAbonado))
	assert.True(t, t1.PorcentajePagado.Equal(t2.PorcentajePagado))
}

func TestReconciliar_SolicitudInexistente(t *testing.T) {
	svc, _, _ := buildCuotaSvc()
	_, err := svc.Reconciliar(context.Background(), 999)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
