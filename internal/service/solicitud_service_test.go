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

func buildSolicitudSvc(hoy time.Time) (*solicitudService, *stubSolicitudRepo, *stubCuotaRepo) {
	solicitudRepo := newStubSolicitudRepo()
	cuotaRepo := newStubCuotaRepo()
	svc := &solicitudService{
		repo:      solicitudRepo,
		cuotaRepo: cuotaRepo,
		now:       func() time.Time { return hoy },
	}
	return svc, solicitudRepo, cuotaRepo
}

func TestCrearSolicitud_CronogramaDespuesDel20(t *testing.T) {
	// alta el 25 de marzo: el primer vencimiento salta al 20 de abril
	svc, _, cuotaRepo := buildSolicitudSvc(time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC))

	sol, err := svc.Crear(context.Background(), dto.CrearSolicitudRequest{
		NroSolicitud:   "500",
		RelaCliente:    1,
		RelaProducto:   1,
		RelaVendedor:   1,
		Monto:          decimal.NewFromInt(100),
		CantidadCuotas: 3,
		TotalAPagar:    decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, model.SolicitudActiva, sol.Estado)

	cuotas, err := cuotaRepo.ListBySolicitud(context.Background(), sol.IDSolicitud)
	require.NoError(t, err)
	require.Len(t, cuotas, 3)

	esperados := []string{"2026-04-20", "2026-05-20", "2026-06-20"}
	for i, c := range cuotas {
		assert.Equal(t, i+1, c.NroCuota)
		assert.Equal(t, model.CuotaImpaga, c.Estado)
		assert.True(t, c.Importe.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, esperados[i], c.Vencimiento.Format("2006-01-02"))
	}
}

func TestCrearSolicitud_CronogramaAntesDel20(t *testing.T) {
	// alta el 5 de marzo: la primera cuota vence el 20 del mismo mes
	svc, _, cuotaRepo := buildSolicitudSvc(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	sol, err := svc.Crear(context.Background(), dto.CrearSolicitudRequest{
		NroSolicitud:   "501",
		RelaCliente:    1,
		RelaProducto:   1,
		RelaVendedor:   1,
		Monto:          decimal.NewFromInt(100),
		CantidadCuotas: 2,
		TotalAPagar:    decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	cuotas, _ := cuotaRepo.ListBySolicitud(context.Background(), sol.IDSolicitud)
	require.Len(t, cuotas, 2)
	assert.Equal(t, "2026-03-20", cuotas[0].Vencimiento.Format("2006-01-02"))
	assert.Equal(t, "2026-04-20", cuotas[1].Vencimiento.Format("2006-01-02"))
}

func TestCrearSolicitud_Autonumerado(t *testing.T) {
	svc, solicitudRepo, _ := buildSolicitudSvc(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	seedSolicitud(solicitudRepo, "41", 100, 300)
	// los números no numéricos quedan fuera del autonumerado
	seedSolicitud(solicitudRepo, "A-100", 100, 300)

	sol, err := svc.Crear(context.Background(), dto.CrearSolicitudRequest{
		RelaCliente:    1,
		RelaProducto:   1,
		RelaVendedor:   1,
		Monto:          decimal.NewFromInt(100),
		CantidadCuotas: 1,
		TotalAPagar:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "42", sol.NroSolicitud)
}

func TestCrearSolicitud_NroDuplicado(t *testing.T) {
	svc, solicitudRepo, _ := buildSolicitudSvc(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	seedSolicitud(solicitudRepo, "77", 100, 300)

	_, err := svc.Crear(context.Background(), dto.CrearSolicitudRequest{
		NroSolicitud:   "77",
		RelaCliente:    1,
		RelaProducto:   1,
		RelaVendedor:   1,
		Monto:          decimal.NewFromInt(100),
		CantidadCuotas: 1,
		TotalAPagar:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestActualizar_MontoPropagaSoloImpagas(t *testing.T) {
	svc, solicitudRepo, cuotaRepo := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	pagada := seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)
	impaga := seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaImpaga)

	nuevoMonto := decimal.NewFromInt(300)
	_, err := svc.Actualizar(context.Background(), sol.IDSolicitud, dto.ActualizarSolicitudRequest{
		Monto: &nuevoMonto,
	})
	require.NoError(t, err)

	// la pagada conserva su importe histórico
	assert.Equal(t, "250", pagada.Importe.String())
	assert.Equal(t, "300", impaga.Importe.String())
}

func TestActualizar_TotalAPagarRecalculaPorcentaje(t *testing.T) {
	svc, solicitudRepo, cuotaRepo := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)

	nuevoTotal := decimal.NewFromInt(500)
	actualizada, err := svc.Actualizar(context.Background(), sol.IDSolicitud, dto.ActualizarSolicitudRequest{
		TotalAPagar: &nuevoTotal,
	})
	require.NoError(t, err)

	// cambió el denominador: 250 de 500 pagado
	assert.Equal(t, "250", actualizada.TotalAbonado.String())
	assert.Equal(t, "50", actualizada.PorcentajePagado.String())
}

func TestActualizar_MontoInvalido(t *testing.T) {
	svc, solicitudRepo, _ := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)

	cero := decimal.Zero
	_, err := svc.Actualizar(context.Background(), sol.IDSolicitud, dto.ActualizarSolicitudRequest{
		Monto: &cero,
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestAdicionarCuotas_ContinuaCronograma(t *testing.T) {
	svc, solicitudRepo, cuotaRepo := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	sol.CantidadCuotas = 3
	seedCuota(cuotaRepo, sol.IDSolicitud, 1, 250, model.CuotaPagada)
	seedCuota(cuotaRepo, sol.IDSolicitud, 2, 250, model.CuotaImpaga)
	ultima := seedCuota(cuotaRepo, sol.IDSolicitud, 3, 250, model.CuotaImpaga)
	ultima.Vencimiento = time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	actualizada, err := svc.AdicionarCuotas(context.Background(), sol.IDSolicitud, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, actualizada.CantidadCuotas)

	cuotas, _ := cuotaRepo.ListBySolicitud(context.Background(), sol.IDSolicitud)
	require.Len(t, cuotas, 5)
	assert.Equal(t, 4, cuotas[3].NroCuota)
	assert.Equal(t, "2026-07-20", cuotas[3].Vencimiento.Format("2006-01-02"))
	assert.Equal(t, 5, cuotas[4].NroCuota)
	assert.Equal(t, "2026-08-20", cuotas[4].Vencimiento.Format("2006-01-02"))
	// las nuevas nacen impagas con el monto vigente
	assert.Equal(t, model.CuotaImpaga, cuotas[3].Estado)
	assert.True(t, cuotas[3].Importe.Equal(sol.Monto))
}

func TestAdicionarCuotas_SinCronograma(t *testing.T) {
	svc, solicitudRepo, _ := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)

	_, err := svc.AdicionarCuotas(context.Background(), sol.IDSolicitud, 2)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestAdicionarCuotas_CantidadInvalida(t *testing.T) {
	svc, _, _ := buildSolicitudSvc(time.Now())
	_, err := svc.AdicionarCuotas(context.Background(), 1, 0)
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestActualizarObservacion(t *testing.T) {
	svc, solicitudRepo, _ := buildSolicitudSvc(time.Now())
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)

	err := svc.ActualizarObservacion(context.Background(), sol.IDSolicitud, "entrega parcial")
	require.NoError(t, err)
	assert.Equal(t, "entrega parcial", sol.Observacion)

	err = svc.ActualizarObservacion(context.Background(), 999, "x")
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
