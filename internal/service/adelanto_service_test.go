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
)

func buildAdelantoSvc() (*adelantoService, *stubAdelantoRepo, *stubSolicitudRepo) {
	adelantoRepo := newStubAdelantoRepo()
	solicitudRepo := newStubSolicitudRepo()
	svc := &adelantoService{
		repo:          adelantoRepo,
		solicitudRepo: solicitudRepo,
		now:           func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) },
	}
	return svc, adelantoRepo, solicitudRepo
}

func TestCrearAdelanto_ImporteInvalido(t *testing.T) {
	svc, _, solicitudRepo := buildAdelantoSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)

	_, err := svc.Crear(context.Background(), dto.CrearAdelantoRequest{
		RelaSolicitud:   sol.IDSolicitud,
		AdelantoImporte: decimal.Zero,
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestCrearAdelanto_SolicitudInexistente(t *testing.T) {
	svc, _, _ := buildAdelantoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearAdelantoRequest{
		RelaSolicitud:   999,
		AdelantoImporte: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestListarAdelantosDetallado_OrdenPorFechaDescendente(t *testing.T) {
	svc, _, solicitudRepo := buildAdelantoSvc()
	sol := seedSolicitud(solicitudRepo, "100", 250, 1000)
	otra := seedSolicitud(solicitudRepo, "101", 300, 1200)

	_, err := svc.Crear(context.Background(), dto.CrearAdelantoRequest{
		RelaSolicitud:   sol.IDSolicitud,
		AdelantoImporte: decimal.NewFromInt(100),
		AdelantoFecha:   "2026-08-01",
	})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearAdelantoRequest{
		RelaSolicitud:   otra.IDSolicitud,
		AdelantoImporte: decimal.NewFromInt(200),
		AdelantoFecha:   "2026-08-10",
	})
	require.NoError(t, err)

	adelantos, err := svc.ListarDetallado(context.Background())
	require.NoError(t, err)
	require.Len(t, adelantos, 2)

	// el listado global llega con el adelanto más reciente primero
	assert.Equal(t, "2026-08-10", adelantos[0].AdelantoFecha.Format("2006-01-02"))
	assert.True(t, adelantos[0].AdelantoImporte.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "2026-08-01", adelantos[1].AdelantoFecha.Format("2006-01-02"))
}
