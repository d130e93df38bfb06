package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type CuotaService interface {
	ObtenerCuotas(ctx context.Context, filter dto.CuotaFilter) ([]model.Cuota, int64, error)
	ObtenerCuota(ctx context.Context, idcuota int) (*model.Cuota, error)
	ObtenerCuotasSolicitud(ctx context.Context, idsolicitud int) ([]model.Cuota, error)
	PagarCuota(ctx context.Context, idcuota int) (*dto.PagoResponse, error)
	PagarMultiples(ctx context.Context, idcuotas []int) (*dto.PagoMultipleResponse, error)
	ModificarImporte(ctx context.Context, idcuota int, importe decimal.Decimal) (*model.Cuota, error)
	// Reconciliar recalcula los totales derivados de una solicitud desde
	// sus cuotas pagadas. Operación idempotente.
	Reconciliar(ctx context.Context, idsolicitud int) (*dto.SolicitudTotales, error)
}

type cuotaService struct {
	repo          repository.CuotaRepository
	solicitudRepo repository.SolicitudRepository
	now           func() time.Time
}

func NewCuotaService(repo repository.CuotaRepository, solicitudRepo repository.SolicitudRepository) CuotaService {
	return &cuotaService{repo: repo, solicitudRepo: solicitudRepo, now: time.Now}
}

func (s *cuotaService) ObtenerCuotas(ctx context.Context, filter dto.CuotaFilter) ([]model.Cuota, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Filtro == "vencidas" {
		// corte a medianoche: una cuota que vence hoy todavía no está vencida
		hoy := s.now()
		filter.Hoy = time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	}
	return s.repo.List(ctx, filter)
}

func (s *cuotaService) ObtenerCuota(ctx context.Context, idcuota int) (*model.Cuota, error) {
	cuota, err := s.repo.FindByID(ctx, idcuota)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cuota no encontrada")
		}
		return nil, err
	}
	return cuota, nil
}

func (s *cuotaService) ObtenerCuotasSolicitud(ctx context.Context, idsolicitud int) ([]model.Cuota, error) {
	return s.repo.ListBySolicitud(ctx, idsolicitud)
}

// ── PagarCuota ────────────────────────────────────────────────────────────────
// Transición de un solo sentido: impaga → pagada. La cuota mutada y el
// recálculo de la solicitud se escriben dentro de la misma transacción.

func (s *cuotaService) PagarCuota(ctx context.Context, idcuota int) (*dto.PagoResponse, error) {
	cuota, err := s.repo.FindByID(ctx, idcuota)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cuota no encontrada")
		}
		return nil, err
	}
	if cuota.Pagada() {
		return nil, apierror.Conflict("La cuota ya se encuentra pagada")
	}

	hoy := s.now()
	cuota.Estado = model.CuotaPagada
	cuota.Fecha = &hoy
	// saldoanterior guarda el importe vigente al momento del pago.
	cuota.SaldoAnterior = cuota.Importe

	var totales *dto.SolicitudTotales
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.PagarTx(ctx, tx, cuota); err != nil {
			return err
		}
		totales, err = recalcularTotales(ctx, tx, s.solicitudRepo, s.repo, cuota.RelaSolicitud)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.PagoResponse{
		CuotaPagada:          cuota,
		SolicitudActualizada: *totales,
	}, nil
}

// ── PagarMultiples ────────────────────────────────────────────────────────────
// Cada cuota se paga de forma independiente y en su propia transacción: una
// cuota inexistente o ya pagada no aborta el resto del lote. El resultado
// siempre es exitoso a nivel lote, con los errores detallados por ítem.

func (s *cuotaService) PagarMultiples(ctx context.Context, idcuotas []int) (*dto.PagoMultipleResponse, error) {
	resp := &dto.PagoMultipleResponse{
		TotalProcesadas: len(idcuotas),
		Resultados:      make([]dto.PagoItemResultado, 0, len(idcuotas)),
	}

	for _, id := range idcuotas {
		pago, err := s.PagarCuota(ctx, id)
		if err != nil {
			resp.Fallidas++
			resp.Resultados = append(resp.Resultados, dto.PagoItemResultado{
				IDCuota: id,
				Error:   err.Error(),
			})
			continue
		}
		resp.Exitosas++
		resp.Resultados = append(resp.Resultados, dto.PagoItemResultado{
			IDCuota: id,
			Pago:    pago,
		})
	}

	return resp, nil
}

// ── ModificarImporte ──────────────────────────────────────────────────────────
// Sólo sobre cuotas impagas; las pagadas conservan su importe histórico.

func (s *cuotaService) ModificarImporte(ctx context.Context, idcuota int, importe decimal.Decimal) (*model.Cuota, error) {
	if !importe.IsPositive() {
		return nil, apierror.InvalidArgument("El importe debe ser mayor a cero")
	}

	cuota, err := s.repo.FindByID(ctx, idcuota)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cuota no encontrada")
		}
		return nil, err
	}
	if cuota.Pagada() {
		return nil, apierror.Conflict("No se puede modificar el importe de una cuota pagada")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateImporteTx(ctx, tx, idcuota, importe); err != nil {
			return err
		}
		_, err := recalcularTotales(ctx, tx, s.solicitudRepo, s.repo, cuota.RelaSolicitud)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	cuota.Importe = importe
	return cuota, nil
}

func (s *cuotaService) Reconciliar(ctx context.Context, idsolicitud int) (*dto.SolicitudTotales, error) {
	var totales *dto.SolicitudTotales
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		totales, err = recalcularTotales(ctx, tx, s.solicitudRepo, s.repo, idsolicitud)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return totales, nil
}
