package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type SolicitudService interface {
	Listar(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error)
	Obtener(ctx context.Context, id int) (*model.Solicitud, error)
	ObtenerPorNro(ctx context.Context, nro string) (*model.Solicitud, error)
	Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*model.Solicitud, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarSolicitudRequest) (*model.Solicitud, error)
	AdicionarCuotas(ctx context.Context, id, cantidad int) (*model.Solicitud, error)
	ActualizarObservacion(ctx context.Context, id int, observacion string) error
}

type solicitudService struct {
	repo      repository.SolicitudRepository
	cuotaRepo repository.CuotaRepository
	now       func() time.Time
}

func NewSolicitudService(repo repository.SolicitudRepository, cuotaRepo repository.CuotaRepository) SolicitudService {
	return &solicitudService{repo: repo, cuotaRepo: cuotaRepo, now: time.Now}
}

func (s *solicitudService) Listar(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *solicitudService) Obtener(ctx context.Context, id int) (*model.Solicitud, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}
	return sol, nil
}

func (s *solicitudService) ObtenerPorNro(ctx context.Context, nro string) (*model.Solicitud, error) {
	sol, err := s.repo.FindByNro(ctx, nro)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}
	return sol, nil
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Alta de la solicitud con su cronograma inicial de cuotas en una sola
// transacción. Si el alta no trae número se autonumera con el máximo
// numérico existente + 1.

func (s *solicitudService) Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*model.Solicitud, error) {
	nro := req.NroSolicitud
	if nro == "" {
		next, err := s.repo.NextNro(ctx)
		if err != nil {
			return nil, err
		}
		nro = strconv.Itoa(next)
	} else {
		exists, err := s.repo.NroExists(ctx, nro)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflict("Ya existe una solicitud con ese número")
		}
	}

	hoy := s.now()
	sol := &model.Solicitud{
		NroSolicitud:   nro,
		RelaCliente:    req.RelaCliente,
		RelaProducto:   req.RelaProducto,
		RelaVendedor:   req.RelaVendedor,
		Monto:          req.Monto,
		CantidadCuotas: req.CantidadCuotas,
		TotalAPagar:    req.TotalAPagar,
		Observacion:    req.Observacion,
		Estado:         model.SolicitudActiva,
		FechaAlta:      hoy,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, sol); err != nil {
			return err
		}
		cuotas := generarCuotas(sol.IDSolicitud, req.CantidadCuotas, req.Monto, primerVencimiento(hoy))
		return s.cuotaRepo.CreateBatch(ctx, tx, cuotas)
	})
	if txErr != nil {
		return nil, txErr
	}

	return sol, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Si cambia el monto, el nuevo importe se propaga a todas las cuotas todavía
// impagas; las pagadas conservan su importe histórico. Si cambia totalapagar
// se recalculan los totales derivados, porque cambió el denominador del
// porcentaje.

func (s *solicitudService) Actualizar(ctx context.Context, id int, req dto.ActualizarSolicitudRequest) (*model.Solicitud, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	montoCambio := false
	totalCambio := false

	if req.RelaCliente != nil {
		sol.RelaCliente = *req.RelaCliente
	}
	if req.RelaProducto != nil {
		sol.RelaProducto = *req.RelaProducto
	}
	if req.RelaVendedor != nil {
		sol.RelaVendedor = *req.RelaVendedor
	}
	if req.Monto != nil && !req.Monto.Equal(sol.Monto) {
		if !req.Monto.IsPositive() {
			return nil, apierror.InvalidArgument("El monto debe ser mayor a cero")
		}
		sol.Monto = *req.Monto
		montoCambio = true
	}
	if req.TotalAPagar != nil && !req.TotalAPagar.Equal(sol.TotalAPagar) {
		if !req.TotalAPagar.IsPositive() {
			return nil, apierror.InvalidArgument("El total a pagar debe ser mayor a cero")
		}
		sol.TotalAPagar = *req.TotalAPagar
		totalCambio = true
	}
	if req.Estado != nil {
		sol.Estado = *req.Estado
	}
	if req.Observacion != nil {
		sol.Observacion = *req.Observacion
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, sol); err != nil {
			return err
		}
		if montoCambio {
			if err := s.cuotaRepo.UpdateImporteImpagasTx(ctx, tx, id, sol.Monto); err != nil {
				return err
			}
		}
		if totalCambio {
			totales, err := recalcularTotales(ctx, tx, s.repo, s.cuotaRepo, id)
			if err != nil {
				return err
			}
			sol.TotalAbonado = totales.TotalAbonado
			sol.PorcentajePagado = totales.PorcentajePagado
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return sol, nil
}

// ── AdicionarCuotas ───────────────────────────────────────────────────────────
// Extiende el cronograma continuando la numeración y la cadencia mensual a
// partir de la última cuota. No recalcula totales: las cuotas nuevas nacen
// impagas y no afectan lo abonado.

func (s *solicitudService) AdicionarCuotas(ctx context.Context, id, cantidad int) (*model.Solicitud, error) {
	if cantidad <= 0 {
		return nil, apierror.InvalidArgument("La cantidad de cuotas debe ser mayor a cero")
	}

	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	ultima, err := s.cuotaRepo.UltimaCuota(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("La solicitud no tiene cuotas generadas")
		}
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		nuevas := extenderCuotas(id, cantidad, sol.Monto, ultima)
		if err := s.cuotaRepo.CreateBatch(ctx, tx, nuevas); err != nil {
			return err
		}
		sol.CantidadCuotas += cantidad
		return s.repo.UpdateCantidadCuotasTx(ctx, tx, id, sol.CantidadCuotas)
	})
	if txErr != nil {
		return nil, txErr
	}

	return sol, nil
}

func (s *solicitudService) ActualizarObservacion(ctx context.Context, id int, observacion string) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateObservacion(ctx, id, observacion)
}
