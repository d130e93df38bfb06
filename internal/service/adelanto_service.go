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

// AdelantoService maneja el libro lateral de pagos extraordinarios. Los
// adelantos no participan del recálculo de totalabonado/porcentajepagado.
type AdelantoService interface {
	ListarDetallado(ctx context.Context) ([]model.Adelanto, error)
	ListarPorSolicitud(ctx context.Context, idsolicitud int) ([]model.Adelanto, decimal.Decimal, error)
	Crear(ctx context.Context, req dto.CrearAdelantoRequest) (*model.Adelanto, error)
	Eliminar(ctx context.Context, id int) error
}

type adelantoService struct {
	repo          repository.AdelantoRepository
	solicitudRepo repository.SolicitudRepository
	now           func() time.Time
}

func NewAdelantoService(repo repository.AdelantoRepository, solicitudRepo repository.SolicitudRepository) AdelantoService {
	return &adelantoService{repo: repo, solicitudRepo: solicitudRepo, now: time.Now}
}

func (s *adelantoService) ListarDetallado(ctx context.Context) ([]model.Adelanto, error) {
	return s.repo.ListDetallado(ctx)
}

func (s *adelantoService) ListarPorSolicitud(ctx context.Context, idsolicitud int) ([]model.Adelanto, decimal.Decimal, error) {
	adelantos, err := s.repo.ListBySolicitud(ctx, idsolicitud)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.repo.SumBySolicitud(ctx, idsolicitud)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return adelantos, total, nil
}

func (s *adelantoService) Crear(ctx context.Context, req dto.CrearAdelantoRequest) (*model.Adelanto, error) {
	if !req.AdelantoImporte.IsPositive() {
		return nil, apierror.InvalidArgument("El importe del adelanto debe ser mayor a cero")
	}
	if _, err := s.solicitudRepo.FindByID(ctx, req.RelaSolicitud); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	fecha := s.now()
	if req.AdelantoFecha != "" {
		parsed, err := time.Parse("2006-01-02", req.AdelantoFecha)
		if err != nil {
			return nil, apierror.InvalidArgument("Fecha de adelanto inválida")
		}
		fecha = parsed
	}

	adelanto := &model.Adelanto{
		RelaSolicitud:   req.RelaSolicitud,
		AdelantoImporte: req.AdelantoImporte,
		AdelantoFecha:   fecha,
	}
	if err := s.repo.Create(ctx, adelanto); err != nil {
		return nil, err
	}
	return adelanto, nil
}

func (s *adelantoService) Eliminar(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
