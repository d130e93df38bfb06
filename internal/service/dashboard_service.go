package service

import (
	"context"
	"time"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	mes := s.now().Format("2006-01")

	activas, err := s.repo.CountSolicitudesPorEstado(ctx, model.SolicitudActiva)
	if err != nil {
		return nil, err
	}
	bajas, err := s.repo.CountSolicitudesPorEstado(ctx, model.SolicitudBaja)
	if err != nil {
		return nil, err
	}
	clientes, err := s.repo.CountClientes(ctx)
	if err != nil {
		return nil, err
	}
	impagas, err := s.repo.CountCuotasImpagasDelMes(ctx, mes)
	if err != nil {
		return nil, err
	}
	cobrado, err := s.repo.SumCobradoDelMes(ctx, mes)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		SolicitudesActivas: activas,
		SolicitudesBajas:   bajas,
		Clientes:           clientes,
		CuotasImpagasMes:   impagas,
		CobradoMes:         cobrado,
	}, nil
}
