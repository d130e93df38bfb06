package service

import (
	"context"
	"time"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type AuditService interface {
	Listar(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error)
	// Prune borra las entradas más viejas que la retención configurada.
	Prune(ctx context.Context, retentionDays int) (int64, error)
}

type auditService struct {
	repo repository.AuditRepository
	now  func() time.Time
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo, now: time.Now}
}

func (s *auditService) Listar(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *auditService) Prune(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	return s.repo.PruneOlderThan(ctx, cutoff)
}
