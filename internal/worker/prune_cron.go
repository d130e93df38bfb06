package worker

// prune_cron.go
// Goroutine de fondo que poda el registro de auditoría una vez por día,
// borrando las entradas más viejas que la retención configurada.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/geraLv/sistema-gestion/internal/service"
)

const pruneTickInterval = 24 * time.Hour

// StartPruneCron launches a background goroutine that prunes old audit rows.
// It runs once at startup and then daily; it respects the context for
// graceful shutdown.
func StartPruneCron(ctx context.Context, audit service.AuditService, retentionDays int) {
	go func() {
		ticker := time.NewTicker(pruneTickInterval)
		defer ticker.Stop()

		log.Info().Int("retention_days", retentionDays).Msg("prune_cron: started")
		runPrune(ctx, audit, retentionDays)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("prune_cron: shutting down")
				return
			case <-ticker.C:
				runPrune(ctx, audit, retentionDays)
			}
		}
	}()
}

func runPrune(ctx context.Context, audit service.AuditService, retentionDays int) {
	deleted, err := audit.Prune(ctx, retentionDays)
	if err != nil {
		log.Error().Err(err).Msg("prune_cron: fallo la poda de auditoria")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("prune_cron: entradas de auditoria podadas")
	}
}
