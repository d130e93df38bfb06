package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/geraLv/sistema-gestion/internal/repository"
)

const (
	QueueAuditoria = "jobs:auditoria"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAudit pushes an audit entry to Redis. Fire-and-forget: a full queue
// or a Redis outage must never abort the request being audited.
func (d *Dispatcher) EnqueueAudit(ctx context.Context, payload AuditPayload) {
	if err := d.enqueue(ctx, QueueAuditoria, "auditoria", payload); err != nil {
		log.Warn().Err(err).Msg("auditoria: no se pudo encolar la entrada")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the audit queue.
// Each goroutine blocks on BRPOP: zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, auditRepo repository.AuditRepository) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, auditRepo)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, auditRepo repository.AuditRepository) {
	queues := []string{QueueAuditoria}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, auditRepo, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, auditRepo repository.AuditRepository, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	switch job.Type {
	case "auditoria":
		if err := processAuditJob(ctx, auditRepo, job.Payload); err != nil {
			log.Error().Err(err).Msg("auditoria: no se pudo persistir la entrada")
			SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), 1)
		}
	default:
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type")
	}
}
