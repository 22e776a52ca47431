package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueRelatorio = "jobs:relatorio"
	QueueAlerta    = "jobs:alerta"
)

// MaxJobRetries is how many times a job is re-enqueued before landing in
// the dead letter queue.
const MaxJobRetries = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueRelatorio pushes a production receipt job to Redis.
func (d *Dispatcher) EnqueueRelatorio(ctx context.Context, payload RelatorioJobPayload) error {
	return d.enqueue(ctx, QueueRelatorio, "relatorio", payload)
}

// EnqueueAlerta pushes a low-stock alert job to Redis.
func (d *Dispatcher) EnqueueAlerta(ctx context.Context, payload AlertaJobPayload) error {
	return d.enqueue(ctx, QueueAlerta, "alerta", payload)
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

// Handlers groups the per-queue processors the pool dispatches to.
type Handlers struct {
	Relatorio *RelatorioWorker
	Alerta    *AlertaWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers Handlers) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers Handlers) {
	queues := []string{QueueRelatorio, QueueAlerta}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch queue {
	case QueueRelatorio:
		if handlers.Relatorio != nil {
			err = handlers.Relatorio.Process(ctx, job.Payload)
		}
	case QueueAlerta:
		if handlers.Alerta != nil {
			err = handlers.Alerta.Process(ctx, job.Payload)
		}
	default:
		log.Warn().Str("queue", queue).Msg("job from unknown queue dropped")
		return
	}

	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= MaxJobRetries {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}

	// Re-enqueue at the head so other jobs are served first
	encoded, mErr := json.Marshal(job)
	if mErr != nil {
		log.Error().Err(mErr).Str("queue", queue).Msg("failed to re-marshal job for retry")
		return
	}
	if pErr := rdb.LPush(ctx, queue, encoded).Err(); pErr != nil {
		log.Error().Err(pErr).Str("queue", queue).Msg("failed to re-enqueue job")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("type", job.Type).
		Int("attempts", job.Attempts).
		Err(err).
		Msg("job failed, re-enqueued for retry")
}
