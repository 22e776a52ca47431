package worker

// estoque_cron.go
// Background goroutine that periodically scans for materials whose stock
// fell below their configured minimum and enqueues one digest job per tick.
// The tick interval comes from ALERTA_INTERVALO_SEGUNDOS, so repeated
// digests for the same shortage are naturally spaced out.

import (
	"context"
	"time"

	"makarios/internal/infra"
	"makarios/internal/repository"

	"github.com/rs/zerolog/log"
)

// AlertaCronConfig holds the dependencies for the low-stock scan goroutine.
type AlertaCronConfig struct {
	MaterialRepo repository.MaterialRepository
	Dispatcher   *Dispatcher
	CB           *infra.CircuitBreaker
	Interval     time.Duration
}

// StartAlertaCron launches the periodic low-stock scan. It respects the
// context for graceful shutdown.
func StartAlertaCron(ctx context.Context, cfg AlertaCronConfig) {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("estoque_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("estoque_cron: shutting down")
				return
			case <-ticker.C:
				scanEstoqueBaixo(ctx, cfg)
			}
		}
	}()
}

func scanEstoqueBaixo(ctx context.Context, cfg AlertaCronConfig) {
	// If the SMTP breaker is open the digest would only pile up retries
	if cfg.CB != nil && cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("estoque_cron: circuit breaker is open, skipping tick")
		return
	}

	materiais, err := cfg.MaterialRepo.ListAbaixoDoMinimo(ctx)
	if err != nil {
		log.Error().Err(err).Msg("estoque_cron: failed to query low-stock materials")
		return
	}
	if len(materiais) == 0 {
		return
	}

	payload := AlertaJobPayload{}
	for i := range materiais {
		m := &materiais[i]
		payload.Materiais = append(payload.Materiais, AlertaMaterial{
			MaterialID:    m.ID.String(),
			Nome:          m.Nome,
			EstoqueAtual:  m.EstoqueAtual.String(),
			EstoqueMinimo: m.EstoqueMinimo.String(),
			Unidade:       m.UnidadeCompra,
		})
	}

	if err := cfg.Dispatcher.EnqueueAlerta(ctx, payload); err != nil {
		log.Error().Err(err).Msg("estoque_cron: failed to enqueue digest")
		return
	}
	log.Info().Int("materiais", len(materiais)).Msg("estoque_cron: low-stock digest enqueued")
}
