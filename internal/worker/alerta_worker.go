package worker

// alerta_worker.go
// Processes low-stock digest jobs from QueueAlerta: formats the list of
// materials below their minimum and emails it to the shop owner.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"makarios/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertaMaterial is one low-stock line in the digest.
type AlertaMaterial struct {
	MaterialID    string `json:"material_id"`
	Nome          string `json:"nome"`
	EstoqueAtual  string `json:"estoque_atual"`
	EstoqueMinimo string `json:"estoque_minimo"`
	Unidade       string `json:"unidade"`
}

// AlertaJobPayload carries the full digest for one cron tick.
type AlertaJobPayload struct {
	Materiais []AlertaMaterial `json:"materiais"`
}

// AlertaWorker emails low-stock digests.
type AlertaWorker struct {
	mailer    *infra.Mailer
	cb        *infra.CircuitBreaker
	emailDono string
}

func NewAlertaWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, emailDono string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, cb: cb, emailDono: emailDono}
}

func (w *AlertaWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return nil
	}
	if len(payload.Materiais) == 0 {
		return nil
	}
	if w.mailer == nil || !w.mailer.Enabled() || w.emailDono == "" {
		log.Warn().Int("materiais", len(payload.Materiais)).Msg("alerta_worker: SMTP not configured, digest dropped")
		return nil
	}

	var b strings.Builder
	b.WriteString("Os seguintes materiais estão abaixo do estoque mínimo:\n\n")
	for _, m := range payload.Materiais {
		fmt.Fprintf(&b, "- %s: %s %s em estoque (mínimo %s %s)\n",
			m.Nome, m.EstoqueAtual, m.Unidade, m.EstoqueMinimo, m.Unidade)
	}
	b.WriteString("\nReponha o estoque para não bloquear novas confecções.")

	subject := fmt.Sprintf("Alerta de estoque: %d materiais abaixo do mínimo", len(payload.Materiais))

	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(w.emailDono, subject, b.String(), "")
	})
	if sendErr != nil {
		return fmt.Errorf("enviar alerta de estoque: %w", sendErr)
	}

	log.Info().Int("materiais", len(payload.Materiais)).Str("to", w.emailDono).Msg("alerta_worker: digest sent")
	return nil
}
