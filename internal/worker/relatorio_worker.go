package worker

// relatorio_worker.go
// Processes production receipt jobs from QueueRelatorio: loads the committed
// Confeccao, renders the A7 PDF receipt, and emails it to the shop owner
// through the SMTP circuit breaker.

import (
	"context"
	"encoding/json"
	"fmt"

	"makarios/internal/infra"
	"makarios/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RelatorioJobPayload identifies the production run to report on.
type RelatorioJobPayload struct {
	ConfeccaoID string `json:"confeccao_id"`
}

// RelatorioWorker generates and delivers receipts for committed runs.
type RelatorioWorker struct {
	confeccaoRepo repository.ConfeccaoRepository
	mailer        *infra.Mailer
	cb            *infra.CircuitBreaker
	emailDono     string
	storagePath   string
}

func NewRelatorioWorker(
	confeccaoRepo repository.ConfeccaoRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	emailDono string,
	storagePath string,
) *RelatorioWorker {
	return &RelatorioWorker{
		confeccaoRepo: confeccaoRepo,
		mailer:        mailer,
		cb:            cb,
		emailDono:     emailDono,
		storagePath:   storagePath,
	}
}

// Process renders the PDF and sends it. A malformed payload or a run that no
// longer exists is dropped (nil) — retrying cannot fix either.
func (w *RelatorioWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RelatorioJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("relatorio_worker: invalid payload")
		return nil
	}

	id, err := uuid.Parse(payload.ConfeccaoID)
	if err != nil {
		log.Error().Str("confeccao_id", payload.ConfeccaoID).Msg("relatorio_worker: invalid confeccao_id")
		return nil
	}

	confeccao, err := w.confeccaoRepo.FindByID(ctx, id)
	if err != nil {
		// The run may have been pruned between enqueue and dequeue
		log.Warn().Err(err).Str("confeccao_id", payload.ConfeccaoID).Msg("relatorio_worker: confeccao not found, dropping job")
		return nil
	}

	pdfPath, err := infra.GenerateReciboPDF(confeccao, w.storagePath)
	if err != nil {
		return fmt.Errorf("gerar PDF do recibo: %w", err)
	}
	log.Info().Str("path", pdfPath).Str("confeccao_id", payload.ConfeccaoID).Msg("relatorio_worker: recibo PDF generated")

	if w.mailer == nil || !w.mailer.Enabled() || w.emailDono == "" {
		return nil
	}

	subject := fmt.Sprintf("Recibo de confecção: %d × %s", confeccao.QuantidadeConfeccionada, confeccao.ProdutoNome)
	body := fmt.Sprintf(
		"Confecção registrada em %s.\n\nProduto: %s\nQuantidade: %d\nCusto total: R$ %s\n\nO recibo em PDF segue em anexo.",
		confeccao.CreatedAt.Format("02/01/2006 15:04"),
		confeccao.ProdutoNome,
		confeccao.QuantidadeConfeccionada,
		confeccao.CustoTotal.StringFixed(2),
	)

	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(w.emailDono, subject, body, pdfPath)
	})
	if sendErr != nil {
		return fmt.Errorf("enviar recibo por email: %w", sendErr)
	}

	log.Info().Str("to", w.emailDono).Str("confeccao_id", payload.ConfeccaoID).Msg("relatorio_worker: recibo sent")
	return nil
}
