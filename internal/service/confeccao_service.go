package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"makarios/internal/costing"
	"makarios/internal/dto"
	"makarios/internal/model"
	"makarios/internal/repository"
	"makarios/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConfeccaoService is the production-run transaction: it validates stock
// sufficiency for every BOM line, then atomically decrements all involved
// materials and appends the immutable production record.
type ConfeccaoService interface {
	Registrar(ctx context.Context, req dto.RegistrarConfeccaoRequest) (*dto.ConfeccaoResponse, error)
	Listar(ctx context.Context, filter dto.ConfeccaoFilter) (*dto.ConfeccaoListResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type confeccaoService struct {
	repo          repository.ConfeccaoRepository
	produtoRepo   repository.ProdutoRepository
	materialRepo  repository.MaterialRepository
	movimentoRepo repository.MovimentoEstoqueRepository
	dispatcher    *worker.Dispatcher
}

func NewConfeccaoService(
	repo repository.ConfeccaoRepository,
	produtoRepo repository.ProdutoRepository,
	materialRepo repository.MaterialRepository,
	movimentoRepo repository.MovimentoEstoqueRepository,
	dispatcher *worker.Dispatcher,
) ConfeccaoService {
	return &confeccaoService{
		repo:          repo,
		produtoRepo:   produtoRepo,
		materialRepo:  materialRepo,
		movimentoRepo: movimentoRepo,
		dispatcher:    dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Two phases as a single logical unit of work:
//  1. Validate — quantity is a positive integer, the product exists, and
//     every BOM line's required consumption fits current stock. Any failure
//     aborts here with zero mutation.
//  2. Commit — one DB transaction decrements every material, writes one
//     stock movement per material, and appends the Confeccao with its BOM
//     snapshot. Readers never observe a partial decrement or a decrement
//     without its record.

func (s *confeccaoService) Registrar(ctx context.Context, req dto.RegistrarConfeccaoRequest) (*dto.ConfeccaoResponse, error) {
	if req.Quantidade <= 0 {
		return nil, ErrQuantidadeInvalida
	}

	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, fmt.Errorf("produto_id inválido: %w", err)
	}

	produto, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}

	materiais, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogo := costing.IndexarMateriais(materiais)

	// Pre-flight: resolve each BOM line's consumption in purchase units.
	// Dangling material references are skipped — they cost nothing and
	// consume nothing, same as in the costing preview.
	type linhaResolvida struct {
		material *model.Material
		consumo  decimal.Decimal
	}
	var resolvidas []linhaResolvida
	var faltas []FaltaEstoque

	for _, mp := range produto.Materiais {
		material, ok := catalogo[mp.MaterialID]
		if !ok {
			continue
		}
		consumo := costing.ConsumoTotal(mp, material, req.Quantidade)
		if material.EstoqueAtual.LessThan(consumo) {
			faltas = append(faltas, FaltaEstoque{
				MaterialID:   material.ID,
				MaterialNome: material.Nome,
				Necessario:   consumo,
				Disponivel:   material.EstoqueAtual,
				Unidade:      material.UnidadeCompra,
			})
			continue
		}
		resolvidas = append(resolvidas, linhaResolvida{material: material, consumo: consumo})
	}

	if len(faltas) > 0 {
		return nil, &EstoqueInsuficienteError{Faltas: faltas}
	}

	custo := costing.CustoProducao(produto, catalogo, req.Quantidade)

	confeccao := model.Confeccao{
		ProdutoID:               produto.ID,
		ProdutoNome:             produto.Nome,
		QuantidadeConfeccionada: req.Quantidade,
		CustoTotal:              custo,
	}
	for _, mp := range produto.Materiais {
		item := model.ConfeccaoMaterial{
			MaterialID:      mp.MaterialID,
			QuantidadeUsada: mp.QuantidadeUsada,
		}
		if m, ok := catalogo[mp.MaterialID]; ok {
			item.MaterialNome = m.Nome
			item.UnidadeUso = m.UnidadeUso
		}
		confeccao.Itens = append(confeccao.Itens, item)
	}

	txErr := runTx(ctx, s.materialRepo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &confeccao); err != nil {
			return err
		}
		for _, linha := range resolvidas {
			if err := s.materialRepo.UpdateEstoqueTx(tx, linha.material.ID, linha.consumo.Neg()); err != nil {
				return fmt.Errorf("baixa de estoque de %s: %w", linha.material.Nome, err)
			}
			ref := confeccao.ID
			mov := &model.MovimentoEstoque{
				MaterialID:      linha.material.ID,
				MaterialNome:    linha.material.Nome,
				Tipo:            "confeccao",
				Quantidade:      linha.consumo.Neg(),
				EstoqueAnterior: linha.material.EstoqueAtual,
				EstoqueNovo:     linha.material.EstoqueAtual.Sub(linha.consumo),
				Motivo:          fmt.Sprintf("Confecção de %d × %s", req.Quantidade, produto.Nome),
				ReferenciaID:    &ref,
			}
			if err := s.movimentoRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async receipt — best-effort, never blocks nor fails the commit.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRelatorio(ctx, worker.RelatorioJobPayload{
			ConfeccaoID: confeccao.ID.String(),
		})
	}

	return confeccaoToResponse(&confeccao), nil
}

func (s *confeccaoService) Listar(ctx context.Context, filter dto.ConfeccaoFilter) (*dto.ConfeccaoListResponse, error) {
	repoFilter := repository.ConfeccaoFilter{Page: filter.Page, Limit: filter.Limit}
	if filter.ProdutoID != "" {
		id, err := uuid.Parse(filter.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		repoFilter.ProdutoID = &id
	}
	if repoFilter.Page < 1 {
		repoFilter.Page = 1
	}
	if repoFilter.Limit < 1 {
		repoFilter.Limit = 50
	}

	confeccoes, total, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ConfeccaoResponse, 0, len(confeccoes))
	for i := range confeccoes {
		data = append(data, *confeccaoToResponse(&confeccoes[i]))
	}
	return &dto.ConfeccaoListResponse{
		Data:  data,
		Total: total,
		Page:  repoFilter.Page,
		Limit: repoFilter.Limit,
	}, nil
}

func (s *confeccaoService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConfeccaoNaoEncontrada
		}
		return err
	}
	// Deleting a record does not restore stock: the materials were really
	// consumed, the user is only pruning history.
	return s.repo.Delete(ctx, id)
}

func confeccaoToResponse(c *model.Confeccao) *dto.ConfeccaoResponse {
	itens := make([]dto.ConfeccaoMaterialResponse, 0, len(c.Itens))
	for _, item := range c.Itens {
		itens = append(itens, dto.ConfeccaoMaterialResponse{
			MaterialID:      item.MaterialID.String(),
			MaterialNome:    item.MaterialNome,
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
		})
	}
	return &dto.ConfeccaoResponse{
		ID:                      c.ID.String(),
		ProdutoID:               c.ProdutoID.String(),
		ProdutoNome:             c.ProdutoNome,
		QuantidadeConfeccionada: c.QuantidadeConfeccionada,
		CustoTotal:              c.CustoTotal,
		MateriaisUsados:         itens,
		CreatedAt:               c.CreatedAt.Format(time.RFC3339),
	}
}
