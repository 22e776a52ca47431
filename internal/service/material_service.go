package service

import (
	"context"
	"errors"

	"makarios/internal/dto"
	"makarios/internal/model"
	"makarios/internal/repository"
	"makarios/internal/unit"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MaterialService defines the contract for material catalog management.
type MaterialService interface {
	Criar(ctx context.Context, req dto.CriarMaterialRequest) (*dto.MaterialResponse, error)
	Listar(ctx context.Context) ([]dto.MaterialResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarMaterialRequest) (*dto.MaterialResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
	AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.MaterialResponse, error)
}

type materialService struct {
	repo          repository.MaterialRepository
	movimentoRepo repository.MovimentoEstoqueRepository
}

func NewMaterialService(repo repository.MaterialRepository, movimentoRepo repository.MovimentoEstoqueRepository) MaterialService {
	return &materialService{repo: repo, movimentoRepo: movimentoRepo}
}

func (s *materialService) Criar(ctx context.Context, req dto.CriarMaterialRequest) (*dto.MaterialResponse, error) {
	avisarUnidadesIncompativeis(req.Nome, req.UnidadeCompra, req.UnidadeUso)

	m := &model.Material{
		Nome:          req.Nome,
		UnidadeCompra: req.UnidadeCompra,
		UnidadeUso:    req.UnidadeUso,
		EstoqueAtual:  req.EstoqueAtual,
		ValorUnitario: req.ValorUnitario,
		EstoqueMinimo: req.EstoqueMinimo,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) Listar(ctx context.Context) ([]dto.MaterialResponse, error) {
	materiais, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materiais))
	for i := range materiais {
		out = append(out, *materialToResponse(&materiais[i]))
	}
	return out, nil
}

func (s *materialService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNaoEncontrado
		}
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNaoEncontrado
		}
		return nil, err
	}

	if req.Nome != nil {
		m.Nome = *req.Nome
	}
	if req.UnidadeCompra != nil {
		m.UnidadeCompra = *req.UnidadeCompra
	}
	if req.UnidadeUso != nil {
		m.UnidadeUso = *req.UnidadeUso
	}
	if req.ValorUnitario != nil {
		m.ValorUnitario = *req.ValorUnitario
	}
	if req.EstoqueMinimo != nil {
		m.EstoqueMinimo = *req.EstoqueMinimo
	}
	avisarUnidadesIncompativeis(m.Nome, m.UnidadeCompra, m.UnidadeUso)

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNaoEncontrado
		}
		return err
	}
	// BOM lines referencing this material become dangling on purpose:
	// the costing engine skips them and history keeps its snapshots.
	return s.repo.Delete(ctx, id)
}

func (s *materialService) AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNaoEncontrado
		}
		return nil, err
	}

	novoEstoque := m.EstoqueAtual.Add(req.Delta)
	if novoEstoque.IsNegative() {
		return nil, ErrEstoqueNegativo
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateEstoqueTx(tx, id, req.Delta); err != nil {
			return err
		}
		return s.movimentoRepo.CreateTx(tx, &model.MovimentoEstoque{
			MaterialID:      m.ID,
			MaterialNome:    m.Nome,
			Tipo:            "ajuste_manual",
			Quantidade:      req.Delta,
			EstoqueAnterior: m.EstoqueAtual,
			EstoqueNovo:     novoEstoque,
			Motivo:          req.Motivo,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	m.EstoqueAtual = novoEstoque
	return materialToResponse(m), nil
}

// avisarUnidadesIncompativeis logs when a material's purchase and usage
// units belong to different physical dimensions. Conversion stays total and
// permissive (unknown symbols pass through), so this is a warning, not a
// rejection.
func avisarUnidadesIncompativeis(nome, compra, uso string) {
	if !unit.Compativeis(compra, uso) {
		log.Warn().
			Str("material", nome).
			Str("unidade_compra", compra).
			Str("unidade_uso", uso).
			Msg("unidades de compra e uso em dimensões diferentes — conversão será escala 1")
	}
}

func materialToResponse(m *model.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:            m.ID.String(),
		Nome:          m.Nome,
		UnidadeCompra: m.UnidadeCompra,
		UnidadeUso:    m.UnidadeUso,
		EstoqueAtual:  m.EstoqueAtual,
		ValorUnitario: m.ValorUnitario,
		EstoqueMinimo: m.EstoqueMinimo,
		AbaixoMinimo:  m.EstoqueMinimo.IsPositive() && m.EstoqueAtual.LessThan(m.EstoqueMinimo),
	}
}
