package service

import (
	"context"
	"errors"

	"makarios/internal/costing"
	"makarios/internal/dto"
	"makarios/internal/model"
	"makarios/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoService defines the contract for product catalog management and
// the costing / max-producible previews shown before a confection.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error

	// Custo computes the production cost preview for quantidade units
	// (0 = the product's planned quantity).
	Custo(ctx context.Context, id uuid.UUID, quantidade int) (*dto.CustoResponse, error)
	MaxProduzivel(ctx context.Context, id uuid.UUID) (*dto.MaxProduzivelResponse, error)
}

type produtoService struct {
	repo         repository.ProdutoRepository
	materialRepo repository.MaterialRepository
}

func NewProdutoService(repo repository.ProdutoRepository, materialRepo repository.MaterialRepository) ProdutoService {
	return &produtoService{repo: repo, materialRepo: materialRepo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	bom, err := bomFromRequest(req.Materiais)
	if err != nil {
		return nil, err
	}

	planejada := req.QuantidadePlanejada
	if planejada <= 0 {
		planejada = 1
	}

	p := &model.Produto{
		Nome:                req.Nome,
		QuantidadePlanejada: planejada,
		Materiais:           bom,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p)
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	materiais, err := s.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		out = append(out, *produtoToResponse(&produtos[i], materiais))
	}
	return out, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p)
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.QuantidadePlanejada != nil {
		p.QuantidadePlanejada = *req.QuantidadePlanejada
	}

	var novaBOM []model.MaterialProduto
	if req.Materiais != nil {
		novaBOM, err = bomFromRequest(req.Materiais)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, p, novaBOM); err != nil {
		return nil, err
	}
	return s.ObterPorID(ctx, id)
}

func (s *produtoService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.buscar(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *produtoService) Custo(ctx context.Context, id uuid.UUID, quantidade int) (*dto.CustoResponse, error) {
	if quantidade < 0 {
		return nil, ErrQuantidadeInvalida
	}
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	materiais, err := s.catalogo(ctx)
	if err != nil {
		return nil, err
	}

	efetiva := quantidade
	if efetiva == 0 {
		efetiva = p.QuantidadePlanejada
	}
	if efetiva <= 0 {
		efetiva = 1
	}
	return &dto.CustoResponse{
		ProdutoID:  p.ID.String(),
		Quantidade: efetiva,
		CustoTotal: costing.CustoProducao(p, materiais, efetiva),
	}, nil
}

func (s *produtoService) MaxProduzivel(ctx context.Context, id uuid.UUID) (*dto.MaxProduzivelResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	materiais, err := s.catalogo(ctx)
	if err != nil {
		return nil, err
	}

	max := costing.MaxProduzivel(p, materiais)
	resp := &dto.MaxProduzivelResponse{ProdutoID: p.ID.String()}
	if max == costing.SemLimite {
		resp.Ilimitado = true
	} else {
		resp.MaxProduzivel = max
	}
	return resp, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (s *produtoService) buscar(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *produtoService) catalogo(ctx context.Context) (map[uuid.UUID]*model.Material, error) {
	materiais, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return costing.IndexarMateriais(materiais), nil
}

func (s *produtoService) toResponse(ctx context.Context, p *model.Produto) (*dto.ProdutoResponse, error) {
	materiais, err := s.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p, materiais), nil
}

// bomFromRequest validates and converts BOM lines; material ids must be
// unique within the product.
func bomFromRequest(linhas []dto.MaterialProdutoRequest) ([]model.MaterialProduto, error) {
	bom := make([]model.MaterialProduto, 0, len(linhas))
	vistos := make(map[uuid.UUID]bool, len(linhas))
	for _, linha := range linhas {
		materialID, err := uuid.Parse(linha.MaterialID)
		if err != nil {
			return nil, err
		}
		if vistos[materialID] {
			return nil, ErrMaterialDuplicado
		}
		vistos[materialID] = true
		bom = append(bom, model.MaterialProduto{
			MaterialID:      materialID,
			QuantidadeUsada: linha.QuantidadeUsada,
		})
	}
	return bom, nil
}

func produtoToResponse(p *model.Produto, materiais map[uuid.UUID]*model.Material) *dto.ProdutoResponse {
	linhas := make([]dto.MaterialProdutoResponse, 0, len(p.Materiais))
	for _, mp := range p.Materiais {
		linha := dto.MaterialProdutoResponse{
			MaterialID:      mp.MaterialID.String(),
			QuantidadeUsada: mp.QuantidadeUsada,
		}
		if m, ok := materiais[mp.MaterialID]; ok {
			linha.MaterialNome = m.Nome
			linha.UnidadeUso = m.UnidadeUso
		}
		linhas = append(linhas, linha)
	}
	return &dto.ProdutoResponse{
		ID:                  p.ID.String(),
		Nome:                p.Nome,
		QuantidadePlanejada: p.QuantidadePlanejada,
		Materiais:           linhas,
	}
}
