package service

import (
	"context"

	"makarios/internal/dto"
	"makarios/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService aggregates the shop's headline figures for the landing
// screen: catalog sizes, stock valuation, and confection cost totals.
type DashboardService interface {
	Resumo(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	materialRepo  repository.MaterialRepository
	produtoRepo   repository.ProdutoRepository
	confeccaoRepo repository.ConfeccaoRepository
}

func NewDashboardService(
	materialRepo repository.MaterialRepository,
	produtoRepo repository.ProdutoRepository,
	confeccaoRepo repository.ConfeccaoRepository,
) DashboardService {
	return &dashboardService{
		materialRepo:  materialRepo,
		produtoRepo:   produtoRepo,
		confeccaoRepo: confeccaoRepo,
	}
}

func (s *dashboardService) Resumo(ctx context.Context) (*dto.DashboardResponse, error) {
	materiais, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totalConfeccoes, custoTotal, err := s.confeccaoRepo.Resumo(ctx)
	if err != nil {
		return nil, err
	}

	valorEstoque := decimal.Zero
	var abaixo []dto.MaterialResponse
	for i := range materiais {
		m := &materiais[i]
		valorEstoque = valorEstoque.Add(m.EstoqueAtual.Mul(m.ValorUnitario))
		if m.EstoqueMinimo.IsPositive() && m.EstoqueAtual.LessThan(m.EstoqueMinimo) {
			abaixo = append(abaixo, *materialToResponse(m))
		}
	}

	custoMedio := decimal.Zero
	if totalConfeccoes > 0 {
		custoMedio = custoTotal.Div(decimal.NewFromInt(totalConfeccoes)).Round(2)
	}

	return &dto.DashboardResponse{
		TotalMateriais:  int64(len(materiais)),
		TotalProdutos:   int64(len(produtos)),
		TotalConfeccoes: totalConfeccoes,
		ValorEstoque:    valorEstoque,
		CustoTotal:      custoTotal,
		CustoMedio:      custoMedio,
		MateriaisAbaixo: abaixo,
	}, nil
}
