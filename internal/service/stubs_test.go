package service

import (
	"context"

	"makarios/internal/model"
	"makarios/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which makes the services run
// their transaction bodies directly (runTx short-circuits on nil).

// ── materials ─────────────────────────────────────────────────────────────────

type stubMaterialRepo struct {
	materiais map[uuid.UUID]*model.Material
}

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materiais: make(map[uuid.UUID]*model.Material)}
}

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.materiais[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	m, ok := r.materiais[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Return a copy, like the gorm repo does: callers must not alias the
	// stored struct, or in-tx stock updates would leak into their snapshot.
	copia := *m
	return &copia, nil
}

func (r *stubMaterialRepo) List(_ context.Context) ([]model.Material, error) {
	out := make([]model.Material, 0, len(r.materiais))
	for _, m := range r.materiais {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMaterialRepo) ListAbaixoDoMinimo(_ context.Context) ([]model.Material, error) {
	var out []model.Material
	for _, m := range r.materiais {
		if m.EstoqueMinimo.IsPositive() && m.EstoqueAtual.LessThan(m.EstoqueMinimo) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	r.materiais[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.materiais, id)
	return nil
}

func (r *stubMaterialRepo) UpdateEstoqueTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	m, ok := r.materiais[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.EstoqueAtual = m.EstoqueAtual.Add(delta)
	return nil
}

func (r *stubMaterialRepo) DB() *gorm.DB { return nil }

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

// ── products ──────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto, novaBOM []model.MaterialProduto) error {
	if novaBOM != nil {
		p.Materiais = novaBOM
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.produtos, id)
	return nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── confections ───────────────────────────────────────────────────────────────

type stubConfeccaoRepo struct {
	confeccoes map[uuid.UUID]*model.Confeccao
}

func newStubConfeccaoRepo() *stubConfeccaoRepo {
	return &stubConfeccaoRepo{confeccoes: make(map[uuid.UUID]*model.Confeccao)}
}

func (r *stubConfeccaoRepo) CreateTx(_ *gorm.DB, c *model.Confeccao) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	guardada := *c
	r.confeccoes[c.ID] = &guardada
	return nil
}

func (r *stubConfeccaoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Confeccao, error) {
	c, ok := r.confeccoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubConfeccaoRepo) List(_ context.Context, _ repository.ConfeccaoFilter) ([]model.Confeccao, int64, error) {
	out := make([]model.Confeccao, 0, len(r.confeccoes))
	for _, c := range r.confeccoes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubConfeccaoRepo) Resumo(_ context.Context) (int64, decimal.Decimal, error) {
	soma := decimal.Zero
	for _, c := range r.confeccoes {
		soma = soma.Add(c.CustoTotal)
	}
	return int64(len(r.confeccoes)), soma, nil
}

func (r *stubConfeccaoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.confeccoes, id)
	return nil
}

var _ repository.ConfeccaoRepository = (*stubConfeccaoRepo)(nil)

// ── stock movements ───────────────────────────────────────────────────────────

type stubMovimentoRepo struct {
	movimentos []model.MovimentoEstoque
}

func (r *stubMovimentoRepo) Create(_ context.Context, m *model.MovimentoEstoque) error {
	return r.CreateTx(nil, m)
}

func (r *stubMovimentoRepo) CreateTx(_ *gorm.DB, m *model.MovimentoEstoque) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *stubMovimentoRepo) List(_ context.Context, _ repository.MovimentoEstoqueFilter) ([]model.MovimentoEstoque, int64, error) {
	return r.movimentos, int64(len(r.movimentos)), nil
}

var _ repository.MovimentoEstoqueRepository = (*stubMovimentoRepo)(nil)
