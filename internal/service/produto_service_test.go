package service

import (
	"context"
	"testing"

	"makarios/internal/dto"
	"makarios/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type produtoFixture struct {
	svc          ProdutoService
	materialRepo *stubMaterialRepo
	produtoRepo  *stubProdutoRepo
}

func newProdutoFixture() *produtoFixture {
	f := &produtoFixture{
		materialRepo: newStubMaterialRepo(),
		produtoRepo:  newStubProdutoRepo(),
	}
	f.svc = NewProdutoService(f.produtoRepo, f.materialRepo)
	return f
}

func (f *produtoFixture) seedMaterial(nome, compra, uso, estoque, valor string) *model.Material {
	m := &model.Material{
		ID:            uuid.New(),
		Nome:          nome,
		UnidadeCompra: compra,
		UnidadeUso:    uso,
		EstoqueAtual:  dec(estoque),
		ValorUnitario: dec(valor),
	}
	f.materialRepo.materiais[m.ID] = m
	return m
}

func TestCriarProduto_ComBOM(t *testing.T) {
	f := newProdutoFixture()
	tecido := f.seedMaterial("Tecido", "metros", "cm", "50", "10.00")

	resp, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome: "Almofada",
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: tecido.ID.String(), QuantidadeUsada: dec("150")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.QuantidadePlanejada) // default
	require.Len(t, resp.Materiais, 1)
	assert.Equal(t, "Tecido", resp.Materiais[0].MaterialNome)
	assert.Equal(t, "cm", resp.Materiais[0].UnidadeUso)
}

func TestCriarProduto_MaterialRepetido(t *testing.T) {
	f := newProdutoFixture()
	tecido := f.seedMaterial("Tecido", "metros", "cm", "50", "10.00")

	_, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome: "Almofada",
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: tecido.ID.String(), QuantidadeUsada: dec("100")},
			{MaterialID: tecido.ID.String(), QuantidadeUsada: dec("50")},
		},
	})
	assert.ErrorIs(t, err, ErrMaterialDuplicado)
	assert.Empty(t, f.produtoRepo.produtos)
}

func TestAtualizarProduto_SubstituiBOM(t *testing.T) {
	f := newProdutoFixture()
	tecido := f.seedMaterial("Tecido", "metros", "cm", "50", "10.00")
	fibra := f.seedMaterial("Fibra", "kg", "gramas", "5", "20.00")

	criado, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome: "Urso",
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: tecido.ID.String(), QuantidadeUsada: dec("45")},
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(criado.ID)

	atualizado, err := f.svc.Atualizar(context.Background(), id, dto.AtualizarProdutoRequest{
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: fibra.ID.String(), QuantidadeUsada: dec("180")},
		},
	})
	require.NoError(t, err)
	require.Len(t, atualizado.Materiais, 1)
	assert.Equal(t, "Fibra", atualizado.Materiais[0].MaterialNome)
}

func TestCusto_QuantidadePadraoEhAPlanejada(t *testing.T) {
	f := newProdutoFixture()
	botao := f.seedMaterial("Botão", "unidade", "unidade", "100", "1.00")

	criado, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:                "Camisa",
		QuantidadePlanejada: 4,
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: botao.ID.String(), QuantidadeUsada: dec("5")},
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(criado.ID)

	resp, err := f.svc.Custo(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Quantidade)
	assert.True(t, resp.CustoTotal.Equal(dec("20")), "veio %s", resp.CustoTotal)

	resp, err = f.svc.Custo(context.Background(), id, 10)
	require.NoError(t, err)
	assert.True(t, resp.CustoTotal.Equal(dec("50")))
}

func TestCusto_QuantidadeNegativa(t *testing.T) {
	f := newProdutoFixture()
	criado, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{Nome: "Camisa"})
	require.NoError(t, err)

	_, err = f.svc.Custo(context.Background(), uuid.MustParse(criado.ID), -1)
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)
}

func TestMaxProduzivel_RespostaLimitada(t *testing.T) {
	f := newProdutoFixture()
	tecido := f.seedMaterial("Tecido", "metros", "cm", "10", "10.00")

	criado, err := f.svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome: "Almofada",
		Materiais: []dto.MaterialProdutoRequest{
			{MaterialID: tecido.ID.String(), QuantidadeUsada: dec("150")},
		},
	})
	require.NoError(t, err)

	resp, err := f.svc.MaxProduzivel(context.Background(), uuid.MustParse(criado.ID))
	require.NoError(t, err)
	assert.False(t, resp.Ilimitado)
	assert.Equal(t, int64(6), resp.MaxProduzivel)
}

func TestMaxProduzivel_TodasAsLinhasOrfas(t *testing.T) {
	f := newProdutoFixture()
	p := &model.Produto{
		ID:   uuid.New(),
		Nome: "Fantasma",
		Materiais: []model.MaterialProduto{
			{MaterialID: uuid.New(), QuantidadeUsada: dec("3")},
		},
	}
	f.produtoRepo.produtos[p.ID] = p

	resp, err := f.svc.MaxProduzivel(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, resp.Ilimitado)
	assert.Equal(t, int64(0), resp.MaxProduzivel)
}

func TestProduto_NaoEncontrado(t *testing.T) {
	f := newProdutoFixture()
	ctx := context.Background()

	_, err := f.svc.ObterPorID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)

	_, err = f.svc.Custo(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)

	_, err = f.svc.MaxProduzivel(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
}
