package service

import (
	"context"
	"testing"

	"makarios/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardResumo(t *testing.T) {
	materialRepo := newStubMaterialRepo()
	produtoRepo := newStubProdutoRepo()
	confeccaoRepo := newStubConfeccaoRepo()
	svc := NewDashboardService(materialRepo, produtoRepo, confeccaoRepo)

	// 50 m × 18.90 = 945.00; 1 kg × 24.50 = 24.50 (abaixo do mínimo 2)
	tecido := &model.Material{ID: uuid.New(), Nome: "Tecido", UnidadeCompra: "metros", UnidadeUso: "cm",
		EstoqueAtual: dec("50"), ValorUnitario: dec("18.90")}
	fibra := &model.Material{ID: uuid.New(), Nome: "Fibra", UnidadeCompra: "kg", UnidadeUso: "gramas",
		EstoqueAtual: dec("1"), ValorUnitario: dec("24.50"), EstoqueMinimo: dec("2")}
	materialRepo.materiais[tecido.ID] = tecido
	materialRepo.materiais[fibra.ID] = fibra

	p := &model.Produto{ID: uuid.New(), Nome: "Urso", QuantidadePlanejada: 1}
	produtoRepo.produtos[p.ID] = p

	confeccaoRepo.confeccoes[uuid.New()] = &model.Confeccao{CustoTotal: dec("30.00")}
	confeccaoRepo.confeccoes[uuid.New()] = &model.Confeccao{CustoTotal: dec("10.00")}

	resumo, err := svc.Resumo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resumo.TotalMateriais)
	assert.Equal(t, int64(1), resumo.TotalProdutos)
	assert.Equal(t, int64(2), resumo.TotalConfeccoes)
	assert.True(t, resumo.ValorEstoque.Equal(dec("969.50")), "veio %s", resumo.ValorEstoque)
	assert.True(t, resumo.CustoTotal.Equal(dec("40")))
	assert.True(t, resumo.CustoMedio.Equal(dec("20")))
	require.Len(t, resumo.MateriaisAbaixo, 1)
	assert.Equal(t, "Fibra", resumo.MateriaisAbaixo[0].Nome)
}
