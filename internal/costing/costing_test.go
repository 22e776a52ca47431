package costing

import (
	"testing"

	"makarios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func material(nome, compra, uso, estoque, valor string) *model.Material {
	return &model.Material{
		ID:            uuid.New(),
		Nome:          nome,
		UnidadeCompra: compra,
		UnidadeUso:    uso,
		EstoqueAtual:  dec(estoque),
		ValorUnitario: dec(valor),
	}
}

func catalogo(ms ...*model.Material) map[uuid.UUID]*model.Material {
	idx := make(map[uuid.UUID]*model.Material, len(ms))
	for _, m := range ms {
		idx[m.ID] = m
	}
	return idx
}

func produto(nome string, planejada int, linhas ...model.MaterialProduto) *model.Produto {
	return &model.Produto{
		ID:                  uuid.New(),
		Nome:                nome,
		QuantidadePlanejada: planejada,
		Materiais:           linhas,
	}
}

func linha(m *model.Material, qtd string) model.MaterialProduto {
	return model.MaterialProduto{MaterialID: m.ID, QuantidadeUsada: dec(qtd)}
}

// ── CustoProducao ─────────────────────────────────────────────────────────────

func TestCustoProducao_ConverteUnidadeDeUsoParaCompra(t *testing.T) {
	// Tecido comprado em metros a 10.00, consumido em cm: 150 cm por unidade.
	// 2 unidades → 3 metros → 30.00
	tecido := material("Tecido", "metros", "cm", "50", "10.00")
	p := produto("Almofada", 1, linha(tecido, "150"))

	custo := CustoProducao(p, catalogo(tecido), 2)
	assert.True(t, custo.Equal(dec("30")), "veio %s", custo)
}

func TestCustoProducao_SomaTodasAsLinhas(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "50", "10.00")
	fibra := material("Fibra", "kg", "gramas", "5", "20.00")
	botao := material("Botão", "unidade", "unidade", "100", "0.50")
	p := produto("Urso", 1,
		linha(tecido, "45"),  // 0.45 m × 10.00 = 4.50
		linha(fibra, "180"),  // 0.18 kg × 20.00 = 3.60
		linha(botao, "2"),    // 2 × 0.50 = 1.00
	)

	custo := CustoProducao(p, catalogo(tecido, fibra, botao), 1)
	assert.True(t, custo.Equal(dec("9.10")), "veio %s", custo)
}

func TestCustoProducao_EscalaLinearComQuantidade(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "50", "12.30")
	p := produto("Bolsa", 1, linha(tecido, "75"))
	cat := catalogo(tecido)

	um := CustoProducao(p, cat, 1)
	cinco := CustoProducao(p, cat, 5)
	assert.True(t, cinco.Equal(um.Mul(dec("5"))), "1un=%s 5un=%s", um, cinco)
}

func TestCustoProducao_MaterialRemovidoNaoCusta(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "50", "10.00")
	p := produto("Almofada", 1,
		linha(tecido, "100"),
		model.MaterialProduto{MaterialID: uuid.New(), QuantidadeUsada: dec("999")}, // material já removido
	)

	custo := CustoProducao(p, catalogo(tecido), 1)
	assert.True(t, custo.Equal(dec("10")), "veio %s", custo)
}

func TestCustoProducao_QuantidadeZeroUsaPlanejada(t *testing.T) {
	botao := material("Botão", "unidade", "unidade", "100", "1.00")
	p := produto("Camisa", 4, linha(botao, "5"))

	custo := CustoProducao(p, catalogo(botao), 0)
	assert.True(t, custo.Equal(dec("20")), "veio %s", custo)
}

func TestCustoProducao_SemMateriaisCustaZero(t *testing.T) {
	p := produto("Vazio", 1)
	custo := CustoProducao(p, catalogo(), 3)
	assert.True(t, custo.IsZero())
}

// ── MaxProduzivel ─────────────────────────────────────────────────────────────

func TestMaxProduzivel_ArredondaParaBaixo(t *testing.T) {
	// 10 metros = 1000 cm de estoque; 150 cm por unidade → 6, nunca 7
	tecido := material("Tecido", "metros", "cm", "10", "10.00")
	p := produto("Almofada", 1, linha(tecido, "150"))

	assert.Equal(t, int64(6), MaxProduzivel(p, catalogo(tecido)))
}

func TestMaxProduzivel_MinimoEntreLinhas(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "10", "10.00") // 1000 cm / 100 = 10
	fibra := material("Fibra", "kg", "gramas", "1", "20.00")    // 1000 g / 300 = 3
	p := produto("Urso", 1, linha(tecido, "100"), linha(fibra, "300"))

	assert.Equal(t, int64(3), MaxProduzivel(p, catalogo(tecido, fibra)))
}

func TestMaxProduzivel_EstoqueInsuficienteDaZero(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "1", "10.00") // 100 cm < 150 cm
	p := produto("Almofada", 1, linha(tecido, "150"))

	assert.Equal(t, int64(0), MaxProduzivel(p, catalogo(tecido)))
}

func TestMaxProduzivel_SemMateriaisDaZero(t *testing.T) {
	p := produto("Vazio", 1)
	assert.Equal(t, int64(0), MaxProduzivel(p, catalogo()))
}

func TestMaxProduzivel_LinhaOrfaNaoLimita(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "10", "10.00")
	p := produto("Almofada", 1,
		linha(tecido, "100"),
		model.MaterialProduto{MaterialID: uuid.New(), QuantidadeUsada: dec("9999")}, // material removido
	)
	assert.Equal(t, int64(10), MaxProduzivel(p, catalogo(tecido)))
}

func TestMaxProduzivel_TodasAsLinhasOrfasEhSemLimite(t *testing.T) {
	p := produto("Fantasma", 1,
		model.MaterialProduto{MaterialID: uuid.New(), QuantidadeUsada: dec("1")},
		model.MaterialProduto{MaterialID: uuid.New(), QuantidadeUsada: dec("2")},
	)
	assert.Equal(t, SemLimite, MaxProduzivel(p, catalogo()))
}

func TestMaxProduzivel_ConsumoZeroNaoLimita(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "10", "10.00")
	aparas := material("Aparas", "kg", "gramas", "0", "0.00")
	p := produto("Almofada", 1, linha(tecido, "200"), linha(aparas, "0"))

	assert.Equal(t, int64(5), MaxProduzivel(p, catalogo(tecido, aparas)))
}

// ── ConsumoTotal ──────────────────────────────────────────────────────────────

func TestConsumoTotal_EmUnidadeDeCompra(t *testing.T) {
	tecido := material("Tecido", "metros", "cm", "50", "10.00")
	mp := linha(tecido, "150")

	consumo := ConsumoTotal(mp, tecido, 4)
	assert.True(t, consumo.Equal(dec("6")), "veio %s", consumo) // 600 cm = 6 m
}
