// Package costing computes production cost and producible quantity from a
// product's bill-of-materials and the material catalog. All functions are
// pure: no I/O, no mutation, deterministic over their inputs.
package costing

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"makarios/internal/model"
	"makarios/internal/unit"
)

// SemLimite marks a BOM line that imposes no production bound (missing
// material or zero consumption).
const SemLimite = int64(math.MaxInt64)

// IndexarMateriais builds an id lookup over the catalog slice.
func IndexarMateriais(materiais []model.Material) map[uuid.UUID]*model.Material {
	idx := make(map[uuid.UUID]*model.Material, len(materiais))
	for i := range materiais {
		idx[materiais[i].ID] = &materiais[i]
	}
	return idx
}

// CustoProducao returns the total cost of producing quantidade units of the
// product at current catalog prices. BOM lines whose material no longer
// exists contribute zero — a dangling reference is not an error here.
// quantidade <= 0 falls back to the product's planned quantity, then to 1.
func CustoProducao(produto *model.Produto, materiais map[uuid.UUID]*model.Material, quantidade int) decimal.Decimal {
	if quantidade <= 0 {
		quantidade = produto.QuantidadePlanejada
	}
	if quantidade <= 0 {
		quantidade = 1
	}
	qtd := decimal.NewFromInt(int64(quantidade))

	total := decimal.Zero
	for _, mp := range produto.Materiais {
		material, ok := materiais[mp.MaterialID]
		if !ok {
			continue
		}
		consumo := unit.Converter(mp.QuantidadeUsada, material.UnidadeUso, material.UnidadeCompra)
		total = total.Add(consumo.Mul(material.ValorUnitario).Mul(qtd))
	}
	return total
}

// ConsumoTotal returns how much stock (in the material's purchase unit)
// producing quantidade units consumes through one BOM line.
func ConsumoTotal(mp model.MaterialProduto, material *model.Material, quantidade int) decimal.Decimal {
	total := mp.QuantidadeUsada.Mul(decimal.NewFromInt(int64(quantidade)))
	return unit.Converter(total, material.UnidadeUso, material.UnidadeCompra)
}

// MaxProduzivel returns the largest whole number of product units the
// current stock supports: the minimum over BOM lines of floor(stock in
// usage units / per-unit consumption). Floor, never round — rounding up
// would overcommit stock. An empty BOM produces 0: no materials means
// nothing to produce, not "unbounded".
func MaxProduzivel(produto *model.Produto, materiais map[uuid.UUID]*model.Material) int64 {
	if len(produto.Materiais) == 0 {
		return 0
	}

	minimo := SemLimite
	for _, mp := range produto.Materiais {
		limite := limitePorLinha(mp, materiais)
		if limite < minimo {
			minimo = limite
		}
	}
	// When every line is dangling or zero-consumption the result is
	// SemLimite: no material bounds production. Callers presenting this
	// value should render it as "unlimited", not as a number.
	return minimo
}

func limitePorLinha(mp model.MaterialProduto, materiais map[uuid.UUID]*model.Material) int64 {
	material, ok := materiais[mp.MaterialID]
	if !ok || mp.QuantidadeUsada.IsZero() {
		return SemLimite
	}
	estoqueEmUso := unit.Converter(material.EstoqueAtual, material.UnidadeCompra, material.UnidadeUso)
	return estoqueEmUso.Div(mp.QuantidadeUsada).Floor().IntPart()
}
