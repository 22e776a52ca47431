package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MaterialProdutoRequest is one BOM line: consumption per product unit, in
// the material's usage unit. Material ids must be unique within a request.
type MaterialProdutoRequest struct {
	MaterialID      string          `json:"material_id"      validate:"required,uuid"`
	QuantidadeUsada decimal.Decimal `json:"quantidade_usada" validate:"required,gt=0"`
}

type CriarProdutoRequest struct {
	Nome                string                   `json:"nome"                 validate:"required,min=2,max=120"`
	QuantidadePlanejada int                      `json:"quantidade_planejada" validate:"omitempty,gt=0"`
	Materiais           []MaterialProdutoRequest `json:"materiais"            validate:"dive"`
}

type AtualizarProdutoRequest struct {
	Nome                *string                  `json:"nome"                 validate:"omitempty,min=2,max=120"`
	QuantidadePlanejada *int                     `json:"quantidade_planejada" validate:"omitempty,gt=0"`
	// Materiais, when present, replaces the whole BOM.
	Materiais []MaterialProdutoRequest `json:"materiais" validate:"omitempty,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialProdutoResponse struct {
	MaterialID      string          `json:"material_id"`
	MaterialNome    string          `json:"material_nome"`
	QuantidadeUsada decimal.Decimal `json:"quantidade_usada"`
	UnidadeUso      string          `json:"unidade_uso"`
}

type ProdutoResponse struct {
	ID                  string                    `json:"id"`
	Nome                string                    `json:"nome"`
	QuantidadePlanejada int                       `json:"quantidade_planejada"`
	Materiais           []MaterialProdutoResponse `json:"materiais"`
}

// CustoResponse is the costing preview for a requested quantity.
type CustoResponse struct {
	ProdutoID  string          `json:"produto_id"`
	Quantidade int             `json:"quantidade"`
	CustoTotal decimal.Decimal `json:"custo_total"`
}

// MaxProduzivelResponse previews how many units current stock supports.
// Ilimitado is true when no BOM line bounds production (every referenced
// material was deleted or has zero consumption).
type MaxProduzivelResponse struct {
	ProdutoID     string `json:"produto_id"`
	MaxProduzivel int64  `json:"max_produzivel"`
	Ilimitado     bool   `json:"ilimitado"`
}
