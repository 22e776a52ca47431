package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarMaterialRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=2,max=120"`
	UnidadeCompra string          `json:"unidade_compra" validate:"required"`
	UnidadeUso    string          `json:"unidade_uso"    validate:"required"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"  validate:"min=0"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"min=0"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo" validate:"min=0"`
}

type AtualizarMaterialRequest struct {
	Nome          *string          `json:"nome"           validate:"omitempty,min=2,max=120"`
	UnidadeCompra *string          `json:"unidade_compra"`
	UnidadeUso    *string          `json:"unidade_uso"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario" validate:"omitempty,min=0"`
	EstoqueMinimo *decimal.Decimal `json:"estoque_minimo" validate:"omitempty,min=0"`
}

// AjustarEstoqueRequest applies a manual stock delta (purchase unit).
// Negative deltas may not take stock below zero.
type AjustarEstoqueRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Motivo string          `json:"motivo" validate:"required,min=3,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	UnidadeCompra string          `json:"unidade_compra"`
	UnidadeUso    string          `json:"unidade_uso"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	AbaixoMinimo  bool            `json:"abaixo_minimo"`
}
