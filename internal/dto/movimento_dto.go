package dto

import "github.com/shopspring/decimal"

type MovimentoEstoqueFilter struct {
	MaterialID string `form:"material_id"`
	Tipo       string `form:"tipo"`
	Page       int    `form:"page,default=1"    validate:"min=1"`
	Limit      int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type MovimentoEstoqueResponse struct {
	ID              string          `json:"id"`
	MaterialID      string          `json:"material_id"`
	MaterialNome    string          `json:"material_nome"`
	Tipo            string          `json:"tipo"`
	Quantidade      decimal.Decimal `json:"quantidade"`
	EstoqueAnterior decimal.Decimal `json:"estoque_anterior"`
	EstoqueNovo     decimal.Decimal `json:"estoque_novo"`
	Motivo          string          `json:"motivo"`
	ReferenciaID    *string         `json:"referencia_id"`
	CreatedAt       string          `json:"created_at"`
}

type MovimentoEstoqueListResponse struct {
	Data  []MovimentoEstoqueResponse `json:"data"`
	Total int64                      `json:"total"`
	Page  int                        `json:"page"`
	Limit int                        `json:"limit"`
}
