package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarConfeccaoRequest commits a production run. Quantidade is the
// authoritative quantity — the product's planned quantity is preview-only.
type RegistrarConfeccaoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

type ConfeccaoFilter struct {
	ProdutoID string `form:"produto_id"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ConfeccaoMaterialResponse struct {
	MaterialID      string          `json:"material_id"`
	MaterialNome    string          `json:"material_nome"`
	QuantidadeUsada decimal.Decimal `json:"quantidade_usada"`
	UnidadeUso      string          `json:"unidade_uso"`
}

type ConfeccaoResponse struct {
	ID                      string                      `json:"id"`
	ProdutoID               string                      `json:"produto_id"`
	ProdutoNome             string                      `json:"produto_nome"`
	QuantidadeConfeccionada int                         `json:"quantidade_confeccionada"`
	CustoTotal              decimal.Decimal             `json:"custo_total"`
	MateriaisUsados         []ConfeccaoMaterialResponse `json:"materiais_usados"`
	CreatedAt               string                      `json:"created_at"`
}

type ConfeccaoListResponse struct {
	Data  []ConfeccaoResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
