package dto

import "github.com/shopspring/decimal"

// DashboardResponse aggregates the shop's headline figures: catalog sizes,
// current stock valuation, and confection cost totals.
type DashboardResponse struct {
	TotalMateriais  int64              `json:"total_materiais"`
	TotalProdutos   int64              `json:"total_produtos"`
	TotalConfeccoes int64              `json:"total_confeccoes"`
	ValorEstoque    decimal.Decimal    `json:"valor_estoque"`
	CustoTotal      decimal.Decimal    `json:"custo_total_confeccoes"`
	CustoMedio      decimal.Decimal    `json:"custo_medio_confeccao"`
	MateriaisAbaixo []MaterialResponse `json:"materiais_abaixo_minimo"`
}
