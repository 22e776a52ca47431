package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimentoEstoque registra cada alteração de estoque de um material,
// criada ao confeccionar ou ao ajustar manualmente.
type MovimentoEstoque struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaterialID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo            string          `gorm:"not null"` // "confeccao" | "ajuste_manual"
	Quantidade      decimal.Decimal `gorm:"type:decimal(14,4);not null"` // positivo = entrada, negativo = saída
	EstoqueAnterior decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	EstoqueNovo     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Motivo          string
	// MaterialNome é desnormalizado: o material pode ser removido do
	// catálogo depois e o histórico continua legível.
	MaterialNome string     `gorm:"not null"`
	ReferenciaID *uuid.UUID `gorm:"type:uuid"` // confeccao_id quando aplicável
	CreatedAt    time.Time
}

func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }
