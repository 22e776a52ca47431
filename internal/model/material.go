package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is a raw input tracked by stock quantity and unit price.
// EstoqueAtual and ValorUnitario are denominated in UnidadeCompra; the
// per-product consumption on a BOM entry is denominated in UnidadeUso.
type Material struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome          string    `gorm:"index;not null"`
	UnidadeCompra string    `gorm:"not null;default:'unidades'"`
	UnidadeUso    string    `gorm:"not null;default:'unidades'"`
	// EstoqueAtual never goes negative: the confection transaction
	// pre-checks sufficiency before any decrement.
	EstoqueAtual  decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EstoqueMinimo decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Material) TableName() string { return "materiais" }
