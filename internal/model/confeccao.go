package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confeccao is one committed production run. It owns an immutable snapshot
// of the product name, total cost, and the BOM lines consumed — later edits
// to the product never rewrite history.
type Confeccao struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoNome             string          `gorm:"not null"`
	QuantidadeConfeccionada int             `gorm:"not null"`
	CustoTotal              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt               time.Time       `gorm:"index"`

	Itens []ConfeccaoMaterial `gorm:"foreignKey:ConfeccaoID;constraint:OnDelete:CASCADE"`
}

func (Confeccao) TableName() string { return "confeccoes" }

// ConfeccaoMaterial is a snapshot copy of one BOM line as it was at commit
// time. QuantidadeUsada is per planned unit, in UnidadeUso.
type ConfeccaoMaterial struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConfeccaoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID      uuid.UUID       `gorm:"type:uuid;not null"`
	MaterialNome    string          `gorm:"not null"`
	QuantidadeUsada decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	UnidadeUso      string          `gorm:"not null"`
}

func (ConfeccaoMaterial) TableName() string { return "confeccao_materiais" }
