package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a finished item defined by its bill-of-materials.
type Produto struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"index;not null"`
	// QuantidadePlanejada is only a preview default for costing — the
	// confection request carries the authoritative quantity.
	QuantidadePlanejada int `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Materiais []MaterialProduto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:CASCADE"`
}

// MaterialProduto is one BOM line: how much of a material one unit of the
// product consumes, in the material's usage unit. MaterialID is a plain
// uuid on purpose — materials can be deleted from the catalog and a
// dangling reference must survive (the engine skips it).
type MaterialProduto struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantidadeUsada decimal.Decimal `gorm:"type:decimal(14,4);not null"`
}

func (MaterialProduto) TableName() string { return "materiais_produto" }
