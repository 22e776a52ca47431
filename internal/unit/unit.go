// Package unit implements the conversion table between purchase and usage
// units. Each physical dimension has a single base unit (metros, quilos,
// litros) and every other unit carries a fixed power-of-ten scale against it,
// so decimal arithmetic stays exact across round-trips.
package unit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dimensao identifies the physical dimension a unit belongs to.
type Dimensao string

const (
	DimensaoNenhuma     Dimensao = ""
	DimensaoComprimento Dimensao = "comprimento"
	DimensaoMassa       Dimensao = "massa"
	DimensaoVolume      Dimensao = "volume"
)

type entrada struct {
	dimensao Dimensao
	// escala: quantas unidades desta cabem em 1 unidade base.
	escala decimal.Decimal
}

var (
	um   = decimal.NewFromInt(1)
	cem  = decimal.NewFromInt(100)
	mil  = decimal.NewFromInt(1000)
)

// tabela maps a lower-cased unit symbol (abbreviation or full word) to its
// dimension and scale. Adding a unit is adding a row here — nothing else.
var tabela = map[string]entrada{
	// comprimento — base: metros
	"m":           {DimensaoComprimento, um},
	"metros":      {DimensaoComprimento, um},
	"cm":          {DimensaoComprimento, cem},
	"centimetros": {DimensaoComprimento, cem},

	// massa — base: quilos
	"kg":     {DimensaoMassa, um},
	"quilos": {DimensaoMassa, um},
	"g":      {DimensaoMassa, mil},
	"gramas": {DimensaoMassa, mil},

	// volume — base: litros
	"l":          {DimensaoVolume, um},
	"litros":     {DimensaoVolume, um},
	"ml":         {DimensaoVolume, mil},
	"mililitros": {DimensaoVolume, mil},
}

func lookup(unidade string) (entrada, bool) {
	e, ok := tabela[strings.ToLower(strings.TrimSpace(unidade))]
	return e, ok
}

// DimensaoDe returns the dimension of a unit symbol, or DimensaoNenhuma for
// unrecognized (count/unitless) symbols.
func DimensaoDe(unidade string) Dimensao {
	e, ok := lookup(unidade)
	if !ok {
		return DimensaoNenhuma
	}
	return e.dimensao
}

// Compativeis reports whether two unit symbols share a physical dimension.
// Unknown symbols are compatible with everything — the conversion table is
// deliberately permissive, callers that care should warn, not reject.
func Compativeis(a, b string) bool {
	da, db := DimensaoDe(a), DimensaoDe(b)
	if da == DimensaoNenhuma || db == DimensaoNenhuma {
		return true
	}
	return da == db
}

// ParaBase converts a value denominated in unidade to the dimension's base
// unit. Unknown units pass through unchanged (scale 1) — this is a total
// function, never an error.
func ParaBase(valor decimal.Decimal, unidade string) decimal.Decimal {
	e, ok := lookup(unidade)
	if !ok || e.escala.Equal(um) {
		return valor
	}
	return valor.Div(e.escala)
}

// DeBase converts a value in the dimension's base unit back to unidade.
func DeBase(valor decimal.Decimal, unidade string) decimal.Decimal {
	e, ok := lookup(unidade)
	if !ok || e.escala.Equal(um) {
		return valor
	}
	return valor.Mul(e.escala)
}

// Converter re-denominates valor from one unit into another by passing
// through the base unit. This is the consumption converter: a material's
// per-product usage (in unidade de uso) becomes stock consumption (in
// unidade de compra), and stock becomes usable quantity on the way back.
func Converter(valor decimal.Decimal, de, para string) decimal.Decimal {
	return DeBase(ParaBase(valor, de), para)
}
