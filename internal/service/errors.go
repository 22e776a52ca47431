package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors surfaced to the handler layer, which maps them to HTTP
// statuses. Persistence failures are propagated as-is, never interpreted.
var (
	ErrMaterialNaoEncontrado  = errors.New("material não encontrado")
	ErrProdutoNaoEncontrado   = errors.New("produto não encontrado")
	ErrConfeccaoNaoEncontrada = errors.New("confecção não encontrada")
	ErrQuantidadeInvalida     = errors.New("a quantidade deve ser um inteiro positivo")
	ErrMaterialDuplicado      = errors.New("material repetido na lista de materiais do produto")
	ErrEstoqueNegativo        = errors.New("o ajuste deixaria o estoque negativo")
)

// FaltaEstoque describes one material whose stock cannot cover a requested
// confection. Amounts are in the material's purchase unit.
type FaltaEstoque struct {
	MaterialID   uuid.UUID
	MaterialNome string
	Necessario   decimal.Decimal
	Disponivel   decimal.Decimal
	Unidade      string
}

// EstoqueInsuficienteError aborts a confection before any mutation. It
// carries every shortfall material so the caller can show exactly which
// materials are short and by how much.
type EstoqueInsuficienteError struct {
	Faltas []FaltaEstoque
}

func (e *EstoqueInsuficienteError) Error() string {
	partes := make([]string, 0, len(e.Faltas))
	for _, f := range e.Faltas {
		partes = append(partes, fmt.Sprintf("%s (necessário %s %s, disponível %s %s)",
			f.MaterialNome, f.Necessario, f.Unidade, f.Disponivel, f.Unidade))
	}
	return "estoque insuficiente: " + strings.Join(partes, "; ")
}
