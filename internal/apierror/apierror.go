// Package apierror provides the standard error envelopes for the HTTP API.
// All 4xx/5xx responses go through this package so that internal details
// (stack traces, SQL errors) never reach clients.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps per-field validation failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// FaltaEstoque describes one material without enough stock for a requested
// confection, in the material's purchase unit.
type FaltaEstoque struct {
	MaterialID   string `json:"material_id"`
	MaterialNome string `json:"material_nome"`
	Necessario   string `json:"necessario"`
	Disponivel   string `json:"disponivel"`
	Unidade      string `json:"unidade"`
}

// EstoqueInsuficienteError is the 409 body for a rejected confection: every
// shortfall material with required vs available amounts.
type EstoqueInsuficienteError struct {
	Detail string         `json:"detail"`
	Faltas []FaltaEstoque `json:"faltas"`
}

func NewEstoqueInsuficiente(faltas []FaltaEstoque) *EstoqueInsuficienteError {
	return &EstoqueInsuficienteError{Detail: "Estoque insuficiente", Faltas: faltas}
}
