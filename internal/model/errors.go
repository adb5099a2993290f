package model

import (
	"fmt"
	"strings"
)

// Razões de falha do engine de estimativa. Strings estáveis: fazem parte
// do contrato com os chamadores.
const (
	ReasonNotFound           = "not found in library"
	ReasonNoFeaturesProvided = "no features provided"
)

// ValidationError indica entrada inválida em um construtor de registro de
// domínio (ex.: horas não positivas).
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("validação: campo %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validação: campo %q: %s (valor: %v)", e.Field, e.Message, e.Value)
}

// NotFoundError indica lookup sem resultado. Reservado aos stores
// colaboradores (catálogo, time log); o engine em si nunca o produz.
type NotFoundError struct {
	ResourceType string
	Identifier   string
	Message      string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %q: %s", e.ResourceType, e.Identifier, e.Message)
	}
	return fmt.Sprintf("%s %q não encontrado", e.ResourceType, e.Identifier)
}

// EstimationError é o único tipo de erro produzido pelo engine de
// estimativa: feature desconhecida ou lista vazia em EstimateProject.
type EstimationError struct {
	FeatureName string
	Reason      string
	Details     string
}

// NewEstimationError constrói um EstimationError sem detalhes adicionais.
func NewEstimationError(featureName, reason string) *EstimationError {
	return &EstimationError{FeatureName: featureName, Reason: reason}
}

func (e *EstimationError) Error() string {
	var b strings.Builder
	b.WriteString("estimativa")
	if e.FeatureName != "" {
		fmt.Fprintf(&b, " de %q", e.FeatureName)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Details != "" {
		fmt.Fprintf(&b, " (%s)", e.Details)
	}
	return b.String()
}

// ImportError pertence à camada de importação CSV, externa ao core; o
// tipo existe aqui para completar a taxonomia de erros do domínio.
type ImportError struct {
	RowNumber int
	Errors    []string
	Source    string
}

func (e *ImportError) Error() string {
	msg := fmt.Sprintf("importação: linha %d: %s", e.RowNumber, strings.Join(e.Errors, "; "))
	if e.Source != "" {
		msg += " em " + e.Source
	}
	return msg
}
