package model

import "fmt"

// TeamType identifica o time responsável. Enum fechado; os wire-values
// são estáveis para interop caso o domínio seja serializado.
type TeamType string

const (
	TeamBackend  TeamType = "BACKEND"
	TeamFrontend TeamType = "FRONTEND"
	TeamMobile   TeamType = "MOBILE"
	TeamQA       TeamType = "QA"
	TeamDevOps   TeamType = "DEVOPS"
	TeamDesign   TeamType = "DESIGN"
)

var teamTypes = map[TeamType]bool{
	TeamBackend:  true,
	TeamFrontend: true,
	TeamMobile:   true,
	TeamQA:       true,
	TeamDevOps:   true,
	TeamDesign:   true,
}

// ParseTeamType converte a representação string em TeamType, falhando em
// valor desconhecido.
func ParseTeamType(s string) (TeamType, error) {
	t := TeamType(s)
	if !teamTypes[t] {
		return "", &ValidationError{
			Field:   "team",
			Message: "time desconhecido",
			Value:   s,
		}
	}
	return t, nil
}

// Valid reporta se o valor pertence ao enum.
func (t TeamType) Valid() bool {
	return teamTypes[t]
}

// ConfidenceLevel classifica a confiabilidade de uma estimativa, dirigida
// exclusivamente pelo tamanho da amostra histórica. Ordenação fixa:
// LOW < MEDIUM < HIGH.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "LOW"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceHigh   ConfidenceLevel = "HIGH"
)

// Limiares de amostra para cada tier de confiança.
const (
	highConfidenceDataPoints   = 10
	mediumConfidenceDataPoints = 3
)

// ParseConfidenceLevel converte a representação string em ConfidenceLevel,
// falhando em valor desconhecido.
func ParseConfidenceLevel(s string) (ConfidenceLevel, error) {
	switch c := ConfidenceLevel(s); c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return c, nil
	default:
		return "", &ValidationError{
			Field:   "confidence",
			Message: "nível de confiança desconhecido",
			Value:   s,
		}
	}
}

func (c ConfidenceLevel) rank() int {
	switch c {
	case ConfidenceLow:
		return 0
	case ConfidenceMedium:
		return 1
	case ConfidenceHigh:
		return 2
	default:
		panic(fmt.Sprintf("model: ConfidenceLevel inválido: %q", string(c)))
	}
}

// MinConfidence retorna o menor dos dois níveis na ordenação
// LOW < MEDIUM < HIGH.
func MinConfidence(a, b ConfidenceLevel) ConfidenceLevel {
	if b.rank() < a.rank() {
		return b
	}
	return a
}

// ConfidenceForDataPoints deriva o tier de confiança do tamanho da
// amostra: N >= 10 → HIGH; 3 <= N < 10 → MEDIUM; N < 3 → LOW.
func ConfidenceForDataPoints(n int) ConfidenceLevel {
	switch {
	case n >= highConfidenceDataPoints:
		return ConfidenceHigh
	case n >= mediumConfidenceDataPoints:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
