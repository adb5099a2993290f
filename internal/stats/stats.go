// Package stats contém as funções estatísticas puras do engine de
// estimativa. Todo desvio padrão é populacional (÷N, não ÷(N−1)).
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput indica que uma função estatística recebeu uma amostra vazia.
// Retornar um sentinela silencioso corromperia as estimativas a jusante,
// então a falha é explícita.
var ErrEmptyInput = errors.New("stats: amostra vazia")

// p80Quantile é o quantil usado como estimativa conservadora. Mantido
// constante por compatibilidade com o comportamento original.
const p80Quantile = 0.8

// Outlier é um par (índice, valor) apontando um elemento da amostra cuja
// distância da média excede o limiar configurado.
type Outlier struct {
	Index int
	Value float64
}

// Mean retorna a média aritmética da amostra.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median retorna a mediana: o elemento central da amostra ordenada, ou a
// média dos dois centrais quando N é par. A amostra não é modificada.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := sortedCopy(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// StdDev retorna o desvio padrão populacional da amostra.
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values))), nil
}

// P80 retorna o percentil 80 da amostra com interpolação linear entre
// estatísticas de ordem. A posição é 0.8 × (N−1) sobre a amostra ordenada
// (zero-indexada); quando o índice superior estoura o bound, retorna o
// máximo. Propriedade: P80 >= mediana, sempre.
func P80(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := sortedCopy(values)
	pos := p80Quantile * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1], nil
	}

	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), nil
}

// DetectOutliers retorna, na ordem da amostra, todo elemento cujo desvio
// absoluto da média excede thresholdStd × desvio padrão. Com menos de 2
// valores, ou com amostra constante (desvio zero), não há outliers — e
// nunca há divisão por zero.
func DetectOutliers(values []float64, thresholdStd float64) []Outlier {
	if len(values) < 2 {
		return nil
	}

	mean, _ := Mean(values)
	stdDev, _ := StdDev(values)
	if stdDev == 0 {
		return nil
	}

	limit := thresholdStd * stdDev
	var outliers []Outlier
	for i, v := range values {
		if math.Abs(v-mean) > limit {
			outliers = append(outliers, Outlier{Index: i, Value: v})
		}
	}
	return outliers
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
