// Package text concentra a normalização de nomes de feature usada
// identicamente pelo catálogo e pelo time log, garantindo semântica de
// matching consistente entre os dois.
package text

import "strings"

// NormalizeName reduz um nome à forma canônica de comparação: minúsculas,
// hífens e underscores viram espaço, whitespace colapsado e aparado.
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
