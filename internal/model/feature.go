package model

import "strings"

// Feature é uma feature cadastrada na biblioteca, com o chute inicial de
// horas (seed) usado quando não há histórico suficiente. Imutável depois
// de criada; não existe operação de atualização in-place.
type Feature struct {
	ID            string
	Name          string
	Team          TeamType
	Process       string
	SeedTimeHours float64
	Synonyms      []string
	Notes         string
}

// NewFeature valida os invariantes e constrói uma Feature: id e nome não
// vazios, time válido, seed positivo.
func NewFeature(id, name string, team TeamType, process string, seedTimeHours float64, synonyms []string, notes string) (Feature, error) {
	if strings.TrimSpace(id) == "" {
		return Feature{}, &ValidationError{Field: "id", Message: "não pode ser vazio"}
	}
	if strings.TrimSpace(name) == "" {
		return Feature{}, &ValidationError{Field: "name", Message: "não pode ser vazio"}
	}
	if !team.Valid() {
		return Feature{}, &ValidationError{Field: "team", Message: "time desconhecido", Value: string(team)}
	}
	if seedTimeHours <= 0 {
		return Feature{}, &ValidationError{Field: "seed_time_hours", Message: "deve ser positivo", Value: seedTimeHours}
	}

	// A Feature é imutável; o slice de sinônimos não é compartilhado
	// com o chamador.
	var syns []string
	if len(synonyms) > 0 {
		syns = make([]string, len(synonyms))
		copy(syns, synonyms)
	}

	return Feature{
		ID:            id,
		Name:          name,
		Team:          team,
		Process:       process,
		SeedTimeHours: seedTimeHours,
		Synonyms:      syns,
		Notes:         notes,
	}, nil
}
