package model

import (
	"strings"
	"time"
)

// TrackedTimeEntry é uma unidade de trabalho registrada: horas gastas por
// um membro em uma feature. O campo Feature é o nome (casado por texto
// normalizado), não uma chave estrangeira. Nunca é mutada após criada.
type TrackedTimeEntry struct {
	ID               string
	Team             TeamType
	MemberName       string
	Feature          string
	TrackedTimeHours float64
	Process          string
	Date             time.Time
}

// NewTrackedTimeEntry valida os invariantes e constrói um lançamento:
// todos os campos string não vazios, time válido, horas positivas.
func NewTrackedTimeEntry(id string, team TeamType, memberName, feature string, trackedTimeHours float64, process string, date time.Time) (TrackedTimeEntry, error) {
	if strings.TrimSpace(id) == "" {
		return TrackedTimeEntry{}, &ValidationError{Field: "id", Message: "não pode ser vazio"}
	}
	if !team.Valid() {
		return TrackedTimeEntry{}, &ValidationError{Field: "team", Message: "time desconhecido", Value: string(team)}
	}
	if strings.TrimSpace(memberName) == "" {
		return TrackedTimeEntry{}, &ValidationError{Field: "member_name", Message: "não pode ser vazio"}
	}
	if strings.TrimSpace(feature) == "" {
		return TrackedTimeEntry{}, &ValidationError{Field: "feature", Message: "não pode ser vazio"}
	}
	if trackedTimeHours <= 0 {
		return TrackedTimeEntry{}, &ValidationError{Field: "tracked_time_hours", Message: "deve ser positivo", Value: trackedTimeHours}
	}
	if strings.TrimSpace(process) == "" {
		return TrackedTimeEntry{}, &ValidationError{Field: "process", Message: "não pode ser vazio"}
	}

	return TrackedTimeEntry{
		ID:               id,
		Team:             team,
		MemberName:       memberName,
		Feature:          feature,
		TrackedTimeHours: trackedTimeHours,
		Process:          process,
		Date:             date,
	}, nil
}
