package repository

import (
	"sync"
	"time"

	"github.com/cleberrangel/feature-estimator/internal/model"
	"github.com/cleberrangel/feature-estimator/internal/text"
	"github.com/google/uuid"
)

// TimeLog é o store em memória de horas rastreadas. Os lançamentos são
// mantidos na ordem de inserção; o filtro por feature usa a mesma
// normalização de nome do catálogo.
type TimeLog struct {
	mu      sync.RWMutex
	entries []model.TrackedTimeEntry
}

// NewTimeLog cria um log vazio.
func NewTimeLog() *TimeLog {
	return &TimeLog{}
}

// LogTime valida, gera um ID único e registra um lançamento de horas,
// retornando o registro criado.
func (l *TimeLog) LogTime(team model.TeamType, memberName, feature string, trackedTimeHours float64, process string, date time.Time) (model.TrackedTimeEntry, error) {
	entry, err := model.NewTrackedTimeEntry(uuid.New().String(), team, memberName, feature, trackedTimeHours, process, date)
	if err != nil {
		return model.TrackedTimeEntry{}, err
	}
	l.AddEntry(entry)
	return entry, nil
}

// AddEntry registra um lançamento já construído.
func (l *TimeLog) AddEntry(entry model.TrackedTimeEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// GetEntriesForFeature retorna, na ordem de inserção, todos os
// lançamentos cujo campo feature normaliza para o mesmo nome. Sempre
// retorna uma sequência (vazia quando não há lançamentos), nunca ausência.
func (l *TimeLog) GetEntriesForFeature(featureName string) []model.TrackedTimeEntry {
	key := text.NormalizeName(featureName)

	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]model.TrackedTimeEntry, 0)
	for _, e := range l.entries {
		if text.NormalizeName(e.Feature) == key {
			matched = append(matched, e)
		}
	}
	return matched
}

// EntryCount retorna o total de lançamentos registrados.
func (l *TimeLog) EntryCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
