// Package repository implementa os stores colaboradores em memória:
// a biblioteca de features e o log de horas rastreadas. Os stores são
// views de leitura para o engine de estimativa, com sincronização
// própria (RWMutex) para hosts multi-thread.
package repository

import (
	"sync"

	"github.com/cleberrangel/feature-estimator/internal/model"
	"github.com/cleberrangel/feature-estimator/internal/text"
	"github.com/google/uuid"
)

// FeatureCatalog é a biblioteca de features em memória. O lookup por nome
// é case-insensitive sobre a forma normalizada e confere também os
// sinônimos cadastrados.
type FeatureCatalog struct {
	mu       sync.RWMutex
	byID     map[string]model.Feature
	idByName map[string]string // nome/sinônimo normalizado -> feature ID
}

// NewFeatureCatalog cria um catálogo vazio.
func NewFeatureCatalog() *FeatureCatalog {
	return &FeatureCatalog{
		byID:     make(map[string]model.Feature),
		idByName: make(map[string]string),
	}
}

// CreateFeature valida, gera um ID único e cadastra a feature,
// retornando o registro criado.
func (c *FeatureCatalog) CreateFeature(name string, team model.TeamType, process string, seedTimeHours float64, synonyms []string, notes string) (model.Feature, error) {
	feature, err := model.NewFeature(uuid.New().String(), name, team, process, seedTimeHours, synonyms, notes)
	if err != nil {
		return model.Feature{}, err
	}
	if err := c.AddFeature(feature); err != nil {
		return model.Feature{}, err
	}
	return feature, nil
}

// AddFeature cadastra uma feature já construída. Falha se o ID, o nome ou
// algum sinônimo colidir com um registro existente.
func (c *FeatureCatalog) AddFeature(feature model.Feature) error {
	names := append([]string{feature.Name}, feature.Synonyms...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[feature.ID]; exists {
		return &model.ValidationError{Field: "id", Message: "id já cadastrado", Value: feature.ID}
	}
	for _, n := range names {
		if key := text.NormalizeName(n); c.idByName[key] != "" {
			return &model.ValidationError{Field: "name", Message: "nome já cadastrado", Value: n}
		}
	}

	c.byID[feature.ID] = feature
	for _, n := range names {
		c.idByName[text.NormalizeName(n)] = feature.ID
	}
	return nil
}

// GetFeatureByName resolve uma feature pelo nome (ou sinônimo), casando
// pela forma normalizada. O segundo retorno indica presença.
func (c *FeatureCatalog) GetFeatureByName(name string) (model.Feature, bool) {
	key := text.NormalizeName(name)

	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.idByName[key]
	if !ok {
		return model.Feature{}, false
	}
	return c.byID[id], true
}

// GetFeatureByID resolve uma feature pelo ID.
func (c *FeatureCatalog) GetFeatureByID(id string) (model.Feature, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	feature, ok := c.byID[id]
	if !ok {
		return model.Feature{}, &model.NotFoundError{ResourceType: "feature", Identifier: id}
	}
	return feature, nil
}

// ListFeatures retorna uma cópia de todas as features cadastradas.
func (c *FeatureCatalog) ListFeatures() []model.Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()

	features := make([]model.Feature, 0, len(c.byID))
	for _, f := range c.byID {
		features = append(features, f)
	}
	return features
}

// Len retorna o número de features cadastradas.
func (c *FeatureCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
