package model

// FeatureStatistics resume a amostra de horas de uma feature. Computada
// do zero a cada estimativa — nunca persistida nem cacheada.
type FeatureStatistics struct {
	Mean           float64
	Median         float64
	StdDev         float64
	P80            float64
	DataPointCount int
}

// FeatureEstimate é a estimativa pontual de uma feature. Exatamente um
// de {Statistics != nil, UsedSeedTime} vale — os dois construtores abaixo
// garantem a exclusão mútua.
type FeatureEstimate struct {
	FeatureName    string
	EstimatedHours float64
	Confidence     ConfidenceLevel
	Statistics     *FeatureStatistics
	UsedSeedTime   bool
}

// NewStatisticalEstimate constrói uma estimativa derivada do histórico:
// as horas estimadas são o P80 da amostra (escolha deliberadamente
// conservadora para planejamento).
func NewStatisticalEstimate(featureName string, statistics FeatureStatistics, confidence ConfidenceLevel) (FeatureEstimate, error) {
	if featureName == "" {
		return FeatureEstimate{}, &ValidationError{Field: "feature_name", Message: "não pode ser vazio"}
	}
	if statistics.P80 <= 0 {
		return FeatureEstimate{}, &ValidationError{Field: "estimated_hours", Message: "deve ser positivo", Value: statistics.P80}
	}
	if statistics.StdDev < 0 || statistics.DataPointCount < 0 {
		return FeatureEstimate{}, &ValidationError{Field: "statistics", Message: "estatísticas inconsistentes"}
	}

	return FeatureEstimate{
		FeatureName:    featureName,
		EstimatedHours: statistics.P80,
		Confidence:     confidence,
		Statistics:     &statistics,
		UsedSeedTime:   false,
	}, nil
}

// NewSeedEstimate constrói uma estimativa de fallback baseada no seed da
// feature, usada quando o histórico é insuficiente.
func NewSeedEstimate(featureName string, seedTimeHours float64, confidence ConfidenceLevel) (FeatureEstimate, error) {
	if featureName == "" {
		return FeatureEstimate{}, &ValidationError{Field: "feature_name", Message: "não pode ser vazio"}
	}
	if seedTimeHours <= 0 {
		return FeatureEstimate{}, &ValidationError{Field: "estimated_hours", Message: "deve ser positivo", Value: seedTimeHours}
	}

	return FeatureEstimate{
		FeatureName:    featureName,
		EstimatedHours: seedTimeHours,
		Confidence:     confidence,
		Statistics:     nil,
		UsedSeedTime:   true,
	}, nil
}

// ProjectEstimate agrega estimativas por feature. TotalHours é a soma
// exata dos membros e Confidence é o mínimo entre eles — o projeto só é
// tão confiável quanto sua feature de pior amostra.
type ProjectEstimate struct {
	Features   []FeatureEstimate
	TotalHours float64
	Confidence ConfidenceLevel
}

// NewProjectEstimate agrega as estimativas na ordem recebida, falhando em
// lista vazia.
func NewProjectEstimate(features []FeatureEstimate) (ProjectEstimate, error) {
	if len(features) == 0 {
		return ProjectEstimate{}, &ValidationError{Field: "features", Message: "não pode ser vazio"}
	}

	members := make([]FeatureEstimate, len(features))
	copy(members, features)

	total := 0.0
	confidence := members[0].Confidence
	for _, f := range members {
		total += f.EstimatedHours
		confidence = MinConfidence(confidence, f.Confidence)
	}

	return ProjectEstimate{
		Features:   members,
		TotalHours: total,
		Confidence: confidence,
	}, nil
}
