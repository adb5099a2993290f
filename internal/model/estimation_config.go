package model

// Defaults da configuração de estimativa.
const (
	DefaultOutlierThresholdStd   = 2.0
	DefaultMinDataPointsForStats = 3
)

// EstimationConfig é a configuração imutável mantida pelo serviço de
// estimativa durante sua vida.
type EstimationConfig struct {
	UseOutlierDetection   bool
	OutlierThresholdStd   float64
	MinDataPointsForStats int
}

// DefaultEstimationConfig retorna a configuração padrão: detecção de
// outliers ligada, limiar de 2 desvios, mínimo de 3 pontos para
// estatística.
func DefaultEstimationConfig() EstimationConfig {
	return EstimationConfig{
		UseOutlierDetection:   true,
		OutlierThresholdStd:   DefaultOutlierThresholdStd,
		MinDataPointsForStats: DefaultMinDataPointsForStats,
	}
}

// NewEstimationConfig valida e constrói a configuração: limiar positivo,
// mínimo de pontos >= 1.
func NewEstimationConfig(useOutlierDetection bool, outlierThresholdStd float64, minDataPointsForStats int) (EstimationConfig, error) {
	if outlierThresholdStd <= 0 {
		return EstimationConfig{}, &ValidationError{Field: "outlier_threshold_std", Message: "deve ser positivo", Value: outlierThresholdStd}
	}
	if minDataPointsForStats < 1 {
		return EstimationConfig{}, &ValidationError{Field: "min_data_points_for_stats", Message: "deve ser no mínimo 1", Value: minDataPointsForStats}
	}

	return EstimationConfig{
		UseOutlierDetection:   useOutlierDetection,
		OutlierThresholdStd:   outlierThresholdStd,
		MinDataPointsForStats: minDataPointsForStats,
	}, nil
}
