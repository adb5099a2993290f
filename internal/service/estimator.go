// Package service contém o engine de estimativa e a exportação de
// relatórios. O serviço é stateless além da configuração imutável e das
// referências aos dois stores colaboradores, recebidos por injeção
// explícita — cada chamada é um ciclo independente de ler-computar-retornar.
package service

import (
	"context"

	"github.com/cleberrangel/feature-estimator/internal/logger"
	"github.com/cleberrangel/feature-estimator/internal/model"
	"github.com/cleberrangel/feature-estimator/internal/result"
	"github.com/cleberrangel/feature-estimator/internal/stats"
)

// FeatureSource é a view de leitura do catálogo consumida pelo engine.
type FeatureSource interface {
	GetFeatureByName(name string) (model.Feature, bool)
}

// EntrySource é a view de leitura do log de horas consumida pelo engine.
type EntrySource interface {
	GetEntriesForFeature(featureName string) []model.TrackedTimeEntry
}

// FeatureResult é o retorno de EstimateFeature.
type FeatureResult = result.Result[model.FeatureEstimate, *model.EstimationError]

// ProjectResult é o retorno de EstimateProject.
type ProjectResult = result.Result[model.ProjectEstimate, *model.EstimationError]

// EstimationService converte histórico de horas em estimativas pontuais
// com tier de confiança. Leitura pura contra os dois stores: nenhuma
// chamada muta estado.
type EstimationService struct {
	catalog FeatureSource
	timeLog EntrySource
	cfg     model.EstimationConfig
}

// NewEstimationService cria o serviço com seus colaboradores e a
// configuração que valerá por toda a vida da instância.
func NewEstimationService(catalog FeatureSource, timeLog EntrySource, cfg model.EstimationConfig) *EstimationService {
	return &EstimationService{
		catalog: catalog,
		timeLog: timeLog,
		cfg:     cfg,
	}
}

// EstimateFeature estima uma única feature resolvida por nome (ou
// sinônimo) normalizado. Com amostra suficiente
// (N >= MinDataPointsForStats) as horas estimadas são o P80 do histórico;
// caso contrário a estimativa cai no seed da feature. O tier de confiança
// é função apenas de N.
func (s *EstimationService) EstimateFeature(ctx context.Context, featureName string) FeatureResult {
	log := logger.Get(ctx)

	feature, found := s.catalog.GetFeatureByName(featureName)
	if !found {
		log.Debug().Str("feature", featureName).Msg("feature não encontrada na biblioteca")
		return result.Err[model.FeatureEstimate](model.NewEstimationError(featureName, model.ReasonNotFound))
	}

	entries := s.timeLog.GetEntriesForFeature(feature.Name)
	n := len(entries)
	confidence := model.ConfidenceForDataPoints(n)

	var (
		estimate model.FeatureEstimate
		err      error
	)
	if n >= s.cfg.MinDataPointsForStats {
		statistics, statsErr := s.ComputeStatistics(entries)
		if statsErr != nil {
			return result.Err[model.FeatureEstimate](&model.EstimationError{
				FeatureName: feature.Name,
				Reason:      "falha ao computar estatísticas",
				Details:     statsErr.Error(),
			})
		}

		if s.cfg.UseOutlierDetection {
			s.logOutliers(ctx, feature.Name, entries)
		}

		estimate, err = model.NewStatisticalEstimate(feature.Name, statistics, confidence)
	} else {
		estimate, err = model.NewSeedEstimate(feature.Name, feature.SeedTimeHours, confidence)
	}
	if err != nil {
		return result.Err[model.FeatureEstimate](&model.EstimationError{
			FeatureName: feature.Name,
			Reason:      "estimativa inválida",
			Details:     err.Error(),
		})
	}

	log.Debug().
		Str("feature", feature.Name).
		Int("data_points", n).
		Str("confidence", string(estimate.Confidence)).
		Bool("used_seed_time", estimate.UsedSeedTime).
		Float64("estimated_hours", estimate.EstimatedHours).
		Msg("feature estimada")

	return result.Ok[model.FeatureEstimate, *model.EstimationError](estimate)
}

// EstimateProject estima cada feature na ordem recebida e agrega no
// ProjectEstimate: soma exata das horas e confiança mínima entre os
// membros. Tudo-ou-nada: a primeira falha propaga inalterada, sem avaliar
// os nomes restantes.
func (s *EstimationService) EstimateProject(ctx context.Context, featureNames []string) ProjectResult {
	if len(featureNames) == 0 {
		return result.Err[model.ProjectEstimate](model.NewEstimationError("", model.ReasonNoFeaturesProvided))
	}

	estimates := make([]model.FeatureEstimate, 0, len(featureNames))
	for _, name := range featureNames {
		r := s.EstimateFeature(ctx, name)
		if r.IsErr() {
			return result.Err[model.ProjectEstimate](r.UnwrapErr())
		}
		estimates = append(estimates, r.Unwrap())
	}

	project, err := model.NewProjectEstimate(estimates)
	if err != nil {
		return result.Err[model.ProjectEstimate](&model.EstimationError{
			Reason:  "agregação inválida",
			Details: err.Error(),
		})
	}

	logger.Get(ctx).Info().
		Int("features", len(project.Features)).
		Float64("total_hours", project.TotalHours).
		Str("confidence", string(project.Confidence)).
		Msg("projeto estimado")

	return result.Ok[model.ProjectEstimate, *model.EstimationError](project)
}

// ComputeStatistics computa as estatísticas da amostra de horas dos
// lançamentos. Falha em lista vazia — o chamador deve aplicar o threshold
// de pontos antes.
func (s *EstimationService) ComputeStatistics(entries []model.TrackedTimeEntry) (model.FeatureStatistics, error) {
	hours := entryHours(entries)

	mean, err := stats.Mean(hours)
	if err != nil {
		return model.FeatureStatistics{}, err
	}
	median, err := stats.Median(hours)
	if err != nil {
		return model.FeatureStatistics{}, err
	}
	stdDev, err := stats.StdDev(hours)
	if err != nil {
		return model.FeatureStatistics{}, err
	}
	p80, err := stats.P80(hours)
	if err != nil {
		return model.FeatureStatistics{}, err
	}

	return model.FeatureStatistics{
		Mean:           mean,
		Median:         median,
		StdDev:         stdDev,
		P80:            p80,
		DataPointCount: len(hours),
	}, nil
}

// logOutliers sinaliza lançamentos anômalos da amostra. Só observabilidade:
// a estimativa em si não é alterada.
func (s *EstimationService) logOutliers(ctx context.Context, featureName string, entries []model.TrackedTimeEntry) {
	outliers := stats.DetectOutliers(entryHours(entries), s.cfg.OutlierThresholdStd)
	for _, o := range outliers {
		logger.Get(ctx).Warn().
			Str("feature", featureName).
			Str("entry_id", entries[o.Index].ID).
			Float64("hours", o.Value).
			Float64("threshold_std", s.cfg.OutlierThresholdStd).
			Msg("lançamento fora do limiar de desvio")
	}
}

func entryHours(entries []model.TrackedTimeEntry) []float64 {
	hours := make([]float64, len(entries))
	for i, e := range entries {
		hours[i] = e.TrackedTimeHours
	}
	return hours
}
