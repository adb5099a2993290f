package main

import (
	"context"
	stdlog "log"
	"os"
	"time"

	"github.com/cleberrangel/feature-estimator/internal/config"
	"github.com/cleberrangel/feature-estimator/internal/logger"
	"github.com/cleberrangel/feature-estimator/internal/model"
	"github.com/cleberrangel/feature-estimator/internal/repository"
	"github.com/cleberrangel/feature-estimator/internal/service"
)

const Version = "0.3.0"

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Inicializa logger estruturado
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Global()
	log.Info().
		Str("version", Version).
		Bool("outlier_detection", cfg.UseOutlierDetection).
		Int("min_data_points", cfg.MinDataPointsForStats).
		Msg("Feature Estimator iniciando")

	estimationCfg, err := cfg.EstimationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração de estimativa inválida")
	}

	// Monta os stores com os dados de exemplo
	catalog := repository.NewFeatureCatalog()
	timeLog := repository.NewTimeLog()
	if err := seedSampleData(catalog, timeLog); err != nil {
		log.Fatal().Err(err).Msg("Erro ao montar dados de exemplo")
	}

	svc := service.NewEstimationService(catalog, timeLog, estimationCfg)
	ctx := logger.WithOperationID(context.Background(), "demo")

	r := svc.EstimateProject(ctx, []string{"Login OAuth", "Checkout", "Exportação CSV"})
	if r.IsErr() {
		log.Fatal().Err(r.UnwrapErr()).Msg("Estimativa de projeto falhou")
	}
	project := r.Unwrap()

	for _, f := range project.Features {
		log.Info().
			Str("feature", f.FeatureName).
			Float64("hours", f.EstimatedHours).
			Str("confidence", string(f.Confidence)).
			Bool("used_seed_time", f.UsedSeedTime).
			Msg("estimativa")
	}
	log.Info().
		Float64("total_hours", project.TotalHours).
		Str("confidence", string(project.Confidence)).
		Msg("estimativa do projeto")

	// Grava o relatório xlsx no diretório corrente
	buf, err := service.NewExcelGenerator().Generate(project)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao gerar relatório")
	}
	const reportPath = "estimativa.xlsx"
	if err := os.WriteFile(reportPath, buf.Bytes(), 0o644); err != nil {
		log.Fatal().Err(err).Msg("Erro ao gravar relatório")
	}
	log.Info().Str("path", reportPath).Msg("Relatório gerado")
}

// seedSampleData cadastra as features e o histórico usados pela demo.
func seedSampleData(catalog *repository.FeatureCatalog, timeLog *repository.TimeLog) error {
	type featureSpec struct {
		name     string
		team     model.TeamType
		process  string
		seed     float64
		synonyms []string
	}
	features := []featureSpec{
		{"Login OAuth", model.TeamBackend, "auth", 8.0, []string{"social-login"}},
		{"Checkout", model.TeamBackend, "pagamentos", 16.0, nil},
		{"Exportação CSV", model.TeamFrontend, "relatórios", 6.0, []string{"export-csv"}},
	}
	for _, f := range features {
		if _, err := catalog.CreateFeature(f.name, f.team, f.process, f.seed, f.synonyms, ""); err != nil {
			return err
		}
	}

	type entrySpec struct {
		feature string
		member  string
		hours   float64
	}
	entries := []entrySpec{
		{"Login OAuth", "ana", 4.5},
		{"login-oauth", "bruno", 3.8},
		{"Login OAuth", "carla", 4.2},
		{"Login OAuth", "ana", 6.5},
		{"Login OAuth", "bruno", 7.0},
		{"Checkout", "carla", 12.0},
		{"Checkout", "ana", 14.5},
	}
	date := time.Now().AddDate(0, -1, 0)
	for i, e := range entries {
		if _, err := timeLog.LogTime(model.TeamBackend, e.member, e.feature, e.hours, "desenvolvimento", date.AddDate(0, 0, i)); err != nil {
			return err
		}
	}
	return nil
}
