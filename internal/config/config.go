package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cleberrangel/feature-estimator/internal/model"
	"github.com/joho/godotenv"
)

// Config armazena as configurações da aplicação
type Config struct {
	UseOutlierDetection   bool
	OutlierThresholdStd   float64
	MinDataPointsForStats int
	LogLevel              string
	LogJSON               bool
}

// Load carrega as configurações do ambiente
func Load() (*Config, error) {
	// Tenta carregar .env de múltiplos locais
	_ = godotenv.Load()          // ./.env
	_ = godotenv.Load("../.env") // raiz do projeto

	cfg := &Config{
		UseOutlierDetection:   true,
		OutlierThresholdStd:   model.DefaultOutlierThresholdStd,
		MinDataPointsForStats: model.DefaultMinDataPointsForStats,
		LogLevel:              "info",
		LogJSON:               false,
	}

	if v := os.Getenv("USE_OUTLIER_DETECTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("USE_OUTLIER_DETECTION inválido: %w", err)
		}
		cfg.UseOutlierDetection = b
	}

	if v := os.Getenv("OUTLIER_THRESHOLD_STD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("OUTLIER_THRESHOLD_STD inválido: %w", err)
		}
		cfg.OutlierThresholdStd = f
	}

	if v := os.Getenv("MIN_DATA_POINTS_FOR_STATS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MIN_DATA_POINTS_FOR_STATS inválido: %w", err)
		}
		cfg.MinDataPointsForStats = n
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_JSON inválido: %w", err)
		}
		cfg.LogJSON = b
	}

	// A validação dos valores fica com o construtor do domínio.
	if _, err := cfg.EstimationConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EstimationConfig converte para a configuração imutável do engine.
func (c *Config) EstimationConfig() (model.EstimationConfig, error) {
	return model.NewEstimationConfig(c.UseOutlierDetection, c.OutlierThresholdStd, c.MinDataPointsForStats)
}
