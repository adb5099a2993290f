package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewFeatureValidation(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		fname string
		team  TeamType
		seed  float64
		field string
	}{
		{"id vazio", "", "Login", TeamBackend, 8, "id"},
		{"nome vazio", "f-1", "  ", TeamBackend, 8, "name"},
		{"time inválido", "f-1", "Login", TeamType("PLATFORM"), 8, "team"},
		{"seed zero", "f-1", "Login", TeamBackend, 0, "seed_time_hours"},
		{"seed negativo", "f-1", "Login", TeamBackend, -2, "seed_time_hours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFeature(tc.id, tc.fname, tc.team, "auth", tc.seed, nil, "")

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("esperado ValidationError, obtido %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("campo = %q, esperado %q", ve.Field, tc.field)
			}
		})
	}
}

func TestNewFeatureCopiesSynonyms(t *testing.T) {
	synonyms := []string{"oauth-login"}
	f, err := NewFeature("f-1", "Login OAuth", TeamBackend, "auth", 8.0, synonyms, "")
	if err != nil {
		t.Fatalf("NewFeature: %v", err)
	}

	synonyms[0] = "mutado"
	if f.Synonyms[0] != "oauth-login" {
		t.Error("a Feature não pode observar mutações no slice do chamador")
	}
}

func TestNewTrackedTimeEntryValidation(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if _, err := NewTrackedTimeEntry("e-1", TeamBackend, "ana", "Login OAuth", 4.5, "auth", date); err != nil {
		t.Fatalf("lançamento válido rejeitado: %v", err)
	}

	cases := []struct {
		name   string
		id     string
		member string
		feat   string
		hours  float64
		proc   string
		field  string
	}{
		{"id vazio", "", "ana", "Login", 4, "auth", "id"},
		{"membro vazio", "e-1", "", "Login", 4, "auth", "member_name"},
		{"feature vazia", "e-1", "ana", "", 4, "auth", "feature"},
		{"horas zero", "e-1", "ana", "Login", 0, "auth", "tracked_time_hours"},
		{"horas negativas", "e-1", "ana", "Login", -1, "auth", "tracked_time_hours"},
		{"processo vazio", "e-1", "ana", "Login", 4, " ", "process"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTrackedTimeEntry(tc.id, TeamBackend, tc.member, tc.feat, tc.hours, tc.proc, date)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("esperado ValidationError, obtido %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("campo = %q, esperado %q", ve.Field, tc.field)
			}
		})
	}
}

func TestEstimateConstructorsAreMutuallyExclusive(t *testing.T) {
	st := FeatureStatistics{Mean: 5.2, Median: 4.5, StdDev: 1.29, P80: 6.6, DataPointCount: 5}

	statistical, err := NewStatisticalEstimate("Login OAuth", st, ConfidenceMedium)
	if err != nil {
		t.Fatalf("NewStatisticalEstimate: %v", err)
	}
	if statistical.UsedSeedTime || statistical.Statistics == nil {
		t.Error("estimativa estatística: Statistics presente e UsedSeedTime falso")
	}
	if statistical.EstimatedHours != st.P80 {
		t.Errorf("EstimatedHours = %v, esperado P80 %v", statistical.EstimatedHours, st.P80)
	}

	seed, err := NewSeedEstimate("Login OAuth", 8.0, ConfidenceLow)
	if err != nil {
		t.Fatalf("NewSeedEstimate: %v", err)
	}
	if !seed.UsedSeedTime || seed.Statistics != nil {
		t.Error("estimativa seed: UsedSeedTime verdadeiro e Statistics ausente")
	}
	if seed.EstimatedHours != 8.0 {
		t.Errorf("EstimatedHours = %v, esperado 8.0", seed.EstimatedHours)
	}
}

func TestNewProjectEstimate(t *testing.T) {
	high, _ := NewSeedEstimate("A", 10.0, ConfidenceHigh)
	low, _ := NewSeedEstimate("B", 2.5, ConfidenceLow)
	medium, _ := NewSeedEstimate("C", 4.0, ConfidenceMedium)

	project, err := NewProjectEstimate([]FeatureEstimate{high, low, medium})
	if err != nil {
		t.Fatalf("NewProjectEstimate: %v", err)
	}

	if project.TotalHours != 16.5 {
		t.Errorf("TotalHours = %v, esperado 16.5", project.TotalHours)
	}
	if project.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %v, esperado LOW (mínimo entre os membros)", project.Confidence)
	}
	if len(project.Features) != 3 || project.Features[0].FeatureName != "A" {
		t.Error("a ordem das estimativas deve ser preservada")
	}
}

func TestNewProjectEstimateRejectsEmptyList(t *testing.T) {
	_, err := NewProjectEstimate(nil)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("esperado ValidationError, obtido %v", err)
	}
}

func TestConfidenceForDataPoints(t *testing.T) {
	cases := []struct {
		n    int
		want ConfidenceLevel
	}{
		{0, ConfidenceLow},
		{1, ConfidenceLow},
		{2, ConfidenceLow},
		{3, ConfidenceMedium},
		{9, ConfidenceMedium},
		{10, ConfidenceHigh},
		{50, ConfidenceHigh},
	}

	for _, tc := range cases {
		if got := ConfidenceForDataPoints(tc.n); got != tc.want {
			t.Errorf("ConfidenceForDataPoints(%d) = %v, esperado %v", tc.n, got, tc.want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseTeamType("BACKEND"); err != nil {
		t.Errorf("ParseTeamType(BACKEND): %v", err)
	}
	if _, err := ParseTeamType("backend"); err == nil {
		t.Error("ParseTeamType deve falhar em valor fora do enum (case-sensitive)")
	}
	if _, err := ParseConfidenceLevel("MEDIUM"); err != nil {
		t.Errorf("ParseConfidenceLevel(MEDIUM): %v", err)
	}
	if _, err := ParseConfidenceLevel("UNKNOWN"); err == nil {
		t.Error("ParseConfidenceLevel deve falhar em valor desconhecido")
	}
}

func TestNewEstimationConfigValidation(t *testing.T) {
	if _, err := NewEstimationConfig(true, 0, 3); err == nil {
		t.Error("limiar de outlier zero deve ser rejeitado")
	}
	if _, err := NewEstimationConfig(true, 2.0, 0); err == nil {
		t.Error("mínimo de pontos zero deve ser rejeitado")
	}

	cfg := DefaultEstimationConfig()
	if cfg.OutlierThresholdStd != 2.0 || cfg.MinDataPointsForStats != 3 {
		t.Errorf("defaults inesperados: %+v", cfg)
	}
}
