package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/cleberrangel/feature-estimator/internal/model"
)

func TestCatalogLookupNormalizesNames(t *testing.T) {
	catalog := NewFeatureCatalog()

	created, err := catalog.CreateFeature("Login OAuth", model.TeamBackend, "auth", 8.0, []string{"social-login"}, "")
	if err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateFeature deve gerar um ID")
	}

	lookups := []string{
		"Login OAuth",
		"login oauth",
		"login-oauth",
		"LOGIN_OAUTH",
		"  login   oauth ",
		"social-login", // sinônimo
		"Social Login",
	}
	for _, name := range lookups {
		got, ok := catalog.GetFeatureByName(name)
		if !ok {
			t.Errorf("GetFeatureByName(%q): feature não encontrada", name)
			continue
		}
		if got.ID != created.ID {
			t.Errorf("GetFeatureByName(%q) resolveu outra feature", name)
		}
	}

	if _, ok := catalog.GetFeatureByName("Checkout"); ok {
		t.Error("lookup de nome inexistente deve reportar ausência")
	}
}

func TestCatalogRejectsCollisions(t *testing.T) {
	catalog := NewFeatureCatalog()

	if _, err := catalog.CreateFeature("Login OAuth", model.TeamBackend, "auth", 8.0, nil, ""); err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}

	// Mesmo nome sob outra grafia normalizada.
	_, err := catalog.CreateFeature("login-oauth", model.TeamBackend, "auth", 4.0, nil, "")
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("colisão de nome deve falhar com ValidationError, obtido %v", err)
	}

	// Sinônimo colidindo com nome existente.
	_, err = catalog.CreateFeature("Social Login", model.TeamFrontend, "auth", 4.0, []string{"Login_OAuth"}, "")
	if !errors.As(err, &ve) {
		t.Fatalf("colisão de sinônimo deve falhar com ValidationError, obtido %v", err)
	}
}

func TestCatalogGetByID(t *testing.T) {
	catalog := NewFeatureCatalog()
	created, _ := catalog.CreateFeature("Login OAuth", model.TeamBackend, "auth", 8.0, nil, "")

	got, err := catalog.GetFeatureByID(created.ID)
	if err != nil || got.Name != "Login OAuth" {
		t.Fatalf("GetFeatureByID = (%v, %v)", got, err)
	}

	_, err = catalog.GetFeatureByID("inexistente")
	var nf *model.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("ID inexistente deve falhar com NotFoundError, obtido %v", err)
	}
}

func TestTimeLogFiltersByNormalizedFeature(t *testing.T) {
	log := NewTimeLog()
	date := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	if _, err := log.LogTime(model.TeamBackend, "ana", "Login OAuth", 4.5, "auth", date); err != nil {
		t.Fatalf("LogTime: %v", err)
	}
	if _, err := log.LogTime(model.TeamBackend, "bruno", "login-oauth", 3.8, "auth", date); err != nil {
		t.Fatalf("LogTime: %v", err)
	}
	if _, err := log.LogTime(model.TeamFrontend, "carla", "Checkout", 6.0, "pagamentos", date); err != nil {
		t.Fatalf("LogTime: %v", err)
	}

	entries := log.GetEntriesForFeature("LOGIN_OAUTH")
	if len(entries) != 2 {
		t.Fatalf("esperados 2 lançamentos, obtidos %d", len(entries))
	}
	// Ordem de inserção preservada.
	if entries[0].MemberName != "ana" || entries[1].MemberName != "bruno" {
		t.Errorf("ordem inesperada: %q, %q", entries[0].MemberName, entries[1].MemberName)
	}

	if log.EntryCount() != 3 {
		t.Errorf("EntryCount = %d, esperado 3", log.EntryCount())
	}
}

func TestTimeLogReturnsEmptySequenceNeverAbsent(t *testing.T) {
	log := NewTimeLog()

	entries := log.GetEntriesForFeature("qualquer")
	if entries == nil {
		t.Fatal("GetEntriesForFeature deve retornar sequência vazia, nunca nil")
	}
	if len(entries) != 0 {
		t.Fatalf("esperada sequência vazia, obtidos %d lançamentos", len(entries))
	}
}

func TestTimeLogRejectsInvalidEntry(t *testing.T) {
	log := NewTimeLog()

	_, err := log.LogTime(model.TeamBackend, "ana", "Login OAuth", 0, "auth", time.Now())
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("horas zero devem falhar com ValidationError, obtido %v", err)
	}
	if log.EntryCount() != 0 {
		t.Error("lançamento inválido não pode ser registrado")
	}
}
