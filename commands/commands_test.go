package commands

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"travelcms/models"
	"travelcms/services/logger"
)

func TestAssignSlugsScopesAndFallback(t *testing.T) {
	rows := []slugRow{
		{ID: 1, Scope: 10, Slug: "blue-lagoon"},
		{ID: 2, Scope: 10, Source: "Blue Lagoon"},
		{ID: 3, Scope: 10, Source: "Blue Lagoon"},
		{ID: 4, Scope: 20, Source: "Blue Lagoon"},
		{ID: 5, Scope: 20, Source: "潛水"},
		{ID: 6, Scope: 20, Source: "!!!"},
	}
	updated, manual := assignSlugs(rows, models.FallbackPackageSlug)
	got := map[uint]string{}
	for _, r := range updated {
		got[r.ID] = r.Slug
	}
	want := map[uint]string{
		2: "blue-lagoon-1",
		3: "blue-lagoon-2",
		4: "blue-lagoon",
		5: "qian-shui",
		6: "package-6",
	}
	for id, slug := range want {
		if got[id] != slug {
			t.Errorf("row %d: got %q, want %q", id, got[id], slug)
		}
	}
	if len(manual) != 0 {
		t.Fatalf("unexpected manual rows %v", manual)
	}
}

func TestAssignSlugsWithoutFallbackNeedsManual(t *testing.T) {
	updated, manual := assignSlugs([]slugRow{{ID: 1, Source: ""}, {ID: 2, Slug: "kept"}}, nil)
	if len(updated) != 0 || len(manual) != 1 || manual[0].ID != 1 {
		t.Fatalf("got updated=%v manual=%v", updated, manual)
	}
}

func TestLoadContinentMappingDefault(t *testing.T) {
	mapping, err := LoadContinentMapping("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mapping) != 6 || mapping[0].Continent != "asia" {
		t.Fatalf("unexpected default mapping %+v", mapping)
	}
	for _, group := range mapping {
		if len(group.Countries) == 0 {
			t.Fatalf("continent %s has no countries", group.Continent)
		}
	}
}

func TestLoadContinentMappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte("- continent: oceania\n  countries: [Fiji]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	mapping, err := LoadContinentMapping(path)
	if err != nil || len(mapping) != 1 || mapping[0].Countries[0] != "Fiji" {
		t.Fatalf("got %+v, %v", mapping, err)
	}
	if _, err := LoadContinentMapping(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPlanAssignments(t *testing.T) {
	mapping := []ContinentMapping{
		{Continent: "asia", Countries: []string{"日本", "Japan", "Vietnam"}},
		{Continent: "atlantis", Countries: []string{"Nowhere"}},
		{Continent: "oceania", Countries: []string{"Fiji", "Palau"}},
	}
	continents := map[string]uint{"asia": 1, "oceania": 6}
	countries := []models.Country{
		{ID: 100, Name: "日本", NameEn: "Japan"},
		{ID: 101, Name: "越南", NameEn: "Viet Nam"},
		{ID: 102, Name: "斐濟", NameEn: "Fiji"},
	}

	plan := PlanAssignments(mapping, continents, countries)

	if plan.Assign[100] != 1 || plan.Assign[101] != 1 || plan.Assign[102] != 6 {
		t.Fatalf("unexpected assignments %v", plan.Assign)
	}
	if _, ok := plan.Fuzzy["Vietnam"]; !ok {
		t.Fatalf("Vietnam should be a fuzzy match, got %v", plan.Fuzzy)
	}
	if len(plan.NotFound) != 1 || plan.NotFound[0] != "Palau" {
		t.Fatalf("unexpected not found %v", plan.NotFound)
	}
	if len(plan.MissingContinents) != 1 || plan.MissingContinents[0] != "atlantis" {
		t.Fatalf("unexpected missing continents %v", plan.MissingContinents)
	}
}

type fakeCommand struct {
	name string
	err  error
	ran  *[]string
}

func (f fakeCommand) Name() string { return f.name }

func (f fakeCommand) Execute(context.Context) error {
	*f.ran = append(*f.ran, f.name)
	return f.err
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := stderrors.New("boom")
	err := Run(context.Background(), logger.Nop(),
		fakeCommand{name: "a", ran: &ran},
		fakeCommand{name: "b", err: boom, ran: &ran},
		fakeCommand{name: "c", ran: &ran},
	)
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected two commands to run, got %v", ran)
	}
}

func TestDefaultContinents(t *testing.T) {
	if len(DefaultContinents) != 7 {
		t.Fatalf("expected seven continents, got %d", len(DefaultContinents))
	}
	for _, c := range DefaultContinents {
		if c.Slug == "antarctica" && c.IsActive {
			t.Fatal("antarctica must be seeded inactive")
		}
	}
}
