package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travelcms/models"
)

func uncompressedRenderer(fontPath string) *ItineraryPDFRenderer {
	r := NewItineraryPDFRenderer(fontPath, nil)
	r.compress = false
	return r
}

func TestItineraryPDFFilename(t *testing.T) {
	if got := ItineraryPDFFilename("komodo"); got != "komodo_daily_itinerary.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestRenderWithoutItineraries(t *testing.T) {
	var buf bytes.Buffer
	pkg := &models.Package{Name: "Sipadan Classic", Subtitle: "Four days"}
	if err := uncompressedRenderer("").Render(&buf, pkg); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("expected a PDF header, got %q", out[:8])
	}
	if !strings.Contains(out, emptyItinerary) {
		t.Fatalf("expected the empty itinerary notice")
	}
	if !strings.Contains(out, "Daily Itinerary") {
		t.Fatalf("expected the itinerary heading")
	}
}

func TestRenderSkipsInactiveDays(t *testing.T) {
	var buf bytes.Buffer
	pkg := &models.Package{
		Name: "Lembeh Muck",
		DailyItineraries: []models.DailyItinerary{
			{DayNumber: 1, Title: "Arrival", Description: "Airport pickup", MealInfo: "Dinner", IsActive: true},
			{DayNumber: 2, Title: "Hidden day", IsActive: false},
			{DayNumber: 3, Title: "Night dive", Notes: "Torch required", IsActive: true},
		},
	}
	if err := uncompressedRenderer("").Render(&buf, pkg); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Day 1: Arrival", "Description: Airport pickup", "Meals: Dinner", "Day 3: Night dive", "Notes: Torch required"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in the document", want)
		}
	}
	if strings.Contains(out, "Hidden day") || strings.Contains(out, emptyItinerary) {
		t.Fatalf("inactive days must not be printed")
	}
}

func TestRenderFallsBackOnBrokenFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	pkg := &models.Package{Name: "Anilao"}
	if err := uncompressedRenderer(path).Render(&buf, pkg); err != nil {
		t.Fatalf("render must fall back to the core font: %v", err)
	}
	if !strings.Contains(buf.String(), "Helvetica") {
		t.Fatalf("expected the Helvetica fallback")
	}
}
