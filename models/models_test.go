package models

import (
	"strings"
	"testing"
)

func TestPackageAbsoluteURL(t *testing.T) {
	continent := &Continent{Slug: "asia"}
	country := &Country{Slug: "indonesia", Continent: continent}
	city := &City{Slug: "bali", Country: country}
	p := &Package{Slug: "tulamben-dive", City: city}

	if got := p.AbsoluteURL(); got != PublicPackagesPath+"/asia/indonesia/bali/tulamben-dive" {
		t.Fatalf("unexpected url %q", got)
	}

	country.Continent = nil
	if got := p.AbsoluteURL(); got != PublicPackagesPath {
		t.Fatalf("expected list url without continent, got %q", got)
	}

	p.City = nil
	if got := p.AbsoluteURL(); got != PublicPackagesPath {
		t.Fatalf("expected list url without city, got %q", got)
	}
}

func TestPackageBeforeCreateSlug(t *testing.T) {
	p := &Package{Name: "Komodo Liveaboard"}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Slug != "komodo-liveaboard" {
		t.Fatalf("unexpected slug %q", p.Slug)
	}

	kept := &Package{Name: "Whatever", Slug: "custom"}
	_ = kept.BeforeCreate(nil)
	if kept.Slug != "custom" {
		t.Fatalf("explicit slug must be kept, got %q", kept.Slug)
	}

	blank := &Package{Name: "!!!"}
	_ = blank.BeforeCreate(nil)
	if !strings.HasPrefix(blank.Slug, "package-tmp-") {
		t.Fatalf("expected placeholder slug, got %q", blank.Slug)
	}
}

func TestGeographySlugFromEnglishName(t *testing.T) {
	c := &Continent{Name: "亞洲", NameEn: "Asia"}
	_ = c.BeforeSave(nil)
	if c.Slug != "asia" {
		t.Fatalf("unexpected continent slug %q", c.Slug)
	}

	country := &Country{Name: "印尼"}
	_ = country.BeforeSave(nil)
	if country.Slug != "" {
		t.Fatalf("slug must stay empty without name_en, got %q", country.Slug)
	}

	city := &City{Name: "峇里島", NameEn: "Bali Island", Slug: "bali"}
	_ = city.BeforeSave(nil)
	if city.Slug != "bali" {
		t.Fatalf("existing slug must be kept, got %q", city.Slug)
	}
}

func TestFallbackPackageSlug(t *testing.T) {
	if got := FallbackPackageSlug(17); got != "package-17" {
		t.Fatalf("got %q", got)
	}
}

func TestSettingsDefaultTitle(t *testing.T) {
	s := &HomepageSettings{}
	_ = s.BeforeCreate(nil)
	if s.Title != "Homepage settings" {
		t.Fatalf("unexpected title %q", s.Title)
	}
}

func TestTagDefaultColor(t *testing.T) {
	tag := &PackageTag{Name: "Macro"}
	_ = tag.BeforeCreate(nil)
	if tag.Color != "#007bff" {
		t.Fatalf("unexpected color %q", tag.Color)
	}
}
