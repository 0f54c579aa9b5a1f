package services

import (
	"strings"
	"testing"

	"travelcms/constants"
	"travelcms/models"
)

func TestPackageCacheKey(t *testing.T) {
	list := &GeoChain{Continent: &models.Continent{Slug: "list"}}
	if packageCacheKey(nil) == packageCacheKey(list) {
		t.Fatalf("all-packages key collides with continent %q", "list")
	}

	chain := &GeoChain{
		Continent: &models.Continent{Slug: "asia"},
		Country:   &models.Country{Slug: "japan"},
		City:      &models.City{Slug: "tokyo"},
	}
	if got, want := packageCacheKey(chain), constants.CacheKeyPrefixPackageGeo+"asia/japan/tokyo"; got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
	if strings.HasPrefix(packageCacheKey(nil), constants.CacheKeyPrefixPackageGeo) {
		t.Errorf("all-packages key inside geo namespace")
	}
	if !strings.HasPrefix(packageCacheKey(chain), constants.CacheKeyPrefixPackages) {
		t.Errorf("geo key outside catalog invalidation prefix")
	}
}
