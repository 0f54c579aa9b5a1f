package services

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"travelcms/constants"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/services/logger"
)

// GeoChain is the resolved continent/country/city path of a public URL.
// Deeper levels are nil when the URL stops early.
type GeoChain struct {
	Continent *models.Continent `json:"continent"`
	Country   *models.Country   `json:"country,omitempty"`
	City      *models.City      `json:"city,omitempty"`
}

type GeographyService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *Cache
}

type GeographyServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *Cache
}

func NewGeographyService(opts GeographyServiceOptions) *GeographyService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &GeographyService{db: opts.DB, logger: opts.Logger, cache: opts.Cache}
}

// ActiveContinents lists active continents by name
func (s *GeographyService) ActiveContinents(ctx context.Context) ([]models.Continent, error) {
	var continents []models.Continent
	if s.cache.Get(ctx, constants.CacheKeyActiveContinents, &continents) {
		return continents, nil
	}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order(models.OrderByName).Find(&continents).Error; err != nil {
		return nil, dbError(err, "continent")
	}
	s.cache.Set(ctx, constants.CacheKeyActiveContinents, continents)
	return continents, nil
}

// Resolve walks continentSlug, then countrySlug and citySlug when non-empty.
// Every level must be active and belong to its parent.
func (s *GeographyService) Resolve(ctx context.Context, continentSlug, countrySlug, citySlug string) (*GeoChain, error) {
	db := s.db.WithContext(ctx)
	chain := &GeoChain{}

	var continent models.Continent
	if err := db.Where("slug = ? AND is_active = ?", continentSlug, true).First(&continent).Error; err != nil {
		return nil, notFoundOr(err, errors.ErrContinentNotFound, "Continent not found")
	}
	chain.Continent = &continent
	if countrySlug == "" {
		return chain, nil
	}

	var country models.Country
	if err := db.Where("slug = ? AND continent_id = ? AND is_active = ?", countrySlug, continent.ID, true).First(&country).Error; err != nil {
		return nil, notFoundOr(err, errors.ErrCountryNotFound, "Country not found")
	}
	country.Continent = &continent
	chain.Country = &country
	if citySlug == "" {
		return chain, nil
	}

	var city models.City
	if err := db.Where("slug = ? AND country_id = ? AND is_active = ?", citySlug, country.ID, true).First(&city).Error; err != nil {
		return nil, notFoundOr(err, errors.ErrCityNotFound, "City not found")
	}
	city.Country = &country
	chain.City = &city
	return chain, nil
}

func notFoundOr(err error, sentinel error, message string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewAppError(errors.ErrCodeNotFound, message, sentinel)
	}
	return dbError(err, "geography")
}
