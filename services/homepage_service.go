package services

import (
	"context"
	stderrors "errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"travelcms/constants"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/services/logger"
)

// HomepageView is everything the landing page renders
type HomepageView struct {
	FeaturedPackages          []models.Package   `json:"featuredPackages"`
	SecondaryFeaturedPackages []models.Package   `json:"secondaryFeaturedPackages"`
	Continents                []models.Continent `json:"continents"`
	HeroSlides                []models.HeroSlide `json:"heroSlides"`
	HeroImage                 string             `json:"heroImage,omitempty"`
}

// FeaturedSource supplies the homepage package sections
type FeaturedSource interface {
	Featured(ctx context.Context, limit int) ([]models.Package, error)
	SecondaryFeatured(ctx context.Context, limit int) ([]models.Package, error)
}

// ContinentSource supplies the active continents
type ContinentSource interface {
	ActiveContinents(ctx context.Context) ([]models.Continent, error)
}

// SlideSource supplies the hero carousel and the legacy hero image
type SlideSource interface {
	ActiveSlides(ctx context.Context) ([]models.HeroSlide, string, error)
}

type HomepageService struct {
	db         *gorm.DB
	logger     logger.Logger
	cache      *Cache
	packages   FeaturedSource
	continents ContinentSource
	slides     SlideSource
	settings   *Repository[models.HomepageSettings]
}

type HomepageServiceOptions struct {
	DB         *gorm.DB
	Logger     logger.Logger
	Cache      *Cache
	Packages   FeaturedSource
	Continents ContinentSource
	// Slides defaults to the service's own database lookup
	Slides SlideSource
}

func NewHomepageService(opts HomepageServiceOptions) *HomepageService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &HomepageService{
		db:         opts.DB,
		logger:     opts.Logger,
		cache:      opts.Cache,
		packages:   opts.Packages,
		continents: opts.Continents,
		settings: NewRepository[models.HomepageSettings](opts.DB, RepositoryOptions{
			Entity:        "homepage settings",
			Order:         "id ASC",
			SearchColumns: []string{"title"},
			Preloads:      []string{"Slides"},
		}),
	}
	s.slides = opts.Slides
	if s.slides == nil {
		s.slides = s
	}
	return s
}

// View assembles the homepage, loading the four sections concurrently
func (s *HomepageService) View(ctx context.Context) (*HomepageView, error) {
	var cached HomepageView
	if s.cache.Get(ctx, constants.CacheKeyHomepage, &cached) {
		return &cached, nil
	}
	view, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, constants.CacheKeyHomepage, view)
	return view, nil
}

// Refresh rebuilds and re-caches the homepage
func (s *HomepageService) Refresh(ctx context.Context) (*HomepageView, error) {
	s.cache.Delete(ctx, constants.CacheKeyHomepage)
	return s.View(ctx)
}

func (s *HomepageService) build(ctx context.Context) (*HomepageView, error) {
	view := &HomepageView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pkgs, err := s.packages.Featured(gctx, constants.FeaturedPackagesLimit)
		view.FeaturedPackages = pkgs
		return err
	})
	g.Go(func() error {
		pkgs, err := s.packages.SecondaryFeatured(gctx, constants.SecondaryPackagesLimit)
		view.SecondaryFeaturedPackages = pkgs
		return err
	})
	g.Go(func() error {
		continents, err := s.continents.ActiveContinents(gctx)
		view.Continents = continents
		return err
	})
	g.Go(func() error {
		slides, heroImage, err := s.slides.ActiveSlides(gctx)
		view.HeroSlides = slides
		view.HeroImage = heroImage
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("build homepage: %v", err)
		return nil, err
	}
	return view, nil
}

// ActiveSlides returns the active slides with an image of the first active settings row
func (s *HomepageService) ActiveSlides(ctx context.Context) ([]models.HeroSlide, string, error) {
	var settings models.HomepageSettings
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").First(&settings).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return []models.HeroSlide{}, "", nil
	}
	if err != nil {
		return nil, "", dbError(err, "homepage settings")
	}
	slides := []models.HeroSlide{}
	err = s.db.WithContext(ctx).
		Where("settings_id = ? AND is_active = ? AND image <> ''", settings.ID, true).
		Order(models.OrderHeroSlides).
		Find(&slides).Error
	if err != nil {
		return nil, "", dbError(err, "hero slide")
	}
	return slides, settings.HeroImage, nil
}

// Settings exposes the settings repository for the admin editor
func (s *HomepageService) Settings() *Repository[models.HomepageSettings] {
	return s.settings
}

// CreateSettings inserts the settings row. A second row is refused.
func (s *HomepageService) CreateSettings(ctx context.Context, settings *models.HomepageSettings) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.HomepageSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.NewAppError(errors.ErrCodeSingleton, "Homepage settings already exist, edit the existing row instead", errors.ErrSettingsExist)
		}
		return tx.Create(settings).Error
	})
	if err != nil {
		return dbError(err, "homepage settings")
	}
	s.InvalidateView(ctx)
	return nil
}

// InvalidateView drops the cached homepage
func (s *HomepageService) InvalidateView(ctx context.Context) {
	s.cache.Delete(ctx, constants.CacheKeyHomepage)
}
