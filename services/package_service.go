package services

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelcms/constants"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/services/logger"
	"travelcms/validator"
)

// PackageFilter narrows the admin package list
type PackageFilter struct {
	ListQuery
	ContinentID         *uint
	CountryID           *uint
	CityID              *uint
	PackageTypeID       *uint
	IsFeatured          *bool
	IsSecondaryFeatured *bool
}

type PackageService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *Cache
	repo   *Repository[models.Package]
}

type PackageServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *Cache
}

func NewPackageService(opts PackageServiceOptions) *PackageService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &PackageService{
		db:     opts.DB,
		logger: opts.Logger,
		cache:  opts.Cache,
		repo: NewRepository[models.Package](opts.DB, RepositoryOptions{
			Entity:        "package",
			Order:         models.OrderPackages,
			SearchColumns: []string{"name", "slug", "subtitle"},
		}),
	}
}

func orderBy(order string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Order(order) }
}

// withSummary loads what list cards need
func withSummary(db *gorm.DB) *gorm.DB {
	return db.Preload("PackageType").
		Preload("City.Country.Continent").
		Preload("Tags", orderBy(models.OrderByName))
}

// withTree loads the whole nested graph. activeDays drops inactive itineraries.
func withTree(activeDays bool) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return withSummary(db).
			Preload("Periods", orderBy(models.OrderPeriods)).
			Preload("Periods.Hotels", orderBy(models.OrderHotels)).
			Preload("Periods.Hotels.RoomTypes", orderBy(models.OrderRoomTypes)).
			Preload("Periods.Hotels.RoomTypes.Prices", orderBy(models.OrderRoomPrices)).
			Preload("Periods.Hotels.RoomTypes.Images", orderBy(models.OrderRoomImages)).
			Preload("DailyItineraries", func(db *gorm.DB) *gorm.DB {
				if activeDays {
					db = db.Where("is_active = ?", true)
				}
				return db.Order(models.OrderItineraries)
			}).
			Preload("DailyItineraries.Images", orderBy(models.OrderItineraryImages))
	}
}

// inGeo scopes packages to the deepest level of chain
func inGeo(chain *GeoChain) Scope {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case chain == nil:
			return db
		case chain.City != nil:
			return db.Where("packages.city_id = ?", chain.City.ID)
		case chain.Country != nil:
			return db.Where("packages.city_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).Model(&models.City{}).Select("id").Where("country_id = ?", chain.Country.ID))
		default:
			return db.Where("packages.city_id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).Table("cities").Select("cities.id").
					Joins("JOIN countries ON countries.id = cities.country_id").
					Where("countries.continent_id = ?", chain.Continent.ID))
		}
	}
}

func withURLs(pkgs []models.Package) []models.Package {
	for i := range pkgs {
		pkgs[i].URL = pkgs[i].AbsoluteURL()
	}
	return pkgs
}

func packageCacheKey(chain *GeoChain) string {
	if chain == nil {
		return constants.CacheKeyPackageList
	}
	parts := []string{chain.Continent.Slug}
	if chain.Country != nil {
		parts = append(parts, chain.Country.Slug)
	}
	if chain.City != nil {
		parts = append(parts, chain.City.Slug)
	}
	return constants.CacheKeyPrefixPackageGeo + strings.Join(parts, "/")
}

// ListActive returns active packages under chain (all when nil) with their full graph
func (s *PackageService) ListActive(ctx context.Context, chain *GeoChain) ([]models.Package, error) {
	key := packageCacheKey(chain)
	var pkgs []models.Package
	if s.cache.Get(ctx, key, &pkgs) {
		return pkgs, nil
	}
	err := s.db.WithContext(ctx).
		Scopes(withTree(false), inGeo(chain)).
		Where("packages.is_active = ?", true).
		Order(models.OrderPackages).
		Find(&pkgs).Error
	if err != nil {
		return nil, dbError(err, "package")
	}
	pkgs = withURLs(pkgs)
	s.cache.Set(ctx, key, pkgs)
	return pkgs, nil
}

// ActiveDetail finds an active package by slug inside city. Only active days are loaded.
func (s *PackageService) ActiveDetail(ctx context.Context, city *models.City, slug string) (*models.Package, error) {
	var pkg models.Package
	err := s.db.WithContext(ctx).
		Scopes(withTree(true)).
		Where("slug = ? AND city_id = ? AND is_active = ?", slug, city.ID, true).
		First(&pkg).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Package not found", errors.ErrPackageNotFound)
		}
		return nil, dbError(err, "package")
	}
	pkg.URL = pkg.AbsoluteURL()
	return &pkg, nil
}

// Featured returns up to limit active featured packages, newest first
func (s *PackageService) Featured(ctx context.Context, limit int) ([]models.Package, error) {
	var pkgs []models.Package
	err := s.db.WithContext(ctx).Scopes(withSummary).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order(models.OrderPackages).Limit(limit).Find(&pkgs).Error
	if err != nil {
		return nil, dbError(err, "package")
	}
	return withURLs(pkgs), nil
}

// SecondaryFeatured returns up to limit active secondary featured packages, recently updated first
func (s *PackageService) SecondaryFeatured(ctx context.Context, limit int) ([]models.Package, error) {
	var pkgs []models.Package
	err := s.db.WithContext(ctx).Scopes(withSummary).
		Where("is_active = ? AND is_secondary_featured = ?", true, true).
		Order("updated_at DESC, created_at DESC").Limit(limit).Find(&pkgs).Error
	if err != nil {
		return nil, dbError(err, "package")
	}
	return withURLs(pkgs), nil
}

// List is the admin package list
func (s *PackageService) List(ctx context.Context, f PackageFilter) ([]models.Package, int64, error) {
	scopes := []Scope{}
	switch {
	case f.CityID != nil:
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("city_id = ?", *f.CityID) })
	case f.CountryID != nil:
		scopes = append(scopes, inGeo(&GeoChain{Country: &models.Country{ID: *f.CountryID}}))
	case f.ContinentID != nil:
		scopes = append(scopes, inGeo(&GeoChain{Continent: &models.Continent{ID: *f.ContinentID}}))
	}
	if f.PackageTypeID != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("package_type_id = ?", *f.PackageTypeID) })
	}
	if f.IsFeatured != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("is_featured = ?", *f.IsFeatured) })
	}
	if f.IsSecondaryFeatured != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("is_secondary_featured = ?", *f.IsSecondaryFeatured) })
	}
	scopes = append(scopes, withSummary)

	pkgs, total, err := s.repo.List(ctx, f.ListQuery, scopes...)
	if err != nil {
		return nil, 0, err
	}
	return withURLs(pkgs), total, nil
}

// Get loads a package with its whole graph, inactive rows included
func (s *PackageService) Get(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := s.db.WithContext(ctx).Scopes(withTree(false)).First(&pkg, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Package not found", errors.ErrPackageNotFound)
		}
		return nil, dbError(err, "package")
	}
	pkg.URL = pkg.AbsoluteURL()
	return &pkg, nil
}

func (s *PackageService) Exists(ctx context.Context, id uint) error {
	return s.repo.Exists(ctx, id)
}

func (s *PackageService) loadTags(tx *gorm.DB, ids []uint) ([]models.PackageTag, error) {
	tags := []models.PackageTag{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, errors.NewAppError(errors.ErrCodeParentNotFound, "One or more tags do not exist", nil)
	}
	return tags, nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Create inserts pkg with its nested periods and itineraries and links tagIDs
func (s *PackageService) Create(ctx context.Context, pkg *models.Package, tagIDs []uint) (*models.Package, error) {
	if err := validator.ValidatePackage(pkg); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := s.loadTags(tx, tagIDs)
		if err != nil {
			return err
		}
		pkg.Tags = nil
		if err := tx.Create(pkg).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			return tx.Model(pkg).Association("Tags").Append(tags)
		}
		return nil
	})
	if err != nil {
		return nil, dbError(err, "package")
	}
	s.cache.InvalidateCatalog(ctx)
	s.logger.Info("created package %d (%s)", pkg.ID, pkg.Slug)
	return s.Get(ctx, pkg.ID)
}

// Update applies mutate to the package's own columns. tagIDs replaces the tag set when non-nil.
func (s *PackageService) Update(ctx context.Context, id uint, mutate func(*models.Package), tagIDs *[]uint) (*models.Package, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pkg models.Package
		if err := tx.First(&pkg, id).Error; err != nil {
			return err
		}
		mutate(&pkg)
		if err := validator.ValidatePackage(&pkg); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&pkg).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		tags, err := s.loadTags(tx, *tagIDs)
		if err != nil {
			return err
		}
		return tx.Model(&pkg).Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, dbError(err, "package")
	}
	s.cache.InvalidateCatalog(ctx)
	return s.Get(ctx, id)
}

func (s *PackageService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.cache.InvalidateCatalog(ctx)
	return nil
}

// SetFeatured toggles the homepage flags
func (s *PackageService) SetFeatured(ctx context.Context, id uint, featured, secondary *bool) error {
	updates := map[string]interface{}{}
	if featured != nil {
		updates["is_featured"] = *featured
	}
	if secondary != nil {
		updates["is_secondary_featured"] = *secondary
	}
	if len(updates) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return dbError(res.Error, "package")
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Package not found", errors.ErrPackageNotFound)
	}
	s.cache.InvalidateCatalog(ctx)
	return nil
}

func (s *PackageService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateCatalog(ctx)
	return nil
}

// SaveDescription stores generated copy together with the prompt that produced it
func (s *PackageService) SaveDescription(ctx context.Context, id uint, description, prompt string) error {
	res := s.db.WithContext(ctx).Model(&models.Package{}).Where("id = ?", id).Updates(map[string]interface{}{
		"description":           description,
		"ai_prompt_description": prompt,
	})
	if res.Error != nil {
		return dbError(res.Error, "package")
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Package not found", errors.ErrPackageNotFound)
	}
	s.cache.InvalidateCatalog(ctx)
	return nil
}
