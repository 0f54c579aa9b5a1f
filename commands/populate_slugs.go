package commands

import (
	"context"

	"gorm.io/gorm"

	"travelcms/models"
	"travelcms/services/logger"
	"travelcms/utils"
)

// slugRow is a row whose slug may need filling. Slugs are unique within Scope.
type slugRow struct {
	ID     uint
	Scope  uint
	Slug   string
	Source string
}

// assignSlugs fills empty slugs from Source keeping them unique per scope.
// Rows whose source slugifies to nothing use fallback, or are returned as manual when it is nil.
func assignSlugs(rows []slugRow, fallback func(id uint) string) (updated, manual []slugRow) {
	taken := map[uint]map[string]bool{}
	for _, r := range rows {
		if r.Slug == "" {
			continue
		}
		if taken[r.Scope] == nil {
			taken[r.Scope] = map[string]bool{}
		}
		taken[r.Scope][r.Slug] = true
	}

	for _, r := range rows {
		if r.Slug != "" {
			continue
		}
		base := utils.Slugify(r.Source)
		if base == "" && fallback != nil {
			base = fallback(r.ID)
		}
		if base == "" {
			manual = append(manual, r)
			continue
		}
		if taken[r.Scope] == nil {
			taken[r.Scope] = map[string]bool{}
		}
		scope := taken[r.Scope]
		r.Slug, _ = utils.UniqueSlug(base, func(s string) (bool, error) { return scope[s], nil })
		scope[r.Slug] = true
		updated = append(updated, r)
	}
	return updated, manual
}

// SlugReport counts rows per entity
type SlugReport struct {
	Updated int
	Manual  int
	Missing int64
	Total   int64
}

// PopulateSlugsCommand backfills empty slugs on countries, cities and packages then verifies
type PopulateSlugsCommand struct {
	db     *gorm.DB
	logger logger.Logger

	Countries SlugReport
	Cities    SlugReport
	Packages  SlugReport
}

func NewPopulateSlugsCommand(db *gorm.DB, log logger.Logger) *PopulateSlugsCommand {
	return &PopulateSlugsCommand{db: db, logger: log}
}

func (c *PopulateSlugsCommand) Name() string { return "populate-slugs" }

// Complete reports whether every row has a slug after the last run
func (c *PopulateSlugsCommand) Complete() bool {
	return c.Countries.Missing == 0 && c.Cities.Missing == 0 && c.Packages.Missing == 0
}

func (c *PopulateSlugsCommand) Execute(ctx context.Context) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var countries []models.Country
		if err := tx.Select("id", "slug", "name", "name_en").Find(&countries).Error; err != nil {
			return err
		}
		rows := make([]slugRow, 0, len(countries))
		for _, ct := range countries {
			rows = append(rows, slugRow{ID: ct.ID, Slug: ct.Slug, Source: ct.NameEn})
		}
		if err := c.apply(tx, &models.Country{}, "country", rows, nil, &c.Countries); err != nil {
			return err
		}

		var cities []models.City
		if err := tx.Select("id", "country_id", "slug", "name", "name_en").Find(&cities).Error; err != nil {
			return err
		}
		rows = rows[:0]
		for _, city := range cities {
			rows = append(rows, slugRow{ID: city.ID, Scope: city.CountryID, Slug: city.Slug, Source: city.NameEn})
		}
		if err := c.apply(tx, &models.City{}, "city", rows, nil, &c.Cities); err != nil {
			return err
		}

		var packages []models.Package
		if err := tx.Select("id", "city_id", "slug", "name").Find(&packages).Error; err != nil {
			return err
		}
		rows = rows[:0]
		for _, p := range packages {
			var scope uint
			if p.CityID != nil {
				scope = *p.CityID
			}
			rows = append(rows, slugRow{ID: p.ID, Scope: scope, Slug: p.Slug, Source: p.Name})
		}
		return c.apply(tx, &models.Package{}, "package", rows, models.FallbackPackageSlug, &c.Packages)
	})
	if err != nil {
		return err
	}
	return c.verify(ctx)
}

func (c *PopulateSlugsCommand) apply(tx *gorm.DB, model interface{}, entity string, rows []slugRow, fallback func(uint) string, report *SlugReport) error {
	updated, manual := assignSlugs(rows, fallback)
	for _, r := range updated {
		if err := tx.Model(model).Where("id = ?", r.ID).UpdateColumn("slug", r.Slug).Error; err != nil {
			return err
		}
		c.logger.Info("[+] %s %d slug set to %s", entity, r.ID, r.Slug)
	}
	for _, r := range manual {
		c.logger.Info("[!] %s %d has no English name, set its slug manually", entity, r.ID)
	}
	report.Updated = len(updated)
	report.Manual = len(manual)
	return nil
}

func (c *PopulateSlugsCommand) verify(ctx context.Context) error {
	db := c.db.WithContext(ctx)
	checks := []struct {
		model  interface{}
		entity string
		report *SlugReport
	}{
		{&models.Country{}, "countries", &c.Countries},
		{&models.City{}, "cities", &c.Cities},
		{&models.Package{}, "packages", &c.Packages},
	}
	for _, ch := range checks {
		if err := db.Model(ch.model).Count(&ch.report.Total).Error; err != nil {
			return err
		}
		if err := db.Model(ch.model).Where("slug = '' OR slug IS NULL").Count(&ch.report.Missing).Error; err != nil {
			return err
		}
		c.logger.Info("%s: %d/%d have a slug", ch.entity, ch.report.Total-ch.report.Missing, ch.report.Total)
	}
	if !c.Complete() {
		c.logger.Info("some rows still have no slug, fix them in the admin")
	}
	return nil
}
