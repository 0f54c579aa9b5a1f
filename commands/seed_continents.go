package commands

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelcms/models"
	"travelcms/services/logger"
)

// DefaultContinents are the seven continents; Antarctica ships disabled since it has few dive packages
var DefaultContinents = []models.Continent{
	{Name: "亞洲", NameEn: "Asia", Slug: "asia", IsActive: true},
	{Name: "歐洲", NameEn: "Europe", Slug: "europe", IsActive: true},
	{Name: "北美洲", NameEn: "North America", Slug: "north-america", IsActive: true},
	{Name: "南美洲", NameEn: "South America", Slug: "south-america", IsActive: true},
	{Name: "非洲", NameEn: "Africa", Slug: "africa", IsActive: true},
	{Name: "大洋洲", NameEn: "Oceania", Slug: "oceania", IsActive: true},
	{Name: "南極洲", NameEn: "Antarctica", Slug: "antarctica", IsActive: false},
}

// SeedContinentsCommand upserts DefaultContinents by slug
type SeedContinentsCommand struct {
	db     *gorm.DB
	logger logger.Logger
	Total  int64
}

func NewSeedContinentsCommand(db *gorm.DB, log logger.Logger) *SeedContinentsCommand {
	return &SeedContinentsCommand{db: db, logger: log}
}

func (c *SeedContinentsCommand) Name() string { return "seed-continents" }

func (c *SeedContinentsCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, data := range DefaultContinents {
			row := data
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "name_en", "is_active", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
			c.logger.Info("[+] %s (%s)", row.Name, row.NameEn)
		}
		if err := tx.Model(&models.Continent{}).Count(&c.Total).Error; err != nil {
			return err
		}
		c.logger.Info("done, %d continents in total", c.Total)
		return nil
	})
}
