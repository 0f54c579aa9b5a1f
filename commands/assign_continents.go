package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"travelcms/models"
	"travelcms/services"
	"travelcms/services/logger"
)

//go:embed continents.yaml
var defaultContinentMapping []byte

// ContinentMapping lists the country names belonging to one continent
type ContinentMapping struct {
	Continent string   `yaml:"continent"`
	Countries []string `yaml:"countries"`
}

// LoadContinentMapping reads path, or the embedded default when path is empty
func LoadContinentMapping(path string) ([]ContinentMapping, error) {
	raw := defaultContinentMapping
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read continent mapping: %w", err)
		}
	}
	var mapping []ContinentMapping
	if err := yaml.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("parse continent mapping: %w", err)
	}
	return mapping, nil
}

// AssignmentPlan is the outcome of matching a mapping against the stored countries
type AssignmentPlan struct {
	// Assign maps country id to continent id
	Assign            map[uint]uint
	Fuzzy             map[string][]uint
	NotFound          []string
	MissingContinents []string
}

// PlanAssignments matches every mapped name to countries by name or English name,
// falling back to fuzzy matching. A country named under two continents keeps the later one.
func PlanAssignments(mapping []ContinentMapping, continents map[string]uint, countries []models.Country) AssignmentPlan {
	names := make(map[uint][]string, len(countries))
	for _, c := range countries {
		names[c.ID] = append(names[c.ID], c.Name, c.NameEn)
	}
	matcher := services.NewCountryMatcher(names)

	plan := AssignmentPlan{Assign: map[uint]uint{}, Fuzzy: map[string][]uint{}}
	for _, group := range mapping {
		continentID, ok := continents[group.Continent]
		if !ok {
			plan.MissingContinents = append(plan.MissingContinents, group.Continent)
			continue
		}
		for _, name := range group.Countries {
			ids, fuzzy := matcher.Match(name)
			if len(ids) == 0 {
				plan.NotFound = append(plan.NotFound, name)
				continue
			}
			if fuzzy {
				plan.Fuzzy[name] = ids
			}
			for _, id := range ids {
				plan.Assign[id] = continentID
			}
		}
	}
	return plan
}

// AssignContinentsCommand sets continent_id on countries from a mapping
type AssignContinentsCommand struct {
	db          *gorm.DB
	logger      logger.Logger
	mappingFile string

	Plan       AssignmentPlan
	Unassigned []models.Country
}

func NewAssignContinentsCommand(db *gorm.DB, log logger.Logger, mappingFile string) *AssignContinentsCommand {
	return &AssignContinentsCommand{db: db, logger: log, mappingFile: mappingFile}
}

func (c *AssignContinentsCommand) Name() string { return "assign-continents" }

func (c *AssignContinentsCommand) Execute(ctx context.Context) error {
	mapping, err := LoadContinentMapping(c.mappingFile)
	if err != nil {
		return err
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var continents []models.Continent
		if err := tx.Find(&continents).Error; err != nil {
			return err
		}
		bySlug := make(map[string]uint, len(continents))
		for _, ct := range continents {
			bySlug[ct.Slug] = ct.ID
		}

		var countries []models.Country
		if err := tx.Order(models.OrderByName).Find(&countries).Error; err != nil {
			return err
		}

		c.Plan = PlanAssignments(mapping, bySlug, countries)
		for _, slug := range c.Plan.MissingContinents {
			c.logger.Error("continent %q not found, run seed-continents first", slug)
		}
		for name, ids := range c.Plan.Fuzzy {
			c.logger.Info("[~] %q matched countries %v by similarity", name, ids)
		}
		for countryID, continentID := range c.Plan.Assign {
			if err := tx.Model(&models.Country{}).Where("id = ?", countryID).
				UpdateColumn("continent_id", continentID).Error; err != nil {
				return err
			}
		}
		for _, name := range c.Plan.NotFound {
			c.logger.Info("[!] not found: %s", name)
		}

		if err := tx.Where("continent_id IS NULL").Order(models.OrderByName).Find(&c.Unassigned).Error; err != nil {
			return err
		}
		c.logger.Info("assigned %d countries, %d names not found, %d countries still without a continent",
			len(c.Plan.Assign), len(c.Plan.NotFound), len(c.Unassigned))
		for _, country := range c.Unassigned {
			c.logger.Info("   - %s (ID: %d)", country.Name, country.ID)
		}
		return nil
	})
}
