package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelcms/constants"
	"travelcms/utils"
)

// PublicPackagesPath is the route prefix of the public package pages
const PublicPackagesPath = "/api/v1/packages"

type Package struct {
	ID                  uint         `json:"id" gorm:"primaryKey"`
	PackageTypeID       uint         `json:"packageTypeId" gorm:"not null;index"`
	PackageType         *PackageType `json:"packageType,omitempty" gorm:"foreignKey:PackageTypeID;constraint:OnDelete:CASCADE"`
	CityID              *uint        `json:"cityId" gorm:"uniqueIndex:idx_package_city_slug"`
	City                *City        `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Name                string       `json:"name" gorm:"size:200;not null"`
	Slug                string       `json:"slug" gorm:"size:200;uniqueIndex:idx_package_city_slug"`
	Subtitle            string       `json:"subtitle" gorm:"size:300"`
	Description         string       `json:"description" gorm:"type:text"`
	AIPromptDescription string       `json:"aiPromptDescription" gorm:"type:text"`
	Price               string       `json:"price" gorm:"size:100"`
	PriceIncludeItem    string       `json:"priceIncludeItem" gorm:"type:text"`
	PriceExcludeItem    string       `json:"priceExcludeItem" gorm:"type:text"`
	PriceValidDate      *time.Time   `json:"priceValidDate" gorm:"type:date"`
	FlightInfo          string       `json:"flightInfo" gorm:"type:text"`
	Tips                string       `json:"tips" gorm:"type:text"`
	Tags                []PackageTag `json:"tags" gorm:"many2many:package_tag_links;constraint:OnDelete:CASCADE"`
	MainImage           string       `json:"mainImage"`
	IsActive            bool         `json:"isActive" gorm:"index"`
	IsFeatured          bool         `json:"isFeatured"`
	IsSecondaryFeatured bool         `json:"isSecondaryFeatured"`
	RichTextTableOne    string       `json:"richTextTableOne" gorm:"type:text"`
	RichTextTableTwo    string       `json:"richTextTableTwo" gorm:"type:text"`
	RichTextTableThree  string       `json:"richTextTableThree" gorm:"type:text"`
	CreatedAt           time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`

	Periods          []Period         `json:"periods,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	DailyItineraries []DailyItinerary `json:"dailyItineraries,omitempty" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`

	URL string `json:"url" gorm:"-"`
}

// BeforeCreate fills an empty slug from the name. Names that slugify to nothing
// get a unique placeholder which AfterCreate swaps for package-<id>.
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}
	if p.Slug == "" {
		p.Slug = constants.PackageSlugPrefix + "tmp-" + uuid.NewString()
	}
	return nil
}

func (p *Package) BeforeUpdate(tx *gorm.DB) error {
	if p.Slug == "" && p.ID != 0 {
		p.Slug = utils.Slugify(p.Name)
		if p.Slug == "" {
			p.Slug = FallbackPackageSlug(p.ID)
		}
	}
	return nil
}

func (p *Package) AfterCreate(tx *gorm.DB) error {
	if strings.HasPrefix(p.Slug, constants.PackageSlugPrefix+"tmp-") {
		p.Slug = FallbackPackageSlug(p.ID)
		return tx.Session(&gorm.Session{NewDB: true}).Model(&Package{}).
			Where("id = ?", p.ID).UpdateColumn("slug", p.Slug).Error
	}
	return nil
}

// FallbackPackageSlug is the slug used when a package name has no sluggable characters
func FallbackPackageSlug(id uint) string {
	return fmt.Sprintf("%s%d", constants.PackageSlugPrefix, id)
}

// AbsoluteURL is the public detail path when the full geography chain is loaded,
// otherwise the package list path.
func (p *Package) AbsoluteURL() string {
	if p.City != nil && p.City.Country != nil && p.City.Country.Continent != nil {
		return fmt.Sprintf("%s/%s/%s/%s/%s", PublicPackagesPath,
			p.City.Country.Continent.Slug, p.City.Country.Slug, p.City.Slug, p.Slug)
	}
	return PublicPackagesPath
}
