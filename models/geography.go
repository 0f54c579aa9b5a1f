package models

import (
	"time"

	"gorm.io/gorm"

	"travelcms/utils"
)

type Continent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	NameEn      string    `json:"nameEn" gorm:"size:100"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"` // rich HTML
	Image       string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Countries   []Country `json:"countries,omitempty" gorm:"foreignKey:ContinentID;constraint:OnDelete:CASCADE"`
}

func (c *Continent) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" && c.NameEn != "" {
		c.Slug = utils.Slugify(c.NameEn)
	}
	return nil
}

type Country struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ContinentID *uint      `json:"continentId" gorm:"uniqueIndex:idx_country_continent_name;uniqueIndex:idx_country_continent_slug"`
	Continent   *Continent `json:"continent,omitempty" gorm:"foreignKey:ContinentID"`
	Name        string     `json:"name" gorm:"size:100;not null;uniqueIndex:idx_country_continent_name"`
	NameEn      string     `json:"nameEn" gorm:"size:100"`
	Slug        string     `json:"slug" gorm:"size:100;uniqueIndex:idx_country_continent_slug"`
	Description string     `json:"description" gorm:"type:text"`
	Image       string     `json:"image"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	Cities      []City     `json:"cities,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

func (c *Country) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" && c.NameEn != "" {
		c.Slug = utils.Slugify(c.NameEn)
	}
	return nil
}

type City struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CountryID   uint      `json:"countryId" gorm:"not null;uniqueIndex:idx_city_country_name;uniqueIndex:idx_city_country_slug"`
	Country     *Country  `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_city_country_name"`
	NameEn      string    `json:"nameEn" gorm:"size:100"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex:idx_city_country_slug"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Packages    []Package `json:"packages,omitempty" gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}

func (c *City) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" && c.NameEn != "" {
		c.Slug = utils.Slugify(c.NameEn)
	}
	return nil
}
