package models

import (
	"time"

	"gorm.io/gorm"

	"travelcms/constants"
)

// HomepageSettings holds the hero configuration. Only one row is ever created.
type HomepageSettings struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Title     string      `json:"title" gorm:"size:100;not null"`
	HeroImage string      `json:"heroImage"` // legacy single image
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
	Slides    []HeroSlide `json:"slides,omitempty" gorm:"foreignKey:SettingsID;constraint:OnDelete:CASCADE"`
}

func (HomepageSettings) TableName() string {
	return "homepage_settings"
}

func (s *HomepageSettings) BeforeCreate(tx *gorm.DB) error {
	if s.Title == "" {
		s.Title = constants.DefaultSettingsTitle
	}
	return nil
}

type HeroSlide struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SettingsID uint      `json:"settingsId" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"size:200"`
	LinkURL    string    `json:"linkUrl"`
	Image      string    `json:"image"`
	Order      uint      `json:"order" gorm:"column:sort_order"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
