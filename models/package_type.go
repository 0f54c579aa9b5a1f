package models

import (
	"time"

	"gorm.io/gorm"

	"travelcms/constants"
)

type PackageType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"size:50"` // css icon class
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type PackageTag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Color     string    `json:"color" gorm:"size:7;not null"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (t *PackageTag) BeforeCreate(tx *gorm.DB) error {
	if t.Color == "" {
		t.Color = constants.DefaultTagColor
	}
	return nil
}
