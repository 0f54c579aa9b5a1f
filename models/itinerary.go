package models

import (
	"time"

	"gorm.io/gorm"
)

type DailyItinerary struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	PackageID      uint             `json:"packageId" gorm:"not null;uniqueIndex:idx_itinerary_package_day"`
	DayNumber      uint             `json:"dayNumber" gorm:"not null;uniqueIndex:idx_itinerary_package_day"`
	Title          string           `json:"title" gorm:"size:200;not null"`
	Description    string           `json:"description" gorm:"type:text"`
	MealInfo       string           `json:"mealInfo" gorm:"size:200"`
	Accommodation  string           `json:"accommodation" gorm:"size:200"`
	Transportation string           `json:"transportation" gorm:"size:200"`
	Notes          string           `json:"notes" gorm:"type:text"`
	DisplayOrder   uint             `json:"displayOrder"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`
	Images         []ItineraryImage `json:"images,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

type ItineraryImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ItineraryID  uint      `json:"itineraryId" gorm:"not null;index"`
	Image        string    `json:"image" gorm:"not null"`
	Caption      string    `json:"caption" gorm:"size:200"`
	DisplayOrder uint      `json:"displayOrder"`
	IsFeatured   bool      `json:"isFeatured"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeSave keeps at most one featured image per itinerary
func (i *ItineraryImage) BeforeSave(tx *gorm.DB) error {
	if !i.IsFeatured || i.ItineraryID == 0 {
		return nil
	}
	return tx.Session(&gorm.Session{NewDB: true}).Model(&ItineraryImage{}).
		Where("itinerary_id = ? AND is_featured = ? AND id <> ?", i.ItineraryID, true, i.ID).
		UpdateColumn("is_featured", false).Error
}
