package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table in dependency order
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Continent{},
		&Country{},
		&City{},
		&PackageType{},
		&PackageTag{},
		&Package{},
		&Period{},
		&Hotel{},
		&RoomType{},
		&RoomPrice{},
		&RoomImage{},
		&DailyItinerary{},
		&ItineraryImage{},
		&HomepageSettings{},
		&HeroSlide{},
		&AdminUser{},
	)
}
