package services

import (
	"gorm.io/gorm"

	"travelcms/models"
)

// CatalogRepositories are the admin repositories of every catalog table except packages
type CatalogRepositories struct {
	Continents      *Repository[models.Continent]
	Countries       *Repository[models.Country]
	Cities          *Repository[models.City]
	PackageTypes    *Repository[models.PackageType]
	PackageTags     *Repository[models.PackageTag]
	Periods         *Repository[models.Period]
	Hotels          *Repository[models.Hotel]
	RoomTypes       *Repository[models.RoomType]
	RoomPrices      *Repository[models.RoomPrice]
	RoomImages      *Repository[models.RoomImage]
	Itineraries     *Repository[models.DailyItinerary]
	ItineraryImages *Repository[models.ItineraryImage]
	HeroSlides      *Repository[models.HeroSlide]
}

func NewCatalogRepositories(db *gorm.DB) *CatalogRepositories {
	geo := []string{"name", "name_en", "slug"}
	return &CatalogRepositories{
		Continents: NewRepository[models.Continent](db, RepositoryOptions{
			Entity: "continent", Order: models.OrderByName, SearchColumns: geo,
		}),
		Countries: NewRepository[models.Country](db, RepositoryOptions{
			Entity: "country", Order: models.OrderByName, SearchColumns: geo, Preloads: []string{"Continent"},
		}),
		Cities: NewRepository[models.City](db, RepositoryOptions{
			Entity: "city", Order: models.OrderByName, SearchColumns: geo, Preloads: []string{"Country.Continent"},
		}),
		PackageTypes: NewRepository[models.PackageType](db, RepositoryOptions{
			Entity: "package type", Order: models.OrderByName, SearchColumns: []string{"name"},
		}),
		PackageTags: NewRepository[models.PackageTag](db, RepositoryOptions{
			Entity: "package tag", Order: models.OrderByName, SearchColumns: []string{"name"},
		}),
		Periods: NewRepository[models.Period](db, RepositoryOptions{
			Entity: "period", Order: models.OrderPeriods, SearchColumns: []string{"period_text"},
			Preloads: []string{"Hotels.RoomTypes.Prices", "Hotels.RoomTypes.Images"},
		}),
		Hotels: NewRepository[models.Hotel](db, RepositoryOptions{
			Entity: "hotel", Order: models.OrderHotels, SearchColumns: []string{"hotel_name"},
			Preloads: []string{"RoomTypes.Prices", "RoomTypes.Images"},
		}),
		RoomTypes: NewRepository[models.RoomType](db, RepositoryOptions{
			Entity: "room type", Order: models.OrderRoomTypes, SearchColumns: []string{"room_type_name"},
			Preloads: []string{"Prices", "Images"},
		}),
		RoomPrices: NewRepository[models.RoomPrice](db, RepositoryOptions{
			Entity: "room price", Order: models.OrderRoomPrices, SearchColumns: []string{"price", "price_description"},
		}),
		RoomImages: NewRepository[models.RoomImage](db, RepositoryOptions{
			Entity: "room image", Order: models.OrderRoomImages, SearchColumns: []string{"image_description"},
		}),
		Itineraries: NewRepository[models.DailyItinerary](db, RepositoryOptions{
			Entity: "daily itinerary", Order: models.OrderItineraries, SearchColumns: []string{"title"},
			Preloads: []string{"Images"},
		}),
		ItineraryImages: NewRepository[models.ItineraryImage](db, RepositoryOptions{
			Entity: "itinerary image", Order: models.OrderItineraryImages, SearchColumns: []string{"caption"},
		}),
		HeroSlides: NewRepository[models.HeroSlide](db, RepositoryOptions{
			Entity: "hero slide", Order: models.OrderHeroSlides, SearchColumns: []string{"title"},
		}),
	}
}
