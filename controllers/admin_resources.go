package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelcms/dto"
	"travelcms/models"
	"travelcms/services"
	"travelcms/services/logger"
	"travelcms/validator"
)

// CatalogInvalidator drops cached catalog pages after admin writes
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context)
}

// AdminResources groups the generic admin controllers of the catalog
type AdminResources struct {
	Continents      *ResourceController[models.Continent]
	Countries       *ResourceController[models.Country]
	Cities          *ResourceController[models.City]
	PackageTypes    *ResourceController[models.PackageType]
	PackageTags     *ResourceController[models.PackageTag]
	Periods         *ResourceController[models.Period]
	Hotels          *ResourceController[models.Hotel]
	RoomTypes       *ResourceController[models.RoomType]
	RoomPrices      *ResourceController[models.RoomPrice]
	RoomImages      *ResourceController[models.RoomImage]
	Itineraries     *ResourceController[models.DailyItinerary]
	ItineraryImages *ResourceController[models.ItineraryImage]
}

// queryUint filters column by the numeric query parameter param when present
func queryUint(param, column string) func(c *gin.Context) []services.Scope {
	return func(c *gin.Context) []services.Scope {
		id, err := strconv.ParseUint(c.Query(param), 10, 64)
		if err != nil || id == 0 {
			return nil
		}
		return []services.Scope{func(db *gorm.DB) *gorm.DB { return db.Where(column+" = ?", id) }}
	}
}

func NewAdminResources(repos *services.CatalogRepositories, packages PackageStore, cache CatalogInvalidator, log logger.Logger) *AdminResources {
	changed := cache.InvalidateCatalog

	return &AdminResources{
		Continents: NewResourceController(ResourceOptions[models.Continent]{
			Store:    repos.Continents,
			Logger:   log,
			NewItem:  func() *models.Continent { return &models.Continent{IsActive: true} },
			NewInput: func() Input[models.Continent] { return &dto.ContinentRequest{} },
			Validate: validator.ValidateContinent,
			Changed:  changed,
		}),
		Countries: NewResourceController(ResourceOptions[models.Country]{
			Store:    repos.Countries,
			Logger:   log,
			NewItem:  func() *models.Country { return &models.Country{IsActive: true} },
			NewInput: func() Input[models.Country] { return &dto.CountryRequest{} },
			Validate: validator.ValidateCountry,
			Filters:  queryUint("continentId", "continent_id"),
			Changed:  changed,
		}),
		Cities: NewResourceController(ResourceOptions[models.City]{
			Store:    repos.Cities,
			Logger:   log,
			NewItem:  func() *models.City { return &models.City{IsActive: true} },
			NewInput: func() Input[models.City] { return &dto.CityRequest{} },
			Validate: validator.ValidateCity,
			Filters:  queryUint("countryId", "country_id"),
			Changed:  changed,
		}),
		PackageTypes: NewResourceController(ResourceOptions[models.PackageType]{
			Store:    repos.PackageTypes,
			Logger:   log,
			NewItem:  func() *models.PackageType { return &models.PackageType{IsActive: true} },
			NewInput: func() Input[models.PackageType] { return &dto.PackageTypeRequest{} },
			Changed:  changed,
		}),
		PackageTags: NewResourceController(ResourceOptions[models.PackageTag]{
			Store:    repos.PackageTags,
			Logger:   log,
			NewItem:  func() *models.PackageTag { return &models.PackageTag{IsActive: true} },
			NewInput: func() Input[models.PackageTag] { return &dto.PackageTagRequest{} },
			Validate: validator.ValidateTag,
			Changed:  changed,
		}),
		Periods: NewResourceController(ResourceOptions[models.Period]{
			Store:    repos.Periods,
			Logger:   log,
			NewItem:  func() *models.Period { return &models.Period{IsActive: true} },
			NewInput: func() Input[models.Period] { return &dto.PeriodRequest{} },
			Parent: &Parent[models.Period]{
				Param: "id", Column: "package_id", Exists: packages.Exists,
				Assign: func(p *models.Period, id uint) { p.PackageID = id },
			},
			Changed: changed,
		}),
		Hotels: NewResourceController(ResourceOptions[models.Hotel]{
			Store:    repos.Hotels,
			Logger:   log,
			NewItem:  func() *models.Hotel { return &models.Hotel{IsActive: true} },
			NewInput: func() Input[models.Hotel] { return &dto.HotelRequest{} },
			Parent: &Parent[models.Hotel]{
				Param: "id", Column: "period_id", Exists: repos.Periods.Exists,
				Assign: func(h *models.Hotel, id uint) { h.PeriodID = id },
			},
			Changed: changed,
		}),
		RoomTypes: NewResourceController(ResourceOptions[models.RoomType]{
			Store:    repos.RoomTypes,
			Logger:   log,
			NewItem:  func() *models.RoomType { return &models.RoomType{IsActive: true} },
			NewInput: func() Input[models.RoomType] { return &dto.RoomTypeRequest{} },
			Parent: &Parent[models.RoomType]{
				Param: "id", Column: "hotel_id", Exists: repos.Hotels.Exists,
				Assign: func(rt *models.RoomType, id uint) { rt.HotelID = id },
			},
			Changed: changed,
		}),
		RoomPrices: NewResourceController(ResourceOptions[models.RoomPrice]{
			Store:    repos.RoomPrices,
			Logger:   log,
			NewItem:  func() *models.RoomPrice { return &models.RoomPrice{IsActive: true} },
			NewInput: func() Input[models.RoomPrice] { return &dto.RoomPriceRequest{} },
			Parent: &Parent[models.RoomPrice]{
				Param: "id", Column: "room_type_id", Exists: repos.RoomTypes.Exists,
				Assign: func(p *models.RoomPrice, id uint) { p.RoomTypeID = id },
			},
			Changed: changed,
		}),
		RoomImages: NewResourceController(ResourceOptions[models.RoomImage]{
			Store:    repos.RoomImages,
			Logger:   log,
			NewItem:  func() *models.RoomImage { return &models.RoomImage{IsActive: true} },
			NewInput: func() Input[models.RoomImage] { return &dto.RoomImageRequest{} },
			Validate: validator.ValidateRoomImage,
			Parent: &Parent[models.RoomImage]{
				Param: "id", Column: "room_type_id", Exists: repos.RoomTypes.Exists,
				Assign: func(i *models.RoomImage, id uint) { i.RoomTypeID = id },
			},
			Changed: changed,
		}),
		Itineraries: NewResourceController(ResourceOptions[models.DailyItinerary]{
			Store:    repos.Itineraries,
			Logger:   log,
			NewItem:  func() *models.DailyItinerary { return &models.DailyItinerary{IsActive: true} },
			NewInput: func() Input[models.DailyItinerary] { return &dto.ItineraryRequest{} },
			Validate: validator.ValidateItinerary,
			Parent: &Parent[models.DailyItinerary]{
				Param: "id", Column: "package_id", Exists: packages.Exists,
				Assign: func(it *models.DailyItinerary, id uint) { it.PackageID = id },
			},
			Changed: changed,
		}),
		ItineraryImages: NewResourceController(ResourceOptions[models.ItineraryImage]{
			Store:    repos.ItineraryImages,
			Logger:   log,
			NewItem:  func() *models.ItineraryImage { return &models.ItineraryImage{IsActive: true} },
			NewInput: func() Input[models.ItineraryImage] { return &dto.ItineraryImageRequest{} },
			Validate: validator.ValidateItineraryImage,
			Parent: &Parent[models.ItineraryImage]{
				Param: "id", Column: "itinerary_id", Exists: repos.Itineraries.Exists,
				Assign: func(i *models.ItineraryImage, id uint) { i.ItineraryID = id },
			},
			Changed: changed,
		}),
	}
}

// Register mounts every catalog resource on the admin group
func (a *AdminResources) Register(g *gin.RouterGroup) {
	a.Continents.Register(g, "/continents")
	a.Countries.Register(g, "/countries")
	a.Cities.Register(g, "/cities")
	a.PackageTypes.Register(g, "/package-types")
	a.PackageTags.Register(g, "/package-tags")

	a.Periods.RegisterNested(g, "/packages/:id", "periods")
	a.Periods.Register(g, "/periods")
	a.Hotels.RegisterNested(g, "/periods/:id", "hotels")
	a.Hotels.Register(g, "/hotels")
	a.RoomTypes.RegisterNested(g, "/hotels/:id", "room-types")
	a.RoomTypes.Register(g, "/room-types")
	a.RoomPrices.RegisterNested(g, "/room-types/:id", "prices")
	a.RoomPrices.Register(g, "/room-prices")
	a.RoomImages.RegisterNested(g, "/room-types/:id", "images")
	a.RoomImages.Register(g, "/room-images")

	a.Itineraries.RegisterNested(g, "/packages/:id", "itineraries")
	a.Itineraries.Register(g, "/itineraries")
	a.ItineraryImages.RegisterNested(g, "/itineraries/:id", "images")
	a.ItineraryImages.Register(g, "/itinerary-images")
}
