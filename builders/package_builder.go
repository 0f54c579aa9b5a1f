package builders

import (
	"travelcms/constants"
	"travelcms/models"
)

// PackageCopyBuilder assembles an unsaved duplicate of a package step by step.
// Every built row has a zero ID so it can be inserted as new.
type PackageCopyBuilder struct {
	src *models.Package
	dst *models.Package
}

// NewPackageCopyBuilder starts from src's own columns. The copy is inactive,
// not featured and has no AI prompt.
func NewPackageCopyBuilder(src *models.Package) *PackageCopyBuilder {
	return &PackageCopyBuilder{
		src: src,
		dst: &models.Package{
			PackageTypeID:       src.PackageTypeID,
			CityID:              src.CityID,
			Name:                src.Name + constants.CopyNameSuffix,
			Subtitle:            src.Subtitle,
			Description:         src.Description,
			Price:               src.Price,
			PriceIncludeItem:    src.PriceIncludeItem,
			PriceExcludeItem:    src.PriceExcludeItem,
			PriceValidDate:      src.PriceValidDate,
			FlightInfo:          src.FlightInfo,
			Tips:                src.Tips,
			MainImage:           src.MainImage,
			IsActive:            false,
			IsFeatured:          false,
			IsSecondaryFeatured: false,
			RichTextTableOne:    src.RichTextTableOne,
			RichTextTableTwo:    src.RichTextTableTwo,
			RichTextTableThree:  src.RichTextTableThree,
		},
	}
}

// WithName overrides the default "<name> (copy)"
func (b *PackageCopyBuilder) WithName(name string) *PackageCopyBuilder {
	if name != "" {
		b.dst.Name = name
	}
	return b
}

// WithSlug sets slug, or "<source slug>-copy" when empty. A source without a slug
// leaves the slug empty so it is derived from the name on insert.
func (b *PackageCopyBuilder) WithSlug(slug string) *PackageCopyBuilder {
	switch {
	case slug != "":
		b.dst.Slug = slug
	case b.src.Slug != "":
		b.dst.Slug = b.src.Slug + constants.CopySlugSuffix
	default:
		b.dst.Slug = ""
	}
	return b
}

// WithTags links the same tag rows
func (b *PackageCopyBuilder) WithTags() *PackageCopyBuilder {
	b.dst.Tags = append([]models.PackageTag(nil), b.src.Tags...)
	return b
}

// WithPeriods duplicates periods, hotels, room types, prices and images in source order
func (b *PackageCopyBuilder) WithPeriods() *PackageCopyBuilder {
	b.dst.Periods = make([]models.Period, 0, len(b.src.Periods))
	for _, period := range b.src.Periods {
		newPeriod := models.Period{
			PeriodText: period.PeriodText,
			IsActive:   period.IsActive,
			Hotels:     make([]models.Hotel, 0, len(period.Hotels)),
		}
		for _, hotel := range period.Hotels {
			newHotel := models.Hotel{
				HotelName: hotel.HotelName,
				IsActive:  hotel.IsActive,
				RoomTypes: make([]models.RoomType, 0, len(hotel.RoomTypes)),
			}
			for _, roomType := range hotel.RoomTypes {
				newRoomType := models.RoomType{
					RoomTypeName: roomType.RoomTypeName,
					IsActive:     roomType.IsActive,
					Prices:       make([]models.RoomPrice, 0, len(roomType.Prices)),
					Images:       make([]models.RoomImage, 0, len(roomType.Images)),
				}
				for _, price := range roomType.Prices {
					newRoomType.Prices = append(newRoomType.Prices, models.RoomPrice{
						Price:            price.Price,
						PriceDescription: price.PriceDescription,
						IsActive:         price.IsActive,
					})
				}
				for _, image := range roomType.Images {
					newRoomType.Images = append(newRoomType.Images, models.RoomImage{
						Image:            image.Image,
						ImageDescription: image.ImageDescription,
						IsActive:         image.IsActive,
					})
				}
				newHotel.RoomTypes = append(newHotel.RoomTypes, newRoomType)
			}
			newPeriod.Hotels = append(newPeriod.Hotels, newHotel)
		}
		b.dst.Periods = append(b.dst.Periods, newPeriod)
	}
	return b
}

// WithItineraries duplicates every day, active or not, and its images
func (b *PackageCopyBuilder) WithItineraries() *PackageCopyBuilder {
	b.dst.DailyItineraries = make([]models.DailyItinerary, 0, len(b.src.DailyItineraries))
	for _, day := range b.src.DailyItineraries {
		newDay := models.DailyItinerary{
			DayNumber:      day.DayNumber,
			Title:          day.Title,
			Description:    day.Description,
			MealInfo:       day.MealInfo,
			Accommodation:  day.Accommodation,
			Transportation: day.Transportation,
			Notes:          day.Notes,
			DisplayOrder:   day.DisplayOrder,
			IsActive:       day.IsActive,
			Images:         make([]models.ItineraryImage, 0, len(day.Images)),
		}
		for _, image := range day.Images {
			newDay.Images = append(newDay.Images, models.ItineraryImage{
				Image:        image.Image,
				Caption:      image.Caption,
				DisplayOrder: image.DisplayOrder,
				IsFeatured:   image.IsFeatured,
				IsActive:     image.IsActive,
			})
		}
		b.dst.DailyItineraries = append(b.dst.DailyItineraries, newDay)
	}
	return b
}

// Build returns the assembled package
func (b *PackageCopyBuilder) Build() *models.Package {
	return b.dst
}

// ClonePackage is the full copy: own columns, tags, periods tree and itineraries
func ClonePackage(src *models.Package, newName, newSlug string) *models.Package {
	return NewPackageCopyBuilder(src).
		WithName(newName).
		WithSlug(newSlug).
		WithTags().
		WithPeriods().
		WithItineraries().
		Build()
}
