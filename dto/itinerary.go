package dto

import "travelcms/models"

type ItineraryRequest struct {
	PackageID      uint                    `json:"packageId"`
	DayNumber      uint                    `json:"dayNumber" binding:"required,min=1"`
	Title          string                  `json:"title" binding:"required,max=200"`
	Description    string                  `json:"description"`
	MealInfo       string                  `json:"mealInfo" binding:"max=200"`
	Accommodation  string                  `json:"accommodation" binding:"max=200"`
	Transportation string                  `json:"transportation" binding:"max=200"`
	Notes          string                  `json:"notes"`
	DisplayOrder   uint                    `json:"displayOrder"`
	IsActive       *bool                   `json:"isActive"`
	Images         []ItineraryImageRequest `json:"images"`
}

// Apply copies the itinerary columns. PackageID is only taken when set.
func (r *ItineraryRequest) Apply(it *models.DailyItinerary) {
	if r.PackageID != 0 {
		it.PackageID = r.PackageID
	}
	it.DayNumber = r.DayNumber
	it.Title = r.Title
	it.Description = r.Description
	it.MealInfo = r.MealInfo
	it.Accommodation = r.Accommodation
	it.Transportation = r.Transportation
	it.Notes = r.Notes
	it.DisplayOrder = r.DisplayOrder
	setBool(&it.IsActive, r.IsActive)
}

func (r *ItineraryRequest) Model() models.DailyItinerary {
	it := models.DailyItinerary{IsActive: true}
	r.Apply(&it)
	for i := range r.Images {
		it.Images = append(it.Images, r.Images[i].Model())
	}
	return it
}

type ItineraryImageRequest struct {
	Image        string `json:"image" binding:"required"`
	Caption      string `json:"caption" binding:"max=200"`
	DisplayOrder uint   `json:"displayOrder"`
	IsFeatured   *bool  `json:"isFeatured"`
	IsActive     *bool  `json:"isActive"`
}

func (r *ItineraryImageRequest) Apply(i *models.ItineraryImage) {
	i.Image = r.Image
	i.Caption = r.Caption
	i.DisplayOrder = r.DisplayOrder
	setBool(&i.IsFeatured, r.IsFeatured)
	setBool(&i.IsActive, r.IsActive)
}

func (r *ItineraryImageRequest) Model() models.ItineraryImage {
	i := models.ItineraryImage{IsActive: true}
	r.Apply(&i)
	return i
}
