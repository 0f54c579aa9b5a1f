package dto

import (
	"time"

	"travelcms/models"
	"travelcms/services"
)

// PackageListParams are the admin package list filters
type PackageListParams struct {
	ListParams
	ContinentID         *uint `form:"continentId"`
	CountryID           *uint `form:"countryId"`
	CityID              *uint `form:"cityId"`
	PackageTypeID       *uint `form:"packageTypeId"`
	IsFeatured          *bool `form:"isFeatured"`
	IsSecondaryFeatured *bool `form:"isSecondaryFeatured"`
}

func (p PackageListParams) Filter() services.PackageFilter {
	return services.PackageFilter{
		ListQuery:           p.ListParams.Query(),
		ContinentID:         p.ContinentID,
		CountryID:           p.CountryID,
		CityID:              p.CityID,
		PackageTypeID:       p.PackageTypeID,
		IsFeatured:          p.IsFeatured,
		IsSecondaryFeatured: p.IsSecondaryFeatured,
	}
}

// PackageRequest is the package body. On create it may carry the whole nested tree.
type PackageRequest struct {
	PackageTypeID       uint       `json:"packageTypeId" binding:"required"`
	CityID              *uint      `json:"cityId"`
	Name                string     `json:"name" binding:"required,max=200"`
	Slug                string     `json:"slug" binding:"max=200"`
	Subtitle            string     `json:"subtitle" binding:"max=300"`
	Description         string     `json:"description"`
	AIPromptDescription string     `json:"aiPromptDescription"`
	Price               string     `json:"price" binding:"max=100"`
	PriceIncludeItem    string     `json:"priceIncludeItem"`
	PriceExcludeItem    string     `json:"priceExcludeItem"`
	PriceValidDate      *time.Time `json:"priceValidDate"`
	FlightInfo          string     `json:"flightInfo"`
	Tips                string     `json:"tips"`
	MainImage           string     `json:"mainImage"`
	TagIDs              *[]uint    `json:"tagIds"`
	IsActive            *bool      `json:"isActive"`
	IsFeatured          *bool      `json:"isFeatured"`
	IsSecondaryFeatured *bool      `json:"isSecondaryFeatured"`
	RichTextTableOne    string     `json:"richTextTableOne"`
	RichTextTableTwo    string     `json:"richTextTableTwo"`
	RichTextTableThree  string     `json:"richTextTableThree"`

	Periods          []PeriodRequest    `json:"periods"`
	DailyItineraries []ItineraryRequest `json:"dailyItineraries"`
}

// Apply copies the package's own columns
func (r *PackageRequest) Apply(p *models.Package) {
	p.PackageTypeID = r.PackageTypeID
	p.PackageType = nil
	p.CityID = r.CityID
	p.City = nil
	p.Name = r.Name
	p.Slug = r.Slug
	p.Subtitle = r.Subtitle
	p.Description = r.Description
	p.AIPromptDescription = r.AIPromptDescription
	p.Price = r.Price
	p.PriceIncludeItem = r.PriceIncludeItem
	p.PriceExcludeItem = r.PriceExcludeItem
	p.PriceValidDate = r.PriceValidDate
	p.FlightInfo = r.FlightInfo
	p.Tips = r.Tips
	p.MainImage = r.MainImage
	setBool(&p.IsActive, r.IsActive)
	setBool(&p.IsFeatured, r.IsFeatured)
	setBool(&p.IsSecondaryFeatured, r.IsSecondaryFeatured)
	p.RichTextTableOne = r.RichTextTableOne
	p.RichTextTableTwo = r.RichTextTableTwo
	p.RichTextTableThree = r.RichTextTableThree
}

// Model builds a new package with its nested tree. New rows are active unless told otherwise.
func (r *PackageRequest) Model() *models.Package {
	p := &models.Package{IsActive: true}
	r.Apply(p)
	for i := range r.Periods {
		p.Periods = append(p.Periods, r.Periods[i].Model())
	}
	for i := range r.DailyItineraries {
		p.DailyItineraries = append(p.DailyItineraries, r.DailyItineraries[i].Model())
	}
	return p
}

func (r *PackageRequest) Tags() []uint {
	if r.TagIDs == nil {
		return nil
	}
	return *r.TagIDs
}

// FeatureRequest toggles the homepage flags
type FeatureRequest struct {
	IsFeatured          *bool `json:"isFeatured"`
	IsSecondaryFeatured *bool `json:"isSecondaryFeatured"`
}

// CopyRequest optionally overrides the name and slug of a copy
type CopyRequest struct {
	Name string `json:"name" binding:"max=200"`
	Slug string `json:"slug" binding:"max=200"`
}

// BulkCopyResponse reports a bulk copy
type BulkCopyResponse struct {
	Copied   int                    `json:"copied"`
	Packages []models.Package       `json:"packages"`
	Failures []services.CopyFailure `json:"failures"`
}

// AIDescriptionRequest is the generate-ai-description body
type AIDescriptionRequest struct {
	AIPrompt *string `json:"ai_prompt"`
}

type AIDescriptionResponse struct {
	Content string `json:"content"`
}
