package dto

import "travelcms/models"

type ContinentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	NameEn      string `json:"nameEn" binding:"max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

func (r *ContinentRequest) Apply(c *models.Continent) {
	c.Name = r.Name
	c.NameEn = r.NameEn
	c.Slug = r.Slug
	c.Description = r.Description
	c.Image = r.Image
	setBool(&c.IsActive, r.IsActive)
}

type CountryRequest struct {
	ContinentID *uint  `json:"continentId"`
	Name        string `json:"name" binding:"required,max=100"`
	NameEn      string `json:"nameEn" binding:"max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

func (r *CountryRequest) Apply(c *models.Country) {
	c.ContinentID = r.ContinentID
	c.Continent = nil
	c.Name = r.Name
	c.NameEn = r.NameEn
	c.Slug = r.Slug
	c.Description = r.Description
	c.Image = r.Image
	setBool(&c.IsActive, r.IsActive)
}

type CityRequest struct {
	CountryID   uint   `json:"countryId" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	NameEn      string `json:"nameEn" binding:"max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

func (r *CityRequest) Apply(c *models.City) {
	c.CountryID = r.CountryID
	c.Country = nil
	c.Name = r.Name
	c.NameEn = r.NameEn
	c.Slug = r.Slug
	c.Description = r.Description
	c.Image = r.Image
	setBool(&c.IsActive, r.IsActive)
}

type PackageTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=50"`
	IsActive    *bool  `json:"isActive"`
}

func (r *PackageTypeRequest) Apply(t *models.PackageType) {
	t.Name = r.Name
	t.Description = r.Description
	t.Icon = r.Icon
	setBool(&t.IsActive, r.IsActive)
}

type PackageTagRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Color    string `json:"color"`
	IsActive *bool  `json:"isActive"`
}

func (r *PackageTagRequest) Apply(t *models.PackageTag) {
	t.Name = r.Name
	if r.Color != "" {
		t.Color = r.Color
	}
	setBool(&t.IsActive, r.IsActive)
}
