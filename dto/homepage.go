package dto

import "travelcms/models"

type HomepageSettingsRequest struct {
	Title     string `json:"title" binding:"max=100"`
	HeroImage string `json:"heroImage"`
	IsActive  *bool  `json:"isActive"`
}

func (r *HomepageSettingsRequest) Apply(s *models.HomepageSettings) {
	s.Title = r.Title
	s.HeroImage = r.HeroImage
	setBool(&s.IsActive, r.IsActive)
}

type HeroSlideRequest struct {
	Title    string `json:"title" binding:"max=200"`
	LinkURL  string `json:"linkUrl"`
	Image    string `json:"image"`
	Order    uint   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

func (r *HeroSlideRequest) Apply(s *models.HeroSlide) {
	s.Title = r.Title
	s.LinkURL = r.LinkURL
	s.Image = r.Image
	s.Order = r.Order
	setBool(&s.IsActive, r.IsActive)
}
