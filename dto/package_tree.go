package dto

import "travelcms/models"

type PeriodRequest struct {
	PeriodText string         `json:"periodText" binding:"required,max=200"`
	IsActive   *bool          `json:"isActive"`
	Hotels     []HotelRequest `json:"hotels"`
}

func (r *PeriodRequest) Apply(p *models.Period) {
	p.PeriodText = r.PeriodText
	setBool(&p.IsActive, r.IsActive)
}

func (r *PeriodRequest) Model() models.Period {
	p := models.Period{IsActive: true}
	r.Apply(&p)
	for i := range r.Hotels {
		p.Hotels = append(p.Hotels, r.Hotels[i].Model())
	}
	return p
}

type HotelRequest struct {
	HotelName string            `json:"hotelName" binding:"required,max=200"`
	IsActive  *bool             `json:"isActive"`
	RoomTypes []RoomTypeRequest `json:"roomTypes"`
}

func (r *HotelRequest) Apply(h *models.Hotel) {
	h.HotelName = r.HotelName
	setBool(&h.IsActive, r.IsActive)
}

func (r *HotelRequest) Model() models.Hotel {
	h := models.Hotel{IsActive: true}
	r.Apply(&h)
	for i := range r.RoomTypes {
		h.RoomTypes = append(h.RoomTypes, r.RoomTypes[i].Model())
	}
	return h
}

type RoomTypeRequest struct {
	RoomTypeName string             `json:"roomTypeName" binding:"required,max=100"`
	IsActive     *bool              `json:"isActive"`
	Prices       []RoomPriceRequest `json:"prices"`
	Images       []RoomImageRequest `json:"images"`
}

func (r *RoomTypeRequest) Apply(rt *models.RoomType) {
	rt.RoomTypeName = r.RoomTypeName
	setBool(&rt.IsActive, r.IsActive)
}

func (r *RoomTypeRequest) Model() models.RoomType {
	rt := models.RoomType{IsActive: true}
	r.Apply(&rt)
	for i := range r.Prices {
		rt.Prices = append(rt.Prices, r.Prices[i].Model())
	}
	for i := range r.Images {
		rt.Images = append(rt.Images, r.Images[i].Model())
	}
	return rt
}

type RoomPriceRequest struct {
	Price            string `json:"price" binding:"required,max=100"`
	PriceDescription string `json:"priceDescription" binding:"max=200"`
	IsActive         *bool  `json:"isActive"`
}

func (r *RoomPriceRequest) Apply(p *models.RoomPrice) {
	p.Price = r.Price
	p.PriceDescription = r.PriceDescription
	setBool(&p.IsActive, r.IsActive)
}

func (r *RoomPriceRequest) Model() models.RoomPrice {
	p := models.RoomPrice{IsActive: true}
	r.Apply(&p)
	return p
}

type RoomImageRequest struct {
	Image            string `json:"image" binding:"required"`
	ImageDescription string `json:"imageDescription" binding:"max=200"`
	IsActive         *bool  `json:"isActive"`
}

func (r *RoomImageRequest) Apply(i *models.RoomImage) {
	i.Image = r.Image
	i.ImageDescription = r.ImageDescription
	setBool(&i.IsActive, r.IsActive)
}

func (r *RoomImageRequest) Model() models.RoomImage {
	i := models.RoomImage{IsActive: true}
	r.Apply(&i)
	return i
}
