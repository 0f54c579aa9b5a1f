package models

import "time"

type Period struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PackageID  uint      `json:"packageId" gorm:"not null;index"`
	PeriodText string    `json:"periodText" gorm:"size:200;not null"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Hotels     []Hotel   `json:"hotels,omitempty" gorm:"foreignKey:PeriodID;constraint:OnDelete:CASCADE"`
}

type Hotel struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	PeriodID  uint       `json:"periodId" gorm:"not null;index"`
	HotelName string     `json:"hotelName" gorm:"size:200;not null"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	RoomTypes []RoomType `json:"roomTypes,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

type RoomType struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	HotelID      uint        `json:"hotelId" gorm:"not null;index"`
	RoomTypeName string      `json:"roomTypeName" gorm:"size:100;not null"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
	Prices       []RoomPrice `json:"prices,omitempty" gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE"`
	Images       []RoomImage `json:"images,omitempty" gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE"`
}

type RoomPrice struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID       uint      `json:"roomTypeId" gorm:"not null;index"`
	Price            string    `json:"price" gorm:"size:100;not null"`
	PriceDescription string    `json:"priceDescription" gorm:"size:200"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type RoomImage struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID       uint      `json:"roomTypeId" gorm:"not null;index"`
	Image            string    `json:"image" gorm:"not null"`
	ImageDescription string    `json:"imageDescription" gorm:"size:200"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
