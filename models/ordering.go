package models

// Default orderings
const (
	OrderByName          = "name ASC"
	OrderPackages        = "created_at DESC"
	OrderPeriods         = "period_text ASC"
	OrderHotels          = "hotel_name ASC"
	OrderRoomTypes       = "room_type_name ASC"
	OrderRoomPrices      = "price ASC"
	OrderRoomImages      = "created_at ASC"
	OrderItineraries     = "day_number ASC, display_order ASC"
	OrderItineraryImages = "display_order ASC, created_at ASC"
	OrderHeroSlides      = "sort_order ASC, id ASC"
)
