package builders

import (
	"reflect"
	"testing"
	"time"

	"travelcms/models"
)

func uintPtr(v uint) *uint { return &v }

func samplePackage() *models.Package {
	valid := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	return &models.Package{
		ID:                  7,
		PackageTypeID:       2,
		CityID:              uintPtr(9),
		Name:                "Raja Ampat Liveaboard",
		Slug:                "raja-ampat",
		Subtitle:            "Seven nights",
		Description:         "<p>Reefs</p>",
		AIPromptDescription: "write about reefs",
		Price:               "USD 3,200",
		PriceIncludeItem:    "<ul><li>Boat</li></ul>",
		PriceExcludeItem:    "<ul><li>Flights</li></ul>",
		PriceValidDate:      &valid,
		FlightInfo:          "via Sorong",
		Tips:                "bring reef hook",
		MainImage:           "https://cdn.example.com/raja.jpg",
		IsActive:            true,
		IsFeatured:          true,
		IsSecondaryFeatured: true,
		RichTextTableOne:    "<table>1</table>",
		RichTextTableTwo:    "<table>2</table>",
		RichTextTableThree:  "<table>3</table>",
		Tags:                []models.PackageTag{{ID: 1, Name: "Manta"}, {ID: 4, Name: "Macro"}},
		Periods: []models.Period{{
			ID: 11, PackageID: 7, PeriodText: "Oct-Apr", IsActive: true,
			Hotels: []models.Hotel{{
				ID: 21, PeriodID: 11, HotelName: "MSY Seahorse", IsActive: true,
				RoomTypes: []models.RoomType{{
					ID: 31, HotelID: 21, RoomTypeName: "Deluxe", IsActive: false,
					Prices: []models.RoomPrice{{ID: 41, RoomTypeID: 31, Price: "3200", PriceDescription: "peak", IsActive: true}},
					Images: []models.RoomImage{{ID: 51, RoomTypeID: 31, Image: "https://cdn.example.com/cabin.jpg", ImageDescription: "cabin", IsActive: true}},
				}},
			}},
		}},
		DailyItineraries: []models.DailyItinerary{
			{ID: 61, PackageID: 7, DayNumber: 1, Title: "Arrival", Description: "Transfer\nBriefing", MealInfo: "D", DisplayOrder: 0, IsActive: true,
				Images: []models.ItineraryImage{{ID: 71, ItineraryID: 61, Image: "https://cdn.example.com/d1.jpg", Caption: "port", IsFeatured: true, IsActive: true}}},
			{ID: 62, PackageID: 7, DayNumber: 2, Title: "Dampier Strait", Notes: "strong current", DisplayOrder: 1, IsActive: false},
		},
	}
}

func TestClonePackageDefaults(t *testing.T) {
	src := samplePackage()
	dst := ClonePackage(src, "", "")

	if dst.ID != 0 {
		t.Fatalf("clone must be unsaved, got id %d", dst.ID)
	}
	if dst.Name != "Raja Ampat Liveaboard (copy)" {
		t.Fatalf("unexpected name %q", dst.Name)
	}
	if dst.Slug != "raja-ampat-copy" {
		t.Fatalf("unexpected slug %q", dst.Slug)
	}
	if dst.IsActive || dst.IsFeatured || dst.IsSecondaryFeatured {
		t.Fatalf("copy flags must all be false")
	}
	if dst.AIPromptDescription != "" {
		t.Fatalf("ai prompt must not be copied")
	}
	if dst.PackageTypeID != src.PackageTypeID || dst.CityID != src.CityID || dst.PriceValidDate != src.PriceValidDate {
		t.Fatalf("relations and dates must be shared")
	}
	for _, pair := range [][2]string{
		{dst.Subtitle, src.Subtitle}, {dst.Description, src.Description}, {dst.Price, src.Price},
		{dst.PriceIncludeItem, src.PriceIncludeItem}, {dst.PriceExcludeItem, src.PriceExcludeItem},
		{dst.FlightInfo, src.FlightInfo}, {dst.Tips, src.Tips}, {dst.MainImage, src.MainImage},
		{dst.RichTextTableOne, src.RichTextTableOne}, {dst.RichTextTableTwo, src.RichTextTableTwo},
		{dst.RichTextTableThree, src.RichTextTableThree},
	} {
		if pair[0] != pair[1] {
			t.Fatalf("field mismatch %q != %q", pair[0], pair[1])
		}
	}
	if !reflect.DeepEqual(dst.Tags, src.Tags) {
		t.Fatalf("tags must link the same rows")
	}
}

func TestClonePackageOverridesAndEmptySlug(t *testing.T) {
	src := samplePackage()
	dst := ClonePackage(src, "Raja 2027", "raja-2027")
	if dst.Name != "Raja 2027" || dst.Slug != "raja-2027" {
		t.Fatalf("overrides ignored: %q %q", dst.Name, dst.Slug)
	}

	src.Slug = ""
	dst = ClonePackage(src, "", "")
	if dst.Slug != "" {
		t.Fatalf("slug should be left for the insert hook, got %q", dst.Slug)
	}
}

func TestClonePackageTreeMatchesSource(t *testing.T) {
	src := samplePackage()
	dst := ClonePackage(src, "", "")

	if len(dst.Periods) != 1 || len(dst.Periods[0].Hotels) != 1 || len(dst.Periods[0].Hotels[0].RoomTypes) != 1 {
		t.Fatalf("period tree shape mismatch")
	}
	period := dst.Periods[0]
	if period.ID != 0 || period.PackageID != 0 || period.PeriodText != "Oct-Apr" || !period.IsActive {
		t.Fatalf("unexpected period %+v", period)
	}
	hotel := period.Hotels[0]
	if hotel.ID != 0 || hotel.HotelName != "MSY Seahorse" {
		t.Fatalf("unexpected hotel %+v", hotel)
	}
	room := hotel.RoomTypes[0]
	if room.ID != 0 || room.RoomTypeName != "Deluxe" || room.IsActive {
		t.Fatalf("unexpected room type %+v", room)
	}
	if got := room.Prices[0]; got.ID != 0 || got.Price != "3200" || got.PriceDescription != "peak" || !got.IsActive {
		t.Fatalf("unexpected price %+v", got)
	}
	if got := room.Images[0]; got.ID != 0 || got.Image != "https://cdn.example.com/cabin.jpg" || got.ImageDescription != "cabin" {
		t.Fatalf("unexpected room image %+v", got)
	}

	if len(dst.DailyItineraries) != 2 {
		t.Fatalf("inactive days must be copied too, got %d", len(dst.DailyItineraries))
	}
	day1, day2 := dst.DailyItineraries[0], dst.DailyItineraries[1]
	if day1.ID != 0 || day1.DayNumber != 1 || day1.Description != "Transfer\nBriefing" || day1.MealInfo != "D" {
		t.Fatalf("unexpected day 1 %+v", day1)
	}
	if day2.IsActive || day2.Notes != "strong current" || day2.DisplayOrder != 1 {
		t.Fatalf("unexpected day 2 %+v", day2)
	}
	img := day1.Images[0]
	if img.ID != 0 || img.ItineraryID != 0 || img.Image != src.DailyItineraries[0].Images[0].Image || !img.IsFeatured || img.Caption != "port" {
		t.Fatalf("unexpected itinerary image %+v", img)
	}
}

func TestCloneDoesNotAliasSource(t *testing.T) {
	src := samplePackage()
	dst := ClonePackage(src, "", "")
	dst.Periods[0].Hotels[0].HotelName = "changed"
	dst.Tags[0].Name = "changed"
	if src.Periods[0].Hotels[0].HotelName != "MSY Seahorse" || src.Tags[0].Name != "Manta" {
		t.Fatalf("clone must not share slices with the source")
	}
}
