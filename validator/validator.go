package validator

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"travelcms/errors"
	"travelcms/models"
)

var (
	validate = playground.New()

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
)

// ValidateSlug accepts an empty slug (filled by hooks) or lowercase words joined by - or _
func ValidateSlug(slug string) error {
	if slug == "" || slugPattern.MatchString(slug) {
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidSlug, "Slug may only contain lowercase letters, digits, hyphens and underscores", nil)
}

func ValidateContinent(c *models.Continent) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Continent name is required", nil)
	}
	if err := validateImage(c.Image); err != nil {
		return err
	}
	return ValidateSlug(c.Slug)
}

func ValidateCountry(c *models.Country) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Country name is required", nil)
	}
	if err := validateImage(c.Image); err != nil {
		return err
	}
	return ValidateSlug(c.Slug)
}

func ValidateCity(c *models.City) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "City name is required", nil)
	}
	if c.CountryID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "City country is required", nil)
	}
	if err := validateImage(c.Image); err != nil {
		return err
	}
	return ValidateSlug(c.Slug)
}

// ValidateTag checks the color is a #rrggbb hex code
func ValidateTag(t *models.PackageTag) error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tag name is required", nil)
	}
	if t.Color == "" {
		return nil
	}
	if err := validate.Var(t.Color, "hexcolor,len=7"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidColor, "Tag color must be a hex code like #007bff", err)
	}
	return nil
}

func ValidatePackage(p *models.Package) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Package name is required", nil)
	}
	if p.PackageTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Package type is required", nil)
	}
	if err := validateImage(p.MainImage); err != nil {
		return err
	}
	for i := range p.DailyItineraries {
		if err := ValidateItinerary(&p.DailyItineraries[i]); err != nil {
			return err
		}
	}
	return ValidateSlug(p.Slug)
}

func ValidateItinerary(it *models.DailyItinerary) error {
	if it.DayNumber < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidDay, "Day number must be at least 1", nil)
	}
	if strings.TrimSpace(it.Title) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Itinerary title is required", nil)
	}
	featured := 0
	for i := range it.Images {
		if it.Images[i].IsFeatured {
			featured++
		}
		if err := validateImage(it.Images[i].Image); err != nil {
			return err
		}
	}
	if featured > 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Only one image per day can be featured", nil)
	}
	return nil
}

func ValidateHeroSlide(s *models.HeroSlide) error {
	if s.LinkURL != "" {
		if err := validate.Var(s.LinkURL, "url"); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidURL, "Slide link must be a valid URL", err)
		}
	}
	return validateImage(s.Image)
}

func validateImage(image string) error {
	if image == "" {
		return nil
	}
	if err := validate.Var(image, "url"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidURL, "Image must be a valid URL", err)
	}
	return nil
}

func ValidateRoomImage(i *models.RoomImage) error {
	if i.Image == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Image is required", nil)
	}
	return validateImage(i.Image)
}

func ValidateItineraryImage(i *models.ItineraryImage) error {
	if i.Image == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Image is required", nil)
	}
	return validateImage(i.Image)
}
