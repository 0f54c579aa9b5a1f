package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"travelcms/dto"
	"travelcms/models"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"
	"travelcms/validator"
)

// settingsStore routes creates through the singleton check
type settingsStore struct {
	*services.Repository[models.HomepageSettings]
	homepage *services.HomepageService
}

func (s settingsStore) Create(ctx context.Context, item *models.HomepageSettings) error {
	return s.homepage.CreateSettings(ctx, item)
}

// NewHomepageSettingsController is the admin CRUD of the single HomepageSettings row
func NewHomepageSettingsController(homepage *services.HomepageService, log logger.Logger) *ResourceController[models.HomepageSettings] {
	return NewResourceController(ResourceOptions[models.HomepageSettings]{
		Store:    settingsStore{Repository: homepage.Settings(), homepage: homepage},
		Logger:   log,
		NewItem:  func() *models.HomepageSettings { return &models.HomepageSettings{IsActive: true} },
		NewInput: func() Input[models.HomepageSettings] { return &dto.HomepageSettingsRequest{} },
		Changed:  homepage.InvalidateView,
	})
}

// NewHeroSlideController nests slides under their settings row
func NewHeroSlideController(homepage *services.HomepageService, slides *services.Repository[models.HeroSlide], log logger.Logger) *ResourceController[models.HeroSlide] {
	return NewResourceController(ResourceOptions[models.HeroSlide]{
		Store:    slides,
		Logger:   log,
		NewItem:  func() *models.HeroSlide { return &models.HeroSlide{IsActive: true} },
		NewInput: func() Input[models.HeroSlide] { return &dto.HeroSlideRequest{} },
		Validate: validator.ValidateHeroSlide,
		Parent: &Parent[models.HeroSlide]{
			Param:  "id",
			Column: "settings_id",
			Exists: homepage.Settings().Exists,
			Assign: func(s *models.HeroSlide, id uint) { s.SettingsID = id },
		},
		Changed: homepage.InvalidateView,
	})
}

type HomepageRefresher interface {
	Refresh(ctx context.Context) (*services.HomepageView, error)
}

// RefreshHomepage rebuilds the cached homepage on demand
func RefreshHomepage(h HomepageRefresher, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := h.Refresh(c.Request.Context())
		if err != nil {
			handleError(c, log, err)
			return
		}
		response.Success(c, view)
	}
}
