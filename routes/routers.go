package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travelcms/controllers"
	"travelcms/middleware"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"

	_ "travelcms/docs"
)

// Deps are the services the HTTP layer is built from
type Deps struct {
	Logger    logger.Logger
	Cache     *services.Cache
	Repos     *services.CatalogRepositories
	Geography *services.GeographyService
	Packages  *services.PackageService
	Copier    *services.PackageCopyService
	Homepage  *services.HomepageService
	Writer    services.DescriptionGenerator
	PDF       *services.ItineraryPDFRenderer
	Media     *services.MediaService
	Auth      *services.AuthService
	Metrics   http.Handler
}

func SetupRoutes(router *gin.Engine, d Deps) {
	router.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	router.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalog := controllers.NewCatalogController(controllers.CatalogControllerOptions{
		Geo:      d.Geography,
		Packages: d.Packages,
		Homepage: d.Homepage,
		PDF:      d.PDF,
		Logger:   d.Logger,
	})

	v1 := router.Group("/api/v1")
	v1.GET("/home", catalog.Home)
	v1.GET("/packages", catalog.List)
	v1.GET("/packages/:continent", catalog.List)
	v1.GET("/packages/:continent/:country", catalog.List)
	v1.GET("/packages/:continent/:country/:city", catalog.List)
	v1.GET("/packages/:continent/:country/:city/:package", catalog.Detail)
	v1.GET("/packages/:continent/:country/:city/:package/daily-itinerary.pdf", catalog.ItineraryPDF)

	auth := controllers.NewAuthController(d.Auth, d.Logger)
	v1.POST("/auth/login", auth.Login)
	v1.POST("/auth/google", auth.Google)

	admin := v1.Group("/admin", middleware.AuthMiddleware(d.Auth))
	admin.GET("/me", auth.Me)

	pkg := controllers.NewPackageController(d.Packages, d.Copier, d.Writer, d.Logger)
	admin.GET("/packages", pkg.List)
	admin.POST("/packages", pkg.Create)
	admin.POST("/packages/copy", pkg.CopyMany)
	admin.GET("/packages/:id", pkg.Detail)
	admin.PUT("/packages/:id", pkg.Update)
	admin.PATCH("/packages/:id/status", pkg.SetStatus)
	admin.PATCH("/packages/:id/featured", pkg.SetFeatured)
	admin.DELETE("/packages/:id", pkg.Delete)
	admin.POST("/packages/:id/copy", pkg.Copy)
	admin.POST("/packages/:id/generate-ai-description", pkg.GenerateAIDescription)

	controllers.NewAdminResources(d.Repos, d.Packages, d.Cache, d.Logger).Register(admin)

	settings := controllers.NewHomepageSettingsController(d.Homepage, d.Logger)
	settings.Register(admin, "/homepage-settings")
	slides := controllers.NewHeroSlideController(d.Homepage, d.Repos.HeroSlides, d.Logger)
	slides.RegisterNested(admin, "/homepage-settings/:id", "slides")
	slides.Register(admin, "/hero-slides")
	admin.POST("/homepage/refresh", controllers.RefreshHomepage(d.Homepage, d.Logger))

	media := controllers.NewMediaController(d.Media, d.Logger)
	admin.POST("/media/upload", media.Upload)
	admin.POST("/media/multi-upload", media.MultiUpload)
}
