package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelcms/errors"
	"travelcms/models"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"
)

type GeoResolver interface {
	Resolve(ctx context.Context, continentSlug, countrySlug, citySlug string) (*services.GeoChain, error)
}

type PackageCatalog interface {
	ListActive(ctx context.Context, chain *services.GeoChain) ([]models.Package, error)
	ActiveDetail(ctx context.Context, city *models.City, slug string) (*models.Package, error)
}

type HomepageViewer interface {
	View(ctx context.Context) (*services.HomepageView, error)
}

type ItineraryRenderer interface {
	Render(w io.Writer, pkg *models.Package) error
}

// CatalogController serves the public site pages as JSON
type CatalogController struct {
	geo      GeoResolver
	packages PackageCatalog
	homepage HomepageViewer
	pdf      ItineraryRenderer
	logger   logger.Logger
}

type CatalogControllerOptions struct {
	Geo      GeoResolver
	Packages PackageCatalog
	Homepage HomepageViewer
	PDF      ItineraryRenderer
	Logger   logger.Logger
}

func NewCatalogController(opts CatalogControllerOptions) *CatalogController {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &CatalogController{
		geo:      opts.Geo,
		packages: opts.Packages,
		homepage: opts.Homepage,
		pdf:      opts.PDF,
		logger:   opts.Logger,
	}
}

// PackageListView is a package list page, with the geography that scoped it
type PackageListView struct {
	*services.GeoChain
	Packages []models.Package `json:"packages"`
}

// PackageDetailView is the package detail page
type PackageDetailView struct {
	services.GeoChain
	Package *models.Package `json:"package"`
}

func (cc *CatalogController) Home(c *gin.Context) {
	view, err := cc.homepage.View(c.Request.Context())
	if err != nil {
		handleError(c, cc.logger, err)
		return
	}
	response.Success(c, view)
}

// List serves every chain depth: /packages, /packages/:continent, ... /:city
func (cc *CatalogController) List(c *gin.Context) {
	ctx := c.Request.Context()
	var chain *services.GeoChain
	if continent := c.Param("continent"); continent != "" {
		var err error
		chain, err = cc.geo.Resolve(ctx, continent, c.Param("country"), c.Param("city"))
		if err != nil {
			handleError(c, cc.logger, err)
			return
		}
	}
	pkgs, err := cc.packages.ListActive(ctx, chain)
	if err != nil {
		handleError(c, cc.logger, err)
		return
	}
	response.Success(c, PackageListView{GeoChain: chain, Packages: pkgs})
}

func (cc *CatalogController) detail(c *gin.Context) (*PackageDetailView, bool) {
	ctx := c.Request.Context()
	chain, err := cc.geo.Resolve(ctx, c.Param("continent"), c.Param("country"), c.Param("city"))
	if err != nil {
		handleError(c, cc.logger, err)
		return nil, false
	}
	pkg, err := cc.packages.ActiveDetail(ctx, chain.City, c.Param("package"))
	if err != nil {
		handleError(c, cc.logger, err)
		return nil, false
	}
	return &PackageDetailView{GeoChain: *chain, Package: pkg}, true
}

func (cc *CatalogController) Detail(c *gin.Context) {
	view, ok := cc.detail(c)
	if !ok {
		return
	}
	response.Success(c, view)
}

// ItineraryPDF downloads the package's daily itinerary
func (cc *CatalogController) ItineraryPDF(c *gin.Context) {
	view, ok := cc.detail(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := cc.pdf.Render(&buf, view.Package); err != nil {
		handleError(c, cc.logger, errors.NewAppError(errors.ErrCodePDFFailed, "Could not generate the itinerary PDF", err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.ItineraryPDFFilename(view.Package.Slug)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
