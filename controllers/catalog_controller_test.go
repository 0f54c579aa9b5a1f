package controllers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"travelcms/errors"
	"travelcms/models"
	"travelcms/services"
)

type fakeGeo struct {
	calls [][3]string
}

func (f *fakeGeo) Resolve(_ context.Context, continent, country, city string) (*services.GeoChain, error) {
	f.calls = append(f.calls, [3]string{continent, country, city})
	if continent != "asia" {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Continent not found", nil)
	}
	chain := &services.GeoChain{Continent: &models.Continent{ID: 1, Slug: "asia"}}
	if country != "" {
		chain.Country = &models.Country{ID: 2, Slug: country}
	}
	if city != "" {
		chain.City = &models.City{ID: 3, Slug: city}
	}
	return chain, nil
}

type fakeCatalog struct {
	chain *services.GeoChain
}

func (f *fakeCatalog) ListActive(_ context.Context, chain *services.GeoChain) ([]models.Package, error) {
	f.chain = chain
	return []models.Package{{ID: 7, Slug: "sipadan"}}, nil
}

func (f *fakeCatalog) ActiveDetail(_ context.Context, city *models.City, slug string) (*models.Package, error) {
	if slug != "sipadan" {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Package not found", nil)
	}
	return &models.Package{ID: 7, Slug: slug, CityID: &city.ID}, nil
}

type fakeViewer struct {
	err error
}

func (f fakeViewer) View(context.Context) (*services.HomepageView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.HomepageView{HeroImage: "https://img/hero.jpg"}, nil
}

type fakeRenderer struct {
	err error
}

func (f fakeRenderer) Render(w io.Writer, pkg *models.Package) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "%PDF-1.3 "+pkg.Slug)
	return err
}

func catalogRouter(geo *fakeGeo, cat *fakeCatalog, home fakeViewer, pdf fakeRenderer) http.Handler {
	cc := NewCatalogController(CatalogControllerOptions{Geo: geo, Packages: cat, Homepage: home, PDF: pdf})
	r := newRouter()
	v1 := r.Group("/api/v1")
	v1.GET("/home", cc.Home)
	v1.GET("/packages", cc.List)
	v1.GET("/packages/:continent", cc.List)
	v1.GET("/packages/:continent/:country", cc.List)
	v1.GET("/packages/:continent/:country/:city", cc.List)
	v1.GET("/packages/:continent/:country/:city/:package", cc.Detail)
	v1.GET("/packages/:continent/:country/:city/:package/daily-itinerary.pdf", cc.ItineraryPDF)
	return r
}

func TestCatalogHome(t *testing.T) {
	r := catalogRouter(&fakeGeo{}, &fakeCatalog{}, fakeViewer{}, fakeRenderer{})
	env := expectStatus(t, do(t, r, http.MethodGet, "/api/v1/home", ""), http.StatusOK)
	var view services.HomepageView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatal(err)
	}
	if view.HeroImage != "https://img/hero.jpg" {
		t.Errorf("view = %+v", view)
	}

	r = catalogRouter(&fakeGeo{}, &fakeCatalog{}, fakeViewer{err: stderrors.New("redis down")}, fakeRenderer{})
	expectStatus(t, do(t, r, http.MethodGet, "/api/v1/home", ""), http.StatusInternalServerError)
}

func TestCatalogListDepths(t *testing.T) {
	geo := &fakeGeo{}
	cat := &fakeCatalog{}
	r := catalogRouter(geo, cat, fakeViewer{}, fakeRenderer{})

	expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages", ""), http.StatusOK)
	if cat.chain != nil || len(geo.calls) != 0 {
		t.Errorf("unscoped list resolved geography: %v", geo.calls)
	}

	env := expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna", ""), http.StatusOK)
	if cat.chain == nil || cat.chain.City == nil || cat.chain.City.Slug != "semporna" {
		t.Fatalf("chain = %+v", cat.chain)
	}
	var view struct {
		Continent *models.Continent `json:"continent"`
		City      *models.City      `json:"city"`
		Packages  []models.Package  `json:"packages"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatal(err)
	}
	if view.Continent == nil || view.City == nil || len(view.Packages) != 1 {
		t.Errorf("view = %+v", view)
	}

	expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia", ""), http.StatusOK)
	if got := geo.calls[len(geo.calls)-1]; got != [3]string{"asia", "malaysia", ""} {
		t.Errorf("resolve args = %v", got)
	}

	env = expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/europe", ""), http.StatusNotFound)
	if env.Mess != "Continent not found" {
		t.Errorf("mess = %q", env.Mess)
	}
}

func TestCatalogDetail(t *testing.T) {
	r := catalogRouter(&fakeGeo{}, &fakeCatalog{}, fakeViewer{}, fakeRenderer{})

	env := expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna/sipadan", ""), http.StatusOK)
	var view struct {
		Package *models.Package `json:"package"`
		City    *models.City    `json:"city"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatal(err)
	}
	if view.Package == nil || view.Package.ID != 7 || view.City == nil {
		t.Errorf("view = %+v", view)
	}

	expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna/mabul", ""), http.StatusNotFound)
}

func TestCatalogItineraryPDF(t *testing.T) {
	r := catalogRouter(&fakeGeo{}, &fakeCatalog{}, fakeViewer{}, fakeRenderer{})

	w := do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna/sipadan/daily-itinerary.pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="sipadan_daily_itinerary.pdf"` {
		t.Errorf("disposition = %q", cd)
	}
	if w.Body.String() != "%PDF-1.3 sipadan" {
		t.Errorf("body = %q", w.Body.String())
	}

	expectStatus(t, do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna/mabul/daily-itinerary.pdf", ""), http.StatusNotFound)

	r = catalogRouter(&fakeGeo{}, &fakeCatalog{}, fakeViewer{}, fakeRenderer{err: stderrors.New("font")})
	w = do(t, r, http.MethodGet, "/api/v1/packages/asia/malaysia/semporna/sipadan/daily-itinerary.pdf", "")
	env := expectStatus(t, w, http.StatusInternalServerError)
	if env.Mess != "Could not generate the itinerary PDF" || w.Header().Get("Content-Disposition") != "" {
		t.Errorf("env = %+v", env)
	}
}
