package controllers

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"travelcms/dto"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/services"
)

type fakePackages struct {
	pkgs        map[uint]*models.Package
	created     *models.Package
	createdTags []uint
	updatedTags *[]uint
	savedDesc   string
	savedPrompt string
	filter      services.PackageFilter
}

func newFakePackages() *fakePackages {
	return &fakePackages{pkgs: map[uint]*models.Package{
		7: {ID: 7, Name: "Sipadan Liveaboard", Slug: "sipadan-liveaboard", IsActive: true},
	}}
}

func notFound() error {
	return errors.NewAppError(errors.ErrCodeNotFound, "Package not found", nil)
}

func (f *fakePackages) List(_ context.Context, filter services.PackageFilter) ([]models.Package, int64, error) {
	f.filter = filter
	out := make([]models.Package, 0, len(f.pkgs))
	for _, p := range f.pkgs {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePackages) Get(_ context.Context, id uint) (*models.Package, error) {
	if p, ok := f.pkgs[id]; ok {
		return p, nil
	}
	return nil, notFound()
}

func (f *fakePackages) Exists(ctx context.Context, id uint) error {
	_, err := f.Get(ctx, id)
	return err
}

func (f *fakePackages) Create(_ context.Context, pkg *models.Package, tagIDs []uint) (*models.Package, error) {
	pkg.ID = 8
	f.created = pkg
	f.createdTags = tagIDs
	f.pkgs[pkg.ID] = pkg
	return pkg, nil
}

func (f *fakePackages) Update(ctx context.Context, id uint, mutate func(*models.Package), tagIDs *[]uint) (*models.Package, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(p)
	f.updatedTags = tagIDs
	return p, nil
}

func (f *fakePackages) SetActive(ctx context.Context, id uint, active bool) error {
	p, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	p.IsActive = active
	return nil
}

func (f *fakePackages) SetFeatured(ctx context.Context, id uint, featured, secondary *bool) error {
	p, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	if featured != nil {
		p.IsFeatured = *featured
	}
	if secondary != nil {
		p.IsSecondaryFeatured = *secondary
	}
	return nil
}

func (f *fakePackages) Delete(ctx context.Context, id uint) error {
	if err := f.Exists(ctx, id); err != nil {
		return err
	}
	delete(f.pkgs, id)
	return nil
}

func (f *fakePackages) SaveDescription(_ context.Context, id uint, description, prompt string) error {
	f.savedDesc = description
	f.savedPrompt = prompt
	f.pkgs[id].Description = description
	return nil
}

type fakeCopier struct {
	name, slug string
	report     services.CopyReport
}

func (f *fakeCopier) Copy(_ context.Context, id uint, newName, newSlug string) (*models.Package, error) {
	if id != 7 {
		return nil, notFound()
	}
	f.name, f.slug = newName, newSlug
	return &models.Package{ID: 9, Name: "Sipadan Liveaboard (Copy)", Slug: "sipadan-liveaboard-copy"}, nil
}

func (f *fakeCopier) CopyMany(_ context.Context, ids []uint) services.CopyReport {
	return f.report
}

type fakeWriter struct {
	content string
	err     error
	prompts []string
}

func (f *fakeWriter) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.content, f.err
}

func packageRouter(pkgs *fakePackages, copier *fakeCopier, writer *fakeWriter) http.Handler {
	pc := NewPackageController(pkgs, copier, writer, nil)
	r := newRouter()
	g := r.Group("/admin")
	g.GET("/packages", pc.List)
	g.POST("/packages", pc.Create)
	g.POST("/packages/copy", pc.CopyMany)
	g.GET("/packages/:id", pc.Detail)
	g.PUT("/packages/:id", pc.Update)
	g.PATCH("/packages/:id/status", pc.SetStatus)
	g.PATCH("/packages/:id/featured", pc.SetFeatured)
	g.DELETE("/packages/:id", pc.Delete)
	g.POST("/packages/:id/copy", pc.Copy)
	g.POST("/packages/:id/generate-ai-description", pc.GenerateAIDescription)
	return r
}

func TestGenerateAIDescription(t *testing.T) {
	const path = "/admin/packages/7/generate-ai-description"

	cases := []struct {
		name     string
		method   string
		path     string
		body     string
		writer   fakeWriter
		status   int
		mess     string
		saved    bool
		asksAI   bool
		wantBody string
	}{
		{name: "unknown package", method: http.MethodPost, path: "/admin/packages/99/generate-ai-description", body: `{"ai_prompt":"x"}`, status: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: path, status: http.StatusMethodNotAllowed},
		{name: "empty body", method: http.MethodPost, path: path, status: http.StatusBadRequest, mess: "Request body is empty"},
		{name: "malformed json", method: http.MethodPost, path: path, body: `{"ai_prompt":`, status: http.StatusBadRequest},
		{name: "missing prompt", method: http.MethodPost, path: path, body: `{}`, status: http.StatusBadRequest, mess: "Please enter an AI prompt first"},
		{name: "blank prompt", method: http.MethodPost, path: path, body: `{"ai_prompt":"   "}`, status: http.StatusBadRequest, mess: "Please enter an AI prompt first"},
		{
			name: "generator error", method: http.MethodPost, path: path, body: `{"ai_prompt":"write about mantas"}`,
			writer: fakeWriter{err: errors.NewAppError(errors.ErrCodeAIFailed, "AI service returned 401", nil)},
			status: http.StatusInternalServerError, mess: "AI service returned 401", asksAI: true,
		},
		{
			name: "plain error", method: http.MethodPost, path: path, body: `{"ai_prompt":"write about mantas"}`,
			writer: fakeWriter{err: stderrors.New("dial tcp: timeout")},
			status: http.StatusInternalServerError, mess: "dial tcp: timeout", asksAI: true,
		},
		{
			name: "empty content", method: http.MethodPost, path: path, body: `{"ai_prompt":"write about mantas"}`,
			status: http.StatusInternalServerError, mess: defaultAIFailure, asksAI: true,
		},
		{
			name: "success", method: http.MethodPost, path: path, body: `{"ai_prompt":"  write about mantas "}`,
			writer: fakeWriter{content: "<p>Manta season runs March to May.</p>"},
			status: http.StatusOK, saved: true, asksAI: true, wantBody: "<p>Manta season runs March to May.</p>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkgs := newFakePackages()
			writer := tc.writer
			r := packageRouter(pkgs, &fakeCopier{}, &writer)

			env := expectStatus(t, do(t, r, tc.method, tc.path, tc.body), tc.status)
			if tc.mess != "" && env.Mess != tc.mess {
				t.Errorf("mess = %q, want %q", env.Mess, tc.mess)
			}
			if asked := len(writer.prompts) > 0; asked != tc.asksAI {
				t.Errorf("generator called = %v, want %v", asked, tc.asksAI)
			}
			if saved := pkgs.savedDesc != ""; saved != tc.saved {
				t.Errorf("saved = %v, want %v", saved, tc.saved)
			}
			if tc.saved {
				var got dto.AIDescriptionResponse
				if err := json.Unmarshal(env.Data, &got); err != nil {
					t.Fatal(err)
				}
				if got.Content != tc.wantBody || pkgs.savedPrompt != "write about mantas" {
					t.Errorf("content = %q prompt = %q", got.Content, pkgs.savedPrompt)
				}
				if writer.prompts[0] != "write about mantas" {
					t.Errorf("prompt sent = %q", writer.prompts[0])
				}
			}
		})
	}
}

func TestCopyPackage(t *testing.T) {
	copier := &fakeCopier{}
	r := packageRouter(newFakePackages(), copier, &fakeWriter{})

	env := expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/7/copy", ""), http.StatusCreated)
	var pkg models.Package
	if err := json.Unmarshal(env.Data, &pkg); err != nil {
		t.Fatal(err)
	}
	if pkg.ID != 9 || copier.name != "" || copier.slug != "" {
		t.Errorf("pkg = %+v name = %q slug = %q", pkg, copier.name, copier.slug)
	}

	expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/7/copy", `{"name":" Sipadan 2026 ","slug":"sipadan-2026"}`), http.StatusCreated)
	if copier.name != "Sipadan 2026" || copier.slug != "sipadan-2026" {
		t.Errorf("name = %q slug = %q", copier.name, copier.slug)
	}

	expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/8/copy", ""), http.StatusNotFound)
}

func TestCopyManyPackages(t *testing.T) {
	copier := &fakeCopier{}
	r := packageRouter(newFakePackages(), copier, &fakeWriter{})

	expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/copy", `{"ids":[]}`), http.StatusBadRequest)

	copier.report = services.CopyReport{Failures: []services.CopyFailure{{PackageID: 3, Error: "Package not found"}}}
	env := expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/copy", `{"ids":[3]}`), http.StatusOK)
	if env.Code != 2 || env.Mess != "No packages were copied" {
		t.Errorf("env = %+v", env)
	}

	copier.report = services.CopyReport{Copied: []models.Package{{ID: 10}, {ID: 11}}}
	env = expectStatus(t, do(t, r, http.MethodPost, "/admin/packages/copy", `{"ids":[1,2]}`), http.StatusOK)
	var body dto.BulkCopyResponse
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatal(err)
	}
	if env.Code != 1 || body.Copied != 2 || len(body.Packages) != 2 {
		t.Errorf("env = %+v body = %+v", env, body)
	}
}

func TestPackageAdminEndpoints(t *testing.T) {
	pkgs := newFakePackages()
	r := packageRouter(pkgs, &fakeCopier{}, &fakeWriter{})

	expectStatus(t, do(t, r, http.MethodPost, "/admin/packages", `{"name":"Komodo"}`), http.StatusBadRequest)
	expectStatus(t, do(t, r, http.MethodPost, "/admin/packages", `{"name":"Komodo","packageTypeId":1,"tagIds":[4,5]}`), http.StatusCreated)
	if !pkgs.created.IsActive || len(pkgs.createdTags) != 2 {
		t.Errorf("created = %+v tags = %v", pkgs.created, pkgs.createdTags)
	}

	expectStatus(t, do(t, r, http.MethodPut, "/admin/packages/7", `{"name":"Sipadan","packageTypeId":1}`), http.StatusOK)
	if pkgs.pkgs[7].Name != "Sipadan" || pkgs.updatedTags != nil {
		t.Errorf("update = %+v tags = %v", pkgs.pkgs[7], pkgs.updatedTags)
	}

	expectStatus(t, do(t, r, http.MethodPatch, "/admin/packages/7/featured", `{"isFeatured":true}`), http.StatusOK)
	if !pkgs.pkgs[7].IsFeatured || pkgs.pkgs[7].IsSecondaryFeatured {
		t.Errorf("featured = %+v", pkgs.pkgs[7])
	}

	expectStatus(t, do(t, r, http.MethodPatch, "/admin/packages/7/status", `{"isActive":false}`), http.StatusOK)
	if pkgs.pkgs[7].IsActive {
		t.Error("package still active")
	}

	env := expectStatus(t, do(t, r, http.MethodGet, "/admin/packages?cityId=4&isFeatured=true", ""), http.StatusOK)
	if env.Pagination == nil || pkgs.filter.CityID == nil || *pkgs.filter.CityID != 4 {
		t.Errorf("filter = %+v", pkgs.filter)
	}

	expectStatus(t, do(t, r, http.MethodDelete, "/admin/packages/7", ""), http.StatusOK)
	expectStatus(t, do(t, r, http.MethodGet, "/admin/packages/7", ""), http.StatusNotFound)
}
