package controllers

import (
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"travelcms/dto"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"
)

// PackageStore is the admin side of services.PackageService
type PackageStore interface {
	List(ctx context.Context, f services.PackageFilter) ([]models.Package, int64, error)
	Get(ctx context.Context, id uint) (*models.Package, error)
	Exists(ctx context.Context, id uint) error
	Create(ctx context.Context, pkg *models.Package, tagIDs []uint) (*models.Package, error)
	Update(ctx context.Context, id uint, mutate func(*models.Package), tagIDs *[]uint) (*models.Package, error)
	SetActive(ctx context.Context, id uint, active bool) error
	SetFeatured(ctx context.Context, id uint, featured, secondary *bool) error
	Delete(ctx context.Context, id uint) error
	SaveDescription(ctx context.Context, id uint, description, prompt string) error
}

// PackageCopier is implemented by services.PackageCopyService
type PackageCopier interface {
	Copy(ctx context.Context, id uint, newName, newSlug string) (*models.Package, error)
	CopyMany(ctx context.Context, ids []uint) services.CopyReport
}

const defaultAIFailure = "AI content generation failed, check the API settings or try again later"

type PackageController struct {
	packages PackageStore
	copier   PackageCopier
	writer   services.DescriptionGenerator
	logger   logger.Logger
}

func NewPackageController(packages PackageStore, copier PackageCopier, writer services.DescriptionGenerator, log logger.Logger) *PackageController {
	if log == nil {
		log = logger.Nop()
	}
	return &PackageController{packages: packages, copier: copier, writer: writer, logger: log}
}

func (pc *PackageController) List(c *gin.Context) {
	var params dto.PackageListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter := params.Filter()
	pkgs, total, err := pc.packages.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.SuccessWithPagination(c, pkgs, filter.Page, filter.Limit, int(total))
}

func (pc *PackageController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pkg, err := pc.packages.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Success(c, pkg)
}

func (pc *PackageController) Create(c *gin.Context) {
	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pkg, err := pc.packages.Create(c.Request.Context(), req.Model(), req.Tags())
	if err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Created(c, pkg)
}

// Update changes the package's own columns. Nested rows are edited through their own endpoints.
func (pc *PackageController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pkg, err := pc.packages.Update(c.Request.Context(), id, req.Apply, req.TagIDs)
	if err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Success(c, pkg)
}

func (pc *PackageController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := pc.packages.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Success(c, gin.H{"id": id, "isActive": *req.IsActive})
}

func (pc *PackageController) SetFeatured(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := pc.packages.SetFeatured(c.Request.Context(), id, req.IsFeatured, req.IsSecondaryFeatured); err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Success(c, req)
}

func (pc *PackageController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := pc.packages.Delete(c.Request.Context(), id); err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.SuccessWithMessage(c, "Deleted", nil)
}

// Copy duplicates one package. The body is optional.
func (pc *PackageController) Copy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CopyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			response.BadRequest(c, err.Error())
			return
		}
	}
	pkg, err := pc.copier.Copy(c.Request.Context(), id, strings.TrimSpace(req.Name), strings.TrimSpace(req.Slug))
	if err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Created(c, pkg)
}

// CopyMany copies each selected package and reports the outcome. Nothing copied is a warning.
func (pc *PackageController) CopyMany(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	report := pc.copier.CopyMany(c.Request.Context(), req.IDs)
	body := dto.BulkCopyResponse{
		Copied:   len(report.Copied),
		Packages: report.Copied,
		Failures: report.Failures,
	}
	if body.Copied == 0 {
		response.Warning(c, "No packages were copied", body)
		return
	}
	response.SuccessWithMessage(c, "Successfully copied packages", body)
}

// GenerateAIDescription drafts the package description from an admin prompt and saves it
func (pc *PackageController) GenerateAIDescription(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := pc.packages.Exists(ctx, id); err != nil {
		handleError(c, pc.logger, err)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		response.BadRequest(c, "Request body is empty")
		return
	}
	var req dto.AIDescriptionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	prompt := ""
	if req.AIPrompt != nil {
		prompt = strings.TrimSpace(*req.AIPrompt)
	}
	if prompt == "" {
		response.BadRequest(c, "Please enter an AI prompt first")
		return
	}

	content, err := pc.writer.Generate(ctx, prompt)
	if err != nil || content == "" {
		message := defaultAIFailure
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Message != "" {
			message = appErr.Message
		} else if err != nil {
			message = err.Error()
		}
		pc.logger.Error("AI description for package %d failed: %v", id, err)
		response.ServerErrorMessage(c, message)
		return
	}
	if err := pc.packages.SaveDescription(ctx, id, content, prompt); err != nil {
		handleError(c, pc.logger, err)
		return
	}
	response.Success(c, dto.AIDescriptionResponse{Content: content})
}
