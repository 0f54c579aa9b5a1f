package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelcms/dto"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"
)

// Store is the CRUD surface of services.Repository
type Store[T any] interface {
	List(ctx context.Context, q services.ListQuery, scopes ...services.Scope) ([]T, int64, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, mutate func(*T) error) (*T, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

// Input is a request body that can be written onto a model
type Input[T any] interface {
	Apply(*T)
}

// Parent nests a resource under another one, e.g. periods under a package
type Parent[T any] struct {
	// Param is the route parameter carrying the parent id
	Param string
	// Column is the foreign key column on T
	Column string
	Exists func(ctx context.Context, id uint) error
	Assign func(item *T, parentID uint)
}

type ResourceOptions[T any] struct {
	Store    Store[T]
	Logger   logger.Logger
	NewItem  func() *T
	NewInput func() Input[T]
	Validate func(*T) error
	Parent   *Parent[T]
	// Filters adds per-resource list filters read from the query string
	Filters func(c *gin.Context) []services.Scope
	// Changed runs after every successful write
	Changed func(ctx context.Context)
}

// ResourceController serves list, detail, create, update, status and delete for one model
type ResourceController[T any] struct {
	opts ResourceOptions[T]
}

func NewResourceController[T any](opts ResourceOptions[T]) *ResourceController[T] {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.NewItem == nil {
		opts.NewItem = func() *T { return new(T) }
	}
	return &ResourceController[T]{opts: opts}
}

func (rc *ResourceController[T]) changed(ctx context.Context) {
	if rc.opts.Changed != nil {
		rc.opts.Changed(ctx)
	}
}

// parentID resolves the parent route param, answering 404 when the parent is missing
func (rc *ResourceController[T]) parentID(c *gin.Context) (uint, bool) {
	p := rc.opts.Parent
	id, ok := parseID(c, p.Param)
	if !ok {
		return 0, false
	}
	if err := p.Exists(c.Request.Context(), id); err != nil {
		handleError(c, rc.opts.Logger, err)
		return 0, false
	}
	return id, true
}

func (rc *ResourceController[T]) List(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	q := params.Query()

	var scopes []services.Scope
	if rc.opts.Parent != nil {
		pid, ok := rc.parentID(c)
		if !ok {
			return
		}
		column := rc.opts.Parent.Column
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where(column+" = ?", pid) })
	}
	if rc.opts.Filters != nil {
		scopes = append(scopes, rc.opts.Filters(c)...)
	}

	items, total, err := rc.opts.Store.List(c.Request.Context(), q, scopes...)
	if err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	response.SuccessWithPagination(c, items, q.Page, q.Limit, int(total))
}

func (rc *ResourceController[T]) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := rc.opts.Store.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	response.Success(c, item)
}

func (rc *ResourceController[T]) Create(c *gin.Context) {
	var pid uint
	if rc.opts.Parent != nil {
		var ok bool
		if pid, ok = rc.parentID(c); !ok {
			return
		}
	}

	in := rc.opts.NewInput()
	if err := c.ShouldBindJSON(in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item := rc.opts.NewItem()
	in.Apply(item)
	if rc.opts.Parent != nil {
		rc.opts.Parent.Assign(item, pid)
	}
	if rc.opts.Validate != nil {
		if err := rc.opts.Validate(item); err != nil {
			handleError(c, rc.opts.Logger, err)
			return
		}
	}

	if err := rc.opts.Store.Create(c.Request.Context(), item); err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	rc.changed(c.Request.Context())
	response.Created(c, item)
}

func (rc *ResourceController[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in := rc.opts.NewInput()
	if err := c.ShouldBindJSON(in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := rc.opts.Store.Update(c.Request.Context(), id, func(item *T) error {
		in.Apply(item)
		if rc.opts.Validate != nil {
			return rc.opts.Validate(item)
		}
		return nil
	})
	if err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	rc.changed(c.Request.Context())
	response.Success(c, item)
}

func (rc *ResourceController[T]) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := rc.opts.Store.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	rc.changed(c.Request.Context())
	response.Success(c, gin.H{"id": id, "isActive": *req.IsActive})
}

func (rc *ResourceController[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.opts.Store.Delete(c.Request.Context(), id); err != nil {
		handleError(c, rc.opts.Logger, err)
		return
	}
	rc.changed(c.Request.Context())
	response.SuccessWithMessage(c, "Deleted", nil)
}

// Register mounts the item routes on base, e.g. /continents and /continents/:id
func (rc *ResourceController[T]) Register(g *gin.RouterGroup, base string) {
	if rc.opts.Parent == nil {
		g.GET(base, rc.List)
		g.POST(base, rc.Create)
	}
	g.GET(base+"/:id", rc.Detail)
	g.PUT(base+"/:id", rc.Update)
	g.PATCH(base+"/:id/status", rc.SetStatus)
	g.DELETE(base+"/:id", rc.Delete)
}

// RegisterNested mounts list and create under the parent path, e.g. /packages/:id/periods
func (rc *ResourceController[T]) RegisterNested(g *gin.RouterGroup, parentPath, child string) {
	g.GET(parentPath+"/"+child, rc.List)
	g.POST(parentPath+"/"+child, rc.Create)
}
