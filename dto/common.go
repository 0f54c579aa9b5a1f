package dto

import "travelcms/services"

// ListParams are the query parameters shared by admin list endpoints
type ListParams struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Search   string `form:"q"`
	IsActive *bool  `form:"isActive"`
}

func (p ListParams) Query() services.ListQuery {
	return services.ListQuery{
		Page:     p.Page,
		Limit:    p.Limit,
		Search:   p.Search,
		IsActive: p.IsActive,
	}.Normalize()
}

// StatusRequest toggles is_active
type StatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// IDsRequest carries a batch of ids
type IDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
