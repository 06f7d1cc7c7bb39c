package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
)

// list view query params
const (
	searchParam     = "search"
	categoryParam   = "category"
	statusParam     = "status"
	departmentParam = "department"
)

func bindQuery(ctx echo.Context) search.Query {
	q := search.Query{
		Text:     ctx.QueryParam(searchParam),
		Category: ctx.QueryParam(categoryParam),
		Status:   ctx.QueryParam(statusParam),
	}
	q.Clean()
	return q
}

type (
	SuccessResponse struct {
		Success string `json:"success"`
	}

	// TransitionRequest moves a moderated record to Status.
	TransitionRequest struct {
		Status   string `json:"status"`
		Assignee string `json:"assignee"`
		Notes    string `json:"notes"`
	}
)
