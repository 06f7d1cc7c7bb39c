package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

type classroomApi struct {
	svc      *classroom.Service
	engine   *workflow.Engine
	validate *validator.Validate
}

func registerClassroomAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *classroom.Service, engine *workflow.Engine, validate *validator.Validate) {
	api := classroomApi{
		svc:      svc,
		engine:   engine,
		validate: validate,
	}
	faculty := roleMiddleware(user.RoleTeachingStaff)

	ag := g.Group("/assignments", jwt)
	ag.GET("", api.queryAssignments)
	ag.POST("", api.createAssignment, faculty)
	ag.DELETE("/:id", api.destroyAssignment, faculty)

	rg := g.Group("/requests", jwt)
	rg.GET("", api.queryRequests, roleMiddleware(user.RoleStudent, user.RoleTeachingStaff))
	rg.POST("", api.submitRequest, roleMiddleware(user.RoleStudent))
	rg.POST("/:id/transition", applyTransition(api.engine, workflow.KindRequest), faculty)

	g.GET("/classes", api.queryClasses, jwt, faculty)
}

func (api *classroomApi) queryAssignments(ctx echo.Context) error {
	assignments, err := api.svc.Assignments(ctx.Request().Context(), bindQuery(ctx))
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *classroomApi) createAssignment(ctx echo.Context) error {
	var data classroom.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	a, err := api.svc.CreateAssignment(ctx.Request().Context(), data, usr)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *classroomApi) destroyAssignment(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if err = api.svc.DeleteAssignment(ctx.Request().Context(), ctx.Param("id"), usr); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// queryRequests lists doubt session requests. Students only see their own.
func (api *classroomApi) queryRequests(ctx echo.Context) error {
	reqs, err := api.svc.Requests(ctx.Request().Context(), bindQuery(ctx))
	if err != nil {
		return errors.Wrap(err, "querying requests")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if usr.IsStudent() {
		reqs = search.Filter(reqs, search.Query{Category: usr.ID}, search.Fields[classroom.StudentRequest]{
			Category: func(r classroom.StudentRequest) string { return r.StudentID },
		})
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *classroomApi) submitRequest(ctx echo.Context) error {
	var data classroom.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	r, err := api.svc.SubmitRequest(ctx.Request().Context(), data, usr)
	if err != nil {
		return errors.Wrap(err, "submitting request")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *classroomApi) queryClasses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Classes())
}
