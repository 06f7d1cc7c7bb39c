package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

type maintenanceApi struct {
	svc      *maintenance.Service
	engine   *workflow.Engine
	validate *validator.Validate
}

func registerMaintenanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *maintenance.Service, engine *workflow.Engine, validate *validator.Validate) {
	api := maintenanceApi{
		svc:      svc,
		engine:   engine,
		validate: validate,
	}
	head := roleMiddleware(user.RoleMaintenanceHead)

	cg := g.Group("/complaints", jwt)
	cg.GET("", api.queryComplaints)
	cg.POST("", api.submitComplaint)
	cg.DELETE("/:id", api.destroyComplaint, head)
	cg.POST("/:id/transition", api.transition(workflow.KindComplaint), head)

	bg := g.Group("/bookings", jwt)
	bg.GET("", api.queryBookings)
	bg.POST("", api.requestBooking, roleMiddleware(user.RoleTeachingStaff, user.RoleNonTeachingStaff, user.RoleMaintenanceHead))
	bg.DELETE("/:id", api.destroyBooking, head)
	bg.POST("/:id/transition", api.transition(workflow.KindBooking), head)

	g.GET("/maintenance/summary", api.summary, jwt, head)
}

func (api *maintenanceApi) queryComplaints(ctx echo.Context) error {
	complaints, err := api.svc.Complaints(ctx.Request().Context(), bindQuery(ctx))
	if err != nil {
		return errors.Wrap(err, "querying complaints")
	}
	return ctx.JSON(http.StatusOK, complaints)
}

// submitComplaint registers a complaint. Students report as themselves through the app;
// the maintenance head registers in-person complaints on behalf of the student.
func (api *maintenanceApi) submitComplaint(ctx echo.Context) error {
	var data maintenance.NewComplaint
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComplaint")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if usr.IsStudent() {
		data.StudentName = usr.Name
		data.StudentID = usr.ID
		data.RegisteredBy = maintenance.OriginApp
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	c, err := api.svc.SubmitComplaint(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting complaint")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *maintenanceApi) destroyComplaint(ctx echo.Context) error {
	if err := api.svc.DeleteComplaint(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting complaint")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *maintenanceApi) queryBookings(ctx echo.Context) error {
	bookings, err := api.svc.Bookings(ctx.Request().Context(), bindQuery(ctx))
	if err != nil {
		return errors.Wrap(err, "querying bookings")
	}
	return ctx.JSON(http.StatusOK, bookings)
}

func (api *maintenanceApi) requestBooking(ctx echo.Context) error {
	var data maintenance.NewBooking
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBooking")
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if data.BookedBy == "" {
		data.BookedBy = usr.Name
	}
	if data.BookedByID == "" {
		data.BookedByID = usr.ID
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	b, err := api.svc.RequestBooking(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "requesting booking")
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api *maintenanceApi) destroyBooking(ctx echo.Context) error {
	if err := api.svc.DeleteBooking(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting booking")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *maintenanceApi) transition(kind workflow.Kind) echo.HandlerFunc {
	return applyTransition(api.engine, kind)
}

func (api *maintenanceApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summary(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing summary")
	}
	return ctx.JSON(http.StatusOK, sum)
}

// applyTransition serves `POST /<records>/:id/transition` for kind.
func applyTransition(engine *workflow.Engine, kind workflow.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var data TransitionRequest
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to TransitionRequest")
		}
		rec, err := engine.ApplyTransition(ctx.Request().Context(), kind, ctx.Param("id"), data.Status, workflow.Extra{
			Assignee: data.Assignee,
			Notes:    data.Notes,
		})
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, rec)
	}
}
