package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

type stadiumApi struct {
	svc      *stadium.Service
	validate *validator.Validate
}

func registerStadiumAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *stadium.Service, validate *validator.Validate) {
	api := stadiumApi{
		svc:      svc,
		validate: validate,
	}
	staff := roleMiddleware(user.RoleNonTeachingStaff)

	sg := g.Group("/stadium", jwt)

	// PT staff dashboard
	sg.GET("/tournaments", api.staffView(stadium.KindTournaments))
	sg.POST("/tournaments", api.addTournament, staff)
	sg.DELETE("/tournaments/:id", api.deleteTournament, staff)
	sg.GET("/bulletin", api.staffView(stadium.KindBulletin))
	sg.POST("/bulletin", api.addBulletinEntry, staff)
	sg.DELETE("/bulletin/:id", api.deleteBulletinEntry, staff)
	sg.GET("/equipment", api.staffView(stadium.KindEquipment))
	sg.PUT("/equipment/:sport", api.updateEquipment, staff)

	// student view, re-read from the shared layer on every request
	stg := sg.Group("/student")
	stg.GET("/tournaments", api.studentView(stadium.KindTournaments))
	stg.GET("/bulletin", api.studentView(stadium.KindBulletin))
	stg.GET("/equipment", api.studentView(stadium.KindEquipment))
	stg.GET("/equipment/most-available", api.mostAvailable)
	stg.GET("/quote", api.quote)
}

func (api *stadiumApi) staffView(kind stadium.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		recs, err := api.svc.Bridge().ReadStaff(ctx.Request().Context(), kind)
		if err != nil {
			return errors.Wrapf(err, "reading %s", kind)
		}
		return ctx.JSON(http.StatusOK, recs)
	}
}

func (api *stadiumApi) addTournament(ctx echo.Context) error {
	var data stadium.NewTournament
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTournament")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	t, err := api.svc.AddTournament(ctx.Request().Context(), data, usr)
	if err != nil {
		return errors.Wrap(err, "adding tournament")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *stadiumApi) deleteTournament(ctx echo.Context) error {
	if err := api.svc.DeleteTournament(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting tournament")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *stadiumApi) addBulletinEntry(ctx echo.Context) error {
	var data stadium.NewBulletinEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBulletinEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	e, err := api.svc.AddBulletinEntry(ctx.Request().Context(), data, usr)
	if err != nil {
		return errors.Wrap(err, "adding bulletin entry")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *stadiumApi) deleteBulletinEntry(ctx echo.Context) error {
	if err := api.svc.DeleteBulletinEntry(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting bulletin entry")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *stadiumApi) updateEquipment(ctx echo.Context) error {
	var data stadium.EquipmentUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EquipmentUpdate")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	stat, err := api.svc.UpdateEquipment(ctx.Request().Context(), ctx.Param("sport"), data)
	if err != nil {
		return errors.Wrap(err, "updating equipment")
	}
	return ctx.JSON(http.StatusOK, stat)
}

func (api *stadiumApi) studentView(kind stadium.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		recs, err := api.svc.Bridge().ReadForStudentView(ctx.Request().Context(), kind)
		if err != nil {
			return errors.Wrapf(err, "reading %s for students", kind)
		}
		return ctx.JSON(http.StatusOK, recs)
	}
}

func (api *stadiumApi) mostAvailable(ctx echo.Context) error {
	stat, ok, err := api.svc.Bridge().MostAvailableEquipment(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "finding most available equipment")
	}
	if !ok {
		return core.NewNotFoundError("available equipment", "")
	}
	return ctx.JSON(http.StatusOK, stat)
}

func (api *stadiumApi) quote(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"quote": stadium.QuoteOf(core.NowFunc())})
}
