package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
)

type directoryApi struct {
	svc *directory.Service
}

func registerDirectoryAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *directory.Service) {
	api := directoryApi{svc: svc}

	g.GET("/facilities", api.queryFacilities, jwt)
	g.GET("/faculty", api.queryFaculty, jwt)
	g.GET("/directory", api.queryDirectory, jwt)
	g.GET("/subjects", api.querySubjects, jwt)
	g.GET("/seminar-halls", api.querySeminarHalls, jwt)
}

func (api *directoryApi) queryFacilities(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Facilities(bindQuery(ctx)))
}

func (api *directoryApi) queryFaculty(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Faculty(bindQuery(ctx)))
}

func (api *directoryApi) queryDirectory(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Directory(bindQuery(ctx)))
}

func (api *directoryApi) querySubjects(ctx echo.Context) error {
	subjects, err := api.svc.Subjects(ctx.Request().Context(), ctx.QueryParam(departmentParam))
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api *directoryApi) querySeminarHalls(ctx echo.Context) error {
	halls, err := api.svc.SeminarHalls(ctx.Request().Context(), ctx.QueryParam(departmentParam))
	if err != nil {
		return errors.Wrap(err, "querying seminar halls")
	}
	return ctx.JSON(http.StatusOK, halls)
}
