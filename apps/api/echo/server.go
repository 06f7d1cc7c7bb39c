package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/kat-co/vala"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		UserSvc        user.Service
		MaintenanceSvc *maintenance.Service
		ClassroomSvc   *classroom.Service
		StadiumSvc     *stadium.Service
		DirectorySvc   *directory.Service
		Workflow       *workflow.Engine
		Validate       *validator.Validate
		Translator     ut.Translator
		Gatherer       prometheus.Gatherer // nil disables /metrics
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	vala.BeginValidation().Validate(
		vala.IsNotNil(deps.Conf, "Conf"),
		vala.IsNotNil(deps.Logger, "Logger"),
		vala.IsNotNil(deps.UserSvc, "UserSvc"),
		vala.IsNotNil(deps.MaintenanceSvc, "MaintenanceSvc"),
		vala.IsNotNil(deps.ClassroomSvc, "ClassroomSvc"),
		vala.IsNotNil(deps.StadiumSvc, "StadiumSvc"),
		vala.IsNotNil(deps.DirectorySvc, "DirectorySvc"),
		vala.IsNotNil(deps.Workflow, "Workflow"),
		vala.IsNotNil(deps.Validate, "Validate"),
		vala.IsNotNil(deps.Translator, "Translator"),
	).CheckAndPanic()

	s := &server{
		ServerDeps: deps,
		app:        echo.New(),
		errors:     make(chan error, 1),
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.Conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.Conf.Debug || s.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.Logger, s.Translator, s.signalShutdown)
	s.app.Debug = s.Conf.Debug

	s.app.GET("/", s.home)
	if s.Gatherer != nil {
		s.app.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(jwtConfig(s.Conf))

	registerUserAPI(v1, jwt, s.Conf, s.UserSvc, s.Validate)
	registerMaintenanceAPI(v1, jwt, s.MaintenanceSvc, s.Workflow, s.Validate)
	registerClassroomAPI(v1, jwt, s.ClassroomSvc, s.Workflow, s.Validate)
	registerStadiumAPI(v1, jwt, s.StadiumSvc, s.Validate)
	registerDirectoryAPI(v1, jwt, s.DirectorySvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.Conf.AppName+" API!")
}
