package main

import (
	"context"
	"database/sql"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	echoapi "github.com/jyvarssudha/Smartamenitiescampusapp/apps/api/echo"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
	emailsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/email"
	logsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/logger"
	metricsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/metrics"
	membucket "github.com/jyvarssudha/Smartamenitiescampusapp/storage/bucket/memory"
	pgbucket "github.com/jyvarssudha/Smartamenitiescampusapp/storage/bucket/postgres"
	redisbucket "github.com/jyvarssudha/Smartamenitiescampusapp/storage/bucket/redis"
	"github.com/jyvarssudha/Smartamenitiescampusapp/storage/database"
	inmemdb "github.com/jyvarssudha/Smartamenitiescampusapp/storage/database/inmem"
	sqlxrepos "github.com/jyvarssudha/Smartamenitiescampusapp/storage/database/sqlx"
)

// backends bundles the persistence collaborators of the services.
type backends struct {
	users    user.Backend
	recorder maintenance.Recorder
	catalog  directory.Catalog
}

// demoBackends is used when no database is configured.
func demoBackends() backends {
	unavailable := &sqlxrepos.Unavailable{}
	return backends{users: unavailable, recorder: unavailable, catalog: unavailable}
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	metrics := metricsvc.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	// set up the persistence collaborator; without it the portal runs in demo mode
	var db *sql.DB
	if conf.Database.Enabled {
		var err error
		if db, err = setUpDB(conf); err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Fatal("Failed to close", err)
			}
		}()
	} else {
		logger.Warn("database disabled: running in demo mode")
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator, conf.Auth)
	user.InitValidators(validate, translator)

	core.ParseEmailTemplates(logger, conf)

	user.LoadCommonPasswords(logger)

	deps, err := newServerDeps(conf, logger, metrics, db, validate, translator)
	if err != nil {
		logger.Fatal(fmt.Sprintf("wiring services: %v", err), err)
	}
	deps.Gatherer = prometheus.DefaultGatherer

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("publication").Set(conf.Publication.Backend)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(deps)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// newServerDeps wires the services. A nil db runs the portal in demo mode.
func newServerDeps(
	conf *core.Config,
	logger core.Logger,
	metrics core.Metrics,
	db *sql.DB,
	validate *validator.Validate,
	translator ut.Translator,
) (echoapi.ServerDeps, error) {
	bk := demoBackends()
	if db != nil {
		backend := sqlxrepos.NewBackend(db)
		bk = backends{users: backend, recorder: backend, catalog: backend}
	}

	// records owned by the portal itself
	appDB := inmemdb.Open()
	if err := appDB.Seed(); err != nil {
		return echoapi.ServerDeps{}, errors.Wrap(err, "seeding records")
	}

	store, err := newBucketStore(conf, db, logger)
	if err != nil {
		return echoapi.ServerDeps{}, errors.Wrap(err, "setting up publication store")
	}

	var mailSvc core.EmailService
	if conf.Debug || conf.TestMode {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(bk.users, mailSvc, conf, logger, metrics)
	maintenanceSvc := maintenance.NewService(inmemdb.NewMaintenanceRepository(appDB), bk.recorder, logger, metrics)
	classroomSvc := classroom.NewService(inmemdb.NewClassroomRepository(appDB))
	stadiumSvc := stadium.NewService(stadium.NewBridge(store, logger, metrics))
	directorySvc := directory.NewService(bk.catalog, logger)

	engine := workflow.NewEngine(logger, metrics)
	engine.Register(workflow.KindComplaint, maintenanceSvc.ComplaintApplier())
	engine.Register(workflow.KindBooking, maintenanceSvc.BookingApplier())
	engine.Register(workflow.KindRequest, classroomSvc.RequestApplier())

	return echoapi.ServerDeps{
		Conf:           conf,
		Logger:         logger,
		UserSvc:        usrSvc,
		MaintenanceSvc: maintenanceSvc,
		ClassroomSvc:   classroomSvc,
		StadiumSvc:     stadiumSvc,
		DirectorySvc:   directorySvc,
		Workflow:       engine,
		Validate:       validate,
		Translator:     translator,
	}, nil
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// newBucketStore returns the shared layer the stadium staff publish to.
func newBucketStore(conf *core.Config, db *sql.DB, logger core.Logger) (stadium.BucketStore, error) {
	switch conf.Publication.Backend {
	case core.PublicationRedis:
		store := redisbucket.NewStore(redisbucket.NewClient(conf.Redis.Address), "stadium")
		if !store.Healthy(context.Background()) {
			logger.Warn(fmt.Sprintf("redis at %s is unreachable; publications will fail until it is back", conf.Redis.Address))
		}
		return store, nil
	case core.PublicationPostgres:
		if db == nil {
			return nil, fmt.Errorf("publication backend %q needs the database", conf.Publication.Backend)
		}
		return pgbucket.NewStore(db), nil
	default:
		return membucket.NewStore(), nil
	}
}
