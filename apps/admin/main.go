package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	emailsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/email"
	logsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/logger"
	"github.com/jyvarssudha/Smartamenitiescampusapp/storage/database"
	sqlxrepos "github.com/jyvarssudha/Smartamenitiescampusapp/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal("creating database", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer db.Close()
	if err = db.PingContext(context.Background()); err != nil {
		logger.Fatal("pinging database", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator, conf.Auth)
	user.InitValidators(validate, translator)
	user.LoadCommonPasswords(logger)

	backend := sqlxrepos.NewBackend(db)
	cli := commandLine{
		db:         db,
		usrSvc:     user.NewService(backend, emailsvc.NewConsoleService(conf, logger), conf, logger, &core.NopMetrics{}),
		validate:   validate,
		translator: translator,
		out:        os.Stdout,
	}
	if err = cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
			cli.printErr(os.Stderr, err)
		}
		os.Exit(1)
	}
}
