package testutil

import (
	"io"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	logsvc "github.com/jyvarssudha/Smartamenitiescampusapp/services/logger"
)

// NewConfig returns the test configuration.
func NewConfig() *core.Config {
	return core.NewTestConfig()
}

// NewLogger returns a silent logger with Rollbar disabled.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "TEST : ", 0), NewConfig())
	logger.Enable(false)
	return logger
}

// NewValidator returns a validator set up with the app's custom tags.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator, NewConfig().Auth)
	return validate, translator
}

// FreezeTime pins core.NowFunc to t and returns a func restoring it.
func FreezeTime(t time.Time) (restore func()) {
	core.NowFunc = func() time.Time { return t }
	return func() { core.NowFunc = time.Now }
}
