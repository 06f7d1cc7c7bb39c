package user

import (
	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// NewServiceMock returns a Service issuing `code` for every password reset request.
func NewServiceMock(backend Backend, mailSvc core.EmailService, conf *core.Config, logger core.Logger, metrics core.Metrics, code string) Service {
	svc := newService(backend, mailSvc, conf, logger, metrics)
	svc.codeFunc = func() (string, error) { return code, nil }
	return svc
}
