package main

import (
	"context"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	pc := user.PasswordChange{Email: email, Password: pwd, PasswordConfirm: pwd}
	if err := pc.Validate(cli.validate); err != nil {
		return err
	}
	return cli.usrSvc.ResetPassword(context.Background(), pc.Email, pc.Password)
}
