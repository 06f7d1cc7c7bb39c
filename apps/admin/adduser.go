package main

import (
	"context"
	"fmt"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

// addUser creates a portal user after applying the password policy.
func (cli *commandLine) addUser(nu user.NewUser) error {
	if err := nu.Validate(cli.validate); err != nil {
		return err
	}
	usr, err := cli.usrSvc.Create(context.Background(), nu)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "created %s %s (%s)\n", usr.Role, usr.ID, usr.Email)
	return nil
}
