package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	perrors "github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db         *sql.DB
	usrSvc     user.Service
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose command (up, down, status, ...) on the embedded migrations")
	_, _ = fmt.Fprintln(cli.out, "  adduser -id ID -name NAME -email EMAIL -role ROLE [-department DEPT] - create a portal user")
	_, _ = fmt.Fprintln(cli.out, "  resetpassword -email EMAIL - reset a user's password")
}

// printErr writes err to w, one line per invalid field.
func (cli *commandLine) printErr(w io.Writer, err error) {
	switch e := perrors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			_, _ = fmt.Fprintf(w, "%s: %s\n", fe.Field(), fe.Translate(cli.translator))
		}
	case *core.ValidationError:
		for _, fe := range e.Fields {
			_, _ = fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Error)
		}
		if len(e.Fields) == 0 {
			_, _ = fmt.Fprintf(w, "error: %v\n", e)
		}
	default:
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	_, _ = fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	_, _ = fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserID := addUserCmd.String("id", "", "Roll number for students, employee id otherwise.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's campus email.")
	addUserRole := addUserCmd.String("role", "", "One of student, teaching-staff, non-teaching-staff, maintenance-head.")
	addUserDept := addUserCmd.String("department", "", "The user's department.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserID == "" || *addUserEmail == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(user.NewUser{
			ID:              *addUserID,
			Name:            *addUserName,
			Email:           *addUserEmail,
			Role:            *addUserRole,
			Department:      *addUserDept,
			Password:        pwd,
			PasswordConfirm: pwd,
		})

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)

	default:
		cli.printUsage()
		return errHelp
	}
}
