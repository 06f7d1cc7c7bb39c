package sqlxrepos

import (
	"context"
	"time"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

// Unavailable stands in for the collaborator when no database is configured.
// Every call fails with core.ErrBackendUnavailable.
type Unavailable struct{}

var (
	_ user.Backend         = (*Unavailable)(nil)
	_ maintenance.Recorder = (*Unavailable)(nil)
	_ directory.Catalog    = (*Unavailable)(nil)
)

func (*Unavailable) FindUser(context.Context, string, string, string) (user.Record, error) {
	return user.Record{}, core.ErrBackendUnavailable
}

func (*Unavailable) FindUserByEmailAndOptionalRoll(context.Context, string, string) (user.Record, error) {
	return user.Record{}, core.ErrBackendUnavailable
}

func (*Unavailable) InsertOTP(context.Context, string, string, time.Time) error {
	return core.ErrBackendUnavailable
}

func (*Unavailable) FindValidOTP(context.Context, string, string, time.Time) (user.OTP, error) {
	return user.OTP{}, core.ErrBackendUnavailable
}

func (*Unavailable) MarkOTPUsed(context.Context, int64) error { return core.ErrBackendUnavailable }

func (*Unavailable) CreateUser(context.Context, user.Record) (user.Record, error) {
	return user.Record{}, core.ErrBackendUnavailable
}

func (*Unavailable) UpdatePassword(context.Context, string, string) error {
	return core.ErrBackendUnavailable
}

func (*Unavailable) InsertComplaint(context.Context, maintenance.Complaint) error {
	return core.ErrBackendUnavailable
}

func (*Unavailable) InsertBooking(context.Context, maintenance.Booking) error {
	return core.ErrBackendUnavailable
}

func (*Unavailable) Subjects(context.Context, string) ([]directory.Subject, error) {
	return nil, core.ErrBackendUnavailable
}

func (*Unavailable) SeminarHalls(context.Context, string) ([]directory.SeminarHall, error) {
	return nil, core.ErrBackendUnavailable
}
