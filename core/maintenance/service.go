package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

type (
	// Repository holds the complaints and bookings served to the dashboards.
	Repository interface {
		CreateComplaint(ctx context.Context, c Complaint) (Complaint, error)
		GetComplaint(ctx context.Context, id string) (Complaint, error)
		QueryComplaints(ctx context.Context) ([]Complaint, error)
		// UpdateComplaint applies fn atomically; nothing is saved when fn fails.
		UpdateComplaint(ctx context.Context, id string, fn func(*Complaint) error) (Complaint, error)
		DeleteComplaint(ctx context.Context, id string) error

		CreateBooking(ctx context.Context, b Booking) (Booking, error)
		GetBooking(ctx context.Context, id string) (Booking, error)
		QueryBookings(ctx context.Context) ([]Booking, error)
		UpdateBooking(ctx context.Context, id string, fn func(*Booking) error) (Booking, error)
		DeleteBooking(ctx context.Context, id string) error
	}

	// Recorder is the persistence collaborator complaints and bookings are also submitted to.
	Recorder interface {
		InsertComplaint(ctx context.Context, c Complaint) error
		InsertBooking(ctx context.Context, b Booking) error
	}

	Service struct {
		repo     Repository
		recorder Recorder
		logger   core.Logger
		metrics  core.Metrics
	}
)

var (
	complaintFields = search.Fields[Complaint]{
		Text:     func(c Complaint) []string { return []string{c.StudentName, c.StudentID, c.Location, c.Description} },
		Category: func(c Complaint) string { return string(c.Category) },
		Status:   func(c Complaint) string { return c.Status },
	}
	bookingFields = search.Fields[Booking]{
		Text:     func(b Booking) []string { return []string{b.EventName, b.BookedBy} },
		Category: func(b Booking) string { return string(b.Purpose) },
		Status:   func(b Booking) string { return b.Status },
	}
)

func NewService(repo Repository, recorder Recorder, logger core.Logger, metrics core.Metrics) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(repo, "repo"),
		vala.IsNotNil(recorder, "recorder"),
		vala.IsNotNil(logger, "logger"),
		vala.IsNotNil(metrics, "metrics"),
	).CheckAndPanic()

	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		metrics:  metrics,
	}
}

// record submits to the persistence collaborator. Its failure never fails the submission:
// the record is then kept locally only (demo mode).
func (svc *Service) record(op string, insert func() error) {
	if err := insert(); err != nil {
		if core.IsBackendUnavailable(err) {
			svc.logger.Warn(fmt.Sprintf("%s: backend unavailable, running in demo mode", op))
		} else {
			svc.logger.Error(fmt.Sprintf("%s: %v", op, err), err)
		}
		svc.metrics.DemoFallback(op)
	}
}

// SubmitComplaint registers a pending complaint. nc must be validated.
func (svc *Service) SubmitComplaint(ctx context.Context, nc NewComplaint) (Complaint, error) {
	c := Complaint{
		ID:             uuid.New().String(),
		StudentName:    nc.StudentName,
		StudentID:      nc.StudentID,
		Location:       nc.Location,
		Category:       nc.Category,
		Description:    nc.Description,
		Priority:       nc.Priority,
		Status:         workflow.StatusPending,
		RegisteredDate: core.Today(),
		RegisteredBy:   nc.RegisteredBy,
	}
	svc.record("insertComplaint", func() error { return svc.recorder.InsertComplaint(ctx, c) })

	c, err := svc.repo.CreateComplaint(ctx, c)
	if err != nil {
		return Complaint{}, errors.Wrap(err, "creating complaint")
	}
	return c, nil
}

// RequestBooking registers a pending booking. nb must be validated.
func (svc *Service) RequestBooking(ctx context.Context, nb NewBooking) (Booking, error) {
	b := Booking{
		ID:            uuid.New().String(),
		HallID:        nb.HallID,
		BookedBy:      nb.BookedBy,
		BookedByID:    nb.BookedByID,
		Purpose:       nb.Purpose,
		EventName:     nb.EventName,
		Date:          nb.Date,
		StartTime:     nb.StartTime,
		EndTime:       nb.EndTime,
		Attendees:     nb.Attendees,
		Requirements:  nb.Requirements,
		Status:        workflow.StatusPending,
		RequestedDate: core.Today(),
	}
	if b.Requirements == nil {
		b.Requirements = []string{}
	}
	svc.record("insertBooking", func() error { return svc.recorder.InsertBooking(ctx, b) })

	b, err := svc.repo.CreateBooking(ctx, b)
	if err != nil {
		return Booking{}, errors.Wrap(err, "creating booking")
	}
	return b, nil
}

func (svc *Service) Complaints(ctx context.Context, q search.Query) ([]Complaint, error) {
	all, err := svc.repo.QueryComplaints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying complaints")
	}
	return search.Filter(all, q, complaintFields), nil
}

func (svc *Service) Bookings(ctx context.Context, q search.Query) ([]Booking, error) {
	all, err := svc.repo.QueryBookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying bookings")
	}
	return search.Filter(all, q, bookingFields), nil
}

func (svc *Service) DeleteComplaint(ctx context.Context, id string) error {
	return svc.repo.DeleteComplaint(ctx, id)
}

func (svc *Service) DeleteBooking(ctx context.Context, id string) error {
	return svc.repo.DeleteBooking(ctx, id)
}

// TransitionComplaint moves a complaint to target. The assignee is stored when work starts; resolving stamps the date.
func (svc *Service) TransitionComplaint(ctx context.Context, id, target string, extra workflow.Extra) (Complaint, string, error) {
	var from string
	c, err := svc.repo.UpdateComplaint(ctx, id, func(c *Complaint) error {
		from = c.Status
		noop, err := workflow.ComplaintTable.Check(from, target, extra)
		if err != nil || noop {
			return err
		}
		c.Status = target
		if target == workflow.StatusInProgress {
			c.AssignedTo = core.CleanString(extra.Assignee)
		}
		if target == workflow.StatusResolved {
			c.ResolvedDate = core.Today()
		}
		return nil
	})
	if err != nil {
		return Complaint{}, from, err
	}
	return c, from, nil
}

// TransitionBooking approves or rejects a booking. Notes are only kept on approval.
func (svc *Service) TransitionBooking(ctx context.Context, id, target string, extra workflow.Extra) (Booking, string, error) {
	var from string
	b, err := svc.repo.UpdateBooking(ctx, id, func(b *Booking) error {
		from = b.Status
		noop, err := workflow.BookingTable.Check(from, target, extra)
		if err != nil || noop {
			return err
		}
		b.Status = target
		if notes := core.CleanString(extra.Notes); notes != "" && target == workflow.StatusApproved {
			b.Notes = notes
		}
		return nil
	})
	if err != nil {
		return Booking{}, from, err
	}
	return b, from, nil
}

func (svc *Service) ComplaintApplier() workflow.Applier {
	return workflow.ApplierFunc(func(ctx context.Context, id, target string, extra workflow.Extra) (interface{}, string, error) {
		return svc.TransitionComplaint(ctx, id, target, extra)
	})
}

func (svc *Service) BookingApplier() workflow.Applier {
	return workflow.ApplierFunc(func(ctx context.Context, id, target string, extra workflow.Extra) (interface{}, string, error) {
		return svc.TransitionBooking(ctx, id, target, extra)
	})
}

func (svc *Service) Summary(ctx context.Context) (Summary, error) {
	complaints, err := svc.repo.QueryComplaints(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying complaints")
	}
	bookings, err := svc.repo.QueryBookings(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying bookings")
	}

	var sum Summary
	today := core.Today()
	for _, c := range complaints {
		if c.Status == workflow.StatusPending {
			sum.PendingComplaints++
		}
		if c.Priority == PriorityHigh && c.Status != workflow.StatusResolved {
			sum.HighPriority++
		}
		if c.ResolvedDate == today {
			sum.ResolvedToday++
		}
	}
	for _, b := range bookings {
		if b.Status == workflow.StatusPending {
			sum.PendingBookings++
		}
	}
	return sum, nil
}
