package classroom

import (
	"context"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

var errNotAssignmentOwner = "only the faculty who assigned it can delete this assignment"

type (
	Repository interface {
		CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
		GetAssignment(ctx context.Context, id string) (Assignment, error)
		QueryAssignments(ctx context.Context) ([]Assignment, error)
		DeleteAssignment(ctx context.Context, id string) error

		CreateRequest(ctx context.Context, r StudentRequest) (StudentRequest, error)
		QueryRequests(ctx context.Context) ([]StudentRequest, error)
		// UpdateRequest applies fn atomically; nothing is saved when fn fails.
		UpdateRequest(ctx context.Context, id string, fn func(*StudentRequest) error) (StudentRequest, error)
	}

	Service struct {
		repo Repository
	}
)

var (
	assignmentFields = search.Fields[Assignment]{
		Text:     func(a Assignment) []string { return []string{a.Title, a.Subject, a.Description} },
		Category: func(a Assignment) string { return a.ClassName },
		Status:   func(a Assignment) string { return a.Status },
	}
	requestFields = search.Fields[StudentRequest]{
		Text:     func(r StudentRequest) []string { return []string{r.StudentName, r.StudentID, r.Subject, r.Description} },
		Category: func(r StudentRequest) string { return r.Subject },
		Status:   func(r StudentRequest) string { return r.Status },
	}
)

func NewService(repo Repository) *Service {
	vala.BeginValidation().Validate(vala.IsNotNil(repo, "repo")).CheckAndPanic()
	return &Service{repo: repo}
}

// CreateAssignment stores a pending assignment issued by usr. na must be validated.
func (svc *Service) CreateAssignment(ctx context.Context, na NewAssignment, usr user.User) (Assignment, error) {
	a, err := svc.repo.CreateAssignment(ctx, Assignment{
		ID:             uuid.New().String(),
		Title:          na.Title,
		Subject:        na.Subject,
		Description:    na.Description,
		AssignedDate:   core.Today(),
		DueDate:        na.DueDate,
		Status:         AssignmentPending,
		Priority:       na.Priority,
		AssignedBy:     usr.Name,
		MaxMarks:       na.MaxMarks,
		SubmissionType: na.SubmissionType,
		ClassName:      na.ClassName,
	})
	if err != nil {
		return Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return a, nil
}

func (svc *Service) Assignments(ctx context.Context, q search.Query) ([]Assignment, error) {
	all, err := svc.repo.QueryAssignments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	return search.Filter(all, q, assignmentFields), nil
}

// DeleteAssignment removes an assignment. Only the faculty named in AssignedBy may delete it.
func (svc *Service) DeleteAssignment(ctx context.Context, id string, usr user.User) error {
	a, err := svc.repo.GetAssignment(ctx, id)
	if err != nil {
		return err
	}
	if a.AssignedBy != usr.Name {
		return core.NewForbiddenError(errNotAssignmentOwner)
	}
	return svc.repo.DeleteAssignment(ctx, id)
}

// SubmitRequest stores a pending doubt session request from the student usr. nr must be validated.
func (svc *Service) SubmitRequest(ctx context.Context, nr NewRequest, usr user.User) (StudentRequest, error) {
	r, err := svc.repo.CreateRequest(ctx, StudentRequest{
		ID:            uuid.New().String(),
		StudentName:   usr.Name,
		StudentID:     usr.ID,
		Date:          nr.Date,
		Time:          nr.Time,
		Subject:       nr.Subject,
		Description:   nr.Description,
		Status:        workflow.StatusPending,
		RequestedDate: core.Today(),
	})
	if err != nil {
		return StudentRequest{}, errors.Wrap(err, "creating request")
	}
	return r, nil
}

func (svc *Service) Requests(ctx context.Context, q search.Query) ([]StudentRequest, error) {
	all, err := svc.repo.QueryRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying requests")
	}
	return search.Filter(all, q, requestFields), nil
}

func (svc *Service) TransitionRequest(ctx context.Context, id, target string, extra workflow.Extra) (StudentRequest, string, error) {
	var from string
	r, err := svc.repo.UpdateRequest(ctx, id, func(r *StudentRequest) error {
		from = r.Status
		noop, err := workflow.RequestTable.Check(from, target, extra)
		if err != nil || noop {
			return err
		}
		r.Status = target
		return nil
	})
	if err != nil {
		return StudentRequest{}, from, err
	}
	return r, from, nil
}

func (svc *Service) RequestApplier() workflow.Applier {
	return workflow.ApplierFunc(func(ctx context.Context, id, target string, extra workflow.Extra) (interface{}, string, error) {
		return svc.TransitionRequest(ctx, id, target, extra)
	})
}

func (svc *Service) Classes() []Class {
	return SampleClasses()
}
