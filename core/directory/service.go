// Package directory serves the read-only catalogs: facilities, faculty, the campus directory,
// department subjects and seminar halls.
package directory

import (
	"context"
	"fmt"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
)

// Catalog is the persistence collaborator holding subjects and seminar halls.
type Catalog interface {
	Subjects(ctx context.Context, department string) ([]Subject, error)
	// SeminarHalls lists the halls of department, or every hall ordered by department when it is empty.
	SeminarHalls(ctx context.Context, department string) ([]SeminarHall, error)
}

var (
	facilityFields = search.Fields[Facility]{
		Text:     func(f Facility) []string { return []string{f.Name, f.Location} },
		Category: func(f Facility) string { return f.Type },
	}
	facultyFields = search.Fields[Faculty]{
		Text: func(f Faculty) []string {
			return append([]string{f.Name, f.Department}, f.Subjects...)
		},
		Category: func(f Faculty) string { return f.Department },
	}
	entryFields = search.Fields[Entry]{
		Text:     func(e Entry) []string { return []string{e.Name, e.Building} },
		Category: func(e Entry) string { return e.Type },
	}
)

type Service struct {
	catalog    Catalog
	logger     core.Logger
	facilities []Facility
	faculty    []Faculty
	entries    []Entry
}

func NewService(catalog Catalog, logger core.Logger) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(catalog, "catalog"),
		vala.IsNotNil(logger, "logger"),
	).CheckAndPanic()

	return &Service{
		catalog:    catalog,
		logger:     logger,
		facilities: sampleFacilities(),
		faculty:    sampleFaculty(),
		entries:    sampleDirectory(),
	}
}

func (svc *Service) Facilities(q search.Query) []Facility {
	return search.Filter(svc.facilities, q, facilityFields)
}

func (svc *Service) Faculty(q search.Query) []Faculty {
	return search.Filter(svc.faculty, q, facultyFields)
}

func (svc *Service) Directory(q search.Query) []Entry {
	return search.Filter(svc.entries, q, entryFields)
}

// Subjects lists the subjects of department. An unavailable catalog yields an empty list.
func (svc *Service) Subjects(ctx context.Context, department string) ([]Subject, error) {
	department = core.CleanString(department)
	if department == "" {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "department", Error: "department is required"})
	}
	subjects, err := svc.catalog.Subjects(ctx, department)
	if err != nil {
		if core.IsBackendUnavailable(err) {
			svc.logger.Warn(fmt.Sprintf("subjects of %q: backend unavailable, running in demo mode", department))
			return []Subject{}, nil
		}
		return nil, errors.Wrap(err, "querying subjects")
	}
	return subjects, nil
}

// SeminarHalls lists the seminar halls of department, all of them when it is empty.
// An unavailable catalog yields an empty list.
func (svc *Service) SeminarHalls(ctx context.Context, department string) ([]SeminarHall, error) {
	halls, err := svc.catalog.SeminarHalls(ctx, core.CleanString(department))
	if err != nil {
		if core.IsBackendUnavailable(err) {
			svc.logger.Warn("seminar halls: backend unavailable, running in demo mode")
			return []SeminarHall{}, nil
		}
		return nil, errors.Wrap(err, "querying seminar halls")
	}
	return halls, nil
}
