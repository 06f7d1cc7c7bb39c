package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	. "github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/search"
	"github.com/jyvarssudha/Smartamenitiescampusapp/tests"
)

type fakeCatalog struct {
	err      error
	depts    []string
	subjects []Subject
	halls    []SeminarHall
}

func (c *fakeCatalog) Subjects(_ context.Context, department string) ([]Subject, error) {
	c.depts = append(c.depts, department)
	if c.err != nil {
		return nil, c.err
	}
	return c.subjects, nil
}

func (c *fakeCatalog) SeminarHalls(_ context.Context, department string) ([]SeminarHall, error) {
	c.depts = append(c.depts, department)
	if c.err != nil {
		return nil, c.err
	}
	return c.halls, nil
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}

func TestService_Facilities(t *testing.T) {
	svc := NewService(&fakeCatalog{}, testutil.NewLogger())
	facilityName := func(f Facility) string { return f.Name }

	tests := []struct {
		name string
		q    search.Query
		want []string
	}{
		{"all", search.Query{}, []string{
			"Seminar Hall A", "Computer Lab 201", "Conference Room C", "Sports Ground", "Auditorium", "Library Study Room",
		}},
		{"by location", search.Query{Text: "main building"}, []string{"Seminar Hall A", "Auditorium"}},
		{"by type", search.Query{Category: "Hall"}, []string{"Seminar Hall A", "Auditorium"}},
		{"all category", search.Query{Text: "lab", Category: search.All}, []string{"Computer Lab 201"}},
		{"no match", search.Query{Text: "pool"}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(svc.Facilities(tc.q), facilityName))
		})
	}
}

func TestService_Faculty(t *testing.T) {
	svc := NewService(&fakeCatalog{}, testutil.NewLogger())

	all := svc.Faculty(search.Query{})
	require.Len(t, all, 6)
	assert.NotEmpty(t, all[0].Timetable["Monday"])

	// subjects are searched too
	got := svc.Faculty(search.Query{Text: "data structures"})
	require.NotEmpty(t, got)
	assert.Equal(t, "Dr. Rajesh Kumar", got[0].Name)

	got = svc.Faculty(search.Query{Category: "Computer Science"})
	for _, f := range got {
		assert.Equal(t, "Computer Science", f.Department)
	}
}

func TestService_Directory(t *testing.T) {
	svc := NewService(&fakeCatalog{}, testutil.NewLogger())
	entryName := func(e Entry) string { return e.Name }

	assert.Len(t, svc.Directory(search.Query{}), 8)
	assert.Equal(t, []string{"Cafeteria", "IT Help Desk"}, names(svc.Directory(search.Query{Text: "MAIN BUILDING"}), entryName))
	assert.Equal(t, []string{"Medical Center"}, names(svc.Directory(search.Query{Category: "Health"}), entryName))
}

func TestService_Subjects(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{subjects: []Subject{{ID: "s1", Code: "CS3401", Name: "Algorithms", Department: "CSE"}}}
	svc := NewService(catalog, testutil.NewLogger())

	got, err := svc.Subjects(ctx, " CSE ")
	require.NoError(t, err)
	assert.Equal(t, catalog.subjects, got)
	assert.Equal(t, []string{"CSE"}, catalog.depts)

	_, err = svc.Subjects(ctx, "  ")
	assert.True(t, core.IsValidationError(err))

	catalog.err = core.ErrBackendUnavailable
	got, err = svc.Subjects(ctx, "CSE")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	catalog.err = assert.AnError
	_, err = svc.Subjects(ctx, "CSE")
	assert.Error(t, err)
}

func TestService_SeminarHalls(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{halls: []SeminarHall{{ID: "h1", Name: "CSE Seminar Hall", Department: "CSE", Capacity: 120}}}
	svc := NewService(catalog, testutil.NewLogger())

	got, err := svc.SeminarHalls(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.halls, got)

	catalog.err = core.ErrBackendUnavailable
	got, err = svc.SeminarHalls(ctx, "CSE")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"", "CSE"}, catalog.depts)
}
