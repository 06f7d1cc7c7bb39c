package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"
)

func TestQueryComplaints(t *testing.T) {
	a := setup(t)
	token := getToken(t, student)

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{"all", "/v1/complaints", []string{"1", "2", "3", "4"}},
		{"by status", "/v1/complaints?status=in-progress", []string{"2", "4"}},
		{"by category", "/v1/complaints?category=electrical", []string{"1"}},
		{"by text", "/v1/complaints?search=anjali", []string{"1"}},
		{"no match", "/v1/complaints?search=zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodGet, tt.path, token)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got []maintenance.Complaint
			unmarchall(t, rec.Body.Bytes(), &got)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestSubmitComplaint(t *testing.T) {
	a := setup(t)

	t.Run("student reports as themselves", func(t *testing.T) {
		body := []byte(`{
			"student_name": "Someone Else", "student_id": "X1", "location": "Hostel Block C",
			"category": "plumbing", "description": "Leaking tap", "priority": "medium", "registered_by": "in-person"
		}`)
		rec := a.do(http.MethodPost, "/v1/complaints", getToken(t, student), body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var c maintenance.Complaint
		unmarchall(t, rec.Body.Bytes(), &c)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, student.Name, c.StudentName)
		assert.Equal(t, student.ID, c.StudentID)
		assert.Equal(t, maintenance.OriginApp, c.RegisteredBy)
		assert.Equal(t, workflow.StatusPending, c.Status)
		assert.Equal(t, core.Today(), c.RegisteredDate)
	})

	t.Run("head registers in person", func(t *testing.T) {
		body := []byte(`{
			"student_name": "Vikram Patel", "student_id": "21CS023", "location": "Library",
			"category": "furniture", "description": "Broken chair", "priority": "low", "registered_by": "in-person"
		}`)
		rec := a.do(http.MethodPost, "/v1/complaints", getToken(t, mHead), body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var c maintenance.Complaint
		unmarchall(t, rec.Body.Bytes(), &c)
		assert.Equal(t, "Vikram Patel", c.StudentName)
		assert.Equal(t, maintenance.OriginInPerson, c.RegisteredBy)
	})

	runHTTPTests(t, a, []httpTest{
		{
			name:     "bad category",
			method:   http.MethodPost,
			path:     "/v1/complaints",
			token:    getToken(t, student),
			body:     []byte(`{"location": "Lab", "category": "roof", "description": "x", "priority": "low"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no token",
			method:   http.MethodPost,
			path:     "/v1/complaints",
			body:     []byte(`{}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
	})
}

func TestTransitionComplaint(t *testing.T) {
	a := setup(t)
	head := getToken(t, mHead)

	runHTTPTests(t, a, []httpTest{
		{
			name:     "students cannot transition",
			method:   http.MethodPost,
			path:     "/v1/complaints/1/transition",
			token:    getToken(t, student),
			body:     []byte(`{"status": "in-progress", "assignee": "Ravi"}`),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errForbidden),
		},
		{
			name:     "assignee required",
			method:   http.MethodPost,
			path:     "/v1/complaints/1/transition",
			token:    head,
			body:     []byte(`{"status": "in-progress"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"assignee": "an assignee is required"}`),
		},
		{
			name:     "resolved is terminal",
			method:   http.MethodPost,
			path:     "/v1/complaints/3/transition",
			token:    head,
			body:     []byte(`{"status": "pending"}`),
			wantCode: http.StatusConflict,
		},
		{
			name:     "skipping in-progress",
			method:   http.MethodPost,
			path:     "/v1/complaints/1/transition",
			token:    head,
			body:     []byte(`{"status": "resolved"}`),
			wantCode: http.StatusConflict,
		},
		{
			name:     "unknown complaint",
			method:   http.MethodPost,
			path:     "/v1/complaints/404/transition",
			token:    head,
			body:     []byte(`{"status": "rejected"}`),
			wantCode: http.StatusNotFound,
		},
	})

	rec := a.do(http.MethodPost, "/v1/complaints/1/transition", head, []byte(`{"status": "In-Progress", "assignee": " Ravi Kumar "}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var c maintenance.Complaint
	unmarchall(t, rec.Body.Bytes(), &c)
	assert.Equal(t, workflow.StatusInProgress, c.Status)
	assert.Equal(t, "Ravi Kumar", c.AssignedTo)
	assert.Empty(t, c.ResolvedDate)

	rec = a.do(http.MethodPost, "/v1/complaints/1/transition", head, []byte(`{"status": "resolved"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	unmarchall(t, rec.Body.Bytes(), &c)
	assert.Equal(t, workflow.StatusResolved, c.Status)
	assert.Equal(t, core.Today(), c.ResolvedDate)
	assert.Equal(t, "Ravi Kumar", c.AssignedTo)
}

func TestDestroyComplaint(t *testing.T) {
	a := setup(t)
	runHTTPTests(t, a, []httpTest{
		{
			name:     "students cannot delete",
			method:   http.MethodDelete,
			path:     "/v1/complaints/1",
			token:    getToken(t, student),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "ok",
			method:   http.MethodDelete,
			path:     "/v1/complaints/1",
			token:    getToken(t, mHead),
			wantCode: http.StatusNoContent,
		},
		{
			name:     "already deleted",
			method:   http.MethodDelete,
			path:     "/v1/complaints/1",
			token:    getToken(t, mHead),
			wantCode: http.StatusNotFound,
		},
	})
}

func TestBookings(t *testing.T) {
	a := setup(t)
	head := getToken(t, mHead)
	body := []byte(`{
		"purpose": "lecture", "event_name": "Guest Lecture on Compilers", "date": "2025-12-20",
		"start_time": "10:00", "end_time": "12:00", "attendees": 80, "requirements": ["projector"]
	}`)

	runHTTPTests(t, a, []httpTest{
		{
			name:     "students cannot book",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			token:    getToken(t, student),
			body:     body,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "bad date",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			token:    getToken(t, faculty),
			body:     []byte(`{"purpose": "event", "event_name": "Fest", "date": "20/12/2025", "start_time": "10:00", "end_time": "12:00", "attendees": 10}`),
			wantCode: http.StatusBadRequest,
		},
	})

	rec := a.do(http.MethodPost, "/v1/bookings", getToken(t, faculty), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var b maintenance.Booking
	unmarchall(t, rec.Body.Bytes(), &b)
	assert.Equal(t, faculty.Name, b.BookedBy)
	assert.Equal(t, faculty.ID, b.BookedByID)
	assert.Equal(t, workflow.StatusPending, b.Status)
	assert.Equal(t, core.Today(), b.RequestedDate)

	rec = a.do(http.MethodGet, "/v1/bookings?status=pending", getToken(t, student))
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []maintenance.Booking
	unmarchall(t, rec.Body.Bytes(), &pending)
	assert.Len(t, pending, 3)

	rec = a.do(http.MethodPost, "/v1/bookings/"+b.ID+"/transition", head, []byte(`{"status": "approved", "notes": "Hall B"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	unmarchall(t, rec.Body.Bytes(), &b)
	assert.Equal(t, workflow.StatusApproved, b.Status)
	assert.Equal(t, "Hall B", b.Notes)

	// same state is a no-op
	rec = a.do(http.MethodPost, "/v1/bookings/"+b.ID+"/transition", head, []byte(`{"status": "approved"}`))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/v1/bookings/"+b.ID+"/transition", head, []byte(`{"status": "rejected"}`))
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/v1/bookings/4/transition", head, []byte(`{"status": "rejected", "notes": "clash"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rejected maintenance.Booking
	unmarchall(t, rec.Body.Bytes(), &rejected)
	assert.Equal(t, "4", rejected.ID)
	assert.Equal(t, workflow.StatusRejected, rejected.Status)
	assert.Empty(t, rejected.Notes)
}

func TestMaintenanceSummary(t *testing.T) {
	a := setup(t)
	runHTTPTests(t, a, []httpTest{
		{
			name:     "faculty cannot see the summary",
			path:     "/v1/maintenance/summary",
			token:    getToken(t, faculty),
			wantCode: http.StatusForbidden,
		},
	})

	rec := a.do(http.MethodGet, "/v1/maintenance/summary", getToken(t, mHead))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sum maintenance.Summary
	unmarchall(t, rec.Body.Bytes(), &sum)
	assert.Equal(t, 1, sum.PendingComplaints)
	assert.Equal(t, 2, sum.HighPriority)
	assert.Equal(t, 2, sum.PendingBookings)
}

func TestMetrics(t *testing.T) {
	a := setup(t)
	head := getToken(t, mHead)
	rec := a.do(http.MethodPost, "/v1/complaints/1/transition", head, []byte(`{"status": "rejected"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `campus_workflow_transitions_total{from="pending",kind="complaint",to="rejected"} 1`)
}
