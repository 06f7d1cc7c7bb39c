package sqlxrepos

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/storage/database"
)

// newTestBackend migrates the database at $TEST_DATABASE_URL; the test is skipped without one.
func newTestBackend(t *testing.T) (*Backend, *sql.DB) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	if err = db.Ping(); err != nil {
		t.Skipf("postgres not reachable: %v", err)
	}
	require.NoError(t, database.Migrate(db))

	truncate := func() {
		_, _ = db.Exec(`TRUNCATE users, password_reset_tokens, complaints, seminar_bookings, subjects, seminar_halls`)
	}
	truncate()
	t.Cleanup(truncate)
	return NewBackend(db), db
}

func TestBackend_users(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()

	created, err := b.CreateUser(ctx, user.Record{
		ID: "u1", Name: "Asha", Email: "asha@psgitech.ac.in", Role: user.RoleStudent,
		RollNumber: "715521104001", Password: "Campus#2025",
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Empty(t, created.EmployeeID)

	got, err := b.FindUser(ctx, user.FieldRollNumber, "715521104001", user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)

	_, err = b.FindUser(ctx, user.FieldRollNumber, "715521104001", user.RoleTeachingStaff)
	assert.Equal(t, user.ErrNotFound, err)
	_, err = b.FindUser(ctx, "username", "asha", user.RoleStudent)
	assert.Error(t, err)

	_, err = b.FindUserByEmailAndOptionalRoll(ctx, "asha@psgitech.ac.in", "")
	require.NoError(t, err)
	_, err = b.FindUserByEmailAndOptionalRoll(ctx, "asha@psgitech.ac.in", "715521104999")
	assert.Equal(t, user.ErrNotFound, err)

	require.NoError(t, b.UpdatePassword(ctx, "asha@psgitech.ac.in", "New#Pass2025"))
	got, err = b.FindUser(ctx, user.FieldRollNumber, "715521104001", user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "New#Pass2025", got.Password)
	assert.Equal(t, user.ErrNotFound, b.UpdatePassword(ctx, "nobody@psgitech.ac.in", "x"))
}

func TestBackend_otp(t *testing.T) {
	b, _ := newTestBackend(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, b.InsertOTP(ctx, "asha@psgitech.ac.in", "123456", now.Add(15*time.Minute)))
	require.NoError(t, b.InsertOTP(ctx, "asha@psgitech.ac.in", "654321", now.Add(-time.Minute)))

	otp, err := b.FindValidOTP(ctx, "asha@psgitech.ac.in", "123456", now)
	require.NoError(t, err)
	assert.False(t, otp.Used)

	_, err = b.FindValidOTP(ctx, "asha@psgitech.ac.in", "654321", now)
	assert.Equal(t, user.ErrNotFound, err, "expired")

	require.NoError(t, b.MarkOTPUsed(ctx, otp.ID))
	assert.Equal(t, user.ErrInvalidOTP, b.MarkOTPUsed(ctx, otp.ID), "a code is consumed once")
	_, err = b.FindValidOTP(ctx, "asha@psgitech.ac.in", "123456", now)
	assert.Equal(t, user.ErrNotFound, err, "used")
}

func TestBackend_catalog(t *testing.T) {
	b, db := newTestBackend(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO seminar_halls (id, name, department, capacity, location) VALUES
('h1', 'ECE Seminar Hall', 'ECE', 100, NULL), ('h2', 'CSE Seminar Hall', 'CSE', 120, 'CS Block')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO subjects (id, code, name, department, faculty_id, faculty_name) VALUES
('s1', 'CS3401', 'Algorithms', 'CSE', 'f1', 'Dr. Rajesh Kumar'), ('s2', 'EC3401', 'Signals', 'ECE', NULL, NULL)`)
	require.NoError(t, err)

	halls, err := b.SeminarHalls(ctx, "")
	require.NoError(t, err)
	require.Len(t, halls, 2)
	assert.Equal(t, "CSE", halls[0].Department)
	assert.Equal(t, "CS Block", halls[0].Location)

	halls, err = b.SeminarHalls(ctx, "ECE")
	require.NoError(t, err)
	require.Len(t, halls, 1)
	assert.Empty(t, halls[0].Location)

	subjects, err := b.Subjects(ctx, "CSE")
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Dr. Rajesh Kumar", subjects[0].FacultyName)
}

func TestBackend_recorder(t *testing.T) {
	b, db := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.InsertComplaint(ctx, maintenance.Complaint{
		ID: "c1", StudentName: "Asha", StudentID: "715521104001", Location: "Hostel A", Category: maintenance.CategoryPlumbing,
		Description: "Leaking tap", Priority: maintenance.PriorityHigh, Status: "pending", RegisteredBy: maintenance.OriginApp,
		RegisteredDate: "2025-12-10",
	}))
	require.NoError(t, b.InsertBooking(ctx, maintenance.Booking{
		ID: "b1", BookedBy: "Dr. Priya Sharma", BookedByID: "EMP01", Purpose: maintenance.PurposeLecture, EventName: "Guest lecture",
		Date: "2025-12-20", StartTime: "10:00", EndTime: "12:00", Attendees: 80, Status: "pending",
	}))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM seminar_bookings WHERE hall_id IS NULL`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	var u Unavailable

	_, err := u.FindUser(ctx, user.FieldRollNumber, "7155", user.RoleStudent)
	assert.True(t, core.IsBackendUnavailable(err))
	assert.True(t, core.IsBackendUnavailable(u.InsertOTP(ctx, "a", "123456", time.Now())))
	assert.True(t, core.IsBackendUnavailable(u.InsertComplaint(ctx, maintenance.Complaint{})))
	_, err = u.SeminarHalls(ctx, "")
	assert.True(t, core.IsBackendUnavailable(err))
}

func TestBackend_closedDB(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	b := NewBackend(db)
	_, err = b.FindUser(context.Background(), user.FieldEmployeeID, "EMP01", user.RoleTeachingStaff)
	assert.True(t, core.IsBackendUnavailable(err), "got %v", err)
	_, err = b.Subjects(context.Background(), "CSE")
	assert.True(t, core.IsBackendUnavailable(err))
}
