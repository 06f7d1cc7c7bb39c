// Package sqlxrepos is the postgres persistence collaborator for users, password reset codes,
// complaint and booking submissions, and the directory catalogs.
package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/directory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	"github.com/jyvarssudha/Smartamenitiescampusapp/storage/database"
)

type (
	userRow struct {
		ID         string      `db:"id"`
		Name       string      `db:"name"`
		Email      string      `db:"email"`
		Role       string      `db:"role"`
		Department null.String `db:"department"`
		RollNumber null.String `db:"roll_number"`
		EmployeeID null.String `db:"employee_id"`
		Password   string      `db:"password"`
		CreatedAt  time.Time   `db:"created_at"`
		UpdatedAt  time.Time   `db:"updated_at"`
	}

	otpRow struct {
		ID        int64     `db:"id"`
		Email     string    `db:"email"`
		Code      string    `db:"otp"`
		ExpiresAt time.Time `db:"expires_at"`
		Used      bool      `db:"used"`
		CreatedAt time.Time `db:"created_at"`
	}

	subjectRow struct {
		ID          string      `db:"id"`
		Code        string      `db:"code"`
		Name        string      `db:"name"`
		Department  string      `db:"department"`
		FacultyID   null.String `db:"faculty_id"`
		FacultyName null.String `db:"faculty_name"`
	}

	hallRow struct {
		ID         string      `db:"id"`
		Name       string      `db:"name"`
		Department string      `db:"department"`
		Capacity   int         `db:"capacity"`
		Location   null.String `db:"location"`
	}
)

func (r userRow) record() user.Record {
	return user.Record{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Department: r.Department.String,
		RollNumber: r.RollNumber.String,
		EmployeeID: r.EmployeeID.String,
		Password:   r.Password,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

const userColumns = `id, name, email, role, department, roll_number, employee_id, password, created_at, updated_at`

// Backend implements the persistence collaborator on sqlx.
type Backend struct {
	db *sqlx.DB
}

var (
	_ user.Backend         = (*Backend)(nil)
	_ maintenance.Recorder = (*Backend)(nil)
	_ directory.Catalog    = (*Backend)(nil)
)

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: sqlx.NewDb(db, "postgres")}
}

// FindUser looks a user up by its roll number or employee id.
func (b *Backend) FindUser(ctx context.Context, idField, idValue, role string) (user.Record, error) {
	var col string
	switch idField {
	case user.FieldRollNumber:
		col = "roll_number"
	case user.FieldEmployeeID:
		col = "employee_id"
	default:
		return user.Record{}, errors.Errorf("unknown lookup field %q", idField)
	}

	var row userRow
	q := `SELECT ` + userColumns + ` FROM users WHERE ` + col + ` = $1 AND role = $2 LIMIT 1`
	if err := b.db.GetContext(ctx, &row, q, idValue, role); err != nil {
		return user.Record{}, notFound(err, user.ErrNotFound, "finding user")
	}
	return row.record(), nil
}

func (b *Backend) FindUserByEmailAndOptionalRoll(ctx context.Context, email, roll string) (user.Record, error) {
	var row userRow
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND ($2::text = '' OR roll_number = $2) LIMIT 1`
	if err := b.db.GetContext(ctx, &row, q, email, roll); err != nil {
		return user.Record{}, notFound(err, user.ErrNotFound, "finding user by email")
	}
	return row.record(), nil
}

func (b *Backend) InsertOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (email, otp, expires_at, used) VALUES ($1, $2, $3, FALSE)`,
		email, code, expiresAt.UTC(),
	)
	return database.MapError(err, "inserting otp")
}

func (b *Backend) FindValidOTP(ctx context.Context, email, code string, now time.Time) (user.OTP, error) {
	var row otpRow
	q := `SELECT id, email, otp, expires_at, used, created_at FROM password_reset_tokens
WHERE email = $1 AND otp = $2 AND used = FALSE AND expires_at > $3
ORDER BY created_at DESC, id DESC LIMIT 1`
	if err := b.db.GetContext(ctx, &row, q, email, code, now.UTC()); err != nil {
		return user.OTP{}, notFound(err, user.ErrNotFound, "finding otp")
	}
	return user.OTP(row), nil
}

func (b *Backend) MarkOTPUsed(ctx context.Context, id int64) error {
	res, err := b.db.ExecContext(ctx, `UPDATE password_reset_tokens SET used = TRUE WHERE id = $1 AND used = FALSE`, id)
	if err != nil {
		return database.MapError(err, "marking otp used")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.MapError(err, "marking otp used")
	}
	if n == 0 {
		return user.ErrInvalidOTP
	}
	return nil
}

func (b *Backend) CreateUser(ctx context.Context, rec user.Record) (user.Record, error) {
	row := userRow{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.Role,
		Department: null.NewString(rec.Department, rec.Department != ""),
		RollNumber: null.NewString(rec.RollNumber, rec.RollNumber != ""),
		EmployeeID: null.NewString(rec.EmployeeID, rec.EmployeeID != ""),
		Password:   rec.Password,
	}
	q := `INSERT INTO users (id, name, email, role, department, roll_number, employee_id, password)
VALUES (:id, :name, :email, :role, :department, :roll_number, :employee_id, :password)
RETURNING created_at, updated_at`
	stmt, err := b.db.PrepareNamedContext(ctx, q)
	if err != nil {
		return user.Record{}, database.MapError(err, "preparing user insert")
	}
	defer stmt.Close()

	if err = stmt.QueryRowxContext(ctx, row).Scan(&row.CreatedAt, &row.UpdatedAt); err != nil {
		return user.Record{}, database.MapError(err, "inserting user")
	}
	return row.record(), nil
}

func (b *Backend) UpdatePassword(ctx context.Context, email, password string) error {
	res, err := b.db.ExecContext(ctx, `UPDATE users SET password = $1, updated_at = NOW() WHERE email = $2`, password, email)
	if err != nil {
		return database.MapError(err, "updating password")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.MapError(err, "updating password")
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (b *Backend) InsertComplaint(ctx context.Context, c maintenance.Complaint) error {
	_, err := b.db.NamedExecContext(ctx, `INSERT INTO complaints
(id, student_name, student_id, location, category, description, priority, status, registered_by, registered_date)
VALUES (:id, :student_name, :student_id, :location, :category, :description, :priority, :status, :registered_by, :registered_date)`,
		map[string]interface{}{
			"id":              c.ID,
			"student_name":    c.StudentName,
			"student_id":      c.StudentID,
			"location":        c.Location,
			"category":        string(c.Category),
			"description":     c.Description,
			"priority":        string(c.Priority),
			"status":          c.Status,
			"registered_by":   string(c.RegisteredBy),
			"registered_date": c.RegisteredDate,
		},
	)
	return database.MapError(err, "inserting complaint")
}

func (b *Backend) InsertBooking(ctx context.Context, bk maintenance.Booking) error {
	_, err := b.db.NamedExecContext(ctx, `INSERT INTO seminar_bookings
(id, hall_id, user_id, booked_by, purpose, event_name, date, start_time, end_time, participants, status)
VALUES (:id, :hall_id, :user_id, :booked_by, :purpose, :event_name, :date, :start_time, :end_time, :participants, :status)`,
		map[string]interface{}{
			"id":           bk.ID,
			"hall_id":      null.NewString(bk.HallID, bk.HallID != ""),
			"user_id":      bk.BookedByID,
			"booked_by":    bk.BookedBy,
			"purpose":      string(bk.Purpose),
			"event_name":   bk.EventName,
			"date":         bk.Date,
			"start_time":   bk.StartTime,
			"end_time":     bk.EndTime,
			"participants": bk.Attendees,
			"status":       bk.Status,
		},
	)
	return database.MapError(err, "inserting booking")
}

func (b *Backend) Subjects(ctx context.Context, department string) ([]directory.Subject, error) {
	var rows []subjectRow
	q := `SELECT id, code, name, department, faculty_id, faculty_name FROM subjects WHERE department = $1 ORDER BY code`
	if err := b.db.SelectContext(ctx, &rows, q, department); err != nil {
		return nil, database.MapError(err, "querying subjects")
	}
	subjects := make([]directory.Subject, 0, len(rows))
	for _, r := range rows {
		subjects = append(subjects, directory.Subject{
			ID:          r.ID,
			Code:        r.Code,
			Name:        r.Name,
			Department:  r.Department,
			FacultyID:   r.FacultyID.String,
			FacultyName: r.FacultyName.String,
		})
	}
	return subjects, nil
}

func (b *Backend) SeminarHalls(ctx context.Context, department string) ([]directory.SeminarHall, error) {
	var rows []hallRow
	q := `SELECT id, name, department, capacity, location FROM seminar_halls
WHERE $1::text = '' OR department = $1 ORDER BY department, name`
	if err := b.db.SelectContext(ctx, &rows, q, department); err != nil {
		return nil, database.MapError(err, "querying seminar halls")
	}
	halls := make([]directory.SeminarHall, 0, len(rows))
	for _, r := range rows {
		halls = append(halls, directory.SeminarHall{
			ID:         r.ID,
			Name:       r.Name,
			Department: r.Department,
			Capacity:   r.Capacity,
			Location:   r.Location.String,
		})
	}
	return halls, nil
}

// notFound maps sql.ErrNoRows to sentinel.
func notFound(err, sentinel error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return sentinel
	}
	return database.MapError(err, msg)
}
