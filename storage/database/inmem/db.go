package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

// DB is the in-memory entity store backing the dashboards.
type DB struct {
	complaints  *Collection[maintenance.Complaint]
	bookings    *Collection[maintenance.Booking]
	assignments *Collection[classroom.Assignment]
	requests    *Collection[classroom.StudentRequest]
	users       *Collection[user.Record]
}

func Open() *DB {
	return &DB{
		complaints:  NewCollection("complaint", func(c maintenance.Complaint) string { return c.ID }),
		bookings:    NewCollection("booking", func(b maintenance.Booking) string { return b.ID }),
		assignments: NewCollection("assignment", func(a classroom.Assignment) string { return a.ID }),
		requests:    NewCollection("request", func(r classroom.StudentRequest) string { return r.ID }),
		users:       NewCollection("user", func(r user.Record) string { return r.ID }),
	}
}

// Seed loads the sample records. It is meant for an empty DB.
func (db *DB) Seed() error {
	for _, c := range maintenance.SampleComplaints() {
		if _, err := db.complaints.Create(c); err != nil {
			return errors.Wrap(err, "seeding complaints")
		}
	}
	for _, b := range maintenance.SampleBookings() {
		if _, err := db.bookings.Create(b); err != nil {
			return errors.Wrap(err, "seeding bookings")
		}
	}
	for _, a := range classroom.SampleAssignments() {
		if _, err := db.assignments.Create(a); err != nil {
			return errors.Wrap(err, "seeding assignments")
		}
	}
	for _, r := range classroom.SampleRequests() {
		if _, err := db.requests.Create(r); err != nil {
			return errors.Wrap(err, "seeding requests")
		}
	}
	return nil
}

// Reset empties every collection.
func (db *DB) Reset() {
	db.complaints.Reset()
	db.bookings.Reset()
	db.assignments.Reset()
	db.requests.Reset()
	db.users.Reset()
}
