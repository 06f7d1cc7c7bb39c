package inmemdb

import (
	"context"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/maintenance"
)

type maintenanceRepository struct {
	db *DB
}

var _ maintenance.Repository = (*maintenanceRepository)(nil)

func NewMaintenanceRepository(db *DB) *maintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (repo maintenanceRepository) CreateComplaint(_ context.Context, c maintenance.Complaint) (maintenance.Complaint, error) {
	return repo.db.complaints.Create(c)
}

func (repo maintenanceRepository) GetComplaint(_ context.Context, id string) (maintenance.Complaint, error) {
	return repo.db.complaints.Get(id)
}

func (repo maintenanceRepository) QueryComplaints(context.Context) ([]maintenance.Complaint, error) {
	return repo.db.complaints.List(), nil
}

func (repo maintenanceRepository) UpdateComplaint(_ context.Context, id string, fn func(*maintenance.Complaint) error) (maintenance.Complaint, error) {
	return repo.db.complaints.Update(id, fn)
}

func (repo maintenanceRepository) DeleteComplaint(_ context.Context, id string) error {
	return repo.db.complaints.Delete(id)
}

func (repo maintenanceRepository) CreateBooking(_ context.Context, b maintenance.Booking) (maintenance.Booking, error) {
	return repo.db.bookings.Create(b)
}

func (repo maintenanceRepository) GetBooking(_ context.Context, id string) (maintenance.Booking, error) {
	return repo.db.bookings.Get(id)
}

func (repo maintenanceRepository) QueryBookings(context.Context) ([]maintenance.Booking, error) {
	return repo.db.bookings.List(), nil
}

func (repo maintenanceRepository) UpdateBooking(_ context.Context, id string, fn func(*maintenance.Booking) error) (maintenance.Booking, error) {
	return repo.db.bookings.Update(id, fn)
}

func (repo maintenanceRepository) DeleteBooking(_ context.Context, id string) error {
	return repo.db.bookings.Delete(id)
}
