package maintenance

import (
	"github.com/go-playground/validator/v10"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

type (
	Category string
	Priority string
	Origin   string
	Purpose  string
)

// Complaint categories
const (
	CategoryElectrical Category = "electrical"
	CategoryPlumbing   Category = "plumbing"
	CategoryFurniture  Category = "furniture"
	CategoryCleaning   Category = "cleaning"
	CategoryAC         Category = "ac"
	CategoryOther      Category = "other"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Channels a complaint can be registered through.
const (
	OriginApp      Origin = "student-app"
	OriginInPerson Origin = "in-person"
)

const (
	PurposeLecture Purpose = "lecture"
	PurposeEvent   Purpose = "event"
)

type Complaint struct {
	ID             string   `json:"id"`
	StudentName    string   `json:"student_name"`
	StudentID      string   `json:"student_id"`
	Location       string   `json:"location"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	Priority       Priority `json:"priority"`
	Status         string   `json:"status"`
	RegisteredDate string   `json:"registered_date"`
	RegisteredBy   Origin   `json:"registered_by"`
	ResolvedDate   string   `json:"resolved_date,omitempty"`
	AssignedTo     string   `json:"assigned_to,omitempty"`
}

// Booking is a seminar hall booking request.
type Booking struct {
	ID            string   `json:"id"`
	HallID        string   `json:"hall_id,omitempty"`
	BookedBy      string   `json:"booked_by"`
	BookedByID    string   `json:"booked_by_id"`
	Purpose       Purpose  `json:"purpose"`
	EventName     string   `json:"event_name"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Attendees     int      `json:"attendees"`
	Requirements  []string `json:"requirements"`
	Status        string   `json:"status"`
	RequestedDate string   `json:"requested_date"`
	Notes         string   `json:"notes,omitempty"`
}

// NewComplaint contains information needed to register a Complaint.
type NewComplaint struct {
	StudentName  string   `json:"student_name" validate:"required,notblank"`
	StudentID    string   `json:"student_id" validate:"required,notblank"`
	Location     string   `json:"location" validate:"required,notblank"`
	Category     Category `json:"category" validate:"required,oneof=electrical plumbing furniture cleaning ac other"`
	Description  string   `json:"description" validate:"required,notblank"`
	Priority     Priority `json:"priority" validate:"required,oneof=low medium high"`
	RegisteredBy Origin   `json:"registered_by" validate:"omitempty,oneof=student-app in-person"`
}

func (nc *NewComplaint) Validate(validate *validator.Validate) error {
	nc.StudentName = core.CleanString(nc.StudentName)
	nc.StudentID = core.CleanString(nc.StudentID)
	nc.Location = core.CleanString(nc.Location)
	nc.Description = core.CleanString(nc.Description)
	nc.Category = Category(core.CleanString(string(nc.Category), true /* lower */))
	nc.Priority = Priority(core.CleanString(string(nc.Priority), true /* lower */))
	if nc.RegisteredBy == "" {
		nc.RegisteredBy = OriginApp
	}
	return validate.Struct(nc)
}

// NewBooking contains information needed to request a seminar hall.
type NewBooking struct {
	HallID       string   `json:"hall_id"`
	BookedBy     string   `json:"booked_by" validate:"required,notblank"`
	BookedByID   string   `json:"booked_by_id" validate:"required,notblank"`
	Purpose      Purpose  `json:"purpose" validate:"required,oneof=lecture event"`
	EventName    string   `json:"event_name" validate:"required,notblank"`
	Date         string   `json:"date" validate:"required,isodate"`
	StartTime    string   `json:"start_time" validate:"required"`
	EndTime      string   `json:"end_time" validate:"required"`
	Attendees    int      `json:"attendees" validate:"required,gt=0"`
	Requirements []string `json:"requirements"`
}

func (nb *NewBooking) Validate(validate *validator.Validate) error {
	nb.BookedBy = core.CleanString(nb.BookedBy)
	nb.BookedByID = core.CleanString(nb.BookedByID)
	nb.EventName = core.CleanString(nb.EventName)
	nb.Date = core.CleanString(nb.Date)
	nb.Purpose = Purpose(core.CleanString(string(nb.Purpose), true /* lower */))
	reqs := make([]string, 0, len(nb.Requirements))
	for _, r := range nb.Requirements {
		if r = core.CleanString(r); r != "" {
			reqs = append(reqs, r)
		}
	}
	nb.Requirements = reqs
	return validate.Struct(nb)
}

// Summary holds the counters shown on the maintenance head dashboard.
type Summary struct {
	PendingComplaints int `json:"pending_complaints"`
	HighPriority      int `json:"high_priority"`
	PendingBookings   int `json:"pending_bookings"`
	ResolvedToday     int `json:"resolved_today"`
}
