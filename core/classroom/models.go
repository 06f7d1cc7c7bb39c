package classroom

import (
	"github.com/go-playground/validator/v10"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// Assignment statuses. They are set when the assignment is stored and never recomputed from the due date.
const (
	AssignmentPending   = "pending"
	AssignmentSubmitted = "submitted"
	AssignmentOverdue   = "overdue"
)

type Assignment struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	AssignedDate   string `json:"assigned_date"`
	DueDate        string `json:"due_date"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	AssignedBy     string `json:"assigned_by"`
	MaxMarks       int    `json:"max_marks"`
	SubmissionType string `json:"submission_type"`
	ClassName      string `json:"class_name,omitempty"`
}

// StudentRequest is a doubt session requested by a student.
type StudentRequest struct {
	ID            string `json:"id"`
	StudentName   string `json:"student_name"`
	StudentID     string `json:"student_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Subject       string `json:"subject"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	RequestedDate string `json:"requested_date"`
}

type NewAssignment struct {
	Title          string `json:"title" validate:"required,notblank"`
	Subject        string `json:"subject" validate:"required,notblank"`
	Description    string `json:"description" validate:"required,notblank"`
	DueDate        string `json:"due_date" validate:"required,isodate"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high"`
	MaxMarks       int    `json:"max_marks" validate:"required,gt=0"`
	SubmissionType string `json:"submission_type" validate:"required,notblank"`
	ClassName      string `json:"class_name" validate:"required,notblank"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	na.Description = core.CleanString(na.Description)
	na.DueDate = core.CleanString(na.DueDate)
	na.SubmissionType = core.CleanString(na.SubmissionType)
	na.ClassName = core.CleanString(na.ClassName)
	na.Priority = core.CleanString(na.Priority, true /* lower */)
	if na.Priority == "" {
		na.Priority = "medium"
	}
	return validate.Struct(na)
}

type NewRequest struct {
	Date        string `json:"date" validate:"required,isodate"`
	Time        string `json:"time" validate:"required,notblank"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

func (nr *NewRequest) Validate(validate *validator.Validate) error {
	nr.Date = core.CleanString(nr.Date)
	nr.Time = core.CleanString(nr.Time)
	nr.Subject = core.CleanString(nr.Subject)
	nr.Description = core.CleanString(nr.Description)
	return validate.Struct(nr)
}

// Class is a section taught by the faculty.
type Class struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Subject       string `json:"subject"`
	Section       string `json:"section"`
	Year          string `json:"year"`
	Semester      string `json:"semester"`
	TotalStudents int    `json:"total_students"`
}
