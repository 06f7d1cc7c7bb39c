package directory

// Facility is a bookable campus facility.
type Facility struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Available bool     `json:"available"`
}

// Slot is one lecture of a faculty timetable.
type Slot struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
}

type Faculty struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Cabin      string   `json:"cabin"`
	Subjects   []string `json:"subjects"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	// Timetable maps week days to their slots.
	Timetable map[string][]Slot `json:"timetable"`
}

// Entry is a campus directory listing.
type Entry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Building string `json:"building"`
	Floor    string `json:"floor"`
	Type     string `json:"type"`
	Contact  string `json:"contact"`
	Email    string `json:"email,omitempty"`
	Hours    string `json:"hours"`
}

// Subject is a course of a department, with the faculty teaching it when known.
type Subject struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	FacultyID   string `json:"faculty_id,omitempty"`
	FacultyName string `json:"faculty_name,omitempty"`
}

type SeminarHall struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Capacity   int    `json:"capacity"`
	Location   string `json:"location,omitempty"`
}
