package maintenance

import "github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"

// SampleComplaints returns the complaints the dashboard starts with.
func SampleComplaints() []Complaint {
	return []Complaint{
		{
			ID:             "1",
			StudentName:    "Anjali Sharma",
			StudentID:      "21CS001",
			Location:       "CS Lab 201",
			Category:       CategoryElectrical,
			Description:    "Two computer systems in the front row are not powering on. Checked the power cables and they seem fine.",
			Priority:       PriorityHigh,
			Status:         workflow.StatusPending,
			RegisteredDate: "2025-12-10",
			RegisteredBy:   OriginApp,
		},
		{
			ID:             "2",
			StudentName:    "Vikram Patel",
			StudentID:      "21CS023",
			Location:       "Library - 2nd Floor",
			Category:       CategoryAC,
			Description:    "Air conditioning not working in the reading section. Temperature is uncomfortably high.",
			Priority:       PriorityMedium,
			Status:         workflow.StatusInProgress,
			RegisteredDate: "2025-12-09",
			RegisteredBy:   OriginInPerson,
			AssignedTo:     "Ravi Kumar - HVAC Team",
		},
		{
			ID:             "3",
			StudentName:    "Priya Menon",
			StudentID:      "21CS045",
			Location:       "Classroom 305",
			Category:       CategoryFurniture,
			Description:    "Three chairs have broken armrests and one desk is wobbling. Need replacement or repair.",
			Priority:       PriorityLow,
			Status:         workflow.StatusResolved,
			RegisteredDate: "2025-12-07",
			RegisteredBy:   OriginApp,
			ResolvedDate:   "2025-12-09",
			AssignedTo:     "Maintenance Team",
		},
		{
			ID:             "4",
			StudentName:    "Rahul Verma",
			StudentID:      "21CS067",
			Location:       "Boys Hostel - Block B",
			Category:       CategoryPlumbing,
			Description:    "Water leakage from the bathroom on the third floor. Water is seeping into the corridor.",
			Priority:       PriorityHigh,
			Status:         workflow.StatusInProgress,
			RegisteredDate: "2025-12-10",
			RegisteredBy:   OriginInPerson,
			AssignedTo:     "Plumbing Team",
		},
	}
}

// SampleBookings returns the seminar hall requests the dashboard starts with.
func SampleBookings() []Booking {
	return []Booking{
		{
			ID:            "1",
			BookedBy:      "Dr. Ramesh Kumar",
			BookedByID:    "EMP001",
			Purpose:       PurposeLecture,
			EventName:     "Advanced Data Structures - Special Lecture",
			Date:          "2025-12-15",
			StartTime:     "10:00 AM",
			EndTime:       "12:00 PM",
			Attendees:     60,
			Requirements:  []string{"Projector", "Whiteboard", "Microphone"},
			Status:        workflow.StatusPending,
			RequestedDate: "2025-12-09",
		},
		{
			ID:            "2",
			BookedBy:      "Cultural Committee",
			BookedByID:    "STUDENT-COMM",
			Purpose:       PurposeEvent,
			EventName:     "Annual Day Practice Session",
			Date:          "2025-12-18",
			StartTime:     "3:00 PM",
			EndTime:       "6:00 PM",
			Attendees:     45,
			Requirements:  []string{"Sound System", "Stage Lights", "Chairs"},
			Status:        workflow.StatusApproved,
			RequestedDate: "2025-12-08",
			Notes:         "Approved for rehearsal",
		},
		{
			ID:            "3",
			BookedBy:      "Prof. Meera Iyer",
			BookedByID:    "EMP045",
			Purpose:       PurposeLecture,
			EventName:     "Machine Learning Workshop",
			Date:          "2025-12-12",
			StartTime:     "2:00 PM",
			EndTime:       "5:00 PM",
			Attendees:     80,
			Requirements:  []string{"Projector", "Audio System", "AC"},
			Status:        workflow.StatusApproved,
			RequestedDate: "2025-12-06",
		},
		{
			ID:            "4",
			BookedBy:      "Tech Club",
			BookedByID:    "STUDENT-TECH",
			Purpose:       PurposeEvent,
			EventName:     "Hackathon Kickoff Ceremony",
			Date:          "2025-12-20",
			StartTime:     "9:00 AM",
			EndTime:       "11:00 AM",
			Attendees:     150,
			Requirements:  []string{"Projector", "Sound System", "Tables", "Chairs"},
			Status:        workflow.StatusPending,
			RequestedDate: "2025-12-10",
		},
	}
}
