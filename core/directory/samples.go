package directory

// Sample catalogs shown on the facility booking, faculty access and campus directory pages.

func sampleFacilities() []Facility {
	return []Facility{
		{ID: "1", Name: "Seminar Hall A", Type: "Hall", Capacity: 200, Location: "Main Building, 2nd Floor", Amenities: []string{"Projector", "AC", "Sound System", "Podium"}, Available: true},
		{ID: "2", Name: "Computer Lab 201", Type: "Lab", Capacity: 60, Location: "CS Building, 2nd Floor", Amenities: []string{"60 Computers", "AC", "Projector", "Whiteboard"}, Available: true},
		{ID: "3", Name: "Conference Room C", Type: "Meeting Room", Capacity: 20, Location: "Admin Block, 1st Floor", Amenities: []string{"Video Conference", "AC", "Whiteboard", "WiFi"}, Available: true},
		{ID: "4", Name: "Sports Ground", Type: "Outdoor", Capacity: 100, Location: "Athletic Complex", Amenities: []string{"Floodlights", "Seating", "Changing Rooms"}, Available: false},
		{ID: "5", Name: "Auditorium", Type: "Hall", Capacity: 500, Location: "Main Building, Ground Floor", Amenities: []string{"Stage", "Sound System", "Lighting", "AC", "Green Room"}, Available: true},
		{ID: "6", Name: "Library Study Room", Type: "Study Room", Capacity: 12, Location: "Library, 3rd Floor", Amenities: []string{"Whiteboard", "AC", "WiFi", "Quiet Zone"}, Available: true},
	}
}

func sampleDirectory() []Entry {
	return []Entry{
		{ID: "1", Name: "Main Administrative Office", Building: "Admin Block", Floor: "Ground Floor", Type: "Administration", Contact: "+1 (555) 0100", Email: "admin@campus.edu", Hours: "9:00 AM - 5:00 PM"},
		{ID: "2", Name: "Computer Science Department", Building: "CS Building", Floor: "3rd Floor", Type: "Department", Contact: "+1 (555) 0201", Email: "cs.dept@campus.edu", Hours: "8:00 AM - 6:00 PM"},
		{ID: "3", Name: "Library", Building: "Library Building", Floor: "All Floors", Type: "Academic", Contact: "+1 (555) 0300", Email: "library@campus.edu", Hours: "7:00 AM - 10:00 PM"},
		{ID: "4", Name: "Student Services Center", Building: "Student Center", Floor: "1st Floor", Type: "Student Services", Contact: "+1 (555) 0400", Email: "studentservices@campus.edu", Hours: "8:00 AM - 7:00 PM"},
		{ID: "5", Name: "Cafeteria", Building: "Main Building", Floor: "Ground Floor", Type: "Dining", Contact: "+1 (555) 0500", Hours: "7:00 AM - 8:00 PM"},
		{ID: "6", Name: "Medical Center", Building: "Health Services", Floor: "Ground Floor", Type: "Health", Contact: "+1 (555) 0600", Email: "health@campus.edu", Hours: "24/7"},
		{ID: "7", Name: "Sports Complex", Building: "Athletic Building", Floor: "All Floors", Type: "Recreation", Contact: "+1 (555) 0700", Email: "sports@campus.edu", Hours: "6:00 AM - 10:00 PM"},
		{ID: "8", Name: "IT Help Desk", Building: "Main Building", Floor: "2nd Floor", Type: "Technology", Contact: "+1 (555) 0800", Email: "ithelp@campus.edu", Hours: "8:00 AM - 8:00 PM"},
	}
}

func sampleFaculty() []Faculty {
	return []Faculty{
		{
			ID: "1", Name: "Dr. Rajesh Kumar", Department: "Computer Science", Cabin: "CS Block - 301",
			Subjects: []string{"Data Structures", "Algorithms", "Theory of Computation"},
			Email: "rajesh.kumar@psgitech.ac.in", Phone: "+91 98765 43210",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Data Structures", Room: "CS-201"},
					{Time: "11:00 AM - 12:00 PM", Subject: "Algorithms", Room: "CS-202"},
				},
				"Tuesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Theory of Computation", Room: "CS-203"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Data Structures", Room: "CS-201"},
				},
				"Wednesday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Algorithms", Room: "CS-202"},
				},
				"Thursday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Theory of Computation", Room: "CS-203"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Data Structures", Room: "CS-201"},
				},
				"Friday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Algorithms", Room: "CS-202"},
				},
			},
		},
		{
			ID: "2", Name: "Dr. Priya Sharma", Department: "Computer Science", Cabin: "CS Block - 305",
			Subjects: []string{"Database Management", "Software Engineering", "Web Technologies"},
			Email: "priya.sharma@psgitech.ac.in", Phone: "+91 98765 43211",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Database Management", Room: "CS-204"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Software Engineering", Room: "CS-205"},
				},
				"Tuesday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Web Technologies", Room: "Lab-1"},
					{Time: "11:00 AM - 12:00 PM", Subject: "Database Management", Room: "CS-204"},
				},
				"Wednesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Software Engineering", Room: "CS-205"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Web Technologies", Room: "Lab-1"},
				},
				"Thursday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Database Management", Room: "CS-204"},
				},
				"Friday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Software Engineering", Room: "CS-205"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Web Technologies", Room: "Lab-1"},
				},
			},
		},
		{
			ID: "3", Name: "Prof. Arjun Patel", Department: "Computer Science", Cabin: "CS Block - 308",
			Subjects: []string{"Operating Systems", "Computer Networks", "Cloud Computing"},
			Email: "arjun.patel@psgitech.ac.in", Phone: "+91 98765 43212",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Operating Systems", Room: "CS-206"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Computer Networks", Room: "CS-207"},
				},
				"Tuesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Cloud Computing", Room: "CS-208"},
				},
				"Wednesday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Computer Networks", Room: "CS-207"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Operating Systems", Room: "CS-206"},
				},
				"Thursday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Cloud Computing", Room: "CS-208"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Computer Networks", Room: "CS-207"},
				},
				"Friday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Operating Systems", Room: "CS-206"},
				},
			},
		},
		{
			ID: "4", Name: "Dr. Meena Krishnan", Department: "Electronics", Cabin: "EC Block - 201",
			Subjects: []string{"Digital Electronics", "Microprocessors", "VLSI Design"},
			Email: "meena.k@psgitech.ac.in", Phone: "+91 98765 43213",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Digital Electronics", Room: "EC-101"},
					{Time: "11:00 AM - 12:00 PM", Subject: "Microprocessors", Room: "EC-102"},
				},
				"Tuesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "VLSI Design", Room: "EC-103"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Digital Electronics", Room: "EC-101"},
				},
				"Wednesday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Microprocessors", Room: "EC-102"},
				},
				"Thursday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "VLSI Design", Room: "EC-103"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Digital Electronics", Room: "EC-101"},
				},
				"Friday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Microprocessors", Room: "EC-102"},
				},
			},
		},
		{
			ID: "5", Name: "Prof. Suresh Babu", Department: "Mechanical Engineering", Cabin: "ME Block - 101",
			Subjects: []string{"Thermodynamics", "Fluid Mechanics", "Heat Transfer"},
			Email: "suresh.b@psgitech.ac.in", Phone: "+91 98765 43214",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Thermodynamics", Room: "ME-301"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Fluid Mechanics", Room: "ME-302"},
				},
				"Tuesday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Heat Transfer", Room: "ME-303"},
					{Time: "11:00 AM - 12:00 PM", Subject: "Thermodynamics", Room: "ME-301"},
				},
				"Wednesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Fluid Mechanics", Room: "ME-302"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Heat Transfer", Room: "ME-303"},
				},
				"Thursday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Thermodynamics", Room: "ME-301"},
				},
				"Friday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Fluid Mechanics", Room: "ME-302"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Heat Transfer", Room: "ME-303"},
				},
			},
		},
		{
			ID: "6", Name: "Dr. Lakshmi Narayan", Department: "Mathematics", Cabin: "Main Block - 201",
			Subjects: []string{"Calculus", "Linear Algebra", "Probability and Statistics"},
			Email: "lakshmi.n@psgitech.ac.in", Phone: "+91 98765 43215",
			Timetable: map[string][]Slot{
				"Monday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Calculus", Room: "MB-101"},
					{Time: "11:00 AM - 12:00 PM", Subject: "Linear Algebra", Room: "MB-102"},
				},
				"Tuesday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Probability and Statistics", Room: "MB-103"},
					{Time: "2:00 PM - 3:00 PM", Subject: "Calculus", Room: "MB-101"},
				},
				"Wednesday": {
					{Time: "9:00 AM - 10:00 AM", Subject: "Linear Algebra", Room: "MB-102"},
				},
				"Thursday": {
					{Time: "11:00 AM - 12:00 PM", Subject: "Probability and Statistics", Room: "MB-103"},
					{Time: "3:00 PM - 4:00 PM", Subject: "Calculus", Room: "MB-101"},
				},
				"Friday": {
					{Time: "10:00 AM - 11:00 AM", Subject: "Linear Algebra", Room: "MB-102"},
				},
			},
		},
	}
}
