package classroom

import "github.com/jyvarssudha/Smartamenitiescampusapp/core/workflow"

func SampleClasses() []Class {
	return []Class{
		{ID: "1", Name: "B.Tech CSE - Section A", Subject: "Data Structures", Section: "A", Year: "2nd Year", Semester: "Semester 3", TotalStudents: 58},
		{ID: "2", Name: "B.Tech CSE - Section B", Subject: "Data Structures", Section: "B", Year: "2nd Year", Semester: "Semester 3", TotalStudents: 60},
		{ID: "3", Name: "B.Tech CSE - Section C", Subject: "Object Oriented Programming", Section: "C", Year: "2nd Year", Semester: "Semester 3", TotalStudents: 55},
	}
}

// SampleAssignments returns the faculty assignments followed by the ones shown on the student classroom page.
func SampleAssignments() []Assignment {
	return []Assignment{
		{
			ID: "1", Title: "Binary Search Tree Implementation", Subject: "Data Structures",
			Description:  "Implement a Binary Search Tree with insert, delete, and search operations. Include in-order, pre-order, and post-order traversal methods.",
			AssignedDate: "2025-12-01", DueDate: "2025-12-15", Status: AssignmentPending, Priority: "medium",
			AssignedBy: "Dr. Ramesh Kumar", MaxMarks: 50, SubmissionType: "Code + Report", ClassName: "B.Tech CSE - Section A",
		},
		{
			ID: "2", Title: "Linked List Operations", Subject: "Data Structures",
			Description:  "Create a doubly linked list and implement various operations including insertion, deletion, reversal, and finding the middle element.",
			AssignedDate: "2025-11-28", DueDate: "2025-12-12", Status: AssignmentPending, Priority: "medium",
			AssignedBy: "Dr. Ramesh Kumar", MaxMarks: 40, SubmissionType: "Source Code", ClassName: "B.Tech CSE - Section B",
		},
		{
			ID: "3", Title: "OOP Design Patterns", Subject: "Object Oriented Programming",
			Description:  "Implement Singleton, Factory, and Observer design patterns with real-world examples. Document the use cases and advantages of each pattern.",
			AssignedDate: "2025-12-03", DueDate: "2025-12-18", Status: AssignmentPending, Priority: "medium",
			AssignedBy: "Dr. Ramesh Kumar", MaxMarks: 60, SubmissionType: "Code + Report", ClassName: "B.Tech CSE - Section C",
		},
		{
			ID: "4", Title: "Design and Analysis of Algorithms - Assignment 3", Subject: "Algorithms",
			Description:  "Implement Dijkstra's algorithm and analyze time complexity. Submit code and documentation.",
			AssignedDate: "2025-11-28", DueDate: "2025-12-10", Status: AssignmentPending, Priority: "high",
			AssignedBy: "Dr. Rajesh Kumar", MaxMarks: 50, SubmissionType: "Code + Report",
		},
		{
			ID: "5", Title: "Database Management System - Lab Exercise", Subject: "DBMS",
			Description:  "Create a normalized database schema for hospital management system with ER diagram.",
			AssignedDate: "2025-11-30", DueDate: "2025-12-08", Status: AssignmentPending, Priority: "high",
			AssignedBy: "Dr. Priya Sharma", MaxMarks: 30, SubmissionType: "PDF Document",
		},
		{
			ID: "6", Title: "Web Technologies - Project Milestone 2", Subject: "Web Tech",
			Description:  "Develop a responsive e-commerce website frontend using React and Tailwind CSS.",
			AssignedDate: "2025-11-25", DueDate: "2025-12-15", Status: AssignmentPending, Priority: "medium",
			AssignedBy: "Dr. Priya Sharma", MaxMarks: 100, SubmissionType: "GitHub Repository",
		},
		{
			ID: "7", Title: "Operating Systems - Process Scheduling", Subject: "OS",
			Description:  "Simulate Round Robin and Priority scheduling algorithms. Compare performance metrics.",
			AssignedDate: "2025-11-20", DueDate: "2025-12-05", Status: AssignmentSubmitted, Priority: "medium",
			AssignedBy: "Prof. Arjun Patel", MaxMarks: 40, SubmissionType: "Source Code",
		},
		{
			ID: "8", Title: "Computer Networks - Research Paper Review", Subject: "Networks",
			Description:  "Write a detailed review of a recent research paper on SDN (Software Defined Networking).",
			AssignedDate: "2025-12-01", DueDate: "2025-12-20", Status: AssignmentPending, Priority: "low",
			AssignedBy: "Prof. Arjun Patel", MaxMarks: 25, SubmissionType: "PDF Report",
		},
		{
			ID: "9", Title: "Software Engineering - UML Diagrams", Subject: "Software Engg",
			Description:  "Create complete UML diagrams (Use Case, Class, Sequence) for online banking system.",
			AssignedDate: "2025-11-15", DueDate: "2025-12-03", Status: AssignmentOverdue, Priority: "high",
			AssignedBy: "Dr. Priya Sharma", MaxMarks: 35, SubmissionType: "Document",
		},
	}
}

func SampleRequests() []StudentRequest {
	return []StudentRequest{
		{
			ID: "1", StudentName: "Anjali Sharma", StudentID: "21CS001", Date: "2025-12-12", Time: "3:00 PM - 4:00 PM",
			Subject:     "Data Structures",
			Description: "I need help understanding the deletion operation in AVL trees, specifically how to perform rotations after deletion to maintain balance.",
			Status:      workflow.StatusPending, RequestedDate: "2025-12-09",
		},
		{
			ID: "2", StudentName: "Vikram Patel", StudentID: "21CS023", Date: "2025-12-13", Time: "2:00 PM - 3:00 PM",
			Subject:     "Data Structures",
			Description: "Confused about the time complexity analysis of Graph traversal algorithms (BFS and DFS). Need clarification on the proof.",
			Status:      workflow.StatusPending, RequestedDate: "2025-12-08",
		},
		{
			ID: "3", StudentName: "Priya Menon", StudentID: "21CS045", Date: "2025-12-11", Time: "4:00 PM - 5:00 PM",
			Subject:     "Object Oriented Programming",
			Description: "Need guidance on implementing the Observer pattern for the assignment. Having trouble with the notification mechanism.",
			Status:      workflow.StatusApproved, RequestedDate: "2025-12-07",
		},
		{
			ID: "4", StudentName: "Rahul Verma", StudentID: "21CS067", Date: "2025-12-10", Time: "11:00 AM - 12:00 PM",
			Subject:     "Data Structures",
			Description: "Question regarding heap implementation and how heapify works in both max heap and min heap.",
			Status:      workflow.StatusRejected, RequestedDate: "2025-12-06",
		},
	}
}
