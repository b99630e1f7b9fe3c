package catalog

import (
	"slices"
	"strings"
)

// Course is an LMS course offering.
type Course struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	Description      string `json:"description"`
	Instructor       string `json:"instructor"`
	Department       string `json:"department"`
	Credits          int    `json:"credits"`
	Semester         string `json:"semester"`
	EnrolledStudents int    `json:"enrolledStudents"`
	MaxStudents      int    `json:"maxStudents"`
	Schedule         string `json:"schedule"`
	Status           string `json:"status"`
}

// Student is a student record.
type Student struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	StudentID       string   `json:"studentId"`
	Department      string   `json:"department"`
	Year            string   `json:"year"`
	GPA             float64  `json:"gpa"`
	Status          string   `json:"status"`
	EnrolledCourses []string `json:"enrolledCourses"`
}

// Assignment is coursework attached to a course.
type Assignment struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	DueDate    string `json:"dueDate"`
	Status     string `json:"status"`
	Grade      *int   `json:"grade,omitempty"`
	MaxGrade   int    `json:"maxGrade"`
}

// Book is a library catalog entry.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Category  string `json:"category"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Copies    int    `json:"copies"`
	Available int    `json:"available"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// Employee is an HR record.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hireDate"`
	Salary     int    `json:"salary"`
	Status     string `json:"status"`
	Phone      string `json:"phone"`
}

// Material is an inventory line.
type Material struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	Location     string `json:"location"`
	Supplier     string `json:"supplier"`
	LastUpdated  string `json:"lastUpdated"`
	Status       string `json:"status"`
	MinThreshold int    `json:"minThreshold"`
}

// EnrollmentApplication is a pending or decided admission request.
type EnrollmentApplication struct {
	ID             string   `json:"id"`
	StudentName    string   `json:"studentName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Program        string   `json:"program"`
	Semester       string   `json:"semester"`
	Status         string   `json:"status"`
	SubmissionDate string   `json:"submissionDate"`
	Documents      []string `json:"documents"`
}

func grade(n int) *int { return &n }

var courses = []Course{
	{ID: "1", Name: "Introduction to Computer Science", Code: "CS101", Description: "Fundamental concepts of computer science and programming", Instructor: "Dr. Emily Rodriguez", Department: "Computer Science", Credits: 3, Semester: "Fall 2024", EnrolledStudents: 45, MaxStudents: 50, Schedule: "MWF 10:00-11:00 AM", Status: "Active"},
	{ID: "2", Name: "Calculus I", Code: "MATH101", Description: "Differential and integral calculus", Instructor: "Prof. Michael Chen", Department: "Mathematics", Credits: 4, Semester: "Fall 2024", EnrolledStudents: 38, MaxStudents: 40, Schedule: "TTh 2:00-3:30 PM", Status: "Active"},
	{ID: "3", Name: "English Literature", Code: "ENG201", Description: "Survey of English literature from medieval to modern times", Instructor: "Dr. Sarah Johnson", Department: "English", Credits: 3, Semester: "Fall 2024", EnrolledStudents: 25, MaxStudents: 30, Schedule: "MWF 1:00-2:00 PM", Status: "Active"},
}

var students = []Student{
	{ID: "1", Name: "Alex Thompson", Email: "alex.thompson@university.edu", StudentID: "STU001", Department: "Computer Science", Year: "Sophomore", GPA: 3.7, Status: "Active", EnrolledCourses: []string{"1", "2"}},
	{ID: "2", Name: "Emma Davis", Email: "emma.davis@university.edu", StudentID: "STU002", Department: "Mathematics", Year: "Junior", GPA: 3.9, Status: "Active", EnrolledCourses: []string{"2", "3"}},
	{ID: "3", Name: "James Wilson", Email: "james.wilson@university.edu", StudentID: "STU003", Department: "English", Year: "Senior", GPA: 3.5, Status: "Active", EnrolledCourses: []string{"3"}},
}

var assignments = []Assignment{
	{ID: "1", Title: "Programming Project 1", CourseID: "1", CourseName: "Introduction to Computer Science", DueDate: "2024-02-15", Status: "Pending", MaxGrade: 100},
	{ID: "2", Title: "Calculus Problem Set 3", CourseID: "2", CourseName: "Calculus I", DueDate: "2024-02-20", Status: "Submitted", Grade: grade(85), MaxGrade: 100},
	{ID: "3", Title: "Literature Essay", CourseID: "3", CourseName: "English Literature", DueDate: "2024-02-25", Status: "Graded", Grade: grade(92), MaxGrade: 100},
}

var books = []Book{
	{ID: "1", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", ISBN: "978-0262033848", Category: "Computer Science", Publisher: "MIT Press", Year: 2009, Copies: 5, Available: 3, Location: "CS Section - Shelf A1", Status: "Available"},
	{ID: "2", Title: "Calculus: Early Transcendentals", Author: "James Stewart", ISBN: "978-1285741550", Category: "Mathematics", Publisher: "Cengage Learning", Year: 2015, Copies: 8, Available: 2, Location: "Math Section - Shelf B2", Status: "Available"},
	{ID: "3", Title: "The Norton Anthology of English Literature", Author: "Stephen Greenblatt", ISBN: "978-0393603040", Category: "Literature", Publisher: "W. W. Norton & Company", Year: 2018, Copies: 6, Available: 0, Location: "Literature Section - Shelf C3", Status: "Checked Out"},
}

var employees = []Employee{
	{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@university.edu", EmployeeID: "EMP001", Department: "Administration", Position: "Administrator", HireDate: "2015-08-15", Salary: 85000, Status: "Active", Phone: "(555) 123-4567"},
	{ID: "2", Name: "Prof. Michael Chen", Email: "michael.chen@university.edu", EmployeeID: "EMP002", Department: "Computer Science", Position: "Dean", HireDate: "2012-01-10", Salary: 95000, Status: "Active", Phone: "(555) 234-5678"},
	{ID: "3", Name: "Dr. Emily Rodriguez", Email: "emily.rodriguez@university.edu", EmployeeID: "EMP003", Department: "Mathematics", Position: "Professor", HireDate: "2018-09-01", Salary: 75000, Status: "Active", Phone: "(555) 345-6789"},
}

var materials = []Material{
	{ID: "1", Name: "Whiteboard Markers", Category: "Office Supplies", Quantity: 150, Unit: "pieces", Location: "Storage Room A", Supplier: "Office Depot", LastUpdated: "2024-01-15", Status: "In Stock", MinThreshold: 50},
	{ID: "2", Name: "Laboratory Equipment Set", Category: "Lab Equipment", Quantity: 5, Unit: "sets", Location: "Science Lab", Supplier: "Scientific Supplies Inc.", LastUpdated: "2024-01-20", Status: "Low Stock", MinThreshold: 3},
	{ID: "3", Name: "Projector Bulbs", Category: "Electronics", Quantity: 0, Unit: "pieces", Location: "IT Storage", Supplier: "Tech Solutions", LastUpdated: "2024-01-25", Status: "Out of Stock", MinThreshold: 10},
}

var applications = []EnrollmentApplication{
	{ID: "1", StudentName: "John Smith", Email: "john.smith@email.com", Phone: "(555) 111-2222", Program: "Computer Science", Semester: "Fall 2024", Status: "Pending", SubmissionDate: "2024-01-10", Documents: []string{"Transcript", "Application Form", "Recommendation Letter"}},
	{ID: "2", StudentName: "Lisa Brown", Email: "lisa.brown@email.com", Phone: "(555) 333-4444", Program: "Mathematics", Semester: "Fall 2024", Status: "Approved", SubmissionDate: "2024-01-08", Documents: []string{"Transcript", "Application Form", "Personal Statement"}},
	{ID: "3", StudentName: "David Lee", Email: "david.lee@email.com", Phone: "(555) 555-6666", Program: "English Literature", Semester: "Fall 2024", Status: "Waitlisted", SubmissionDate: "2024-01-12", Documents: []string{"Transcript", "Application Form"}},
}

// Records share no memory with the fixtures: every accessor below returns copies
// callers may modify.

func (s Student) clone() Student {
	s.EnrolledCourses = slices.Clone(s.EnrolledCourses)
	return s
}

func (a Assignment) clone() Assignment {
	if a.Grade != nil {
		a.Grade = grade(*a.Grade)
	}
	return a
}

func (e EnrollmentApplication) clone() EnrollmentApplication {
	e.Documents = slices.Clone(e.Documents)
	return e
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// Courses returns every course.
func Courses() []Course { return slices.Clone(courses) }

// Students returns every student record.
func Students() []Student { return cloneEach(students, Student.clone) }

// Assignments returns every assignment.
func Assignments() []Assignment { return cloneEach(assignments, Assignment.clone) }

// Books returns the whole library catalog.
func Books() []Book { return slices.Clone(books) }

// Employees returns every employee record.
func Employees() []Employee { return slices.Clone(employees) }

// Materials returns every inventory line.
func Materials() []Material { return slices.Clone(materials) }

// Applications returns every enrollment application.
func Applications() []EnrollmentApplication {
	return cloneEach(applications, EnrollmentApplication.clone)
}

// CoursesByInstructor returns courses taught by the named instructor (exact match).
func CoursesByInstructor(name string) []Course {
	return filter(courses, func(c Course) bool { return c.Instructor == name })
}

// StudentsByCourse returns students enrolled in courseID.
func StudentsByCourse(courseID string) []Student {
	return cloneEach(filter(students, func(s Student) bool { return slices.Contains(s.EnrolledCourses, courseID) }), Student.clone)
}

// StudentByStudentID finds a student record by its registrar number (e.g. STU001).
func StudentByStudentID(studentID string) (Student, bool) {
	i := slices.IndexFunc(students, func(s Student) bool { return s.StudentID == studentID })
	if i < 0 {
		return Student{}, false
	}
	return students[i].clone(), true
}

// AssignmentsByStudent returns assignments for the courses the student record is enrolled in.
// An unknown record yields none.
func AssignmentsByStudent(recordID string) []Assignment {
	i := slices.IndexFunc(students, func(s Student) bool { return s.ID == recordID })
	if i < 0 {
		return nil
	}
	enrolled := students[i].EnrolledCourses
	return cloneEach(filter(assignments, func(a Assignment) bool { return slices.Contains(enrolled, a.CourseID) }), Assignment.clone)
}

// SearchBooks matches query case-insensitively against title, author and category.
func SearchBooks(query string) []Book {
	q := strings.ToLower(query)
	return filter(books, func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q)
	})
}

// EmployeesByDepartment returns employees in department (exact match).
func EmployeesByDepartment(department string) []Employee {
	return filter(employees, func(e Employee) bool { return e.Department == department })
}

// MaterialsByStatus returns inventory lines with the given stock status.
func MaterialsByStatus(status string) []Material {
	return filter(materials, func(m Material) bool { return m.Status == status })
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
