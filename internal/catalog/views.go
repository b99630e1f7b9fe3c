package catalog

import (
	"slices"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// CoursesFor scopes the course list to the viewer: teachers see their own courses,
// students see the courses they are enrolled in, everyone else sees all.
func CoursesFor(id *domainauth.Identity) []Course {
	if id == nil {
		return nil
	}
	switch id.Role {
	case domainauth.RoleTeacher:
		return CoursesByInstructor(id.DisplayName)
	case domainauth.RoleStudent:
		rec, ok := StudentByStudentID(id.StudentID)
		if !ok {
			return []Course{}
		}
		return filter(courses, func(c Course) bool { return slices.Contains(rec.EnrolledCourses, c.ID) })
	default:
		return Courses()
	}
}

// AssignmentsFor scopes assignments to the viewer: students see their own, everyone else sees all.
func AssignmentsFor(id *domainauth.Identity) []Assignment {
	if id == nil {
		return nil
	}
	if id.Role != domainauth.RoleStudent {
		return Assignments()
	}
	rec, ok := StudentByStudentID(id.StudentID)
	if !ok {
		return []Assignment{}
	}
	return AssignmentsByStudent(rec.ID)
}
