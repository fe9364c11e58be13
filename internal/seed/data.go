package seed

import "github.com/yigit/unidash/internal/app/models"

// Students is the demo student roster
var Students = []models.Student{
	{ID: "1", Name: "Alice Johnson", Email: "alice.johnson@university.edu", GPA: 3.95, Year: 3, Major: "Computer Science", EnrolledCourses: []string{"1", "2", "5"}},
	{ID: "2", Name: "Bob Smith", Email: "bob.smith@university.edu", GPA: 3.87, Year: 2, Major: "Mathematics", EnrolledCourses: []string{"2", "3"}},
	{ID: "3", Name: "Charlie Davis", Email: "charlie.davis@university.edu", GPA: 3.92, Year: 4, Major: "Computer Science", EnrolledCourses: []string{"1", "4", "5"}},
	{ID: "4", Name: "Diana Martinez", Email: "diana.martinez@university.edu", GPA: 3.78, Year: 1, Major: "Physics", EnrolledCourses: []string{"3", "4"}},
	{ID: "5", Name: "Ethan Brown", Email: "ethan.brown@university.edu", GPA: 3.65, Year: 2, Major: "Engineering", EnrolledCourses: []string{"1", "2"}},
	{ID: "6", Name: "Fiona Wilson", Email: "fiona.wilson@university.edu", GPA: 3.88, Year: 3, Major: "Computer Science", EnrolledCourses: []string{"1", "5"}},
	{ID: "7", Name: "George Taylor", Email: "george.taylor@university.edu", GPA: 3.71, Year: 2, Major: "Mathematics", EnrolledCourses: []string{"2", "3"}},
	{ID: "8", Name: "Hannah Lee", Email: "hannah.lee@university.edu", GPA: 3.84, Year: 4, Major: "Physics", EnrolledCourses: []string{"3", "4"}},
	{ID: "9", Name: "Ian Parker", Email: "ian.parker@university.edu", GPA: 3.58, Year: 1, Major: "Engineering", EnrolledCourses: []string{"1", "4"}},
	{ID: "10", Name: "Julia Roberts", Email: "julia.roberts@university.edu", GPA: 3.76, Year: 2, Major: "Mathematics", EnrolledCourses: []string{"2"}},
	{ID: "11", Name: "Kevin Nguyen", Email: "kevin.nguyen@university.edu", GPA: 3.69, Year: 3, Major: "Computer Science", EnrolledCourses: []string{"1", "5"}},
	{ID: "12", Name: "Lina Gomez", Email: "lina.gomez@university.edu", GPA: 3.82, Year: 4, Major: "Physics", EnrolledCourses: []string{"3"}},
	{ID: "13", Name: "Mohammed Ali", Email: "mohammed.ali@university.edu", GPA: 3.61, Year: 2, Major: "Engineering", EnrolledCourses: []string{"1", "2"}},
	{ID: "14", Name: "Nora Svensson", Email: "nora.svensson@university.edu", GPA: 3.90, Year: 3, Major: "Computer Science", EnrolledCourses: []string{"5"}},
	{ID: "15", Name: "Omar Haddad", Email: "omar.haddad@university.edu", GPA: 3.55, Year: 1, Major: "Mathematics", EnrolledCourses: []string{"2", "3"}},
	{ID: "16", Name: "Priya Singh", Email: "priya.singh@university.edu", GPA: 3.97, Year: 4, Major: "Computer Science", EnrolledCourses: []string{"1", "5"}},
	{ID: "17", Name: "Quentin Blake", Email: "quentin.blake@university.edu", GPA: 3.48, Year: 2, Major: "Engineering", EnrolledCourses: []string{"4"}},
	{ID: "18", Name: "Rita Patel", Email: "rita.patel@university.edu", GPA: 3.73, Year: 3, Major: "Mathematics", EnrolledCourses: []string{"2", "5"}},
	{ID: "19", Name: "Samir Khan", Email: "samir.khan@university.edu", GPA: 3.66, Year: 1, Major: "Physics", EnrolledCourses: []string{"3"}},
	{ID: "20", Name: "Tara O'Neill", Email: "tara.oneill@university.edu", GPA: 3.81, Year: 2, Major: "Computer Science", EnrolledCourses: []string{"1", "5"}},
}

// Courses is the demo course catalog. Enrollment counts are derived after seeding.
var Courses = []models.Course{
	{ID: "1", Name: "Data Structures & Algorithms", Code: "CS301", Department: "Computer Science", Credits: 4, FacultyIDs: []string{"1", "2"}, Semester: "Fall 2025"},
	{ID: "2", Name: "Linear Algebra", Code: "MATH201", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Fall 2025"},
	{ID: "3", Name: "Quantum Mechanics", Code: "PHY401", Department: "Physics", Credits: 4, FacultyIDs: []string{"4"}, Semester: "Fall 2025"},
	{ID: "4", Name: "Thermodynamics", Code: "PHY301", Department: "Physics", Credits: 3, FacultyIDs: []string{"4", "5"}, Semester: "Fall 2025"},
	{ID: "5", Name: "Machine Learning", Code: "CS401", Department: "Computer Science", Credits: 4, FacultyIDs: []string{"1"}, Semester: "Fall 2025"},
	{ID: "6", Name: "Operating Systems", Code: "CS302", Department: "Computer Science", Credits: 4, FacultyIDs: []string{"2"}, Semester: "Spring 2026"},
	{ID: "7", Name: "Probability & Statistics", Code: "MATH301", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Spring 2026"},
	{ID: "8", Name: "Electromagnetism", Code: "PHY302", Department: "Physics", Credits: 3, FacultyIDs: []string{"4"}, Semester: "Spring 2026"},
	{ID: "9", Name: "Database Systems", Code: "CS350", Department: "Computer Science", Credits: 3, FacultyIDs: []string{"1"}, Semester: "Spring 2026"},
	{ID: "10", Name: "Numerical Methods", Code: "MATH320", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Spring 2026"},
	{ID: "11", Name: "Computer Networks", Code: "CS303", Department: "Computer Science", Credits: 3, FacultyIDs: []string{"2"}, Semester: "Fall 2026"},
	{ID: "12", Name: "Compiler Design", Code: "CS405", Department: "Computer Science", Credits: 4, FacultyIDs: []string{"1"}, Semester: "Fall 2026"},
	{ID: "13", Name: "Abstract Algebra", Code: "MATH401", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Fall 2026"},
	{ID: "14", Name: "Complex Analysis", Code: "MATH402", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Spring 2027"},
	{ID: "15", Name: "Astrophysics", Code: "PHY401", Department: "Physics", Credits: 4, FacultyIDs: []string{"4"}, Semester: "Fall 2026"},
	{ID: "16", Name: "Solid State Physics", Code: "PHY403", Department: "Physics", Credits: 3, FacultyIDs: []string{"5"}, Semester: "Spring 2027"},
	{ID: "17", Name: "Software Engineering", Code: "CS310", Department: "Computer Science", Credits: 3, FacultyIDs: []string{"1", "2"}, Semester: "Spring 2026"},
	{ID: "18", Name: "Numerical Linear Algebra", Code: "MATH330", Department: "Mathematics", Credits: 3, FacultyIDs: []string{"3"}, Semester: "Spring 2027"},
}

// Faculty is the demo teaching staff
var Faculty = []models.Faculty{
	{ID: "1", Name: "Dr. Sarah Connor", Email: "sarah.connor@university.edu", Department: "Computer Science", Title: "Professor"},
	{ID: "2", Name: "Dr. John McCarthy", Email: "john.mccarthy@university.edu", Department: "Computer Science", Title: "Associate Professor"},
	{ID: "3", Name: "Dr. Alan Turing", Email: "alan.turing@university.edu", Department: "Mathematics", Title: "Professor"},
	{ID: "4", Name: "Dr. Marie Curie", Email: "marie.curie@university.edu", Department: "Physics", Title: "Professor"},
	{ID: "5", Name: "Dr. Albert Einstein", Email: "albert.einstein@university.edu", Department: "Physics", Title: "Distinguished Professor"},
}

// Grades is the demo grade book
var Grades = []models.Grade{
	{ID: "1", StudentID: "1", CourseID: "1", Grade: "A", NumericGrade: 95, Semester: "Fall 2025"},
	{ID: "2", StudentID: "1", CourseID: "2", Grade: "A", NumericGrade: 97, Semester: "Fall 2025"},
	{ID: "3", StudentID: "2", CourseID: "2", Grade: "A-", NumericGrade: 91, Semester: "Fall 2025"},
	{ID: "4", StudentID: "2", CourseID: "3", Grade: "B+", NumericGrade: 88, Semester: "Fall 2025"},
	{ID: "5", StudentID: "3", CourseID: "1", Grade: "A", NumericGrade: 96, Semester: "Fall 2025"},
	{ID: "6", StudentID: "3", CourseID: "4", Grade: "A-", NumericGrade: 92, Semester: "Fall 2025"},
	{ID: "7", StudentID: "4", CourseID: "3", Grade: "B+", NumericGrade: 87, Semester: "Fall 2025"},
	{ID: "8", StudentID: "5", CourseID: "1", Grade: "B", NumericGrade: 85, Semester: "Fall 2025"},
	{ID: "9", StudentID: "6", CourseID: "5", Grade: "A-", NumericGrade: 92, Semester: "Fall 2025"},
	{ID: "10", StudentID: "7", CourseID: "2", Grade: "B+", NumericGrade: 88, Semester: "Fall 2025"},
	{ID: "11", StudentID: "8", CourseID: "3", Grade: "A", NumericGrade: 95, Semester: "Fall 2025"},
	{ID: "12", StudentID: "9", CourseID: "4", Grade: "B", NumericGrade: 84, Semester: "Fall 2025"},
	{ID: "13", StudentID: "10", CourseID: "2", Grade: "A-", NumericGrade: 93, Semester: "Fall 2025"},
}
