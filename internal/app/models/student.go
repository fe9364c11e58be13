package models

// Student defines a student record
type Student struct {
	ID              string   `json:"id" example:"1"`
	Name            string   `json:"name" validate:"notblank" example:"Alice Johnson"`
	Email           string   `json:"email" validate:"required,email" example:"alice.johnson@university.edu"`
	GPA             float64  `json:"gpa" validate:"gte=0,lte=4" example:"3.95"`
	Year            int      `json:"year" validate:"gte=1,lte=6" example:"3"`
	Major           string   `json:"major" validate:"notblank" example:"Computer Science"`
	// EnrolledCourses holds course ids without duplicates
	EnrolledCourses []string `json:"enrolledCourses"`
}

// LogicalID implements Entity.
func (s Student) LogicalID() string { return s.ID }

// Clone returns a deep copy.
func (s Student) Clone() Student {
	s.EnrolledCourses = cloneStrings(s.EnrolledCourses)
	return s
}

// IsEnrolledIn reports whether the student lists courseID.
func (s Student) IsEnrolledIn(courseID string) bool {
	return ContainsString(s.EnrolledCourses, courseID)
}

// StudentPatch is a partial update of a Student. Nil fields are left untouched.
type StudentPatch struct {
	Name            *string   `json:"name,omitempty" validate:"omitnil,notblank"`
	Email           *string   `json:"email,omitempty" validate:"omitnil,email"`
	GPA             *float64  `json:"gpa,omitempty" validate:"omitnil,gte=0,lte=4"`
	Year            *int      `json:"year,omitempty" validate:"omitnil,gte=1,lte=6"`
	Major           *string   `json:"major,omitempty" validate:"omitnil,notblank"`
	EnrolledCourses *[]string `json:"enrolledCourses,omitempty"`
}

// Apply implements Patch.
func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.GPA != nil {
		s.GPA = *p.GPA
	}
	if p.Year != nil {
		s.Year = *p.Year
	}
	if p.Major != nil {
		s.Major = *p.Major
	}
	if p.EnrolledCourses != nil {
		s.EnrolledCourses = cloneStrings(*p.EnrolledCourses)
	}
}
