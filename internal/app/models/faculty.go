package models

// Faculty represents a teaching staff member
type Faculty struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"notblank"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"notblank"`
	Title      string `json:"title" validate:"notblank"`
	// CoursesTeaching is a read view derived from Course.FacultyIDs.
	CoursesTeaching []string `json:"coursesTeaching"`
}

// LogicalID implements Entity.
func (f Faculty) LogicalID() string { return f.ID }

// Clone returns a deep copy.
func (f Faculty) Clone() Faculty {
	f.CoursesTeaching = cloneStrings(f.CoursesTeaching)
	return f
}

// FacultyPatch is a partial update of a Faculty member.
type FacultyPatch struct {
	Name       *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Email      *string `json:"email,omitempty" validate:"omitnil,email"`
	Department *string `json:"department,omitempty" validate:"omitnil,notblank"`
	Title      *string `json:"title,omitempty" validate:"omitnil,notblank"`
}

// Apply implements Patch.
func (p FacultyPatch) Apply(f *Faculty) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Department != nil {
		f.Department = *p.Department
	}
	if p.Title != nil {
		f.Title = *p.Title
	}
}
