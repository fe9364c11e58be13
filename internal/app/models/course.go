package models

// Course represents a course offered by a department.
type Course struct {
	ID              string            `json:"id"`
	Name            string            `json:"name" validate:"notblank"`
	Code            string            `json:"code" validate:"notblank"`
	Department      string            `json:"department" validate:"notblank"`
	Credits         int               `json:"credits" validate:"gte=1,lte=6"`
	FacultyIDs      []string          `json:"facultyIds" validate:"min=1"`
	// EnrollmentCount is derived from the student side, never trusted as input
	EnrollmentCount int               `json:"enrollmentCount"`
	Semester        string            `json:"semester" validate:"notblank"`
	Description     *string           `json:"description,omitempty"`
	Prerequisites   []string          `json:"prerequisites,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// LogicalID implements Entity.
func (c Course) LogicalID() string { return c.ID }

// Clone returns a deep copy.
func (c Course) Clone() Course {
	c.FacultyIDs = cloneStrings(c.FacultyIDs)
	c.Prerequisites = cloneStrings(c.Prerequisites)
	if c.Description != nil {
		d := *c.Description
		c.Description = &d
	}
	if c.Metadata != nil {
		m := make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			m[k] = v
		}
		c.Metadata = m
	}
	return c
}

// CoursePatch is a partial update of a Course. EnrollmentCount is only set by the
// enrollment engine, never decoded from a client payload.
type CoursePatch struct {
	Name            *string            `json:"name,omitempty" validate:"omitnil,notblank"`
	Code            *string            `json:"code,omitempty" validate:"omitnil,notblank"`
	Department      *string            `json:"department,omitempty" validate:"omitnil,notblank"`
	Credits         *int               `json:"credits,omitempty" validate:"omitnil,gte=1,lte=6"`
	FacultyIDs      *[]string          `json:"facultyIds,omitempty" validate:"omitnil,min=1"`
	Semester        *string            `json:"semester,omitempty" validate:"omitnil,notblank"`
	Description     *string            `json:"description,omitempty"`
	Prerequisites   *[]string          `json:"prerequisites,omitempty"`
	Metadata        *map[string]string `json:"metadata,omitempty"`
	EnrollmentCount *int               `json:"-"`
}

// Apply implements Patch.
func (p CoursePatch) Apply(c *Course) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Department != nil {
		c.Department = *p.Department
	}
	if p.Credits != nil {
		c.Credits = *p.Credits
	}
	if p.FacultyIDs != nil {
		c.FacultyIDs = cloneStrings(*p.FacultyIDs)
	}
	if p.Semester != nil {
		c.Semester = *p.Semester
	}
	if p.Description != nil {
		d := *p.Description
		c.Description = &d
	}
	if p.Prerequisites != nil {
		c.Prerequisites = cloneStrings(*p.Prerequisites)
	}
	if p.Metadata != nil {
		m := make(map[string]string, len(*p.Metadata))
		for k, v := range *p.Metadata {
			m[k] = v
		}
		c.Metadata = m
	}
	if p.EnrollmentCount != nil {
		c.EnrollmentCount = *p.EnrollmentCount
	}
}
