package models

// Grade is one student's result in one course.
type Grade struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"studentId" validate:"notblank"`
	CourseID     string  `json:"courseId" validate:"notblank"`
	Grade        string  `json:"grade" validate:"omitempty,letter_grade" example:"A-"`
	NumericGrade float64 `json:"numericGrade" validate:"gte=0,lte=100" example:"91"`
	Semester     string  `json:"semester" validate:"notblank" example:"Fall 2025"`
}

// LogicalID implements Entity.
func (g Grade) LogicalID() string { return g.ID }

// Clone returns a copy.
func (g Grade) Clone() Grade { return g }

// SamePair reports whether both grades belong to the same (student, course) pair.
func (g Grade) SamePair(studentID, courseID string) bool {
	return g.StudentID == studentID && g.CourseID == courseID
}

// LetterBand is one step of the letter scale: averages at or above Min earn Letter.
type LetterBand struct {
	Min    float64
	Letter string
}

// LetterScale is ordered highest band first; the last band catches every remaining average.
var LetterScale = []LetterBand{
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{60, "D"},
	{0, "F"},
}

// LetterGrades lists the letters of LetterScale, highest first.
func LetterGrades() []string {
	letters := make([]string, len(LetterScale))
	for i, band := range LetterScale {
		letters[i] = band.Letter
	}
	return letters
}

// IsLetterGrade reports whether letter is on the scale.
func IsLetterGrade(letter string) bool {
	for _, band := range LetterScale {
		if band.Letter == letter {
			return true
		}
	}
	return false
}

// GradePatch is a partial update of a Grade.
type GradePatch struct {
	StudentID    *string  `json:"studentId,omitempty" validate:"omitnil,notblank"`
	CourseID     *string  `json:"courseId,omitempty" validate:"omitnil,notblank"`
	Grade        *string  `json:"grade,omitempty" validate:"omitnil,letter_grade"`
	NumericGrade *float64 `json:"numericGrade,omitempty" validate:"omitnil,gte=0,lte=100"`
	Semester     *string  `json:"semester,omitempty" validate:"omitnil,notblank"`
}

// Apply implements Patch.
func (p GradePatch) Apply(g *Grade) {
	if p.StudentID != nil {
		g.StudentID = *p.StudentID
	}
	if p.CourseID != nil {
		g.CourseID = *p.CourseID
	}
	if p.Grade != nil {
		g.Grade = *p.Grade
	}
	if p.NumericGrade != nil {
		g.NumericGrade = *p.NumericGrade
	}
	if p.Semester != nil {
		g.Semester = *p.Semester
	}
}
