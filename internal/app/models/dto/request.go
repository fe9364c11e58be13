package dto

// EnrollmentRequest enrolls or unenrolls one student
type EnrollmentRequest struct {
	StudentID string `json:"studentId" validate:"notblank" example:"1"`
	CourseID  string `json:"courseId" validate:"notblank" example:"3"`
	// Enrolled defaults to true when omitted
	Enrolled *bool `json:"enrolled,omitempty"`
}

// IsEnroll reports whether the request adds the enrollment.
func (r EnrollmentRequest) IsEnroll() bool {
	return r.Enrolled == nil || *r.Enrolled
}

// BulkEnrollmentRequest applies the same enrollment change to many students
type BulkEnrollmentRequest struct {
	StudentIDs []string `json:"studentIds" validate:"min=1,dive,notblank"`
	CourseID   string   `json:"courseId" validate:"notblank"`
	Enrolled   *bool    `json:"enrolled,omitempty"`
}

// IsEnroll reports whether the request adds the enrollment.
func (r BulkEnrollmentRequest) IsEnroll() bool {
	return r.Enrolled == nil || *r.Enrolled
}
