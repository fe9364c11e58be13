package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

type sample struct {
	Name    string   `json:"name" validate:"notblank"`
	Email   string   `json:"email" validate:"required,email"`
	GPA     float64  `json:"gpa" validate:"gte=0,lte=4"`
	Letter  string   `json:"grade" validate:"omitempty,letter_grade"`
	Faculty []string `json:"facultyIds" validate:"min=1"`
}

func TestStruct_CollectsEveryField(t *testing.T) {
	err := Struct(sample{Name: "  ", Email: "nope", GPA: 4.5, Letter: "E"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)

	got := map[string]string{}
	for _, f := range vErr.Fields {
		got[f.Field] = f.Message
	}
	assert.Equal(t, map[string]string{
		"name":       "is required",
		"email":      "must be a valid email address",
		"gpa":        "must be less than or equal to 4",
		"grade":      "must be one of: A, A-, B+, B, B-, C+, C, C-, D, F",
		"facultyIds": "must contain at least 1 item(s)",
	}, got)
}

func TestStruct_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   sample
	}{
		{name: "all fields", in: sample{Name: "Ada", Email: "ada@uni.edu", GPA: 4, Letter: "A-", Faculty: []string{"f1"}}},
		{name: "letter omitted", in: sample{Name: "Ada", Email: "ada@uni.edu", GPA: 0, Faculty: []string{"f1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Struct(tt.in))
		})
	}
}

func TestLetterGradeRule_AcceptsTheWholeScale(t *testing.T) {
	for _, letter := range models.LetterGrades() {
		t.Run(letter, func(t *testing.T) {
			assert.NoError(t, Struct(sample{Name: "Ada", Email: "ada@uni.edu", Letter: letter, Faculty: []string{"f1"}}))
		})
	}
	assert.Len(t, models.LetterGrades(), 10)
	assert.Error(t, Struct(sample{Name: "Ada", Email: "ada@uni.edu", Letter: "a", Faculty: []string{"f1"}}))
}

func TestCollect_PassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, Collect(other))
	assert.NoError(t, Collect(nil))
}
