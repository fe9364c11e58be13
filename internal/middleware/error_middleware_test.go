package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "per-kind not found", err: fmt.Errorf("lookup: %w", apperrors.ErrStudentNotFound), wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "validation", err: apperrors.NewValidationError(apperrors.FieldError{Field: "gpa", Message: "must be at most 4"}), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed},
		{name: "conflict", err: apperrors.ErrGradeAlreadyExists, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "bad request", err: apperrors.NewBadRequestError("unknown sort field"), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeBadRequest},
		{name: "store unavailable", err: apperrors.NewStoreUnavailableError("list students", errors.New("dial tcp: refused")), wantStatus: http.StatusServiceUnavailable, wantCode: dto.ErrorCodeStoreUnavailable},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_ValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/students", nil)

	vErr := &apperrors.ValidationError{}
	vErr.Add("name", "is required")
	vErr.Add("gpa", "must be at most 4")
	HandleAPIError(c, vErr)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error struct {
			Details []apperrors.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, vErr.Fields, resp.Error.Details)
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "grade not found", messageOf(fmt.Errorf("%w: id 9", apperrors.ErrGradeNotFound), "fallback"))
	assert.Equal(t, "fallback", messageOf(apperrors.ErrNotFound, "fallback"))
}
