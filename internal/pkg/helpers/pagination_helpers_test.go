package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/unidash/internal/app/models/dto"
)

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name              string
		total, page, size int
		want              dto.PaginationInfo
	}{
		{name: "first page", total: 25, page: 1, size: 10, want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 3, PageSize: 10, TotalItems: 25}},
		{name: "past the end", total: 25, page: 4, size: 10, want: dto.PaginationInfo{CurrentPage: 4, TotalPages: 3, PageSize: 10, TotalItems: 25}},
		{name: "empty", total: 0, page: 1, size: 10, want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 0, PageSize: 10, TotalItems: 0}},
		{name: "defaults", total: 5, page: 0, size: 0, want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationInfo(tt.total, tt.page, tt.size))
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{query: "", wantPage: 1, wantSize: 10},
		{query: "page=3&size=5", wantPage: 3, wantSize: 5},
		{query: "page=2&limit=20", wantPage: 2, wantSize: 20},
		{query: "page=-1&size=abc", wantPage: 1, wantSize: 10},
		{query: "size=1000", wantPage: 1, wantSize: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/students?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
