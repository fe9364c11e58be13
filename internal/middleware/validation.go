package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/pkg/validation"
)

// BindJSON decodes the request body into obj. On malformed JSON it writes a
// 400 response and returns false; field rules are left to the services.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// BindAndValidate decodes the body like BindJSON and then checks its validate tags,
// reporting every violating field at once.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if !BindJSON(c, obj) {
		return false
	}
	if err := validation.Struct(obj); err != nil {
		HandleAPIError(c, err)
		return false
	}
	return true
}
