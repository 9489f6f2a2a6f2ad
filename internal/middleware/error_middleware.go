package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
	"github.com/deniz/studytrack/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the HTTP status and error kind
// carried in the response envelope. Every handler funnels failures through
// here so the boundary contract stays uniform.
func HandleAPIError(c *gin.Context, err error) {
	switch apperrors.Kind(err) {
	case apperrors.ErrValidationFailed:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorKindValidation, err.Error())))
	case apperrors.ErrNotFound:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorKindNotFound, err.Error())))
	case apperrors.ErrDuplicate:
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorKindDuplicate, err.Error())))
	case apperrors.ErrStateConflict:
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorKindState, err.Error())))
	default:
		// Unclassified errors stay opaque to the caller
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled internal error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorKindInternal, "internal server error")))
	}
}

// BindError responds with a validation error for a malformed request body or
// parameter.
func BindError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorKindValidation, "invalid request data").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
