package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   dto.ErrorKind
	}{
		{"validation", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorKindValidation},
		{"not found core", apperrors.ErrNotFound, http.StatusNotFound, dto.ErrorKindNotFound},
		{"not found entity", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorKindNotFound},
		{"duplicate", apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorKindDuplicate},
		{"state", apperrors.ErrSessionAlreadyClosed, http.StatusConflict, dto.ErrorKindState},
		{"internal", fmt.Errorf("pool exhausted"), http.StatusInternalServerError, dto.ErrorKindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
			assert.False(t, resp.Timestamp.IsZero())
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, fmt.Errorf("connection to 10.0.0.3 refused"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)

	// Unclassified errors must not leak their message
	assert.Equal(t, "internal server error", resp.Error.Message)
}

func TestBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	BindError(c, fmt.Errorf("json: cannot unmarshal string into Go struct field"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorKindValidation, resp.Error.Kind)
}
