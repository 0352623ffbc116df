package httputil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/slalom/capabilities/internal/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:            "not found",
			err:             apperrors.Wrap(apperrors.ErrNotFound, "capability not found"),
			expectedStatus:  http.StatusNotFound,
			expectedError:   "not_found",
			expectedMessage: "The requested resource was not found",
		},
		{
			name:            "conflict passes domain text through",
			err:             apperrors.Wrap(apperrors.ErrConflict, "consultant is already registered for this capability"),
			expectedStatus:  http.StatusBadRequest,
			expectedError:   "conflict",
			expectedMessage: "consultant is already registered for this capability: conflict",
		},
		{
			name:            "invalid input passes error text through",
			err:             apperrors.Wrap(apperrors.ErrInvalidInput, "email is required"),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedError:   "invalid_input",
			expectedMessage: "email is required: invalid input",
		},
		{
			name:            "unauthorized",
			err:             apperrors.ErrUnauthorized,
			expectedStatus:  http.StatusUnauthorized,
			expectedError:   "unauthorized",
			expectedMessage: "Authentication is required",
		},
		{
			name:            "forbidden",
			err:             apperrors.ErrForbidden,
			expectedStatus:  http.StatusForbidden,
			expectedError:   "forbidden",
			expectedMessage: "You don't have permission to access this resource",
		},
		{
			name:            "unknown error hides details",
			err:             apperrors.New("database exploded"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "internal_error",
			expectedMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, createTestLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedError)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
		})
	}
}

func TestHandleErrorGinNilError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, nil, createTestLogger())

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, apperrors.New("malformed JSON body"), createTestLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"malformed JSON body"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, apperrors.New("email: cannot be blank"), createTestLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"email: cannot be blank"}`, w.Body.String())
}
