package platformerrors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_CarriesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	cause := errors.New("connection refused")

	err := NewError(ctx, LayerInfrastructure, ErrorTypeExternal, "upstream call failed", cause)

	assert.Equal(t, "req-123", err.RequestID)
	assert.NotEmpty(t, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "upstream call failed: connection refused", err.Description())
	assert.Contains(t, err.Error(), "[infrastructure][EXTERNAL]")
}

func TestAsError(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, AsError(ctx, LayerDomain, nil, "ignored"))

	plain := AsError(ctx, LayerDomain, errors.New("boom"), "create session")
	assert.Equal(t, ErrorTypeInternal, plain.Type)

	inner := NewError(ctx, LayerInfrastructure, ErrorTypeExternal, "upstream", errors.New("eof"))
	wrapped := AsError(ctx, LayerDomain, inner, "create session")
	assert.Equal(t, ErrorTypeExternal, wrapped.Type)
	assert.Equal(t, inner.Code, wrapped.Code)
	assert.True(t, IsErrorType(wrapped, ErrorTypeExternal))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrorTypeToHTTPStatus(ErrorTypeValidation))
	assert.Equal(t, http.StatusNotFound, ErrorTypeToHTTPStatus(ErrorTypeNotFound))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorTypeExternal))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorTypeInternal))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorType("UNKNOWN")))
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "external platform error",
			err:        NewError(context.Background(), LayerInfrastructure, ErrorTypeExternal, "upstream call failed", errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "upstream call failed: timeout",
		},
		{
			name:       "validation platform error",
			err:        NewError(context.Background(), LayerRoute, ErrorTypeValidation, "destination is required", nil),
			wantStatus: http.StatusBadRequest,
			wantError:  "destination is required",
		},
		{
			name:       "plain error",
			err:        errors.New("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "something broke",
		},
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantError:  "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteError(c, tt.err, zerolog.Nop())

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HTTPErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
