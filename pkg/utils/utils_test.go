package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeLocation(t *testing.T) {
	tests := map[string]string{
		"Paris":         "paris",
		"New York":      "newyork",
		"  new\tyork\n": "newyork",
		"SÃO PAULO":     "sãopaulo",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLocation(in), "%q", in)
	}
}

func serveError(err error) (*httptest.ResponseRecorder, APIResponse) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Set("trace_id", "trace-1")
	HandleServiceError(c, zap.NewNop(), err)

	var resp APIResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	return rr, resp
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{ErrInvalidDays, http.StatusBadRequest, "Days must be greater than 0"},
		{ErrInvalidBudget, http.StatusBadRequest, "Budget must be greater than 0"},
		{ErrLocationRequired, http.StatusBadRequest, "Location is required"},
		{ErrInvalidBody, http.StatusBadRequest, "Invalid request body"},
		{fmt.Errorf("%w: timeout", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		rr, resp := serveError(tt.err)
		assert.Equal(t, tt.code, rr.Code, tt.err.Error())
		assert.Equal(t, tt.code, resp.Code)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, tt.message, resp.Message)
		assert.Equal(t, tt.message, resp.Detail)
		assert.Equal(t, "trace-1", resp.TraceID)
	}
}

func TestRespondSuccessWithoutTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	RespondSuccess(c, []string{"Paris"}, "ok")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"ok","data":["Paris"]}`, rr.Body.String())
}
