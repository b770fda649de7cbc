package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorResponse{Error: 422, Message: "unprocessable"}, NewErrorResponse(http.StatusUnprocessableEntity))
	assert.Equal(t, "method not allowed", NewErrorResponse(http.StatusMethodNotAllowed).Message)
	assert.Equal(t, "Conflict", NewErrorResponse(http.StatusConflict).Message)
}

func TestPageParam(t *testing.T) {
	tests := map[string]int{
		"/questions":          1,
		"/questions?page=3":   3,
		"/questions?page=abc": 1,
		"/questions?page=-2":  -2,
	}

	for target, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		assert.Equal(t, want, pageParam(c), target)
	}
}

func TestIDParam(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := idParam(c, "id")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)

	c.Params = gin.Params{{Key: "id", Value: "-1"}}
	_, ok = idParam(c, "id")
	assert.False(t, ok)
}
