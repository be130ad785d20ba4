package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Validation failures must be rejected before any storage call, so
// these run against a Handler with no store wired.
func TestRegisterUserValidation(t *testing.T) {
	h := &Handler{}
	r := gin.New()
	r.POST("/auth/register", h.RegisterUser)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Ana","password":"longenough"}`},
		{"malformed email", `{"name":"Ana","email":"nope","password":"longenough"}`},
		{"short password", `{"name":"Ana","email":"ana@example.com","password":"short"}`},
		{"unknown account type", `{"name":"Ana","email":"ana@example.com","password":"longenough","accountType":"staff"}`},
		{"not json", `plain text`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	h := &Handler{}
	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := postJSON(r, "/auth/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
