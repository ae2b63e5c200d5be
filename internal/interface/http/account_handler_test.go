package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/infrastructure/memory"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/helpers"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
	helpers.PasswordCost = bcrypt.MinCost
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := application.NewAccountService(
		memory.NewUserRepository(),
		helpers.NewJWTManager("secret", time.Hour, "test"),
		helpers.NewNopLogger(),
	)
	h := NewAccountHandler(svc, helpers.NewNopLogger())
	r := gin.New()
	r.POST("/api/users", h.CreateUser)
	r.POST("/api/users/sessions", h.CreateSession)
	return r
}

func do(t *testing.T, r http.Handler, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestAccountHandler_CreateUser(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, "/api/users", `{"email":"a@b.com","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "a@b.com", env.Data["email"])
	assert.Equal(t, "users", env.Data["type"])
	assert.NotEmpty(t, env.Data["_id"])
	assert.NotContains(t, env.Data, "password")
}

func TestAccountHandler_CreateUser_Duplicate(t *testing.T) {
	r := newTestRouter(t)
	code, _ := do(t, r, "/api/users", `{"email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, r, "/api/users", `{"email":"a@b.com","password":"other"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Success)
	assert.Equal(t, "email has already been taken", env.Message)
}

func TestAccountHandler_CreateUser_InvalidPayload(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"bad email", `{"email":"nope","password":"x"}`, "email", "must be a valid email"},
		{"missing password", `{"email":"a@b.com"}`, "password", "is required"},
		{"broken json", `{"email":`, "payload", "invalid json"},
		{"empty body", ``, "payload", "empty body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, "/api/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.want, env.Error[tt.field])
		})
	}
}

func TestAccountHandler_CreateSession(t *testing.T) {
	r := newTestRouter(t)
	code, _ := do(t, r, "/api/users", `{"email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, r, "/api/users/sessions", `{"email":"a@b.com","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, env.Data["token"])
}

func TestAccountHandler_CreateSession_WrongPassword(t *testing.T) {
	r := newTestRouter(t)
	code, _ := do(t, r, "/api/users", `{"email":"a@b.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, r, "/api/users/sessions", `{"email":"a@b.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid credentials", env.Message)
	assert.Nil(t, env.Data)
}
