package server

import (
	"net/http"
	"strings"
	"testing"

	"libris/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _, db := setupTestApp(t)

	body := map[string]string{
		"username": "newreader",
		"email":    "newreader@example.com",
		"password": "Str0ngPassword",
	}
	status, env := doRequest(t, app, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeData(t, env, &data)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "newreader", data.User.Username)

	// password is stored hashed, never serialized
	assert.NotContains(t, string(env.Data), "Str0ngPassword")
	var stored models.User
	require.NoError(t, db.Where("username = ?", "newreader").First(&stored).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestRegister_Validation(t *testing.T) {
	app, _, _ := setupTestApp(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing fields", map[string]string{"username": "x"}},
		{"bad email", map[string]string{"username": "someone", "email": "not-an-email", "password": "Str0ngPassword"}},
		{"weak password", map[string]string{"username": "someone", "email": "s@example.com", "password": "weak"}},
		{"bad username", map[string]string{"username": "a", "email": "s@example.com", "password": "Str0ngPassword"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, app, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestRegister_Duplicates(t *testing.T) {
	app, _, db := setupTestApp(t)
	createServerTestUser(t, db, "existing", "Str0ngPassword")

	status, env := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "someoneelse",
		"email":    "existing@example.com",
		"password": "Str0ngPassword",
	}, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)

	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "existing",
		"email":    "fresh@example.com",
		"password": "Str0ngPassword",
	}, "")
	assert.Equal(t, http.StatusConflict, status)
}

func TestLogin(t *testing.T) {
	app, _, db := setupTestApp(t)
	createServerTestUser(t, db, "loginuser", "Str0ngPassword")

	t.Run("success", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "loginuser@example.com",
			"password": "Str0ngPassword",
		}, "")
		require.Equal(t, http.StatusOK, status)
		require.True(t, env.Success)

		var data struct {
			Token string `json:"token"`
		}
		decodeData(t, env, &data)
		assert.NotEmpty(t, data.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "loginuser@example.com",
			"password": "WrongPassword1",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.False(t, env.Success)
	})

	t.Run("unknown email", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "ghost@example.com",
			"password": "Str0ngPassword",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestLoginThenAccessProtectedRoute(t *testing.T) {
	app, _, db := setupTestApp(t)
	createServerTestUser(t, db, "roundtrip", "Str0ngPassword")

	status, env := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "roundtrip@example.com",
		"password": "Str0ngPassword",
	}, "")
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)

	status, env = doRequest(t, app, http.MethodGet, "/api/users/me", nil, data.Token)
	require.Equal(t, http.StatusOK, status)

	var me models.User
	decodeData(t, env, &me)
	assert.Equal(t, "roundtrip", me.Username)
}
