package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/database/models"
)

func sessionAuthTestRouter(t *testing.T) (*gin.Engine, *fakeSessionRepo, *models.Employee) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("Secret123")
	require.NoError(t, err)
	employee := &models.Employee{
		Base:     models.Base{ID: "emp-1"},
		Username: "jdoe",
		Email:    "jdoe@pharmacy.test",
		Password: hash,
	}
	employees := newFakeEmployeeRepo(employee)
	sessions := newFakeSessionRepo()
	svc := auth.NewService(employees, sessions, testCookie, time.Hour)
	h := NewSessionAuthHandler(svc, false)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/auth_session/login", h.Login)
	v1.DELETE("/auth_session/logout", h.Logout)
	return router, sessions, employee
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin(t *testing.T) {
	router, sessions, employee := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth_session/login",
		gin.H{"email": "jdoe@pharmacy.test", "password": "Secret123"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, employee.ID, body["employee_id"])

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	_, err := sessions.GetByID(cookie.Value)
	assert.NoError(t, err)
}

func TestLoginByUsername(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth_session/login",
		gin.H{"username": "jdoe", "password": "Secret123"}, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLoginReusesSession(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	payload := gin.H{"email": "jdoe@pharmacy.test", "password": "Secret123"}
	first := doJSON(router, http.MethodPost, "/api/v1/auth_session/login", payload, "")
	require.Equal(t, http.StatusCreated, first.Code)
	second := doJSON(router, http.MethodPost, "/api/v1/auth_session/login", payload, "")
	require.Equal(t, http.StatusCreated, second.Code)

	assert.Equal(t, sessionCookie(t, first).Value, sessionCookie(t, second).Value)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth_session/login",
		gin.H{"email": "jdoe@pharmacy.test", "password": "Wrong1234"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong password", decodeBody(t, rec)["error"])
}

func TestLoginUnknownEmployee(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth_session/login",
		gin.H{"email": "nobody@pharmacy.test", "password": "Secret123"}, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No employee found", decodeBody(t, rec)["error"])
}

func TestLoginMissingIdentifier(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth_session/login",
		gin.H{"password": "Secret123"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Must have either email or username", decodeBody(t, rec)["error"])
}

func TestLogout(t *testing.T) {
	router, sessions, employee := sessionAuthTestRouter(t)
	require.NoError(t, sessions.Create(&models.EmployeeSession{
		Base:       models.Base{ID: testToken, CreatedAt: time.Now()},
		EmployeeID: employee.ID,
	}))

	rec := doJSON(router, http.MethodDelete, "/api/v1/auth_session/logout", nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	// Session row removed and client cookie expired.
	assert.Empty(t, sessions.sessions)
	assert.Negative(t, sessionCookie(t, rec).MaxAge)
}

func TestLogoutWithoutSession(t *testing.T) {
	router, _, _ := sessionAuthTestRouter(t)

	rec := doJSON(router, http.MethodDelete, "/api/v1/auth_session/logout", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeBody(t, rec)["error"])

	rec = doJSON(router, http.MethodDelete, "/api/v1/auth_session/logout", nil, "stale-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
