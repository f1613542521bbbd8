package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/validation"
)

// cookieMaxAge is the client-side lifetime of the session cookie, seconds.
const cookieMaxAge = 3600

type SessionAuthHandler struct {
	auth         *auth.Service
	cookieSecure bool
}

func NewSessionAuthHandler(svc *auth.Service, cookieSecure bool) *SessionAuthHandler {
	return &SessionAuthHandler{auth: svc, cookieSecure: cookieSecure}
}

// Login validates credentials, reuses the employee's live session when one
// exists, mints one otherwise, and sets the session cookie.
func (h *SessionAuthHandler) Login(c *gin.Context) {
	var req validation.EmployeeLogin
	if !validation.Bind(c, &req) {
		return
	}

	employee, err := h.auth.Authenticate(req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNoEmployee):
			respondError(c, http.StatusNotFound, "No employee found")
		case errors.Is(err, auth.ErrWrongPassword):
			respondError(c, http.StatusUnauthorized, "wrong password")
		default:
			serverError(c, err)
		}
		return
	}

	token, err := h.auth.GetSession(employee)
	if err != nil {
		serverError(c, err)
		return
	}
	if token == "" {
		token, err = h.auth.CreateSession(employee.ID)
		if err != nil {
			serverError(c, err)
			return
		}
	}

	c.SetCookie(h.auth.CookieName(), token, cookieMaxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Login successful",
		"employee_id": employee.ID,
	})
}

// Logout deletes the session behind the request's cookie and expires the
// cookie on the client.
func (h *SessionAuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.auth.CookieName())

	removed, err := h.auth.DestroySession(token)
	if err != nil {
		serverError(c, err)
		return
	}
	if !removed {
		respondError(c, http.StatusNotFound, "Not Found")
		return
	}

	c.SetCookie(h.auth.CookieName(), "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{})
}
