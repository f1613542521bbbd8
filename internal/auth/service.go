// Package auth implements credential authentication and database-backed
// session management. Sessions are opaque uuid tokens stored in the
// employee_sessions table: minted at login when no live session exists,
// resolved on every authenticated request, and removed at logout, on expiry,
// or when the owning employee is deleted.
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/storage"
)

var (
	// ErrNoEmployee means no employee matched the given email/username.
	ErrNoEmployee = errors.New("no employee found")
	// ErrWrongPassword means the hash comparison failed.
	ErrWrongPassword = errors.New("wrong password")
)

type EmployeeStore interface {
	GetByID(id string) (*models.Employee, error)
	FindByEmailOrUsername(email, username string) (*models.Employee, error)
}

type SessionStore interface {
	Create(session *models.EmployeeSession) error
	GetByID(id string) (*models.EmployeeSession, error)
	GetByEmployee(employeeID string) (*models.EmployeeSession, error)
	Delete(session *models.EmployeeSession) error
}

// Service is constructed once at startup and injected wherever sessions are
// needed; there is no package-level state.
type Service struct {
	employees       EmployeeStore
	sessions        SessionStore
	cookieName      string
	sessionDuration time.Duration
}

func NewService(employees EmployeeStore, sessions SessionStore, cookieName string, sessionDuration time.Duration) *Service {
	return &Service{
		employees:       employees,
		sessions:        sessions,
		cookieName:      cookieName,
		sessionDuration: sessionDuration,
	}
}

func (s *Service) CookieName() string {
	return s.cookieName
}

// Authenticate looks up an employee by email when provided, else by
// username, and verifies the password against the stored bcrypt hash.
func (s *Service) Authenticate(email, username, password string) (*models.Employee, error) {
	employee, err := s.employees.FindByEmailOrUsername(email, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoEmployee
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return employee, nil
}

// CreateSession mints a new opaque token for the employee and persists it.
func (s *Service) CreateSession(employeeID string) (string, error) {
	if employeeID == "" {
		return "", errors.New("employee id is required")
	}
	now := time.Now()
	session := &models.EmployeeSession{
		Base:       models.Base{ID: uuid.NewString(), CreatedAt: now, LastUpdated: now},
		EmployeeID: employeeID,
	}
	if err := s.sessions.Create(session); err != nil {
		return "", err
	}
	return session.ID, nil
}

// GetSession returns the employee's existing unexpired token, or "" when
// none exists. Login uses this to reuse sessions instead of reissuing.
func (s *Service) GetSession(employee *models.Employee) (string, error) {
	session, err := s.sessions.GetByEmployee(employee.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if s.expired(session) {
		return "", nil
	}
	return session.ID, nil
}

// EmployeeIDForSession resolves a token to its employee id. Expired sessions
// are deleted on sight and resolve to "".
func (s *Service) EmployeeIDForSession(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	session, err := s.sessions.GetByID(token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if s.expired(session) {
		if err := s.sessions.Delete(session); err != nil {
			log.Printf("failed to delete expired session: %v", err)
		}
		return "", nil
	}
	return session.EmployeeID, nil
}

// CurrentEmployee resolves a session token to the owning employee, or nil
// when the token is absent, unknown, or expired.
func (s *Service) CurrentEmployee(token string) (*models.Employee, error) {
	employeeID, err := s.EmployeeIDForSession(token)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, nil
	}
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employee, nil
}

// DestroySession removes the session behind the token. The boolean reports
// whether a session was found and removed.
func (s *Service) DestroySession(token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	session, err := s.sessions.GetByID(token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.sessions.Delete(session); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) expired(session *models.EmployeeSession) bool {
	if s.sessionDuration <= 0 {
		return false
	}
	return time.Since(session.CreatedAt) > s.sessionDuration
}

// RequireAuth reports whether a request path requires an authenticated
// session. A path missing its trailing slash is normalized before the
// exclusion check.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	for _, excluded := range excludedPaths {
		if path == excluded {
			return false
		}
	}
	return true
}

// HashPassword produces the salted bcrypt hash stored on the employee row.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
