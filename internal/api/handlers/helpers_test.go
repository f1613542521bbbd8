package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/storage"
)

const (
	testCookie = "pharmacy_session"
	testToken  = "test-session-token"
)

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
}

func newFakeEmployeeRepo(seed ...*models.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: map[string]*models.Employee{}}
	for _, e := range seed {
		repo.employees[e.ID] = e
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeEmployeeRepo) List(pageSize, pageNum int) ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Save(employee *models.Employee) error {
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) Delete(employee *models.Employee) error {
	delete(f.employees, employee.ID)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmailOrUsername(email, username string) (bool, error) {
	for _, e := range f.employees {
		if e.Email == email || e.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) FindByEmailOrUsername(email, username string) (*models.Employee, error) {
	for _, e := range f.employees {
		if email != "" {
			if e.Email == email {
				return e, nil
			}
			continue
		}
		if e.Username == username {
			return e, nil
		}
	}
	return nil, storage.ErrNotFound
}

type fakeSessionRepo struct {
	sessions map[string]*models.EmployeeSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.EmployeeSession{}}
}

func (f *fakeSessionRepo) Create(session *models.EmployeeSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetByID(id string) (*models.EmployeeSession, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeSessionRepo) GetByEmployee(employeeID string) (*models.EmployeeSession, error) {
	var latest *models.EmployeeSession
	for _, s := range f.sessions {
		if s.EmployeeID != employeeID {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}
	return latest, nil
}

func (f *fakeSessionRepo) Delete(session *models.EmployeeSession) error {
	delete(f.sessions, session.ID)
	return nil
}

// authedRouter builds an engine with the session middleware and a seeded
// admin whose cookie is testToken. mount registers the routes under test.
func authedRouter(t *testing.T, mount func(v1 *gin.RouterGroup)) (*gin.Engine, *models.Employee) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	admin := &models.Employee{
		Base:     models.Base{ID: "emp-admin"},
		Username: "admin",
		Email:    "admin@pharmacy.test",
		IsAdmin:  true,
	}
	employees := newFakeEmployeeRepo(admin)
	sessions := newFakeSessionRepo()
	require.NoError(t, sessions.Create(&models.EmployeeSession{
		Base:       models.Base{ID: testToken, CreatedAt: time.Now()},
		EmployeeID: admin.ID,
	}))
	svc := auth.NewService(employees, sessions, testCookie, time.Hour)

	engine := gin.New()
	engine.Use(middleware.SessionAuth(svc, []string{"/api/v1/register/"}))
	mount(engine.Group("/api/v1"))
	return engine, admin
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
