package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/storage"
)

type fakeBrandRepo struct {
	brands    map[string]*models.Brand
	createErr error
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[string]*models.Brand{}}
}

func (f *fakeBrandRepo) Create(brand *models.Brand) error {
	if f.createErr != nil {
		return f.createErr
	}
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandRepo) GetByID(id string) (*models.Brand, error) {
	if b, ok := f.brands[id]; ok {
		return b, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeBrandRepo) List(pageSize, pageNum int) ([]models.Brand, error) {
	out := make([]models.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBrandRepo) Save(brand *models.Brand) error {
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandRepo) Delete(brand *models.Brand) error {
	delete(f.brands, brand.ID)
	return nil
}

func brandTestRouter(t *testing.T, repo *fakeBrandRepo) *gin.Engine {
	t.Helper()
	h := NewBrandHandler(repo)
	router, _ := authedRouter(t, func(v1 *gin.RouterGroup) {
		v1.POST("/brands", h.Create)
		v1.GET("/brands/:id/:page_num", h.List)
		v1.GET("/brands/:id", h.Get)
		v1.PUT("/brands/:id", h.Update)
		v1.DELETE("/brands/:id", h.Delete)
	})
	return router
}

func TestBrandCreate(t *testing.T) {
	repo := newFakeBrandRepo()
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodPost, "/api/v1/brands", gin.H{"name": "PharmaCo"}, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "pharmaco", body["name"])
	assert.Equal(t, true, body["is_active"])
	assert.Equal(t, "admin", body["added_by"])
	assert.NotEmpty(t, body["id"])
}

func TestBrandCreateInactive(t *testing.T) {
	repo := newFakeBrandRepo()
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodPost, "/api/v1/brands",
		gin.H{"name": "dormant labs", "is_active": false}, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["is_active"])
}

func TestBrandCreateUnauthorized(t *testing.T) {
	router := brandTestRouter(t, newFakeBrandRepo())

	rec := doJSON(router, http.MethodPost, "/api/v1/brands", gin.H{"name": "pharmaco"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBrandCreateDuplicate(t *testing.T) {
	repo := newFakeBrandRepo()
	repo.createErr = &storage.ConflictError{Detail: "Key (name)=(pharmaco) already exists."}
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodPost, "/api/v1/brands", gin.H{"name": "pharmaco"}, testToken)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Key (name)=(pharmaco) already exists.", decodeBody(t, rec)["error"])
}

func TestBrandListEmpty(t *testing.T) {
	router := brandTestRouter(t, newFakeBrandRepo())

	rec := doJSON(router, http.MethodGet, "/api/v1/brands/10/1", nil, testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No brand found", decodeBody(t, rec)["error"])
}

func TestBrandListBadPagination(t *testing.T) {
	router := brandTestRouter(t, newFakeBrandRepo())

	rec := doJSON(router, http.MethodGet, "/api/v1/brands/ten/1", nil, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/brands/10/0", nil, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrandGetMissing(t *testing.T) {
	router := brandTestRouter(t, newFakeBrandRepo())

	rec := doJSON(router, http.MethodGet, "/api/v1/brands/"+uuid.NewString(), nil, testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Brand does not exist", decodeBody(t, rec)["error"])
}

func TestBrandUpdate(t *testing.T) {
	repo := newFakeBrandRepo()
	brand := &models.Brand{Base: models.Base{ID: uuid.NewString()}, Name: "pharmaco", IsActive: true}
	repo.brands[brand.ID] = brand
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodPut, "/api/v1/brands/"+brand.ID,
		gin.H{"is_active": false}, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["is_active"])
	assert.False(t, repo.brands[brand.ID].IsActive)
}

func TestBrandUpdateEmptyPayload(t *testing.T) {
	repo := newFakeBrandRepo()
	brand := &models.Brand{Base: models.Base{ID: uuid.NewString()}, Name: "pharmaco"}
	repo.brands[brand.ID] = brand
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodPut, "/api/v1/brands/"+brand.ID, gin.H{}, testToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request data cannot be empty", decodeBody(t, rec)["error"])
}

func TestBrandDelete(t *testing.T) {
	repo := newFakeBrandRepo()
	brand := &models.Brand{Base: models.Base{ID: uuid.NewString()}, Name: "pharmaco"}
	repo.brands[brand.ID] = brand
	router := brandTestRouter(t, repo)

	rec := doJSON(router, http.MethodDelete, "/api/v1/brands/"+brand.ID, nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.brands)
}
