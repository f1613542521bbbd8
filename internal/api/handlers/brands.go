package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type BrandStore interface {
	Create(brand *models.Brand) error
	GetByID(id string) (*models.Brand, error)
	List(pageSize, pageNum int) ([]models.Brand, error)
	Save(brand *models.Brand) error
	Delete(brand *models.Brand) error
}

type BrandHandler struct {
	store BrandStore
}

func NewBrandHandler(store BrandStore) *BrandHandler {
	return &BrandHandler{store: store}
}

func (h *BrandHandler) Create(c *gin.Context) {
	admin, ok := middleware.CurrentEmployee(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req validation.BrandRegister
	if !validation.Bind(c, &req) {
		return
	}

	brand := &models.Brand{
		Name:       req.Name,
		IsActive:   true,
		EmployeeID: &admin.ID,
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.store.Create(brand); err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	brand.AddedBy = admin
	c.JSON(http.StatusCreated, brandResponse(brand))
}

func (h *BrandHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	brands, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(brands) == 0 {
		respondError(c, http.StatusNotFound, "No brand found")
		return
	}

	responses := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		responses = append(responses, brandResponse(&brands[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}
	c.JSON(http.StatusOK, brandResponse(brand))
}

func (h *BrandHandler) Update(c *gin.Context) {
	var req validation.BrandUpdate
	if !validation.Bind(c, &req) {
		return
	}

	brand, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.store.Save(brand); err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}
	c.JSON(http.StatusOK, brandResponse(brand))
}

func (h *BrandHandler) Delete(c *gin.Context) {
	brand, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}
	if err := h.store.Delete(brand); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
