package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type CategoryStore interface {
	Create(category *models.Category) error
	GetByID(id string) (*models.Category, error)
	List(pageSize, pageNum int) ([]models.Category, error)
	Save(category *models.Category) error
	Delete(category *models.Category) error
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	admin, ok := middleware.CurrentEmployee(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req validation.CategoryRegister
	if !validation.Bind(c, &req) {
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		EmployeeID:  &admin.ID,
	}

	if err := h.store.Create(category); err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}

	category.AddedBy = admin
	c.JSON(http.StatusCreated, categoryResponse(category))
}

func (h *CategoryHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	categories, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(categories) == 0 {
		respondError(c, http.StatusNotFound, "No category found")
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}
	c.JSON(http.StatusOK, categoryResponse(category))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req validation.CategoryUpdate
	if !validation.Bind(c, &req) {
		return
	}

	category, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := h.store.Save(category); err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}
	c.JSON(http.StatusOK, categoryResponse(category))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	category, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}
	if err := h.store.Delete(category); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
