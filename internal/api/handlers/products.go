package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/storage"
	"pharmacy-system/internal/validation"
)

const (
	productCachePrefix = "product:"
	productCacheTTL    = 5 * time.Minute
)

type ProductStore interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	List(pageSize, pageNum int) ([]models.Product, error)
	Save(product *models.Product) error
	Delete(product *models.Product) error
}

type CategoryGetter interface {
	GetByID(id string) (*models.Category, error)
}

type ProductHandler struct {
	store      ProductStore
	categories CategoryGetter
	cache      *redis.Client // nil disables caching
}

func NewProductHandler(store ProductStore, categories CategoryGetter, cache *redis.Client) *ProductHandler {
	return &ProductHandler{store: store, categories: categories, cache: cache}
}

func (h *ProductHandler) Create(c *gin.Context) {
	admin, ok := middleware.CurrentEmployee(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req validation.ProductRegister
	if !validation.Bind(c, &req) {
		return
	}

	category, err := h.categories.GetByID(req.CategoryID)
	if err != nil {
		handleStorageError(c, err, "Category does not exist")
		return
	}

	product := &models.Product{
		Name:         req.Name,
		SellingPrice: decimal.NewFromFloat(req.SellingPrice),
		CategoryID:   &category.ID,
		EmployeeID:   &admin.ID,
	}

	if err := h.store.Create(product); err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}

	product.Category = category
	product.AddedBy = admin
	c.JSON(http.StatusCreated, productResponse(product))
}

func (h *ProductHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	products, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(products) == 0 {
		respondError(c, http.StatusNotFound, "No product found")
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, productResponse(&products[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	if h.cache != nil {
		cached, err := h.cache.Get(c.Request.Context(), productCachePrefix+id).Result()
		if err == nil {
			var resp ProductResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	product, err := h.store.GetByID(id)
	if err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}

	resp := productResponse(product)
	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.cache.Set(c.Request.Context(), productCachePrefix+id, payload, productCacheTTL)
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req validation.ProductUpdate
	if !validation.Bind(c, &req) {
		return
	}

	product, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SellingPrice != nil {
		product.SellingPrice = decimal.NewFromFloat(*req.SellingPrice)
	}
	if req.CategoryID != nil {
		category, err := h.categories.GetByID(*req.CategoryID)
		if err != nil {
			handleStorageError(c, err, "Category does not exist")
			return
		}
		product.CategoryID = &category.ID
		product.Category = category
	}

	if err := h.store.Save(product); err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}

	h.invalidate(c, product.ID)
	c.JSON(http.StatusOK, productResponse(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Product does not exist")
		return
	}
	if err := h.store.Delete(product); err != nil {
		serverError(c, err)
		return
	}

	h.invalidate(c, product.ID)
	c.JSON(http.StatusOK, gin.H{})
}

func (h *ProductHandler) invalidate(c *gin.Context, id string) {
	if h.cache != nil {
		h.cache.Del(c.Request.Context(), productCachePrefix+id)
	}
}

// getProduct shares the lookup-and-translate step with handlers that only
// need a product existence check.
func getProduct(c *gin.Context, store ProductGetter, id string) (*models.Product, bool) {
	product, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product does not exist")
		} else {
			serverError(c, err)
		}
		return nil, false
	}
	return product, true
}

type ProductGetter interface {
	GetByID(id string) (*models.Product, error)
}
