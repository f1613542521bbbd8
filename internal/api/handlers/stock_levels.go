package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type StockLevelStore interface {
	Create(level *models.StockLevel) error
	GetByID(id string) (*models.StockLevel, error)
	List(pageSize, pageNum int) ([]models.StockLevel, error)
	Save(level *models.StockLevel) error
	Delete(level *models.StockLevel) error
}

type StockLevelHandler struct {
	store    StockLevelStore
	products ProductGetter
	brands   BrandGetter
}

func NewStockLevelHandler(store StockLevelStore, products ProductGetter, brands BrandGetter) *StockLevelHandler {
	return &StockLevelHandler{store: store, products: products, brands: brands}
}

func (h *StockLevelHandler) Create(c *gin.Context) {
	var req validation.StockLevelRegister
	if !validation.Bind(c, &req) {
		return
	}

	product, ok := getProduct(c, h.products, req.ProductID)
	if !ok {
		return
	}

	brand, err := h.brands.GetByID(req.BrandID)
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	level := &models.StockLevel{
		ProductID:    &product.ID,
		BrandID:      &brand.ID,
		CurrentStock: *req.CurrentStock,
	}

	if err := h.store.Create(level); err != nil {
		handleStorageError(c, err, "Stock level does not exist")
		return
	}

	level.Product = product
	level.Brand = brand
	c.JSON(http.StatusCreated, stockLevelResponse(level))
}

func (h *StockLevelHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	levels, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(levels) == 0 {
		respondError(c, http.StatusNotFound, "No stock level found")
		return
	}

	responses := make([]StockLevelResponse, 0, len(levels))
	for i := range levels {
		responses = append(responses, stockLevelResponse(&levels[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *StockLevelHandler) Get(c *gin.Context) {
	level, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Stock level does not exist")
		return
	}
	c.JSON(http.StatusOK, stockLevelResponse(level))
}

func (h *StockLevelHandler) Update(c *gin.Context) {
	var req validation.StockLevelUpdate
	if !validation.Bind(c, &req) {
		return
	}

	level, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Stock level does not exist")
		return
	}

	if req.ProductID != nil {
		product, ok := getProduct(c, h.products, *req.ProductID)
		if !ok {
			return
		}
		level.ProductID = &product.ID
		level.Product = product
	}
	if req.BrandID != nil {
		brand, err := h.brands.GetByID(*req.BrandID)
		if err != nil {
			handleStorageError(c, err, "Brand does not exist")
			return
		}
		level.BrandID = &brand.ID
		level.Brand = brand
	}
	if req.CurrentStock != nil {
		level.CurrentStock = *req.CurrentStock
	}

	if err := h.store.Save(level); err != nil {
		handleStorageError(c, err, "Stock level does not exist")
		return
	}
	c.JSON(http.StatusOK, stockLevelResponse(level))
}

func (h *StockLevelHandler) Delete(c *gin.Context) {
	level, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Stock level does not exist")
		return
	}
	if err := h.store.Delete(level); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
