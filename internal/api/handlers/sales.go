package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type SaleStore interface {
	Create(sale *models.Sale) error
	GetByID(id string) (*models.Sale, error)
	List(pageSize, pageNum int) ([]models.Sale, error)
	Save(sale *models.Sale) error
	Delete(sale *models.Sale) error
}

type SaleHandler struct {
	store    SaleStore
	products ProductGetter
	brands   BrandGetter
}

func NewSaleHandler(store SaleStore, products ProductGetter, brands BrandGetter) *SaleHandler {
	return &SaleHandler{store: store, products: products, brands: brands}
}

func (h *SaleHandler) Create(c *gin.Context) {
	admin, ok := middleware.CurrentEmployee(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req validation.SaleRegister
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

	sale := &models.Sale{
		ProductID:         &product.ID,
		BrandID:           &brand.ID,
		Quantity:          req.Quantity,
		UnitSellingPrice:  decimal.NewFromFloat(req.UnitSellingPrice),
		TotalSellingPrice: decimal.NewFromFloat(req.TotalSellingPrice),
		EmployeeID:        &admin.ID,
	}

	if err := h.store.Create(sale); err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}

	sale.Product = product
	sale.Brand = brand
	sale.AddedBy = admin
	c.JSON(http.StatusCreated, saleResponse(sale))
}

func (h *SaleHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	sales, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(sales) == 0 {
		respondError(c, http.StatusNotFound, "No sales found")
		return
	}

	responses := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, saleResponse(&sales[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	c.JSON(http.StatusOK, saleResponse(sale))
}

func (h *SaleHandler) Update(c *gin.Context) {
	var req validation.SaleUpdate
	if !validation.Bind(c, &req) {
		return
	}

	sale, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}

	if req.ProductID != nil {
		product, ok := getProduct(c, h.products, *req.ProductID)
		if !ok {
			return
		}
		sale.ProductID = &product.ID
		sale.Product = product
	}
	if req.BrandID != nil {
		brand, err := h.brands.GetByID(*req.BrandID)
		if err != nil {
			handleStorageError(c, err, "Brand does not exist")
			return
		}
		sale.BrandID = &brand.ID
		sale.Brand = brand
	}
	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}
	if req.UnitSellingPrice != nil {
		sale.UnitSellingPrice = decimal.NewFromFloat(*req.UnitSellingPrice)
	}
	if req.TotalSellingPrice != nil {
		sale.TotalSellingPrice = decimal.NewFromFloat(*req.TotalSellingPrice)
	}

	if err := h.store.Save(sale); err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	c.JSON(http.StatusOK, saleResponse(sale))
}

func (h *SaleHandler) Delete(c *gin.Context) {
	sale, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	if err := h.store.Delete(sale); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
