package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type PurchaseOrderStore interface {
	Create(order *models.PurchaseOrder) error
	GetByID(id string) (*models.PurchaseOrder, error)
	List(pageSize, pageNum int) ([]models.PurchaseOrder, error)
	Save(order *models.PurchaseOrder) error
	Delete(order *models.PurchaseOrder) error
}

type BrandGetter interface {
	GetByID(id string) (*models.Brand, error)
}

type PurchaseOrderHandler struct {
	store  PurchaseOrderStore
	brands BrandGetter
}

func NewPurchaseOrderHandler(store PurchaseOrderStore, brands BrandGetter) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{store: store, brands: brands}
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	admin, ok := middleware.CurrentEmployee(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req validation.PurchaseOrderRegister
	if !validation.Bind(c, &req) {
		return
	}

	brand, err := h.brands.GetByID(req.BrandID)
	if err != nil {
		handleStorageError(c, err, "Brand does not exist")
		return
	}

	order := &models.PurchaseOrder{
		Status:     models.OrderStatus(req.Status),
		BrandID:    &brand.ID,
		EmployeeID: &admin.ID,
	}

	if err := h.store.Create(order); err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}

	order.Brand = brand
	order.AddedBy = admin
	c.JSON(http.StatusCreated, purchaseOrderResponse(order))
}

func (h *PurchaseOrderHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	orders, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(orders) == 0 {
		respondError(c, http.StatusNotFound, "No purchase_order found")
		return
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, purchaseOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Get returns the order along with its items.
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	order, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}
	c.JSON(http.StatusOK, purchaseOrderDetailResponse(order))
}

func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	var req validation.PurchaseOrderUpdate
	if !validation.Bind(c, &req) {
		return
	}

	order, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Purchase_order does not exist")
		return
	}

	if req.Status != nil {
		order.Status = models.OrderStatus(*req.Status)
	}
	if req.BrandID != nil {
		brand, err := h.brands.GetByID(*req.BrandID)
		if err != nil {
			handleStorageError(c, err, "Brand does not exist")
			return
		}
		order.BrandID = &brand.ID
		order.Brand = brand
	}

	if err := h.store.Save(order); err != nil {
		handleStorageError(c, err, "Purchase_order does not exist")
		return
	}
	c.JSON(http.StatusOK, purchaseOrderResponse(order))
}

func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	order, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Purchase_order does not exist")
		return
	}
	if err := h.store.Delete(order); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
