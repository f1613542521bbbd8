package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/validation"
)

type PurchaseOrderItemStore interface {
	Create(item *models.PurchaseOrderItem) error
	GetByID(id string) (*models.PurchaseOrderItem, error)
	List(pageSize, pageNum int) ([]models.PurchaseOrderItem, error)
	Save(item *models.PurchaseOrderItem) error
	Delete(item *models.PurchaseOrderItem) error
}

type PurchaseOrderGetter interface {
	GetByID(id string) (*models.PurchaseOrder, error)
}

type PurchaseOrderItemHandler struct {
	store    PurchaseOrderItemStore
	orders   PurchaseOrderGetter
	products ProductGetter
}

func NewPurchaseOrderItemHandler(store PurchaseOrderItemStore, orders PurchaseOrderGetter, products ProductGetter) *PurchaseOrderItemHandler {
	return &PurchaseOrderItemHandler{store: store, orders: orders, products: products}
}

// Create adds an item to an existing order. Both the product and the order
// must exist before the insert.
func (h *PurchaseOrderItemHandler) Create(c *gin.Context) {
	var req validation.PurchaseOrderItemRegister
	if !validation.Bind(c, &req) {
		return
	}

	product, ok := getProduct(c, h.products, req.ProductID)
	if !ok {
		return
	}

	order, err := h.orders.GetByID(c.Param("id"))
	if err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}

	item := &models.PurchaseOrderItem{
		PurchaseOrderID: &order.ID,
		ProductID:       &product.ID,
		Quantity:        req.Quantity,
		UnitCostPrice:   decimal.NewFromFloat(req.UnitCostPrice),
		TotalCostPrice:  decimal.NewFromFloat(req.TotalCostPrice),
		PaymentStatus:   models.PaymentStatus(req.PaymentStatus),
		ItemStatus:      models.ItemStatus(req.ItemStatus),
	}

	if err := h.store.Create(item); err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}

	item.Product = product
	c.JSON(http.StatusCreated, purchaseOrderItemResponse(item))
}

// List returns purchase order items across all orders.
func (h *PurchaseOrderItemHandler) List(c *gin.Context) {
	pageSize, pageNum, ok := pagination(c)
	if !ok {
		return
	}

	items, err := h.store.List(pageSize, pageNum)
	if err != nil {
		serverError(c, err)
		return
	}
	if len(items) == 0 {
		respondError(c, http.StatusNotFound, "No purchases found")
		return
	}

	responses := make([]PurchaseOrderItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, purchaseOrderItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *PurchaseOrderItemHandler) Get(c *gin.Context) {
	if _, err := h.orders.GetByID(c.Param("id")); err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}

	item, err := h.store.GetByID(c.Param("item_id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	c.JSON(http.StatusOK, purchaseOrderItemResponse(item))
}

func (h *PurchaseOrderItemHandler) Update(c *gin.Context) {
	var req validation.PurchaseOrderItemUpdate
	if !validation.Bind(c, &req) {
		return
	}

	var product *models.Product
	if req.ProductID != nil {
		var ok bool
		product, ok = getProduct(c, h.products, *req.ProductID)
		if !ok {
			return
		}
	}

	if _, err := h.orders.GetByID(c.Param("id")); err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}

	item, err := h.store.GetByID(c.Param("item_id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}

	if product != nil {
		item.ProductID = &product.ID
		item.Product = product
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitCostPrice != nil {
		item.UnitCostPrice = decimal.NewFromFloat(*req.UnitCostPrice)
	}
	if req.TotalCostPrice != nil {
		item.TotalCostPrice = decimal.NewFromFloat(*req.TotalCostPrice)
	}
	if req.PaymentStatus != nil {
		item.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
	}
	if req.ItemStatus != nil {
		item.ItemStatus = models.ItemStatus(*req.ItemStatus)
	}

	if err := h.store.Save(item); err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	c.JSON(http.StatusOK, purchaseOrderItemResponse(item))
}

func (h *PurchaseOrderItemHandler) Delete(c *gin.Context) {
	if _, err := h.orders.GetByID(c.Param("id")); err != nil {
		handleStorageError(c, err, "Order does not exist")
		return
	}

	item, err := h.store.GetByID(c.Param("item_id"))
	if err != nil {
		handleStorageError(c, err, "Item does not exist")
		return
	}
	if err := h.store.Delete(item); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
