package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-system/internal/database/models"
	"pharmacy-system/internal/storage"
)

type fakePurchaseOrderRepo struct {
	orders map[string]*models.PurchaseOrder
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: map[string]*models.PurchaseOrder{}}
}

func (f *fakePurchaseOrderRepo) Create(order *models.PurchaseOrder) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakePurchaseOrderRepo) GetByID(id string) (*models.PurchaseOrder, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakePurchaseOrderRepo) List(pageSize, pageNum int) ([]models.PurchaseOrder, error) {
	out := make([]models.PurchaseOrder, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakePurchaseOrderRepo) Save(order *models.PurchaseOrder) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakePurchaseOrderRepo) Delete(order *models.PurchaseOrder) error {
	delete(f.orders, order.ID)
	return nil
}

func purchaseOrderTestRouter(t *testing.T, repo *fakePurchaseOrderRepo, brands *fakeBrandRepo) *gin.Engine {
	t.Helper()
	h := NewPurchaseOrderHandler(repo, brands)
	router, _ := authedRouter(t, func(v1 *gin.RouterGroup) {
		v1.POST("/purchase_orders", h.Create)
		v1.GET("/purchase_orders/:id/:page_num", h.List)
		v1.GET("/purchase_orders/:id", h.Get)
		v1.PUT("/purchase_orders/:id", h.Update)
		v1.DELETE("/purchase_orders/:id", h.Delete)
	})
	return router
}

func TestPurchaseOrderCreate(t *testing.T) {
	brands := newFakeBrandRepo()
	brand := &models.Brand{Base: models.Base{ID: uuid.NewString()}, Name: "pharmaco"}
	brands.brands[brand.ID] = brand
	repo := newFakePurchaseOrderRepo()
	router := purchaseOrderTestRouter(t, repo, brands)

	rec := doJSON(router, http.MethodPost, "/api/v1/purchase_orders",
		gin.H{"brand_id": brand.ID}, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "pharmaco", body["brand"])
	assert.Equal(t, "admin", body["added_by"])
}

func TestPurchaseOrderCreateUnknownBrand(t *testing.T) {
	router := purchaseOrderTestRouter(t, newFakePurchaseOrderRepo(), newFakeBrandRepo())

	rec := doJSON(router, http.MethodPost, "/api/v1/purchase_orders",
		gin.H{"brand_id": uuid.NewString()}, testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Brand does not exist", decodeBody(t, rec)["error"])
}

func TestPurchaseOrderCreateInvalidStatus(t *testing.T) {
	router := purchaseOrderTestRouter(t, newFakePurchaseOrderRepo(), newFakeBrandRepo())

	rec := doJSON(router, http.MethodPost, "/api/v1/purchase_orders",
		gin.H{"brand_id": uuid.NewString(), "status": "shipped"}, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPurchaseOrderGetIncludesItems(t *testing.T) {
	brands := newFakeBrandRepo()
	repo := newFakePurchaseOrderRepo()
	order := &models.PurchaseOrder{
		Base:   models.Base{ID: uuid.NewString()},
		Status: models.OrderInProgress,
		Items: []models.PurchaseOrderItem{
			{
				Base:           models.Base{ID: uuid.NewString()},
				Quantity:       10,
				UnitCostPrice:  decimal.NewFromFloat(2.5),
				TotalCostPrice: decimal.NewFromFloat(25),
				PaymentStatus:  models.PaymentPartial,
				ItemStatus:     models.ItemPending,
			},
		},
	}
	repo.orders[order.ID] = order
	router := purchaseOrderTestRouter(t, repo, brands)

	rec := doJSON(router, http.MethodGet, "/api/v1/purchase_orders/"+order.ID, nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string `json:"status"`
		OrderItems []struct {
			Quantity      int    `json:"quantity"`
			PaymentStatus string `json:"payment_status"`
		} `json:"order_items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "in progress", body.Status)
	require.Len(t, body.OrderItems, 1)
	assert.Equal(t, 10, body.OrderItems[0].Quantity)
	assert.Equal(t, "partial payment", body.OrderItems[0].PaymentStatus)
}

func TestPurchaseOrderUpdateStatus(t *testing.T) {
	brands := newFakeBrandRepo()
	repo := newFakePurchaseOrderRepo()
	order := &models.PurchaseOrder{Base: models.Base{ID: uuid.NewString()}, Status: models.OrderPending}
	repo.orders[order.ID] = order
	router := purchaseOrderTestRouter(t, repo, brands)

	rec := doJSON(router, http.MethodPut, "/api/v1/purchase_orders/"+order.ID,
		gin.H{"status": "complete"}, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.OrderComplete, repo.orders[order.ID].Status)
}

func TestPurchaseOrderListEmpty(t *testing.T) {
	router := purchaseOrderTestRouter(t, newFakePurchaseOrderRepo(), newFakeBrandRepo())

	rec := doJSON(router, http.MethodGet, "/api/v1/purchase_orders/10/1", nil, testToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No purchase_order found", decodeBody(t, rec)["error"])
}
