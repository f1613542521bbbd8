package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"pharmacy-system/internal/database/models"
)

// Response structs define the exact serialized field list per entity.
// Related references render a human-readable field: added_by carries the
// creating employee's username, brand/product/category carry names. Enum
// columns render their fixed wire strings.

type EmployeeResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	FirstName   string    `json:"first_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	LastName    string    `json:"last_name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	HomeAddress string    `json:"home_address"`
	Role        string    `json:"role"`
	IsAdmin     bool      `json:"is_admin"`
}

func employeeResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		LastUpdated: e.LastUpdated,
		FirstName:   e.FirstName,
		MiddleName:  e.MiddleName,
		LastName:    e.LastName,
		Username:    e.Username,
		Email:       e.Email,
		HomeAddress: e.HomeAddress,
		Role:        string(e.Role),
		IsAdmin:     e.IsAdmin,
	}
}

type BrandResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"is_active"`
	EmployeeID  *string   `json:"employee_id"`
	AddedBy     *string   `json:"added_by"`
}

func brandResponse(b *models.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		CreatedAt:   b.CreatedAt,
		LastUpdated: b.LastUpdated,
		Name:        b.Name,
		IsActive:    b.IsActive,
		EmployeeID:  b.EmployeeID,
		AddedBy:     usernameOf(b.AddedBy),
	}
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EmployeeID  *string   `json:"employee_id"`
	AddedBy     *string   `json:"added_by"`
}

func categoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		CreatedAt:   cat.CreatedAt,
		LastUpdated: cat.LastUpdated,
		Name:        cat.Name,
		Description: cat.Description,
		EmployeeID:  cat.EmployeeID,
		AddedBy:     usernameOf(cat.AddedBy),
	}
}

type ProductResponse struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	LastUpdated  time.Time       `json:"last_updated"`
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CategoryID   *string         `json:"category_id"`
	Category     *string         `json:"category"`
	EmployeeID   *string         `json:"employee_id"`
	AddedBy      *string         `json:"added_by"`
}

func productResponse(p *models.Product) ProductResponse {
	var category *string
	if p.Category != nil {
		category = strPtr(p.Category.Name)
	}
	return ProductResponse{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt,
		LastUpdated:  p.LastUpdated,
		Name:         p.Name,
		SellingPrice: p.SellingPrice,
		CategoryID:   p.CategoryID,
		Category:     category,
		EmployeeID:   p.EmployeeID,
		AddedBy:      usernameOf(p.AddedBy),
	}
}

type PurchaseOrderResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Status      string    `json:"status"`
	BrandID     *string   `json:"brand_id"`
	Brand       *string   `json:"brand"`
	EmployeeID  *string   `json:"employee_id"`
	AddedBy     *string   `json:"added_by"`
}

func purchaseOrderResponse(o *models.PurchaseOrder) PurchaseOrderResponse {
	var brand *string
	if o.Brand != nil {
		brand = strPtr(o.Brand.Name)
	}
	return PurchaseOrderResponse{
		ID:          o.ID,
		CreatedAt:   o.CreatedAt,
		LastUpdated: o.LastUpdated,
		Status:      string(o.Status),
		BrandID:     o.BrandID,
		Brand:       brand,
		EmployeeID:  o.EmployeeID,
		AddedBy:     usernameOf(o.AddedBy),
	}
}

// PurchaseOrderDetailResponse is the get-one shape: the order plus its items.
type PurchaseOrderDetailResponse struct {
	PurchaseOrderResponse
	OrderItems []PurchaseOrderItemResponse `json:"order_items"`
}

func purchaseOrderDetailResponse(o *models.PurchaseOrder) PurchaseOrderDetailResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, purchaseOrderItemResponse(&o.Items[i]))
	}
	return PurchaseOrderDetailResponse{
		PurchaseOrderResponse: purchaseOrderResponse(o),
		OrderItems:            items,
	}
}

type PurchaseOrderItemResponse struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	LastUpdated     time.Time       `json:"last_updated"`
	PurchaseOrderID *string         `json:"purchase_order_id"`
	ProductID       *string         `json:"product_id"`
	Product         *string         `json:"product"`
	Quantity        int             `json:"quantity"`
	UnitCostPrice   decimal.Decimal `json:"unit_cost_price"`
	TotalCostPrice  decimal.Decimal `json:"total_cost_price"`
	PaymentStatus   string          `json:"payment_status"`
	ItemStatus      string          `json:"item_status"`
}

func purchaseOrderItemResponse(item *models.PurchaseOrderItem) PurchaseOrderItemResponse {
	var product *string
	if item.Product != nil {
		product = strPtr(item.Product.Name)
	}
	return PurchaseOrderItemResponse{
		ID:              item.ID,
		CreatedAt:       item.CreatedAt,
		LastUpdated:     item.LastUpdated,
		PurchaseOrderID: item.PurchaseOrderID,
		ProductID:       item.ProductID,
		Product:         product,
		Quantity:        item.Quantity,
		UnitCostPrice:   item.UnitCostPrice,
		TotalCostPrice:  item.TotalCostPrice,
		PaymentStatus:   string(item.PaymentStatus),
		ItemStatus:      string(item.ItemStatus),
	}
}

type SaleResponse struct {
	ID                string          `json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	LastUpdated       time.Time       `json:"last_updated"`
	ProductID         *string         `json:"product_id"`
	Product           *string         `json:"product"`
	BrandID           *string         `json:"brand_id"`
	Brand             *string         `json:"brand"`
	Quantity          int             `json:"quantity"`
	UnitSellingPrice  decimal.Decimal `json:"unit_selling_price"`
	TotalSellingPrice decimal.Decimal `json:"total_selling_price"`
	EmployeeID        *string         `json:"employee_id"`
	AddedBy           *string         `json:"added_by"`
}

func saleResponse(s *models.Sale) SaleResponse {
	var product, brand *string
	if s.Product != nil {
		product = strPtr(s.Product.Name)
	}
	if s.Brand != nil {
		brand = strPtr(s.Brand.Name)
	}
	return SaleResponse{
		ID:                s.ID,
		CreatedAt:         s.CreatedAt,
		LastUpdated:       s.LastUpdated,
		ProductID:         s.ProductID,
		Product:           product,
		BrandID:           s.BrandID,
		Brand:             brand,
		Quantity:          s.Quantity,
		UnitSellingPrice:  s.UnitSellingPrice,
		TotalSellingPrice: s.TotalSellingPrice,
		EmployeeID:        s.EmployeeID,
		AddedBy:           usernameOf(s.AddedBy),
	}
}

type StockLevelResponse struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdated  time.Time `json:"last_updated"`
	ProductID    *string   `json:"product_id"`
	Product      *string   `json:"product"`
	BrandID      *string   `json:"brand_id"`
	Brand        *string   `json:"brand"`
	CurrentStock int       `json:"current_stock"`
}

func stockLevelResponse(s *models.StockLevel) StockLevelResponse {
	var product, brand *string
	if s.Product != nil {
		product = strPtr(s.Product.Name)
	}
	if s.Brand != nil {
		brand = strPtr(s.Brand.Name)
	}
	return StockLevelResponse{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		LastUpdated:  s.LastUpdated,
		ProductID:    s.ProductID,
		Product:      product,
		BrandID:      s.BrandID,
		Brand:        brand,
		CurrentStock: s.CurrentStock,
	}
}

func usernameOf(e *models.Employee) *string {
	if e == nil {
		return nil
	}
	return strPtr(e.Username)
}
