package validation

import "pharmacy-system/internal/database/models"

type PurchaseOrderRegister struct {
	Status  string `json:"status"`
	BrandID string `json:"brand_id" binding:"required,len=36"`
}

func (r *PurchaseOrderRegister) Normalize() {
	r.BrandID = lower(r.BrandID)
	if r.Status == "" {
		r.Status = string(models.OrderPending)
	}
}

func (r *PurchaseOrderRegister) Validate() error {
	return checkOrderStatus(r.Status)
}

type PurchaseOrderUpdate struct {
	Status  *string `json:"status"`
	BrandID *string `json:"brand_id" binding:"omitempty,len=36"`
}

func (r *PurchaseOrderUpdate) Normalize() {
	r.BrandID = lowerPtr(r.BrandID)
}

func (r *PurchaseOrderUpdate) Validate() error {
	if r.Status == nil && r.BrandID == nil {
		return errEmptyPayload
	}
	if r.Status != nil {
		return checkOrderStatus(*r.Status)
	}
	return nil
}

type PurchaseOrderItemRegister struct {
	ProductID     string  `json:"product_id" binding:"required,len=36"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	UnitCostPrice float64 `json:"unit_cost_price" binding:"required,gt=0"`
	// TODO: validate total_cost_price against quantity*unit_cost_price once
	// product confirms whether callers may supply an independent total.
	TotalCostPrice float64 `json:"total_cost_price" binding:"required,gt=0"`
	PaymentStatus  string  `json:"payment_status" binding:"required"`
	ItemStatus     string  `json:"item_status"`
}

func (r *PurchaseOrderItemRegister) Normalize() {
	r.ProductID = lower(r.ProductID)
	if r.ItemStatus == "" {
		r.ItemStatus = string(models.ItemPending)
	}
}

func (r *PurchaseOrderItemRegister) Validate() error {
	if err := checkPaymentStatus(r.PaymentStatus); err != nil {
		return err
	}
	return checkItemStatus(r.ItemStatus)
}

type PurchaseOrderItemUpdate struct {
	ProductID      *string  `json:"product_id" binding:"omitempty,len=36"`
	Quantity       *int     `json:"quantity" binding:"omitempty,gt=0"`
	UnitCostPrice  *float64 `json:"unit_cost_price" binding:"omitempty,gt=0"`
	TotalCostPrice *float64 `json:"total_cost_price" binding:"omitempty,gt=0"`
	PaymentStatus  *string  `json:"payment_status"`
	ItemStatus     *string  `json:"item_status"`
}

func (r *PurchaseOrderItemUpdate) Normalize() {
	r.ProductID = lowerPtr(r.ProductID)
}

func (r *PurchaseOrderItemUpdate) Validate() error {
	if r.ProductID == nil && r.Quantity == nil && r.UnitCostPrice == nil &&
		r.TotalCostPrice == nil && r.PaymentStatus == nil && r.ItemStatus == nil {
		return errEmptyPayload
	}
	if r.PaymentStatus != nil {
		if err := checkPaymentStatus(*r.PaymentStatus); err != nil {
			return err
		}
	}
	if r.ItemStatus != nil {
		return checkItemStatus(*r.ItemStatus)
	}
	return nil
}

func checkOrderStatus(status string) error {
	switch models.OrderStatus(status) {
	case models.OrderPending, models.OrderInProgress, models.OrderComplete, models.OrderCancelled:
		return nil
	}
	return &Error{Fields: []FieldError{{
		Field:   "status",
		Message: "must be one of: pending, in progress, complete, cancelled",
	}}}
}

func checkItemStatus(status string) error {
	switch models.ItemStatus(status) {
	case models.ItemPending, models.ItemSupplied, models.ItemCancelled:
		return nil
	}
	return &Error{Fields: []FieldError{{
		Field:   "item_status",
		Message: "must be one of: pending, supplied, cancelled",
	}}}
}

func checkPaymentStatus(status string) error {
	switch models.PaymentStatus(status) {
	case models.PaymentPaid, models.PaymentUnpaid, models.PaymentPartial:
		return nil
	}
	return &Error{Fields: []FieldError{{
		Field:   "payment_status",
		Message: "must be one of: paid, unpaid, partial payment",
	}}}
}
