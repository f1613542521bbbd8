package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in progress"
	OrderComplete   OrderStatus = "complete"
	OrderCancelled  OrderStatus = "cancelled"
)

type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemSupplied  ItemStatus = "supplied"
	ItemCancelled ItemStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial payment"
)

type PurchaseOrder struct {
	Base
	Status     OrderStatus `gorm:"size:32;default:'pending'"`
	BrandID    *string     `gorm:"type:varchar(36)"`
	EmployeeID *string     `gorm:"type:varchar(36)"`

	Brand   *Brand              `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	AddedBy *Employee           `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Items   []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID"`
}

type PurchaseOrderItem struct {
	Base
	PurchaseOrderID *string         `gorm:"type:varchar(36)"`
	ProductID       *string         `gorm:"type:varchar(36)"`
	Quantity        int             `gorm:"default:0"`
	UnitCostPrice   decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	TotalCostPrice  decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	PaymentStatus   PaymentStatus   `gorm:"size:32;not null"`
	ItemStatus      ItemStatus      `gorm:"size:32;default:'pending'"`

	PurchaseOrder *PurchaseOrder `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:SET NULL"`
	Product       *Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}
