package models

import "github.com/shopspring/decimal"

type Sale struct {
	Base
	ProductID         *string         `gorm:"type:varchar(36)"`
	BrandID           *string         `gorm:"type:varchar(36)"`
	Quantity          int             `gorm:"not null"`
	UnitSellingPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalSellingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EmployeeID        *string         `gorm:"type:varchar(36)"`

	Product *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	Brand   *Brand    `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	AddedBy *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

// StockLevel tracks the current on-hand quantity per (product, brand) pair.
type StockLevel struct {
	Base
	ProductID    *string `gorm:"type:varchar(36)"`
	BrandID      *string `gorm:"type:varchar(36)"`
	CurrentStock int     `gorm:"default:0"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	Brand   *Brand   `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}
