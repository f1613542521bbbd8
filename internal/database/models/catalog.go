package models

import "github.com/shopspring/decimal"

type Brand struct {
	Base
	Name       string  `gorm:"size:200;uniqueIndex;not null"`
	IsActive   bool    // set explicitly by handlers, defaults to true on create
	EmployeeID *string `gorm:"type:varchar(36)"`

	AddedBy  *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Products []Product `gorm:"many2many:brand_products;constraint:OnDelete:CASCADE"`
}

type Category struct {
	Base
	Name        string  `gorm:"size:200;uniqueIndex"`
	Description string  `gorm:"size:2000"`
	EmployeeID  *string `gorm:"type:varchar(36)"`

	AddedBy  *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

type Product struct {
	Base
	Name         string          `gorm:"size:500;not null"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	CategoryID   *string         `gorm:"type:varchar(36)"`
	EmployeeID   *string         `gorm:"type:varchar(36)"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	AddedBy  *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Brands   []Brand   `gorm:"many2many:brand_products;constraint:OnDelete:CASCADE"`
}
