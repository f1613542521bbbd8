package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type PurchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

func (r *PurchaseOrderRepository) Create(order *models.PurchaseOrder) error {
	return translate(r.db.Omit(clause.Associations).Create(order).Error)
}

func (r *PurchaseOrderRepository) GetByID(id string) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	err := r.db.Preload("Brand").Preload("AddedBy").
		Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *PurchaseOrderRepository) List(pageSize, pageNum int) ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder
	err := r.db.Preload("Brand").Preload("AddedBy").
		Scopes(paginate(pageSize, pageNum)).
		Find(&orders).Error
	return orders, translate(err)
}

func (r *PurchaseOrderRepository) Save(order *models.PurchaseOrder) error {
	return translate(r.db.Omit(clause.Associations).Save(order).Error)
}

func (r *PurchaseOrderRepository) Delete(order *models.PurchaseOrder) error {
	return translate(r.db.Delete(order).Error)
}

type PurchaseOrderItemRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderItemRepository(db *gorm.DB) *PurchaseOrderItemRepository {
	return &PurchaseOrderItemRepository{db: db}
}

func (r *PurchaseOrderItemRepository) Create(item *models.PurchaseOrderItem) error {
	return translate(r.db.Omit(clause.Associations).Create(item).Error)
}

func (r *PurchaseOrderItemRepository) GetByID(id string) (*models.PurchaseOrderItem, error) {
	var item models.PurchaseOrderItem
	err := r.db.Preload("Product").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *PurchaseOrderItemRepository) List(pageSize, pageNum int) ([]models.PurchaseOrderItem, error) {
	var items []models.PurchaseOrderItem
	err := r.db.Preload("Product").
		Scopes(paginate(pageSize, pageNum)).
		Find(&items).Error
	return items, translate(err)
}

func (r *PurchaseOrderItemRepository) Save(item *models.PurchaseOrderItem) error {
	return translate(r.db.Omit(clause.Associations).Save(item).Error)
}

func (r *PurchaseOrderItemRepository) Delete(item *models.PurchaseOrderItem) error {
	return translate(r.db.Delete(item).Error)
}
