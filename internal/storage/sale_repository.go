package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(sale *models.Sale) error {
	return translate(r.db.Omit(clause.Associations).Create(sale).Error)
}

func (r *SaleRepository) GetByID(id string) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Preload("Product").Preload("Brand").Preload("AddedBy").
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

func (r *SaleRepository) List(pageSize, pageNum int) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Product").Preload("Brand").Preload("AddedBy").
		Scopes(paginate(pageSize, pageNum)).
		Find(&sales).Error
	return sales, translate(err)
}

func (r *SaleRepository) Save(sale *models.Sale) error {
	return translate(r.db.Omit(clause.Associations).Save(sale).Error)
}

func (r *SaleRepository) Delete(sale *models.Sale) error {
	return translate(r.db.Delete(sale).Error)
}
