package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type StockLevelRepository struct {
	db *gorm.DB
}

func NewStockLevelRepository(db *gorm.DB) *StockLevelRepository {
	return &StockLevelRepository{db: db}
}

func (r *StockLevelRepository) Create(stock *models.StockLevel) error {
	return translate(r.db.Omit(clause.Associations).Create(stock).Error)
}

func (r *StockLevelRepository) GetByID(id string) (*models.StockLevel, error) {
	var stock models.StockLevel
	err := r.db.Preload("Product").Preload("Brand").
		First(&stock, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stock, nil
}

func (r *StockLevelRepository) List(pageSize, pageNum int) ([]models.StockLevel, error) {
	var stocks []models.StockLevel
	err := r.db.Preload("Product").Preload("Brand").
		Scopes(paginate(pageSize, pageNum)).
		Find(&stocks).Error
	return stocks, translate(err)
}

func (r *StockLevelRepository) Save(stock *models.StockLevel) error {
	return translate(r.db.Omit(clause.Associations).Save(stock).Error)
}

func (r *StockLevelRepository) Delete(stock *models.StockLevel) error {
	return translate(r.db.Delete(stock).Error)
}
