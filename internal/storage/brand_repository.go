package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(brand *models.Brand) error {
	return translate(r.db.Omit(clause.Associations).Create(brand).Error)
}

func (r *BrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.Preload("AddedBy").First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &brand, nil
}

func (r *BrandRepository) List(pageSize, pageNum int) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Preload("AddedBy").
		Scopes(paginate(pageSize, pageNum)).
		Find(&brands).Error
	return brands, translate(err)
}

func (r *BrandRepository) Save(brand *models.Brand) error {
	return translate(r.db.Omit(clause.Associations).Save(brand).Error)
}

func (r *BrandRepository) Delete(brand *models.Brand) error {
	return translate(r.db.Select(clause.Associations).Delete(brand).Error)
}

// GetWithProducts loads a brand and its linked products.
func (r *BrandRepository) GetWithProducts(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.Preload("Products").First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &brand, nil
}
