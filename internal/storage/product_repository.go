package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	return translate(r.db.Omit(clause.Associations).Create(product).Error)
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("AddedBy").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(pageSize, pageNum int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Category").Preload("AddedBy").
		Scopes(paginate(pageSize, pageNum)).
		Find(&products).Error
	return products, translate(err)
}

func (r *ProductRepository) Save(product *models.Product) error {
	return translate(r.db.Omit(clause.Associations).Save(product).Error)
}

func (r *ProductRepository) Delete(product *models.Product) error {
	return translate(r.db.Select(clause.Associations).Delete(product).Error)
}

// GetWithBrands loads a product and its linked brands.
func (r *ProductRepository) GetWithBrands(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Brands").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *ProductRepository) LinkBrand(product *models.Product, brand *models.Brand) error {
	return translate(r.db.Model(product).Association("Brands").Append(brand))
}

func (r *ProductRepository) UnlinkBrand(product *models.Product, brand *models.Brand) error {
	return translate(r.db.Model(product).Association("Brands").Delete(brand))
}
