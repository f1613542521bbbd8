package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return translate(r.db.Omit(clause.Associations).Create(category).Error)
}

func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("AddedBy").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(pageSize, pageNum int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Preload("AddedBy").
		Scopes(paginate(pageSize, pageNum)).
		Find(&categories).Error
	return categories, translate(err)
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return translate(r.db.Omit(clause.Associations).Save(category).Error)
}

func (r *CategoryRepository) Delete(category *models.Category) error {
	return translate(r.db.Delete(category).Error)
}
