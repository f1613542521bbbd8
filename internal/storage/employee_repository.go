package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return translate(r.db.Omit(clause.Associations).Create(employee).Error)
}

func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) List(pageSize, pageNum int) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Scopes(paginate(pageSize, pageNum)).Find(&employees).Error
	return employees, translate(err)
}

func (r *EmployeeRepository) Save(employee *models.Employee) error {
	return translate(r.db.Omit(clause.Associations).Save(employee).Error)
}

// Delete removes the employee; owned sessions go with it via the
// ON DELETE CASCADE constraint.
func (r *EmployeeRepository) Delete(employee *models.Employee) error {
	return translate(r.db.Delete(employee).Error)
}

// FindByEmailOrUsername looks up exactly one employee, by email when
// provided, else by username. Both values are expected pre-lowercased.
func (r *EmployeeRepository) FindByEmailOrUsername(email, username string) (*models.Employee, error) {
	var employee models.Employee
	query := r.db
	if email != "" {
		query = query.Where("email = ?", email)
	} else {
		query = query.Where("username = ?", username)
	}
	if err := query.First(&employee).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, translate(err)
}
