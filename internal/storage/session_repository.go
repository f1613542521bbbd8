package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmacy-system/internal/database/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *models.EmployeeSession) error {
	return translate(r.db.Omit(clause.Associations).Create(session).Error)
}

func (r *SessionRepository) GetByID(id string) (*models.EmployeeSession, error) {
	var session models.EmployeeSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

// GetByEmployee returns the employee's most recent session, if any.
func (r *SessionRepository) GetByEmployee(employeeID string) (*models.EmployeeSession, error) {
	var session models.EmployeeSession
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(session *models.EmployeeSession) error {
	return translate(r.db.Delete(session).Error)
}
