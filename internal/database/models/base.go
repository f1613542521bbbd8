package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identity and audit columns shared by every table.
// last_updated is bumped by gorm on every save.
type Base struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
