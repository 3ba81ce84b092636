package models

import (
	"time"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/pkg/logger"
)

// Entity status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusArchived = "archived"
)

// AuditedModel is embedded by every tracked entity. It carries the entity
// status and the attribution fields, and stamps them from the actor bound to
// the request context on every write. created_by/created_at are set once on
// insert and never touched again; updated_by/updated_at follow the most
// recent writer.
type AuditedModel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Status string `gorm:"type:varchar(20);default:'active'" json:"status"`

	CreatedByID *uint     `gorm:"index" json:"created_by_id,omitempty"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	UpdatedByID *uint     `gorm:"index" json:"updated_by_id,omitempty"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID" json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate stamps both attribution pairs from the current actor.
func (m *AuditedModel) BeforeCreate(tx *gorm.DB) error {
	a, ok := actor.Current(tx.Statement.Context)
	if !ok {
		// Best effort: system and background writes have no actor. Not an
		// error, but keep it observable for audit review.
		logger.Debug("audit: create on %s without a bound actor", tx.Statement.Table)
		return nil
	}
	id := a.ID
	m.CreatedByID = &id
	m.UpdatedByID = &id
	return nil
}

// BeforeUpdate stamps updated_by and shields the creation pair from being
// overwritten, whether the update comes as a struct or a column map.
func (m *AuditedModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.Omits = append(tx.Statement.Omits, "created_by_id", "created_at")

	a, ok := actor.Current(tx.Statement.Context)
	if !ok {
		logger.Debug("audit: update on %s without a bound actor", tx.Statement.Table)
		return nil
	}
	tx.Statement.SetColumn("updated_by_id", a.ID)
	return nil
}
