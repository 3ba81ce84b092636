package models

import "time"

// Building represents a tracked building
type Building struct {
	AuditedModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Rooms  []Room          `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Images []BuildingImage `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// BuildingImage is a photo attached to a building. At most one image per
// building may be flagged as main (partial unique index, see migrations).
type BuildingImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BuildingID uint      `gorm:"not null;index" json:"building_id"`
	Path       string    `gorm:"type:varchar(500);not null" json:"path"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	IsMain     bool      `gorm:"default:false" json:"is_main"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
