package models

import "time"

// Room belongs to exactly one building; names are unique within a building
type Room struct {
	AuditedModel
	BuildingID  uint      `gorm:"not null;uniqueIndex:uniq_room_per_building" json:"building_id"`
	Building    *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_room_per_building" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Images []RoomImage `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// RoomImage is a photo attached to a room, same main-image rule as buildings
type RoomImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomID     uint      `gorm:"not null;index" json:"room_id"`
	Path       string    `gorm:"type:varchar(500);not null" json:"path"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	IsMain     bool      `gorm:"default:false" json:"is_main"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
