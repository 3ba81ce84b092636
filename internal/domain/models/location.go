package models

import "time"

// DeviceLocation is the single authoritative "where is it now" row, one per
// device. All changes go through LocationService.MoveDevice so that every
// move also lands in the history ledger.
type DeviceLocation struct {
	AuditedModel
	DeviceID            uint               `gorm:"not null;uniqueIndex" json:"device_id"`
	RoomID              uint               `gorm:"not null;index" json:"room_id"`
	Room                *Room              `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	ResponsiblePersonID *uint              `json:"responsible_person_id,omitempty"`
	ResponsiblePerson   *ResponsiblePerson `gorm:"foreignKey:ResponsiblePersonID" json:"responsible_person,omitempty"`
	PositionDescription string             `gorm:"type:varchar(255)" json:"position_description"`
}

// DeviceLocationHistory is an append-only ledger row recording one move.
// Null old_building/old_room mark the first placement. Rows are never
// updated or deleted; folding them in moved_at order reconstructs the
// current DeviceLocation.
type DeviceLocationHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DeviceID      uint      `gorm:"not null;index" json:"device_id"`
	OldBuildingID *uint     `json:"old_building_id,omitempty"`
	OldBuilding   *Building `gorm:"foreignKey:OldBuildingID" json:"old_building,omitempty"`
	OldRoomID     *uint     `json:"old_room_id,omitempty"`
	OldRoom       *Room     `gorm:"foreignKey:OldRoomID" json:"old_room,omitempty"`
	NewBuildingID uint      `gorm:"not null" json:"new_building_id"`
	NewBuilding   *Building `gorm:"foreignKey:NewBuildingID" json:"new_building,omitempty"`
	NewRoomID     uint      `gorm:"not null" json:"new_room_id"`
	NewRoom       *Room     `gorm:"foreignKey:NewRoomID" json:"new_room,omitempty"`
	MovedByID     *uint     `json:"moved_by_id,omitempty"`
	MovedBy       *User     `gorm:"foreignKey:MovedByID" json:"moved_by,omitempty"`
	Reason        string    `gorm:"type:text" json:"reason"`
	MovedAt       time.Time `gorm:"autoCreateTime;index" json:"moved_at"`
}
