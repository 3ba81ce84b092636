package models

// ResponsiblePerson links a user to a building, optionally narrowed to a
// single room. The (user, building, room) triple is unique.
type ResponsiblePerson struct {
	AuditedModel
	UserID     uint      `gorm:"not null;uniqueIndex:uniq_responsible_per_place" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BuildingID uint      `gorm:"not null;uniqueIndex:uniq_responsible_per_place" json:"building_id"`
	Building   *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	RoomID     *uint     `gorm:"uniqueIndex:uniq_responsible_per_place" json:"room_id,omitempty"`
	Room       *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Position   string    `gorm:"type:varchar(100)" json:"position"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone"`
}
