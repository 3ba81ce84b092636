package models

// Category is a self-referential classification tree for device types
type Category struct {
	AuditedModel
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Code        *string    `gorm:"type:varchar(50);uniqueIndex" json:"code,omitempty"`
	Description string     `gorm:"type:text" json:"description"`
	ParentID    *uint      `gorm:"index" json:"parent_id,omitempty"`
	Parent      *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children    []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Icon        string     `gorm:"type:varchar(50)" json:"icon"`
}

// DeviceType describes what kind of thing a device is. The (category, name,
// model) triple is unique. Categories are protected from deletion while any
// device type references them.
type DeviceType struct {
	AuditedModel
	CategoryID   uint      `gorm:"not null;uniqueIndex:uniq_device_type_in_category" json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_device_type_in_category" json:"name"`
	Model        string    `gorm:"type:varchar(255);uniqueIndex:uniq_device_type_in_category" json:"model"`
	Manufacturer string    `gorm:"type:varchar(255)" json:"manufacturer"`
	Description  string    `gorm:"type:text" json:"description"`
	PicturePath  string    `gorm:"type:varchar(500)" json:"picture_path"`
}
