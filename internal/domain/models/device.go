package models

import (
	"net"
	"regexp"
	"time"
)

// Device conditions
const (
	ConditionWorking    = "working"
	ConditionBroken     = "broken"
	ConditionRepair     = "repair"
	ConditionStored     = "stored"
	ConditionWrittenOff = "written_off"
)

// DeviceConditions lists every valid condition value
var DeviceConditions = []string{
	ConditionWorking,
	ConditionBroken,
	ConditionRepair,
	ConditionStored,
	ConditionWrittenOff,
}

// IsValidCondition reports whether value is a known device condition
func IsValidCondition(value string) bool {
	for _, c := range DeviceConditions {
		if c == value {
			return true
		}
	}
	return false
}

// macAddrPattern accepts six colon- or hyphen-delimited hex pairs
var macAddrPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}(?:[:-][0-9A-Fa-f]{2}){5}$`)

// IsValidMACAddress reports whether value is a well formed MAC address.
// Empty values are allowed, the field is optional.
func IsValidMACAddress(value string) bool {
	if value == "" {
		return true
	}
	return macAddrPattern.MatchString(value)
}

// IsValidIPAddress reports whether value parses as an IPv4 or IPv6 address.
// Empty values are allowed, the field is optional.
func IsValidIPAddress(value string) bool {
	if value == "" {
		return true
	}
	return net.ParseIP(value) != nil
}

// Device is the central inventory entity. inventory_number is the business
// key; condition changes go through the condition subsystem so the history
// ledger stays consistent with the current value.
type Device struct {
	AuditedModel
	DeviceTypeID    uint        `gorm:"not null;index" json:"device_type_id"`
	DeviceType      *DeviceType `gorm:"foreignKey:DeviceTypeID" json:"device_type,omitempty"`
	InventoryNumber string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"inventory_number"`
	SerialNumber    string      `gorm:"type:varchar(255)" json:"serial_number"`
	Condition       string      `gorm:"type:varchar(20);default:'working'" json:"condition"`

	PurchaseDate  time.Time  `gorm:"type:date;not null" json:"purchase_date"`
	PurchasePrice *float64   `gorm:"type:decimal(15,2)" json:"purchase_price,omitempty"`
	WarrantyUntil *time.Time `gorm:"type:date" json:"warranty_until,omitempty"`

	IPAddress  string `gorm:"type:varchar(45)" json:"ip_address"`
	MACAddress string `gorm:"type:varchar(17)" json:"mac_address"`

	Notes string `gorm:"type:text" json:"notes"`

	// Relations - the device exclusively owns its images, its current
	// location and both history ledgers.
	Images           []DeviceImage            `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Location         *DeviceLocation          `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	LocationHistory  []DeviceLocationHistory  `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"location_history,omitempty"`
	ConditionHistory []DeviceConditionHistory `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"condition_history,omitempty"`
}

// DeviceImage is a photo attached to a device, same main-image rule as
// buildings and rooms
type DeviceImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DeviceID   uint      `gorm:"not null;index" json:"device_id"`
	Path       string    `gorm:"type:varchar(500);not null" json:"path"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	IsMain     bool      `gorm:"default:false" json:"is_main"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// DeviceConditionHistory is an append-only ledger row recording one condition
// change. Rows are facts, never updated or deleted. A null old_condition
// marks the first recorded change.
type DeviceConditionHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DeviceID     uint      `gorm:"not null;index" json:"device_id"`
	OldCondition *string   `gorm:"type:varchar(20)" json:"old_condition,omitempty"`
	NewCondition string    `gorm:"type:varchar(20);not null" json:"new_condition"`
	ChangedByID  *uint     `json:"changed_by_id,omitempty"`
	ChangedBy    *User     `gorm:"foreignKey:ChangedByID" json:"changed_by,omitempty"`
	Reason       string    `gorm:"type:text" json:"reason"`
	ChangedAt    time.Time `gorm:"autoCreateTime;index" json:"changed_at"`
}
