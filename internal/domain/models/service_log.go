package models

import "time"

// Service types
const (
	ServicePreventive  = "preventive"
	ServiceRepair      = "repair"
	ServiceInspection  = "inspection"
	ServiceCalibration = "calibration"
	ServiceCleaning    = "cleaning"
)

// ServiceTypes lists every valid service type value
var ServiceTypes = []string{
	ServicePreventive,
	ServiceRepair,
	ServiceInspection,
	ServiceCalibration,
	ServiceCleaning,
}

// IsValidServiceType reports whether value is a known service type
func IsValidServiceType(value string) bool {
	for _, s := range ServiceTypes {
		if s == value {
			return true
		}
	}
	return false
}

// ServiceLog is a maintenance record for a device, optionally correlated to
// the repair request that triggered it
type ServiceLog struct {
	AuditedModel
	DeviceID        uint           `gorm:"not null;index" json:"device_id"`
	Device          *Device        `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	ServiceType     string         `gorm:"type:varchar(20);not null" json:"service_type"`
	ServiceDate     time.Time      `gorm:"type:date;not null;index" json:"service_date"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	PerformedByID   *uint          `json:"performed_by_id,omitempty"`
	PerformedBy     *User          `gorm:"foreignKey:PerformedByID" json:"performed_by,omitempty"`
	Cost            *float64       `gorm:"type:decimal(15,2)" json:"cost,omitempty"`
	NextServiceDate *time.Time     `gorm:"type:date" json:"next_service_date,omitempty"`
	RepairRequestID *uint          `json:"repair_request_id,omitempty"`
	RepairRequest   *RepairRequest `gorm:"foreignKey:RepairRequestID" json:"repair_request,omitempty"`
}
