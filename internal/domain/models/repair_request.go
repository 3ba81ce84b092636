package models

import "time"

// Repair request priorities
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Repair request statuses
const (
	RepairStatusNew        = "new"
	RepairStatusAssigned   = "assigned"
	RepairStatusInProgress = "in_progress"
	RepairStatusCompleted  = "completed"
	RepairStatusCancelled  = "cancelled"
)

// RepairPriorities lists every valid priority value
var RepairPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// IsValidPriority reports whether value is a known priority
func IsValidPriority(value string) bool {
	for _, p := range RepairPriorities {
		if p == value {
			return true
		}
	}
	return false
}

// IsTerminalRepairStatus reports whether a repair status admits no further
// transitions
func IsTerminalRepairStatus(status string) bool {
	return status == RepairStatusCompleted || status == RepairStatusCancelled
}

// RepairRequest is a ticket about a broken device. Status moves
// new → assigned → in_progress → completed, with cancelled reachable from
// any non-terminal state; transitions are enforced by RepairService, not by
// storage constraints.
type RepairRequest struct {
	AuditedModel
	DeviceID           uint       `gorm:"not null;index" json:"device_id"`
	Device             *Device    `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	RequestedByID      *uint      `json:"requested_by_id,omitempty"`
	RequestedBy        *User      `gorm:"foreignKey:RequestedByID" json:"requested_by,omitempty"`
	ProblemDescription string     `gorm:"type:text;not null" json:"problem_description"`
	Priority           string     `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	RequestStatus      string     `gorm:"type:varchar(20);default:'new';index" json:"request_status"`
	AssignedToID       *uint      `json:"assigned_to_id,omitempty"`
	AssignedTo         *User      `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	WorkDescription    string     `gorm:"type:text" json:"work_description"`
	Cost               *float64   `gorm:"type:decimal(15,2)" json:"cost,omitempty"`

	// Correlation ids for the external Telegram notification, if one was sent
	TelegramChatID    *int64 `json:"telegram_chat_id,omitempty"`
	TelegramMessageID *int   `json:"telegram_message_id,omitempty"`
}
