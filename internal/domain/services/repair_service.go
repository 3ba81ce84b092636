package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
	"rttm-inventory-service/internal/infrastructure/config"
)

// RepairFilter narrows repair request listings
type RepairFilter struct {
	DeviceID uint
	Status   string
	Priority string
}

// CompleteRepairInput carries the closing details of a repair
type CompleteRepairInput struct {
	WorkDescription string
	Cost            *float64
}

// InterfaceRepairService defines the repair workflow contract
type InterfaceRepairService interface {
	GetAllRepairRequests(ctx context.Context, filter RepairFilter, page, pageSize int) ([]models.RepairRequest, int64, error)
	GetRepairRequestByID(ctx context.Context, id uint) (*models.RepairRequest, error)
	CreateRepairRequest(ctx context.Context, req *models.RepairRequest) error
	AssignRepairRequest(ctx context.Context, id, assigneeID uint) (*models.RepairRequest, error)
	StartRepairRequest(ctx context.Context, id uint) (*models.RepairRequest, error)
	CompleteRepairRequest(ctx context.Context, id uint, input CompleteRepairInput) (*models.RepairRequest, error)
	CancelRepairRequest(ctx context.Context, id uint, reason string) (*models.RepairRequest, error)
}

// RepairService drives the repair request state machine:
// new → assigned → in_progress → completed, cancelled from any non-terminal
// state. The rules live here, not in storage constraints.
type RepairService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRepairService creates a new repair service
func NewRepairService(db *gorm.DB, cfg *config.Config) InterfaceRepairService {
	return &RepairService{DB: db, Config: cfg}
}

// 1. GetAllRepairRequests returns requests newest first, filtered
func (s *RepairService) GetAllRepairRequests(ctx context.Context, filter RepairFilter, page, pageSize int) ([]models.RepairRequest, int64, error) {
	var requests []models.RepairRequest
	var total int64

	db := s.DB.WithContext(ctx).Model(&models.RepairRequest{})
	if filter.DeviceID != 0 {
		db = db.Where("device_id = ?", filter.DeviceID)
	}
	if filter.Status != "" {
		db = db.Where("request_status = ?", filter.Status)
	}
	if filter.Priority != "" {
		db = db.Where("priority = ?", filter.Priority)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Preload("Device").Preload("RequestedBy").Preload("AssignedTo").
		Order("created_at DESC").Limit(pageSize).Offset(offset).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// 2. GetRepairRequestByID returns one repair request
func (s *RepairService) GetRepairRequestByID(ctx context.Context, id uint) (*models.RepairRequest, error) {
	var req models.RepairRequest
	if err := s.DB.WithContext(ctx).
		Preload("Device").Preload("RequestedBy").Preload("AssignedTo").
		First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(code.ErrRepairNotFound)
		}
		return nil, err
	}
	return &req, nil
}

// 3. CreateRepairRequest opens a new ticket. The requester defaults to the
// current actor.
func (s *RepairService) CreateRepairRequest(ctx context.Context, req *models.RepairRequest) error {
	db := s.DB.WithContext(ctx)

	var deviceCount int64
	if err := db.Model(&models.Device{}).Where("id = ?", req.DeviceID).Count(&deviceCount).Error; err != nil {
		return err
	}
	if deviceCount == 0 {
		return apperr.New(code.ErrDeviceNotFound)
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !models.IsValidPriority(req.Priority) {
		return apperr.NewMsg(code.ErrValidation, fmt.Sprintf("unknown priority %q", req.Priority))
	}
	if req.ProblemDescription == "" {
		return apperr.NewMsg(code.ErrValidation, "problem_description is required")
	}

	req.RequestStatus = models.RepairStatusNew
	if req.RequestedByID == nil {
		if a, ok := actor.Current(ctx); ok {
			id := a.ID
			req.RequestedByID = &id
		}
	}
	if req.Status == "" {
		req.Status = models.StatusActive
	}
	return db.Create(req).Error
}

// transition loads the request under a row lock, verifies the from-state and
// applies the mutation. An illegal transition is a validation failure naming
// both states, never a silent no-op.
func (s *RepairService) transition(ctx context.Context, id uint, from []string, apply func(req *models.RepairRequest) map[string]interface{}) (*models.RepairRequest, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.RepairRequest
		if err := lockForUpdate(tx).First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(code.ErrRepairNotFound)
			}
			return err
		}

		allowed := false
		for _, f := range from {
			if req.RequestStatus == f {
				allowed = true
				break
			}
		}
		if !allowed {
			return apperr.NewMsg(code.ErrIllegalTransition,
				fmt.Sprintf("cannot transition repair request from %q", req.RequestStatus))
		}

		return tx.Model(&req).Updates(apply(&req)).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRepairRequestByID(ctx, id)
}

// 4. AssignRepairRequest moves new → assigned and records the assignee
func (s *RepairService) AssignRepairRequest(ctx context.Context, id, assigneeID uint) (*models.RepairRequest, error) {
	if assigneeID == 0 {
		return nil, apperr.New(code.ErrAssigneeRequired)
	}
	var userCount int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", assigneeID).Count(&userCount).Error; err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, apperr.New(code.ErrUserNotFound)
	}

	return s.transition(ctx, id, []string{models.RepairStatusNew}, func(req *models.RepairRequest) map[string]interface{} {
		now := time.Now()
		return map[string]interface{}{
			"request_status": models.RepairStatusAssigned,
			"assigned_to_id": assigneeID,
			"assigned_at":    &now,
		}
	})
}

// 5. StartRepairRequest moves assigned → in_progress
func (s *RepairService) StartRepairRequest(ctx context.Context, id uint) (*models.RepairRequest, error) {
	return s.transition(ctx, id, []string{models.RepairStatusAssigned}, func(req *models.RepairRequest) map[string]interface{} {
		return map[string]interface{}{
			"request_status": models.RepairStatusInProgress,
		}
	})
}

// 6. CompleteRepairRequest moves in_progress → completed and records the
// work done
func (s *RepairService) CompleteRepairRequest(ctx context.Context, id uint, input CompleteRepairInput) (*models.RepairRequest, error) {
	return s.transition(ctx, id, []string{models.RepairStatusInProgress}, func(req *models.RepairRequest) map[string]interface{} {
		now := time.Now()
		updates := map[string]interface{}{
			"request_status": models.RepairStatusCompleted,
			"completed_at":   &now,
		}
		if input.WorkDescription != "" {
			updates["work_description"] = input.WorkDescription
		}
		if input.Cost != nil {
			updates["cost"] = *input.Cost
		}
		return updates
	})
}

// 7. CancelRepairRequest cancels from any non-terminal state. A reason is
// recommended and appended to the work description when given.
func (s *RepairService) CancelRepairRequest(ctx context.Context, id uint, reason string) (*models.RepairRequest, error) {
	nonTerminal := []string{
		models.RepairStatusNew,
		models.RepairStatusAssigned,
		models.RepairStatusInProgress,
	}
	return s.transition(ctx, id, nonTerminal, func(req *models.RepairRequest) map[string]interface{} {
		updates := map[string]interface{}{
			"request_status": models.RepairStatusCancelled,
		}
		if reason != "" {
			updates["work_description"] = "Cancelled: " + reason
		}
		return updates
	})
}
