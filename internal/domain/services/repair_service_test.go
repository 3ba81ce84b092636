package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
)

func TestRepairWorkflowHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewRepairService(db, testConfig())

	reporter := seedUser(t, db, "reporter", models.RoleStaff)
	tech := seedUser(t, db, "tech", models.RoleStaff)
	device := seedDevice(t, db, "INV-500")

	req := &models.RepairRequest{
		DeviceID:           device.ID,
		ProblemDescription: "no display output",
		Priority:           models.PriorityHigh,
	}
	require.NoError(t, svc.CreateRepairRequest(asActor(reporter), req))
	assert.Equal(t, models.RepairStatusNew, req.RequestStatus)
	require.NotNil(t, req.RequestedByID)
	assert.Equal(t, reporter.ID, *req.RequestedByID)

	assigned, err := svc.AssignRepairRequest(asActor(reporter), req.ID, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RepairStatusAssigned, assigned.RequestStatus)
	require.NotNil(t, assigned.AssignedToID)
	assert.Equal(t, tech.ID, *assigned.AssignedToID)
	assert.NotNil(t, assigned.AssignedAt)

	started, err := svc.StartRepairRequest(asActor(tech), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RepairStatusInProgress, started.RequestStatus)

	cost := 350000.0
	completed, err := svc.CompleteRepairRequest(asActor(tech), req.ID, CompleteRepairInput{
		WorkDescription: "replaced power supply",
		Cost:            &cost,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RepairStatusCompleted, completed.RequestStatus)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, "replaced power supply", completed.WorkDescription)
	require.NotNil(t, completed.Cost)
	assert.Equal(t, cost, *completed.Cost)
}

func TestRepairIllegalTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewRepairService(db, testConfig())

	u := seedUser(t, db, "reporter", models.RoleStaff)
	tech := seedUser(t, db, "tech", models.RoleStaff)
	device := seedDevice(t, db, "INV-501")

	req := &models.RepairRequest{DeviceID: device.ID, ProblemDescription: "dead"}
	require.NoError(t, svc.CreateRepairRequest(asActor(u), req))

	// new → in_progress skips assignment
	_, err := svc.StartRepairRequest(asActor(u), req.ID)
	assert.Equal(t, code.ErrIllegalTransition, apperr.CodeOf(err))

	// new → completed skips the whole middle
	_, err = svc.CompleteRepairRequest(asActor(u), req.ID, CompleteRepairInput{})
	assert.Equal(t, code.ErrIllegalTransition, apperr.CodeOf(err))

	_, err = svc.AssignRepairRequest(asActor(u), req.ID, tech.ID)
	require.NoError(t, err)
	_, err = svc.StartRepairRequest(asActor(tech), req.ID)
	require.NoError(t, err)
	_, err = svc.CompleteRepairRequest(asActor(tech), req.ID, CompleteRepairInput{})
	require.NoError(t, err)

	// Terminal states admit nothing further
	_, err = svc.StartRepairRequest(asActor(tech), req.ID)
	assert.Equal(t, code.ErrIllegalTransition, apperr.CodeOf(err))
	_, err = svc.CancelRepairRequest(asActor(tech), req.ID, "too late")
	assert.Equal(t, code.ErrIllegalTransition, apperr.CodeOf(err))
}

func TestRepairCancelFromAnyNonTerminalState(t *testing.T) {
	db := newTestDB(t)
	svc := NewRepairService(db, testConfig())

	u := seedUser(t, db, "reporter", models.RoleStaff)
	device := seedDevice(t, db, "INV-502")

	// A brand new ticket cancels without ever being assigned
	req := &models.RepairRequest{DeviceID: device.ID, ProblemDescription: "flickers"}
	require.NoError(t, svc.CreateRepairRequest(asActor(u), req))

	cancelled, err := svc.CancelRepairRequest(asActor(u), req.ID, "device written off instead")
	require.NoError(t, err)
	assert.Equal(t, models.RepairStatusCancelled, cancelled.RequestStatus)
	assert.Contains(t, cancelled.WorkDescription, "device written off instead")
}

func TestRepairCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRepairService(db, testConfig())

	u := seedUser(t, db, "reporter", models.RoleStaff)
	device := seedDevice(t, db, "INV-503")

	err := svc.CreateRepairRequest(asActor(u), &models.RepairRequest{
		DeviceID: 9999, ProblemDescription: "ghost device",
	})
	assert.Equal(t, code.ErrDeviceNotFound, apperr.CodeOf(err))

	err = svc.CreateRepairRequest(asActor(u), &models.RepairRequest{
		DeviceID: device.ID,
	})
	assert.Equal(t, code.ErrValidation, apperr.CodeOf(err))

	err = svc.CreateRepairRequest(asActor(u), &models.RepairRequest{
		DeviceID: device.ID, ProblemDescription: "x", Priority: "urgent-ish",
	})
	assert.Equal(t, code.ErrValidation, apperr.CodeOf(err))

	// Assignment requires a real user
	req := &models.RepairRequest{DeviceID: device.ID, ProblemDescription: "x"}
	require.NoError(t, svc.CreateRepairRequest(asActor(u), req))
	_, err = svc.AssignRepairRequest(asActor(u), req.ID, 9999)
	assert.Equal(t, code.ErrUserNotFound, apperr.CodeOf(err))
}
