package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
)

func TestCreateServiceLog(t *testing.T) {
	db := newTestDB(t)
	svc := NewServiceLogService(db, testConfig())
	u := seedUser(t, db, "maintainer", models.RoleStaff)
	device := seedDevice(t, db, "INV-900")

	log := &models.ServiceLog{
		DeviceID:    device.ID,
		ServiceType: models.ServicePreventive,
		ServiceDate: mustDate("2024-11-02"),
		Description: "cleaned fans",
	}
	require.NoError(t, svc.CreateServiceLog(asActor(u), log))
	require.NotNil(t, log.PerformedByID)
	assert.Equal(t, u.ID, *log.PerformedByID, "performer defaults to the actor")

	err := svc.CreateServiceLog(asActor(u), &models.ServiceLog{
		DeviceID:    device.ID,
		ServiceType: "polishing",
		ServiceDate: mustDate("2024-11-02"),
		Description: "x",
	})
	assert.Equal(t, code.ErrInvalidServiceType, apperr.CodeOf(err))

	err = svc.CreateServiceLog(asActor(u), &models.ServiceLog{
		DeviceID:    9999,
		ServiceType: models.ServiceRepair,
		ServiceDate: mustDate("2024-11-02"),
		Description: "x",
	})
	assert.Equal(t, code.ErrDeviceNotFound, apperr.CodeOf(err))
}

func TestServiceLogCorrelatesRepair(t *testing.T) {
	db := newTestDB(t)
	logSvc := NewServiceLogService(db, testConfig())
	repairSvc := NewRepairService(db, testConfig())
	u := seedUser(t, db, "maintainer", models.RoleStaff)
	device := seedDevice(t, db, "INV-901")

	repair := &models.RepairRequest{DeviceID: device.ID, ProblemDescription: "noisy fan"}
	require.NoError(t, repairSvc.CreateRepairRequest(asActor(u), repair))

	log := &models.ServiceLog{
		DeviceID:        device.ID,
		ServiceType:     models.ServiceRepair,
		ServiceDate:     mustDate("2024-12-01"),
		Description:     "replaced fan",
		RepairRequestID: &repair.ID,
	}
	require.NoError(t, logSvc.CreateServiceLog(asActor(u), log))

	loaded, err := logSvc.GetServiceLogByID(asActor(u), log.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.RepairRequestID)
	assert.Equal(t, repair.ID, *loaded.RepairRequestID)

	// Dangling repair reference is rejected
	missing := uint(9999)
	err = logSvc.CreateServiceLog(asActor(u), &models.ServiceLog{
		DeviceID:        device.ID,
		ServiceType:     models.ServiceRepair,
		ServiceDate:     mustDate("2024-12-01"),
		Description:     "x",
		RepairRequestID: &missing,
	})
	assert.Equal(t, code.ErrRepairNotFound, apperr.CodeOf(err))
}
