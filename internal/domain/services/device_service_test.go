package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
)

func TestCreateDeviceValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "creator", models.RoleStaff)
	dt := seedDeviceType(t, db)

	base := func() *models.Device {
		return &models.Device{
			DeviceTypeID:    dt.ID,
			InventoryNumber: "INV-100",
			PurchaseDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	bad := base()
	bad.MACAddress = "not-a-mac"
	assert.Equal(t, code.ErrInvalidMACAddress, apperr.CodeOf(svc.CreateDevice(asActor(u), bad)))

	bad = base()
	bad.IPAddress = "999.1.1.1"
	assert.Equal(t, code.ErrInvalidIPAddress, apperr.CodeOf(svc.CreateDevice(asActor(u), bad)))

	good := base()
	good.MACAddress = "00:1B:44:11:3A:B7"
	good.IPAddress = "10.10.4.21"
	require.NoError(t, svc.CreateDevice(asActor(u), good))
	assert.Equal(t, models.ConditionWorking, good.Condition)

	dup := base()
	assert.Equal(t, code.ErrDeviceAlreadyExist, apperr.CodeOf(svc.CreateDevice(asActor(u), dup)))
}

func TestChangeConditionAppendsHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "tech", models.RoleStaff)
	device := seedDevice(t, db, "INV-101")

	changed, err := svc.ChangeCondition(asActor(u), device.ID, models.ConditionBroken, "psu failure")
	require.NoError(t, err)
	assert.Equal(t, models.ConditionBroken, changed.Condition)

	history, total, err := svc.GetConditionHistory(asActor(u), device.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, history, 1)

	entry := history[0]
	require.NotNil(t, entry.OldCondition)
	assert.Equal(t, models.ConditionWorking, *entry.OldCondition)
	assert.Equal(t, models.ConditionBroken, entry.NewCondition)
	assert.Equal(t, "psu failure", entry.Reason)
	require.NotNil(t, entry.ChangedByID)
	assert.Equal(t, u.ID, *entry.ChangedByID)

	// The newest ledger row always agrees with the device row
	_, err = svc.ChangeCondition(asActor(u), device.ID, models.ConditionRepair, "sent to workshop")
	require.NoError(t, err)

	history, _, err = svc.GetConditionHistory(asActor(u), device.ID, 1, 10)
	require.NoError(t, err)
	reloaded, err := svc.GetDeviceByID(asActor(u), device.ID)
	require.NoError(t, err)
	assert.Equal(t, reloaded.Condition, history[0].NewCondition)
}

func TestChangeConditionRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "tech", models.RoleStaff)
	device := seedDevice(t, db, "INV-102")

	_, err := svc.ChangeCondition(asActor(u), device.ID, "melted", "")
	assert.Equal(t, code.ErrInvalidCondition, apperr.CodeOf(err))

	var total int64
	require.NoError(t, db.Model(&models.DeviceConditionHistory{}).
		Where("device_id = ?", device.ID).Count(&total).Error)
	assert.Zero(t, total)
}

func TestUpdateDeviceIgnoresCondition(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "editor", models.RoleStaff)
	device := seedDevice(t, db, "INV-103")

	updated, err := svc.UpdateDevice(asActor(u), device.ID, map[string]interface{}{
		"notes":     "relabeled",
		"condition": models.ConditionBroken,
	})
	require.NoError(t, err)
	assert.Equal(t, "relabeled", updated.Notes)
	assert.Equal(t, models.ConditionWorking, updated.Condition,
		"condition only changes through ChangeCondition")
}

func TestGetAllDevicesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "viewer", models.RoleStaff)

	d1 := seedDevice(t, db, "INV-200")
	seedDevice(t, db, "INV-201")
	_, err := svc.ChangeCondition(asActor(u), d1.ID, models.ConditionStored, "")
	require.NoError(t, err)

	stored, total, err := svc.GetAllDevices(asActor(u),
		DeviceFilter{Condition: models.ConditionStored}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, stored, 1)
	assert.Equal(t, d1.ID, stored[0].ID)

	bySearch, total, err := svc.GetAllDevices(asActor(u),
		DeviceFilter{Search: "INV-201"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "INV-201", bySearch[0].InventoryNumber)
}

func TestGetDeviceByInventoryNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "viewer", models.RoleStaff)
	device := seedDevice(t, db, "INV-300")

	found, err := svc.GetDeviceByInventoryNumber(asActor(u), "INV-300")
	require.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)

	_, err = svc.GetDeviceByInventoryNumber(asActor(u), "INV-999")
	assert.Equal(t, code.ErrDeviceNotFound, apperr.CodeOf(err))
}

func TestDeleteDeviceRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	locSvc := NewLocationService(db, testConfig())
	repairSvc := NewRepairService(db, testConfig())
	logSvc := NewServiceLogService(db, testConfig())
	u := seedUser(t, db, "remover", models.RoleAdmin)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	device := seedDevice(t, db, "INV-400")

	_, err := locSvc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: room.ID})
	require.NoError(t, err)
	_, err = svc.ChangeCondition(asActor(u), device.ID, models.ConditionBroken, "")
	require.NoError(t, err)
	repair := &models.RepairRequest{DeviceID: device.ID, ProblemDescription: "dead disk"}
	require.NoError(t, repairSvc.CreateRepairRequest(asActor(u), repair))
	require.NoError(t, logSvc.CreateServiceLog(asActor(u), &models.ServiceLog{
		DeviceID:        device.ID,
		ServiceType:     models.ServiceRepair,
		ServiceDate:     mustDate("2024-10-05"),
		Description:     "disk swapped",
		RepairRequestID: &repair.ID,
	}))

	require.NoError(t, svc.DeleteDevice(asActor(u), device.ID))

	for _, m := range []interface{}{
		&models.DeviceLocation{}, &models.DeviceLocationHistory{}, &models.DeviceConditionHistory{},
		&models.ServiceLog{}, &models.RepairRequest{},
	} {
		var n int64
		require.NoError(t, db.Model(m).Where("device_id = ?", device.ID).Count(&n).Error)
		assert.Zero(t, n, "%T rows must go with the device", m)
	}
}
