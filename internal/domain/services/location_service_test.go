package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
)

func TestMoveDeviceFirstPlacement(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u := seedUser(t, db, "mover", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	device := seedDevice(t, db, "INV-001")

	loc, err := svc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{
		RoomID: room.ID,
		Reason: "initial placement",
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, loc.RoomID)

	history, total, err := svc.GetLocationHistory(asActor(u), device.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, history, 1)

	entry := history[0]
	assert.Nil(t, entry.OldRoomID, "first placement has no old room")
	assert.Nil(t, entry.OldBuildingID)
	assert.Equal(t, room.ID, entry.NewRoomID)
	assert.Equal(t, b.ID, entry.NewBuildingID)
	require.NotNil(t, entry.MovedByID)
	assert.Equal(t, u.ID, *entry.MovedByID)
	assert.Equal(t, "initial placement", entry.Reason)
}

func TestMoveDeviceSecondMove(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u1 := seedUser(t, db, "mover1", models.RoleStaff)
	u2 := seedUser(t, db, "mover2", models.RoleStaff)
	b1 := seedBuilding(t, db, "Block A")
	b2 := seedBuilding(t, db, "Block B")
	room1 := seedRoom(t, db, b1.ID, "101")
	room2 := seedRoom(t, db, b2.ID, "305")
	device := seedDevice(t, db, "INV-002")

	_, err := svc.MoveDevice(asActor(u1), device.ID, MoveDeviceInput{RoomID: room1.ID})
	require.NoError(t, err)

	loc, err := svc.MoveDevice(asActor(u2), device.ID, MoveDeviceInput{
		RoomID: room2.ID,
		Reason: "lab relocation",
	})
	require.NoError(t, err)
	assert.Equal(t, room2.ID, loc.RoomID)

	// Still a single current-location row
	var locCount int64
	require.NoError(t, db.Model(&models.DeviceLocation{}).
		Where("device_id = ?", device.ID).Count(&locCount).Error)
	assert.EqualValues(t, 1, locCount)

	history, total, err := svc.GetLocationHistory(asActor(u2), device.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, history, 2)

	// Newest first
	latest := history[0]
	require.NotNil(t, latest.OldRoomID)
	assert.Equal(t, room1.ID, *latest.OldRoomID)
	require.NotNil(t, latest.OldBuildingID)
	assert.Equal(t, b1.ID, *latest.OldBuildingID)
	assert.Equal(t, room2.ID, latest.NewRoomID)
	assert.Equal(t, b2.ID, latest.NewBuildingID)
	require.NotNil(t, latest.MovedByID)
	assert.Equal(t, u2.ID, *latest.MovedByID)

	// Folding the ledger newest-to-oldest reproduces the current location
	assert.Equal(t, loc.RoomID, latest.NewRoomID)
}

func TestMoveDeviceSameRoomStillAppends(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u := seedUser(t, db, "mover", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	device := seedDevice(t, db, "INV-003")

	_, err := svc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: room.ID})
	require.NoError(t, err)
	_, err = svc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{
		RoomID: room.ID,
		Reason: "repositioned within the room",
	})
	require.NoError(t, err)

	_, total, err := svc.GetLocationHistory(asActor(u), device.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total, "a same-room move is still a ledger fact")
}

func TestMoveDeviceValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u := seedUser(t, db, "mover", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	device := seedDevice(t, db, "INV-004")

	_, err := svc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: 9999})
	assert.Equal(t, code.ErrRoomNotFound, apperr.CodeOf(err))

	_, err = svc.MoveDevice(asActor(u), 9999, MoveDeviceInput{RoomID: room.ID})
	assert.Equal(t, code.ErrDeviceNotFound, apperr.CodeOf(err))

	missing := uint(9999)
	_, err = svc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{
		RoomID:              room.ID,
		ResponsiblePersonID: &missing,
	})
	assert.Equal(t, code.ErrResponsibleNotFound, apperr.CodeOf(err))

	// Nothing about the failed attempts may land in the ledger
	var total int64
	require.NoError(t, db.Model(&models.DeviceLocationHistory{}).
		Where("device_id = ?", device.ID).Count(&total).Error)
	assert.Zero(t, total)
}

func TestGetLocationUnplacedDevice(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u := seedUser(t, db, "mover", models.RoleStaff)
	device := seedDevice(t, db, "INV-005")

	_, err := svc.GetLocation(asActor(u), device.ID)
	assert.Equal(t, code.ErrLocationNotFound, apperr.CodeOf(err))
}

func TestGetLocationHistoryUnknownDevice(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	u := seedUser(t, db, "mover", models.RoleStaff)

	_, _, err := svc.GetLocationHistory(asActor(u), 9999, 1, 20)
	assert.Equal(t, code.ErrDeviceNotFound, apperr.CodeOf(err))

	// A known but never-moved device gets an empty page, not an error
	device := seedDevice(t, db, "INV-006")
	history, total, err := svc.GetLocationHistory(asActor(u), device.ID, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, history)
}
