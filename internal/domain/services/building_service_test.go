package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/error/apperr"
	"rttm-inventory-service/internal/error/code"
)

func TestRoomNameUniquePerBuilding(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, testConfig())
	u := seedUser(t, db, "planner", models.RoleStaff)
	b1 := seedBuilding(t, db, "Block A")
	b2 := seedBuilding(t, db, "Block B")

	require.NoError(t, svc.CreateRoom(asActor(u), &models.Room{BuildingID: b1.ID, Name: "101"}))

	err := svc.CreateRoom(asActor(u), &models.Room{BuildingID: b1.ID, Name: "101"})
	assert.Equal(t, code.ErrRoomAlreadyExist, apperr.CodeOf(err))

	// The same name in another building is fine
	require.NoError(t, svc.CreateRoom(asActor(u), &models.Room{BuildingID: b2.ID, Name: "101"}))

	err = svc.CreateRoom(asActor(u), &models.Room{BuildingID: 9999, Name: "105"})
	assert.Equal(t, code.ErrBuildingNotFound, apperr.CodeOf(err))
}

func TestDeleteRoomRefusedWhileOccupied(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db, testConfig())
	locSvc := NewLocationService(db, testConfig())
	u := seedUser(t, db, "planner", models.RoleAdmin)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	other := seedRoom(t, db, b.ID, "102")
	device := seedDevice(t, db, "INV-700")

	_, err := locSvc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: room.ID})
	require.NoError(t, err)

	err = roomSvc.DeleteRoom(asActor(u), room.ID)
	assert.Equal(t, code.ErrRoomInUse, apperr.CodeOf(err))

	// Once the device moves out the room can go
	_, err = locSvc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: other.ID})
	require.NoError(t, err)
	require.NoError(t, roomSvc.DeleteRoom(asActor(u), room.ID))
}

func TestDeleteBuildingCascadesOrRefuses(t *testing.T) {
	db := newTestDB(t)
	bldSvc := NewBuildingService(db, testConfig())
	locSvc := NewLocationService(db, testConfig())
	u := seedUser(t, db, "planner", models.RoleAdmin)

	// Occupied building refuses deletion
	occupied := seedBuilding(t, db, "Occupied")
	room := seedRoom(t, db, occupied.ID, "101")
	device := seedDevice(t, db, "INV-701")
	_, err := locSvc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: room.ID})
	require.NoError(t, err)

	err = bldSvc.DeleteBuilding(asActor(u), occupied.ID)
	assert.Equal(t, code.ErrRoomInUse, apperr.CodeOf(err))

	// Empty building goes together with its rooms and responsible assignments
	empty := seedBuilding(t, db, "Empty")
	seedRoom(t, db, empty.ID, "201")
	seedRoom(t, db, empty.ID, "202")
	keeper := seedUser(t, db, "keeper", models.RoleStaff)
	require.NoError(t, db.Create(&models.ResponsiblePerson{
		UserID: keeper.ID, BuildingID: empty.ID,
	}).Error)

	require.NoError(t, bldSvc.DeleteBuilding(asActor(u), empty.ID))

	var rooms int64
	require.NoError(t, db.Model(&models.Room{}).Where("building_id = ?", empty.ID).Count(&rooms).Error)
	assert.Zero(t, rooms)
	var responsibles int64
	require.NoError(t, db.Model(&models.ResponsiblePerson{}).Where("building_id = ?", empty.ID).Count(&responsibles).Error)
	assert.Zero(t, responsibles)

	_, err = bldSvc.GetBuildingByID(asActor(u), empty.ID)
	assert.Equal(t, code.ErrBuildingNotFound, apperr.CodeOf(err))
}

func TestDeleteRoomWidensResponsibles(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db, testConfig())
	u := seedUser(t, db, "planner", models.RoleAdmin)
	keeper := seedUser(t, db, "keeper", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")

	rp := &models.ResponsiblePerson{UserID: keeper.ID, BuildingID: b.ID, RoomID: &room.ID}
	require.NoError(t, db.Create(rp).Error)

	require.NoError(t, roomSvc.DeleteRoom(asActor(u), room.ID))

	// The assignment survives, widened back to the whole building
	var kept models.ResponsiblePerson
	require.NoError(t, db.First(&kept, rp.ID).Error)
	assert.Nil(t, kept.RoomID)
	assert.Equal(t, b.ID, kept.BuildingID)
}

func TestCategoryProtectiveDelete(t *testing.T) {
	db := newTestDB(t)
	catSvc := NewCategoryService(db, testConfig())
	dtSvc := NewDeviceTypeService(db, testConfig())
	u := seedUser(t, db, "curator", models.RoleAdmin)

	parent := &models.Category{Name: "Electronics"}
	require.NoError(t, catSvc.CreateCategory(asActor(u), parent))
	child := &models.Category{Name: "Computers", ParentID: &parent.ID}
	require.NoError(t, catSvc.CreateCategory(asActor(u), child))

	// A category with children cannot go
	err := catSvc.DeleteCategory(asActor(u), parent.ID)
	assert.Equal(t, code.ErrCategoryInUse, apperr.CodeOf(err))

	dt := &models.DeviceType{CategoryID: child.ID, Name: "Desktop", Model: "M1"}
	require.NoError(t, dtSvc.CreateDeviceType(asActor(u), dt))

	// A category with device types cannot go either
	err = catSvc.DeleteCategory(asActor(u), child.ID)
	assert.Equal(t, code.ErrCategoryInUse, apperr.CodeOf(err))

	// Duplicate names are rejected
	err = catSvc.CreateCategory(asActor(u), &models.Category{Name: "Electronics"})
	assert.Equal(t, code.ErrCategoryAlreadyExist, apperr.CodeOf(err))

	// A category cannot be its own parent
	_, err = catSvc.UpdateCategory(asActor(u), parent.ID, map[string]interface{}{
		"parent_id": parent.ID,
	})
	assert.Equal(t, code.ErrValidation, apperr.CodeOf(err))
}

func TestDeviceTypeProtectiveDelete(t *testing.T) {
	db := newTestDB(t)
	dtSvc := NewDeviceTypeService(db, testConfig())
	devSvc := NewDeviceService(db, testConfig())
	u := seedUser(t, db, "curator", models.RoleAdmin)

	cat := &models.Category{Name: "Printers"}
	require.NoError(t, db.Create(cat).Error)
	dt := &models.DeviceType{CategoryID: cat.ID, Name: "Laser", Model: "P2035"}
	require.NoError(t, dtSvc.CreateDeviceType(asActor(u), dt))

	device := &models.Device{
		DeviceTypeID:    dt.ID,
		InventoryNumber: "INV-800",
		PurchaseDate:    mustDate("2023-06-01"),
	}
	require.NoError(t, devSvc.CreateDevice(asActor(u), device))

	err := dtSvc.DeleteDeviceType(asActor(u), dt.ID)
	assert.Equal(t, code.ErrDeviceTypeInUse, apperr.CodeOf(err))

	// The (category, name, model) triple is unique
	err = dtSvc.CreateDeviceType(asActor(u), &models.DeviceType{
		CategoryID: cat.ID, Name: "Laser", Model: "P2035",
	})
	assert.Equal(t, code.ErrDeviceTypeAlreadyExist, apperr.CodeOf(err))

	require.NoError(t, devSvc.DeleteDevice(asActor(u), device.ID))
	require.NoError(t, dtSvc.DeleteDeviceType(asActor(u), dt.ID))
}

func TestResponsibleAssignmentUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewResponsiblePersonService(db, testConfig())
	u := seedUser(t, db, "admin", models.RoleAdmin)
	person := seedUser(t, db, "keeper", models.RoleStaff)
	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")

	require.NoError(t, svc.CreateResponsible(asActor(u), &models.ResponsiblePerson{
		UserID: person.ID, BuildingID: b.ID,
	}))

	// Same user for the whole building again
	err := svc.CreateResponsible(asActor(u), &models.ResponsiblePerson{
		UserID: person.ID, BuildingID: b.ID,
	})
	assert.Equal(t, code.ErrResponsibleAlreadyExist, apperr.CodeOf(err))

	// Narrowed to a room is a distinct assignment
	require.NoError(t, svc.CreateResponsible(asActor(u), &models.ResponsiblePerson{
		UserID: person.ID, BuildingID: b.ID, RoomID: &room.ID,
	}))

	// Room must belong to the building
	other := seedBuilding(t, db, "Block B")
	err = svc.CreateResponsible(asActor(u), &models.ResponsiblePerson{
		UserID: person.ID, BuildingID: other.ID, RoomID: &room.ID,
	})
	assert.Equal(t, code.ErrValidation, apperr.CodeOf(err))
}
