package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rttm-inventory-service/internal/domain/models"
)

func TestExportDevices(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, testConfig())
	locSvc := NewLocationService(db, testConfig())
	u := seedUser(t, db, "exporter", models.RoleStaff)

	b := seedBuilding(t, db, "Block A")
	room := seedRoom(t, db, b.ID, "101")
	device := seedDevice(t, db, "INV-XLS-1")
	_, err := locSvc.MoveDevice(asActor(u), device.ID, MoveDeviceInput{RoomID: room.ID})
	require.NoError(t, err)

	buf, err := svc.ExportDevices(asActor(u), DeviceFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Devices", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Inventory number", header)

	inv, err := f.GetCellValue("Devices", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-XLS-1", inv)

	roomCell, err := f.GetCellValue("Devices", "G2")
	require.NoError(t, err)
	assert.Equal(t, "101", roomCell)

	buildingCell, err := f.GetCellValue("Devices", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Block A", buildingCell)
}
