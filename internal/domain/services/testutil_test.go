package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rttm-inventory-service/internal/domain/actor"
	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/infrastructure/config"
	"rttm-inventory-service/internal/infrastructure/database"
)

// newTestDB opens an isolated in-memory database migrated to the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{}
}

// asActor returns a context carrying an authenticated actor
func asActor(u *models.User) context.Context {
	return actor.WithActor(context.Background(), actor.Actor{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		Authenticated: true,
	})
}

// mustDate parses a YYYY-MM-DD fixture date
func mustDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	u := &models.User{Username: username, FullName: username, Role: role, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBuilding(t *testing.T, db *gorm.DB, name string) *models.Building {
	t.Helper()
	b := &models.Building{Name: name}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedRoom(t *testing.T, db *gorm.DB, buildingID uint, name string) *models.Room {
	t.Helper()
	r := &models.Room{BuildingID: buildingID, Name: name}
	require.NoError(t, db.Create(r).Error)
	return r
}

var seedSeq atomic.Uint64

func seedDeviceType(t *testing.T, db *gorm.DB) *models.DeviceType {
	t.Helper()
	cat := &models.Category{Name: fmt.Sprintf("Computers-%d", seedSeq.Add(1))}
	require.NoError(t, db.Create(cat).Error)
	dt := &models.DeviceType{CategoryID: cat.ID, Name: "Desktop", Model: "OptiPlex"}
	require.NoError(t, db.Create(dt).Error)
	return dt
}

func seedDevice(t *testing.T, db *gorm.DB, inventoryNumber string) *models.Device {
	t.Helper()
	dt := seedDeviceType(t, db)
	d := &models.Device{
		DeviceTypeID:    dt.ID,
		InventoryNumber: inventoryNumber,
		Condition:       models.ConditionWorking,
		PurchaseDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(d).Error)
	return d
}
