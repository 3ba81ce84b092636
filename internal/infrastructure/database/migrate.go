package database

import (
	"fmt"

	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/pkg/logger"
)

// allModels lists every persisted entity in dependency order
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Building{},
		&models.BuildingImage{},
		&models.Room{},
		&models.RoomImage{},
		&models.ResponsiblePerson{},
		&models.Category{},
		&models.DeviceType{},
		&models.Device{},
		&models.DeviceImage{},
		&models.DeviceLocation{},
		&models.DeviceLocationHistory{},
		&models.DeviceConditionHistory{},
		&models.RepairRequest{},
		&models.ServiceLog{},
	}
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return err
	}
	return createPartialUniqueIndexes(db)
}

// DropAndRecreate drops every table and migrates from scratch. Used by the
// "drop" migration mode only.
func DropAndRecreate(db *gorm.DB) error {
	ms := allModels()
	// Drop in reverse order so FK-dependent tables go first
	for i := len(ms) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ms[i]); err != nil {
			return err
		}
	}
	return Migrate(db)
}

// partialIndexes are the "at most one main image per owner" constraints.
// These are conditional unique indexes and only exist on engines that
// support them; on MySQL the same rule is enforced by the image service
// inside its transaction.
var partialIndexes = []struct {
	name   string
	table  string
	column string
}{
	{"uniq_main_image_per_building", "building_images", "building_id"},
	{"uniq_main_image_per_room", "room_images", "room_id"},
	{"uniq_main_image_per_device", "device_images", "device_id"},
}

func createPartialUniqueIndexes(db *gorm.DB) error {
	var cond string
	switch db.Dialector.Name() {
	case "sqlite", "sqlite3":
		cond = "is_main = 1"
	case "postgres":
		cond = "is_main"
	default:
		logger.Debug("migrate: %s does not support partial indexes, relying on service-level checks", db.Dialector.Name())
		return nil
	}

	for _, idx := range partialIndexes {
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s(%s) WHERE %s",
			idx.name, idx.table, idx.column, cond,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
