package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"rttm-inventory-service/internal/domain/models"
	"rttm-inventory-service/internal/infrastructure/config"
)

// InterfaceReportService defines reporting exports
type InterfaceReportService interface {
	ExportDevices(ctx context.Context, filter DeviceFilter) (*bytes.Buffer, error)
}

// ReportService produces Excel exports for the reporting/UI layer
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{DB: db, Config: cfg}
}

var deviceReportHeader = []string{
	"Inventory number", "Serial number", "Type", "Category", "Condition",
	"Building", "Room", "Responsible person", "Purchase date", "Purchase price", "Status",
}

// ExportDevices writes the filtered device list into an xlsx workbook
func (s *ReportService) ExportDevices(ctx context.Context, filter DeviceFilter) (*bytes.Buffer, error) {
	db := s.DB.WithContext(ctx).Model(&models.Device{})
	if filter.DeviceTypeID != 0 {
		db = db.Where("device_type_id = ?", filter.DeviceTypeID)
	}
	if filter.Condition != "" {
		db = db.Where("`condition` = ?", filter.Condition)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var devices []models.Device
	if err := db.
		Preload("DeviceType").Preload("DeviceType.Category").
		Preload("Location").Preload("Location.Room").Preload("Location.Room.Building").
		Preload("Location.ResponsiblePerson").Preload("Location.ResponsiblePerson.User").
		Order("inventory_number").
		Find(&devices).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Devices"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range deviceReportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, d := range devices {
		row := i + 2
		values := []interface{}{
			d.InventoryNumber,
			d.SerialNumber,
			"", // type
			"", // category
			d.Condition,
			"", // building
			"", // room
			"", // responsible person
			d.PurchaseDate.Format("2006-01-02"),
			"",
			d.Status,
		}

		if d.DeviceType != nil {
			values[2] = d.DeviceType.Name
			if d.DeviceType.Category != nil {
				values[3] = d.DeviceType.Category.Name
			}
		}
		if d.Location != nil && d.Location.Room != nil {
			values[6] = d.Location.Room.Name
			if d.Location.Room.Building != nil {
				values[5] = d.Location.Room.Building.Name
			}
		}
		if d.Location != nil && d.Location.ResponsiblePerson != nil && d.Location.ResponsiblePerson.User != nil {
			values[7] = d.Location.ResponsiblePerson.User.FullName
		}
		if d.PurchasePrice != nil {
			values[9] = fmt.Sprintf("%.2f", *d.PurchasePrice)
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
