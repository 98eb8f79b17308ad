package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/projsite/bookings-service/internal/model"
)

const sheetName = "Bookings"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

var columns = []string{
	"Type",
	"Start",
	"End",
	"All day",
	"Info",
	"Zone",
	"Sub project",
	"Contractor",
	"Supplier",
	"Status",
	"Request status",
	"Confirmed",
	"Responsible",
	"Email",
	"Phone",
	"Color",
}

// Generate writes the unified booking rows to a single-sheet workbook.
func (g *Generator) Generate(rows []model.BookingRow) ([]byte, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheetName)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheetName, cell, value)
	}

	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		set(cell, header)
	}

	for i, row := range rows {
		values := []interface{}{
			string(row.BookingType),
			formatTime(row.Start),
			formatTime(row.End),
			row.AllDay,
			row.Info,
			deref(row.UnloadingZoneName),
			deref(row.SubProjectName),
			deref(row.ContractorName),
			deref(row.ShipmentSupplierName),
			bookingStatus(row),
			row.RequestStatus,
			confirmed(row.IsConfirmed),
			responsibleName(row),
			deref(row.Email),
			deref(row.PhoneNumber),
			row.BackgroundColor,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheetName, "A", "A", 12)
	_ = file.SetColWidth(sheetName, "B", "C", 20)
	_ = file.SetColWidth(sheetName, "E", "I", 24)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func confirmed(flag *bool) string {
	if flag != nil && !*flag {
		return "no"
	}
	return "yes"
}

func bookingStatus(row model.BookingRow) string {
	if row.ShipmentStatus != nil {
		return *row.ShipmentStatus
	}
	if row.Status != nil {
		return *row.Status
	}
	return ""
}

func responsibleName(row model.BookingRow) string {
	first := deref(row.FirstName)
	last := deref(row.LastName)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return fmt.Sprintf("%s %s", first, last)
}
