package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projsite/bookings-service/internal/model"
)

func strPtr(s string) *string { return &s }

func TestGenerateWorkbook(t *testing.T) {
	confirmed := false
	rows := []model.BookingRow{
		{
			ID:                primitive.NewObjectID(),
			BookingType:       model.BookingTypeShipment,
			Start:             time.Date(2024, 5, 2, 7, 0, 0, 0, time.UTC),
			End:               time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC),
			Info:              "concrete delivery",
			UnloadingZoneName: strPtr("Gate B"),
			ContractorName:    strPtr("Nordbygg AB"),
			ShipmentStatus:    strPtr("arrived"),
			FirstName:         strPtr("Eva"),
			LastName:          strPtr("Lind"),
			IsConfirmed:       &confirmed,
			BackgroundColor:   "rgb(211, 211, 211)",
		},
		{
			ID:              primitive.NewObjectID(),
			BookingType:     model.BookingTypeWaste,
			Start:           time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			AllDay:          true,
			Status:          strPtr("full"),
			BackgroundColor: "#8CE542",
		},
	}

	content, err := NewGenerator().Generate(rows)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	cell := func(ref string) string {
		value, err := file.GetCellValue(sheetName, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Type", cell("A1"))
	assert.Equal(t, "Color", cell("P1"))

	assert.Equal(t, "shipment", cell("A2"))
	assert.Equal(t, "2024-05-02 07:00", cell("B2"))
	assert.Equal(t, "Gate B", cell("F2"))
	assert.Equal(t, "Nordbygg AB", cell("H2"))
	assert.Equal(t, "arrived", cell("J2"))
	assert.Equal(t, "no", cell("L2"))
	assert.Equal(t, "Eva Lind", cell("M2"))

	assert.Equal(t, "waste", cell("A3"))
	assert.Equal(t, "", cell("C3"))
	assert.Equal(t, "full", cell("J3"))
	// Unset confirmation counts as confirmed.
	assert.Equal(t, "yes", cell("L3"))
}

func TestGenerateEmpty(t *testing.T) {
	content, err := NewGenerator().Generate(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	cols, err := file.GetCols(sheetName)
	require.NoError(t, err)
	require.Len(t, cols, len(columns))
	assert.Equal(t, []string{"Type"}, cols[0])
}

func TestResponsibleName(t *testing.T) {
	assert.Equal(t, "", responsibleName(model.BookingRow{}))
	assert.Equal(t, "Eva", responsibleName(model.BookingRow{FirstName: strPtr("Eva")}))
	assert.Equal(t, "Lind", responsibleName(model.BookingRow{LastName: strPtr("Lind")}))
	assert.Equal(t, "Eva Lind", responsibleName(model.BookingRow{FirstName: strPtr("Eva"), LastName: strPtr("Lind")}))
}
