package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShipmentEnabled(t *testing.T) {
	on := true
	off := false

	// Absent flag means the module is on.
	assert.True(t, ProjectSettings{}.ShipmentEnabled())
	assert.True(t, ProjectSettings{ShipmentModule: &on}.ShipmentEnabled())
	assert.False(t, ProjectSettings{ShipmentModule: &off}.ShipmentEnabled())
}

func TestWasteEnabled(t *testing.T) {
	assert.False(t, ProjectSettings{}.WasteEnabled())
	assert.True(t, ProjectSettings{WasteModule: true}.WasteEnabled())
}

func TestBookingTypeValid(t *testing.T) {
	for _, valid := range []BookingType{BookingTypeShipment, BookingTypeWaste, BookingTypeResource} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, BookingType("").Valid())
	assert.False(t, BookingType("parcel").Valid())
	assert.False(t, BookingType("Shipment").Valid())
}

func TestBookingTypeCollection(t *testing.T) {
	assert.Equal(t, "shipment_bookings", BookingTypeShipment.Collection())
	assert.Equal(t, "waste_bookings", BookingTypeWaste.Collection())
	assert.Equal(t, "resource_bookings", BookingTypeResource.Collection())
}
