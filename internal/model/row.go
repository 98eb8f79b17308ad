package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRow is the unified calendar projection every family converges
// to. Family-specific fields are pointers and stay absent for rows of
// other families; enrichment fields stay absent when the referenced
// entity is missing.
type BookingRow struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	BookingType     BookingType        `bson:"bookingType" json:"bookingType"`
	Start           time.Time          `bson:"start" json:"start"`
	End             time.Time          `bson:"end" json:"end"`
	AllDay          bool               `bson:"allDay" json:"allDay"`
	Info            string             `bson:"info,omitempty" json:"info,omitempty"`
	IsConfirmed     *bool              `bson:"is_confirmed,omitempty" json:"is_confirmed,omitempty"`
	RequestStatus   string             `bson:"request_status,omitempty" json:"request_status,omitempty"`
	RejectionReason string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	BackgroundColor string             `bson:"backgroundColor" json:"backgroundColor"`

	// Enrichment fields, left-joined with null defaults.
	SubProjectName       *string  `bson:"subProjectName,omitempty" json:"subProjectName,omitempty"`
	ResourceIcons        []string `bson:"resourceIcons,omitempty" json:"resourceIcons,omitempty"`
	ContractorName       *string  `bson:"contractorName,omitempty" json:"contractorName,omitempty"`
	Email                *string  `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber          *string  `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	FirstName            *string  `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName             *string  `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Image                *string  `bson:"image,omitempty" json:"image,omitempty"`
	UnloadingZoneName    *string  `bson:"unloadingZoneName,omitempty" json:"unloadingZoneName,omitempty"`
	ShipmentSupplierName *string  `bson:"shipmentSupplierName,omitempty" json:"shipmentSupplierName,omitempty"`

	// Shipment leg fields.
	ShipmentStatus    *string `bson:"shipment_status,omitempty" json:"shipment_status,omitempty"`
	ShipmentLegIndex  *int32  `bson:"shipmentLegIndex,omitempty" json:"shipmentLegIndex,omitempty"`
	ShipmentDirection *string `bson:"shipment_direction,omitempty" json:"shipment_direction,omitempty"`
	IsSmallParcel     *bool   `bson:"is_small_parcel,omitempty" json:"is_small_parcel,omitempty"`
	Location          *string `bson:"location,omitempty" json:"location,omitempty"`
	Package           any     `bson:"package,omitempty" json:"package,omitempty"`
	Unbooked          *bool   `bson:"unbooked,omitempty" json:"unbooked,omitempty"`

	// Waste fields.
	Status              *string `bson:"status,omitempty" json:"status,omitempty"`
	WasteManagementType *string `bson:"waste_management_type,omitempty" json:"waste_management_type,omitempty"`
	WasteService        *string `bson:"waste_service,omitempty" json:"waste_service,omitempty"`

	NTMDataProvided  *bool  `bson:"ntm_data_provided,omitempty" json:"ntm_data_provided,omitempty"`
	BookingImporter  string `bson:"booking_importer_id,omitempty" json:"booking_importer_id,omitempty"`
	CreatedByService string `bson:"created_by_service,omitempty" json:"created_by_service,omitempty"`
}
