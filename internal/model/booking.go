package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingType string

const (
	BookingTypeShipment BookingType = "shipment"
	BookingTypeWaste    BookingType = "waste"
	BookingTypeResource BookingType = "resource"
)

// Valid reports whether t is one of the three known booking families.
func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeShipment, BookingTypeWaste, BookingTypeResource:
		return true
	}
	return false
}

// Collection returns the store collection holding records of this family.
func (t BookingType) Collection() string {
	switch t {
	case BookingTypeShipment:
		return "shipment_bookings"
	case BookingTypeWaste:
		return "waste_bookings"
	case BookingTypeResource:
		return "resource_bookings"
	}
	return ""
}

// DateRange is the time window every booking (and every shipment leg)
// carries. IsAllDay marks calendar-day bookings without a clock time.
type DateRange struct {
	From     time.Time `bson:"from" json:"from"`
	To       time.Time `bson:"to" json:"to"`
	IsAllDay bool      `bson:"isAllDay" json:"isAllDay"`
}

type Location struct {
	Address          string  `bson:"address" json:"address"`
	FormattedAddress string  `bson:"formatted_address" json:"formatted_address"`
	PlaceID          string  `bson:"place_id" json:"place_id"`
	Lat              float64 `bson:"lat" json:"lat"`
	Lng              float64 `bson:"lng" json:"lng"`
}

// ShipmentLeg is a sub-journey embedded in a shipment booking. Legs are
// never stored standalone; they are flattened to one row each at query
// time, keyed by the parent id plus the leg's position.
type ShipmentLeg struct {
	ProjectID         string    `bson:"project_id" json:"project_id"`
	DateRange         DateRange `bson:"date_range" json:"date_range"`
	UnloadingZoneID   string    `bson:"unloading_zone_id,omitempty" json:"unloading_zone_id,omitempty"`
	SubProjectID      string    `bson:"sub_project_id,omitempty" json:"sub_project_id,omitempty"`
	Resources         []string  `bson:"resources,omitempty" json:"resources,omitempty"`
	ShipmentStatus    string    `bson:"shipment_status,omitempty" json:"shipment_status,omitempty"`
	ShipmentDirection string    `bson:"shipment_direction,omitempty" json:"shipment_direction,omitempty"`
	Location          *Location `bson:"location,omitempty" json:"location,omitempty"`
}

type ShipmentBooking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProjectID         string             `bson:"project_id" json:"project_id"`
	DateRange         DateRange          `bson:"date_range" json:"date_range"`
	ShipmentLegs      []ShipmentLeg      `bson:"shipment_legs" json:"shipment_legs"`
	ShipmentSupplier  string             `bson:"shipment_supplier,omitempty" json:"shipment_supplier,omitempty"`
	ContractorID      string             `bson:"contractor_id,omitempty" json:"contractor_id,omitempty"`
	ResponsiblePerson string             `bson:"responsible_person,omitempty" json:"responsible_person,omitempty"`
	Info              string             `bson:"info,omitempty" json:"info,omitempty"`
	RequestStatus     string             `bson:"request_status,omitempty" json:"request_status,omitempty"`
	RejectionReason   string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	IsConfirmed       *bool              `bson:"is_confirmed,omitempty" json:"is_confirmed,omitempty"`
	IsSmallParcel     bool               `bson:"is_small_parcel,omitempty" json:"is_small_parcel,omitempty"`
	IsDeleted         bool               `bson:"is_deleted" json:"is_deleted"`
	Unbooked          bool               `bson:"unbooked,omitempty" json:"unbooked,omitempty"`
	NTMDataProvided   *bool              `bson:"ntm_data_provided,omitempty" json:"ntm_data_provided,omitempty"`
	BookingImporterID string             `bson:"booking_importer_id,omitempty" json:"booking_importer_id,omitempty"`
	CreatedByService  string             `bson:"created_by_service,omitempty" json:"created_by_service,omitempty"`
	CreatedAt         time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt         time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type WasteBooking struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProjectID           string             `bson:"project_id" json:"project_id"`
	DateRange           DateRange          `bson:"date_range" json:"date_range"`
	SubProjectID        string             `bson:"sub_project_id,omitempty" json:"sub_project_id,omitempty"`
	ContractorID        string             `bson:"contractor_id,omitempty" json:"contractor_id,omitempty"`
	ResponsiblePerson   string             `bson:"responsible_person,omitempty" json:"responsible_person,omitempty"`
	Status              string             `bson:"status,omitempty" json:"status,omitempty"`
	WasteManagementType string             `bson:"waste_management_type,omitempty" json:"waste_management_type,omitempty"`
	WasteService        string             `bson:"waste_service,omitempty" json:"waste_service,omitempty"`
	Info                string             `bson:"info,omitempty" json:"info,omitempty"`
	RequestStatus       string             `bson:"request_status,omitempty" json:"request_status,omitempty"`
	RejectionReason     string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	IsConfirmed         *bool              `bson:"is_confirmed,omitempty" json:"is_confirmed,omitempty"`
	IsDeleted           bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedByService    string             `bson:"created_by_service,omitempty" json:"created_by_service,omitempty"`
	CreatedAt           time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt           time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ResourceBooking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProjectID         string             `bson:"project_id" json:"project_id"`
	DateRange         DateRange          `bson:"date_range" json:"date_range"`
	SubProjectID      string             `bson:"sub_project_id,omitempty" json:"sub_project_id,omitempty"`
	Resources         []string           `bson:"resources,omitempty" json:"resources,omitempty"`
	ContractorID      string             `bson:"contractor_id,omitempty" json:"contractor_id,omitempty"`
	ResponsiblePerson string             `bson:"responsible_person,omitempty" json:"responsible_person,omitempty"`
	Info              string             `bson:"info,omitempty" json:"info,omitempty"`
	RequestStatus     string             `bson:"request_status,omitempty" json:"request_status,omitempty"`
	RejectionReason   string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	IsConfirmed       *bool              `bson:"is_confirmed,omitempty" json:"is_confirmed,omitempty"`
	IsDeleted         bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedByService  string             `bson:"created_by_service,omitempty" json:"created_by_service,omitempty"`
	CreatedAt         time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt         time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
