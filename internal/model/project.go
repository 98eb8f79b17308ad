package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectSettings gates the booking families and carries the display
// defaults for the calendar. shipment_module is tri-state on the wire:
// an absent flag means the module is enabled, so it decodes to a pointer.
type ProjectSettings struct {
	WasteBookingColor    string `bson:"waste_booking_color,omitempty" json:"waste_booking_color,omitempty"`
	ResourceBookingColor string `bson:"resource_booking_color,omitempty" json:"resource_booking_color,omitempty"`
	Information          string `bson:"information,omitempty" json:"information,omitempty"`
	ShipmentModule       *bool  `bson:"shipment_module,omitempty" json:"shipment_module,omitempty"`
	WasteModule          bool   `bson:"waste_module,omitempty" json:"waste_module,omitempty"`
	CheckpointModule     bool   `bson:"checkpoint_module,omitempty" json:"checkpoint_module,omitempty"`
	WarehouseModule      bool   `bson:"warehouse_module,omitempty" json:"warehouse_module,omitempty"`
	ScannerModule        bool   `bson:"scanner_module,omitempty" json:"scanner_module,omitempty"`
	AutoApproval         bool   `bson:"auto_approval,omitempty" json:"auto_approval,omitempty"`
	WasteAutoApproval    bool   `bson:"waste_auto_approval,omitempty" json:"waste_auto_approval,omitempty"`
	SubProjects          bool   `bson:"sub_projects,omitempty" json:"sub_projects,omitempty"`
	Unbooked             bool   `bson:"unbooked,omitempty" json:"unbooked,omitempty"`
}

// ShipmentEnabled is true unless the flag is explicitly set to false.
func (s ProjectSettings) ShipmentEnabled() bool {
	return s.ShipmentModule == nil || *s.ShipmentModule
}

// WasteEnabled is true only when the flag is explicitly set.
func (s ProjectSettings) WasteEnabled() bool {
	return s.WasteModule
}

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProjectID   string             `bson:"project_id" json:"project_id"`
	ProjectName string             `bson:"project_name" json:"project_name"`
	CompanyID   string             `bson:"company_id,omitempty" json:"company_id,omitempty"`
	Location    *Location          `bson:"location,omitempty" json:"location,omitempty"`
	DateRange   *DateRange         `bson:"date_range,omitempty" json:"date_range,omitempty"`
	Settings    ProjectSettings    `bson:"settings" json:"settings"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
