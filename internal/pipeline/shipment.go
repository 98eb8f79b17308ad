package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projsite/bookings-service/internal/model"
)

// ZoneColorFallback is the neutral background used when a shipment leg
// has no resolvable unloading zone.
const ZoneColorFallback = "rgb(211, 211, 211)"

// FlattenLegs expands a matched shipment into one row per leg. Each row
// keeps the header fields and carries the leg under shipment_legs plus
// its 0-based position under shipment_legs_index. The index is taken
// from storage order before unwinding, so it is stable across calls and
// usable as a back-reference into the parent document. Legs belonging
// to another project are dropped after the expansion.
func FlattenLegs(projectID string) []bson.D {
	return []bson.D{
		{{Key: "$set", Value: bson.M{
			"shipment_legs_with_index": bson.M{
				"$map": bson.M{
					"input": bson.M{"$range": bson.A{0, bson.M{"$size": "$shipment_legs"}}},
					"as":    "index",
					"in": bson.M{
						"index": "$$index",
						"leg":   bson.M{"$arrayElemAt": bson.A{"$shipment_legs", "$$index"}},
					},
				},
			},
		}}},
		{{Key: "$unwind", Value: "$shipment_legs_with_index"}},
		{{Key: "$set", Value: bson.M{
			"shipment_legs":       "$shipment_legs_with_index.leg",
			"shipment_legs_index": "$shipment_legs_with_index.index",
		}}},
		{{Key: "$match", Value: bson.M{"shipment_legs.project_id": projectID}}},
	}
}

// Shipment builds the full per-family pipeline for shipment bookings:
// match, leg flattening, reference enrichment and the unified
// projection. A shipment with an empty leg sequence yields no rows.
func Shipment(projectID string, match bson.M) mongo.Pipeline {
	stages := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	stages = append(stages, FlattenLegs(projectID)...)
	stages = append(stages, ZoneLookup("shipment_legs.unloading_zone_id")...)
	stages = append(stages, SubProjectLookup("shipment_legs.sub_project_id")...)
	stages = append(stages, ResourceLookup("shipment_legs.resources")...)
	stages = append(stages, SupplierLookup("shipment_supplier")...)
	stages = append(stages, ContractorLookup("contractor_id")...)
	stages = append(stages, UserLookup("responsible_person")...)
	stages = append(stages, bson.D{{Key: "$project", Value: bson.M{
		"_id":                  1,
		"bookingType":          model.BookingTypeShipment,
		"info":                 1,
		"unbooked":             1,
		"is_confirmed":         1,
		"shipment_status":      "$shipment_legs.shipment_status",
		"request_status":       1,
		"rejection_reason":     1,
		"backgroundColor":      bson.M{"$ifNull": bson.A{"$zone_details.zone_color", ZoneColorFallback}},
		"unloadingZoneName":    "$zone_details.unloading_zone_name",
		"start":                "$shipment_legs.date_range.from",
		"end":                  "$shipment_legs.date_range.to",
		"allDay":               "$shipment_legs.date_range.isAllDay",
		"location":             "$shipment_legs.location.formatted_address",
		"ntm_data_provided":    1,
		"subProjectName":       "$sub_project_details.sub_project_name",
		"resourceIcons":        "$resource_details.resource_pattern",
		"shipmentSupplierName": "$supplier_details.company_name",
		"contractorName":       "$contractor_details.company_name",
		"email":                "$user_details.email",
		"phoneNumber":          "$user_details.phone_number",
		"firstName":            "$user_details.first_name",
		"lastName":             "$user_details.last_name",
		"image":                "$user_details.image",
		"package":              1,
		"shipmentLegIndex":     "$shipment_legs_index",
		"shipment_direction":   "$shipment_legs.shipment_direction",
		"is_small_parcel":      1,
		"booking_importer_id":  1,
		"created_by_service":   1,
	}}})
	return stages
}
