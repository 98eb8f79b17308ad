package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projsite/bookings-service/internal/model"
)

// NonShipment builds the pipeline shared by waste and resource
// bookings. Both are flat records; resource bookings additionally
// resolve their resource list. The background color is a literal taken
// from project settings (or the family default) rather than a joined
// zone color.
func NonShipment(bookingType model.BookingType, match bson.M, backgroundColor string) mongo.Pipeline {
	stages := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	stages = append(stages, SubProjectLookup("sub_project_id")...)
	stages = append(stages, ContractorLookup("contractor_id")...)
	stages = append(stages, UserLookup("responsible_person")...)
	if bookingType == model.BookingTypeResource {
		stages = append(stages, ResourceLookup("resources")...)
	}

	projection := bson.M{
		"_id":                1,
		"bookingType":        bookingType,
		"start":              "$date_range.from",
		"end":                "$date_range.to",
		"allDay":             "$date_range.isAllDay",
		"info":               1,
		"is_confirmed":       1,
		"subProjectName":     "$sub_project_details.sub_project_name",
		"contractorName":     "$contractor_details.company_name",
		"email":              "$user_details.email",
		"phoneNumber":        "$user_details.phone_number",
		"firstName":          "$user_details.first_name",
		"lastName":           "$user_details.last_name",
		"image":              "$user_details.image",
		"request_status":     1,
		"backgroundColor":    backgroundColor,
		"ntm_data_provided":  1,
		"rejection_reason":   1,
		"created_by_service": 1,
	}
	if bookingType == model.BookingTypeResource {
		projection["resourceIcons"] = "$resource_details.resource_pattern"
	}
	if bookingType == model.BookingTypeWaste {
		projection["status"] = 1
		projection["waste_management_type"] = 1
		projection["waste_service"] = 1
	}

	stages = append(stages, bson.D{{Key: "$project", Value: projection}})
	return stages
}
