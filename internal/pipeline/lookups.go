package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Reference enrichment. Every lookup here is a left join: a missing or
// orphaned reference never drops the row, the joined fields just stay
// absent. Unwinds therefore always preserve null and empty arrays.

const (
	collUnloadingZones = "unloading_zone"
	collSubProjects    = "sub_project"
	collResources      = "resource"
	collCompanies      = "company"
	collUsers          = "users"
)

// lookupAndUnwind emits a $lookup resolving localField against
// foreignField of fromCollection, followed by a null-preserving $unwind
// unless the target is the resource collection, which stays a list.
// When withoutIDMatch is set the caller supplies the whole inner
// pipeline; when optionalLocalField is set an absent local field
// resolves to null instead of an error inside $let.
func lookupAndUnwind(fromCollection, localField, foreignField, lookupAs, localAlias string, inner []bson.M, withoutIDMatch, optionalLocalField bool) []bson.D {
	var letValue any = "$" + localField
	if optionalLocalField {
		letValue = bson.M{"$ifNull": bson.A{"$" + localField, nil}}
	}

	idMatch := bson.M{"$match": bson.M{
		"$expr": bson.M{"$eq": bson.A{
			"$" + foreignField,
			bson.M{"$toObjectId": "$$" + localAlias},
		}},
	}}

	lookupPipeline := inner
	if !withoutIDMatch {
		lookupPipeline = append([]bson.M{idMatch}, inner...)
	}

	stages := []bson.D{{{Key: "$lookup", Value: bson.M{
		"from":     fromCollection,
		"let":      bson.M{localAlias: letValue},
		"pipeline": lookupPipeline,
		"as":       lookupAs,
	}}}}
	if fromCollection != collResources {
		stages = append(stages, bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + lookupAs,
			"preserveNullAndEmptyArrays": true,
		}}})
	}
	return stages
}

// ZoneLookup resolves an unloading zone reference into its name and
// display color.
func ZoneLookup(localField string) []bson.D {
	return []bson.D{
		{{Key: "$addFields", Value: bson.M{
			"localFieldObjectId": bson.M{"$toObjectId": "$" + localField},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": collUnloadingZones,
			"let":  bson.M{"localFieldValue": "$localFieldObjectId"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$localFieldValue"}}}},
				{"$project": bson.M{"unloading_zone_name": 1, "zone_color": 1}},
			},
			"as": "zone_details",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$zone_details",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func SubProjectLookup(localField string) []bson.D {
	inner := []bson.M{{"$project": bson.M{"sub_project_name": 1}}}
	return lookupAndUnwind(collSubProjects, localField, "_id", "sub_project_details", "sub_project_id", inner, false, false)
}

// ResourceLookup resolves an id list into the matching resource
// documents, keeping them as an ordered list of display patterns.
func ResourceLookup(localField string) []bson.D {
	inner := []bson.M{
		{"$match": bson.M{
			"$expr": bson.M{"$in": bson.A{
				"$_id",
				bson.M{"$map": bson.M{
					"input": bson.M{"$ifNull": bson.A{"$$resource_ids", bson.A{}}},
					"as":    "id",
					"in":    bson.M{"$toObjectId": "$$id"},
				}},
			}},
		}},
		{"$project": bson.M{"resource_pattern": 1}},
	}
	return lookupAndUnwind(collResources, localField, "_id", "resource_details", "resource_ids", inner, true, false)
}

func SupplierLookup(localField string) []bson.D {
	return companyLookup(localField, "supplier_details", "shipment_supplier_name")
}

func ContractorLookup(localField string) []bson.D {
	return companyLookup(localField, "contractor_details", "contractor_name")
}

func companyLookup(localField, lookupAs, nameField string) []bson.D {
	return []bson.D{
		{{Key: "$addFields", Value: bson.M{
			"localFieldObjectId": bson.M{"$toObjectId": "$" + localField},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collCompanies,
			"localField":   "localFieldObjectId",
			"foreignField": "_id",
			"as":           lookupAs,
		}}},
		{{Key: "$addFields", Value: bson.M{
			nameField: bson.M{"$arrayElemAt": bson.A{"$" + lookupAs + ".company_name", 0}},
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + lookupAs,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// UserLookup resolves the responsible person's external id. The id may
// be absent on the booking, hence the null guard on both sides.
func UserLookup(localField string) []bson.D {
	inner := []bson.M{
		{"$match": bson.M{
			"$expr": bson.M{"$cond": bson.M{
				"if":   bson.M{"$ne": bson.A{"$$responsible_person", nil}},
				"then": bson.M{"$eq": bson.A{"$clerk_user_id", "$$responsible_person"}},
				"else": false,
			}},
		}},
	}
	return lookupAndUnwind(collUsers, localField, "_id", "user_details", "responsible_person", inner, true, true)
}
