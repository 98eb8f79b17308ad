package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UnionWith folds another family's pipeline into the composite query so
// the whole result set is produced by one server-side operation.
func UnionWith(collection string, stages mongo.Pipeline) bson.D {
	return bson.D{{Key: "$unionWith", Value: bson.M{
		"coll":     collection,
		"pipeline": stages,
	}}}
}

// SortStage fixes the total order of the merged rows. Identical
// requests against unchanged data must return identical output, so the
// key chain ends with tie-breakers that are unique per row.
func SortStage() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{
		{Key: "start", Value: 1},
		{Key: "bookingType", Value: 1},
		{Key: "_id", Value: 1},
		{Key: "shipmentLegIndex", Value: 1},
	}}}
}
