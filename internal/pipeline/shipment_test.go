package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/projsite/bookings-service/internal/model"
)

func stageKey(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func TestFlattenLegsStages(t *testing.T) {
	stages := FlattenLegs("proj1")
	require.Len(t, stages, 4)

	assert.Equal(t, "$set", stageKey(stages[0]))
	assert.Equal(t, "$unwind", stageKey(stages[1]))
	assert.Equal(t, "$set", stageKey(stages[2]))
	assert.Equal(t, "$match", stageKey(stages[3]))

	// The index is computed over storage order before the unwind, so
	// each leg row keeps its stable 0-based position.
	indexed, ok := stages[0][0].Value.(bson.M)["shipment_legs_with_index"].(bson.M)
	require.True(t, ok)
	mapExpr, ok := indexed["$map"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$range": bson.A{0, bson.M{"$size": "$shipment_legs"}}}, mapExpr["input"])
	assert.Equal(t, "index", mapExpr["as"])

	overlay, ok := stages[2][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "$shipment_legs_with_index.leg", overlay["shipment_legs"])
	assert.Equal(t, "$shipment_legs_with_index.index", overlay["shipment_legs_index"])

	assert.Equal(t, bson.M{"shipment_legs.project_id": "proj1"}, stages[3][0].Value)
}

func TestShipmentPipelineShape(t *testing.T) {
	match := bson.M{"project_id": "proj1", "is_deleted": false}
	stages := Shipment("proj1", match)
	require.NotEmpty(t, stages)

	assert.Equal(t, "$match", stageKey(stages[0]))
	assert.Equal(t, match, stages[0][0].Value)

	last := stages[len(stages)-1]
	require.Equal(t, "$project", stageKey(last))
	projection, ok := last[0].Value.(bson.M)
	require.True(t, ok)

	assert.Equal(t, model.BookingTypeShipment, projection["bookingType"])
	assert.Equal(t, "$shipment_legs_index", projection["shipmentLegIndex"])
	assert.Equal(t, "$shipment_legs.date_range.from", projection["start"])
	assert.Equal(t, "$shipment_legs.date_range.to", projection["end"])
	assert.Equal(t, "$shipment_legs.date_range.isAllDay", projection["allDay"])
	assert.Equal(t, "$shipment_legs.shipment_direction", projection["shipment_direction"])
	assert.Equal(t,
		bson.M{"$ifNull": bson.A{"$zone_details.zone_color", ZoneColorFallback}},
		projection["backgroundColor"],
	)
}

func TestShipmentPipelineFlattensBeforeLookups(t *testing.T) {
	stages := Shipment("proj1", bson.M{"project_id": "proj1"})

	var keys []string
	for _, stage := range stages {
		keys = append(keys, stageKey(stage))
	}

	firstLookup := -1
	legMatch := -1
	for i, key := range keys {
		if key == "$lookup" && firstLookup == -1 {
			firstLookup = i
		}
		if key == "$match" && i > 0 && legMatch == -1 {
			legMatch = i
		}
	}
	require.Greater(t, firstLookup, 0)
	require.Greater(t, legMatch, 0)
	assert.Less(t, legMatch, firstLookup, "leg flattening must finish before enrichment")
}
