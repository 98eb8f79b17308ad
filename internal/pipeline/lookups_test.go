package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func findStage(stages []bson.D, key string) (bson.M, bool) {
	for _, stage := range stages {
		if stageKey(stage) == key {
			value, ok := stage[0].Value.(bson.M)
			return value, ok
		}
	}
	return nil, false
}

func TestZoneLookupPreservesMissingReferences(t *testing.T) {
	stages := ZoneLookup("shipment_legs.unloading_zone_id")
	require.Len(t, stages, 3)

	lookup, ok := findStage(stages, "$lookup")
	require.True(t, ok)
	assert.Equal(t, "unloading_zone", lookup["from"])
	assert.Equal(t, "zone_details", lookup["as"])

	unwind, ok := findStage(stages, "$unwind")
	require.True(t, ok)
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestSubProjectLookupUnwinds(t *testing.T) {
	stages := SubProjectLookup("sub_project_id")
	require.Len(t, stages, 2)

	lookup, ok := findStage(stages, "$lookup")
	require.True(t, ok)
	assert.Equal(t, "sub_project", lookup["from"])
	assert.Equal(t, "sub_project_details", lookup["as"])

	unwind, ok := findStage(stages, "$unwind")
	require.True(t, ok)
	assert.Equal(t, "$sub_project_details", unwind["path"])
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestResourceLookupKeepsList(t *testing.T) {
	stages := ResourceLookup("resources")
	// Resources stay a list for the icon projection, so no unwind.
	require.Len(t, stages, 1)

	lookup, ok := findStage(stages, "$lookup")
	require.True(t, ok)
	assert.Equal(t, "resource", lookup["from"])
	assert.Equal(t, "resource_details", lookup["as"])

	// An absent id list resolves against the empty list, not an error.
	inner, ok := lookup["pipeline"].([]bson.M)
	require.True(t, ok)
	require.NotEmpty(t, inner)
	matchExpr := inner[0]["$match"].(bson.M)["$expr"].(bson.M)
	inExpr := matchExpr["$in"].(bson.A)
	mapExpr := inExpr[1].(bson.M)["$map"].(bson.M)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$$resource_ids", bson.A{}}}, mapExpr["input"])
}

func TestContractorLookupProjectsCompanyName(t *testing.T) {
	stages := ContractorLookup("contractor_id")
	require.Len(t, stages, 4)

	lookup, ok := findStage(stages, "$lookup")
	require.True(t, ok)
	assert.Equal(t, "company", lookup["from"])
	assert.Equal(t, "contractor_details", lookup["as"])

	addFields, ok := stages[2][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t,
		bson.M{"$arrayElemAt": bson.A{"$contractor_details.company_name", 0}},
		addFields["contractor_name"],
	)
}

func TestUserLookupGuardsMissingReference(t *testing.T) {
	stages := UserLookup("responsible_person")
	require.Len(t, stages, 2)

	lookup, ok := findStage(stages, "$lookup")
	require.True(t, ok)
	assert.Equal(t, "users", lookup["from"])

	letDoc, ok := lookup["let"].(bson.M)
	require.True(t, ok)
	// The local field may be absent on the booking.
	assert.Equal(t,
		bson.M{"$ifNull": bson.A{"$responsible_person", nil}},
		letDoc["responsible_person"],
	)

	inner, ok := lookup["pipeline"].([]bson.M)
	require.True(t, ok)
	cond := inner[0]["$match"].(bson.M)["$expr"].(bson.M)["$cond"].(bson.M)
	assert.Equal(t, false, cond["else"])
}
