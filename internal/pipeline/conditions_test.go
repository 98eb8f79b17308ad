package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/projsite/bookings-service/internal/model"
)

var (
	windowStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
)

func TestMatchConditionsRequiredParameters(t *testing.T) {
	cases := []struct {
		name      string
		projectID string
		start     time.Time
		end       time.Time
	}{
		{"missing project id", "", windowStart, windowEnd},
		{"missing start", "proj1", time.Time{}, windowEnd},
		{"missing end", "proj1", windowStart, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MatchConditions(model.BookingTypeResource, tc.projectID, tc.start, tc.end, Filters{IsConfirmed: true})
			assert.ErrorIs(t, err, ErrMissingRequired)
			assert.Nil(t, got)
		})
	}
}

func TestMatchConditionsResource(t *testing.T) {
	got, err := MatchConditions(model.BookingTypeResource, "proj1", windowStart, windowEnd, Filters{IsConfirmed: true})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"project_id":      "proj1",
		"date_range.from": bson.M{"$gte": windowStart},
		"date_range.to":   bson.M{"$lte": windowEnd},
		"is_deleted":      false,
		"is_confirmed":    bson.M{"$ne": false},
	}, got)
}

func TestMatchConditionsFilters(t *testing.T) {
	got, err := MatchConditions(model.BookingTypeWaste, "proj1", windowStart, windowEnd, Filters{
		Zones:         []string{"z1", "z2"},
		SubProjects:   []string{"sp1"},
		Resources:     []string{"r1"},
		Contractors:   []string{"c1"},
		RequestStatus: "pending",
		IsConfirmed:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$in": []string{"z1", "z2"}}, got["unloading_zone_id"])
	assert.Equal(t, bson.M{"$in": []string{"sp1"}}, got["sub_project_id"])
	assert.Equal(t, bson.M{"$in": []string{"r1"}}, got["resources"])
	assert.Equal(t, bson.M{"$in": []string{"c1"}}, got["contractor_id"])
	assert.Equal(t, "pending", got["request_status"])
}

func TestMatchConditionsShipment(t *testing.T) {
	got, err := MatchConditions(model.BookingTypeShipment, "proj1", windowStart, windowEnd, Filters{
		Zones:         []string{"z1"},
		Contractors:   []string{"c1"},
		RequestStatus: "approved",
		IsConfirmed:   true,
	})
	require.NoError(t, err)

	// Positional conditions apply per leg; header keeps contractor,
	// request status and the small-parcel exclusion.
	legMatch, ok := got["shipment_legs"].(bson.M)
	require.True(t, ok, "expected $elemMatch over shipment_legs")
	elem, ok := legMatch["$elemMatch"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "proj1", elem["project_id"])
	assert.Equal(t, bson.M{"$gte": windowStart}, elem["date_range.from"])
	assert.Equal(t, bson.M{"$lte": windowEnd}, elem["date_range.to"])
	assert.Equal(t, bson.M{"$in": []string{"z1"}}, elem["unloading_zone_id"])
	assert.NotContains(t, elem, "contractor_id")
	assert.NotContains(t, elem, "request_status")

	assert.Equal(t, bson.M{"$ne": true}, got["is_small_parcel"])
	assert.Equal(t, bson.M{"$in": []string{"c1"}}, got["contractor_id"])
	assert.Equal(t, "approved", got["request_status"])
	assert.Equal(t, false, got["is_deleted"])
}

func TestMatchConditionsConfirmedComplement(t *testing.T) {
	confirmed, err := MatchConditions(model.BookingTypeResource, "proj1", windowStart, windowEnd, Filters{IsConfirmed: true})
	require.NoError(t, err)
	// Records without the flag count as confirmed.
	assert.Equal(t, bson.M{"$ne": false}, confirmed["is_confirmed"])

	unconfirmed, err := MatchConditions(model.BookingTypeResource, "proj1", windowStart, windowEnd, Filters{IsConfirmed: false})
	require.NoError(t, err)
	// The complement is explicit-false only, never "flag absent".
	assert.Equal(t, bson.M{"$eq": false}, unconfirmed["is_confirmed"])
}

func TestMatchConditionsOmitsEmptyFilters(t *testing.T) {
	got, err := MatchConditions(model.BookingTypeResource, "proj1", windowStart, windowEnd, Filters{IsConfirmed: true})
	require.NoError(t, err)

	assert.NotContains(t, got, "unloading_zone_id")
	assert.NotContains(t, got, "sub_project_id")
	assert.NotContains(t, got, "resources")
	assert.NotContains(t, got, "contractor_id")
	assert.NotContains(t, got, "request_status")
}
