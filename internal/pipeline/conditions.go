// Package pipeline builds the aggregation stages the bookings service
// runs against the store: per-family match conditions, reference
// lookups, the shipment leg flattening and the unified projections.
package pipeline

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/projsite/bookings-service/internal/model"
)

// ErrMissingRequired is returned when the project id or the date window
// is absent. No query may be issued in that case.
var ErrMissingRequired = errors.New("missing required parameters")

// Filters carries the optional narrowing criteria of a bookings query.
// Zero values mean "not filtered". IsConfirmed defaults to true at the
// transport layer; false selects only explicitly-unconfirmed records.
type Filters struct {
	Zones         []string
	SubProjects   []string
	Contractors   []string
	Resources     []string
	RequestStatus string
	IsConfirmed   bool
}

// MatchConditions builds the match document for one booking family.
//
// The window check is fully-contained, not overlap: a booking matches
// only when its whole range lies inside [start, end]. Truncated
// bookings would otherwise render out of their real extent on the
// calendar.
//
// For shipments the positional conditions (window, zone, sub-project,
// resources) apply per leg via $elemMatch, and small-parcel shipments
// are excluded outright. Contractor and request-status conditions stay
// at the header level for every family.
func MatchConditions(bookingType model.BookingType, projectID string, start, end time.Time, f Filters) (bson.M, error) {
	if projectID == "" || start.IsZero() || end.IsZero() {
		return nil, ErrMissingRequired
	}

	base := bson.M{
		"project_id":      projectID,
		"date_range.from": bson.M{"$gte": start},
		"date_range.to":   bson.M{"$lte": end},
	}
	if len(f.Zones) > 0 {
		base["unloading_zone_id"] = bson.M{"$in": f.Zones}
	}
	if len(f.SubProjects) > 0 {
		base["sub_project_id"] = bson.M{"$in": f.SubProjects}
	}
	if len(f.Resources) > 0 {
		base["resources"] = bson.M{"$in": f.Resources}
	}

	match := base
	if bookingType == model.BookingTypeShipment {
		match = bson.M{
			"shipment_legs":   bson.M{"$elemMatch": base},
			"is_small_parcel": bson.M{"$ne": true},
		}
	}

	if len(f.Contractors) > 0 {
		match["contractor_id"] = bson.M{"$in": f.Contractors}
	}
	if f.RequestStatus != "" {
		match["request_status"] = f.RequestStatus
	}
	match["is_deleted"] = false
	// Records without the flag count as confirmed; isConfirmed=false
	// selects the explicit complement only.
	if f.IsConfirmed {
		match["is_confirmed"] = bson.M{"$ne": false}
	} else {
		match["is_confirmed"] = bson.M{"$eq": false}
	}

	return match, nil
}
