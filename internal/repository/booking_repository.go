package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projsite/bookings-service/internal/model"
)

type BookingRepository struct {
	db *mongo.Database
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

// Aggregate runs a composite pipeline against the given base collection
// and decodes the unified rows.
func (r *BookingRepository) Aggregate(ctx context.Context, collection string, stages mongo.Pipeline) ([]model.BookingRow, error) {
	cursor, err := r.db.Collection(collection).Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.BookingRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID fetches one raw booking record of the given family.
// Soft-deleted records are treated as absent. Returns
// mongo.ErrNoDocuments when nothing matches.
func (r *BookingRepository) FindByID(ctx context.Context, bookingType model.BookingType, id string) (any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidObjectID, id)
	}

	filter := bson.M{"_id": oid, "is_deleted": false}
	result := r.db.Collection(bookingType.Collection()).FindOne(ctx, filter)

	switch bookingType {
	case model.BookingTypeShipment:
		var record model.ShipmentBooking
		if err := result.Decode(&record); err != nil {
			return nil, err
		}
		return &record, nil
	case model.BookingTypeWaste:
		var record model.WasteBooking
		if err := result.Decode(&record); err != nil {
			return nil, err
		}
		return &record, nil
	default:
		var record model.ResourceBooking
		if err := result.Decode(&record); err != nil {
			return nil, err
		}
		return &record, nil
	}
}
