package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projsite/bookings-service/internal/model"
)

// ErrInvalidObjectID marks an id that is not a valid object id hex
// string. Callers treat it as a bad request, not a miss.
var ErrInvalidObjectID = errors.New("invalid object id")

const collProjects = "projects"

type ProjectRepository struct {
	db *mongo.Database
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID loads one project. Soft-deleted projects are treated as
// absent. Returns mongo.ErrNoDocuments when nothing matches.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidObjectID, id)
	}

	var project model.Project
	err = r.db.Collection(collProjects).FindOne(ctx, bson.M{
		"_id":    oid,
		"status": bson.M{"$ne": "deleted"},
	}).Decode(&project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}
