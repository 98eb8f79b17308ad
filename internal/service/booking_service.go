package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projsite/bookings-service/internal/metrics"
	"github.com/projsite/bookings-service/internal/model"
	"github.com/projsite/bookings-service/internal/pipeline"
	"github.com/projsite/bookings-service/internal/repository"
)

// Display defaults applied when project settings leave a color unset.
const (
	defaultWasteBookingColor    = "#8CE542"
	defaultResourceBookingColor = "#428AE5"
)

type ProjectStore interface {
	FindByID(ctx context.Context, id string) (*model.Project, error)
}

type BookingStore interface {
	Aggregate(ctx context.Context, collection string, stages mongo.Pipeline) ([]model.BookingRow, error)
	FindByID(ctx context.Context, bookingType model.BookingType, id string) (any, error)
}

type ExcelGenerator interface {
	Generate(rows []model.BookingRow) ([]byte, error)
}

type BookingService struct {
	projects ProjectStore
	bookings BookingStore
	excel    ExcelGenerator
	log      zerolog.Logger
}

func NewBookingService(projects ProjectStore, bookings BookingStore, excel ExcelGenerator, log zerolog.Logger) *BookingService {
	return &BookingService{
		projects: projects,
		bookings: bookings,
		excel:    excel,
		log:      log,
	}
}

type GetBookingsInput struct {
	ProjectID     string
	StartDate     time.Time
	EndDate       time.Time
	Zones         []string
	SubProjects   []string
	Contractors   []string
	Resources     []string
	RequestStatus string
	IsConfirmed   bool
	// BookingType restricts the query to one family when set.
	BookingType string
}

type ExportResult struct {
	FileName string
	Content  []byte
}

type familyPipeline struct {
	bookingType model.BookingType
	collection  string
	stages      mongo.Pipeline
}

// GetBookings runs the composite bookings query: it loads the project,
// gates the families on its settings, builds one pipeline per enabled
// family and executes them as a single unioned aggregation. An empty
// result is a success; only structural problems and upstream failures
// are errors.
func (s *BookingService) GetBookings(ctx context.Context, in GetBookingsInput) ([]model.BookingRow, error) {
	if in.ProjectID == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: missing required parameters", ErrInvalidRequest)
	}
	if in.BookingType != "" && !model.BookingType(in.BookingType).Valid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidRequest, in.BookingType)
	}

	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidObjectID):
			return nil, fmt.Errorf("%w: invalid project id", ErrInvalidRequest)
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, fmt.Errorf("%w: project not found", ErrNotFound)
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	pipelines, err := s.buildFamilyPipelines(project, in)
	if err != nil {
		return nil, err
	}
	if len(pipelines) == 0 {
		return []model.BookingRow{}, nil
	}

	composite := append(mongo.Pipeline{}, pipelines[0].stages...)
	for _, fp := range pipelines[1:] {
		composite = append(composite, pipeline.UnionWith(fp.collection, fp.stages))
	}
	composite = append(composite, pipeline.SortStage())

	started := time.Now()
	rows, err := s.bookings.Aggregate(ctx, pipelines[0].collection, composite)
	if err != nil {
		return nil, fmt.Errorf("bookings query: %w", err)
	}
	metrics.ObserveQuery(time.Since(started))
	for _, fp := range pipelines {
		metrics.IncFamilyQueried(string(fp.bookingType))
	}

	if rows == nil {
		rows = []model.BookingRow{}
	}
	s.log.Debug().
		Str("project_id", in.ProjectID).
		Int("families", len(pipelines)).
		Int("rows", len(rows)).
		Msg("bookings query completed")
	return rows, nil
}

// buildFamilyPipelines assembles the per-family pipelines for every
// enabled family. Module flags take precedence over an explicit
// bookingType request; the resource family is always enabled.
func (s *BookingService) buildFamilyPipelines(project *model.Project, in GetBookingsInput) ([]familyPipeline, error) {
	filters := pipeline.Filters{
		Zones:         in.Zones,
		SubProjects:   in.SubProjects,
		Contractors:   in.Contractors,
		Resources:     in.Resources,
		RequestStatus: in.RequestStatus,
		IsConfirmed:   in.IsConfirmed,
	}
	requested := func(t model.BookingType) bool {
		return in.BookingType == "" || in.BookingType == string(t)
	}

	wasteColor := project.Settings.WasteBookingColor
	if wasteColor == "" {
		wasteColor = defaultWasteBookingColor
	}
	resourceColor := project.Settings.ResourceBookingColor
	if resourceColor == "" {
		resourceColor = defaultResourceBookingColor
	}

	var pipelines []familyPipeline

	if project.Settings.ShipmentEnabled() && requested(model.BookingTypeShipment) {
		match, err := pipeline.MatchConditions(model.BookingTypeShipment, in.ProjectID, in.StartDate, in.EndDate, filters)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		pipelines = append(pipelines, familyPipeline{
			bookingType: model.BookingTypeShipment,
			collection:  model.BookingTypeShipment.Collection(),
			stages:      pipeline.Shipment(in.ProjectID, match),
		})
	}

	if project.Settings.WasteEnabled() && requested(model.BookingTypeWaste) {
		match, err := pipeline.MatchConditions(model.BookingTypeWaste, in.ProjectID, in.StartDate, in.EndDate, filters)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		pipelines = append(pipelines, familyPipeline{
			bookingType: model.BookingTypeWaste,
			collection:  model.BookingTypeWaste.Collection(),
			stages:      pipeline.NonShipment(model.BookingTypeWaste, match, wasteColor),
		})
	}

	if requested(model.BookingTypeResource) {
		match, err := pipeline.MatchConditions(model.BookingTypeResource, in.ProjectID, in.StartDate, in.EndDate, filters)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		pipelines = append(pipelines, familyPipeline{
			bookingType: model.BookingTypeResource,
			collection:  model.BookingTypeResource.Collection(),
			stages:      pipeline.NonShipment(model.BookingTypeResource, match, resourceColor),
		})
	}

	return pipelines, nil
}

// GetBookingByID fetches one raw booking record. The family name is
// validated against the closed set before any query: an unknown family
// is a bad request, not a miss.
func (s *BookingService) GetBookingByID(ctx context.Context, bookingType, id string) (any, error) {
	t := model.BookingType(bookingType)
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidRequest, bookingType)
	}

	record, err := s.bookings.FindByID(ctx, t, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidObjectID):
			return nil, fmt.Errorf("%w: invalid booking id", ErrInvalidRequest)
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	return record, nil
}

// ExportBookings runs the same composite query and renders the rows to
// a spreadsheet.
func (s *BookingService) ExportBookings(ctx context.Context, in GetBookingsInput) (*ExportResult, error) {
	rows, err := s.GetBookings(ctx, in)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(rows)
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	metrics.IncExport()

	fileName := fmt.Sprintf("bookings-%s-%s-%s.xlsx",
		in.ProjectID,
		in.StartDate.Format("20060102"),
		in.EndDate.Format("20060102"),
	)
	return &ExportResult{FileName: fileName, Content: content}, nil
}
