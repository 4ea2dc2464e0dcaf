package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/yungbote/tripwise-backend/internal/checklist"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/repos"
  "github.com/yungbote/tripwise-backend/internal/requestdata"
  "github.com/yungbote/tripwise-backend/internal/types"
)

type TripService interface {
  CreateTrip(ctx context.Context, destination, purpose, dateRange string) (*types.Trip, error)
  GetUserTrips(ctx context.Context) ([]*types.Trip, error)
  GetTripByID(ctx context.Context, tripID uuid.UUID) (*types.Trip, error)
  ReplaceChecklist(ctx context.Context, tripID uuid.UUID, sections []types.ChecklistSection) error
  ToggleChecklistItem(ctx context.Context, tripID uuid.UUID, sectionIdx, itemIdx int) ([]types.ChecklistSection, error)
  DeleteTrip(ctx context.Context, tripID uuid.UUID) error
}

type tripService struct {
  db        *gorm.DB
  log       *logger.Logger
  tripRepo  repos.TripRepo
}

func NewTripService(db *gorm.DB, baseLog *logger.Logger, tripRepo repos.TripRepo) TripService {
  serviceLog := baseLog.With("service", "TripService")
  return &tripService{db: db, log: serviceLog, tripRepo: tripRepo}
}

// CreateTrip stores a trip owned by the calling user with an empty
// checklist. The owner is never reassigned afterwards.
func (ts *tripService) CreateTrip(ctx context.Context, destination, purpose, dateRange string) (*types.Trip, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("No request data found in context")
  }
  if destination == "" {
    return nil, fmt.Errorf("A destination is required to create a trip")
  }

  emptyChecklist, err := json.Marshal([]types.ChecklistSection{})
  if err != nil {
    return nil, fmt.Errorf("Failed to encode empty checklist: %w", err)
  }

  now := time.Now()
  trip := &types.Trip{
    ID:          uuid.New(),
    UserID:      rd.UserID,
    Destination: destination,
    Purpose:     purpose,
    DateRange:   dateRange,
    Checklist:   datatypes.JSON(emptyChecklist),
    CreatedAt:   now,
    UpdatedAt:   now,
  }
  if _, err := ts.tripRepo.Create(ctx, nil, []*types.Trip{trip}); err != nil {
    ts.log.Error("CreateTrip failed", "error", err, "user_id", rd.UserID)
    return nil, fmt.Errorf("Failed to create trip: %w", err)
  }
  return trip, nil
}

func (ts *tripService) GetUserTrips(ctx context.Context) ([]*types.Trip, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("No request data found in context")
  }
  trips, err := ts.tripRepo.GetByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load trips: %w", err)
  }
  return trips, nil
}

func (ts *tripService) GetTripByID(ctx context.Context, tripID uuid.UUID) (*types.Trip, error) {
  return ts.ownedTrip(ctx, nil, tripID)
}

// ReplaceChecklist swaps the trip's checklist wholesale; generation never
// merges into prior state.
func (ts *tripService) ReplaceChecklist(ctx context.Context, tripID uuid.UUID, sections []types.ChecklistSection) error {
  if _, err := ts.ownedTrip(ctx, nil, tripID); err != nil {
    return err
  }
  if sections == nil {
    sections = []types.ChecklistSection{}
  }
  raw, err := json.Marshal(sections)
  if err != nil {
    return fmt.Errorf("Failed to encode checklist: %w", err)
  }
  if err := ts.tripRepo.UpdateChecklist(ctx, nil, tripID, datatypes.JSON(raw)); err != nil {
    ts.log.Error("ReplaceChecklist failed", "error", err, "trip_id", tripID)
    return fmt.Errorf("Failed to update checklist: %w", err)
  }
  return nil
}

// ToggleChecklistItem flips one item's checked flag and persists the
// resulting checklist. The stored document is decoded, updated through an
// immutable copy, and written back whole.
func (ts *tripService) ToggleChecklistItem(ctx context.Context, tripID uuid.UUID, sectionIdx, itemIdx int) ([]types.ChecklistSection, error) {
  var updated []types.ChecklistSection
  err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    trip, err := ts.ownedTrip(ctx, tx, tripID)
    if err != nil {
      return err
    }
    var sections []types.ChecklistSection
    if len(trip.Checklist) > 0 {
      if err := json.Unmarshal(trip.Checklist, &sections); err != nil {
        return fmt.Errorf("Failed to decode stored checklist: %w", err)
      }
    }
    toggled, err := checklist.ToggleItem(sections, sectionIdx, itemIdx)
    if err != nil {
      return err
    }
    raw, err := json.Marshal(toggled)
    if err != nil {
      return fmt.Errorf("Failed to encode checklist: %w", err)
    }
    if err := ts.tripRepo.UpdateChecklist(ctx, tx, tripID, datatypes.JSON(raw)); err != nil {
      return fmt.Errorf("Failed to update checklist: %w", err)
    }
    updated = toggled
    return nil
  })
  if err != nil {
    return nil, err
  }
  return updated, nil
}

func (ts *tripService) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
  if _, err := ts.ownedTrip(ctx, nil, tripID); err != nil {
    return err
  }
  if err := ts.tripRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{tripID}); err != nil {
    ts.log.Error("DeleteTrip failed", "error", err, "trip_id", tripID)
    return fmt.Errorf("Failed to delete trip: %w", err)
  }
  return nil
}

// ownedTrip loads a trip and verifies it belongs to the calling user.
func (ts *tripService) ownedTrip(ctx context.Context, tx *gorm.DB, tripID uuid.UUID) (*types.Trip, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("No request data found in context")
  }
  trips, err := ts.tripRepo.GetByIDs(ctx, tx, []uuid.UUID{tripID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load trip: %w", err)
  }
  if len(trips) == 0 || trips[0] == nil || trips[0].UserID != rd.UserID {
    return nil, fmt.Errorf("Trip not found or not owned by user")
  }
  return trips[0], nil
}
