package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/types"
)

type TripRepo interface {
  Create(ctx context.Context, tx *gorm.DB, trips []*types.Trip) ([]*types.Trip, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, tripIDs []uuid.UUID) ([]*types.Trip, error)
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Trip, error)
  UpdateChecklist(ctx context.Context, tx *gorm.DB, tripID uuid.UUID, checklist datatypes.JSON) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, tripIDs []uuid.UUID) error
}

type tripRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTripRepo(db *gorm.DB, baseLog *logger.Logger) TripRepo {
  repoLog := baseLog.With("repo", "TripRepo")
  return &tripRepo{db: db, log: repoLog}
}

func (tr *tripRepo) Create(ctx context.Context, tx *gorm.DB, trips []*types.Trip) ([]*types.Trip, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(trips) == 0 {
    return []*types.Trip{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&trips).Error; err != nil {
    return nil, err
  }

  return trips, nil
}

func (tr *tripRepo) GetByIDs(ctx context.Context, tx *gorm.DB, tripIDs []uuid.UUID) ([]*types.Trip, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Trip

  if len(tripIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", tripIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }

  return results, nil
}

func (tr *tripRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Trip, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Trip

  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }

  return results, nil
}

// UpdateChecklist replaces the embedded checklist document wholesale.
func (tr *tripRepo) UpdateChecklist(ctx context.Context, tx *gorm.DB, tripID uuid.UUID, checklist datatypes.JSON) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Trip{}).
    Where("id = ?", tripID).
    Update("checklist", checklist).Error; err != nil {
    return err
  }

  return nil
}

func (tr *tripRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, tripIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(tripIDs) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Unscoped().
    Where("id IN (?)", tripIDs).
    Delete(&types.Trip{}).Error; err != nil {
    return err
  }

  return nil
}
