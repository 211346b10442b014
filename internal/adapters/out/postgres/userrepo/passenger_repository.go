package userrepo

import (
	"context"
	"errors"
	"strings"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPassengerRepository implements PassengerRepository using GORM.
type GormPassengerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPassengerRepository creates a new GORM passenger repository.
func NewGormPassengerRepository(db *gorm.DB, tracker aggregateTracker) *GormPassengerRepository {
	return &GormPassengerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new passenger to the database.
func (r *GormPassengerRepository) Add(ctx context.Context, aggregate *user.Passenger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := passengerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing passenger to the database.
func (r *GormPassengerRepository) Update(ctx context.Context, aggregate *user.Passenger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := passengerFromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a passenger by ID.
func (r *GormPassengerRepository) Get(ctx context.Context, id kernel.UUID) (*user.Passenger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PassengerDTO
	if err := r.db.WithContext(ctx).
		Preload("RideHistory", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("passenger", id.String())
		}
		return nil, err
	}

	return passengerToDomain(dto)
}

// GetByEmail retrieves a passenger by email. The stored email is already
// lowercased by the domain, so lookups normalize the same way.
func (r *GormPassengerRepository) GetByEmail(ctx context.Context, email string) (*user.Passenger, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var dto PassengerDTO
	if err := r.db.WithContext(ctx).
		Preload("RideHistory", orderByPosition).
		First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("passenger", normalized)
		}
		return nil, err
	}

	return passengerToDomain(dto)
}
