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

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *user.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *user.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)

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

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*user.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		Preload("CompletedRides", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetByEmail retrieves a driver by email. The stored email is already
// lowercased by the domain, so lookups normalize the same way.
func (r *GormDriverRepository) GetByEmail(ctx context.Context, email string) (*user.Driver, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		Preload("CompletedRides", orderByPosition).
		First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", normalized)
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetAllAvailable retrieves every driver currently open to assignment.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*user.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Preload("CompletedRides", orderByPosition).
		Order("full_name").
		Find(&dtos, "is_available = ?", true).Error; err != nil {
		return nil, err
	}

	drivers := make([]*user.Driver, 0, len(dtos))
	for _, dto := range dtos {
		driver, err := driverToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}

// orderByPosition keeps association lists in their original insert order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
