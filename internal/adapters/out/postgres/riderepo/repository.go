package riderepo

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRideRepository implements RideRepository using GORM.
type GormRideRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRideRepository creates a new GORM ride repository.
func NewGormRideRepository(db *gorm.DB, tracker aggregateTracker) *GormRideRepository {
	return &GormRideRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ride order to the database.
func (r *GormRideRepository) Add(ctx context.Context, aggregate *ride.RideOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ride order to the database using optimistic
// concurrency. The row is only updated when its stored version still matches
// the version the aggregate was loaded with; a zero row count means another
// transaction got there first and the caller receives a concurrency conflict.
func (r *GormRideRepository) Update(ctx context.Context, aggregate *ride.RideOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&RideDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("ride", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ride order by ID.
func (r *GormRideRepository) Get(ctx context.Context, id kernel.UUID) (*ride.RideOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RideDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ride", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInCreatedStatus retrieves all rides still waiting for a driver,
// oldest first so long-waiting requests surface before fresh ones.
func (r *GormRideRepository) GetAllInCreatedStatus(ctx context.Context) ([]*ride.RideOrder, error) {
	var dtos []RideDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", int(ride.StatusCreated)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActiveByDriver retrieves the driver's rides in Accepted, DriverArriving,
// or InProgress status.
func (r *GormRideRepository) GetAllActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*ride.RideOrder, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []int{
		int(ride.StatusAccepted),
		int(ride.StatusDriverArriving),
		int(ride.StatusInProgress),
	}

	var dtos []RideDTO
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), activeStatuses).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []RideDTO) ([]*ride.RideOrder, error) {
	rides := make([]*ride.RideOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rides = append(rides, order)
	}

	return rides, nil
}
