package queries

import (
	"context"

	"ridehail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler retrieves available driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableDriversQueryHandler(db)
//	query := NewGetAvailableDriversQuery()
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get drivers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d available drivers\n", len(drivers))
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all available drivers.
// Returns a slice of driver read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			vehicle_model,
			vehicle_plate_number,
			rating_value,
			rating_total_reviews
		FROM drivers
		WHERE is_available = TRUE
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driver GetAvailableDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&driver.FullName,
			&driver.VehicleModel,
			&driver.VehiclePlateNumber,
			&driver.RatingValue,
			&driver.RatingTotalReviews,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		driver.ID = driverID
		drivers = append(drivers, driver)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
