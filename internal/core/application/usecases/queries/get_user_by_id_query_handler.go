package queries

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserByIDQueryHandler retrieves a user profile from the database.
// Drivers and passengers live in separate tables, so the handler probes the
// drivers table first and falls back to passengers.
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for user profile queries.
// Requires a GORM database connection for query execution.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve a user profile by identifier.
// Returns errs.ErrObjectNotFound when neither table has the user.
func (h GetUserByIDQueryHandler) Handle(
	ctx context.Context,
	query GetUserByIDQuery,
) (GetUserByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	response, err := h.findDriver(ctx, query.UserID())
	if err == nil {
		return response, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return GetUserByIDQueryResponse{}, err
	}

	response, err = h.findPassenger(ctx, query.UserID())
	if err == nil {
		return response, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserByIDQueryResponse{},
			errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	return GetUserByIDQueryResponse{}, err
}

func (h GetUserByIDQueryHandler) findDriver(
	ctx context.Context,
	userID kernel.UUID,
) (GetUserByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			phone_number,
			license_number,
			vehicle_model,
			vehicle_plate_number,
			is_available,
			rating_value,
			rating_total_reviews,
			created_at,
			last_login_at
		FROM drivers
		WHERE id = ?
	`, userID.Bytes()).Row()

	var response GetUserByIDQueryResponse
	var id uuid.UUID
	var licenseNumber, vehicleModel, vehiclePlateNumber string
	var isAvailable bool
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&id,
		&response.FullName,
		&response.Email,
		&response.PhoneNumber,
		&licenseNumber,
		&vehicleModel,
		&vehiclePlateNumber,
		&isAvailable,
		&response.RatingValue,
		&response.RatingTotalReviews,
		&response.CreatedAt,
		&lastLoginAt,
	)
	if err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	response.ID = driverID
	response.Role = user.RoleDriver.String()
	response.LicenseNumber = &licenseNumber
	response.VehicleModel = &vehicleModel
	response.VehiclePlateNumber = &vehiclePlateNumber
	response.IsAvailable = &isAvailable
	if lastLoginAt.Valid {
		response.LastLoginAt = &lastLoginAt.Time
	}

	return response, nil
}

func (h GetUserByIDQueryHandler) findPassenger(
	ctx context.Context,
	userID kernel.UUID,
) (GetUserByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			phone_number,
			preferred_payment_method,
			rating_value,
			rating_total_reviews,
			created_at,
			last_login_at
		FROM passengers
		WHERE id = ?
	`, userID.Bytes()).Row()

	var response GetUserByIDQueryResponse
	var id uuid.UUID
	var preferredPaymentMethod string
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&id,
		&response.FullName,
		&response.Email,
		&response.PhoneNumber,
		&preferredPaymentMethod,
		&response.RatingValue,
		&response.RatingTotalReviews,
		&response.CreatedAt,
		&lastLoginAt,
	)
	if err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	passengerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserByIDQueryResponse{}, err
	}

	response.ID = passengerID
	response.Role = user.RolePassenger.String()
	response.PreferredPaymentMethod = &preferredPaymentMethod
	if lastLoginAt.Valid {
		response.LastLoginAt = &lastLoginAt.Time
	}

	return response, nil
}
