// Package http exposes the ride hailing use cases over a REST API built on echo.
// It coordinates between HTTP handlers and application use cases, translating
// request payloads into commands and queries and domain errors into status codes.
package http

import (
	"errors"
	"net/http"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/ride"
	"ridehail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers carries every command and query handler the server routes to.
type Handlers struct {
	CreatePassenger          commands.CreatePassengerCommandHandler
	CreateDriver             commands.CreateDriverCommandHandler
	CreateRide               commands.CreateRideCommandHandler
	AcceptRide               commands.AcceptRideCommandHandler
	RejectRide               commands.RejectRideCommandHandler
	MarkDriverArriving       commands.MarkDriverArrivingCommandHandler
	StartRide                commands.StartRideCommandHandler
	CompleteRide             commands.CompleteRideCommandHandler
	CancelRide               commands.CancelRideCommandHandler
	UpdateDriverAvailability commands.UpdateDriverAvailabilityCommandHandler
	CreateReview             commands.CreateReviewCommandHandler

	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
	GetAvailableRides   queries.GetAvailableRidesQueryHandler
	GetRideByID         queries.GetRideByIDQueryHandler
	GetPassengerRides   queries.GetPassengerRidesQueryHandler
	GetDriverReviews    queries.GetDriverReviewsQueryHandler
	GetUserByID         queries.GetUserByIDQueryHandler
}

// Server implements the HTTP transport for the ride hailing service.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/passengers", s.CreatePassenger)
	api.GET("/passengers/:passenger_id/rides", s.GetPassengerRides)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.PATCH("/drivers/:driver_id/availability", s.UpdateDriverAvailability)
	api.GET("/drivers/:driver_id/reviews", s.GetDriverReviews)

	api.POST("/rides", s.CreateRide)
	api.GET("/rides/available", s.GetAvailableRides)
	api.GET("/rides/:ride_id", s.GetRideByID)
	api.POST("/rides/:ride_id/accept", s.AcceptRide)
	api.POST("/rides/:ride_id/reject", s.RejectRide)
	api.POST("/rides/:ride_id/arriving", s.MarkDriverArriving)
	api.POST("/rides/:ride_id/start", s.StartRide)
	api.POST("/rides/:ride_id/complete", s.CompleteRide)
	api.POST("/rides/:ride_id/cancel", s.CancelRide)

	api.POST("/reviews", s.CreateReview)

	api.GET("/users/:user_id", s.GetUserByID)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreatePassenger handles POST /api/v1/passengers.
func (s *Server) CreatePassenger(ctx echo.Context) error {
	var req createPassengerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	passengerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePassengerCommand(
		passengerID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.PreferredPaymentMethod,
	)
	if err != nil {
		return badRequest(ctx, "Invalid passenger data: "+err.Error())
	}

	if err := s.handlers.CreatePassenger.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: passengerID.String()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.LicenseNumber,
		req.VehicleModel,
		req.VehiclePlateNumber,
	)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: driverID.String()})
}

// CreateRide handles POST /api/v1/rides.
func (s *Server) CreateRide(ctx echo.Context) error {
	var req createRideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	passengerID, err := kernel.UUIDFromString(req.PassengerID)
	if err != nil {
		return badRequest(ctx, "Invalid passenger ID")
	}

	pickup, err := toAddress(req.Pickup)
	if err != nil {
		return badRequest(ctx, "Invalid pickup address: "+err.Error())
	}

	destination, err := toAddress(req.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination address: "+err.Error())
	}

	rideID := kernel.NewUUID()
	cmd, err := commands.NewCreateRideCommand(rideID, passengerID, pickup, destination)
	if err != nil {
		return badRequest(ctx, "Invalid ride data: "+err.Error())
	}

	if err := s.handlers.CreateRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: rideID.String()})
}

// AcceptRide handles POST /api/v1/rides/:ride_id/accept.
func (s *Server) AcceptRide(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	var req acceptRideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewAcceptRideCommand(rideID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.AcceptRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectRide handles POST /api/v1/rides/:ride_id/reject.
func (s *Server) RejectRide(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	var req rejectRideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewRejectRideCommand(rideID, driverID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.RejectRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDriverArriving handles POST /api/v1/rides/:ride_id/arriving.
func (s *Server) MarkDriverArriving(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	cmd, err := commands.NewMarkDriverArrivingCommand(rideID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.MarkDriverArriving.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRide handles POST /api/v1/rides/:ride_id/start.
func (s *Server) StartRide(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	cmd, err := commands.NewStartRideCommand(rideID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.StartRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRide handles POST /api/v1/rides/:ride_id/complete.
func (s *Server) CompleteRide(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	var req completeRideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteRideCommand(rideID, req.Surge)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CompleteRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRide handles POST /api/v1/rides/:ride_id/cancel.
func (s *Server) CancelRide(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	var req cancelRideRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cancelledBy, err := kernel.UUIDFromString(req.CancelledBy)
	if err != nil {
		return badRequest(ctx, "Invalid canceller ID")
	}

	cmd, err := commands.NewCancelRideCommand(rideID, cancelledBy, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CancelRide.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverAvailability handles PATCH /api/v1/drivers/:driver_id/availability.
func (s *Server) UpdateDriverAvailability(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "driver_id")
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	var req updateAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(driverID, req.IsAvailable)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.UpdateDriverAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReview handles POST /api/v1/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	var req createReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rideID, err := kernel.UUIDFromString(req.RideID)
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	passengerID, err := kernel.UUIDFromString(req.PassengerID)
	if err != nil {
		return badRequest(ctx, "Invalid passenger ID")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, rideID, passengerID, req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if err := s.handlers.CreateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: reviewID.String()})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAvailableDrivers.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableDriversQuery(),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]driverResponse, len(drivers))
	for i, driver := range drivers {
		response[i] = driverResponse{
			ID:                 driver.ID.String(),
			FullName:           driver.FullName,
			VehicleModel:       driver.VehicleModel,
			VehiclePlateNumber: driver.VehiclePlateNumber,
			Rating:             driver.RatingValue,
			TotalReviews:       driver.RatingTotalReviews,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableRides handles GET /api/v1/rides/available.
func (s *Server) GetAvailableRides(ctx echo.Context) error {
	rides, err := s.handlers.GetAvailableRides.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableRidesQuery(),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]availableRideResponse, len(rides))
	for i, r := range rides {
		response[i] = availableRideResponse{
			ID:                   r.ID.String(),
			PassengerID:          r.PassengerID.String(),
			PickupStreet:         r.PickupStreet,
			PickupLatitude:       r.PickupLatitude,
			PickupLongitude:      r.PickupLongitude,
			DestinationStreet:    r.DestinationStreet,
			DestinationLatitude:  r.DestinationLatitude,
			DestinationLongitude: r.DestinationLongitude,
			EstimatedFare:        r.EstimatedFare,
			FareCurrency:         r.FareCurrency,
			CreatedAt:            r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserByID handles GET /api/v1/users/:user_id.
func (s *Server) GetUserByID(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	profile, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		ID:                     profile.ID.String(),
		Role:                   profile.Role,
		FullName:               profile.FullName,
		Email:                  profile.Email,
		PhoneNumber:            profile.PhoneNumber,
		Rating:                 profile.RatingValue,
		TotalReviews:           profile.RatingTotalReviews,
		CreatedAt:              profile.CreatedAt,
		LastLoginAt:            profile.LastLoginAt,
		LicenseNumber:          profile.LicenseNumber,
		VehicleModel:           profile.VehicleModel,
		VehiclePlateNumber:     profile.VehiclePlateNumber,
		IsAvailable:            profile.IsAvailable,
		PreferredPaymentMethod: profile.PreferredPaymentMethod,
	})
}

// GetRideByID handles GET /api/v1/rides/:ride_id.
func (s *Server) GetRideByID(ctx echo.Context) error {
	rideID, err := pathUUID(ctx, "ride_id")
	if err != nil {
		return badRequest(ctx, "Invalid ride ID")
	}

	query, err := queries.NewGetRideByIDQuery(rideID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.handlers.GetRideByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := rideResponse{
		ID:                 detail.ID.String(),
		PassengerID:        detail.PassengerID.String(),
		Pickup:             toAddressResponse(detail.Pickup),
		Destination:        toAddressResponse(detail.Destination),
		Status:             detail.Status,
		EstimatedFare:      detail.EstimatedFare,
		FinalFare:          detail.FinalFare,
		FareCurrency:       detail.FareCurrency,
		CreatedAt:          detail.CreatedAt,
		AcceptedAt:         detail.AcceptedAt,
		StartedAt:          detail.StartedAt,
		CompletedAt:        detail.CompletedAt,
		CancelledAt:        detail.CancelledAt,
		CancellationReason: detail.CancellationReason,
	}
	if detail.DriverID != nil {
		id := detail.DriverID.String()
		response.DriverID = &id
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPassengerRides handles GET /api/v1/passengers/:passenger_id/rides.
func (s *Server) GetPassengerRides(ctx echo.Context) error {
	passengerID, err := pathUUID(ctx, "passenger_id")
	if err != nil {
		return badRequest(ctx, "Invalid passenger ID")
	}

	query, err := queries.NewGetPassengerRidesQuery(passengerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rides, err := s.handlers.GetPassengerRides.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]rideSummaryResponse, len(rides))
	for i, r := range rides {
		response[i] = rideSummaryResponse{
			ID:                r.ID.String(),
			PickupStreet:      r.PickupStreet,
			DestinationStreet: r.DestinationStreet,
			Status:            r.Status,
			EstimatedFare:     r.EstimatedFare,
			FinalFare:         r.FinalFare,
			FareCurrency:      r.FareCurrency,
			CreatedAt:         r.CreatedAt,
		}
		if r.DriverID != nil {
			id := r.DriverID.String()
			response[i].DriverID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverReviews handles GET /api/v1/drivers/:driver_id/reviews.
func (s *Server) GetDriverReviews(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "driver_id")
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	query, err := queries.NewGetDriverReviewsQuery(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reviews, err := s.handlers.GetDriverReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = reviewResponse{
			ID:          r.ID.String(),
			RideID:      r.RideID.String(),
			PassengerID: r.PassengerID.String(),
			Rating:      r.RatingValue,
			Comment:     r.Comment,
			CreatedAt:   r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// toAddress converts an address request into the domain value object.
func toAddress(req addressRequest) (kernel.Address, error) {
	location, err := kernel.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(req.Street, req.City, req.PostalCode, location)
}

// toAddressResponse converts a read model address into its JSON form.
func toAddressResponse(address queries.RideAddressResponse) addressResponse {
	return addressResponse{
		Street:     address.Street,
		City:       address.City,
		PostalCode: address.PostalCode,
		Latitude:   address.Latitude,
		Longitude:  address.Longitude,
	}
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrReviewerIsNotRidePassenger):
		return ctx.JSON(http.StatusForbidden, errorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrRideAlreadyReviewed),
		errors.Is(err, commands.ErrDriverAlreadyReviewed),
		errors.Is(err, commands.ErrRideNotCompleted),
		errors.Is(err, commands.ErrRideHasNotStarted),
		errors.Is(err, ride.ErrDriverNotAvailable),
		errors.Is(err, ride.ErrCancelRideInProgress),
		errors.Is(err, ride.ErrCancelFinalizedRide),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
