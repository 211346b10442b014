package http

import "time"

// Request bodies accepted by the HTTP API.

type addressRequest struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type createPassengerRequest struct {
	FullName               string `json:"full_name"`
	Email                  string `json:"email"`
	PhoneNumber            string `json:"phone_number"`
	PreferredPaymentMethod string `json:"preferred_payment_method"`
}

type createDriverRequest struct {
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phone_number"`
	LicenseNumber      string `json:"license_number"`
	VehicleModel       string `json:"vehicle_model"`
	VehiclePlateNumber string `json:"vehicle_plate_number"`
}

type createRideRequest struct {
	PassengerID string         `json:"passenger_id"`
	Pickup      addressRequest `json:"pickup"`
	Destination addressRequest `json:"destination"`
}

type acceptRideRequest struct {
	DriverID string `json:"driver_id"`
}

type rejectRideRequest struct {
	DriverID string `json:"driver_id"`
	Reason   string `json:"reason"`
}

type completeRideRequest struct {
	Surge bool `json:"surge"`
}

type cancelRideRequest struct {
	CancelledBy string `json:"cancelled_by"`
	Reason      string `json:"reason"`
}

type updateAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

type createReviewRequest struct {
	RideID      string  `json:"ride_id"`
	PassengerID string  `json:"passenger_id"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
}

// Response bodies returned by the HTTP API.

type createdResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addressResponse struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type rideResponse struct {
	ID                 string          `json:"id"`
	PassengerID        string          `json:"passenger_id"`
	DriverID           *string         `json:"driver_id,omitempty"`
	Pickup             addressResponse `json:"pickup"`
	Destination        addressResponse `json:"destination"`
	Status             string          `json:"status"`
	EstimatedFare      float64         `json:"estimated_fare"`
	FinalFare          *float64        `json:"final_fare,omitempty"`
	FareCurrency       string          `json:"fare_currency"`
	CreatedAt          time.Time       `json:"created_at"`
	AcceptedAt         *time.Time      `json:"accepted_at,omitempty"`
	StartedAt          *time.Time      `json:"started_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
}

type rideSummaryResponse struct {
	ID                string    `json:"id"`
	DriverID          *string   `json:"driver_id,omitempty"`
	PickupStreet      string    `json:"pickup_street"`
	DestinationStreet string    `json:"destination_street"`
	Status            string    `json:"status"`
	EstimatedFare     float64   `json:"estimated_fare"`
	FinalFare         *float64  `json:"final_fare,omitempty"`
	FareCurrency      string    `json:"fare_currency"`
	CreatedAt         time.Time `json:"created_at"`
}

type availableRideResponse struct {
	ID                   string    `json:"id"`
	PassengerID          string    `json:"passenger_id"`
	PickupStreet         string    `json:"pickup_street"`
	PickupLatitude       float64   `json:"pickup_latitude"`
	PickupLongitude      float64   `json:"pickup_longitude"`
	DestinationStreet    string    `json:"destination_street"`
	DestinationLatitude  float64   `json:"destination_latitude"`
	DestinationLongitude float64   `json:"destination_longitude"`
	EstimatedFare        float64   `json:"estimated_fare"`
	FareCurrency         string    `json:"fare_currency"`
	CreatedAt            time.Time `json:"created_at"`
}

type userResponse struct {
	ID                     string     `json:"id"`
	Role                   string     `json:"role"`
	FullName               string     `json:"full_name"`
	Email                  string     `json:"email"`
	PhoneNumber            string     `json:"phone_number"`
	Rating                 *float64   `json:"rating,omitempty"`
	TotalReviews           *int       `json:"total_reviews,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"`
	LicenseNumber          *string    `json:"license_number,omitempty"`
	VehicleModel           *string    `json:"vehicle_model,omitempty"`
	VehiclePlateNumber     *string    `json:"vehicle_plate_number,omitempty"`
	IsAvailable            *bool      `json:"is_available,omitempty"`
	PreferredPaymentMethod *string    `json:"preferred_payment_method,omitempty"`
}

type driverResponse struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	VehicleModel       string   `json:"vehicle_model"`
	VehiclePlateNumber string   `json:"vehicle_plate_number"`
	Rating             *float64 `json:"rating,omitempty"`
	TotalReviews       *int     `json:"total_reviews,omitempty"`
}

type reviewResponse struct {
	ID          string    `json:"id"`
	RideID      string    `json:"ride_id"`
	PassengerID string    `json:"passenger_id"`
	Rating      float64   `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
