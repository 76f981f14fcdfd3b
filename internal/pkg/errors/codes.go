package errors

import "net/http"

var (
	ErrPropertyNotFound = New(
		"PROPERTY_NOT_FOUND",
		"Property not found",
		http.StatusNotFound,
	)

	ErrDuplicateProperty = New(
		"DUPLICATE_PROPERTY",
		"Property with this ID already exists",
		http.StatusConflict,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"Deletion must be confirmed with confirm=true",
		http.StatusPreconditionRequired,
	)

	ErrMapNotReady = New(
		"MAP_NOT_READY",
		"Map provider is not loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrMarkerNotFound = New(
		"MARKER_NOT_FOUND",
		"Marker not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
