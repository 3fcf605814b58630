package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"No location matched the search query",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = New(
		"INVALID_STATUS",
		"Invalid place status",
		http.StatusBadRequest,
	)

	ErrNarrativeRequired = New(
		"NARRATIVE_REQUIRED",
		"A visit narrative is required to mark a place as visited",
		http.StatusBadRequest,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"This operation requires explicit confirmation",
		http.StatusBadRequest,
	)

	ErrBackendRejected = New(
		"BACKEND_REJECTED",
		"The places backend reported a failure",
		http.StatusBadGateway,
	)

	ErrBackendUnavailable = New(
		"BACKEND_UNAVAILABLE",
		"The places backend is unreachable",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Fallback cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
