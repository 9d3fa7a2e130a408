package errors

import "net/http"

var (
	ErrEntityNotFound = New(
		"ENTITY_NOT_FOUND",
		"Entity not found",
		http.StatusNotFound,
	)

	ErrGuideNotFound = New(
		"GUIDE_NOT_FOUND",
		"Guide not found",
		http.StatusNotFound,
	)

	ErrSignalNotFound = New(
		"SIGNAL_NOT_FOUND",
		"Signal not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = New(
		"INVALID_STATUS",
		"Invalid entity status",
		http.StatusBadRequest,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Stream operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
