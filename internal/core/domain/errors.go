package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileTooLarge indicates an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrStorageUnavailable indicates the local store cannot serve the request.
	// In-memory state is best-effort once this is returned.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNoStandards indicates a question was asked with an empty library.
	ErrNoStandards = errors.New("no standards uploaded")

	// Remote query errors.

	// ErrNoCredential indicates no API key is configured for the provider.
	ErrNoCredential = errors.New("no API credential configured")

	// ErrMalformedAnswer indicates the model response could not be parsed.
	ErrMalformedAnswer = errors.New("malformed model response")

	// Viewer errors.

	// ErrViewerClosed indicates an operation on a closed viewer session.
	ErrViewerClosed = errors.New("viewer session closed")

	// ErrDecodeFailed indicates the document bytes could not be decoded.
	ErrDecodeFailed = errors.New("document decode failed")
)
