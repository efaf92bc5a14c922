package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the catalog has no record for the requested id or name
	ErrNotFound = errors.New("catalog record not found")

	// ErrServerOffline indicates the catalog API is unreachable
	ErrServerOffline = errors.New("catalog API is unreachable")

	// ErrPermissionDenied indicates camera access was refused
	ErrPermissionDenied = errors.New("camera permission denied")

	// ErrNotReady indicates a capture was attempted before the camera was ready
	ErrNotReady = errors.New("camera is not ready")
)
