package domain

import "context"

// Permission is the outcome of a camera permission request.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// PhotoOptions controls a still capture.
type PhotoOptions struct {
	Flash bool
}

// Camera is the platform camera capability.
// Preview rendering belongs to the platform and is not modeled here.
type Camera interface {
	// RequestPermission asks for camera access
	RequestPermission(ctx context.Context) (Permission, error)

	// TakePhoto captures a still image and returns its file-system path
	TakePhoto(ctx context.Context, opts PhotoOptions) (string, error)
}

// Navigator performs named-route transitions.
type Navigator interface {
	Navigate(route string) error
}

// Notifier shows a short user-visible message.
type Notifier interface {
	Notify(title, message string)
}

// Clock supplies the current time in Unix milliseconds.
type Clock interface {
	NowMillis() int64
}
