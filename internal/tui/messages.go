package tui

import "github.com/mmcdole/dexcam/internal/domain"

// Message types for the TUI

// MountedMsg carries the settled permission state
type MountedMsg struct {
	Ready bool
}

// ListLoadedMsg signals that the catalog list has been loaded
type ListLoadedMsg struct {
	Entries []domain.CatalogEntry
}

// OverlayLoadedMsg signals that an overlay lookup finished for ID
type OverlayLoadedMsg struct {
	ID     int
	Lookup *domain.BasicLookup
}

// CapturedMsg signals the end of a capture attempt
type CapturedMsg struct {
	Record domain.CaptureRecord
	Err    error
}

// NoticeMsg is a user-visible notice from the capture screen
type NoticeMsg struct {
	Title   string
	Message string
}

// NavigateMsg requests a named-route transition
type NavigateMsg struct {
	Route string
}
