package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dexcam/internal/capture"
	"github.com/mmcdole/dexcam/internal/catalog"
)

// Command factories for async operations

// MountCmd issues the one-time camera permission request
func MountCmd(screen *capture.Screen) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return MountedMsg{Ready: screen.Mount(ctx) == capture.StateReady}
	}
}

// LoadListCmd loads the catalog list (from cache when warm)
func LoadListCmd(svc *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		return ListLoadedMsg{Entries: svc.FetchList(ctx)}
	}
}

// RefreshOverlayCmd re-fetches the overlay lookup for the current selection
func RefreshOverlayCmd(screen *capture.Screen, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return OverlayLoadedMsg{ID: id, Lookup: screen.RefreshOverlay(ctx)}
	}
}

// CaptureCmd takes a photo and persists the capture record
func CaptureCmd(screen *capture.Screen) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rec, err := screen.Capture(ctx)
		return CapturedMsg{Record: rec, Err: err}
	}
}
