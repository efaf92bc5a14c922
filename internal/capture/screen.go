package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/mmcdole/dexcam/internal/domain"
)

// RouteGallery is the named route of the gallery view
const RouteGallery = "Gallery"

// State is the camera lifecycle of a Screen.
type State int

const (
	StateAwaitingPermission State = iota
	StatePermissionDenied
	StateReady
)

func (s State) String() string {
	switch s {
	case StateAwaitingPermission:
		return "awaiting-permission"
	case StatePermissionDenied:
		return "permission-denied"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Lookuper resolves the overlay projection for a catalog id.
type Lookuper interface {
	FetchBasicLookup(ctx context.Context, idOrName string) *domain.BasicLookup
}

// Selection is the catalog entry the overlay follows. ID 0 means nothing is selected.
type Selection struct {
	ID   int
	Name string
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) NowMillis() int64 { return time.Now().UnixMilli() }

// Deps are the collaborators of a Screen.
type Deps struct {
	Camera    domain.Camera
	Lookups   Lookuper
	Captures  *Repository
	Notifier  domain.Notifier
	Navigator domain.Navigator
	Clock     domain.Clock // nil means SystemClock
	Platform  Platform
}

// Screen coordinates permission, the sprite overlay and capture persistence.
// Safe for use from concurrent commands.
type Screen struct {
	deps   Deps
	logger *slog.Logger

	mu             sync.Mutex
	state          State
	mounted        bool
	selection      Selection
	overlay        *domain.BasicLookup
	overlayPending bool
}

// NewScreen creates a screen in StateAwaitingPermission.
func NewScreen(deps Deps, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	return &Screen{deps: deps, logger: logger, state: StateAwaitingPermission}
}

// Mount issues the one-time permission request and returns the resulting state.
// Later calls return the settled state without asking again.
func (s *Screen) Mount(ctx context.Context) State {
	s.mu.Lock()
	if s.mounted {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.mounted = true
	s.mu.Unlock()

	perm, err := s.deps.Camera.RequestPermission(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.logger.Error("permission request failed", "error", err)
		s.state = StatePermissionDenied
	case perm != domain.PermissionGranted:
		s.logger.Info("camera permission denied")
		s.state = StatePermissionDenied
	default:
		s.logger.Info("camera ready")
		s.state = StateReady
	}
	return s.state
}

func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Screen) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Select changes the selected entry. It reports whether the overlay needs a
// RefreshOverlay, which is only when the id changed to a real entry.
func (s *Screen) Select(id int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := id != s.selection.ID
	s.selection = Selection{ID: id, Name: name}
	if !changed {
		return false
	}
	s.overlay = nil
	s.overlayPending = id != 0
	return id != 0
}

// Overlay returns the current overlay lookup and whether a fetch is pending.
// A nil lookup with pending false means the placeholder stays.
func (s *Screen) Overlay() (*domain.BasicLookup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay, s.overlayPending
}

// RefreshOverlay fetches a fresh lookup for the current selection.
// The result is dropped if the selection moved on while the fetch ran.
func (s *Screen) RefreshOverlay(ctx context.Context) *domain.BasicLookup {
	sel := s.Selection()
	if sel.ID == 0 {
		return nil
	}

	lookup := s.deps.Lookups.FetchBasicLookup(ctx, strconv.Itoa(sel.ID))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection.ID != sel.ID {
		s.logger.Debug("discarding stale overlay", "id", sel.ID, "current", s.selection.ID)
		return nil
	}
	s.overlay = lookup
	s.overlayPending = false
	return lookup
}

// Capture takes a still photo and appends a CaptureRecord to the persisted list.
// The user is notified of the outcome once the write has been attempted.
func (s *Screen) Capture(ctx context.Context) (domain.CaptureRecord, error) {
	s.mu.Lock()
	state := s.state
	sel := s.selection
	var sprite *string
	if s.overlay != nil && s.overlay.Sprite != nil {
		sprite = domain.StringPtr(*s.overlay.Sprite)
	}
	s.mu.Unlock()

	if state != StateReady {
		return domain.CaptureRecord{}, domain.ErrNotReady
	}

	path, err := s.deps.Camera.TakePhoto(ctx, domain.PhotoOptions{Flash: false})
	if err != nil {
		return domain.CaptureRecord{}, s.captureFailed(fmt.Errorf("take photo: %w", err))
	}

	rec := domain.CaptureRecord{
		ID:        sel.ID,
		Name:      sel.Name,
		Sprite:    sprite,
		PhotoURI:  NormalizePhotoURI(s.deps.Platform, path),
		Timestamp: s.deps.Clock.NowMillis(),
	}

	if err := s.deps.Captures.Append(rec); err != nil {
		return domain.CaptureRecord{}, s.captureFailed(err)
	}

	s.logger.Info("capture saved", "id", rec.ID, "name", rec.Name, "photo", rec.PhotoURI)
	s.notify("Captured!", "Photo saved to your gallery.")
	return rec, nil
}

// OpenGallery navigates to the gallery view.
func (s *Screen) OpenGallery() error {
	if s.deps.Navigator == nil {
		return fmt.Errorf("no navigator configured")
	}
	return s.deps.Navigator.Navigate(RouteGallery)
}

// Captures returns the persisted capture list for the gallery.
func (s *Screen) Captures() ([]domain.CaptureRecord, error) {
	return s.deps.Captures.List()
}

func (s *Screen) captureFailed(err error) error {
	s.logger.Error("capture failed", "error", err)
	s.notify("Error", "Failed to save capture.")
	return err
}

func (s *Screen) notify(title, message string) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(title, message)
	}
}
