package capture

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/dexcam/internal/domain"
	"github.com/mmcdole/dexcam/internal/store"
)

// fakeCamera records permission requests and photo options.
type fakeCamera struct {
	perm      domain.Permission
	permErr   error
	photoErr  error
	path      string
	permCalls int
	shots     []domain.PhotoOptions
}

func (c *fakeCamera) RequestPermission(ctx context.Context) (domain.Permission, error) {
	c.permCalls++
	return c.perm, c.permErr
}

func (c *fakeCamera) TakePhoto(ctx context.Context, opts domain.PhotoOptions) (string, error) {
	c.shots = append(c.shots, opts)
	if c.photoErr != nil {
		return "", c.photoErr
	}
	return c.path, nil
}

type fakeLookups struct {
	mu      sync.Mutex
	results map[string]*domain.BasicLookup
	calls   []string
	// before runs inside FetchBasicLookup, letting tests move the selection mid-fetch
	before func()
}

func (l *fakeLookups) FetchBasicLookup(ctx context.Context, idOrName string) *domain.BasicLookup {
	l.mu.Lock()
	l.calls = append(l.calls, idOrName)
	before := l.before
	l.mu.Unlock()
	if before != nil {
		before()
	}
	return l.results[idOrName]
}

type notice struct{ title, message string }

type recordingNotifier struct{ notices []notice }

func (n *recordingNotifier) Notify(title, message string) {
	n.notices = append(n.notices, notice{title, message})
}

type recordingNavigator struct{ routes []string }

func (n *recordingNavigator) Navigate(route string) error {
	n.routes = append(n.routes, route)
	return nil
}

type fixedClock struct{ ms int64 }

func (c *fixedClock) NowMillis() int64 {
	c.ms++
	return c.ms
}

// failingStore reads fine but refuses writes.
type failingStore struct{ domain.KVStore }

func (failingStore) Set(key, value string) error { return errors.New("disk full") }

// unreadableStore fails every read while writes still go through.
type unreadableStore struct{ domain.KVStore }

func (unreadableStore) Get(key string) (string, bool, error) {
	return "", false, errors.New("i/o error")
}

func listCaptures(t *testing.T, repo *Repository) []domain.CaptureRecord {
	t.Helper()
	records, err := repo.List()
	require.NoError(t, err)
	return records
}

type harness struct {
	screen   *Screen
	camera   *fakeCamera
	lookups  *fakeLookups
	notifier *recordingNotifier
	nav      *recordingNavigator
	kv       domain.KVStore
	repo     *Repository
}

func newHarness(t *testing.T, perm domain.Permission) *harness {
	t.Helper()
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)

	h := &harness{
		camera: &fakeCamera{perm: perm, path: "/data/photos/a.jpg"},
		lookups: &fakeLookups{results: map[string]*domain.BasicLookup{
			"25": {ID: 25, Name: "pikachu", Sprite: domain.StringPtr("art25"), Types: []string{"electric"}},
			"1":  {ID: 1, Name: "bulbasaur", Sprite: domain.StringPtr("art1")},
		}},
		notifier: &recordingNotifier{},
		nav:      &recordingNavigator{},
		kv:       kv,
	}
	h.repo = NewRepository(kv, nil)
	h.screen = NewScreen(Deps{
		Camera:    h.camera,
		Lookups:   h.lookups,
		Captures:  h.repo,
		Notifier:  h.notifier,
		Navigator: h.nav,
		Clock:     &fixedClock{ms: 1700000000000},
		Platform:  PlatformAndroid,
	}, nil)
	return h
}

func TestScreen_MountGranted(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	assert.Equal(t, StateAwaitingPermission, h.screen.State())

	assert.Equal(t, StateReady, h.screen.Mount(context.Background()))
	assert.Equal(t, StateReady, h.screen.Mount(context.Background()))
	assert.Equal(t, 1, h.camera.permCalls, "permission is requested once")
}

func TestScreen_MountDenied(t *testing.T) {
	h := newHarness(t, domain.PermissionDenied)
	assert.Equal(t, StatePermissionDenied, h.screen.Mount(context.Background()))

	_, err := h.screen.Capture(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Empty(t, h.camera.shots)
}

func TestScreen_MountError(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.camera.permErr = errors.New("no camera")
	assert.Equal(t, StatePermissionDenied, h.screen.Mount(context.Background()))
}

func TestScreen_OverlayFollowsSelection(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)

	assert.True(t, h.screen.Select(25, "pikachu"))
	overlay, pending := h.screen.Overlay()
	assert.Nil(t, overlay)
	assert.True(t, pending)

	lookup := h.screen.RefreshOverlay(context.Background())
	require.NotNil(t, lookup)
	overlay, pending = h.screen.Overlay()
	assert.False(t, pending)
	assert.Equal(t, "art25", *overlay.Sprite)

	assert.False(t, h.screen.Select(25, "pikachu"), "same id does not refetch")
	assert.Equal(t, []string{"25"}, h.lookups.calls)
}

func TestScreen_StaleOverlayDiscarded(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Select(25, "pikachu")
	h.lookups.before = func() { h.screen.Select(1, "bulbasaur") }

	assert.Nil(t, h.screen.RefreshOverlay(context.Background()))
	overlay, pending := h.screen.Overlay()
	assert.Nil(t, overlay)
	assert.True(t, pending)
}

func TestScreen_FailedLookupKeepsPlaceholder(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Select(999, "unknown")

	assert.Nil(t, h.screen.RefreshOverlay(context.Background()))
	overlay, pending := h.screen.Overlay()
	assert.Nil(t, overlay)
	assert.False(t, pending)
}

func TestScreen_CaptureAppendsInOrder(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())

	h.screen.Select(25, "pikachu")
	h.screen.RefreshOverlay(context.Background())
	first, err := h.screen.Capture(context.Background())
	require.NoError(t, err)

	h.screen.Select(1, "bulbasaur")
	h.screen.RefreshOverlay(context.Background())
	h.camera.path = "/data/photos/b.jpg"
	second, err := h.screen.Capture(context.Background())
	require.NoError(t, err)

	records := listCaptures(t, h.repo)
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])

	assert.Equal(t, 25, records[0].ID)
	assert.Equal(t, "pikachu", records[0].Name)
	assert.Equal(t, "art25", *records[0].Sprite)
	assert.Equal(t, "file:///data/photos/a.jpg", records[0].PhotoURI)
	assert.Equal(t, int64(1700000000001), records[0].Timestamp)

	assert.Equal(t, 1, records[1].ID)
	assert.Equal(t, "file:///data/photos/b.jpg", records[1].PhotoURI)
	assert.Greater(t, records[1].Timestamp, records[0].Timestamp)

	for _, shot := range h.camera.shots {
		assert.False(t, shot.Flash, "flash must be off")
	}
	require.Len(t, h.notifier.notices, 2)
	assert.Equal(t, "Captured!", h.notifier.notices[0].title)
}

func TestScreen_CaptureWithoutSelection(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())

	rec, err := h.screen.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.ID)
	assert.Nil(t, rec.Sprite)
	assert.NotEmpty(t, rec.PhotoURI)
	assert.Len(t, listCaptures(t, h.repo), 1)
}

func TestScreen_CaptureWhileOverlayPending(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())
	h.screen.Select(25, "pikachu")

	rec, err := h.screen.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, rec.ID)
	assert.Nil(t, rec.Sprite)
}

func TestScreen_CameraFailureNotifies(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())
	h.camera.photoErr = errors.New("shutter jammed")

	_, err := h.screen.Capture(context.Background())
	assert.Error(t, err)
	assert.Empty(t, listCaptures(t, h.repo))
	require.Len(t, h.notifier.notices, 1)
	assert.Equal(t, "Error", h.notifier.notices[0].title)
}

func TestScreen_StorageFailureKeepsPriorEntries(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())
	_, err := h.screen.Capture(context.Background())
	require.NoError(t, err)

	h.screen.deps.Captures = NewRepository(failingStore{h.kv}, nil)
	_, err = h.screen.Capture(context.Background())
	assert.Error(t, err)

	assert.Len(t, listCaptures(t, h.repo), 1)
	assert.Equal(t, "Error", h.notifier.notices[len(h.notifier.notices)-1].title)
}

func TestScreen_StorageReadFailureKeepsPriorEntries(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	h.screen.Mount(context.Background())
	h.screen.Select(25, "pikachu")
	h.screen.RefreshOverlay(context.Background())
	_, err := h.screen.Capture(context.Background())
	require.NoError(t, err)

	h.screen.deps.Captures = NewRepository(unreadableStore{h.kv}, nil)
	h.screen.Select(1, "bulbasaur")
	_, err = h.screen.Capture(context.Background())
	assert.Error(t, err)

	records := listCaptures(t, h.repo)
	require.Len(t, records, 1)
	assert.Equal(t, "pikachu", records[0].Name)

	require.Len(t, h.notifier.notices, 2)
	assert.Equal(t, "Captured!", h.notifier.notices[0].title)
	assert.Equal(t, notice{"Error", "Failed to save capture."}, h.notifier.notices[1])
}

func TestRepository_ReadFailureIsAnError(t *testing.T) {
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyCaptures, `[{"id":25,"name":"pikachu"}]`))

	repo := NewRepository(unreadableStore{kv}, nil)
	_, err = repo.List()
	assert.Error(t, err)
	assert.Error(t, repo.Append(domain.CaptureRecord{ID: 1, Name: "bulbasaur"}))

	raw, _, err := kv.Get(KeyCaptures)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":25,"name":"pikachu"}]`, raw)
}

func TestScreen_OpenGallery(t *testing.T) {
	h := newHarness(t, domain.PermissionGranted)
	require.NoError(t, h.screen.OpenGallery())
	assert.Equal(t, []string{RouteGallery}, h.nav.routes)
}

func TestRepository_UnparsableListIsEmpty(t *testing.T) {
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyCaptures, "not json"))

	repo := NewRepository(kv, nil)
	assert.Empty(t, listCaptures(t, repo))

	require.NoError(t, repo.Append(domain.CaptureRecord{ID: 7, Name: "squirtle", PhotoURI: "p"}))
	records := listCaptures(t, repo)
	require.Len(t, records, 1)
	assert.Equal(t, "squirtle", records[0].Name)
}

func TestRepository_WireFormat(t *testing.T) {
	kv, err := store.Open(store.DriverMemory, "", nil)
	require.NoError(t, err)
	repo := NewRepository(kv, nil)

	require.NoError(t, repo.Append(domain.CaptureRecord{ID: 25, Name: "pikachu", PhotoURI: "file:///a.jpg", Timestamp: 5}))
	raw, ok, err := kv.Get(KeyCaptures)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":25,"name":"pikachu","sprite":null,"photoUri":"file:///a.jpg","timestamp":5}]`, raw)
}
