package droidglue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeClipboard implements ClipboardProvider over an in-memory clip store.
type fakeClipboard struct {
	mu         sync.Mutex
	text       string
	hasText    bool
	resolved   int
	resolveErr error
	readErr    error
	writeErr   error
}

func (f *fakeClipboard) Resolve() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved++
	return f.resolveErr
}

func (f *fakeClipboard) ReadText() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	if !f.hasText {
		return "", ErrNoText
	}
	return f.text, nil
}

func (f *fakeClipboard) WriteText(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = s
	f.hasText = true
	return nil
}

// fakeBrowser records every URL it was asked to open.
type fakeBrowser struct {
	mu         sync.Mutex
	opened     []string
	resolved   int
	resolveErr error
	openErr    error
}

func (f *fakeBrowser) Resolve() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved++
	return f.resolveErr
}

func (f *fakeBrowser) OpenURL(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, url)
	return nil
}

func newTestManager() (*Manager, *fakeClipboard, *fakeBrowser) {
	clip := &fakeClipboard{}
	brw := &fakeBrowser{}
	return NewManager(clip, brw), clip, brw
}

func TestManager_ShouldNoopBeforeInitialization(t *testing.T) {
	mgr, clip, brw := newTestManager()

	mgr.SetClipboardText("hello")
	assert.Equal(t, "", mgr.GetClipboardText())
	mgr.OpenURL("https://example.com")

	assert.Equal(t, Uninitialized, mgr.ClipboardState())
	assert.Equal(t, Uninitialized, mgr.BrowserState())
	assert.Equal(t, "", mgr.LastClipboardError())
	assert.Equal(t, "", mgr.LastBrowserError())
	assert.False(t, clip.hasText)
	assert.Empty(t, brw.opened)
}

func TestManager_ShouldBeIdempotentOnceResolved(t *testing.T) {
	mgr, clip, _ := newTestManager()

	mgr.InitClipboard()
	mgr.InitClipboard()
	mgr.InitClipboard()

	assert.Equal(t, Resolved, mgr.ClipboardState())
	assert.Equal(t, 1, clip.resolved)
}

func TestManager_ShouldNeverRetryAfterFailure(t *testing.T) {
	mgr, clip, _ := newTestManager()
	clip.resolveErr = ErrNoService

	mgr.InitClipboard()
	assert.Equal(t, Failed, mgr.ClipboardState())
	assert.NotEmpty(t, mgr.LastClipboardError())

	// Even if the underlying condition clears, the failure is sticky.
	clip.resolveErr = nil
	mgr.InitClipboard()

	assert.Equal(t, Failed, mgr.ClipboardState())
	assert.Equal(t, 1, clip.resolved)
}

func TestManager_ShouldTreatUninitializedLikeFailed(t *testing.T) {
	uninit, _, _ := newTestManager()

	failed, clip, _ := newTestManager()
	clip.resolveErr = ErrNoService
	failed.InitClipboard()

	for _, mgr := range []*Manager{uninit, failed} {
		mgr.SetClipboardText("x")
		assert.Equal(t, "", mgr.GetClipboardText())
	}
}

func TestManager_ShouldFailWithoutProviders(t *testing.T) {
	mgr := NewManager(nil, nil)

	mgr.InitClipboard()
	mgr.InitBrowser()

	assert.Equal(t, Failed, mgr.ClipboardState())
	assert.Equal(t, Failed, mgr.BrowserState())
	assert.Contains(t, mgr.LastClipboardError(), "no provider")
	assert.Contains(t, mgr.LastBrowserError(), "no provider")
}

func TestState_ShouldHaveReadableNames(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "resolving", Resolving.String())
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
