package droidglue

import "github.com/pkg/errors"

// Manager owns the optional platform capabilities of the hosting process.
// Each capability is resolved lazily on first initialization and disabled
// permanently after a resolution failure; per-call faults are surfaced as
// empty results and kept retrievable through the last-error accessors.
//
// A Manager is safe for use from multiple goroutines.
type Manager struct {
	clipboard ClipboardProvider
	browser   BrowserProvider

	clip capability
	brw  capability
}

// NewManager returns a Manager backed by the given providers. A nil provider
// leaves the corresponding capability permanently unavailable after its
// first initialization.
func NewManager(clipboard ClipboardProvider, browser BrowserProvider) *Manager {
	return &Manager{
		clipboard: clipboard,
		browser:   browser,
	}
}

// InitClipboard resolves the clipboard capability. It is idempotent and safe
// to call on every lifecycle restart; once the resolution failed it never
// retries.
func (m *Manager) InitClipboard() {
	m.clip.initialize(func() error {
		if m.clipboard == nil {
			return errors.New("clipboard: no provider available")
		}
		return m.clipboard.Resolve()
	})
}

// InitBrowser resolves the browser capability with the same semantics as
// InitClipboard.
func (m *Manager) InitBrowser() {
	m.brw.initialize(func() error {
		if m.browser == nil {
			return errors.New("browser: no provider available")
		}
		return m.browser.Resolve()
	})
}

// ClipboardState reports the resolution state of the clipboard capability.
func (m *Manager) ClipboardState() State {
	return m.clip.currentState()
}

// BrowserState reports the resolution state of the browser capability.
func (m *Manager) BrowserState() State {
	return m.brw.currentState()
}
