package droidglue

// OpenURL hands url over to the platform browser. The call is fire and
// forget: launch failures are recorded and retrievable through
// LastBrowserError, never raised.
func (m *Manager) OpenURL(url string) {
	m.brw.perform(func() error {
		return m.browser.OpenURL(url)
	})
}

// LastBrowserError returns the diagnostic of the most recent browser
// failure, or the empty string right after any successful operation.
func (m *Manager) LastBrowserError() string {
	return m.brw.lastError()
}
