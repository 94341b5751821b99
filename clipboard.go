package droidglue

import (
	"image"

	"github.com/pkg/errors"
)

// GetClipboardText returns the text currently held by the host clipboard.
// The empty string is returned when the capability is unavailable or when
// the read fails; the failure reason is retrievable through
// LastClipboardError.
func (m *Manager) GetClipboardText() string {
	var text string
	m.clip.perform(func() error {
		t, err := m.clipboard.ReadText()
		if err != nil {
			return err
		}
		text = t
		return nil
	})
	return text
}

// SetClipboardText copies s onto the host clipboard. It is a silent no-op
// when the capability is unavailable.
func (m *Manager) SetClipboardText(s string) {
	m.clip.perform(func() error {
		return m.clipboard.WriteText(s)
	})
}

// SetClipboardImage copies img onto the host clipboard on platforms whose
// provider supports image content.
func (m *Manager) SetClipboardImage(img image.Image) {
	m.clip.perform(func() error {
		w, ok := m.clipboard.(ImageWriter)
		if !ok {
			return errors.New("clipboard: image content is not supported on this platform")
		}
		return w.WriteImage(img)
	})
}

// LastClipboardError returns the diagnostic of the most recent clipboard
// failure, or the empty string right after any successful operation.
func (m *Manager) LastClipboardError() string {
	return m.clip.lastError()
}
