package droidglue

import (
	"errors"
	"image"
)

// ErrNoText is reported when the host clipboard holds no textual content.
var ErrNoText = errors.New("no text is copied right now")

// ErrNoService is reported when the host environment does not expose the
// platform service a capability depends on.
var ErrNoService = errors.New("service is not available")

// ClipboardProvider is the narrow surface a platform has to implement to
// expose its clipboard. Resolve performs the platform handle lookups and is
// called at most once per process; the remaining methods are only invoked
// after a successful Resolve.
type ClipboardProvider interface {
	Resolve() error
	ReadText() (string, error)
	WriteText(s string) error
}

// ImageWriter is implemented by clipboard providers that can accept image
// content in addition to text.
type ImageWriter interface {
	WriteImage(img image.Image) error
}

// BrowserProvider is the surface a platform has to implement to hand URLs
// over to an external browser.
type BrowserProvider interface {
	Resolve() error
	OpenURL(url string) error
}
