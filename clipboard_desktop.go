//go:build !android

package droidglue

import (
	"bytes"
	"image"
	"image/png"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.design/x/clipboard"
)

// SystemClipboard adapts the desktop clipboard to the ClipboardProvider
// interface. Resolution failures (a headless session, a missing X display)
// leave the capability permanently disabled, matching the one-shot
// initialization the mobile targets get.
type SystemClipboard struct{}

func (SystemClipboard) Resolve() error {
	if err := clipboard.Init(); err != nil {
		return errors.Wrap(err, "clipboard: device initialization failed")
	}
	return nil
}

func (SystemClipboard) ReadText() (string, error) {
	b := clipboard.Read(clipboard.FmtText)
	if len(b) == 0 {
		return "", ErrNoText
	}
	// basic sanity check
	if !utf8.Valid(b) {
		return "", errors.New("clipboard: content is not valid UTF-8")
	}
	return string(b), nil
}

func (SystemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// WriteImage places img on the clipboard as PNG encoded data.
func (SystemClipboard) WriteImage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "clipboard: PNG encoding failed")
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
