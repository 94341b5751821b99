//go:build !android

package droidglue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemBrowser_ShouldRejectUnsupportedSchemes(t *testing.T) {
	b := &SystemBrowser{}

	err := b.OpenURL("ftp://example.com/pub")
	assert.ErrorContains(t, err, "unsupported URL scheme")

	err = b.OpenURL("javascript:alert(1)")
	assert.ErrorContains(t, err, "unsupported URL scheme")
}

func TestSystemBrowser_ShouldRejectMalformedURLs(t *testing.T) {
	b := &SystemBrowser{}

	err := b.OpenURL("http://exa mple.com")
	assert.ErrorContains(t, err, "invalid URL")
}
