//go:build !android

package app

import (
	"testing"

	"github.com/droidglue/droidglue"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities_ShouldReturnProcessWideManager(t *testing.T) {
	mgr := Capabilities()

	assert.NotNil(t, mgr)
	assert.Same(t, mgr, Capabilities())
	assert.Equal(t, droidglue.Uninitialized, mgr.ClipboardState())
	assert.Equal(t, droidglue.Uninitialized, mgr.BrowserState())
}

func TestRegister_ShouldAcceptPartialCallbackTables(t *testing.T) {
	var started bool
	Register(Callbacks{Start: func() { started = true }})

	assert.NotNil(t, callbacks.Start)
	callbacks.Start()
	assert.True(t, started)
	assert.Nil(t, callbacks.Resume)
}
