package droidglue

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBrowser_ShouldHandOverURL(t *testing.T) {
	mgr, _, brw := newTestManager()
	mgr.InitBrowser()

	mgr.OpenURL("https://example.com/docs")

	assert.Equal(t, []string{"https://example.com/docs"}, brw.opened)
	assert.Equal(t, "", mgr.LastBrowserError())
}

func TestBrowser_ShouldRecordTransientLaunchFailure(t *testing.T) {
	mgr, _, brw := newTestManager()
	mgr.InitBrowser()

	brw.openErr = errors.New("no activity found to handle intent")
	mgr.OpenURL("https://example.com")

	assert.Contains(t, mgr.LastBrowserError(), "no activity found")
	assert.Equal(t, Resolved, mgr.BrowserState())

	brw.openErr = nil
	mgr.OpenURL("https://example.com")

	assert.Len(t, brw.opened, 1)
	assert.Equal(t, "", mgr.LastBrowserError())
}

func TestBrowser_ShouldStayFailedAfterResolveError(t *testing.T) {
	mgr, _, brw := newTestManager()
	brw.resolveErr = errors.New("intent classes missing")

	mgr.InitBrowser()
	mgr.OpenURL("https://example.com")
	mgr.InitBrowser()

	assert.Equal(t, Failed, mgr.BrowserState())
	assert.Equal(t, 1, brw.resolved)
	assert.Empty(t, brw.opened)
	assert.Contains(t, mgr.LastBrowserError(), "intent classes missing")
}
