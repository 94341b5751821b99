package droidglue

import (
	"image"
	"strconv"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClipboard_ShouldRoundTripText(t *testing.T) {
	mgr, _, _ := newTestManager()
	mgr.InitClipboard()

	mgr.SetClipboardText("copied over")

	assert.Equal(t, "copied over", mgr.GetClipboardText())
	assert.Equal(t, "", mgr.LastClipboardError())
}

func TestClipboard_ShouldReportEmptyClipboard(t *testing.T) {
	mgr, _, _ := newTestManager()
	mgr.InitClipboard()

	assert.Equal(t, "", mgr.GetClipboardText())
	assert.Contains(t, mgr.LastClipboardError(), "no text is copied")
}

func TestClipboard_ShouldRecoverFromTransientFaults(t *testing.T) {
	mgr, clip, _ := newTestManager()
	mgr.InitClipboard()
	mgr.SetClipboardText("before the fault")

	clip.readErr = errors.New("clip store busy")
	assert.Equal(t, "", mgr.GetClipboardText())
	assert.Contains(t, mgr.LastClipboardError(), "clip store busy")
	// A call-time fault never disables the capability.
	assert.Equal(t, Resolved, mgr.ClipboardState())

	clip.readErr = nil
	assert.Equal(t, "before the fault", mgr.GetClipboardText())
	assert.Equal(t, "", mgr.LastClipboardError())
}

func TestClipboard_ShouldStayDisabledWithoutService(t *testing.T) {
	mgr, clip, _ := newTestManager()
	clip.resolveErr = ErrNoService

	mgr.InitClipboard()
	mgr.SetClipboardText("x")

	assert.Equal(t, "", mgr.GetClipboardText())
	assert.False(t, clip.hasText)
	assert.Equal(t, Failed, mgr.ClipboardState())
}

func TestClipboard_ShouldRejectImagesWithoutSupport(t *testing.T) {
	mgr, _, _ := newTestManager()
	mgr.InitClipboard()

	mgr.SetClipboardImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))

	assert.Contains(t, mgr.LastClipboardError(), "image content is not supported")
	assert.Equal(t, Resolved, mgr.ClipboardState())
}

func TestClipboard_ShouldNotTearStateUnderConcurrency(t *testing.T) {
	mgr, clip, _ := newTestManager()
	mgr.InitClipboard()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mgr.InitClipboard()
				mgr.SetClipboardText("worker " + strconv.Itoa(worker))
				mgr.GetClipboardText()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, clip.resolved)
	assert.Equal(t, Resolved, mgr.ClipboardState())
	assert.Contains(t, mgr.GetClipboardText(), "worker ")
}
