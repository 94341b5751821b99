package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldDecorateMessagesByType(t *testing.T) {
	NoColor = false
	assert.Equal(t, ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(99)))

	NoColor = true
	defer func() { NoColor = false }()
	assert.Equal(t, "boom", DecorateText("boom", ErrorMessage))
}

func TestUtils_ShouldFormatDurations(t *testing.T) {
	assert.Equal(t, "0.25s", FormatTime(250*time.Millisecond))
	assert.Equal(t, "1m 30.00s", FormatTime(90*time.Second))
}

func TestUtils_ShouldDetectImageContent(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "probe.png")
	out, err := os.Create(fname)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(out, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	assert.NoError(t, out.Close())

	ctype, isImage, err := DetectImageContentType(fname)
	assert.NoError(t, err)
	assert.True(t, isImage)
	assert.Equal(t, "image/png", ctype)

	_, _, err = DetectImageContentType(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
