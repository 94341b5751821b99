//go:build !android

package droidglue

import (
	"net/url"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// browserSchemes are the URL schemes handed over to the system opener.
// Anything else is rejected before touching the platform.
var browserSchemes = []string{"http", "https"}

// SystemBrowser opens URLs with the platform opener command.
type SystemBrowser struct {
	path string
	args []string
}

func (b *SystemBrowser) Resolve() error {
	var (
		name string
		args []string
	)
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return errors.Wrapf(err, "browser: %s not found", name)
	}
	b.path, b.args = path, args
	return nil
}

func (b *SystemBrowser) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "browser: invalid URL")
	}
	if !slices.Contains(browserSchemes, u.Scheme) {
		return errors.Errorf("browser: unsupported URL scheme %q", u.Scheme)
	}
	cmd := exec.Command(b.path, append(b.args, u.String())...)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "browser: failed to launch opener")
	}
	// Reap the opener once it exits; its outcome is not ours to report.
	go cmd.Wait()
	return nil
}
