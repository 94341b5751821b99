//go:build !android

package app

import (
	"sync"

	"github.com/droidglue/droidglue"
)

var (
	managerOnce sync.Once
	manager     *droidglue.Manager
)

// Capabilities returns the process-wide capability manager, backed by the
// desktop system providers. The capabilities still have to be initialized
// before use.
func Capabilities() *droidglue.Manager {
	managerOnce.Do(func() {
		manager = droidglue.NewManager(droidglue.SystemClipboard{}, &droidglue.SystemBrowser{})
	})
	return manager
}
