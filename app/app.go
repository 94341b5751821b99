// Package app wires the lifecycle of an Android native activity into the
// embedding Go program and exposes the process-wide capability manager. On
// other platforms the lifecycle is inert and the manager is backed by the
// desktop system providers, so the same program runs everywhere.
package app

// Callbacks is the table of lifecycle hooks the hosting activity delivers.
// Each slot is optional; a nil slot is skipped. The shim only dispatches the
// callbacks, it does not interpret them.
type Callbacks struct {
	Start   func()
	Resume  func()
	Pause   func()
	Stop    func()
	Destroy func()

	// SaveState returns the state blob handed back to the activity
	// framework before the process may be killed.
	SaveState func() []byte

	FocusChanged func(focused bool)

	// SurfaceCreated and SurfaceRedrawNeeded receive the native window
	// handle owned by the hosting activity.
	SurfaceCreated      func(window uintptr)
	SurfaceRedrawNeeded func(window uintptr)
	SurfaceDestroyed    func()

	InputQueueCreated   func(queue uintptr)
	InputQueueDestroyed func(queue uintptr)

	ConfigChanged func()
	LowMemory     func()
}

var callbacks Callbacks

// Register installs the lifecycle hooks. It must be called before the
// hosting activity delivers its first callback, typically from an init
// function or at the top of main.
func Register(cb Callbacks) {
	callbacks = cb
}
