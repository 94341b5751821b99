//go:build android

package app

/*
#cgo LDFLAGS: -lEGL -landroid

#include <EGL/egl.h>
#include <android/native_window.h>

static EGLDisplay egl_default_display() {
	return eglGetDisplay(EGL_DEFAULT_DISPLAY);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
)

// The one config the shim renders with: RGB888 with a 16 bit depth buffer
// on a GLES2 context.
var eglConfigAttribs = []C.EGLint{
	C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_ES2_BIT,
	C.EGL_SURFACE_TYPE, C.EGL_WINDOW_BIT,
	C.EGL_BLUE_SIZE, 8,
	C.EGL_GREEN_SIZE, 8,
	C.EGL_RED_SIZE, 8,
	C.EGL_DEPTH_SIZE, 16,
	C.EGL_CONFIG_CAVEAT, C.EGL_NONE,
	C.EGL_NONE,
}

var eglContextAttribs = []C.EGLint{
	C.EGL_CONTEXT_CLIENT_VERSION, 2,
	C.EGL_NONE,
}

var egl struct {
	mu      sync.Mutex
	display C.EGLDisplay
	surface C.EGLSurface
	context C.EGLContext
}

// CreateSurface creates an EGL window surface and a GLES2 context for the
// native window handle delivered by the surface-created callback, and makes
// them current on the calling thread. The caller decides how to react to a
// failure; the shim only reports it.
func CreateSurface(window uintptr) error {
	egl.mu.Lock()
	defer egl.mu.Unlock()

	if egl.display == nil {
		display := C.egl_default_display()
		if C.eglInitialize(display, nil, nil) == C.EGL_FALSE {
			return errors.Errorf("egl: initialize failed (0x%x)", C.eglGetError())
		}
		egl.display = display
	}

	var (
		config     C.EGLConfig
		numConfigs C.EGLint
	)
	if C.eglChooseConfig(egl.display, &eglConfigAttribs[0], &config, 1, &numConfigs) == C.EGL_FALSE {
		return errors.Errorf("egl: choose RGB888 config failed (0x%x)", C.eglGetError())
	}
	if numConfigs <= 0 {
		return errors.New("egl: no matching config found")
	}

	var format C.EGLint
	C.eglGetConfigAttrib(egl.display, config, C.EGL_NATIVE_VISUAL_ID, &format)
	win := (*C.ANativeWindow)(unsafe.Pointer(window))
	if C.ANativeWindow_setBuffersGeometry(win, 0, 0, C.int32_t(format)) != 0 {
		return errors.New("egl: set buffers geometry failed")
	}

	surface := C.eglCreateWindowSurface(egl.display, config, C.EGLNativeWindowType(unsafe.Pointer(win)), nil)
	if surface == nil {
		return errors.Errorf("egl: create window surface failed (0x%x)", C.eglGetError())
	}
	context := C.eglCreateContext(egl.display, config, nil, &eglContextAttribs[0])
	if context == nil {
		return errors.Errorf("egl: create context failed (0x%x)", C.eglGetError())
	}
	if C.eglMakeCurrent(egl.display, surface, surface, context) == C.EGL_FALSE {
		return errors.Errorf("egl: make current failed (0x%x)", C.eglGetError())
	}
	egl.surface = surface
	egl.context = context
	return nil
}

// DestroySurface releases the current surface. The display and context are
// kept for the next surface of a restarted activity.
func DestroySurface() error {
	egl.mu.Lock()
	defer egl.mu.Unlock()

	if egl.surface == nil {
		return nil
	}
	C.eglMakeCurrent(egl.display, nil, nil, nil)
	if C.eglDestroySurface(egl.display, egl.surface) == C.EGL_FALSE {
		return errors.Errorf("egl: destroy surface failed (0x%x)", C.eglGetError())
	}
	egl.surface = nil
	return nil
}
