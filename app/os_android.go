//go:build android

package app

/*
#cgo LDFLAGS: -landroid -llog

#include <android/native_activity.h>
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"unsafe"

	"github.com/droidglue/droidglue"
	"github.com/droidglue/droidglue/jni"
)

// Process-wide activity state, resolved once at first creation. The
// activity may be created and destroyed many times in a single process;
// everything here survives recreation.
var android struct {
	mu sync.Mutex
	vm *jni.JVM

	// activity is a global reference to the hosting NativeActivity
	// instance (the field the NDK mis-names clazz); cls is its class.
	activity jni.Object
	cls      jni.Class

	getTmpdir jni.MethodID
}

var capabilities *droidglue.Manager

// Capabilities returns the process-wide capability manager. It is non-nil
// once the hosting activity was created.
func Capabilities() *droidglue.Manager {
	android.mu.Lock()
	defer android.mu.Unlock()
	return capabilities
}

var createOnce sync.Once

//export onCreate
func onCreate(act *C.ANativeActivity) {
	createOnce.Do(func() {
		env := (*jni.Env)(unsafe.Pointer(act.env))

		android.mu.Lock()
		android.vm = (*jni.JVM)(unsafe.Pointer(act.vm))
		android.activity = jni.NewGlobalRef(env, jni.Object(act.clazz))

		// Resolve the core method table. A miss here is fatal: the
		// program cannot function without its activity wiring.
		cls, err := jni.GetObjectClass(env, android.activity)
		if err != nil {
			log.Fatalf("activity: %v", err)
		}
		android.cls = jni.Class(jni.NewGlobalRef(env, jni.Object(cls)))
		android.getTmpdir, err = jni.GetMethodID(env, android.cls, "getTmpdir", "()Ljava/lang/String;")
		if err != nil {
			log.Fatalf("activity: %v", err)
		}

		setTmpdir(env)
		setDataDirs(C.GoString(act.internalDataPath))

		capabilities = droidglue.NewManager(
			&androidClipboard{vm: android.vm, activity: android.activity},
			&androidBrowser{vm: android.vm, activity: android.activity},
		)
		android.mu.Unlock()

		// Hand off to the program's entry point exactly once per process.
		go runMain()
	})
}

// setTmpdir propagates the activity cache directory so os.TempDir and
// ioutil workalikes function.
func setTmpdir(env *jni.Env) {
	jpath, err := jni.CallObjectMethod(env, android.activity, android.getTmpdir)
	if err != nil {
		log.Printf("activity: getTmpdir failed: %v", err)
		return
	}
	tmpdir := jni.GoString(env, jni.String(jpath))
	if err := os.Setenv("TMPDIR", tmpdir); err != nil {
		log.Printf("activity: setenv TMPDIR=%s failed: %v", tmpdir, err)
	}
}

// setDataDirs points the usual home and config locations at the app's
// internal storage so os.UserHomeDir and friends work.
func setDataDirs(dataPath string) {
	if dataPath == "" {
		return
	}
	if _, exists := os.LookupEnv("HOME"); !exists {
		os.Setenv("HOME", dataPath)
	}
	if _, exists := os.LookupEnv("XDG_CACHE_HOME"); !exists {
		os.Setenv("XDG_CACHE_HOME", filepath.Join(dataPath, "cache"))
	}
	if _, exists := os.LookupEnv("XDG_CONFIG_HOME"); !exists {
		os.Setenv("XDG_CONFIG_HOME", filepath.Join(dataPath, "config"))
	}
}

//export onStart
func onStart(act *C.ANativeActivity) {
	// Capability resolution is tied to the start callback so a recreated
	// activity runs it again; resolution itself is idempotent and a failed
	// capability stays failed.
	capabilities.InitClipboard()
	capabilities.InitBrowser()
	if callbacks.Start != nil {
		callbacks.Start()
	}
}

//export onResume
func onResume(act *C.ANativeActivity) {
	if callbacks.Resume != nil {
		callbacks.Resume()
	}
}

//export onSaveInstanceState
func onSaveInstanceState(act *C.ANativeActivity, outLen *C.size_t) unsafe.Pointer {
	*outLen = 0
	if callbacks.SaveState == nil {
		return nil
	}
	state := callbacks.SaveState()
	if len(state) == 0 {
		return nil
	}
	// The activity framework takes ownership of the buffer and frees it.
	buf := C.malloc(C.size_t(len(state)))
	copy(unsafe.Slice((*byte)(buf), len(state)), state)
	*outLen = C.size_t(len(state))
	return buf
}

//export onPause
func onPause(act *C.ANativeActivity) {
	if callbacks.Pause != nil {
		callbacks.Pause()
	}
}

//export onStop
func onStop(act *C.ANativeActivity) {
	if callbacks.Stop != nil {
		callbacks.Stop()
	}
}

//export onDestroy
func onDestroy(act *C.ANativeActivity) {
	if callbacks.Destroy != nil {
		callbacks.Destroy()
	}
}

//export onWindowFocusChanged
func onWindowFocusChanged(act *C.ANativeActivity, hasFocus C.int) {
	if callbacks.FocusChanged != nil {
		callbacks.FocusChanged(hasFocus != 0)
	}
}

//export onNativeWindowCreated
func onNativeWindowCreated(act *C.ANativeActivity, win *C.ANativeWindow) {
	if callbacks.SurfaceCreated != nil {
		callbacks.SurfaceCreated(uintptr(unsafe.Pointer(win)))
	}
}

//export onNativeWindowRedrawNeeded
func onNativeWindowRedrawNeeded(act *C.ANativeActivity, win *C.ANativeWindow) {
	if callbacks.SurfaceRedrawNeeded != nil {
		callbacks.SurfaceRedrawNeeded(uintptr(unsafe.Pointer(win)))
	}
}

//export onNativeWindowDestroyed
func onNativeWindowDestroyed(act *C.ANativeActivity, win *C.ANativeWindow) {
	if callbacks.SurfaceDestroyed != nil {
		callbacks.SurfaceDestroyed()
	}
}

//export onInputQueueCreated
func onInputQueueCreated(act *C.ANativeActivity, queue *C.AInputQueue) {
	if callbacks.InputQueueCreated != nil {
		callbacks.InputQueueCreated(uintptr(unsafe.Pointer(queue)))
	}
}

//export onInputQueueDestroyed
func onInputQueueDestroyed(act *C.ANativeActivity, queue *C.AInputQueue) {
	if callbacks.InputQueueDestroyed != nil {
		callbacks.InputQueueDestroyed(uintptr(unsafe.Pointer(queue)))
	}
}

//export onConfigurationChanged
func onConfigurationChanged(act *C.ANativeActivity) {
	if callbacks.ConfigChanged != nil {
		callbacks.ConfigChanged()
	}
}

//export onLowMemory
func onLowMemory(act *C.ANativeActivity) {
	runtime.GC()
	debug.FreeOSMemory()
	if callbacks.LowMemory != nil {
		callbacks.LowMemory()
	}
}
