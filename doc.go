/*
Package droidglue bridges a Go program to the optional services of its hosting
platform: clipboard access and launching URLs with an external browser. On
Android the app subpackage additionally wires the native-activity lifecycle
and the EGL surface of the hosting activity into the program.

Every capability is resolved lazily on first use and carries a sticky failure
state: if the platform handles cannot be looked up, the capability stays
silently disabled for the rest of the process while the program keeps
running. Diagnostics are never thrown; they are retrievable on demand:

	mgr := droidglue.NewManager(droidglue.SystemClipboard{}, &droidglue.SystemBrowser{})
	mgr.InitClipboard()

	mgr.SetClipboardText("hello")
	if err := mgr.LastClipboardError(); err != "" {
		fmt.Println("clipboard unavailable:", err)
	}

The package provides a command line interface exposing the desktop providers.
To check the supported commands type:

	$ droidglue --help
*/
package droidglue
