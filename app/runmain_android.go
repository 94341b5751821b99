//go:build android

package app

// Android only runs Go programs as c-shared libraries, and Go does not run
// a program's main function in library mode. The shim links to it here and
// calls it once the activity is created.

import (
	"sync"
	_ "unsafe" // for go:linkname
)

//go:linkname mainMain main.main
func mainMain()

var runMainOnce sync.Once

func runMain() {
	runMainOnce.Do(func() {
		// Indirect call, since the linker does not know the address of
		// main when laying down this package.
		fn := mainMain
		fn()
	})
}
