/*
File    : lox/interp/native_clock.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"time"

	"github.com/akashmaji946/lox/environ"
)

// registerNatives seeds the global environment with the single native
// function orig §4.4 allows: clock, grounded on std/time.go's now()
// builtin but reduced to just a float64 seconds-since-epoch reading, no
// formatting/parsing surface.
func registerNatives(globals *environ.Environment) {
	globals.Define("clock", NewNativeFunction("clock", 0, func(in *Interpreter, args []interface{}) (interface{}, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
}
