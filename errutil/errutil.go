// Package errutil holds the assertion helpers shared by the bitfield packages.
//
// Bug and BugOn are debug assertions: they only fire in binaries built with
// the bitfield_debug tag. FatalIf always fires.
package errutil

import (
	"fmt"
)

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

func Bug(format string, msg ...any) {
	if Debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if Debug && cond {
		Bug(format, msg...)
	}
}
