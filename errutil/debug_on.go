//go:build bitfield_debug

package errutil

// Debug reports whether debug assertions are compiled in.
const Debug = true
