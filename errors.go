package linearmap

import "fmt"

// errInternal panics with a diagnostic for conditions that mean the map's
// internal invariants have been violated — these never fire
// on well-behaved input and are not meant to be recovered from.
func errInternal(format string, args ...any) {
	panic("linearmap: internal logic error: " + fmt.Sprintf(format, args...))
}

// errMissingKey panics with a diagnostic naming the offending key, for
// Get's infallible-lookup contract.
func errMissingKey[K any](key K) {
	panic(fmt.Sprintf("linearmap: no entry found for key: %v", key))
}

// errMutateWhileIterating panics for a write attempted from inside a live
// ForEach/Drain visit callback. There is no borrow checker to catch this at
// compile time, so it is trapped at the point of mutation instead of being
// left to silently corrupt the slot array mid-traversal.
func errMutateWhileIterating() {
	panic("linearmap: map mutated while an iteration is in progress")
}
