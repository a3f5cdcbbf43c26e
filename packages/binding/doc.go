// Package binding is the foreign-function surface of vane. Every operation
// takes and returns plain, JSON-serializable records; the only non-record
// value that crosses the boundary is an opaque ClientHandle. Failures never
// panic out of an exported operation: malformed input comes back as a typed
// *ErrorInfo.
//
// The handle table is the one piece of process-wide state. It only maps
// handles to constructed clients; clients themselves are immutable and safe
// for concurrent use, so concurrent operations on the same handle do not
// interfere.
package binding
