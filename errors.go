package strcore

import "errors"

// ErrOutOfMemory is returned when the provided Allocator fails to satisfy
// a scratch allocation request. It is the only failure mode Sort and
// Intersect can surface (spec §7): no partial output is produced.
var ErrOutOfMemory = errors.New("strcore: allocator out of memory")

// ErrInvalidUTF8 reports malformed input. The UTF-8 validator Valid reports
// its result as a bool and does not return this error; within this package
// it is returned by Tape.ReadFrom when the wire header's version word is not
// recognised. The fold/find/order paths never report bad UTF-8: the find
// and order iterators stop at the first bad byte, and CaseFold skips it.
var ErrInvalidUTF8 = errors.New("strcore: invalid utf-8")

// ErrContainsDuplicates is reserved for a future optional verification mode
// on Intersect; it is never returned by the current implementation. See
// spec §6/§9.
var ErrContainsDuplicates = errors.New("strcore: collection contains duplicates")
