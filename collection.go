package strcore

// Collection is an abstract random-access view over N byte strings. It is
// the single consumed interface shared by Sort and Intersect (spec §6).
// Implementations must be immutable for the duration of any operation;
// concurrent mutation by the caller is a contract violation (spec §5) and
// is not detected.
//
// Strings may contain embedded NUL bytes. Terminator status of the
// underlying storage is unspecified — At must return exactly the stored
// payload, with no terminator included.
type Collection interface {
	// Len returns the number of strings in the collection.
	Len() int
	// At returns the byte string stored at index i. The returned slice is
	// only valid for the duration of the call; implementations that own
	// contiguous storage (e.g. Tape) may return a direct view without
	// copying.
	At(i int) []byte
}

// Allocator is the scratch-memory interface every core operation accepts
// (spec §5/§6). A default wraps the process heap; callers needing arena or
// pooled allocation can supply their own.
type Allocator interface {
	// Allocate returns a byte slice of length n, or ErrOutOfMemory.
	Allocate(n int) ([]byte, error)
	// Free releases a slice previously returned by Allocate. Implementations
	// that do not pool memory may treat this as a no-op.
	Free(b []byte)
}

// heapAllocator is the default Allocator: a thin satisfier over make, with
// no pooling. The teacher's own Table relies on plain make throughout
// (newTable, Encode, Decode) for a single-call workload, and this module's
// operations are likewise single-call, so pooling would add complexity
// without a demonstrated need.
type heapAllocator struct{}

func (heapAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	return make([]byte, n), nil
}

func (heapAllocator) Free([]byte) {}

// DefaultAllocator wraps the process-wide heap via make. It never fails
// except for a negative size, which cannot occur from within this package.
var DefaultAllocator Allocator = heapAllocator{}
