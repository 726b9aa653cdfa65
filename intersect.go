package strcore

import (
	"bytes"
	"unsafe"
)

// Intersect engine (spec §4.E): pair matching strings across two
// deduplicated collections via an open-addressed hash table with linear
// probing. Duplicate inputs yield unspecified but memory-safe results
// (spec's Non-goals).
//
// The hash slot layout — positions and hashes as two parallel arrays in
// one allocation — is the same "external storage, dense scan" shape the
// teacher uses for its own lookup table (table.go's hashTab, a
// direct-mapped array of packed val/icl entries scanned without an
// indirection): here the indirection is a linear probe instead of a
// direct map, because N is arbitrary rather than fixed at 2048, but the
// motivation (scan hashes without touching the index/value payload until
// a candidate is found) is identical.

const (
	// intersectBudget is the load-factor knob from spec §4.E step 3:
	// slots = next_pow2(|small|) << intersectBudget. The default of 1
	// gives at least 2 slots per build-side string (load factor <= 1/2).
	intersectBudget = 1

	// emptyPos marks an unoccupied slot's position field. A real
	// collection index can never be negative, so -1 is unambiguous.
	emptyPos = -1
)

// fnvOffsetBasis and fnvPrime are the standard FNV-1a constants; hashString
// seeds the basis with the caller-supplied seed so two calls with
// different seeds over the same strings land in different slots, as
// spec §4.E step 4 requires ("compute a 64-bit hash (seeded)").
const (
	fnvOffsetBasis = 0xcbf29ce484222325
	fnvPrime       = 0x100000001b3
)

func hashString(seed uint64, s []byte) uint64 {
	h := seed ^ fnvOffsetBasis
	for _, b := range s {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return h
}

// intersectTable is the open-addressed hash table from spec §3 "Hash
// slot": positions[slots] followed by hashes[slots] in one allocation, so
// the probe loop scans dense hashes without loading the index column
// unless a candidate hash matches.
type intersectTable struct {
	raw       []byte
	positions []int
	hashes    []uint64
	mask      uint64
}

func newIntersectTable(alloc Allocator, slots int) (*intersectTable, error) {
	raw, err := alloc.Allocate(slots*8 + slots*8)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	t := &intersectTable{
		raw:       raw,
		positions: unsafe.Slice((*int)(unsafe.Pointer(&raw[0])), slots),
		hashes:    unsafe.Slice((*uint64)(unsafe.Pointer(&raw[slots*8])), slots),
		mask:      uint64(slots - 1),
	}
	t.reset()
	return t, nil
}

// reset marks every slot empty, matching the "re-zeroed between passes"
// requirement the wide variant relies on (spec §4.E, §9 open question).
func (t *intersectTable) reset() {
	for i := range t.positions {
		t.positions[i] = emptyPos
		t.hashes[i] = ^uint64(0)
	}
}

func (t *intersectTable) free(alloc Allocator) {
	alloc.Free(t.raw)
}

// insert writes (hash, index) via linear probing from hash&mask. No
// deduplication check: a duplicate string is inserted again in a fresh
// slot, per spec §4.E step 4.
func (t *intersectTable) insert(hash uint64, index int) {
	i := hash & t.mask
	for t.positions[i] != emptyPos {
		i = (i + 1) & t.mask
	}
	t.positions[i] = index
	t.hashes[i] = hash
}

// probe returns the build-side index matching (hash, s) against build, or
// -1 if no slot verifies. It stops at the first empty slot, per standard
// open addressing.
func (t *intersectTable) probe(hash uint64, s []byte, build Collection) int {
	i := hash & t.mask
	for t.positions[i] != emptyPos {
		if t.hashes[i] == hash {
			bi := t.positions[i]
			if bytes.Equal(build.At(bi), s) {
				return bi
			}
		}
		i = (i + 1) & t.mask
	}
	return -1
}

// Intersect pairs matching strings across a and b (spec §4.E). posA and
// posB must each have capacity min(a.Len(), b.Len()); Intersect writes the
// matched index pairs into their first count slots. Emission order follows
// the probe-side (larger collection's) traversal order, not guaranteed
// otherwise (spec §3 "Intersect output").
func Intersect(a, b Collection, alloc Allocator, seed uint64, posA, posB []int) (int, error) {
	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return 0, nil
	}

	var small, large Collection
	smallIsA := na <= nb
	if smallIsA {
		small, large = a, b
	} else {
		small, large = b, a
	}

	slots := nextPow2(small.Len()) << intersectBudget
	table, err := newIntersectTable(alloc, slots)
	if err != nil {
		return 0, err
	}
	defer table.free(alloc)

	for i := 0; i < small.Len(); i++ {
		s := small.At(i)
		table.insert(hashString(seed, s), i)
	}

	count := 0
	for i := 0; i < large.Len(); i++ {
		s := large.At(i)
		bi := table.probe(hashString(seed, s), s, small)
		if bi < 0 {
			continue
		}
		if smallIsA {
			posA[count], posB[count] = bi, i
		} else {
			posA[count], posB[count] = i, bi
		}
		count++
	}
	return count, nil
}
