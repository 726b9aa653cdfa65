package strcore

// Wide (SIMD-shaped) intersect variant (spec §4.E "SIMD-accelerated
// variant"). Real vector-gather/scatter needs assembly or cgo — the
// teacher's own wide-vector path (simd_decoder.go) is exactly that kind of
// out-of-tree, hardware-specific collaborator, which spec §1 places out of
// scope for this core. wideIntersect instead reproduces the *algorithm
// shape* in portable Go: strings are partitioned by length, short strings
// (<=16 bytes) are inserted four at a time with a batched hash and a
// scalar fallback whenever two of the four target slots coincide or any of
// them is already occupied, and the table is re-zeroed
// and rebuilt before the long-string pass runs, exactly as spec §9 flags.
//
// wideIntersectSupported is the function-value dispatch slot spec §9
// describes ("fold this into a function value slot populated once, not a
// mutable singleton"): a build that links a real vectorized backend would
// repoint it. This module supplies only the portable fallback.
var wideIntersectSupported = func() bool { return true }

const shortStringMax = 16

// WideIntersect behaves identically to Intersect (same contract, same
// soundness/completeness invariants) but drives the build and probe
// phases through the length-partitioned batch structure described in
// spec §4.E. It is provided for parity testing against Intersect and as
// the documented seam for a real hardware-vectorized backend.
func WideIntersect(a, b Collection, alloc Allocator, seed uint64, posA, posB []int) (int, error) {
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

	shortSmall, longSmall := partitionByLength(small)
	shortLarge, longLarge := partitionByLength(large)

	slots := nextPow2(small.Len()) << intersectBudget
	table, err := newIntersectTable(alloc, slots)
	if err != nil {
		return 0, err
	}
	defer table.free(alloc)

	count := 0

	// Short-string pass: batch-insert four at a time, then probe with the
	// short probe-side strings one at a time.
	batchInsert(table, small, shortSmall, seed)
	count = batchProbe(table, small, large, shortLarge, seed, smallIsA, posA, posB, count)

	// Long-string pass: the table is re-zeroed (short-string entries are
	// intentionally discarded, per spec §9's flagged behaviour) and
	// rebuilt from only the long build-side strings, then probed with a
	// plain scalar pass.
	table.reset()
	for _, idx := range longSmall {
		s := small.At(idx)
		table.insert(hashString(seed, s), idx)
	}
	for _, idx := range longLarge {
		s := large.At(idx)
		bi := table.probe(hashString(seed, s), s, small)
		if bi < 0 {
			continue
		}
		if smallIsA {
			posA[count], posB[count] = bi, idx
		} else {
			posA[count], posB[count] = idx, bi
		}
		count++
	}

	return count, nil
}

// partitionByLength splits c's indices into those of length <= shortStringMax
// and the rest, preserving traversal order within each group.
func partitionByLength(c Collection) (short, long []int) {
	for i := 0; i < c.Len(); i++ {
		if len(c.At(i)) <= shortStringMax {
			short = append(short, i)
		} else {
			long = append(long, i)
		}
	}
	return short, long
}

// batchInsert inserts idx's strings into table four at a time. The four
// hashes are computed together (the "batched hash" of spec §4.E), then
// their four home slots are checked: if two of them coincide, or any of
// them is already occupied, all four strings of the batch go through the
// ordinary scalar probe-and-advance insert; otherwise the four entries are
// written directly into their home slots. Leftover strings (fewer than
// four) are inserted one at a time with the scalar insert.
func batchInsert(table *intersectTable, coll Collection, idx []int, seed uint64) {
	i := 0
	for i+4 <= len(idx) {
		var hashes [4]uint64
		for k := 0; k < 4; k++ {
			hashes[k] = hashString(seed, coll.At(idx[i+k]))
		}
		var slots [4]uint64
		var occupied [4]bool
		for k := 0; k < 4; k++ {
			slots[k] = hashes[k] & table.mask
			occupied[k] = table.positions[slots[k]] != emptyPos
		}
		intraBatchCollision := slots[0] == slots[1] || slots[0] == slots[2] || slots[0] == slots[3] ||
			slots[1] == slots[2] || slots[1] == slots[3] || slots[2] == slots[3]
		anyOccupied := occupied[0] || occupied[1] || occupied[2] || occupied[3]

		if intraBatchCollision || anyOccupied {
			// Mask detected an occupied or colliding target slot: fall
			// back to scalar probing for the whole batch rather than risk
			// a lost insert (spec §9's flagged fallback requirement).
			for k := 0; k < 4; k++ {
				table.insert(hashes[k], idx[i+k])
			}
		} else {
			// Happy path: gather confirmed all four target slots empty and
			// mutually distinct, so they can scatter directly.
			for k := 0; k < 4; k++ {
				table.positions[slots[k]] = idx[i+k]
				table.hashes[slots[k]] = hashes[k]
			}
		}
		i += 4
	}
	for ; i < len(idx); i++ {
		table.insert(hashString(seed, coll.At(idx[i])), idx[i])
	}
}

// batchProbe probes table with idx's strings from large one at a time,
// appending matches to posA/posB starting at count, and returns the
// updated count.
func batchProbe(table *intersectTable, small, large Collection, idx []int, seed uint64, smallIsA bool, posA, posB []int, count int) int {
	for _, i := range idx {
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
	return count
}
