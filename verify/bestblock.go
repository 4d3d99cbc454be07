package verify

// MaxDifference is the greatest difference a single block can have: 99
// tracks plus the id flag.
const MaxDifference = 100

// BestBlock identifies the block and ARCS variant with the fewest
// mismatches against the reference. Ties are broken toward the higher
// variant (v2 wins over v1); among differences equal under v2, the
// last-seen block wins, matching a stable forward scan.
//
// It returns (block, isV2, difference). On an empty Result it returns
// (-1, false, MaxDifference).
func BestBlock(r Result) (int, bool, int) {
	if r.TotalBlocks() == 0 {
		return -1, false, MaxDifference
	}

	block := 0
	isV2 := false
	best := MaxDifference

	for b := 0; b < r.TotalBlocks(); b++ {
		d1, _ := r.Difference(b, false)
		d2, _ := r.Difference(b, true)

		// Note the <= for v2: among equal differences, the last block
		// scanned wins. v1 only displaces the current best on a strict
		// improvement, so v2 is always preferred on a tie.
		if d2 <= best || d1 < best {
			block = b
			isV2 = d2 <= d1
			if isV2 {
				best = d2
			} else {
				best = d1
			}
		}
	}

	return block, isV2, best
}
