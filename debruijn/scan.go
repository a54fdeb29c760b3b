// SPDX-License-Identifier: LGPL-3.0-or-later

package debruijn

import (
	"math/bits"

	"github.com/imaami/dbs26/bitrun"
)

// frame is one suspended level of the depth-first search: the inclusive
// upper bound of the level's candidate walk, and the occupancy snapshot
// at level entry.
type frame struct {
	end uint64
	occ uint64
}

// Stack holds the search state for one task.  The frame array is sized so
// that a 16-bit seed prefix plus one six-bit extension per frame fills all
// 64 bits; the search never allocates.
//
// A Stack is single-use state for a sequence of Scan calls on one
// goroutine; call Reset before reusing it for another task.
type Stack struct {
	sp     int
	frames [searchDepth - 1]frame
}

// Reset rewinds the stack to depth zero.  The frame contents need no
// clearing; Scan overwrites the current frame before descending.
func (s *Stack) Reset() { s.sp = 0 }

// Scan extends the partial sequence seq, whose occupied windows are
// recorded in occ, by one six-bit chunk per recursion level, and writes
// every completed De Bruijn sequence below this subtree to dst in
// ascending order.  Returns the number of sequences written.  dst must
// have room for the full subtree.
//
// The chunk walk bounds come from the occupancy word itself: the run of
// one-bits at the top of occ forbids the largest chunk values, and the
// run at the bottom forbids the smallest.
func Scan(stk *Stack, dst []uint64, seq, occ uint64) uint32 {
	seq <<= WindowLen
	stk.frames[stk.sp] = frame{
		end: seq + windowMask - uint64(bitrun.OnesMSB64(occ)),
		occ: occ,
	}
	seq += uint64(bitrun.OnesLSB64(occ))
	if stk.sp < len(stk.frames)-1 {
		return scanMid(stk, dst, seq)
	}
	return scanLeaf(stk, dst, seq)
}

// scanMid walks the candidate chunks of one non-terminal level, recursing
// into Scan for every chunk whose six fresh windows are collision-free.
func scanMid(stk *Stack, dst []uint64, seq uint64) uint32 {
	end := stk.frames[stk.sp].end
	occ := stk.frames[stk.sp].occ
	var n uint32

	for stk.sp++; ; seq++ {
		if m := Occupy(seq, occ, WindowLen); m != 0 {
			n += Scan(stk, dst[n:], seq, m)
		}
		if seq == end {
			break
		}
	}

	stk.sp--
	return n
}

// scanLeaf walks the candidate chunks of the deepest level.  A chunk that
// passes the usual six-window probe yields a full 64-bit candidate; only
// the five wrap-around windows remain unchecked, so the candidate is
// rotated left by five to put them in probe position.  Survivors are
// emitted.
func scanLeaf(stk *Stack, dst []uint64, seq uint64) uint32 {
	end := stk.frames[stk.sp].end
	occ := stk.frames[stk.sp].occ
	var n uint32

	for ; ; seq++ {
		if m := Occupy(seq, occ, WindowLen); m != 0 {
			q := occupySeq(bits.RotateLeft64(seq, WindowLen-1), m, WindowLen-1)
			if q != 0 {
				dst[n] = q
				n++
			}
		}
		if seq == end {
			break
		}
	}

	return n
}
