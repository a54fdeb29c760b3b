package solver

import (
	"github.com/grailbio/base/traverse"

	"github.com/imaami/dbs26/debruijn"
)

// Task is one generated catalog entry.
type Task struct {
	Prefix uint16
	Occ    uint64
	Count  uint32
}

// prefixWindows is the number of complete six-bit windows in a 16-bit
// seed prefix: offsets 0 through 10.
const prefixWindows = 16 - debruijn.WindowLen + 1

// genBufWords bounds a single subtree's output during generation, when
// the exact counts are not yet known.  The largest subtree of any 16-bit
// prefix holds well under two million sequences; four million words
// leaves ample headroom without approaching the 2^26 full-space size.
const genBufWords = 4 << 20

// ViablePrefixes enumerates the 16-bit seed prefixes that can begin a
// canonical sequence, paired with their induced occupancy bitmaps.  Every
// complete sequence contains the all-zeros window exactly once; pinning
// it to bits 62..57 picks one rotation per cyclic class, and forces bits
// 63 and 56 to be set (a clear bit on either side would extend the zero
// run and duplicate the window).  The viable prefixes are therefore
// exactly the values with 0x81 in the high byte whose own 11 windows are
// collision-free.
func ViablePrefixes() []Task {
	var tasks []Task
	for p := 0x8100; p <= 0x81ff; p++ {
		occ := debruijn.Occupy(uint64(p), 0, prefixWindows)
		if occ != 0 {
			tasks = append(tasks, Task{Prefix: uint16(p), Occ: occ})
		}
	}
	return tasks
}

// GenerateCatalog rebuilds the task catalog from first principles:
// enumerate the viable seed prefixes, run the full search under each one
// to count its completions, and keep the prefixes with non-empty
// subtrees.  The result must match the static catalog exactly; the
// static table is just this computation done offline.
//
// This runs the entire 2^26-sequence search and is priced accordingly;
// it exists to cross-check the static table, not to serve production
// startup.
func GenerateCatalog() ([]Task, error) {
	cand := ViablePrefixes()
	err := traverse.Each(len(cand), func(i int) error {
		var stk debruijn.Stack
		dst := make([]uint64, genBufWords)
		cand[i].Count = debruijn.Scan(&stk, dst, uint64(cand[i].Prefix), cand[i].Occ)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tasks := cand[:0]
	for _, t := range cand {
		if t.Count != 0 {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}
