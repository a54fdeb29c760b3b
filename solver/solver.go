// SPDX-License-Identifier: LGPL-3.0-or-later

// Package solver runs the parallel De Bruijn enumeration: it fans the 186
// catalog tasks out over a pool of workers, collects the per-task result
// buffers, and streams them to the output sink in catalog order.
package solver

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grailbio/base/log"

	"github.com/imaami/dbs26/debruijn"
)

// Solver owns the task result slots and the dispatcher state.  Each
// result slot is written by exactly one worker (the one that claimed the
// slot's task id) and read only after Run returns; the claim counter is
// the only shared mutable word during the search.
type Solver struct {
	results  [numTasks][]uint64
	taskIter int32
	nWorkers int
}

// New returns a Solver that will run with the given number of worker
// goroutines.  threads == 0 selects one worker per logical CPU.
func New(threads int) *Solver {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	log.Printf("Using %d threads", threads)
	return &Solver{taskIter: -int32(numTasks), nWorkers: threads}
}

// Workers returns the worker count the Solver was configured with.
func (s *Solver) Workers() int { return s.nWorkers }

// claimTask pops the next unclaimed task id from the shared counter.
// Claims hand out ids in descending catalog order, so the large subtrees
// clustered at the end of the catalog are picked up first and short tasks
// backfill the stragglers.  ok is false once every task has been claimed;
// last reports that this claim took the final task, letting the claimer
// skip one futile counter bump.
//
// A relaxed-style bare atomic add is all the ordering this needs: each
// result slot is written before its worker exits, and the caller of Run
// observes the slots only across the join.  The counter starts at
// -numTasks and is bumped at most once per worker past zero, nowhere near
// the int32 range.
func (s *Solver) claimTask() (id int, last, ok bool) {
	i := atomic.AddInt32(&s.taskIter, 1) - 1
	if i >= 0 {
		return 0, false, false
	}
	return int(-1 - i), i == -1, true
}

// runTask solves one catalog task: it allocates the exactly-sized result
// buffer, runs the search from the task's seed, and returns the filled
// buffer.  A count mismatch means the catalog or the search is broken;
// the buffer is dropped and the task contributes nothing.
func runTask(stk *debruijn.Stack, id int) []uint64 {
	dst := make([]uint64, taskCount[id])
	stk.Reset()
	n := debruijn.Scan(stk, dst, uint64(taskPrefix[id]), taskOcc[id])
	if n != taskCount[id] {
		log.Error.Printf("task %d: generated %d sequences, want %d", id, n, taskCount[id])
		return nil
	}
	return dst
}

// worker drains the task counter, solving every claimed task with one
// stack, and returns the number of sequences it produced.
func (s *Solver) worker() uint64 {
	var stk debruijn.Stack
	var n uint64
	for {
		id, last, ok := s.claimTask()
		if !ok {
			break
		}
		s.results[id] = runTask(&stk, id)
		n += uint64(len(s.results[id]))
		if last {
			break
		}
	}
	return n
}

// Run launches the worker pool, joins it, and returns the total number of
// sequences produced.  Timing covers the whole spawn-to-join span and is
// reported to standard error.
func (s *Solver) Run() uint64 {
	start := time.Now()
	counts := make([]uint64, s.nWorkers)
	var wg sync.WaitGroup
	for w := 0; w < s.nWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			counts[w] = s.worker()
		}(w)
	}
	wg.Wait()

	var total uint64
	for _, c := range counts {
		total += c
	}
	log.Printf("Generated %d sequences in %.3f ms", total, time.Since(start).Seconds()*1000.0)
	return total
}

// Solve runs the search and, when out is nonempty and the enumeration
// came out complete, writes the results to it.  An empty out means
// benchmark mode: the search runs, the timing is reported, and nothing is
// written.  An incomplete enumeration skips the writer; the per-task
// failures were already diagnosed where they happened, and neither they
// nor write errors affect the caller — runtime failures after a
// successful parse are reported on standard error only.
func (s *Solver) Solve(ctx context.Context, out string) {
	total := s.Run()
	if out == "" || total != TotalSequences {
		return
	}
	s.write(ctx, out)
}

// Results returns the per-task result views in catalog order.  Valid only
// after Run has returned; a nil entry marks a failed task.
func (s *Solver) Results() [][]uint64 { return s.results[:] }
