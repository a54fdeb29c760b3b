package solver

import (
	"math/bits"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"

	"github.com/imaami/dbs26/debruijn"
)

func TestCatalogShape(t *testing.T) {
	assert.EQ(t, numTasks, 186)
	assert.EQ(t, len(taskPrefix), numTasks)
	assert.EQ(t, len(taskOcc), numTasks)

	var sum uint64
	for _, c := range taskCount {
		if c == 0 {
			t.Fatal("catalog contains an empty task")
		}
		sum += uint64(c)
	}
	expect.EQ(t, sum, uint64(TotalSequences))
}

func TestCatalogPrefixes(t *testing.T) {
	for i, p := range taskPrefix {
		// Canonical form: the zero window pinned at bits 62..57 of the
		// eventual sequence puts 0x81 in the seed's high byte.
		expect.EQ(t, p>>8, uint16(0x81), "task %d", i)
		if i > 0 && taskPrefix[i-1] >= p {
			t.Fatalf("task %d: prefixes not strictly ascending", i)
		}
	}
}

func TestCatalogOccupancy(t *testing.T) {
	for i, occ := range taskOcc {
		expect.EQ(t, bits.OnesCount64(occ), 11, "task %d", i)
		expect.EQ(t, debruijn.Occupy(uint64(taskPrefix[i]), 0, prefixWindows), occ,
			"task %d: occupancy does not match prefix windows", i)
	}
}

func TestCatalogCountBounds(t *testing.T) {
	var min, max uint32 = taskCount[0], taskCount[0]
	for _, c := range taskCount {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	expect.EQ(t, min, uint32(98304))
	expect.EQ(t, max, uint32(1245184))
}

func TestViablePrefixes(t *testing.T) {
	viable := ViablePrefixes()
	// 198 prefixes survive the window-collision test; 12 of them have
	// empty subtrees and are absent from the catalog.
	assert.EQ(t, len(viable), 198)

	occByPrefix := make(map[uint16]uint64, len(viable))
	for _, v := range viable {
		occByPrefix[v.Prefix] = v.Occ
	}
	for i, p := range taskPrefix {
		occ, ok := occByPrefix[p]
		if !ok {
			t.Fatalf("task %d: prefix %#04x not viable", i, p)
		}
		expect.EQ(t, occ, taskOcc[i], "task %d", i)
	}
}
