package solver

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

// TestGenerateCatalog rebuilds the catalog from scratch and checks it
// against the static table.  This is the full 2^26 search; skipped in
// -short runs.
func TestGenerateCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("regenerating the catalog runs the full enumeration")
	}
	tasks, err := GenerateCatalog()
	assert.NoError(t, err)
	assert.EQ(t, len(tasks), numTasks)
	for i, task := range tasks {
		expect.EQ(t, task.Prefix, taskPrefix[i], "task %d", i)
		expect.EQ(t, task.Occ, taskOcc[i], "task %d", i)
		expect.EQ(t, task.Count, taskCount[i], "task %d", i)
	}
}
