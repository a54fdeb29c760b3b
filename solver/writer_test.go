package solver

import (
	"bytes"
	"errors"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestU64Bytes(t *testing.T) {
	expect.Nil(t, u64Bytes(nil))
	expect.Nil(t, u64Bytes([]uint64{}))

	v := []uint64{0x0102030405060708, 0x1112131415161718}
	b := u64Bytes(v)
	assert.EQ(t, len(b), 16)
	// Native byte order: the view must alias the slice's memory, not
	// re-encode it.
	b[0] ^= 0xff
	defer func() { b[0] ^= 0xff }()
	if v[0] == 0x0102030405060708 {
		t.Fatal("u64Bytes copied instead of aliasing")
	}
}

func TestWriteViews(t *testing.T) {
	views := [][]uint64{{1, 2, 3}, nil, {4}, {}, {5, 6}}
	var buf bytes.Buffer
	assert.NoError(t, writeViews(&buf, views))
	assert.EQ(t, buf.Len(), 6*8)
	expect.EQ(t, buf.Bytes(), u64Bytes([]uint64{1, 2, 3, 4, 5, 6}))
}

// failWriter accepts okWrites writes and then fails.
type failWriter struct {
	okWrites int
	writes   int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.okWrites {
		return 0, errors.New("synthetic write failure")
	}
	return len(p), nil
}

func TestWriteViewsStopsOnError(t *testing.T) {
	views := [][]uint64{{1}, {2}, {3}}
	w := &failWriter{okWrites: 1}
	if err := writeViews(w, views); err == nil {
		t.Fatal("write error not propagated")
	}
	// One successful write, one failed write, and no writes after the
	// failure.
	assert.EQ(t, w.writes, 2)
}
