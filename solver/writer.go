package solver

import (
	"context"
	"io"
	"os"
	"unsafe"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// u64Bytes reinterprets v as its in-memory byte representation.  The
// output format is raw native-endian words, so no per-word encoding pass
// is wanted.
func u64Bytes(v []uint64) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*8)
}

// writeViews concatenates the non-empty views to w, stopping at the first
// write error.
func writeViews(w io.Writer, views [][]uint64) error {
	for _, v := range views {
		if len(v) == 0 {
			continue
		}
		if _, err := w.Write(u64Bytes(v)); err != nil {
			return err
		}
	}
	return nil
}

// write streams the task buffers to the sink in catalog order.  "-"
// selects standard output; anything else is created (truncated) as a
// file.  Write errors on a named file are diagnosed on standard error;
// errors on standard output are deliberately silent, since the reader on
// the other end of a pipe reports its own failures.  Either way the
// failure stops the stream without touching the process exit status.
func (s *Solver) write(ctx context.Context, out string) {
	if out == "-" {
		// Go never opens stdout in text mode, so raw bytes pass through
		// unmangled on every platform.
		_ = writeViews(os.Stdout, s.results[:])
		return
	}

	f, err := file.Create(ctx, out)
	if err != nil {
		log.Error.Printf("%v", errors.E(err, "create", out))
		return
	}
	log.Printf("Saving to %s", out)

	if err := writeViews(f.Writer(ctx), s.results[:]); err != nil {
		log.Error.Printf("%v", errors.E(err, "write", out))
	}
	if err := f.Close(ctx); err != nil {
		log.Error.Printf("%v", errors.E(err, "close", out))
	}
}
