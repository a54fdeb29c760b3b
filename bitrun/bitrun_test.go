package bitrun_test

import (
	"testing"

	"github.com/grailbio/testutil/expect"

	"github.com/imaami/dbs26/bitrun"
)

func TestOnesLSB64(t *testing.T) {
	expect.EQ(t, bitrun.OnesLSB64(0), uint(0))
	expect.EQ(t, bitrun.OnesLSB64(1), uint(1))
	expect.EQ(t, bitrun.OnesLSB64(0b0111), uint(3))
	expect.EQ(t, bitrun.OnesLSB64(0b1011), uint(2))
	expect.EQ(t, bitrun.OnesLSB64(0xfffffffffffffffe), uint(0))
	expect.EQ(t, bitrun.OnesLSB64(0x7fffffffffffffff), uint(63))
	expect.EQ(t, bitrun.OnesLSB64(^uint64(0)), uint(64))
}

func TestOnesMSB64(t *testing.T) {
	expect.EQ(t, bitrun.OnesMSB64(0), uint(0))
	expect.EQ(t, bitrun.OnesMSB64(1), uint(0))
	expect.EQ(t, bitrun.OnesMSB64(uint64(1)<<63), uint(1))
	expect.EQ(t, bitrun.OnesMSB64(0xe000000000000000), uint(3))
	expect.EQ(t, bitrun.OnesMSB64(0xfffffffffffffffe), uint(63))
	expect.EQ(t, bitrun.OnesMSB64(^uint64(0)), uint(64))
}

func TestOnesLSB32(t *testing.T) {
	expect.EQ(t, bitrun.OnesLSB32(0), uint(0))
	expect.EQ(t, bitrun.OnesLSB32(0b0101), uint(1))
	expect.EQ(t, bitrun.OnesLSB32(0x0000ffff), uint(16))
	expect.EQ(t, bitrun.OnesLSB32(^uint32(0)), uint(32))
}

func TestOnesMSB32(t *testing.T) {
	expect.EQ(t, bitrun.OnesMSB32(0), uint(0))
	expect.EQ(t, bitrun.OnesMSB32(uint32(1)<<31), uint(1))
	expect.EQ(t, bitrun.OnesMSB32(0xffff0000), uint(16))
	expect.EQ(t, bitrun.OnesMSB32(^uint32(0)), uint(32))
}

// The search depends on the run counters agreeing at the boundary between
// a run and the first clear bit, for every run length.
func TestRunBoundaries(t *testing.T) {
	for n := uint(0); n < 64; n++ {
		low := uint64(1)<<n - 1
		expect.EQ(t, bitrun.OnesLSB64(low), n, "low run %d", n)
		expect.EQ(t, bitrun.OnesMSB64(^low), 64-n, "high run %d", n)
	}
}
