// dbs26 generates all 67108864 binary De Bruijn sequences with
// subsequence length 6, ordered by value, as raw native-endian 64-bit
// words.
package main

import (
	"fmt"
	"os"

	"github.com/grailbio/base/vcontext"

	"github.com/imaami/dbs26/solver"
)

func usage() {
	name := os.Args[0]
	fmt.Fprintf(os.Stderr,
		`Usage: %s [-o <file>] [-t <n>]
       %s -b [-t <n>]
       %s -h

Generates all binary De Bruijn sequences with subsequence
length 6 (all 67108864 of them).

Options:
  -h, --help            Print this help message and exit
  -b, --benchmark       Only benchmark, don't output data
  -o, --output <file>   Save output to <file> (dbs26.bin)
  -t, --threads <n>     Use <n> threads (available cores)

When no arguments are given, computes the sequences using
all available logical CPUs and saves them to a file named
dbs26.bin in the current directory. Output data is always
raw binary uint64 data in the native endianness.

Specifying the output file as a dash ('-') will print the
sequences to standard output in binary mode. Only do this
when redirecting the output to a file or another program.

On systems where xxd is available you can view the output
with the following (or similar) command:

  %s -o- | xxd -e -g8 | less

Note: the size of the raw output is 512 MiB - be careful!
`, name, name, name, name)
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		usage()
		os.Exit(1)
	}
	if a.help() {
		usage()
		return
	}

	s := solver.New(int(a.threads))
	s.Solve(vcontext.Background(), a.sink())
}
