// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// optSet is a bitmask over the recognized options.
type optSet uint32

const (
	optOutput optSet = 1 << iota
	optThreads
	optBenchmark
	optHelp
)

// allowedCombos is a bitmask indexed by optSet value: bit c set means the
// option combination c is accepted.  Benchmark mode excludes an output
// sink, and help excludes everything.
const allowedCombos = 1<<0 |
	1<<optOutput |
	1<<optThreads |
	1<<(optOutput|optThreads) |
	1<<optBenchmark |
	1<<(optThreads|optBenchmark) |
	1<<optHelp

func (o optSet) conflict() bool {
	return allowedCombos>>o&1 == 0
}

// args is the parsed command line.
type args struct {
	have    optSet
	output  string
	threads uint32
}

func (a *args) help() bool { return a.have&optHelp != 0 }

// sink returns the output path the solver should write to, applying the
// default: no explicit output and no benchmark flag means dbs26.bin, and
// benchmark mode means no sink at all.
func (a *args) sink() string {
	if a.have&(optBenchmark|optOutput) == 0 {
		return "dbs26.bin"
	}
	return a.output
}

func (a *args) setOutput(v string) error {
	if v == "" {
		return errors.E("empty output path")
	}
	a.have |= optOutput
	a.output = v
	return nil
}

func (a *args) setThreads(v string) error {
	// Base 0: accept the same decimal/octal/hex spellings strtol did.
	n, err := strconv.ParseUint(v, 0, 32)
	if err != nil {
		return errors.E("invalid thread count", v)
	}
	if n == 0 {
		return errors.E("thread count must be at least 1")
	}
	a.have |= optThreads
	a.threads = uint32(n)
	return nil
}

// parseArgs parses argv (without the program name).  Short options
// bundle; -o and -t consume the remainder of their cluster as the
// argument, or the next argv element when the cluster ends.  Long options
// take their argument after '=' or as the next element.
func parseArgs(argv []string) (args, error) {
	var a args
	var pending optSet

	for _, arg := range argv {
		switch pending {
		case optOutput:
			pending = 0
			if err := a.setOutput(arg); err != nil {
				return a, err
			}
			continue
		case optThreads:
			pending = 0
			if err := a.setThreads(arg); err != nil {
				return a, err
			}
			continue
		}

		switch {
		case arg == "--benchmark":
			a.have |= optBenchmark
		case arg == "--help":
			a.have |= optHelp
		case arg == "--output":
			pending = optOutput
		case strings.HasPrefix(arg, "--output="):
			if err := a.setOutput(arg[len("--output="):]); err != nil {
				return a, err
			}
		case arg == "--threads":
			pending = optThreads
		case strings.HasPrefix(arg, "--threads="):
			if err := a.setThreads(arg[len("--threads="):]); err != nil {
				return a, err
			}
		case len(arg) > 1 && arg[0] == '-' && arg[1] != '-':
			var err error
			pending, err = a.parseCluster(arg[1:])
			if err != nil {
				return a, err
			}
		default:
			return a, errors.E("unrecognized argument", arg)
		}
	}

	if pending != 0 {
		return a, errors.E("missing option argument")
	}
	if a.have.conflict() {
		return a, errors.E("conflicting options")
	}
	return a, nil
}

// parseCluster walks one bundled short-option cluster (leading dash
// stripped).  An argument-taking option swallows the rest of the cluster
// when anything follows it; otherwise the argument is expected in the
// next argv element, signalled through the returned optSet.
func (a *args) parseCluster(cluster string) (optSet, error) {
	for i := 0; i < len(cluster); i++ {
		switch cluster[i] {
		case 'b':
			a.have |= optBenchmark
		case 'h':
			a.have |= optHelp
		case 'o':
			if rest := cluster[i+1:]; rest != "" {
				return 0, a.setOutput(rest)
			}
			return optOutput, nil
		case 't':
			if rest := cluster[i+1:]; rest != "" {
				return 0, a.setThreads(rest)
			}
			return optThreads, nil
		default:
			return 0, errors.E("unrecognized option", "-"+string(cluster[i]))
		}
	}
	return 0, nil
}
