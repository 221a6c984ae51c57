// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type cliOpts struct {
	prog     string
	debug    bool
	cardName string
	profiles profileList
}

// errExitEarly means the command line was fully handled (help or version
// output) and the program should exit successfully.
var errExitEarly = errors.New("nothing left to do")

// knownFlags are matched literally. Anything else starting with "-",
// including "-", "--" and combined shorthands, is rejected.
var knownFlags = map[string]bool{
	"-d":        true,
	"--debug":   true,
	"-h":        true,
	"--help":    true,
	"--version": true,
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w,
		"usage: %s [-d|--debug] [-h|--help] <card name> <profile> <profile> [<profile>...]\n"+
			"\t-d, --debug    enable debug output\n"+
			"\t-h, --help     print this help message\n",
		prog)
}

// helpRequested reports whether -h or --help appears anywhere. Help wins
// over every other argument, including ones that would be rejected.
func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func parseCLIOpts(prog string, args []string, stdout io.Writer) (*cliOpts, error) {
	if helpRequested(args) {
		usage(stdout, prog)
		return nil, errExitEarly
	}

	for _, arg := range args {
		if len(arg) > 0 && arg[0] == '-' && !knownFlags[arg] {
			return nil, usageErrorf("unknown flag: %s", arg)
		}
	}

	opt := &cliOpts{prog: prog}
	var showVersion bool

	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)
	fs.BoolVarP(&opt.debug, "debug", "d", false, "enable debug output")
	fs.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, usageErrorf("%v", err)
	}

	if showVersion {
		fmt.Fprintln(stdout, version)
		return nil, errExitEarly
	}

	rest := fs.Args()
	if len(rest) < 3 {
		return nil, usageErrorf("too few arguments")
	}

	opt.cardName = rest[0]
	for _, p := range rest[1:] {
		opt.profiles.Append(p)
	}
	return opt, nil
}
