// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
)

//go:generate go run scripts/embedversion.go

var appName = "pa-cycle-profile"

var version = "unknown" // will be changed by build

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	prog := filepath.Base(os.Args[0])
	os.Exit(run(ctx, prog, os.Args[1:], os.Stdout, os.Stderr))
}

// run does everything main does except exiting, and returns the exit code.
func run(ctx context.Context, prog string, args []string, stdout, stderr io.Writer) int {
	log.SetOutput(io.Discard)

	opt, err := parseCLIOpts(prog, args, stdout)
	if errors.Is(err, errExitEarly) {
		return 0
	}
	if err != nil {
		report(stderr, prog, err)
		return 1
	}

	if opt.debug {
		log.SetOutput(stderr)
	}

	conf, err := readConfig(configDir())
	if err != nil {
		report(stderr, prog, err)
		return 1
	}
	if conf.Debug && !opt.debug {
		opt.debug = true
		log.SetOutput(stderr)
	}
	log.Printf("%s starting. Version: %s\n", appName, version)

	loop := newMainloop()
	pa := newPAContext(loop, conf.serverAddress())
	defer pa.Close()

	s := newSession(opt, loop, pa)
	if conf.Notify {
		s.notify = notifySwitch
	}

	retval, err := s.run(ctx)
	if err != nil {
		report(stderr, prog, err)
		return 1
	}
	return retval
}
