// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// fatalError ends the program with a non-zero exit status. Callbacks return
// one instead of exiting so that only main ever calls os.Exit.
type fatalError struct {
	msg       string
	server    string // error text reported by the audio server, if any
	showUsage bool
}

func (e *fatalError) Error() string {
	if e.server != "" {
		return e.msg + ": " + e.server
	}
	return e.msg
}

func fatalf(format string, args ...interface{}) *fatalError {
	return &fatalError{msg: fmt.Sprintf(format, args...)}
}

func usageErrorf(format string, args ...interface{}) *fatalError {
	return &fatalError{msg: fmt.Sprintf(format, args...), showUsage: true}
}

// serverErrorf appends the last error the audio server reported on c.
func serverErrorf(c audioContext, format string, args ...interface{}) *fatalError {
	return &fatalError{msg: fmt.Sprintf(format, args...), server: c.Strerror()}
}

// report writes err to w, followed by the usage text when it asks for it.
func report(w io.Writer, prog string, err error) {
	fmt.Fprintln(w, err.Error())
	var fe *fatalError
	if errors.As(err, &fe) && fe.showUsage {
		usage(w, prog)
	}
}
