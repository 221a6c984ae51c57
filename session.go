// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"context"
	"log"
)

// contextState mirrors the connection states of a PulseAudio client context.
// The numeric values are the ones libpulse uses, so debug output lines up
// with other PulseAudio tooling.
type contextState int

const (
	stateUnconnected contextState = iota
	stateConnecting
	stateAuthorizing
	stateSettingName
	stateReady
	stateFailed
	stateTerminated
)

type cardInfo struct {
	Index         uint32
	Name          string
	ActiveProfile string
}

// audioContext is the asynchronous connection to the audio server. All
// callbacks are delivered on the mainloop the context was created with.
type audioContext interface {
	SetStateCallback(cb func(state contextState) error)
	Connect() error
	// CardInfoByName calls cb once per matching card with eol == 0, then
	// once more with eol == 1. On failure cb gets a single eol == -1 call.
	CardInfoByName(name string, cb func(info *cardInfo, eol int) error)
	SetCardProfileByName(card, profile string, cb func(success bool) error)
	Disconnect()
	// Strerror describes the last error the server reported.
	Strerror() string
}

type session struct {
	opt  *cliOpts
	loop *mainloop
	pa   audioContext

	requested bool
	target    string

	notify func(card, profile string) error
}

func newSession(opt *cliOpts, loop *mainloop, pa audioContext) *session {
	s := &session{opt: opt, loop: loop, pa: pa}
	pa.SetStateCallback(s.onStateChange)
	return s
}

// run connects and blocks until the profile has been switched and the
// connection is closed, or until something fails.
func (s *session) run(ctx context.Context) (int, error) {
	if err := s.pa.Connect(); err != nil {
		return -1, fatalf("failed to connect: %v", err)
	}
	return s.loop.Run(ctx)
}

func (s *session) onStateChange(state contextState) error {
	switch state {
	case stateConnecting, stateAuthorizing, stateSettingName:
		log.Printf("state = %d\n", state)
		return nil

	case stateReady:
		s.pa.CardInfoByName(s.opt.cardName, s.onCardInfo)
		return nil

	case stateFailed:
		return serverErrorf(s.pa, "unknown error")

	case stateTerminated:
		log.Printf("quitting main loop\n")
		s.loop.Quit(0)
		return nil
	}

	return fatalf("unhandled state change (state = %d)", state)
}

func (s *session) onCardInfo(info *cardInfo, eol int) error {
	if eol < 0 {
		return serverErrorf(s.pa, "error while fetching card %s", s.opt.cardName)
	}

	if eol > 0 {
		if !s.requested {
			return fatalf("card %s not found", s.opt.cardName)
		}
		return nil
	}

	if s.requested {
		// duplicate match, the first one already triggered the switch
		return nil
	}

	next, ok := s.opt.profiles.Next(info.ActiveProfile)
	if !ok {
		return fatalf("active profile (%s) is not in the argument list", info.ActiveProfile)
	}

	log.Printf("active profile is %s, switching to %s\n", info.ActiveProfile, next)

	s.requested = true
	s.target = next
	s.pa.SetCardProfileByName(s.opt.cardName, next, s.onProfileChangeResult)
	return nil
}

func (s *session) onProfileChangeResult(success bool) error {
	log.Printf("success = %d\n", btoi(success))

	if !success {
		return serverErrorf(s.pa, "couldn't switch profile")
	}

	if s.notify != nil {
		if err := s.notify(s.opt.cardName, s.target); err != nil {
			log.Printf("Couldn't send notification: %v\n", err)
		}
	}

	s.pa.Disconnect()
	return nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
