// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/lawl/pulseaudio"
	"github.com/pkg/errors"
)

// cardClient is the part of the audio server client paContext uses.
type cardClient interface {
	Cards() ([]cardInfo, error)
	SetCardProfile(cardIndex uint32, profileName string) error
	Close()
}

// pulseClient adapts a pulseaudio.Client to cardClient.
type pulseClient struct {
	*pulseaudio.Client
}

func (p pulseClient) Cards() ([]cardInfo, error) {
	cards, err := p.Client.Cards()
	if err != nil {
		return nil, err
	}
	infos := make([]cardInfo, len(cards))
	for i := range cards {
		infos[i] = cardInfoFrom(cards[i])
	}
	return infos, nil
}

func cardInfoFrom(card pulseaudio.Card) cardInfo {
	info := cardInfo{Index: card.Index, Name: card.Name}
	if card.ActiveProfile != nil {
		info.ActiveProfile = card.ActiveProfile.Name
	}
	return info
}

func dialPulse(addr string) (cardClient, error) {
	var client *pulseaudio.Client
	var err error
	if addr == "" {
		client, err = pulseaudio.NewClient()
	} else {
		client, err = pulseaudio.NewClient(addr)
	}
	if err != nil {
		return nil, err
	}
	return pulseClient{client}, nil
}

// paContext drives a pulseaudio.Client from the mainloop. The client API is
// blocking, so every request runs on its own goroutine and hands its result
// back to the loop.
type paContext struct {
	loop *mainloop
	addr string
	dial func(addr string) (cardClient, error)

	// only touched from the loop goroutine
	client    cardClient
	state     contextState
	stateCb   func(contextState) error
	cardIndex map[string]uint32

	mu      sync.Mutex
	lastErr error

	closeOnce sync.Once
}

// newPAContext returns a context for the server listening on addr. An empty
// addr means the library's default socket for the current user.
func newPAContext(loop *mainloop, addr string) *paContext {
	return &paContext{
		loop:      loop,
		addr:      addr,
		dial:      dialPulse,
		cardIndex: make(map[string]uint32),
	}
}

func (c *paContext) SetStateCallback(cb func(contextState) error) {
	c.stateCb = cb
}

func (c *paContext) enter(state contextState) {
	c.loop.Post(func() error {
		c.state = state
		if c.stateCb == nil {
			return nil
		}
		return c.stateCb(state)
	})
}

// Connect starts connecting in the background. It never spawns a server.
func (c *paContext) Connect() error {
	if c.state != stateUnconnected {
		return fmt.Errorf("context already in state %d", c.state)
	}
	c.state = stateConnecting
	c.enter(stateConnecting)

	go func() {
		client, err := c.dial(c.addr)
		if err != nil {
			c.setErr(errors.Wrap(err, "couldn't connect to audio server"))
			c.enter(stateFailed)
			return
		}

		c.loop.Post(func() error {
			c.client = client
			return nil
		})
		// NewClient has already authenticated and sent our name by the
		// time it returns, report those steps anyway.
		c.enter(stateAuthorizing)
		c.enter(stateSettingName)
		c.enter(stateReady)
	}()

	return nil
}

func (c *paContext) CardInfoByName(name string, cb func(info *cardInfo, eol int) error) {
	client := c.client
	go func() {
		cards, err := client.Cards()
		if err != nil {
			c.setErr(errors.Wrapf(err, "couldn't fetch card %s", name))
			c.loop.Post(func() error { return cb(nil, -1) })
			return
		}

		for i := range cards {
			if cards[i].Name != name {
				continue
			}
			info := &cards[i]
			c.loop.Post(func() error {
				c.cardIndex[info.Name] = info.Index
				return cb(info, 0)
			})
		}
		c.loop.Post(func() error { return cb(nil, 1) })
	}()
}

func (c *paContext) SetCardProfileByName(card, profile string, cb func(success bool) error) {
	client := c.client
	index, known := c.cardIndex[card]
	go func() {
		var err error
		if !known {
			index, err = lookupCardIndex(client, card)
		}
		if err == nil {
			err = client.SetCardProfile(index, profile)
		}
		if err != nil {
			c.setErr(errors.Wrapf(err, "couldn't set profile %s on card %s", profile, card))
		}
		c.loop.Post(func() error { return cb(err == nil) })
	}()
}

func lookupCardIndex(client cardClient, name string) (uint32, error) {
	cards, err := client.Cards()
	if err != nil {
		return 0, err
	}
	for _, card := range cards {
		if card.Name == name {
			return card.Index, nil
		}
	}
	return 0, errors.Errorf("no such card: %s", name)
}

// Disconnect closes the connection and reports stateTerminated.
func (c *paContext) Disconnect() {
	c.Close()
	c.enter(stateTerminated)
}

// Close drops the connection without any state change.
func (c *paContext) Close() {
	c.closeOnce.Do(func() {
		if c.client != nil {
			log.Printf("Closing connection to audio server\n")
			c.client.Close()
		}
	})
}

func (c *paContext) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

func (c *paContext) Strerror() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Error()
}
