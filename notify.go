// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/gen2brain/beeep"
)

// notifySwitch pops up a desktop notification naming the new profile.
func notifySwitch(card, profile string) error {
	return beeep.Notify(appName, card+": "+profile, "")
}
