// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

// profileList is the ordered set of profiles to cycle through, in the order
// they were given on the command line.
type profileList struct {
	names []string
}

func (p *profileList) Append(name string) {
	p.names = append(p.names, name)
}

func (p *profileList) Len() int {
	return len(p.names)
}

// Index returns the position of name in the list, or -1.
func (p *profileList) Index(name string) int {
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Next returns the profile following active, wrapping around at the end.
func (p *profileList) Next(active string) (string, bool) {
	i := p.Index(active)
	if i < 0 {
		return "", false
	}
	return p.names[(i+1)%len(p.names)], true
}
