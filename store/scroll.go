package store

import "sync/atomic"

// Scroll tracks whether the current page is scrolled past its header.
type Scroll struct {
	scrolled atomic.Bool
}

func (s *Scroll) SetScrolled(v bool) { s.scrolled.Store(v) }

func (s *Scroll) IsScrolled() bool { return s.scrolled.Load() }

// Reset clears the flag, typically on page change.
func (s *Scroll) Reset() { s.scrolled.Store(false) }
