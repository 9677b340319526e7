package navbar

import "sync"

// ScrollLocker disables and restores page scrolling while the overlay is open.
type ScrollLocker interface {
	Lock()
	Unlock()
}

// Menu is the full-screen mobile overlay. Opening it locks scrolling;
// closing it or tearing it down restores scrolling.
type Menu struct {
	mu     sync.Mutex
	open   bool
	locker ScrollLocker
}

// NewMenu returns a closed menu bound to locker.
func NewMenu(locker ScrollLocker) *Menu {
	return &Menu{locker: locker}
}

// Show opens the overlay.
func (m *Menu) Show() {
	m.set(true)
}

// Hide closes the overlay.
func (m *Menu) Hide() {
	m.set(false)
}

// IsOpen reports whether the overlay is showing.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Close tears the menu down and always restores scrolling.
func (m *Menu) Close() error {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
	if m.locker != nil {
		m.locker.Unlock()
	}
	return nil
}

func (m *Menu) set(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open == open {
		return
	}
	m.open = open
	if m.locker == nil {
		return
	}
	if open {
		m.locker.Lock()
	} else {
		m.locker.Unlock()
	}
}

// BodyStyle is a ScrollLocker for server rendering: it records the
// overflow value to put on <body>.
type BodyStyle struct {
	Overflow string
}

// Lock hides overflow.
func (b *BodyStyle) Lock() { b.Overflow = "hidden" }

// Unlock restores the default overflow.
func (b *BodyStyle) Unlock() { b.Overflow = "" }

// CSS returns the inline style attribute value, or "" when nothing is set.
func (b *BodyStyle) CSS() string {
	if b.Overflow == "" {
		return ""
	}
	return "overflow:" + b.Overflow
}
