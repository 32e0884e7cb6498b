package theme

import "sync"

// Signal reports whether the environment prefers a dark colour scheme.
type Signal func() bool

// Resolver owns the theme selection and the one active palette.
type Resolver struct {
	mu        sync.RWMutex
	selection string
	signal    Signal
	active    Palette
}

// NewResolver resolves selection immediately. Unknown selections become
// "default". A nil signal always reports light.
func NewResolver(selection string, signal Signal) *Resolver {
	if signal == nil {
		signal = func() bool { return false }
	}
	if !Valid(selection) {
		selection = Default
	}
	r := &Resolver{selection: selection, signal: signal}
	r.Resolve()
	return r
}

// Selection returns the user's choice, which may be "system".
func (r *Resolver) Selection() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selection
}

// Select switches to name and re-resolves. Unknown names are ignored.
func (r *Resolver) Select(name string) bool {
	if !Valid(name) {
		return false
	}
	r.mu.Lock()
	r.selection = name
	r.mu.Unlock()
	r.Resolve()
	return true
}

// Advance moves to the next theme in order and returns it.
func (r *Resolver) Advance() string {
	r.mu.Lock()
	r.selection = NextTheme(r.selection)
	next := r.selection
	r.mu.Unlock()
	r.Resolve()
	return next
}

// Resolve recomputes the active palette. For "system" the signal is read
// now, so calling Resolve again picks up a changed OS preference.
func (r *Resolver) Resolve() Palette {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := r.selection
	if name == System {
		name = Default
		if r.signal() {
			name = Dark
		}
	}
	p := Get(name)
	p.Selection = r.selection
	r.active = p
	return p.Clone()
}

// Active returns a copy of the last resolved palette.
func (r *Resolver) Active() Palette {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active.Clone()
}

// IsDark reports whether the active palette is dark.
func (r *Resolver) IsDark() bool {
	return r.Active().IsDark
}
