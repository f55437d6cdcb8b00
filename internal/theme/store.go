package theme

import (
	"sync"

	"github.com/rs/zerolog"
)

// StorageKey is the single key the store reads and writes.
const StorageKey = "theme"

// Storage is the durable key/value capability the store persists through.
// Get reports false when the key is absent or unreadable. Set reports whether
// the write was accepted; the store never treats false as fatal.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) bool
}

// Preference is the selected theme together with its colors.
type Preference struct {
	ID     ID
	Name   string
	Colors Colors
}

// Variables returns the style variables to publish for the preference.
func (p Preference) Variables() []Variable {
	return p.Colors.Variables()
}

func preferenceFor(id ID) Preference {
	p := palettes[id]
	return Preference{ID: p.ID, Name: p.Name, Colors: p.Colors}
}

// Subscriber receives the preference on subscription and after every
// accepted SetTheme. It must not call SetTheme.
type Subscriber func(Preference)

type subscription struct {
	id int
	fn Subscriber
}

// Store owns the current theme. Reads are safe from any goroutine; writers
// and their notifications are serialized.
type Store struct {
	writeMu sync.Mutex

	mu      sync.RWMutex
	current ID
	subs    []subscription
	nextSub int

	storage Storage
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes the store's diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore initializes a store from storage. A missing or unrecognized
// stored value selects Default. A nil storage behaves like an empty one
// that discards writes.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		current: Default,
		storage: storage,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if storage == nil {
		return s
	}

	raw, ok := storage.Get(StorageKey)
	switch {
	case !ok:
		s.log.Debug().Str("default", string(Default)).Msg("no stored theme")
	case !Valid(ID(raw)):
		s.log.Debug().Str("stored", raw).Str("default", string(Default)).Msg("ignoring unrecognized stored theme")
	default:
		s.current = ID(raw)
	}
	return s
}

// Current returns the selected theme.
func (s *Store) Current() ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Colors returns the colors of the selected theme.
func (s *Store) Colors() Colors {
	return palettes[s.Current()].Colors
}

// Preference returns the selected theme with its name and colors.
func (s *Store) Preference() Preference {
	return preferenceFor(s.Current())
}

// SetTheme selects id, writes it to storage and notifies every subscriber
// before returning. Unknown identifiers are ignored and SetTheme reports
// false. A failed storage write leaves the in-memory selection in place.
func (s *Store) SetTheme(id ID) bool {
	if !Valid(id) {
		s.log.Debug().Str("theme", string(id)).Msg("rejecting unknown theme")
		return false
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = id
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if s.storage != nil && !s.storage.Set(StorageKey, string(id)) {
		s.log.Debug().Str("theme", string(id)).Msg("theme preference not persisted")
	}

	pref := preferenceFor(id)
	for _, sub := range subs {
		sub.fn(pref)
	}
	return true
}

// Subscribe registers fn and immediately delivers the current preference to
// it. The returned function removes the subscription; calling it more than
// once is harmless.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.writeMu.Lock()
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	current := s.current
	s.mu.Unlock()
	fn(preferenceFor(current))
	s.writeMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
