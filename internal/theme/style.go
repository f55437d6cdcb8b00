package theme

import (
	"strings"
	"sync"
)

// StyleContext is the rendering side of the store: it holds the most
// recently published variables. Subscribe its Apply method to a Store.
type StyleContext struct {
	mu   sync.RWMutex
	id   ID
	vars []Variable
}

// Apply replaces the held variables with those of p.
func (sc *StyleContext) Apply(p Preference) {
	vars := p.Variables()
	sc.mu.Lock()
	sc.id = p.ID
	sc.vars = vars
	sc.mu.Unlock()
}

// Theme returns the identifier of the last applied preference.
func (sc *StyleContext) Theme() ID {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.id
}

func (sc *StyleContext) Variables() []Variable {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]Variable, len(sc.vars))
	copy(out, sc.vars)
	return out
}

// Declarations renders the variables as CSS custom property declarations,
// e.g. "--background-primary: #0a0a0a; --text-primary: #ffffff;".
func (sc *StyleContext) Declarations() string {
	vars := sc.Variables()
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		parts = append(parts, v.Name+": "+v.Value+";")
	}
	return strings.Join(parts, " ")
}
