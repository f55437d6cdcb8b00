package theme

import (
	"fmt"
	"strings"
)

// ID identifies one of the fixed palettes.
type ID string

const (
	GitHubDark    ID = "github-dark"
	Dracula       ID = "dracula"
	Monokai       ID = "monokai"
	TerminalGreen ID = "terminal-green"
	TerminalAmber ID = "terminal-amber"

	// Default is used whenever no valid preference is stored.
	Default = TerminalGreen
)

// Colors is the named color record published for a palette.
type Colors struct {
	Background          string `json:"background"`
	BackgroundSecondary string `json:"backgroundSecondary"`
	BackgroundTertiary  string `json:"backgroundTertiary"`
	TextPrimary         string `json:"textPrimary"`
	TextSecondary       string `json:"textSecondary"`
	TextTertiary        string `json:"textTertiary"`
	Accent              string `json:"accent"`
	AccentSecondary     string `json:"accentSecondary"`
}

// Palette pairs a theme with its display name and colors.
type Palette struct {
	ID     ID     `json:"value"`
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// Variable is a single named style variable, e.g. --accent-primary.
type Variable struct {
	Name  string
	Value string
}

var ids = [...]ID{GitHubDark, Dracula, Monokai, TerminalGreen, TerminalAmber}

var palettes = map[ID]Palette{
	GitHubDark: {
		ID:   GitHubDark,
		Name: "GitHub Dark",
		Colors: Colors{
			Background: "#0d1117", BackgroundSecondary: "#161b22", BackgroundTertiary: "#21262d",
			TextPrimary: "#f0f6fc", TextSecondary: "#e6edf3", TextTertiary: "#7d8590",
			Accent: "#238636", AccentSecondary: "#f85149",
		},
	},
	Dracula: {
		ID:   Dracula,
		Name: "Dracula",
		Colors: Colors{
			Background: "#282a36", BackgroundSecondary: "#44475a", BackgroundTertiary: "#6272a4",
			TextPrimary: "#f8f8f2", TextSecondary: "#e6e6e6", TextTertiary: "#6272a4",
			Accent: "#50fa7b", AccentSecondary: "#ff5555",
		},
	},
	Monokai: {
		ID:   Monokai,
		Name: "Monokai",
		Colors: Colors{
			Background: "#272822", BackgroundSecondary: "#3e3d32", BackgroundTertiary: "#49483e",
			TextPrimary: "#f8f8f2", TextSecondary: "#e6e6e6", TextTertiary: "#75715e",
			Accent: "#a6e22e", AccentSecondary: "#f92672",
		},
	},
	TerminalGreen: {
		ID:   TerminalGreen,
		Name: "Terminal Green",
		Colors: Colors{
			Background: "#0a0a0a", BackgroundSecondary: "#111111", BackgroundTertiary: "#1a1a1a",
			TextPrimary: "#ffffff", TextSecondary: "#e5e5e5", TextTertiary: "#a3a3a3",
			Accent: "#00ff88", AccentSecondary: "#ff6b6b",
		},
	},
	TerminalAmber: {
		ID:   TerminalAmber,
		Name: "Terminal Amber",
		Colors: Colors{
			Background: "#0a0a0a", BackgroundSecondary: "#111111", BackgroundTertiary: "#1a1a1a",
			TextPrimary: "#ffffff", TextSecondary: "#e5e5e5", TextTertiary: "#a3a3a3",
			Accent: "#ffd43b", AccentSecondary: "#ff6b6b",
		},
	},
}

// IDs returns every theme identifier in display order.
func IDs() []ID {
	out := make([]ID, len(ids))
	copy(out, ids[:])
	return out
}

// Palettes returns every palette in display order.
func Palettes() []Palette {
	out := make([]Palette, 0, len(ids))
	for _, id := range ids {
		out = append(out, palettes[id])
	}
	return out
}

// Valid reports whether id names a known palette.
func Valid(id ID) bool {
	_, ok := palettes[id]
	return ok
}

// Lookup returns the palette for id.
func Lookup(id ID) (Palette, bool) {
	p, ok := palettes[id]
	return p, ok
}

// Parse normalizes raw and checks it against the known identifiers.
func Parse(raw string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if !Valid(id) {
		return "", fmt.Errorf("unknown theme %q", raw)
	}
	return id, nil
}

// Variables returns the style variables for c in a fixed order.
func (c Colors) Variables() []Variable {
	return []Variable{
		{Name: "--background-primary", Value: c.Background},
		{Name: "--background-secondary", Value: c.BackgroundSecondary},
		{Name: "--background-tertiary", Value: c.BackgroundTertiary},
		{Name: "--text-primary", Value: c.TextPrimary},
		{Name: "--text-secondary", Value: c.TextSecondary},
		{Name: "--text-tertiary", Value: c.TextTertiary},
		{Name: "--accent-primary", Value: c.Accent},
		{Name: "--accent-secondary", Value: c.AccentSecondary},
	}
}
