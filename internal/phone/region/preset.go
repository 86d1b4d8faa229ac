package region

import "strings"

// Preset is a country shortcut: inputs are rewritten before normalization
// and the default region is fixed, not overridable by the caller.
type Preset struct {
	// Name is the preset identifier used in routes and CLI subcommands.
	Name string
	// Code is the fixed region code applied during parsing.
	Code string
	// CallingPrefix is the bare country calling code; an input starting
	// with it but lacking '+' is rewritten to international form.
	CallingPrefix string
}

// Indonesia rewrites "62…" inputs to "+62…" and parses the rest under ID.
var Indonesia = Preset{
	Name:          "id",
	Code:          "ID",
	CallingPrefix: "62",
}

// Presets returns the shipped country shortcuts keyed by name.
func Presets() map[string]Preset {
	return map[string]Preset{
		Indonesia.Name: Indonesia,
	}
}

// Rewrite applies the preset's international-prefix heuristic to one input.
// Inputs already carrying '+' or not starting with the calling prefix pass
// through unchanged.
func (p Preset) Rewrite(input string) string {
	if strings.HasPrefix(input, p.CallingPrefix) {
		return "+" + input
	}
	return input
}
