package ui

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// StatusLine summarizes the control state and counters for display.
func StatusLine(sim core.Sim, tps float64) string {
	var b strings.Builder
	state := strings.ToUpper(sim.State().String())
	fmt.Fprintf(&b, "%s  gen %d  pop %d", state, sim.Generation(), sim.Population())
	if tps > 0 {
		fmt.Fprintf(&b, "  %.0f tps", tps)
	}
	return b.String()
}

// HelpLine lists the key bindings accepted by the drivers. quit names the
// driver's own exit binding.
func HelpLine(sim core.Sim, quit string) string {
	if sim.State() == core.Paused {
		return "space run  s step  r reseed  " + quit
	}
	return "space pause  r reseed  " + quit
}

// ParameterLine renders the named parameters as "label value" pairs. Keys
// missing from the snapshot are skipped.
func ParameterLine(snap core.ParameterSnapshot, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
	}
	return strings.Join(parts, "  ")
}
