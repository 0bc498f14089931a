// Package sanitize drops candidate cells the agent already knows.
package sanitize

import "github.com/gridscout/scanner/pkg/core"

// Sanitize returns the candidates whose content is not yet known in the
// snapshot, keeping their input order.
func Sanitize(candidates []core.Coordinate, known core.Snapshot) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(candidates))
	for _, c := range candidates {
		if known.Known(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Known returns the content of every candidate already present in the
// snapshot.
func Known(candidates []core.Coordinate, known core.Snapshot) core.Disclosure {
	out := make(core.Disclosure)
	for _, c := range candidates {
		if content, ok := known.At(c); ok {
			out[c] = &content
		}
	}
	return out
}
