// Package selector picks the best matching cell out of a disclosure.
package selector

import (
	"maps"
	"slices"

	"github.com/gridscout/scanner/internal/toolerr"
	"github.com/gridscout/scanner/pkg/core"
)

// Select returns the cell of want's kind with the highest quantity, or nil
// when no cell matches. Equal quantities go to the smallest coordinate by
// column, then row. A cell without content is a broken disclosure and fails
// the whole selection.
func Select(disclosed core.Disclosure, want core.Content) (*core.Match, error) {
	keys := slices.SortedFunc(maps.Keys(disclosed), core.CompareCoordinates)

	var best *core.Match
	for _, c := range keys {
		content := disclosed[c]
		if content == nil {
			return nil, toolerr.Unclassifiedf("cell %s was disclosed without content", c)
		}
		if !content.Matches(want) {
			continue
		}
		if best == nil || content.Quantity > best.Quantity {
			best = &core.Match{Coordinate: c, Quantity: content.Quantity}
		}
	}
	return best, nil
}
