// pkg/core/content.go
package core

import (
	"fmt"
	"strings"
)

// ContentKind discriminates what a tile holds, independent of quantity.
type ContentKind string

const (
	ContentNone       ContentKind = "none"
	ContentRock       ContentKind = "rock"
	ContentTree       ContentKind = "tree"
	ContentGarbage    ContentKind = "garbage"
	ContentFire       ContentKind = "fire"
	ContentCoin       ContentKind = "coin"
	ContentBin        ContentKind = "bin"
	ContentCrate      ContentKind = "crate"
	ContentBank       ContentKind = "bank"
	ContentWater      ContentKind = "water"
	ContentMarket     ContentKind = "market"
	ContentFish       ContentKind = "fish"
	ContentBuilding   ContentKind = "building"
	ContentBush       ContentKind = "bush"
	ContentJollyBlock ContentKind = "jolly-block"
	ContentScarecrow  ContentKind = "scarecrow"
)

var contentKinds = []ContentKind{
	ContentNone, ContentRock, ContentTree, ContentGarbage, ContentFire,
	ContentCoin, ContentBin, ContentCrate, ContentBank, ContentWater,
	ContentMarket, ContentFish, ContentBuilding, ContentBush,
	ContentJollyBlock, ContentScarecrow,
}

// ParseContentKind resolves a kind name, case-insensitively.
func ParseContentKind(s string) (ContentKind, error) {
	name := ContentKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range contentKinds {
		if k == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown content kind: %q", s)
}

// Content is what a tile holds: a kind plus a quantity payload.
type Content struct {
	Kind     ContentKind `json:"kind" yaml:"kind"`
	Quantity int         `json:"quantity" yaml:"quantity"`
}

// Matches reports whether c has the same kind as want. Quantity is ignored.
func (c Content) Matches(want Content) bool {
	return c.Kind == want.Kind
}

func (c Content) String() string {
	return fmt.Sprintf("%s(%d)", c.Kind, c.Quantity)
}
