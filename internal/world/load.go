package world

import (
	"fmt"
	"os"

	"github.com/gridscout/scanner/pkg/core"
	"gopkg.in/yaml.v3"
)

// Description is the on-disk form of a world. JSON files parse as well,
// since JSON is a subset of YAML.
type Description struct {
	Size           int               `yaml:"size"`
	Energy         int               `yaml:"energy"`
	CostPerCell    int               `yaml:"costPerCell"`
	MoveCost       int               `yaml:"moveCost"`
	DiscoveryLimit int               `yaml:"discoveryLimit"`
	Start          core.Coordinate   `yaml:"start"`
	Tiles          []Placement       `yaml:"tiles"`
	Revealed       []core.Coordinate `yaml:"revealed"`
}

// Placement places one content on one tile.
type Placement struct {
	Col      int    `yaml:"col"`
	Row      int    `yaml:"row"`
	Kind     string `yaml:"kind"`
	Quantity int    `yaml:"quantity"`
}

// Load reads a world description file and builds the world.
func Load(path string) (*World, error) {
	desc, err := ReadDescription(path)
	if err != nil {
		return nil, err
	}
	return desc.Build()
}

// ReadDescription reads a world description file without building it.
func ReadDescription(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("failed to read world file: %w", err)
	}
	return ParseDescription(data)
}

// Parse builds a world from a YAML or JSON description.
func Parse(data []byte) (*World, error) {
	desc, err := ParseDescription(data)
	if err != nil {
		return nil, err
	}
	return desc.Build()
}

// ParseDescription decodes a YAML or JSON description.
func ParseDescription(data []byte) (Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Description{}, fmt.Errorf("failed to parse world description: %w", err)
	}
	return desc, nil
}

// Build creates the world the description names.
func (d Description) Build() (*World, error) {
	w, err := New(Options{
		Size:           d.Size,
		Energy:         d.Energy,
		CostPerCell:    d.CostPerCell,
		MoveCost:       d.MoveCost,
		DiscoveryLimit: d.DiscoveryLimit,
		Start:          d.Start,
	})
	if err != nil {
		return nil, err
	}

	for i, t := range d.Tiles {
		kind, err := core.ParseContentKind(t.Kind)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		if t.Quantity < 0 {
			return nil, fmt.Errorf("tile %d: quantity must not be negative", i)
		}
		if err := w.SetTile(core.NewCoordinate(t.Col, t.Row), core.Content{Kind: kind, Quantity: t.Quantity}); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
	}
	for _, c := range d.Revealed {
		if err := w.Reveal(c); err != nil {
			return nil, err
		}
	}
	return w, nil
}
