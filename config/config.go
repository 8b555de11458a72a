// Package config loads puzzle parameters from YAML.
//
// A file looks like:
//
//	n: 3
//	capacity: 2
//	# optional explicit catalog, tried in this order
//	moves:
//	  - {m: 1, c: 0}
//	  - {m: 0, c: 1}
//	prune_on_enqueue: false
//
// Omitted keys keep their Default values. When moves is omitted (or null) the
// catalog is derived from capacity with river.MovesForCapacity; an explicit
// empty list is rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivercross/river"
)

// Default puzzle parameters: the classic three missionaries, three
// cannibals and a two-seat boat.
const (
	DefaultN        = 3
	DefaultCapacity = 2
)

// Puzzle is the decoded configuration. A nil Moves means "derive from
// Capacity"; a non-nil empty Moves is an empty catalog and is invalid.
type Puzzle struct {
	N              int          `yaml:"n"`
	Capacity       int          `yaml:"capacity"`
	Moves          []river.Move `yaml:"moves,omitempty"`
	PruneOnEnqueue bool         `yaml:"prune_on_enqueue"`
}

// Default returns the classic puzzle.
func Default() Puzzle {
	return Puzzle{N: DefaultN, Capacity: DefaultCapacity}
}

// Load reads and decodes the YAML file at path on top of Default.
func Load(path string) (Puzzle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	p, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Puzzle{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected;
// an empty document yields Default.
func Parse(r io.Reader) (Puzzle, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Puzzle{}, fmt.Errorf("decode: %w", err)
	}
	return p, nil
}

// Catalog returns the move catalog: the explicit Moves when set, otherwise
// the catalog for Capacity. An empty explicit catalog and explicit loads
// larger than a positive Capacity are rejected.
func (p Puzzle) Catalog() ([]river.Move, error) {
	if p.Moves == nil {
		return river.MovesForCapacity(p.Capacity)
	}
	if len(p.Moves) == 0 {
		return nil, fmt.Errorf("%w: explicit move catalog is empty", river.ErrInvalidConfiguration)
	}
	if p.Capacity > 0 {
		for _, mv := range p.Moves {
			if mv.Size() > p.Capacity {
				return nil, fmt.Errorf("%w: load %v exceeds boat capacity %d",
					river.ErrInvalidConfiguration, mv, p.Capacity)
			}
		}
	}
	out := make([]river.Move, len(p.Moves))
	copy(out, p.Moves)
	return out, nil
}

// Model validates p and builds the river.Model it describes.
func (p Puzzle) Model() (*river.Model, error) {
	moves, err := p.Catalog()
	if err != nil {
		return nil, err
	}
	return river.NewModel(p.N, moves)
}

// Marshal encodes p as YAML, e.g. for a starter file.
func (p Puzzle) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
