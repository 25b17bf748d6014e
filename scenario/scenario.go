// SPDX-License-Identifier: MIT

// Package scenario loads named Picture Fuzzy Sets and the pairs to compare
// from YAML:
//
//	sets:
//	  - name: P1
//	    elements: [A, B]          # optional, defaults to x1..xn
//	    membership: [0.6, 0.7]
//	    non_membership: [0.2, 0.1]
//	    refusal: [0.1, 0.2]
//	pairs:
//	  - {name: Similar PFS, a: P1, b: P2}
//
// Set names and element labels are NFC-normalized so that composed and
// decomposed spellings of the same label compare equal.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/picfuzzy/pfs"
	"github.com/katalvlaran/picfuzzy/report"
)

var (
	// ErrNoSets indicates a document without any set.
	ErrNoSets = errors.New("scenario: no sets defined")

	// ErrDuplicateSet indicates two sets with the same (normalized) name.
	ErrDuplicateSet = errors.New("scenario: duplicate set name")

	// ErrUnknownSet indicates a reference to a set that is not defined.
	ErrUnknownSet = errors.New("scenario: unknown set")

	// ErrUnnamedSet indicates a set entry without a name.
	ErrUnnamedSet = errors.New("scenario: set without name")
)

//go:embed demo.yaml
var demoYAML []byte

// setDoc is the YAML shape of one set.
type setDoc struct {
	Name          string    `yaml:"name"`
	Elements      []string  `yaml:"elements,omitempty"`
	Membership    []float64 `yaml:"membership"`
	NonMembership []float64 `yaml:"non_membership"`
	Refusal       []float64 `yaml:"refusal"`
}

// pairDoc is the YAML shape of one comparison.
type pairDoc struct {
	Name string `yaml:"name,omitempty"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

type document struct {
	Sets  []setDoc  `yaml:"sets"`
	Pairs []pairDoc `yaml:"pairs,omitempty"`
}

// Scenario is a validated collection of named sets and pairs.
type Scenario struct {
	names []string
	sets  map[string]*pfs.Set
	pairs []report.Pair
}

// Load decodes and validates a scenario. Unknown YAML fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSets
		}

		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return build(doc)
}

// LoadFile reads a scenario from path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Demo returns the built-in worked examples.
func Demo() (*Scenario, error) {
	return Load(bytes.NewReader(demoYAML))
}

func build(doc document) (*Scenario, error) {
	if len(doc.Sets) == 0 {
		return nil, ErrNoSets
	}

	sc := &Scenario{sets: make(map[string]*pfs.Set, len(doc.Sets))}
	for i, sd := range doc.Sets {
		name := norm.NFC.String(sd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrUnnamedSet, i)
		}
		if _, dup := sc.sets[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSet, name)
		}

		var opts []pfs.Option
		if sd.Elements != nil {
			labels := make([]string, len(sd.Elements))
			for j, e := range sd.Elements {
				labels[j] = norm.NFC.String(e)
			}
			opts = append(opts, pfs.WithElements(labels...))
		}
		s, err := pfs.New(sd.Membership, sd.NonMembership, sd.Refusal, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario: set %q: %w", name, err)
		}
		sc.sets[name] = s
		sc.names = append(sc.names, name)
	}

	for i, pd := range doc.Pairs {
		a, err := sc.lookup(pd.A)
		if err != nil {
			return nil, fmt.Errorf("scenario: pair %d: %w", i+1, err)
		}
		b, err := sc.lookup(pd.B)
		if err != nil {
			return nil, fmt.Errorf("scenario: pair %d: %w", i+1, err)
		}
		sc.pairs = append(sc.pairs, report.Pair{Name: norm.NFC.String(pd.Name), A: a, B: b})
	}

	return sc, nil
}

// Normalize returns the form under which name is stored: NFC.
func Normalize(name string) string { return norm.NFC.String(name) }

func (sc *Scenario) lookup(name string) (*pfs.Set, error) {
	name = Normalize(name)
	s, ok := sc.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}

	return s, nil
}

// Set returns the set called name.
func (sc *Scenario) Set(name string) (*pfs.Set, error) { return sc.lookup(name) }

// Names returns set names in document order.
func (sc *Scenario) Names() []string { return append([]string(nil), sc.names...) }

// Pairs returns the comparisons in document order.
func (sc *Scenario) Pairs() []report.Pair { return append([]report.Pair(nil), sc.pairs...) }
