// Package catalog ships the named sample graphs the hop CLI operates on.
// The data lives in an embedded YAML file so new samples are a data edit,
// not a code change; entries are decoded once, lazily, and treated as
// read-only afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hop/graph"
)

// ErrUnknownGraph is returned when no catalog entry has the given name.
var ErrUnknownGraph = errors.New("catalog: unknown graph")

//go:embed graphs.yaml
var rawGraphs []byte

// Entry is one named sample graph with a human description. Exactly one
// of List or Matrix is populated; Kind reports which. Entries are shared,
// so callers must not mutate the rows.
type Entry struct {
	Name   string                `yaml:"name"`
	Blurb  string                `yaml:"blurb"`
	List   graph.AdjacencyList   `yaml:"list,omitempty"`
	Matrix graph.AdjacencyMatrix `yaml:"matrix,omitempty"`
}

// Kind reports the representation this entry carries: "list" or "matrix".
func (e Entry) Kind() string {
	if e.Matrix != nil {
		return "matrix"
	}

	return "list"
}

// Graph returns the entry's graph value, validated.
func (e Entry) Graph() (graph.Graph, error) {
	var g graph.Graph
	if e.Matrix != nil {
		g = e.Matrix
	} else {
		g = e.List
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: entry %q: %w", e.Name, err)
	}

	return g, nil
}

var (
	loadOnce sync.Once
	entries  map[string]Entry
	names    []string
)

// load decodes the embedded YAML. The asset is compiled in, so a decode
// failure is a programmer error and panics rather than surfacing an
// impossible runtime error to every caller.
func load() {
	var doc struct {
		Graphs []Entry `yaml:"graphs"`
	}
	if err := yaml.Unmarshal(rawGraphs, &doc); err != nil {
		panic(fmt.Sprintf("catalog: embedded graphs.yaml is malformed: %v", err))
	}

	entries = make(map[string]Entry, len(doc.Graphs))
	names = make([]string, 0, len(doc.Graphs))
	for _, e := range doc.Graphs {
		entries[e.Name] = e
		names = append(names, e.Name)
	}
	sort.Strings(names)
}

// Names returns every catalog graph name in sorted order.
func Names() []string {
	loadOnce.Do(load)
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// Get returns the entry called name, or ErrUnknownGraph.
func Get(name string) (Entry, error) {
	loadOnce.Do(load)
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownGraph, name)
	}

	return e, nil
}

// All returns every entry in name-sorted order.
func All() []Entry {
	loadOnce.Do(load)
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, entries[n])
	}

	return out
}
