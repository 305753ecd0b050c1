// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: structured run report and its YAML/JSON encoders.

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/cyclespace"
)

// Report is the machine-readable outcome of one run.
type Report struct {
	RunID     string        `yaml:"run_id" json:"run_id"`
	Seed      int64         `yaml:"seed" json:"seed"`
	Graph     GraphSummary  `yaml:"graph" json:"graph"`
	Basis     [][]int       `yaml:"basis" json:"basis"`
	Cycles    []CycleRecord `yaml:"cycles" json:"cycles"`
	Truncated bool          `yaml:"truncated,omitempty" json:"truncated,omitempty"`
}

// GraphSummary lists the graph's order, size and edges.
type GraphSummary struct {
	Nodes            int         `yaml:"nodes" json:"nodes"`
	CyclomaticNumber int         `yaml:"cyclomatic_number" json:"cyclomatic_number"`
	Edges            []core.Edge `yaml:"edges" json:"edges"`
}

// CycleRecord is one element of the enumerated cycle space.
type CycleRecord struct {
	Nodes  []int  `yaml:"nodes,flow" json:"nodes"`
	Vector string `yaml:"vector" json:"vector"`
	Basis  bool   `yaml:"basis" json:"basis"`
	Walk   []int  `yaml:"walk,flow,omitempty" json:"walk,omitempty"`
}

// NewReport assembles a Report. With walks set, every derived cycle whose
// node set admits a closed walk in g gets its Walk filled in.
func NewReport(runID string, seed int64, g *core.Graph, basis [][]int, cycles []cyclespace.Cycle, walks bool) *Report {
	r := &Report{
		RunID: runID,
		Seed:  seed,
		Graph: GraphSummary{
			Nodes:            g.NodeCount(),
			CyclomaticNumber: g.CyclomaticNumber(),
			Edges:            g.Edges(),
		},
		Basis:  basis,
		Cycles: make([]CycleRecord, 0, len(cycles)),
	}
	for _, c := range cycles {
		rec := CycleRecord{Nodes: c.Nodes, Vector: c.Vector.String(), Basis: c.Basis}
		if walks && !c.Basis {
			if walk, err := ClosedWalk(g, c.Nodes); err == nil {
				rec.Walk = walk
			}
		}
		r.Cycles = append(r.Cycles, rec)
	}

	return r
}

// WriteYAML encodes r as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("render: WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("render: WriteJSON: %w", err)
	}

	return nil
}
