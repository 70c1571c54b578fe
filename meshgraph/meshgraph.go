// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshgraph wraps github.com/katalvlaran/lvlath/core.Graph as the
// "adjacency-list graph used for cell connectivity" spec §1 treats as an
// external collaborator: only its finalize/local-nodes/ghost-nodes
// contract is consumed by the rest of this module.
package meshgraph

import (
	"sort"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/lvlath/core"
)

// ConnectivityGraph tracks which cell labels are assigned to this rank
// (local) versus discovered only as a neighbour of a local cell (ghost).
type ConnectivityGraph struct {
	g *core.Graph

	localLabels map[int]bool
	seen        map[int]bool
	finalized   bool
}

// New builds an empty connectivity graph.
func New() *ConnectivityGraph {
	return &ConnectivityGraph{
		g:           core.NewGraph(core.WithWeighted()),
		localLabels: make(map[int]bool),
		seen:        make(map[int]bool),
	}
}

func labelID(label int) string { return strconv.Itoa(label) }

// AddLocalCell registers cellLabel as locally-owned by this rank.
func (cg *ConnectivityGraph) AddLocalCell(cellLabel int) error {
	if cg.finalized {
		return chk.Err("meshgraph: cannot add cells after finalize\n")
	}
	if err := cg.ensureVertex(cellLabel); err != nil {
		return err
	}
	cg.localLabels[cellLabel] = true
	return nil
}

func (cg *ConnectivityGraph) ensureVertex(label int) error {
	if cg.seen[label] {
		return nil
	}
	if err := cg.g.AddVertex(labelID(label)); err != nil {
		return chk.Err("meshgraph: %v\n", err)
	}
	cg.seen[label] = true
	return nil
}

// AddAdjacency records that cellLabel neighbours neighborLabel across a
// shared face. neighborLabel is added as a (possibly ghost) vertex if it
// has not been seen yet.
func (cg *ConnectivityGraph) AddAdjacency(cellLabel, neighborLabel int) error {
	if cg.finalized {
		return chk.Err("meshgraph: cannot add edges after finalize\n")
	}
	if err := cg.ensureVertex(cellLabel); err != nil {
		return err
	}
	if err := cg.ensureVertex(neighborLabel); err != nil {
		return err
	}
	if _, err := cg.g.AddEdge(labelID(cellLabel), labelID(neighborLabel), 0); err != nil {
		return chk.Err("meshgraph: %v\n", err)
	}
	return nil
}

// Finalize marks the graph immutable. Any vertex present in the graph but
// never marked local (i.e. discovered only via AddAdjacency) is a ghost.
func (cg *ConnectivityGraph) Finalize() error {
	if cg.finalized {
		return chk.Err("meshgraph: finalize called twice\n")
	}
	cg.finalized = true
	return nil
}

// LocalNodes returns the sorted cell labels assigned to this rank.
func (cg *ConnectivityGraph) LocalNodes() []int {
	out := make([]int, 0, len(cg.localLabels))
	for l := range cg.localLabels {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// GhostNodes returns the sorted cell labels discovered as neighbours of a
// local cell but not themselves local.
func (cg *ConnectivityGraph) GhostNodes() []int {
	var out []int
	for l := range cg.seen {
		if !cg.localLabels[l] {
			out = append(out, l)
		}
	}
	sort.Ints(out)
	return out
}

// Neighbors returns the cell labels adjacent to cellLabel.
func (cg *ConnectivityGraph) Neighbors(cellLabel int) ([]int, error) {
	edges, err := cg.g.Neighbors(labelID(cellLabel))
	if err != nil {
		return nil, chk.Err("meshgraph: %v\n", err)
	}
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		other := e.To
		if other == labelID(cellLabel) {
			other = e.From
		}
		n, convErr := strconv.Atoi(other)
		if convErr != nil {
			continue
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}
