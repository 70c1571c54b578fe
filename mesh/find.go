// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// spatialIndex wraps gm.Bins the way the teacher's out package wraps it
// for node/integration-point lookup (out/out.go's NodBins/IpsBins): a
// coarse bucket pre-filter in front of the exhaustive per-cell test
// findCellID must perform regardless.
type spatialIndex struct {
	bins  gm.Bins
	ready bool
}

func (m *Mesh) buildSpatialIndex() {
	if len(m.cells) == 0 {
		return
	}
	lo := m.cells[0].Center
	hi := m.cells[0].Center
	for _, c := range m.cells {
		if !c.IsLocal {
			continue
		}
		lo = euclid.NewPoint3(minf(lo.X, c.Center.X), minf(lo.Y, c.Center.Y), minf(lo.Z, c.Center.Z))
		hi = euclid.NewPoint3(maxf(hi.X, c.Center.X), maxf(hi.Y, c.Center.Y), maxf(hi.Z, c.Center.Z))
	}
	m.spatial.bins.Init([]float64{lo.X, lo.Y, lo.Z}, []float64{hi.X, hi.Y, hi.Z}, 20)
	for _, c := range m.cells {
		if !c.IsLocal {
			continue
		}
		m.spatial.bins.Append([]float64{c.Center.X, c.Center.Y, c.Center.Z}, c.LocalID)
	}
	m.spatial.ready = true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// FindCellID scans locally-owned cells in local-id order, reconstructs
// each one's polyhedron and tests isPointInside, returning the first
// match. A gm.Bins-backed spatial index (by cell center) is consulted
// first as a cheap candidate, but the exhaustive scan still runs if that
// candidate misses — this matches spec's "scans only locally-owned cells
// in local-id order" contract while giving the common case a shortcut.
func (m *Mesh) FindCellID(p euclid.Point3) (int, error) {
	if !m.finalized {
		return 0, chk.Err("mesh: findCellID called before finalize\n")
	}
	if !m.spatial.ready {
		m.buildSpatialIndex()
	}
	if m.spatial.ready {
		cand := m.spatial.bins.Find([]float64{p.X, p.Y, p.Z})
		if cand >= 0 {
			if ok, err := m.cellContains(cand, p); err == nil && ok {
				return cand, nil
			}
		}
	}
	for i := 0; i < m.props.LocalCells; i++ {
		if ok, err := m.cellContains(i, p); err == nil && ok {
			return i, nil
		}
	}
	return 0, chk.Err("mesh: no local cell contains point %v\n", p)
}

func (m *Mesh) cellContains(localID int, p euclid.Point3) (bool, error) {
	c, err := m.Cell(localID)
	if err != nil || !c.IsLocal {
		return false, err
	}
	shape, err := m.BuildPolyhedron(localID)
	if err != nil {
		return false, err
	}
	return shape.IsPointInside(p), nil
}
