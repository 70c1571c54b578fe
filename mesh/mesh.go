// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/warwick-hpsc/CUP-CFD-sub002/comm"
	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// Mesh is the unstructured-mesh core: per-entity tables, label-to-local-id
// maps, and the finalize/polyhedron-reconstruction/point-location
// operations built on top of them.
type Mesh struct {
	finalized bool

	vertices   []*Vertex
	vertexByID map[int]*Vertex // label -> vertex

	regions   []*Region
	regionByID map[int]*Region

	cells   []*Cell
	cellByID map[int]*Cell

	faces   []*Face
	faceByID map[int]*Face

	boundaries   []*Boundary
	boundaryByID map[int]*Boundary

	props   Properties
	spatial spatialIndex
}

// New creates an empty mesh ready to receive addVertex/addRegion/addCell/
// addBoundary/addFace calls in any dependency-respecting order.
func New() *Mesh {
	return &Mesh{
		vertexByID:   make(map[int]*Vertex),
		regionByID:   make(map[int]*Region),
		cellByID:     make(map[int]*Cell),
		faceByID:     make(map[int]*Face),
		boundaryByID: make(map[int]*Boundary),
	}
}

func (m *Mesh) requireNotFinalized(op string) error {
	if m.finalized {
		return chk.Err("mesh: cannot %s after finalize\n", op)
	}
	return nil
}

// AddVertex registers a vertex under label, at position pos.
func (m *Mesh) AddVertex(label int, pos euclid.Point3) error {
	if err := m.requireNotFinalized("addVertex"); err != nil {
		return err
	}
	if _, dup := m.vertexByID[label]; dup {
		return chk.Err("mesh: vertex label %d already exists\n", label)
	}
	v := &Vertex{Label: label, LocalID: len(m.vertices), Pos: pos}
	m.vertices = append(m.vertices, v)
	m.vertexByID[label] = v
	return nil
}

// AddRegion registers a region under label with the given name, type and
// scalar parameters.
func (m *Mesh) AddRegion(label int, name string, rtype RegionType, params RegionParams) error {
	if err := m.requireNotFinalized("addRegion"); err != nil {
		return err
	}
	if _, dup := m.regionByID[label]; dup {
		return chk.Err("mesh: region label %d already exists\n", label)
	}
	r := &Region{Label: label, LocalID: len(m.regions), Type: rtype, Name: name, Params: params}
	m.regions = append(m.regions, r)
	m.regionByID[label] = r
	return nil
}

// SetRegionFunc installs a named time-function override for one of a
// region's scalar fields (see SPEC_FULL.md's Supplemented Features); a
// nil f removes any existing override, reverting to the bare scalar.
func (m *Mesh) SetRegionFunc(regionLabel int, field string, f fun.Func) error {
	r, ok := m.regionByID[regionLabel]
	if !ok {
		return chk.Err("mesh: region label %d unknown\n", regionLabel)
	}
	if f == nil {
		delete(r.Funcs, field)
		return nil
	}
	if r.Funcs == nil {
		r.Funcs = make(map[string]fun.Func)
	}
	r.Funcs[field] = f
	return nil
}

// AddCell registers a cell under label, with its center, volume and
// local/ghost ownership flag.
func (m *Mesh) AddCell(label int, center euclid.Point3, volume float64, isLocal bool) error {
	if err := m.requireNotFinalized("addCell"); err != nil {
		return err
	}
	if _, dup := m.cellByID[label]; dup {
		return chk.Err("mesh: cell label %d already exists\n", label)
	}
	c := &Cell{Label: label, LocalID: len(m.cells), Center: center, Volume: volume, IsLocal: isLocal}
	m.cells = append(m.cells, c)
	m.cellByID[label] = c
	return nil
}

// AddBoundary registers a boundary under label, tied to regionLabel, with
// its ordered vertex labels and distance.
func (m *Mesh) AddBoundary(label, regionLabel int, vertexLabels []int, distance float64) error {
	if err := m.requireNotFinalized("addBoundary"); err != nil {
		return err
	}
	if _, dup := m.boundaryByID[label]; dup {
		return chk.Err("mesh: boundary label %d already exists\n", label)
	}
	if _, ok := m.regionByID[regionLabel]; !ok {
		return chk.Err("mesh: boundary %d references unknown region %d\n", label, regionLabel)
	}
	for _, vl := range vertexLabels {
		if _, ok := m.vertexByID[vl]; !ok {
			return chk.Err("mesh: boundary %d references unknown vertex %d\n", label, vl)
		}
	}
	b := &Boundary{
		Label:        label,
		LocalID:      len(m.boundaries),
		VertexLabels: append([]int(nil), vertexLabels...),
		RegionLabel:  regionLabel,
		Distance:     distance,
	}
	m.boundaries = append(m.boundaries, b)
	m.boundaryByID[label] = b
	return nil
}

// AddFace registers a face under label, connecting cell1Label to either
// cell2OrBoundaryLabel (another cell) or a boundary, per isBoundary.
func (m *Mesh) AddFace(label, cell1Label, cell2OrBoundaryLabel int, isBoundary bool, vertexLabels []int, opt FaceOptional) error {
	if err := m.requireNotFinalized("addFace"); err != nil {
		return err
	}
	if _, dup := m.faceByID[label]; dup {
		return chk.Err("mesh: face label %d already exists\n", label)
	}
	c1, ok := m.cellByID[cell1Label]
	if !ok {
		return chk.Err("mesh: face %d references unknown cell %d\n", label, cell1Label)
	}
	f := &Face{
		Label:        label,
		LocalID:      len(m.faces),
		Cell1Label:   cell1Label,
		IsBoundary:   isBoundary,
		VertexLabels: append([]int(nil), vertexLabels...),
		Lambda:       opt.Lambda,
		Normal:       opt.Normal,
		Center:       opt.Center,
		Xpac:         opt.Xpac,
		Xnac:         opt.Xnac,
		Rlencos:      opt.Rlencos,
		Area:         opt.Area,
	}
	for _, vl := range vertexLabels {
		if _, ok := m.vertexByID[vl]; !ok {
			return chk.Err("mesh: face %d references unknown vertex %d\n", label, vl)
		}
	}
	if isBoundary {
		if _, ok := m.boundaryByID[cell2OrBoundaryLabel]; !ok {
			return chk.Err("mesh: face %d references unknown boundary %d\n", label, cell2OrBoundaryLabel)
		}
		f.BoundaryLabel = cell2OrBoundaryLabel
		m.boundaryByID[cell2OrBoundaryLabel].FaceLabel = label
	} else {
		if _, ok := m.cellByID[cell2OrBoundaryLabel]; !ok {
			return chk.Err("mesh: face %d references unknown cell %d\n", label, cell2OrBoundaryLabel)
		}
		f.Cell2Label = cell2OrBoundaryLabel
	}
	m.faces = append(m.faces, f)
	m.faceByID[label] = f

	c1.faceLabels = append(c1.faceLabels, label)
	if !isBoundary {
		c2 := m.cellByID[cell2OrBoundaryLabel]
		c2.faceLabels = append(c2.faceLabels, label)
	}
	return nil
}

// SetCellGeomFaceCount records label's true geometric face count, for a
// ghost cell whose own topology was not entirely pulled onto this rank
// (it borders more than one locally-owned cell, or has neighbours never
// registered here). ingest.go's ghostFaceLabelsByCell is the source of
// this count. A value no greater than the cell's stored face count has
// no effect at Finalize.
func (m *Mesh) SetCellGeomFaceCount(label, n int) error {
	c, ok := m.cellByID[label]
	if !ok {
		return chk.Err("mesh: cell label %d unknown\n", label)
	}
	c.geomFaceCountOverride = n
	return nil
}

// Finalized reports whether finalize has already run.
func (m *Mesh) Finalized() bool { return m.finalized }

// Properties returns the mesh's current aggregate counts.
func (m *Mesh) Properties() Properties { return m.props }

// SetScaleFactor records a coordinate-scale divisor, per SPEC_FULL.md's
// mesh scale-factor bookkeeping. Only the value is stored: vertex
// positions are not divided by it, here or during ingestion.
func (m *Mesh) SetScaleFactor(s float64) { m.props.ScaleFactor = s }

// ScaleFactor returns the recorded coordinate-scale divisor (1 if unset).
func (m *Mesh) ScaleFactor() float64 {
	if m.props.ScaleFactor == 0 {
		return 1
	}
	return m.props.ScaleFactor
}

// Finalize is a collective operation across comm. It reorders cell local
// ids so owned cells precede ghosts, computes stored-vs-geometric
// face/vertex counts, raises a ghost cell's face count to the count
// recorded through SetCellGeomFaceCount where that is larger, and marks
// the mesh immutable for structural adds. A ghost cell's vertex count
// is not corrected, and its volume and center stay as given to AddCell.
func (m *Mesh) Finalize() error {
	if m.finalized {
		return chk.Err("mesh: finalize called twice\n")
	}

	// 1. reorder: owned cells first, then ghosts, stable within each group
	sort.SliceStable(m.cells, func(i, j int) bool {
		return m.cells[i].IsLocal && !m.cells[j].IsLocal
	})
	nLocal := 0
	for i, c := range m.cells {
		c.LocalID = i
		if c.IsLocal {
			nLocal++
		}
	}

	// 2. compute per-cell geometric face/vertex counts from stored topology
	maxFacesPerCell := 0
	for _, c := range m.cells {
		c.nFacesGeom = len(c.faceLabels)
		c.nVertsGeom = distinctVertexCount(m, c)
		if c.nFacesGeom > maxFacesPerCell {
			maxFacesPerCell = c.nFacesGeom
		}
	}

	// 3. propagate geometric summary data to ghost cells missing it: a
	// ghost cell's stored topology (step 2) only ever covers faces shared
	// with a locally-owned cell, so it undercounts any ghost bordering
	// more than one owned cell or a never-registered 2-ring neighbour.
	// Where ingest.go recorded the source's true face count via
	// SetCellGeomFaceCount, that count replaces the stored-topology
	// derivation — this package has no direct remote-memory access of its
	// own, only the comm collectives, so the count must arrive pre-fetched.
	for _, c := range m.cells {
		if c.IsLocal || c.geomFaceCountOverride <= c.nFacesGeom {
			continue
		}
		c.nFacesGeom = c.geomFaceCountOverride
		if c.nFacesGeom > maxFacesPerCell {
			maxFacesPerCell = c.nFacesGeom
		}
	}

	m.props.LocalCells = nLocal
	m.props.GhostCells = len(m.cells) - nLocal
	m.props.LocalVertices = len(m.vertices)
	m.props.LocalFaces = len(m.faces)
	m.props.LocalBoundaries = len(m.boundaries)
	m.props.LocalRegions = len(m.regions)
	m.props.MaxFacesPerCell = maxFacesPerCell

	ownedCells := []float64{float64(nLocal)}
	reduced := make([]float64, 1)
	comm.AllReduceSum(reduced, ownedCells)
	m.props.GlobalCells = int(reduced[0])

	m.finalized = true
	return nil
}

func distinctVertexCount(m *Mesh, c *Cell) int {
	seen := make(map[int]bool)
	for _, fl := range c.faceLabels {
		f := m.faceByID[fl]
		for _, vl := range f.VertexLabels {
			seen[vl] = true
		}
	}
	return len(seen)
}

// Cell returns the cell at local id id (post-finalize ordering).
func (m *Mesh) Cell(localID int) (*Cell, error) {
	if localID < 0 || localID >= len(m.cells) {
		return nil, chk.Err("mesh: cell local id %d out of range\n", localID)
	}
	return m.cells[localID], nil
}

// CellByLabel returns the cell registered under label.
func (m *Mesh) CellByLabel(label int) (*Cell, error) {
	c, ok := m.cellByID[label]
	if !ok {
		return nil, chk.Err("mesh: unknown cell label %d\n", label)
	}
	return c, nil
}

// VertexByLabel returns the vertex registered under label.
func (m *Mesh) VertexByLabel(label int) (*Vertex, error) {
	v, ok := m.vertexByID[label]
	if !ok {
		return nil, chk.Err("mesh: unknown vertex label %d\n", label)
	}
	return v, nil
}

// FaceByLabel returns the face registered under label.
func (m *Mesh) FaceByLabel(label int) (*Face, error) {
	f, ok := m.faceByID[label]
	if !ok {
		return nil, chk.Err("mesh: unknown face label %d\n", label)
	}
	return f, nil
}

// BoundaryByLabel returns the boundary registered under label.
func (m *Mesh) BoundaryByLabel(label int) (*Boundary, error) {
	b, ok := m.boundaryByID[label]
	if !ok {
		return nil, chk.Err("mesh: unknown boundary label %d\n", label)
	}
	return b, nil
}

// RegionByLabel returns the region registered under label.
func (m *Mesh) RegionByLabel(label int) (*Region, error) {
	r, ok := m.regionByID[label]
	if !ok {
		return nil, chk.Err("mesh: unknown region label %d\n", label)
	}
	return r, nil
}

// CellFaces returns the Face objects stored locally for a cell.
func (m *Mesh) CellFaces(c *Cell) []*Face {
	out := make([]*Face, 0, len(c.faceLabels))
	for _, fl := range c.faceLabels {
		out = append(out, m.faceByID[fl])
	}
	return out
}

// NumLocalCells returns the count of locally-owned cells (valid after
// Finalize).
func (m *Mesh) NumLocalCells() int { return m.props.LocalCells }

// NumCells returns the total (local + ghost) cell count.
func (m *Mesh) NumCells() int { return len(m.cells) }
