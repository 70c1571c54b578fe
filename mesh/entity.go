// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the unstructured-mesh core: per-entity tables
// for cells, faces, boundaries, regions and vertices, label-to-local-id
// remapping, finalization (local/ghost cell reordering), polyhedron
// reconstruction and point-location.
package mesh

import (
	"github.com/cpmech/gosl/fun"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// RegionType enumerates the region kinds a boundary may be tied to.
type RegionType int

const (
	RegionDefault RegionType = iota
	RegionInlet
	RegionOutlet
	RegionSymp
	RegionWall
)

func (t RegionType) String() string {
	switch t {
	case RegionInlet:
		return "inlet"
	case RegionOutlet:
		return "outlet"
	case RegionSymp:
		return "symp"
	case RegionWall:
		return "wall"
	default:
		return "default"
	}
}

// Vertex is a 3D position referenced by faces and boundaries.
type Vertex struct {
	Label   int
	LocalID int
	Pos     euclid.Point3
}

// RegionParams carries a region's scalar/vector fields. Any field may
// instead be driven by a fun.Func of time (Region.Funcs), which is
// evaluated by callers external to this package; a nil entry means the
// bare scalar applies unconditionally.
type RegionParams struct {
	Density   float64
	TurbKE    float64
	TurbDiss  float64
}

// Region is referenced by boundaries; carries a name and scalar/vector
// parameters, optionally overridden by named time-functions.
type Region struct {
	Label   int
	LocalID int
	Type    RegionType
	Name    string
	Params  RegionParams
	Funcs   map[string]fun.Func // optional field-name -> time function override
}

// Cell is a mesh control volume, owned locally or mirrored as a ghost.
type Cell struct {
	Label   int
	LocalID int
	Center  euclid.Point3
	Volume  float64
	IsLocal bool

	faceLabels []int // faces physically stored on this rank for this cell

	nFacesGeom  int // true geometric face count (set at finalize)
	nVertsGeom  int // distinct vertices on the stored faces (set at finalize)

	geomFaceCountOverride int // true face count reported by the source for a
	                          // ghost whose own topology isn't fully stored
	                          // here (see Mesh.SetCellGeomFaceCount)
}

// NFaces returns the true geometric face count (valid even for ghost
// cells after finalize).
func (c *Cell) NFaces() int { return c.nFacesGeom }

// NVertices returns the number of distinct vertices on the cell's
// stored faces (set at finalize). For a ghost cell whose faces are not
// all stored on this rank this is below the cell's real vertex count;
// finalize does not correct it.
func (c *Cell) NVertices() int { return c.nVertsGeom }

// StoredNFaces returns the number of faces physically stored on this
// rank for this cell (for a ghost cell: only faces shared with a
// locally-owned cell).
func (c *Cell) StoredNFaces() int { return len(c.faceLabels) }

// Face connects one or two cells, or one cell and a boundary.
type Face struct {
	Label   int
	LocalID int

	Cell1Label int
	Cell2Label int // meaningful only if !IsBoundary
	IsBoundary bool
	BoundaryLabel int

	VertexLabels []int

	Lambda  float64
	Normal  euclid.Vector3
	Center  euclid.Point3
	Area    float64
	Rlencos float64
	Xpac    euclid.Point3
	Xnac    euclid.Point3
}

// FaceOptional carries the geometric attributes addFace accepts besides
// topology; zero-valued fields mean "not supplied by the source".
type FaceOptional struct {
	Lambda  float64
	Normal  euclid.Vector3
	Center  euclid.Point3
	Xpac    euclid.Point3
	Xnac    euclid.Point3
	Rlencos float64
	Area    float64
}

// Boundary ties exactly one face to a region.
type Boundary struct {
	Label   int
	LocalID int

	FaceLabel    int
	VertexLabels []int
	RegionLabel  int
	Distance     float64
	Yplus        float64
	Uplus        float64
	Shear        euclid.Vector3
	Q, H, T      float64
}

// Properties aggregates global/local counts and mesh-wide bookkeeping.
type Properties struct {
	GlobalCells, LocalCells, GhostCells       int
	GlobalFaces, LocalFaces                   int
	GlobalVertices, LocalVertices             int
	GlobalBoundaries, LocalBoundaries         int
	GlobalRegions, LocalRegions               int
	MaxFacesPerCell                           int
	ScaleFactor                               float64
}
