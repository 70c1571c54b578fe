// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshsource

import (
	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// StructuredGrid is a regular box mesh of nx*ny*nz hexahedral cells,
// labelled positionally per §6: cell label = x + nx*y + nx*ny*z; face
// labels are partitioned into three ranges (YZ-plane, then XZ-plane, then
// XY-plane, i.e. faces perpendicular to x, then y, then z); vertex labels
// are indexed on the (nx+1, ny+1, nz+1) nodal lattice; boundary labels
// follow the same three-range partition but only at the two domain ends
// of the perpendicular axis.
type StructuredGrid struct {
	nx, ny, nz int
	dx, dy, dz float64
	origin     euclid.Point3

	cells      []cellRec
	faces      []faceRec
	boundaries []boundaryRec
	vertices   []euclid.Point3
}

type cellRec struct {
	faceLabels []int
	center     euclid.Point3
	volume     float64
}

type faceRec struct {
	cell1, cell2  int
	isBoundary    bool
	boundaryLabel int
	vertexLabels  []int
	normal        euclid.Vector3
	center        euclid.Point3
	area          float64
}

type boundaryRec struct {
	faceLabel    int
	vertexLabels []int
	distance     float64
}

// NewStructuredGrid builds a regular grid of nx*ny*nz unit (scaled by
// cellSize) cells anchored at origin.
func NewStructuredGrid(nx, ny, nz int, origin euclid.Point3, cellSize float64) (*StructuredGrid, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("meshsource: grid dimensions must be >= 1, got (%d,%d,%d)\n", nx, ny, nz)
	}
	g := &StructuredGrid{nx: nx, ny: ny, nz: nz, dx: cellSize, dy: cellSize, dz: cellSize, origin: origin}
	g.buildVertices()
	g.buildFaces()
	g.buildCells()
	g.buildBoundaries()
	return g, nil
}

func (g *StructuredGrid) vertexLabel(i, j, k int) int {
	return i + (g.nx+1)*j + (g.nx+1)*(g.ny+1)*k
}

func (g *StructuredGrid) cellLabel(x, y, z int) int {
	return x + g.nx*y + g.nx*g.ny*z
}

func (g *StructuredGrid) buildVertices() {
	g.vertices = make([]euclid.Point3, (g.nx+1)*(g.ny+1)*(g.nz+1))
	for k := 0; k <= g.nz; k++ {
		for j := 0; j <= g.ny; j++ {
			for i := 0; i <= g.nx; i++ {
				p := euclid.NewPoint3(g.origin.X+float64(i)*g.dx, g.origin.Y+float64(j)*g.dy, g.origin.Z+float64(k)*g.dz)
				g.vertices[g.vertexLabel(i, j, k)] = p
			}
		}
	}
}

// yzCount/xzCount/xyCount are the per-range face counts.
func (g *StructuredGrid) yzCount() int { return (g.nx + 1) * g.ny * g.nz }
func (g *StructuredGrid) xzCount() int { return g.nx * (g.ny + 1) * g.nz }
func (g *StructuredGrid) xyCount() int { return g.nx * g.ny * (g.nz + 1) }

func (g *StructuredGrid) yzFaceLabel(i, j, k int) int { return i + (g.nx+1)*j + (g.nx+1)*g.ny*k }
func (g *StructuredGrid) xzFaceLabel(i, j, k int) int {
	return g.yzCount() + i + g.nx*j + g.nx*(g.ny+1)*k
}
func (g *StructuredGrid) xyFaceLabel(i, j, k int) int {
	return g.yzCount() + g.xzCount() + i + g.nx*j + g.nx*g.ny*k
}

func (g *StructuredGrid) buildFaces() {
	total := g.yzCount() + g.xzCount() + g.xyCount()
	g.faces = make([]faceRec, total)

	// YZ-plane faces: perpendicular to x, at x=i for i in [0,nx]
	for k := 0; k < g.nz; k++ {
		for j := 0; j < g.ny; j++ {
			for i := 0; i <= g.nx; i++ {
				lbl := g.yzFaceLabel(i, j, k)
				f := faceRec{
					normal: euclid.NewVector3(1, 0, 0),
					center: euclid.NewPoint3(g.origin.X+float64(i)*g.dx, g.origin.Y+(float64(j)+0.5)*g.dy, g.origin.Z+(float64(k)+0.5)*g.dz),
					area:   g.dy * g.dz,
					vertexLabels: []int{
						g.vertexLabel(i, j, k), g.vertexLabel(i, j+1, k),
						g.vertexLabel(i, j+1, k+1), g.vertexLabel(i, j, k+1),
					},
				}
				if i == 0 {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(0, j, k), -1, true
				} else if i == g.nx {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(g.nx-1, j, k), -1, true
				} else {
					f.cell1, f.cell2 = g.cellLabel(i-1, j, k), g.cellLabel(i, j, k)
				}
				g.faces[lbl] = f
			}
		}
	}

	// XZ-plane faces: perpendicular to y, at y=j for j in [0,ny]
	for k := 0; k < g.nz; k++ {
		for j := 0; j <= g.ny; j++ {
			for i := 0; i < g.nx; i++ {
				lbl := g.xzFaceLabel(i, j, k)
				f := faceRec{
					normal: euclid.NewVector3(0, 1, 0),
					center: euclid.NewPoint3(g.origin.X+(float64(i)+0.5)*g.dx, g.origin.Y+float64(j)*g.dy, g.origin.Z+(float64(k)+0.5)*g.dz),
					area:   g.dx * g.dz,
					vertexLabels: []int{
						g.vertexLabel(i, j, k), g.vertexLabel(i+1, j, k),
						g.vertexLabel(i+1, j, k+1), g.vertexLabel(i, j, k+1),
					},
				}
				if j == 0 {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(i, 0, k), -1, true
				} else if j == g.ny {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(i, g.ny-1, k), -1, true
				} else {
					f.cell1, f.cell2 = g.cellLabel(i, j-1, k), g.cellLabel(i, j, k)
				}
				g.faces[lbl] = f
			}
		}
	}

	// XY-plane faces: perpendicular to z, at z=k for k in [0,nz]
	for k := 0; k <= g.nz; k++ {
		for j := 0; j < g.ny; j++ {
			for i := 0; i < g.nx; i++ {
				lbl := g.xyFaceLabel(i, j, k)
				f := faceRec{
					normal: euclid.NewVector3(0, 0, 1),
					center: euclid.NewPoint3(g.origin.X+(float64(i)+0.5)*g.dx, g.origin.Y+(float64(j)+0.5)*g.dy, g.origin.Z+float64(k)*g.dz),
					area:   g.dx * g.dy,
					vertexLabels: []int{
						g.vertexLabel(i, j, k), g.vertexLabel(i+1, j, k),
						g.vertexLabel(i+1, j+1, k), g.vertexLabel(i, j+1, k),
					},
				}
				if k == 0 {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(i, j, 0), -1, true
				} else if k == g.nz {
					f.cell1, f.cell2, f.isBoundary = g.cellLabel(i, j, g.nz-1), -1, true
				} else {
					f.cell1, f.cell2 = g.cellLabel(i, j, k-1), g.cellLabel(i, j, k)
				}
				g.faces[lbl] = f
			}
		}
	}
}

func (g *StructuredGrid) buildCells() {
	g.cells = make([]cellRec, g.nx*g.ny*g.nz)
	for z := 0; z < g.nz; z++ {
		for y := 0; y < g.ny; y++ {
			for x := 0; x < g.nx; x++ {
				lbl := g.cellLabel(x, y, z)
				g.cells[lbl] = cellRec{
					center: euclid.NewPoint3(g.origin.X+(float64(x)+0.5)*g.dx, g.origin.Y+(float64(y)+0.5)*g.dy, g.origin.Z+(float64(z)+0.5)*g.dz),
					volume: g.dx * g.dy * g.dz,
					faceLabels: []int{
						g.yzFaceLabel(x, y, z), g.yzFaceLabel(x+1, y, z),
						g.xzFaceLabel(x, y, z), g.xzFaceLabel(x, y+1, z),
						g.xyFaceLabel(x, y, z), g.xyFaceLabel(x, y, z+1),
					},
				}
			}
		}
	}
}

func (g *StructuredGrid) buildBoundaries() {
	for lbl := range g.faces {
		f := &g.faces[lbl]
		if !f.isBoundary {
			continue
		}
		blabel := len(g.boundaries)
		f.boundaryLabel = blabel
		g.boundaries = append(g.boundaries, boundaryRec{
			faceLabel:    lbl,
			vertexLabels: append([]int(nil), f.vertexLabels...),
			distance:     0,
		})
	}
}

func (g *StructuredGrid) CellCount() int      { return len(g.cells) }
func (g *StructuredGrid) FaceCount() int      { return len(g.faces) }
func (g *StructuredGrid) VertexCount() int    { return len(g.vertices) }
func (g *StructuredGrid) BoundaryCount() int  { return len(g.boundaries) }
func (g *StructuredGrid) RegionCount() int    { return 1 }

func (g *StructuredGrid) CellFaceLabels(cellLabels []int) ([][]int, error) {
	out := make([][]int, len(cellLabels))
	for i, l := range cellLabels {
		if l < 0 || l >= len(g.cells) {
			return nil, chk.Err("meshsource: unknown cell label %d\n", l)
		}
		out[i] = append([]int(nil), g.cells[l].faceLabels...)
	}
	return out, nil
}

func (g *StructuredGrid) CellGeometry(cellLabels []int) ([]CellGeom, error) {
	out := make([]CellGeom, len(cellLabels))
	for i, l := range cellLabels {
		if l < 0 || l >= len(g.cells) {
			return nil, chk.Err("meshsource: unknown cell label %d\n", l)
		}
		out[i] = CellGeom{Center: g.cells[l].center, Volume: g.cells[l].volume}
	}
	return out, nil
}

func (g *StructuredGrid) FaceGeometry(faceLabels []int) ([]FaceGeom, error) {
	out := make([]FaceGeom, len(faceLabels))
	for i, l := range faceLabels {
		if l < 0 || l >= len(g.faces) {
			return nil, chk.Err("meshsource: unknown face label %d\n", l)
		}
		f := g.faces[l]
		out[i] = FaceGeom{
			Cell1Label:    f.cell1,
			Cell2Label:    f.cell2,
			IsBoundary:    f.isBoundary,
			BoundaryLabel: f.boundaryLabel,
			VertexLabels:  append([]int(nil), f.vertexLabels...),
			Normal:        f.normal,
			Center:        f.center,
			Area:          f.area,
			Lambda:        0.5,
		}
	}
	return out, nil
}

func (g *StructuredGrid) BoundaryGeometry(boundaryLabels []int) ([]BoundaryGeom, error) {
	out := make([]BoundaryGeom, len(boundaryLabels))
	for i, l := range boundaryLabels {
		if l < 0 || l >= len(g.boundaries) {
			return nil, chk.Err("meshsource: unknown boundary label %d\n", l)
		}
		b := g.boundaries[l]
		out[i] = BoundaryGeom{
			FaceLabel:    b.faceLabel,
			VertexLabels: append([]int(nil), b.vertexLabels...),
			RegionLabel:  0,
			Distance:     b.distance,
		}
	}
	return out, nil
}

// RegionGeometry always reports the single "Default" region, per §9's
// ambiguity note on region-name retrieval.
func (g *StructuredGrid) RegionGeometry(regionLabels []int) ([]RegionGeom, error) {
	out := make([]RegionGeom, len(regionLabels))
	for i, l := range regionLabels {
		if l != 0 {
			return nil, chk.Err("meshsource: unknown region label %d\n", l)
		}
		out[i] = RegionGeom{Name: "Default"}
	}
	return out, nil
}

func (g *StructuredGrid) VertexPositions(vertexLabels []int) ([]euclid.Point3, error) {
	out := make([]euclid.Point3, len(vertexLabels))
	for i, l := range vertexLabels {
		if l < 0 || l >= len(g.vertices) {
			return nil, chk.Err("meshsource: unknown vertex label %d\n", l)
		}
		out[i] = g.vertices[l]
	}
	return out, nil
}

func (g *StructuredGrid) AllRegionLabels() []int { return []int{0} }
