// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
	"github.com/warwick-hpsc/CUP-CFD-sub002/shapes"
)

// BuildPolyhedron reconstructs cell localID's geometry as a concrete
// shapes.Shape. It confirms (nVertices, nFaces) matches a known target,
// rebuilds the edge set from the cell's stored faces and checks it against
// the Euler-expected edge count for that shape, then dispatches to the
// shape-specific constructor.
func (m *Mesh) BuildPolyhedron(localID int) (shapes.Shape, error) {
	c, err := m.Cell(localID)
	if err != nil {
		return nil, err
	}
	faces := m.CellFaces(c)
	if len(faces) == 0 {
		return nil, chk.Err("mesh: cell %d has no stored faces; cannot reconstruct polyhedron\n", c.Label)
	}

	nVerts := distinctVertexCount(m, c)
	nFaces := len(faces)
	kind := shapes.FindPolyhedronType(nVerts, nFaces)
	if kind == shapes.Unknown {
		return nil, chk.Err("mesh: cell %d has (nVerts=%d, nFaces=%d), no known polyhedron matches\n", c.Label, nVerts, nFaces)
	}

	edges, err := countDistinctEdges(m, faces)
	if err != nil {
		return nil, err
	}
	_, wantFaces, wantEdges := shapeCounts(kind)
	if wantFaces != nFaces {
		return nil, chk.Err("mesh: cell %d polyhedron-mismatch: %s expects %d faces, has %d\n", c.Label, kind, wantFaces, nFaces)
	}
	if edges != wantEdges {
		return nil, chk.Err("mesh: cell %d edge-count-mismatch: %s expects %d edges, has %d\n", c.Label, kind, wantEdges, edges)
	}

	switch kind {
	case shapes.TypeTetrahedron:
		return buildTetrahedron(m, faces)
	case shapes.TypeQuadPyramid:
		return buildQuadPyramid(m, faces)
	case shapes.TypeTriPrism:
		return buildTriPrism(m, faces)
	case shapes.TypeHexahedron:
		return buildHexahedron(m, faces)
	default:
		return nil, chk.Err("mesh: cell %d: unsupported polyhedron kind\n", c.Label)
	}
}

func shapeCounts(kind shapes.PolyhedronType) (nVerts, nFaces, nEdges int) {
	switch kind {
	case shapes.TypeTetrahedron:
		return shapes.TetrahedronCounts()
	case shapes.TypeQuadPyramid:
		return shapes.QuadPyramidCounts()
	case shapes.TypeTriPrism:
		return shapes.TriPrismCounts()
	case shapes.TypeHexahedron:
		return shapes.HexahedronCounts()
	default:
		return 0, 0, 0
	}
}

// countDistinctEdges rebuilds the edge set by pairwise-scanning
// consecutive vertices per face (including the wrap-around edge),
// rejecting duplicate edges (an edge shared by two faces is one edge).
func countDistinctEdges(m *Mesh, faces []*Face) (int, error) {
	seen := make(map[[2]int]bool)
	for _, f := range faces {
		n := len(f.VertexLabels)
		if n < 3 {
			return 0, chk.Err("mesh: face %d has fewer than 3 vertices\n", f.Label)
		}
		for i := 0; i < n; i++ {
			a, b := f.VertexLabels[i], f.VertexLabels[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			seen[[2]int{a, b}] = true
		}
	}
	return len(seen), nil
}

func vertexPos(m *Mesh, label int) euclid.Point3 {
	v := m.vertexByID[label]
	return v.Pos
}

func faceVertexPositions(m *Mesh, f *Face) []euclid.Point3 {
	out := make([]euclid.Point3, len(f.VertexLabels))
	for i, vl := range f.VertexLabels {
		out[i] = vertexPos(m, vl)
	}
	return out
}

func buildTetrahedron(m *Mesh, faces []*Face) (*shapes.Tetrahedron, error) {
	// any face can serve as the base; the apex is the single vertex not
	// referenced by that face.
	base := faceVertexPositions(m, faces[0])
	baseSet := make(map[int]bool)
	for _, vl := range faces[0].VertexLabels {
		baseSet[vl] = true
	}
	var apexLabel int
	found := false
	for _, f := range faces {
		for _, vl := range f.VertexLabels {
			if !baseSet[vl] {
				apexLabel = vl
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, chk.Err("mesh: tetrahedron reconstruction could not locate an apex vertex\n")
	}
	tri := shapes.NewTriangle3D(base[0], base[1], base[2])
	return shapes.NewTetrahedron(vertexPos(m, apexLabel), tri), nil
}

func buildQuadPyramid(m *Mesh, faces []*Face) (*shapes.QuadPyramid, error) {
	var baseFace *Face
	for _, f := range faces {
		if len(f.VertexLabels) == 4 {
			baseFace = f
			break
		}
	}
	if baseFace == nil {
		return nil, chk.Err("mesh: quad pyramid reconstruction found no quadrilateral base face\n")
	}
	baseSet := make(map[int]bool)
	for _, vl := range baseFace.VertexLabels {
		baseSet[vl] = true
	}
	var apexLabel int
	found := false
	for _, f := range faces {
		for _, vl := range f.VertexLabels {
			if !baseSet[vl] {
				apexLabel = vl
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, chk.Err("mesh: quad pyramid reconstruction could not locate an apex vertex\n")
	}
	bv := faceVertexPositions(m, baseFace)
	quad := shapes.NewQuadrilateral3D(bv[0], bv[1], bv[2], bv[3])
	return shapes.NewQuadPyramid(vertexPos(m, apexLabel), quad), nil
}

func buildTriPrism(m *Mesh, faces []*Face) (*shapes.TriPrism, error) {
	var tris []*Face
	var sides []*shapes.Quadrilateral3D
	for _, f := range faces {
		switch len(f.VertexLabels) {
		case 3:
			tris = append(tris, f)
		case 4:
			v := faceVertexPositions(m, f)
			sides = append(sides, shapes.NewQuadrilateral3D(v[0], v[1], v[2], v[3]))
		}
	}
	if len(tris) != 2 {
		return nil, chk.Err("mesh: tri prism reconstruction expects exactly 2 triangular faces, found %d\n", len(tris))
	}
	if len(sides) != 3 {
		return nil, chk.Err("mesh: tri prism reconstruction expects exactly 3 quadrilateral side faces, found %d\n", len(sides))
	}
	topV := faceVertexPositions(m, tris[0])
	botV := faceVertexPositions(m, tris[1])
	top := shapes.NewTriangle3D(topV[0], topV[1], topV[2])
	bottom, err := reorderTriangleToMatch(topV, botV, sides)
	if err != nil {
		return nil, err
	}
	return shapes.NewTriPrism(top, bottom), nil
}

// reorderTriangleToMatch reorders bot's vertices so that bot[i] is the
// vertex connected to top[i] by a prism edge, using the true side-face
// adjacency (the 3 quadrilateral faces each share one top and one bottom
// vertex pair) rather than nearest-point distance, matching the approach
// shapes.Hexahedron's correspondingTopVertex takes for the analogous
// top/bottom quad correspondence.
func reorderTriangleToMatch(top, bot []euclid.Point3, sides []*shapes.Quadrilateral3D) (*shapes.Triangle3D, error) {
	inTop := func(p euclid.Point3) bool {
		for _, v := range top {
			if p.Equals(v, shapes.Tol) {
				return true
			}
		}
		return false
	}
	ordered := make([]euclid.Point3, 3)
	for i, bi := range bot {
		match, ok := euclid.Point3{}, false
		for _, s := range sides {
			verts := s.Vertices()
			for idx, v := range verts {
				if !v.Equals(bi, shapes.Tol) {
					continue
				}
				prev := verts[(idx+3)%4]
				next := verts[(idx+1)%4]
				if inTop(prev) {
					match, ok = prev, true
				} else if inTop(next) {
					match, ok = next, true
				}
			}
			if ok {
				break
			}
		}
		if !ok {
			return nil, chk.Err("mesh: tri prism reconstruction could not match bottom vertex %d to a top vertex via side faces\n", i)
		}
		for j, t := range top {
			if t.Equals(match, shapes.Tol) {
				ordered[j] = bi
			}
		}
	}
	return shapes.NewTriangle3D(ordered[0], ordered[1], ordered[2]), nil
}

func buildHexahedron(m *Mesh, faces []*Face) (*shapes.Hexahedron, error) {
	if len(faces) != 6 {
		return nil, chk.Err("mesh: hexahedron reconstruction expects exactly 6 faces, found %d\n", len(faces))
	}
	quads := make([]*shapes.Quadrilateral3D, 6)
	for i, f := range faces {
		if len(f.VertexLabels) != 4 {
			return nil, chk.Err("mesh: hexahedron reconstruction expects quadrilateral faces, face %d has %d vertices\n", f.Label, len(f.VertexLabels))
		}
		v := faceVertexPositions(m, f)
		quads[i] = shapes.NewQuadrilateral3D(v[0], v[1], v[2], v[3])
	}
	return shapes.NewHexahedron(quads[0], quads[1], quads[2], quads[3], quads[4], quads[5]), nil
}
