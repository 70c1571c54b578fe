// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest implements the mesh ingestion driver (C6): given a
// mesh-source abstraction and a per-rank assigned-cell-label list, it
// builds the distributed connectivity graph, queries the source for the
// minimum necessary labels, and populates a mesh.Mesh in dependency order.
package ingest

import (
	"sort"

	"github.com/warwick-hpsc/CUP-CFD-sub002/arrays"
	"github.com/warwick-hpsc/CUP-CFD-sub002/mesh"
	"github.com/warwick-hpsc/CUP-CFD-sub002/meshgraph"
	"github.com/warwick-hpsc/CUP-CFD-sub002/meshsource"
)

// Ingest is collective across the mesh's communicator (every rank must
// call it with its own assignedCellLabels). It builds the connectivity
// graph, pulls the minimum necessary labels from src, populates dst in
// dependency order (vertices, regions, cells, boundaries, faces), and
// calls dst.Finalize.
func Ingest(src meshsource.Source, assignedCellLabels []int, dst *mesh.Mesh) error {

	// 1. build the connectivity graph: query each assigned cell's face
	// neighbours, which determines ghost cells once finalized.
	graph := meshgraph.New()
	cellFaceLabels := make(map[int][]int)
	for _, cl := range assignedCellLabels {
		if err := graph.AddLocalCell(cl); err != nil {
			return err
		}
	}
	faceLists, err := src.CellFaceLabels(assignedCellLabels)
	if err != nil {
		return err
	}
	var allFaceLabelsUnsorted []int
	for i, cl := range assignedCellLabels {
		cellFaceLabels[cl] = faceLists[i]
		allFaceLabelsUnsorted = append(allFaceLabelsUnsorted, faceLists[i]...)
	}

	faceGeoms, err := src.FaceGeometry(dedupSorted(allFaceLabelsUnsorted))
	if err != nil {
		return err
	}
	faceLabelsSorted := dedupSorted(allFaceLabelsUnsorted)
	faceGeomByLabel := make(map[int]meshsource.FaceGeom, len(faceLabelsSorted))
	for i, fl := range faceLabelsSorted {
		faceGeomByLabel[fl] = faceGeoms[i]
	}

	for _, cl := range assignedCellLabels {
		for _, fl := range cellFaceLabels[cl] {
			fg := faceGeomByLabel[fl]
			if fg.IsBoundary {
				continue
			}
			other := fg.Cell1Label
			if other == cl {
				other = fg.Cell2Label
			}
			if err := graph.AddAdjacency(cl, other); err != nil {
				return err
			}
		}
	}
	if err := graph.Finalize(); err != nil {
		return err
	}
	ghostCellLabels := graph.GhostNodes()

	// 2. sorted union of face labels attached to any assigned (local) cell.
	localFaceLabels := dedupSorted(allFaceLabelsUnsorted)

	// ghost cells need their own face lists too: each list's length is
	// recorded as that ghost's geometric face count (SetCellGeomFaceCount
	// below), and its faces are candidates for the face pass below.
	ghostFaceLists, err := src.CellFaceLabels(ghostCellLabels)
	if err != nil {
		return err
	}
	ghostFaceLabelsByCell := make(map[int][]int, len(ghostCellLabels))
	for i, gl := range ghostCellLabels {
		ghostFaceLabelsByCell[gl] = ghostFaceLists[i]
	}

	// 3. partition face labels into boundary / non-boundary subsets.
	var boundaryFaceLabels []int
	for _, fl := range localFaceLabels {
		if faceGeomByLabel[fl].IsBoundary {
			boundaryFaceLabels = append(boundaryFaceLabels, fl)
		}
	}

	// 4. sorted union of vertex labels referenced by any such face or
	// boundary.
	boundaryLabels := boundaryLabelsOf(boundaryFaceLabels, faceGeomByLabel)
	boundaryGeoms, err := src.BoundaryGeometry(boundaryLabels)
	if err != nil {
		return err
	}

	var allVertexLabelsUnsorted []int
	for _, fl := range localFaceLabels {
		allVertexLabelsUnsorted = append(allVertexLabelsUnsorted, faceGeomByLabel[fl].VertexLabels...)
	}
	for _, bg := range boundaryGeoms {
		allVertexLabelsUnsorted = append(allVertexLabelsUnsorted, bg.VertexLabels...)
	}
	vertexLabels := dedupSorted(allVertexLabelsUnsorted)

	// 5. all region labels (few enough to read unconditionally).
	regionLabels := src.AllRegionLabels()

	// 6. query the source and populate dst in dependency order.
	vertexPositions, err := src.VertexPositions(vertexLabels)
	if err != nil {
		return err
	}
	for i, vl := range vertexLabels {
		if err := dst.AddVertex(vl, vertexPositions[i]); err != nil {
			return err
		}
	}

	regionGeoms, err := src.RegionGeometry(regionLabels)
	if err != nil {
		return err
	}
	for i, rl := range regionLabels {
		rg := regionGeoms[i]
		params := mesh.RegionParams{Density: rg.Density, TurbKE: rg.TurbKE, TurbDiss: rg.TurbDiss}
		if err := dst.AddRegion(rl, rg.Name, mesh.RegionDefault, params); err != nil {
			return err
		}
	}

	allCellLabels := append(append([]int(nil), assignedCellLabels...), ghostCellLabels...)
	cellGeoms, err := src.CellGeometry(allCellLabels)
	if err != nil {
		return err
	}
	for i, cl := range assignedCellLabels {
		cg := cellGeoms[i]
		if err := dst.AddCell(cl, cg.Center, cg.Volume, true); err != nil {
			return err
		}
	}
	for i, gl := range ghostCellLabels {
		cg := cellGeoms[len(assignedCellLabels)+i]
		if err := dst.AddCell(gl, cg.Center, cg.Volume, false); err != nil {
			return err
		}
		if err := dst.SetCellGeomFaceCount(gl, len(ghostFaceLabelsByCell[gl])); err != nil {
			return err
		}
	}

	for i, bl := range boundaryLabels {
		bg := boundaryGeoms[i]
		if err := dst.AddBoundary(bl, bg.RegionLabel, bg.VertexLabels, bg.Distance); err != nil {
			return err
		}
	}

	// faces: local faces plus every ghost cell's own stored faces (so
	// ghosts that border more than one owned cell can still be
	// reconstructed as polyhedra if needed) — but only the subset whose
	// endpoints are both known (local or ghost-registered) cells; a
	// ghost's face to a 2-ring neighbour that never became a ghost itself
	// (only 1-ring neighbours discovered via graph.AddAdjacency do) is
	// counted towards the ghost's geometric face count above but never
	// materialized as a mesh Face, since dst.AddFace would reject it.
	var allFacesToAdd []int
	allFacesToAdd = append(allFacesToAdd, localFaceLabels...)
	for _, gl := range ghostCellLabels {
		allFacesToAdd = append(allFacesToAdd, ghostFaceLabelsByCell[gl]...)
	}
	allFacesToAdd = dedupSorted(allFacesToAdd)

	allFaceGeoms, err := src.FaceGeometry(allFacesToAdd)
	if err != nil {
		return err
	}
	localFaceSet := make(map[int]bool, len(localFaceLabels))
	for _, fl := range localFaceLabels {
		localFaceSet[fl] = true
	}
	knownCellSet := make(map[int]bool, len(assignedCellLabels)+len(ghostCellLabels))
	for _, cl := range assignedCellLabels {
		knownCellSet[cl] = true
	}
	for _, gl := range ghostCellLabels {
		knownCellSet[gl] = true
	}
	for i, fl := range allFacesToAdd {
		fg := allFaceGeoms[i]
		if fg.IsBoundary {
			// a ghost cell's own boundary face belongs to no locally-owned
			// cell and its boundary entity was never fetched here; only
			// faces shared with an owned cell matter to this rank.
			if !localFaceSet[fl] {
				continue
			}
		} else if !knownCellSet[fg.Cell1Label] || !knownCellSet[fg.Cell2Label] {
			continue
		}
		opt := mesh.FaceOptional{
			Lambda:  fg.Lambda,
			Normal:  fg.Normal,
			Center:  fg.Center,
			Xpac:    fg.Xpac,
			Xnac:    fg.Xnac,
			Rlencos: fg.Rlencos,
			Area:    fg.Area,
		}
		second := fg.Cell2Label
		if fg.IsBoundary {
			second = fg.BoundaryLabel
		}
		if err := dst.AddFace(fl, fg.Cell1Label, second, fg.IsBoundary, fg.VertexLabels, opt); err != nil {
			return err
		}
	}

	// 7. finalize.
	return dst.Finalize()
}

func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	distinct, _ := arrays.DistinctArray(cp)
	return distinct
}

func boundaryLabelsOf(boundaryFaceLabels []int, faceGeomByLabel map[int]meshsource.FaceGeom) []int {
	out := make([]int, 0, len(boundaryFaceLabels))
	for _, fl := range boundaryFaceLabels {
		out = append(out, faceGeomByLabel[fl].BoundaryLabel)
	}
	sort.Ints(out)
	return out
}

