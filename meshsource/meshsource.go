// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshsource defines the mesh-source external collaborator (§6):
// every operation accepts a label slice and fills a matching output slice,
// never an index. One concrete structured-grid implementation is provided,
// labelling cells/faces/vertices/boundaries positionally.
package meshsource

import "github.com/warwick-hpsc/CUP-CFD-sub002/euclid"

// CellGeom is the per-cell geometric summary a source reports.
type CellGeom struct {
	Center euclid.Point3
	Volume float64
}

// FaceGeom is the per-face geometric summary a source reports.
type FaceGeom struct {
	Cell1Label    int
	Cell2Label    int // meaningful only if !IsBoundary
	IsBoundary    bool
	BoundaryLabel int
	VertexLabels  []int
	Lambda        float64
	Normal        euclid.Vector3
	Center        euclid.Point3
	Area          float64
	Rlencos       float64
	Xpac, Xnac    euclid.Point3
}

// BoundaryGeom is the per-boundary metadata a source reports.
type BoundaryGeom struct {
	FaceLabel    int
	VertexLabels []int
	RegionLabel  int
	Distance     float64
}

// RegionGeom is the per-region metadata a source reports.
type RegionGeom struct {
	Name     string
	Density  float64
	TurbKE   float64
	TurbDiss float64
}

// Source is the external mesh-source abstraction (§6). Every batch
// operation takes a label slice and returns one entry per label, in the
// same order; implementations must reject unknown labels with an error.
type Source interface {
	CellCount() int
	FaceCount() int
	VertexCount() int
	BoundaryCount() int
	RegionCount() int

	// CellFaceLabels returns, for each requested cell label, the face
	// labels bounding that cell (the source's cell->faces CSR).
	CellFaceLabels(cellLabels []int) ([][]int, error)

	// CellGeometry returns per-cell center/volume for each requested
	// cell label.
	CellGeometry(cellLabels []int) ([]CellGeom, error)

	// FaceGeometry returns full per-face topology and geometry for each
	// requested face label.
	FaceGeometry(faceLabels []int) ([]FaceGeom, error)

	// BoundaryGeometry returns per-boundary metadata for each requested
	// boundary label.
	BoundaryGeometry(boundaryLabels []int) ([]BoundaryGeom, error)

	// RegionGeometry returns per-region metadata for each requested
	// region label.
	RegionGeometry(regionLabels []int) ([]RegionGeom, error)

	// VertexPositions returns the 3D position for each requested vertex
	// label.
	VertexPositions(vertexLabels []int) ([]euclid.Point3, error)

	// AllRegionLabels returns every region label the source knows about
	// (regions are typically few enough to read unconditionally, per
	// the ingestion driver's step 5).
	AllRegionLabels() []int
}
