// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/warwick-hpsc/CUP-CFD-sub002/euclid"

// orientedFace is a planar face with its outward-pointing unit normal,
// used by the common isPointInside skeleton shared by every polyhedron:
// for each oriented outward face, compute dot(normal, P - faceVertex); P
// is inside iff that value is <= 0 (within tolerance) for every face.
type orientedFace struct {
	normal euclid.Vector3
	anchor euclid.Point3 // any vertex on the face
}

// orientOutward returns normal, flipped if necessary so that it points
// away from interior (a point known to be inside the polyhedron).
func orientOutward(normal euclid.Vector3, anchor, interior euclid.Point3) euclid.Vector3 {
	if normal.Dot(interior.Sub(anchor)) > 0 {
		return normal.Scale(-1)
	}
	return normal
}

// pointInsideConvex implements the common polyhedron point-containment
// skeleton: explicit on-vertex/on-edge checks first (to avoid false
// negatives from numerical noise accumulated across several half-space
// tests), then a dot-product half-space test against every oriented
// outward face.
func pointInsideConvex(p euclid.Point3, vertices []euclid.Point3, edges [][2]euclid.Point3, faces []orientedFace) bool {
	for _, v := range vertices {
		if p.Equals(v, Tol) {
			return true
		}
	}
	for _, e := range edges {
		if isOnSegment(p, e[0], e[1]) {
			return true
		}
	}
	for _, f := range faces {
		d := f.normal.Dot(p.Sub(f.anchor))
		if d > Tol {
			return false
		}
	}
	return true
}

// edgesOfCycle returns the edges of a cyclically-connected vertex list
// (vertex[i] connects to vertex[(i+1) mod n]).
func edgesOfCycle(verts []euclid.Point3) [][2]euclid.Point3 {
	n := len(verts)
	edges := make([][2]euclid.Point3, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]euclid.Point3{verts[i], verts[(i+1)%n]}
	}
	return edges
}
