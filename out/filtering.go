// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// Locator defines interface for locating nodes of a model
type Locator interface {
	Locate(mdl *inp.Model) (Points, error)
}

// N implements node locator by ids
type N []int

// S implements node locator by the name of a node set
type S string

// At implements locator of the node at a position
type At []float64

// Along implements locator of nodes along a segment
//  Example: {{0,0,0}, {1,1,1}}
type Along [][]float64

// AlongX implements locator of nodes along a line parallel to x with []float64{y_cte, z_cte}
type AlongX []float64

// AlongY implements locator of nodes along a line parallel to y with []float64{x_cte, z_cte}
type AlongY []float64

// AlongZ implements locator of nodes along a line parallel to z with []float64{x_cte, y_cte}
type AlongZ []float64

// OnZplane implements locator for nodes on plane perpendicular to z-axis
//  Note: slice must contain at least one value; e.g. []float64{z_cte}
//        a second value is used as tolerance; e.g. []float64{z_cte, z_tolerance}
type OnZplane []float64

// Locate finds nodes
func (o N) Locate(mdl *inp.Model) (res Points, err error) {
	var A []float64 // reference point
	for _, vid := range o {
		nod, ok := mdl.NodeMap[vid]
		if !ok {
			return nil, chk.Err("cannot locate node %d", vid)
		}
		res = append(res, newPoint(nod, A))
		if A == nil {
			A = nod.X
		}
	}
	return
}

// Locate finds the nodes of a set
func (o S) Locate(mdl *inp.Model) (res Points, err error) {
	ids, ok := mdl.Sets.Nodes[string(o)]
	if !ok {
		return nil, chk.Err("cannot find node set %q", string(o))
	}
	return N(ids).Locate(mdl)
}

// Locate finds the node at a position
func (o At) Locate(mdl *inp.Model) (res Points, err error) {
	for _, nod := range mdl.Nodes {
		if dist(nod.X, o) < TolC {
			return Points{newPoint(nod, nil)}, nil
		}
	}
	return nil, chk.Err("cannot locate node at %v", []float64(o))
}

// Locate finds nodes along a segment; the points are sorted by the distance to the first vertex
func (o Along) Locate(mdl *inp.Model) (res Points, err error) {

	// check if there are two points
	if len(o) != 2 {
		return nil, chk.Err("segment must be defined by two points. %v is invalid", [][]float64(o))
	}
	A, B := pad3(o[0]), pad3(o[1])
	L := dist(A, B)
	if L < TolC {
		return nil, chk.Err("segment must have a positive length. %v is invalid", [][]float64(o))
	}

	// nodes with a distance to the line smaller than TolC
	ab := make([]float64, 3)
	for i := 0; i < 3; i++ {
		ab[i] = (B[i] - A[i]) / L
	}
	for _, nod := range mdl.Nodes {
		t := 0.0
		for i := 0; i < 3; i++ {
			t += (nod.X[i] - A[i]) * ab[i]
		}
		d := 0.0
		for i := 0; i < 3; i++ {
			v := nod.X[i] - A[i] - t*ab[i]
			d += v * v
		}
		if math.Sqrt(d) < TolC && t > -TolC && t < L+TolC {
			res = append(res, newPoint(nod, A))
		}
	}
	sort.Sort(res)
	return
}

// Locate finds points
func (o AlongX) Locate(mdl *inp.Model) (res Points, err error) {
	y_cte, z_cte := at(o, 0), at(o, 1)
	return along(mdl, 0, []float64{0, y_cte, z_cte})
}

// Locate finds points
func (o AlongY) Locate(mdl *inp.Model) (res Points, err error) {
	x_cte, z_cte := at(o, 0), at(o, 1)
	return along(mdl, 1, []float64{x_cte, 0, z_cte})
}

// Locate finds points
func (o AlongZ) Locate(mdl *inp.Model) (res Points, err error) {
	x_cte, y_cte := at(o, 0), at(o, 1)
	return along(mdl, 2, []float64{x_cte, y_cte, 0})
}

// Locate finds points on z-plane
func (o OnZplane) Locate(mdl *inp.Model) (res Points, err error) {
	if len(o) < 1 {
		return nil, chk.Err("z-plane requires the z coordinate")
	}
	z_cte := o[0]
	z_tol := TolC
	if len(o) == 2 {
		z_tol = o[1]
	}
	for _, nod := range mdl.Nodes {
		if math.Abs(nod.X[2]-z_cte) < z_tol {
			res = append(res, newPoint(nod, []float64{0, 0, 0}))
		}
	}
	return
}

// AllNodes returns all nodes
func AllNodes(mdl *inp.Model) N {
	var res []int
	for _, nod := range mdl.Nodes {
		res = append(res, nod.Id)
	}
	return res
}

// sorting points by distance
func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// along finds nodes on the line through x parallel to axis idim
func along(mdl *inp.Model, idim int, x []float64) (res Points, err error) {
	A := make([]float64, 3)
	B := make([]float64, 3)
	copy(A, x)
	copy(B, x)
	A[idim] = mdl.Xmin[idim]
	B[idim] = mdl.Xmax[idim]
	if B[idim]-A[idim] < TolC {
		B[idim] = A[idim] + 1
	}
	return Along{A, B}.Locate(mdl)
}

// newPoint returns a new point at a node; Dist is measured from A, if given
func newPoint(nod *inp.Node, A []float64) (p *Point) {
	p = &Point{Vid: nod.Id, X: nod.X}
	if A != nil {
		p.Dist = dist(nod.X, A)
	}
	return
}

// dist computes the distance between two points
func dist(a, b []float64) float64 {
	pa, pb := pad3(a), pad3(b)
	d := 0.0
	for i := 0; i < 3; i++ {
		d += (pa[i] - pb[i]) * (pa[i] - pb[i])
	}
	return math.Sqrt(d)
}

// pad3 returns x with 3 components (missing ones are zero)
func pad3(x []float64) []float64 {
	if len(x) >= 3 {
		return x
	}
	res := make([]float64, 3)
	copy(res, x)
	return res
}

// at returns v[i] or zero
func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}
