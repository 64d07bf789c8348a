// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Tri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	    s
	    |
	    2
	    | `.
	    |   `.
	    |     `.
	    0-------1 --r
	*/
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// Tri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Tri6(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	    s
	    |
	    2
	    | `.
	    5   4
	    |     `.
	    0---3---1 --r
	*/
	r, s := R[0], R[1]
	L := 1.0 - r - s
	S[0] = L * (2.0*L - 1.0)
	S[1] = r * (2.0*r - 1.0)
	S[2] = s * (2.0*s - 1.0)
	S[3] = 4.0 * r * L
	S[4] = 4.0 * r * s
	S[5] = 4.0 * s * L

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1] = 1.0-4.0*L, 1.0-4.0*L
	dSdR[1][0], dSdR[1][1] = 4.0*r-1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 4.0*s-1.0
	dSdR[3][0], dSdR[3][1] = 4.0*(L-r), -4.0*r
	dSdR[4][0], dSdR[4][1] = 4.0*s, 4.0*r
	dSdR[5][0], dSdR[5][1] = -4.0*s, 4.0*(L-s)
}

func newTri3() *Shape {
	return &Shape{
		Type:           "tri3",
		Func:           Tri3,
		BasicType:      "tri3",
		FaceType:       "lin2",
		Class:          "tri",
		Gndim:          2,
		Nverts:         3,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

func newTri6() *Shape {
	return &Shape{
		Type:           "tri6",
		Func:           Tri6,
		BasicType:      "tri3",
		FaceType:       "lin3",
		Class:          "tri",
		Gndim:          2,
		Nverts:         6,
		FaceLocalVerts: [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}},
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0},
			{0, 0, 1, 0, 0.5, 0.5},
		},
	}
}
