// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Tet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Tet4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	              t
	              |
	              3
	             /|`.
	             ||  `,
	            / |    ',
	            | |      \
	           /  |       `.
	           |  |         `,
	          /   |           `,
	          |   |             \
	         /    |              `.
	         |    0 ______________2------s
	        /  ,'                ,'
	        | ,'            _,-'`
	        ,'          _,-'`
	      1'--------''`
	     ,'
	    r
	*/
	r, s, t := R[0], R[1], R[2]
	S[0] = 1.0 - r - s - t
	S[1] = r
	S[2] = s
	S[3] = t

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
}

// Tet10 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet10
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//  Note: mid-edge vertices are 4:(0,1) 5:(1,2) 6:(2,0) 7:(0,3) 8:(1,3) 9:(2,3)
func Tet10(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	L := 1.0 - r - s - t
	S[0] = L * (2.0*L - 1.0)
	S[1] = r * (2.0*r - 1.0)
	S[2] = s * (2.0*s - 1.0)
	S[3] = t * (2.0*t - 1.0)
	S[4] = 4.0 * r * L
	S[5] = 4.0 * r * s
	S[6] = 4.0 * s * L
	S[7] = 4.0 * t * L
	S[8] = 4.0 * r * t
	S[9] = 4.0 * s * t

	if !derivs {
		return
	}

	a := 1.0 - 4.0*L
	dSdR[0][0], dSdR[0][1], dSdR[0][2] = a, a, a
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 4.0*r-1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 4.0*s-1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 4.0*t-1.0
	dSdR[4][0], dSdR[4][1], dSdR[4][2] = 4.0*(L-r), -4.0*r, -4.0*r
	dSdR[5][0], dSdR[5][1], dSdR[5][2] = 4.0*s, 4.0*r, 0.0
	dSdR[6][0], dSdR[6][1], dSdR[6][2] = -4.0*s, 4.0*(L-s), -4.0*s
	dSdR[7][0], dSdR[7][1], dSdR[7][2] = -4.0*t, -4.0*t, 4.0*(L-t)
	dSdR[8][0], dSdR[8][1], dSdR[8][2] = 4.0*t, 0.0, 4.0*r
	dSdR[9][0], dSdR[9][1], dSdR[9][2] = 0.0, 4.0*t, 4.0*s
}

// faces are numbered such that the normal computed from the ordering of vertices points inwards
func newTet4() *Shape {
	return &Shape{
		Type:      "tet4",
		Func:      Tet4,
		BasicType: "tet4",
		FaceType:  "tri3",
		Class:     "tet",
		Gndim:     3,
		Nverts:    4,
		FaceLocalVerts: [][]int{
			{0, 1, 2},
			{0, 3, 1},
			{1, 3, 2},
			{2, 3, 0},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
}

func newTet10() *Shape {
	return &Shape{
		Type:      "tet10",
		Func:      Tet10,
		BasicType: "tet4",
		FaceType:  "tri6",
		Class:     "tet",
		Gndim:     3,
		Nverts:    10,
		FaceLocalVerts: [][]int{
			{0, 1, 2, 4, 5, 6},
			{0, 3, 1, 7, 8, 4},
			{1, 3, 2, 8, 9, 5},
			{2, 3, 0, 9, 7, 6},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5, 0},
			{0, 0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5},
			{0, 0, 0, 1, 0, 0, 0, 0.5, 0.5, 0.5},
		},
	}
}
