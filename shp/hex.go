// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// natural coordinates of hexahedra
var hexNat = [][]float64{
	{-1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1, -1},
	{-1, -1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1},
	{-1, -1, -1, -1, 1, 1, 1, 1, -1, -1, -1, -1, 1, 1, 1, 1, 0, 0, 0, 0},
}

// Hex8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex8
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Hex8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	              4________________7
	            ,'|              ,'|
	          ,'  |            ,'  |
	        ,'    |          ,'    |
	      ,'      |        ,'      |
	    5'===============6'        |
	    |         |      |         |
	    |         |      |         |
	    |         0_____ | ________3
	    |       ,'       |       ,'
	    |     ,'         |     ,'
	    |   ,'           |   ,'
	    | ,'             | ,'
	    1________________2'
	*/
	r, s, t := R[0], R[1], R[2]
	for m := 0; m < 8; m++ {
		rm, sm, tm := hexNat[0][m], hexNat[1][m], hexNat[2][m]
		S[m] = (1.0 + r*rm) * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + s*sm) * (1.0 + t*tm) / 8.0
			dSdR[m][1] = sm * (1.0 + r*rm) * (1.0 + t*tm) / 8.0
			dSdR[m][2] = tm * (1.0 + r*rm) * (1.0 + s*sm) / 8.0
		}
	}
}

// Hex20 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex20
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//  Note: vertices 8..11 are on the bottom edges, 12..15 on the top edges and 16..19 on the
//        vertical edges, following the ordering of vertices 0..3 and 4..7
func Hex20(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	for m := 0; m < 20; m++ {
		rm, sm, tm := hexNat[0][m], hexNat[1][m], hexNat[2][m]
		a, b, c := 1.0+r*rm, 1.0+s*sm, 1.0+t*tm
		switch {
		case m < 8:
			S[m] = a * b * c * (r*rm + s*sm + t*tm - 2.0) / 8.0
			if derivs {
				dSdR[m][0] = rm * b * c * (2.0*r*rm + s*sm + t*tm - 1.0) / 8.0
				dSdR[m][1] = sm * a * c * (r*rm + 2.0*s*sm + t*tm - 1.0) / 8.0
				dSdR[m][2] = tm * a * b * (r*rm + s*sm + 2.0*t*tm - 1.0) / 8.0
			}
		case rm == 0:
			S[m] = (1.0 - r*r) * b * c / 4.0
			if derivs {
				dSdR[m][0] = -r * b * c / 2.0
				dSdR[m][1] = sm * (1.0 - r*r) * c / 4.0
				dSdR[m][2] = tm * (1.0 - r*r) * b / 4.0
			}
		case sm == 0:
			S[m] = a * (1.0 - s*s) * c / 4.0
			if derivs {
				dSdR[m][0] = rm * (1.0 - s*s) * c / 4.0
				dSdR[m][1] = -s * a * c / 2.0
				dSdR[m][2] = tm * a * (1.0 - s*s) / 4.0
			}
		default:
			S[m] = a * b * (1.0 - t*t) / 4.0
			if derivs {
				dSdR[m][0] = rm * b * (1.0 - t*t) / 4.0
				dSdR[m][1] = sm * a * (1.0 - t*t) / 4.0
				dSdR[m][2] = -t * a * b / 2.0
			}
		}
	}
}

// faces are numbered such that the normal computed from the ordering of vertices points inwards
func newHex8() *Shape {
	return &Shape{
		Type:      "hex8",
		Func:      Hex8,
		BasicType: "hex8",
		FaceType:  "qua4",
		Class:     "hex",
		Gndim:     3,
		Nverts:    8,
		FaceLocalVerts: [][]int{
			{0, 1, 2, 3},
			{4, 7, 6, 5},
			{0, 4, 5, 1},
			{1, 5, 6, 2},
			{2, 6, 7, 3},
			{3, 7, 4, 0},
		},
		NatCoords: [][]float64{hexNat[0][:8], hexNat[1][:8], hexNat[2][:8]},
	}
}

func newHex20() *Shape {
	return &Shape{
		Type:      "hex20",
		Func:      Hex20,
		BasicType: "hex8",
		FaceType:  "qua8",
		Class:     "hex",
		Gndim:     3,
		Nverts:    20,
		FaceLocalVerts: [][]int{
			{0, 1, 2, 3, 8, 9, 10, 11},
			{4, 7, 6, 5, 15, 14, 13, 12},
			{0, 4, 5, 1, 16, 12, 17, 8},
			{1, 5, 6, 2, 17, 13, 18, 9},
			{2, 6, 7, 3, 18, 14, 19, 10},
			{3, 7, 4, 0, 19, 15, 16, 11},
		},
		NatCoords: [][]float64{hexNat[0], hexNat[1], hexNat[2]},
	}
}
