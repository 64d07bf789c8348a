// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// natural coordinates of quadrilaterals
var quaNat = [][]float64{
	{-1, 1, 1, -1, 0, 1, 0, -1},
	{-1, -1, 1, 1, -1, 0, 1, 0},
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Qua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	    3-----------2
	    |     s     |
	    |     |     |
	    |     +--r  |
	    |           |
	    |           |
	    0-----------1
	*/
	r, s := R[0], R[1]
	for m := 0; m < 4; m++ {
		rm, sm := quaNat[0][m], quaNat[1][m]
		S[m] = (1.0 + r*rm) * (1.0 + s*sm) / 4.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + s*sm) / 4.0
			dSdR[m][1] = sm * (1.0 + r*rm) / 4.0
		}
	}
}

// Qua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua8
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Qua8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	    3-----6-----2
	    |     s     |
	    |     |     |
	    7     +--r  5
	    |           |
	    |           |
	    0-----4-----1
	*/
	r, s := R[0], R[1]
	for m := 0; m < 8; m++ {
		rm, sm := quaNat[0][m], quaNat[1][m]
		switch {
		case m < 4:
			S[m] = (1.0 + r*rm) * (1.0 + s*sm) * (r*rm + s*sm - 1.0) / 4.0
			if derivs {
				dSdR[m][0] = rm * (1.0 + s*sm) * (2.0*r*rm + s*sm) / 4.0
				dSdR[m][1] = sm * (1.0 + r*rm) * (r*rm + 2.0*s*sm) / 4.0
			}
		case rm == 0:
			S[m] = (1.0 - r*r) * (1.0 + s*sm) / 2.0
			if derivs {
				dSdR[m][0] = -r * (1.0 + s*sm)
				dSdR[m][1] = sm * (1.0 - r*r) / 2.0
			}
		default:
			S[m] = (1.0 + r*rm) * (1.0 - s*s) / 2.0
			if derivs {
				dSdR[m][0] = rm * (1.0 - s*s) / 2.0
				dSdR[m][1] = -s * (1.0 + r*rm)
			}
		}
	}
}

func newQua4() *Shape {
	return &Shape{
		Type:           "qua4",
		Func:           Qua4,
		BasicType:      "qua4",
		FaceType:       "lin2",
		Class:          "qua",
		Gndim:          2,
		Nverts:         4,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		NatCoords:      [][]float64{quaNat[0][:4], quaNat[1][:4]},
	}
}

func newQua8() *Shape {
	return &Shape{
		Type:           "qua8",
		Func:           Qua8,
		BasicType:      "qua4",
		FaceType:       "lin3",
		Class:          "qua",
		Gndim:          2,
		Nverts:         8,
		FaceLocalVerts: [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}},
		NatCoords:      [][]float64{quaNat[0], quaNat[1]},
	}
}
