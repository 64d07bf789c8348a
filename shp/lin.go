// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Lin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	   -1     0    +1
	    0-----------1-->r
	*/
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)

	if !derivs {
		return
	}

	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// Lin3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
func Lin3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	/*
	   -1     0    +1
	    0-----2-----1-->r
	*/
	r := R[0]
	S[0] = 0.5 * r * (r - 1.0)
	S[1] = 0.5 * r * (r + 1.0)
	S[2] = 1.0 - r*r

	if !derivs {
		return
	}

	dSdR[0][0] = r - 0.5
	dSdR[1][0] = r + 0.5
	dSdR[2][0] = -2.0 * r
}

func newLin2() *Shape {
	return &Shape{
		Type:      "lin2",
		Func:      Lin2,
		BasicType: "lin2",
		Class:     "lin",
		Gndim:     1,
		Nverts:    2,
		NatCoords: [][]float64{
			{-1, 1},
		},
	}
}

func newLin3() *Shape {
	return &Shape{
		Type:      "lin3",
		Func:      Lin3,
		BasicType: "lin2",
		Class:     "lin",
		Gndim:     1,
		Nverts:    3,
		NatCoords: [][]float64{
			{-1, 1, 0},
		},
	}
}
