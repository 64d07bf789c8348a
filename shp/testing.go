// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks that shape functions of vertices on faces vanish at the other face vertices
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip 1D shapes
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}

	// loop over face vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for k := 0; k < nfaces; k++ {
		for _, n := range shape.FaceLocalVerts[k] {

			// natural coordinates @ vertex
			for i := 0; i < shape.Gndim; i++ {
				r[i] = shape.NatCoords[i][n]
			}

			// compute function
			shape.Func(shape.S, shape.DSdR, r, false)

			// check
			if verbose {
				io.Pforan("S = %v\n", shape.S)
			}
			for _, m := range shape.FaceLocalVerts[k] {
				if n == m {
					errS += math.Abs(shape.S[m] - 1.0)
				} else {
					errS += math.Abs(shape.S[m])
				}
			}
		}
	}

	// error
	if verbose {
		io.Pforan("%g\n", errS)
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartition checks that shape functions sum to one and derivatives sum to zero @ r
func CheckPartition(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {
	shape.Func(shape.S, shape.DSdR, r, true)
	sum := 0.0
	dsum := make([]float64, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		sum += shape.S[m]
		for i := 0; i < shape.Gndim; i++ {
			dsum[i] += shape.DSdR[m][i]
		}
	}
	if verbose {
		io.Pf("  %s @ %v: ΣS = %v, ΣdSdR = %v\n", shape.Type, r, sum, dsum)
	}
	if math.Abs(sum-1.0) > tol {
		tst.Errorf("%s: partition of unity failed @ %v with err = %g\n", shape.Type, r, math.Abs(sum-1.0))
		return
	}
	for i := 0; i < shape.Gndim; i++ {
		if math.Abs(dsum[i]) > tol {
			tst.Errorf("%s: sum of dSdR%d failed @ %v with err = %g\n", shape.Type, i, r, math.Abs(dsum[i]))
			return
		}
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi := derivCentral(func(t float64) (Sn float64) {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				Sn = S_tmp[n]
				return
			}, r[i], 1e-3)
			if verbose {
				io.Pf("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s: dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {

	// find r corresponding to x
	r := make([]float64, 3)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}

	// analytical
	err = shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := matClone(shape.G)

	// numerical
	x_tmp := make([]float64, len(x))
	r_tmp := make([]float64, 3)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSnDxi := derivCentral(func(t float64) (Sn float64) {
				copy(x_tmp, x)
				x_tmp[i] = t
				err = shape.InvMap(r_tmp, x_tmp, xmat)
				if err != nil {
					tst.Errorf("InvMap failed:\n%v", err)
					return
				}
				shape.Func(shape.S, shape.DSdR, r_tmp, false)
				Sn = shape.S[n]
				return
			}, x[i], 1e-3)
			if verbose {
				io.Pf("  dS%dDx%d @ %5.2f = %v (num: %v)\n", n, i, x, G[n][i], dSnDxi)
			}
			if math.Abs(G[n][i]-dSnDxi) > tol {
				tst.Errorf("%s: dS%dDx%d failed with err = %g\n", shape.Type, n, i, math.Abs(G[n][i]-dSnDxi))
				return
			}
		}
	}
}

// derivCentral computes the numerical derivative of f @ x using a 4th order central difference
func derivCentral(f func(x float64) float64, x, h float64) float64 {
	return (-f(x+2.0*h) + 8.0*f(x+h) - 8.0*f(x-h) + f(x-2.0*h)) / (12.0 * h)
}
