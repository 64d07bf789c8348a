// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
	PINV_TOL   = 1.0e-10 // relative tolerance on singular values for pseudo-inverses
)

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[ndim]         -- are the 2D/3D point coordinates
//   x[ndim][nverts] -- coordinates matrix of solid element
//  Output:
//   r[3] -- are the natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim == 1 {
		return chk.Err("Inverse mapping is not implemented in 1D\n")
	}

	// first trial: centroid of natural coordinates
	r[0], r[1], r[2] = 0, 0, 0
	for i := 0; i < o.Gndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			r[i] += o.NatCoords[i][m]
		}
		r[i] /= float64(o.Nverts)
	}

	var δRnorm float64
	e := mat.NewVecDense(o.Gndim, nil)  // residual
	δr := mat.NewVecDense(o.Gndim, nil) // corrector
	for it := 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		o.Func(o.S, o.DSdR, r, true)

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			ei := y[i]
			for j := 0; j < o.Nverts; j++ {
				ei -= x[i][j] * o.S[j]
			}
			e.SetVec(i, ei)
		}

		// Jmat == dxdR = x * dSdR;
		for i := 0; i < o.Gndim; i++ {
			for j := 0; j < o.Gndim; j++ {
				o.DxdR[i][j] = 0.0
				for k := 0; k < o.Nverts; k++ {
					o.DxdR[i][j] += x[i][k] * o.DSdR[k][j] // dxdR := x * dSdR
				}
				o.jac.Set(i, j, o.DxdR[i][j])
			}
		}

		// corrector: dR = inv(Jmat) * e
		err = δr.SolveVec(o.jac, e)
		if err != nil {
			return chk.Err("InvMap failed: singular Jacobian matrix:\n%v", err)
		}

		// converged?
		δRnorm = 0.0
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr.AtVec(i)
			δRnorm += δr.AtVec(i) * δr.AtVec(i)
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("InvMap did not converge after %d iterations: |δr|=%g", INVMAP_NIT, math.Sqrt(δRnorm))
}

// GetNodesNatCoordsMat returns the matrix (ξ) with natural coordinates of nodes,
// augmented by one column which is filled with ones [nverts][ndim+1]
func (o *Shape) GetNodesNatCoordsMat() (ξ [][]float64) {
	ξ = matAlloc(o.Nverts, o.Gndim+1)
	for i := 0; i < o.Nverts; i++ {
		for j := 0; j < o.Gndim; j++ {
			ξ[i][j] = o.NatCoords[j][i]
		}
		ξ[i][o.Gndim] = 1.0
	}
	return
}

// GetIpsNatCoordsMat returns the matrix (\hat{ξ}) with natural coordinates of interation
// points, augmented by one column which is filled with ones [nip][ndim+1]
func (o *Shape) GetIpsNatCoordsMat(ips []Ipoint) (ξh [][]float64) {
	nip := len(ips)
	ξh = matAlloc(nip, o.Gndim+1)
	for i := 0; i < nip; i++ {
		for j := 0; j < o.Gndim; j++ {
			ξh[i][j] = ips[i][j]
		}
		ξh[i][o.Gndim] = 1.0
	}
	return
}

// GetShapeMatAtIps returns a matrix formed by computing the shape functions
// at all integration points [nip][nverts]
func (o *Shape) GetShapeMatAtIps(ips []Ipoint) (N [][]float64) {
	nip := len(ips)
	N = matAlloc(nip, o.Nverts)
	derivs := false
	for i := 0; i < nip; i++ {
		o.Func(o.S, o.DSdR, ips[i], derivs)
		for j := 0; j < o.Nverts; j++ {
			N[i][j] = o.S[j]
		}
	}
	return
}

// Extrapolator computes the extrapolation matrix for this Shape with a combination of integration points 'ips'
//  Note: E[nverts][nip] must be pre-allocated
func (o *Shape) Extrapolator(E [][]float64, ips []Ipoint) (err error) {
	nip := len(ips)
	for i := 0; i < o.Nverts; i++ {
		for j := 0; j < nip; j++ {
			E[i][j] = 0
		}
	}
	N := o.GetShapeMatAtIps(ips)
	if nip < o.Nverts {
		ξ := o.GetNodesNatCoordsMat()
		ξh := o.GetIpsNatCoordsMat(ips)
		Ni, err := PseudoInverse(N, PINV_TOL)
		if err != nil {
			return err
		}
		ξhi, err := PseudoInverse(ξh, PINV_TOL)
		if err != nil {
			return err
		}
		ξhξhI := matAlloc(nip, nip) // ξh * inv(ξh)
		for k := 0; k < o.Gndim+1; k++ {
			for j := 0; j < nip; j++ {
				for i := 0; i < nip; i++ {
					ξhξhI[i][j] += ξh[i][k] * ξhi[k][j]
				}
				for i := 0; i < o.Nverts; i++ {
					E[i][j] += ξ[i][k] * ξhi[k][j] // ξ * inv(ξh)
				}
			}
		}
		for i := 0; i < o.Nverts; i++ {
			for j := 0; j < nip; j++ {
				for k := 0; k < nip; k++ {
					I_kj := 0.0
					if j == k {
						I_kj = 1.0
					}
					E[i][j] += Ni[i][k] * (I_kj - ξhξhI[k][j])
				}
			}
		}
		return nil
	}
	Ni, err := PseudoInverse(N, PINV_TOL)
	if err != nil {
		return
	}
	for i := 0; i < o.Nverts; i++ {
		copy(E[i], Ni[i])
	}
	return
}

// PseudoInverse computes the Moore-Penrose generalised inverse of a [m][n] using the SVD;
// singular values smaller than tol times the largest one are discarded
func PseudoInverse(a [][]float64, tol float64) (ai [][]float64, err error) {
	m := len(a)
	if m == 0 {
		return nil, chk.Err("PseudoInverse: matrix must not be empty")
	}
	n := len(a[0])
	A := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		A.SetRow(i, a[i])
	}
	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return nil, chk.Err("PseudoInverse: SVD factorisation failed")
	}
	rank := svd.Rank(tol)
	if rank == 0 {
		return nil, chk.Err("PseudoInverse: matrix has rank zero")
	}
	var X mat.Dense
	svd.SolveTo(&X, mat.NewDiagDense(m, ones(m)), rank)
	ai = matAlloc(n, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			ai[i][j] = X.At(i, j)
		}
	}
	return
}

func ones(n int) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return
}
