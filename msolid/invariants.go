// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// VonMises computes the von Mises equivalent stress
//  σvm = √(½[(σxx−σyy)² + (σyy−σzz)² + (σzz−σxx)²] + 3(σxy² + σyz² + σzx²))
func VonMises(σ []float64) float64 {
	a := σ[0] - σ[1]
	b := σ[1] - σ[2]
	c := σ[2] - σ[0]
	return math.Sqrt(0.5*(a*a+b*b+c*c) + 3.0*(σ[3]*σ[3]+σ[4]*σ[4]+σ[5]*σ[5]))
}

// MeanStress computes the hydrostatic (mean) stress σm = tr(σ)/3
func MeanStress(σ []float64) float64 {
	return (σ[0] + σ[1] + σ[2]) / 3.0
}

// Principal computes the principal values of a symmetric tensor given in Voigt form;
// the values are sorted in descending order (σ1 ≥ σ2 ≥ σ3)
//  Note: shear components are tensorial; divide engineering strains by 2 before calling
func Principal(v []float64) (λ []float64, err error) {
	a := mat.NewSymDense(3, []float64{
		v[0], v[3], v[5],
		v[3], v[1], v[4],
		v[5], v[4], v[2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(a, false) {
		return nil, chk.Err("eigen-decomposition of symmetric tensor failed")
	}
	asc := eig.Values(nil)
	return []float64{asc[2], asc[1], asc[0]}, nil
}

// EffectiveStrain computes the von Mises equivalent strain from engineering strains
//  εeq = (√2/3) √((εxx−εyy)² + (εyy−εzz)² + (εzz−εxx)² + 3/2 (γxy² + γyz² + γzx²))
func EffectiveStrain(ε []float64) float64 {
	a := ε[0] - ε[1]
	b := ε[1] - ε[2]
	c := ε[2] - ε[0]
	return math.Sqrt2 / 3.0 * math.Sqrt(a*a+b*b+c*c+1.5*(ε[3]*ε[3]+ε[4]*ε[4]+ε[5]*ε[5]))
}
