// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids and stress invariants
//  Voigt ordering of stresses and strains:
//   σ = {σxx, σyy, σzz, σxy, σyz, σzx}
//   ε = {εxx, εyy, εzz, γxy, γyz, γzx}  (engineering shear strains)
package msolid

import (
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms inp.Prms) error // initialises model
}

// Small defines solid models for small strain analyses
type Small interface {
	Model
	CalcD(D [][]float64) error                   // computes the 3D tangent modulus D = dσ/dε [6][6]
	Update(s *State, ε []float64) error          // updates stresses for given total strains [6]
	CalcDps(D [][]float64) error                 // computes the plane-stress modulus [3][3]; ordering {xx, yy, xy}
	CalcDsh(Db, Ds [][]float64, t float64) error // computes plate bending Db [3][3] and transverse shear Ds [2][2] for thickness t
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// NewSmall allocates and initialises a small strain model
func NewSmall(name string, prms inp.Prms) (model Small, err error) {
	mdl, err := New(name)
	if err != nil {
		return
	}
	model, ok := mdl.(Small)
	if !ok {
		return nil, chk.Err("model %q is not a small strain model", name)
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise model %q:\n%v", name, err)
	}
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
