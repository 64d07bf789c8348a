// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds continuum mechanics data at an integration point
type State struct {
	Sig  []float64 // σ: current Cauchy stress tensor [nsig]
	Eps  []float64 // ε: current total strain [nsig]
	Eps0 []float64 // ε0: initial strains [nsig]
}

// NewState allocates state structure
func NewState(nsig int) *State {
	return &State{
		Sig:  make([]float64, nsig),
		Eps:  make([]float64, nsig),
		Eps0: make([]float64, nsig),
	}
}
