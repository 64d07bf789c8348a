// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/aecs4u/calculix-sub000/msolid"
)

// Result holds the results of one analysis
type Result struct {

	// main data
	Type    string `json:"type" yaml:"type"`       // analysis type
	Success bool   `json:"success" yaml:"success"` // analysis finished and converged
	Msg     string `json:"msg" yaml:"msg"`         // diagnostic message
	Ndofs   int    `json:"ndofs" yaml:"ndofs"`     // total number of DOFs
	Nfree   int    `json:"nfree" yaml:"nfree"`     // number of free DOFs
	Ncons   int    `json:"ncons" yaml:"ncons"`     // number of constrained DOFs
	MaxDpn  int    `json:"maxdpn" yaml:"maxdpn"`   // number of DOFs per node slot

	// static and nonlinear
	U         []float64   `json:"u,omitempty" yaml:"u,omitempty"`                 // displacements [ndofs]
	Reactions []float64   `json:"reactions,omitempty" yaml:"reactions,omitempty"` // reactions at constrained DOFs [ndofs]
	Iters     []*IterInfo `json:"iters,omitempty" yaml:"iters,omitempty"`         // nonlinear iterations history
	Nit       int         `json:"nit" yaml:"nit"`                                 // total number of linear solutions in nonlinear analyses

	// modal
	Modes          []*Mode `json:"modes,omitempty" yaml:"modes,omitempty"` // eigenpairs in ascending order
	ModesConverged bool    `json:"modesconverged" yaml:"modesconverged"`   // all requested modes converged

	// dynamic
	History []*Step `json:"history,omitempty" yaml:"history,omitempty"` // time steps

	// stresses
	Stresses []*ElemStress     `json:"stresses,omitempty" yaml:"stresses,omitempty"` // element stresses
	Nodal    map[int][]float64 `json:"nodal,omitempty" yaml:"nodal,omitempty"`       // averaged nodal stresses of solids: node id => [6]
}

// Mode holds one eigenpair
type Mode struct {
	Eigenvalue float64   `json:"eigenvalue" yaml:"eigenvalue"` // λ = ω²
	Omega      float64   `json:"omega" yaml:"omega"`           // angular frequency [rad/s]
	Freq       float64   `json:"freq" yaml:"freq"`             // frequency [Hz]
	RigidBody  bool      `json:"rigidbody" yaml:"rigidbody"`   // λ ≤ 1e-10 max(λ)
	Phi        []float64 `json:"phi" yaml:"phi"`               // mass-normalised mode shape [ndofs]
}

// Step holds the state at the end of a time step
type Step struct {
	T float64   `json:"t" yaml:"t"` // time
	U []float64 `json:"u" yaml:"u"` // displacements
	V []float64 `json:"v" yaml:"v"` // velocities
	A []float64 `json:"a" yaml:"a"` // accelerations
}

// IterInfo holds data of one Newton-Raphson iteration
type IterInfo struct {
	Inc   int     `json:"inc" yaml:"inc"`     // increment index
	It    int     `json:"it" yaml:"it"`       // iteration index within the increment
	Lam   float64 `json:"lam" yaml:"lam"`     // load factor
	ResF  float64 `json:"resf" yaml:"resf"`   // ‖R‖/‖Fext‖
	ResU  float64 `json:"resu" yaml:"resu"`   // ‖Δu‖/‖u‖ (previous correction)
	ResE  float64 `json:"rese" yaml:"rese"`   // |Δu·R|/|u·Fext| (previous correction)
	Alpha float64 `json:"alpha" yaml:"alpha"` // line search factor of the previous correction
}

// MaxDisp returns the largest absolute translation component and its DOF
func (o *Result) MaxDisp() (umax float64, dof int) {
	dof = -1
	for I, v := range o.U {
		if o.MaxDpn > 0 && I%o.MaxDpn >= 3 {
			continue
		}
		if math.Abs(v) > umax {
			umax, dof = math.Abs(v), I
		}
	}
	return
}

// MaxVm returns the largest von Mises stress and the element id where it occurs
func (o *Result) MaxVm() (vm float64, eid int) {
	for _, s := range o.Stresses {
		if v := s.VmMax(); v > vm {
			vm, eid = v, s.Eid
		}
	}
	return
}

// MaxEffStrain returns the largest von Mises equivalent strain over all stress points
// and the element id where it occurs
func (o *Result) MaxEffStrain() (εeq float64, eid int) {
	for _, s := range o.Stresses {
		for _, ε := range s.Eps {
			if len(ε) < 6 {
				continue
			}
			if v := msolid.EffectiveStrain(ε); v > εeq {
				εeq, eid = v, s.Eid
			}
		}
	}
	return
}

// NodeDisp returns the DOF values of a node
func (o *Result) NodeDisp(nodeId int) []float64 {
	I := (nodeId - 1) * o.MaxDpn
	if I < 0 || I+o.MaxDpn > len(o.U) {
		return nil
	}
	return o.U[I : I+o.MaxDpn]
}
