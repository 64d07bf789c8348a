// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Sets holds named sets of nodes and elements
type Sets struct {
	Nodes map[string][]int `json:"nodes" yaml:"nodes"` // node set name => node ids
	Elems map[string][]int `json:"elems" yaml:"elems"` // element set name => element ids
}

// NodeIds returns the nodes referenced by either an id or a set name
func (o *Sets) NodeIds(id int, set string) (ids []int, err error) {
	return resolve(o.Nodes, id, set, "node")
}

// ElemIds returns the elements referenced by either an id or a set name
func (o *Sets) ElemIds(id int, set string) (ids []int, err error) {
	return resolve(o.Elems, id, set, "element")
}

func resolve(sets map[string][]int, id int, set, kind string) (ids []int, err error) {
	if set == "" {
		if id < 1 {
			return nil, chk.Err("%s id or %s set name must be given", kind, kind)
		}
		return []int{id}, nil
	}
	ids, ok := sets[set]
	if !ok {
		return nil, chk.Err("%s set %q is not defined", kind, set)
	}
	return ids, nil
}

// DispBc holds a displacement boundary condition over an inclusive range of DOFs (1-based)
type DispBc struct {
	Node  int     `json:"node" yaml:"node"`   // node id
	Set   string  `json:"set" yaml:"set"`     // node set name (instead of Node)
	Dof0  int     `json:"dof0" yaml:"dof0"`   // first DOF (1-based)
	Dof1  int     `json:"dof1" yaml:"dof1"`   // last DOF (1-based, inclusive); 0 means Dof0
	Value float64 `json:"value" yaml:"value"` // prescribed value
}

// Last returns the last DOF of the range
func (o *DispBc) Last() int {
	if o.Dof1 < o.Dof0 {
		return o.Dof0
	}
	return o.Dof1
}

// Cload holds a concentrated load
type Cload struct {
	Node  int     `json:"node" yaml:"node"`   // node id
	Set   string  `json:"set" yaml:"set"`     // node set name (instead of Node)
	Dof   int     `json:"dof" yaml:"dof"`     // DOF (1-based)
	Value float64 `json:"value" yaml:"value"` // magnitude
}

// Dload holds a distributed load over elements
//  Kinds:
//   "P"    -- pressure; shells: on the mid-surface (Face ignored); solids: on Face (1-based)
//   "GRAV" -- gravity: Value * Dir * ρ per unit volume
//   "BX", "BY", "BZ" -- body force per unit volume along x, y or z
type Dload struct {
	Elem  int       `json:"elem" yaml:"elem"`   // element id
	Set   string    `json:"set" yaml:"set"`     // element set name (instead of Elem)
	Kind  string    `json:"kind" yaml:"kind"`   // kind of load
	Face  int       `json:"face" yaml:"face"`   // face number for solids (1-based)
	Value float64   `json:"value" yaml:"value"` // magnitude
	Dir   []float64 `json:"dir" yaml:"dir"`     // direction (gravity)
}

// Amplitude holds a piecewise-linear time function scaling external loads
type Amplitude struct {
	T []float64 `json:"t" yaml:"t"` // times (increasing)
	A []float64 `json:"a" yaml:"a"` // amplitudes
}

// F returns the amplitude at time t; constant extrapolation outside the table. A nil or empty table means 1
func (o *Amplitude) F(t float64) float64 {
	if o == nil || len(o.T) == 0 {
		return 1
	}
	n := len(o.T)
	if t <= o.T[0] {
		return o.A[0]
	}
	if t >= o.T[n-1] {
		return o.A[n-1]
	}
	k := sort.SearchFloat64s(o.T, t)
	if o.T[k] == t {
		return o.A[k]
	}
	t0, t1 := o.T[k-1], o.T[k]
	return o.A[k-1] + (o.A[k]-o.A[k-1])*(t-t0)/(t1-t0)
}

// Check checks amplitude table
func (o *Amplitude) Check() (err error) {
	if o == nil {
		return
	}
	if len(o.T) != len(o.A) {
		return chk.Err("amplitude: len(t)=%d and len(a)=%d must be equal", len(o.T), len(o.A))
	}
	for i := 1; i < len(o.T); i++ {
		if o.T[i] <= o.T[i-1] {
			return chk.Err("amplitude: times must be strictly increasing. t[%d]=%g <= t[%d]=%g", i, o.T[i], i-1, o.T[i-1])
		}
	}
	return
}

// Bcs holds boundary conditions and loads
type Bcs struct {
	Disp   []*DispBc  `json:"disp" yaml:"disp"`     // displacement boundary conditions
	Cloads []*Cload   `json:"cloads" yaml:"cloads"` // concentrated loads
	Dloads []*Dload   `json:"dloads" yaml:"dloads"` // distributed loads
	Amp    *Amplitude `json:"amp" yaml:"amp"`       // load amplitude (dynamics)
}

// BcStats holds statistics of boundary conditions
type BcStats struct {
	Ndisp  int // number of displacement boundary conditions
	Ncons  int // number of constrained DOFs (counting set members)
	Ncload int // number of concentrated loads
	Ndload int // number of distributed loads
}

// Stats computes statistics
func (o *Bcs) Stats(sets *Sets) (s BcStats, err error) {
	s.Ndisp = len(o.Disp)
	s.Ncload = len(o.Cloads)
	s.Ndload = len(o.Dloads)
	for _, bc := range o.Disp {
		ids, e := sets.NodeIds(bc.Node, bc.Set)
		if e != nil {
			return s, e
		}
		s.Ncons += len(ids) * (bc.Last() - bc.Dof0 + 1)
	}
	return
}
