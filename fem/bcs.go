// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Constraints holds prescribed displacements indexed by global DOF
type Constraints struct {
	Dofs   []int           // sorted constrained DOFs
	Values map[int]float64 // prescribed values
}

// Has tells whether a DOF is constrained
func (o *Constraints) Has(I int) bool {
	_, ok := o.Values[I]
	return ok
}

// Value returns the prescribed value of a DOF (zero if free)
func (o *Constraints) Value(I int) float64 {
	return o.Values[I]
}

// Free returns the DOFs in [0, ndofs) that are not constrained and not in skip
func (o *Constraints) Free(ndofs int, skip []int) (res []int) {
	out := make(map[int]bool, len(skip))
	for _, I := range skip {
		out[I] = true
	}
	for I := 0; I < ndofs; I++ {
		if !o.Has(I) && !out[I] {
			res = append(res, I)
		}
	}
	return
}

// ResolveBcs converts the boundary conditions of a model into constrained DOFs and an external force vector
//  Note: set names are expanded; later prescriptions of the same DOF override earlier ones;
//        concentrated loads accumulate; distributed loads are converted by the elements
func ResolveBcs(mdl *inp.Model, dofs *DofTable, elems []Elem) (cons *Constraints, F []float64, err error) {

	// displacements
	cons = &Constraints{Values: make(map[int]float64)}
	for k, bc := range mdl.Bcs.Disp {
		ids, e := mdl.Sets.NodeIds(bc.Node, bc.Set)
		if e != nil {
			return nil, nil, chk.Err("displacement boundary condition %d:\n%v", k, e)
		}
		for _, id := range ids {
			for dof := bc.Dof0; dof <= bc.Last(); dof++ {
				I, e := dofIndex(mdl, dofs, id, dof)
				if e != nil {
					return nil, nil, e
				}
				cons.Values[I] = bc.Value
			}
		}
	}
	for I := range cons.Values {
		cons.Dofs = append(cons.Dofs, I)
	}
	sort.Ints(cons.Dofs)

	// concentrated loads
	F = make([]float64, dofs.Ndofs)
	for k, cl := range mdl.Bcs.Cloads {
		ids, e := mdl.Sets.NodeIds(cl.Node, cl.Set)
		if e != nil {
			return nil, nil, chk.Err("concentrated load %d:\n%v", k, e)
		}
		for _, id := range ids {
			I, e := dofIndex(mdl, dofs, id, cl.Dof)
			if e != nil {
				return nil, nil, e
			}
			F[I] += cl.Value
		}
	}

	// distributed loads
	if len(mdl.Bcs.Dloads) == 0 {
		return
	}
	eid2idx := make(map[int]int, len(elems))
	for k, e := range elems {
		eid2idx[e.Id()] = k
	}
	for k, dl := range mdl.Bcs.Dloads {
		ids, e := mdl.Sets.ElemIds(dl.Elem, dl.Set)
		if e != nil {
			return nil, nil, chk.Err("distributed load %d:\n%v", k, e)
		}
		for _, eid := range ids {
			idx, ok := eid2idx[eid]
			if !ok {
				return nil, nil, &ConnectivityError{Msg: io.Sf("distributed load %d references unknown element %d", k, eid)}
			}
			loader, ok := elems[idx].(ElemLoader)
			if !ok {
				return nil, nil, chk.Err("element %d cannot take distributed loads", eid)
			}
			fe, e := loader.DistLoad(dl)
			if e != nil {
				return nil, nil, e
			}
			for i, I := range dofs.Umaps[idx] {
				F[I] += fe[i]
			}
		}
	}
	return
}

// dofIndex returns the global index of a (1-based) DOF at node
func dofIndex(mdl *inp.Model, dofs *DofTable, nodeId, dof int) (I int, err error) {
	if _, ok := mdl.NodeMap[nodeId]; !ok {
		return 0, &ConnectivityError{Node: nodeId, Msg: "node does not exist"}
	}
	if dof < 1 || dof > dofs.MaxDpn {
		return 0, &ConnectivityError{Node: nodeId, Msg: io.Sf("DOF %d is outside the allocated range [1, %d]", dof, dofs.MaxDpn)}
	}
	return dofs.Index(nodeId, dof-1), nil
}
