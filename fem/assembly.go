// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Assembler computes element matrices and scatters them into global matrices
//  Note: element matrices may be computed by several goroutines; they are stored per element
//        and added to the global matrices in element order, thus results do not depend on Nworkers
type Assembler struct {
	Elems    []Elem       // elements
	Dofs     *DofTable    // DOF-allocation table
	Sparse   bool         // use sparse (triplet) storage
	Nworkers int          // max number of goroutines computing element matrices
	kcache   []*mat.Dense // element stiffness matrices
	mcache   []*mat.Dense // element mass matrices
}

// NewAssembler returns a new assembler
//  Matrix storage: "dense", "sparse" or "auto" (sparse if Ndofs > Threshold)
func NewAssembler(elems []Elem, dofs *DofTable, cfg *inp.AnalysisConfig) (o *Assembler) {
	o = &Assembler{Elems: elems, Dofs: dofs, Nworkers: cfg.Nworkers}
	switch cfg.Matrix {
	case "sparse":
		o.Sparse = true
	case "auto":
		o.Sparse = dofs.Ndofs > cfg.Threshold
	}
	return
}

// Stiffness assembles the global stiffness matrix
func (o *Assembler) Stiffness() (K *SysMatrix, err error) {
	if o.kcache == nil {
		kes := make([]*mat.Dense, len(o.Elems))
		err = o.compute(func(k int, e Elem) (err error) {
			kes[k], err = e.Stiffness()
			return
		})
		if err != nil {
			return
		}
		o.kcache = kes
	}
	return o.scatter(o.kcache), nil
}

// Mass assembles the global consistent mass matrix
func (o *Assembler) Mass() (M *SysMatrix, err error) {
	if o.mcache == nil {
		mes := make([]*mat.Dense, len(o.Elems))
		err = o.compute(func(k int, e Elem) (err error) {
			mes[k], err = e.Mass()
			return
		})
		if err != nil {
			return
		}
		o.mcache = mes
	}
	return o.scatter(o.mcache), nil
}

// Tangent assembles the global tangent matrix and internal forces at displacements u
//  Elements without ElemNonlinear contribute K and K ue
func (o *Assembler) Tangent(u []float64) (Kt *SysMatrix, fint []float64, err error) {
	kts := make([]*mat.Dense, len(o.Elems))
	fes := make([][]float64, len(o.Elems))
	err = o.compute(func(k int, e Elem) (err error) {
		ue := o.Dofs.Gather(k, u)
		if enl, ok := e.(ElemNonlinear); ok {
			kts[k], fes[k], err = enl.Tangent(ue)
			return
		}
		if o.kcache != nil {
			kts[k] = o.kcache[k]
		} else if kts[k], err = e.Stiffness(); err != nil {
			return
		}
		fes[k] = matVec(kts[k], ue)
		return
	})
	if err != nil {
		return
	}
	Kt = o.scatter(kts)
	fint = make([]float64, o.Dofs.Ndofs)
	for k, fe := range fes {
		for i, I := range o.Dofs.Umaps[k] {
			fint[I] += fe[i]
		}
	}
	return
}

// InternalForces computes the global internal forces at displacements u
func (o *Assembler) InternalForces(u []float64) (fint []float64, err error) {
	_, fint, err = o.Tangent(u)
	return
}

// compute runs fcn for all elements; with Nworkers > 1 the calls run concurrently
//  Note: the returned error is the one of the element with the lowest index
func (o *Assembler) compute(fcn func(k int, e Elem) error) error {
	if o.Nworkers <= 1 {
		for k, e := range o.Elems {
			if err := fcn(k, e); err != nil {
				return err
			}
		}
		return nil
	}
	errs := make([]error, len(o.Elems))
	var g errgroup.Group
	g.SetLimit(o.Nworkers)
	for k, e := range o.Elems {
		k, e := k, e
		g.Go(func() error {
			errs[k] = fcn(k, e)
			return nil
		})
	}
	g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// scatter adds element matrices to a new global matrix in element order
func (o *Assembler) scatter(mats []*mat.Dense) (A *SysMatrix) {
	nnz := 0
	for _, umap := range o.Dofs.Umaps {
		nnz += len(umap) * len(umap)
	}
	A = NewSysMatrix(o.Dofs.Ndofs, o.Sparse, nnz)
	for k, me := range mats {
		A.AddElem(1, me, o.Dofs.Umaps[k])
	}
	return
}

// GlobalSystem holds the global system of equations and the partition of DOFs
type GlobalSystem struct {
	N     int          // number of equations == Ndofs
	K     *SysMatrix   // stiffness matrix
	M     *SysMatrix   // mass matrix (optional)
	F     []float64    // external forces
	Cons  *Constraints // prescribed displacements
	Fixed []int        // constrained DOFs and DOFs of missing node ids (sorted)
	Free  []int        // free DOFs (sorted)
	Dofs  *DofTable    // DOF-allocation table

	// reactions
	forig []float64 // external forces before elimination
	kc    *Triplet  // rows of the stiffness matrix at constrained DOFs before elimination
}

// NewGlobalSystem partitions the DOFs and checks for unused DOFs left unconstrained
func NewGlobalSystem(K, M *SysMatrix, F []float64, cons *Constraints, dofs *DofTable) (o *GlobalSystem, err error) {
	o = &GlobalSystem{N: dofs.Ndofs, K: K, M: M, F: F, Cons: cons, Dofs: dofs}

	// unused DOFs must be constrained
	for _, I := range dofs.Unused() {
		if !cons.Has(I) {
			node, ldof := dofs.NodeDof(I)
			hint := HINT_UNUSED_DOF
			if dofs.Orphan(node) {
				hint = HINT_ORPHAN
			}
			return nil, &SingularSystemError{Dof: I, Node: node, Ldof: ldof + 1, Hint: hint}
		}
	}

	// partition
	phantom := dofs.Phantom()
	o.Fixed = append(o.Fixed, cons.Dofs...)
	o.Fixed = append(o.Fixed, phantom...)
	sort.Ints(o.Fixed)
	o.Free = cons.Free(o.N, phantom)
	return
}

// Value returns the prescribed value of a fixed DOF
func (o *GlobalSystem) Value(I int) float64 {
	return o.Cons.Value(I)
}

// CheckPivots reports free DOFs with a zero (or negative) diagonal in A
func (o *GlobalSystem) CheckPivots(A *SysMatrix) (err error) {
	d := A.Diag()
	dmax := 0.0
	for _, v := range d {
		dmax = math.Max(dmax, math.Abs(v))
	}
	for _, I := range o.Free {
		if d[I] <= 1e-14*dmax {
			node, ldof := o.Dofs.NodeDof(I)
			return &SingularSystemError{Dof: I, Node: node, Ldof: ldof + 1, Hint: HINT_RIGID_BODY, Msg: io.Sf("diagonal entry is %g", d[I])}
		}
	}
	return
}

// SaveForReactions keeps the rows of K at constrained DOFs and the external forces
func (o *GlobalSystem) SaveForReactions() {
	o.forig = make([]float64, o.N)
	copy(o.forig, o.F)
	t := o.K.ToTriplet()
	o.kc = new(Triplet)
	o.kc.Init(o.N, o.N, len(o.Cons.Dofs)*32)
	for k := 0; k < t.Len(); k++ {
		i, j, x := t.Entry(k)
		if o.Cons.Has(i) {
			o.kc.Put(i, j, x)
		}
	}
}

// Reactions computes R = K_row u - F_row at constrained DOFs (zero elsewhere)
func (o *GlobalSystem) Reactions(u []float64) (R []float64) {
	R = make([]float64, o.N)
	if o.kc == nil {
		return
	}
	for k := 0; k < o.kc.Len(); k++ {
		i, j, x := o.kc.Entry(k)
		R[i] += x * u[j]
	}
	for _, I := range o.Cons.Dofs {
		R[I] -= o.forig[I]
	}
	return
}

// Eliminate applies prescribed values to A x = b by row/column elimination
//  b -= A[:,c] val(c);  A[c,:] = A[:,c] = 0;  A[c,c] = 1;  b[c] = val(c)
//  Note: dense matrices are modified in place; sparse ones are filtered into a new matrix
func (o *GlobalSystem) Eliminate(A *SysMatrix, b []float64, val func(I int) float64) (res *SysMatrix) {
	fixed := make(map[int]bool, len(o.Fixed))
	for _, c := range o.Fixed {
		fixed[c] = true
	}
	if A.Dense != nil {
		for _, c := range o.Fixed {
			v := val(c)
			if v != 0 {
				for i := 0; i < o.N; i++ {
					if !fixed[i] {
						b[i] -= A.Dense.At(i, c) * v
					}
				}
			}
		}
		for _, c := range o.Fixed {
			for i := 0; i < o.N; i++ {
				A.Dense.Set(i, c, 0)
				A.Dense.Set(c, i, 0)
			}
		}
		for _, c := range o.Fixed {
			A.Dense.Set(c, c, 1)
			b[c] = val(c)
		}
		A.csr = nil
		return A
	}
	res = NewSysMatrix(o.N, true, A.Trip.Len())
	for k := 0; k < A.Trip.Len(); k++ {
		i, j, x := A.Trip.Entry(k)
		switch {
		case fixed[i]:
		case fixed[j]:
			b[i] -= x * val(j)
		default:
			res.Trip.Put(i, j, x)
		}
	}
	for _, c := range o.Fixed {
		res.Trip.Put(c, c, 1)
		b[c] = val(c)
	}
	return
}

// Solve factorizes the eliminated matrix and solves A x = b
func (o *GlobalSystem) Solve(solver LinearSolver, A *SysMatrix, x, b []float64) (err error) {
	if err = o.CheckPivots(A); err != nil {
		return
	}
	if err = solver.Factorize(A.ToTriplet()); err != nil {
		return
	}
	return solver.Solve(x, b)
}
