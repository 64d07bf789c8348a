// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinearSolver solves A x = b for matrices given as triplets
type LinearSolver interface {
	Factorize(A *Triplet) error // prepares the solver for matrix A (factorization or preconditioner)
	Solve(x, b []float64) error // solves A x = b; x must be pre-allocated
}

// EigenSolver solves the generalized symmetric eigenproblem K φ = λ M φ
//  Output:
//   λ     -- nev lowest eigenvalues in ascending order
//   Φ     -- [n][nev] mass-normalised eigenvectors (columns)
//   nconv -- number of eigenpairs meeting the tolerance; λ and Φ are truncated to nconv
type EigenSolver interface {
	Solve(K, M *Triplet, nev int) (λ []float64, Φ *mat.Dense, nconv int, err error)
}

// NewLinearSolver returns a linear solver backend by name: "dense" or "cg"
func NewLinearSolver(name string, cfg *inp.AnalysisConfig) (LinearSolver, error) {
	allocator, ok := linsolallocators[name]
	if !ok {
		return nil, chk.Err("linear solver backend %q is not available", name)
	}
	return allocator(cfg), nil
}

// NewEigenSolver returns an eigen solver backend by name: "dense" or "subspace"
func NewEigenSolver(name string, cfg *inp.AnalysisConfig) (EigenSolver, error) {
	allocator, ok := eigsolallocators[name]
	if !ok {
		return nil, chk.Err("eigen solver backend %q is not available", name)
	}
	return allocator(cfg), nil
}

// linsolallocators holds all available linear solver backends
var linsolallocators = map[string]func(cfg *inp.AnalysisConfig) LinearSolver{
	"dense": func(cfg *inp.AnalysisConfig) LinearSolver { return new(DenseLU) },
	"cg": func(cfg *inp.AnalysisConfig) LinearSolver {
		return &Pcg{Tol: cfg.CgTol, MaxIt: cfg.CgMaxIt}
	},
}

// eigsolallocators holds all available eigen solver backends
var eigsolallocators = map[string]func(cfg *inp.AnalysisConfig) EigenSolver{
	"dense": func(cfg *inp.AnalysisConfig) EigenSolver { return new(DenseEig) },
	"subspace": func(cfg *inp.AnalysisConfig) EigenSolver {
		return &Subspace{Tol: cfg.EigTol, MaxIt: cfg.EigMaxIt}
	},
}

// DenseLU implements a direct solver with the LU factorization of dense matrices
type DenseLU struct {
	n  int    // dimension
	lu mat.LU // factorization
}

// Factorize computes the LU factorization and checks the condition number
func (o *DenseLU) Factorize(A *Triplet) (err error) {
	o.n, _ = A.Dims()
	o.lu.Factorize(A.ToDense())
	cond := o.lu.Cond()
	if math.IsInf(cond, 0) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		return &SingularSystemError{Dof: -1, Hint: HINT_RIGID_BODY, Msg: io.Sf("LU factorization: condition number is %g", cond)}
	}
	return
}

// Solve solves A x = b
func (o *DenseLU) Solve(x, b []float64) (err error) {
	var xv mat.VecDense
	err = o.lu.SolveVecTo(&xv, false, mat.NewVecDense(o.n, b))
	if err != nil {
		return &SingularSystemError{Dof: -1, Hint: HINT_RIGID_BODY, Msg: err.Error()}
	}
	for i := 0; i < o.n; i++ {
		x[i] = xv.AtVec(i)
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return &SingularSystemError{Dof: i, Hint: HINT_RIGID_BODY, Msg: "solution is not finite"}
		}
	}
	return
}

// Pcg implements the Jacobi-preconditioned conjugate gradients method over compressed rows
type Pcg struct {
	Tol   float64 // relative tolerance: ‖r‖ ≤ Tol ‖b‖
	MaxIt int     // max number of iterations; 0 means 10 n
	Nit   int     // number of iterations of the last solution
	a     *CSR    // matrix
	dinv  []float64
}

// Factorize builds the compressed rows and the preconditioner
func (o *Pcg) Factorize(A *Triplet) (err error) {
	o.a = A.ToCSR()
	d := o.a.Diag()
	o.dinv = make([]float64, o.a.M)
	for i, v := range d {
		if v <= 0 {
			return &SingularSystemError{Dof: i, Hint: HINT_RIGID_BODY, Msg: io.Sf("conjugate gradients: diagonal entry is %g", v)}
		}
		o.dinv[i] = 1.0 / v
	}
	return
}

// Solve solves A x = b starting from x = 0
func (o *Pcg) Solve(x, b []float64) (err error) {
	n := o.a.M
	maxit := o.MaxIt
	if maxit < 1 {
		maxit = 10 * n
	}
	tol := o.Tol
	if tol <= 0 {
		tol = 1e-10
	}
	for i := range x {
		x[i] = 0
	}
	nb := floats.Norm(b, 2)
	if nb == 0 {
		return
	}
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	q := make([]float64, n)
	copy(r, b)
	floats.MulTo(z, o.dinv, r)
	copy(p, z)
	rz := floats.Dot(r, z)
	for o.Nit = 1; o.Nit <= maxit; o.Nit++ {
		o.a.MulVec(q, p)
		pq := floats.Dot(p, q)
		if pq <= 0 || math.IsNaN(pq) {
			return &SingularSystemError{Dof: -1, Hint: HINT_RIGID_BODY, Msg: io.Sf("conjugate gradients: matrix is not positive definite (pᵀAp = %g)", pq)}
		}
		α := rz / pq
		floats.AddScaled(x, α, p)
		floats.AddScaled(r, -α, q)
		res := floats.Norm(r, 2) / nb
		if res <= tol {
			return
		}
		floats.MulTo(z, o.dinv, r)
		rznew := floats.Dot(r, z)
		β := rznew / rz
		rz = rznew
		floats.AddScaledTo(p, z, β, p)
	}
	return &ConvergenceError{What: "conjugate gradients", Iters: maxit, Residual: floats.Norm(r, 2) / nb}
}

// DenseEig implements the dense generalized symmetric eigen solver:
//  M = L Lᵀ (Cholesky);  A = L⁻¹ K L⁻ᵀ;  A z = λ z;  φ = L⁻ᵀ z
type DenseEig struct{}

// Solve solves the eigenproblem
func (o *DenseEig) Solve(K, M *Triplet, nev int) (λ []float64, Φ *mat.Dense, nconv int, err error) {
	λ, Φ, err = symGenEig(K.ToDense(), M.ToDense())
	if err != nil {
		return
	}
	n := len(λ)
	if nev > n {
		nev = n
	}
	return λ[:nev], mat.DenseCopyOf(Φ.Slice(0, n, 0, nev)), nev, nil
}

// Subspace implements Bathe's subspace iteration with q = min(2p, p+8) vectors
//  Note: K must be non-singular (no rigid-body modes); it is factorized once
type Subspace struct {
	Tol   float64 // relative tolerance on eigenvalues
	MaxIt int     // max number of iterations
	Nit   int     // number of iterations performed
}

// Solve solves the eigenproblem
func (o *Subspace) Solve(K, M *Triplet, nev int) (λ []float64, Φ *mat.Dense, nconv int, err error) {

	// matrices
	n, _ := K.Dims()
	if nev > n {
		nev = n
	}
	q := imin(imin(2*nev, nev+8), n)
	Kd, Md := K.ToDense(), M.ToDense()
	var lu mat.LU
	lu.Factorize(Kd)
	if c := lu.Cond(); math.IsInf(c, 0) || c > mat.ConditionTolerance {
		return nil, nil, 0, &SingularSystemError{Dof: -1, Hint: HINT_RIGID_BODY, Msg: io.Sf("subspace iteration requires a non-singular stiffness matrix; condition number is %g", c)}
	}

	// starting vectors: diag(M) and unit vectors at the smallest kii/mii ratios
	X := mat.NewDense(n, q, nil)
	ratio := make([]int, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, Md.At(i, i))
		ratio[i] = i
	}
	sort.SliceStable(ratio, func(a, b int) bool {
		ia, ib := ratio[a], ratio[b]
		return Kd.At(ia, ia)*Md.At(ib, ib) < Kd.At(ib, ib)*Md.At(ia, ia)
	})
	for j := 1; j < q; j++ {
		X.Set(ratio[j-1], j, 1)
	}

	// iterations
	maxit := o.MaxIt
	if maxit < 1 {
		maxit = 100
	}
	tol := o.Tol
	if tol <= 0 {
		tol = 1e-8
	}
	var Y, Xb, Kq, Mq, tmp mat.Dense
	var λold []float64
	for o.Nit = 1; o.Nit <= maxit; o.Nit++ {
		Y.Mul(Md, X)
		if err = lu.SolveTo(&Xb, false, &Y); err != nil {
			return nil, nil, 0, &SingularSystemError{Dof: -1, Hint: HINT_RIGID_BODY, Msg: err.Error()}
		}
		tmp.Mul(Kd, &Xb)
		Kq.Mul(Xb.T(), &tmp)
		tmp.Mul(Md, &Xb)
		Mq.Mul(Xb.T(), &tmp)
		λq, Q, e := symGenEig(&Kq, &Mq)
		if e != nil {
			return nil, nil, 0, chk.Err("subspace iteration: projected eigenproblem failed:\n%v", e)
		}
		X.Mul(&Xb, Q)
		nconv = 0
		if λold != nil {
			for i := 0; i < nev; i++ {
				if math.Abs(λq[i]-λold[i]) > tol*math.Abs(λq[i]) {
					break
				}
				nconv++
			}
		}
		λold = λq
		if nconv == nev {
			break
		}
	}
	return λold[:nconv], mat.DenseCopyOf(X.Slice(0, n, 0, nconv)), nconv, nil
}

// symGenEig solves K φ = λ M φ with dense matrices; λ are ascending and φᵀ M φ = 1
func symGenEig(K, M mat.Matrix) (λ []float64, Φ *mat.Dense, err error) {
	n, _ := K.Dims()
	Ms := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			Ms.SetSym(i, j, (M.At(i, j)+M.At(j, i))/2.0)
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(Ms); !ok {
		return nil, nil, chk.Err("mass matrix is not positive definite")
	}
	var L, Li mat.TriDense
	chol.LTo(&L)
	if err = Li.InverseTri(&L); err != nil {
		return nil, nil, chk.Err("cannot invert Cholesky factor:\n%v", err)
	}
	var A mat.Dense
	A.Product(&Li, K, Li.T())
	As := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			As.SetSym(i, j, (A.At(i, j)+A.At(j, i))/2.0)
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(As, true); !ok {
		return nil, nil, chk.Err("symmetric eigen decomposition failed")
	}
	λ = es.Values(nil)
	var Z mat.Dense
	es.VectorsTo(&Z)
	Φ = new(mat.Dense)
	Φ.Mul(Li.T(), &Z)
	return
}

// imin returns the minimum of two integers
func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
