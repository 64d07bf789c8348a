// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Triplet is a sparse matrix in coordinate format; repeated entries are summed
type Triplet struct {
	m, n int       // dimensions
	pos  int       // current position (number of entries)
	i    []int     // row indices
	j    []int     // column indices
	x    []float64 // values
}

// Init allocates space for at most max entries
func (o *Triplet) Init(m, n, max int) {
	o.m, o.n, o.pos = m, n, 0
	o.i = make([]int, 0, max)
	o.j = make([]int, 0, max)
	o.x = make([]float64, 0, max)
}

// Start resets the position; i.e. empties the matrix and keeps the allocated space
func (o *Triplet) Start() {
	o.pos = 0
	o.i, o.j, o.x = o.i[:0], o.j[:0], o.x[:0]
}

// Put appends an entry
func (o *Triplet) Put(i, j int, x float64) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("Triplet.Put: index (%d,%d) is outside [%d,%d)", i, j, o.m, o.n)
	}
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.x = append(o.x, x)
	o.pos++
}

// Len returns the number of entries
func (o *Triplet) Len() int { return o.pos }

// Dims returns the dimensions
func (o *Triplet) Dims() (m, n int) { return o.m, o.n }

// Entry returns entry k
func (o *Triplet) Entry(k int) (i, j int, x float64) { return o.i[k], o.j[k], o.x[k] }

// ToDense converts to dense matrix
func (o *Triplet) ToDense() *mat.Dense {
	a := mat.NewDense(o.m, o.n, nil)
	for k := 0; k < o.pos; k++ {
		a.Set(o.i[k], o.j[k], a.At(o.i[k], o.j[k])+o.x[k])
	}
	return a
}

// ToCSR converts to compressed-row format; repeated entries are summed in insertion order
func (o *Triplet) ToCSR() *CSR {
	idx := make([]int, o.pos)
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := idx[a], idx[b]
		if o.i[ka] != o.i[kb] {
			return o.i[ka] < o.i[kb]
		}
		return o.j[ka] < o.j[kb]
	})
	c := &CSR{M: o.m, N: o.n, P: make([]int, o.m+1)}
	prevI, prevJ := -1, -1
	for _, k := range idx {
		if o.i[k] == prevI && o.j[k] == prevJ {
			c.X[len(c.X)-1] += o.x[k]
			continue
		}
		c.J = append(c.J, o.j[k])
		c.X = append(c.X, o.x[k])
		c.P[o.i[k]+1]++
		prevI, prevJ = o.i[k], o.j[k]
	}
	for r := 0; r < o.m; r++ {
		c.P[r+1] += c.P[r]
	}
	return c
}

// CSR is a sparse matrix in compressed-row format
type CSR struct {
	M, N int       // dimensions
	P    []int     // [M+1] row pointers
	J    []int     // [nnz] column indices (sorted within each row)
	X    []float64 // [nnz] values
}

// MulVec computes y = A * x
func (o *CSR) MulVec(y, x []float64) {
	for r := 0; r < o.M; r++ {
		s := 0.0
		for k := o.P[r]; k < o.P[r+1]; k++ {
			s += o.X[k] * x[o.J[k]]
		}
		y[r] = s
	}
}

// At returns entry (i,j)
func (o *CSR) At(i, j int) float64 {
	row := o.J[o.P[i]:o.P[i+1]]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return o.X[o.P[i]+k]
	}
	return 0
}

// Diag returns the diagonal
func (o *CSR) Diag() (d []float64) {
	d = make([]float64, o.M)
	for i := 0; i < o.M; i++ {
		d[i] = o.At(i, i)
	}
	return
}

// SysMatrix is a global matrix with either dense or sparse (triplet) storage
type SysMatrix struct {
	N     int        // dimension
	Dense *mat.Dense // dense storage; nil if sparse
	Trip  *Triplet   // sparse storage; nil if dense
	csr   *CSR       // cached compressed rows of Trip
}

// NewSysMatrix allocates a global matrix
//  nnz -- estimated number of entries (sparse storage only)
func NewSysMatrix(n int, sparse bool, nnz int) (o *SysMatrix) {
	o = &SysMatrix{N: n}
	if sparse {
		o.Trip = new(Triplet)
		o.Trip.Init(n, n, nnz)
		return
	}
	o.Dense = mat.NewDense(n, n, nil)
	return
}

// Sparse tells whether the storage is sparse
func (o *SysMatrix) Sparse() bool { return o.Trip != nil }

// Put adds x to entry (i,j)
func (o *SysMatrix) Put(i, j int, x float64) {
	o.csr = nil
	if o.Trip != nil {
		o.Trip.Put(i, j, x)
		return
	}
	o.Dense.Set(i, j, o.Dense.At(i, j)+x)
}

// AddElem adds an element matrix (times α) using an assembly map
func (o *SysMatrix) AddElem(α float64, Ke *mat.Dense, umap []int) {
	for i, I := range umap {
		for j, J := range umap {
			if v := Ke.At(i, j); v != 0 {
				o.Put(I, J, α*v)
			}
		}
	}
}

// CSR returns the compressed rows of a sparse matrix (cached until the next Put)
func (o *SysMatrix) CSR() *CSR {
	if o.csr == nil {
		o.csr = o.ToTriplet().ToCSR()
	}
	return o.csr
}

// ToDense returns the dense version of this matrix
//  Note: returns the internal storage if dense; i.e. not a copy
func (o *SysMatrix) ToDense() *mat.Dense {
	if o.Dense != nil {
		return o.Dense
	}
	return o.Trip.ToDense()
}

// ToTriplet returns the triplet version of this matrix
//  Note: returns the internal storage if sparse; i.e. not a copy
func (o *SysMatrix) ToTriplet() *Triplet {
	if o.Trip != nil {
		return o.Trip
	}
	t := new(Triplet)
	t.Init(o.N, o.N, o.N)
	for i := 0; i < o.N; i++ {
		for j := 0; j < o.N; j++ {
			if v := o.Dense.At(i, j); v != 0 {
				t.Put(i, j, v)
			}
		}
	}
	return t
}

// MulVec computes y = A * x
func (o *SysMatrix) MulVec(y, x []float64) {
	if o.Dense != nil {
		for i := 0; i < o.N; i++ {
			s := 0.0
			for j := 0; j < o.N; j++ {
				s += o.Dense.At(i, j) * x[j]
			}
			y[i] = s
		}
		return
	}
	o.CSR().MulVec(y, x)
}

// At returns entry (i,j)
func (o *SysMatrix) At(i, j int) float64 {
	if o.Dense != nil {
		return o.Dense.At(i, j)
	}
	return o.CSR().At(i, j)
}

// Diag returns the diagonal
func (o *SysMatrix) Diag() (d []float64) {
	if o.Dense != nil {
		d = make([]float64, o.N)
		for i := 0; i < o.N; i++ {
			d[i] = o.Dense.At(i, i)
		}
		return
	}
	return o.CSR().Diag()
}

// Reduced returns the dense submatrix of the selected rows/columns
func (o *SysMatrix) Reduced(sel []int) *mat.Dense {
	n := len(sel)
	a := mat.NewDense(n, n, nil)
	if o.Dense != nil {
		for i, I := range sel {
			for j, J := range sel {
				a.Set(i, j, o.Dense.At(I, J))
			}
		}
		return a
	}
	pos := make(map[int]int, n)
	for i, I := range sel {
		pos[I] = i
	}
	c := o.CSR()
	for i, I := range sel {
		for k := c.P[I]; k < c.P[I+1]; k++ {
			if j, ok := pos[c.J[k]]; ok {
				a.Set(i, j, c.X[k])
			}
		}
	}
	return a
}

// Combine returns a A + b B with the storage of A
func Combine(a float64, A *SysMatrix, b float64, B *SysMatrix) (res *SysMatrix) {
	if A.Dense != nil {
		res = NewSysMatrix(A.N, false, 0)
		var tmp mat.Dense
		res.Dense.Scale(a, A.Dense)
		tmp.Scale(b, B.ToDense())
		res.Dense.Add(res.Dense, &tmp)
		return
	}
	ta, tb := A.ToTriplet(), B.ToTriplet()
	res = NewSysMatrix(A.N, true, ta.Len()+tb.Len())
	for k := 0; k < ta.Len(); k++ {
		i, j, x := ta.Entry(k)
		res.Trip.Put(i, j, a*x)
	}
	for k := 0; k < tb.Len(); k++ {
		i, j, x := tb.Entry(k)
		res.Trip.Put(i, j, b*x)
	}
	return
}
