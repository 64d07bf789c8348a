// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Beam represents a 3D Euler-Bernoulli beam element (B31) with St-Venant torsion
//  Local DOFs per node: {u, v, w, θ0, θ1, θ2} along/about the local axes {e0, e1, e2}
//   e0 -- beam axis from first to second node
//   e1 -- local axis 1; in the plane of e0 and the up-vector
//   e2 -- local axis 2 == e0 × e1
//  Bending of v about axis 2 uses I22; bending of w about axis 1 uses I11
type Beam struct {

	// basic data
	Eid  int         // element id
	Typ  string      // type tag
	Vids []int       // node ids
	X    [][]float64 // matrix of nodal coordinates [3][2]

	// parameters and properties
	Mat  string        // material name
	Mdl  elastic       // elastic constants
	Kind string        // kind of section
	Sp   inp.SectProps // section properties
	L    float64       // length of beam
	E    [][]float64   // local axes [3][3]; E[i] is the unit vector of axis i

	// matrices
	T  *mat.Dense // [12][12] global-to-local transformation matrix
	Kl *mat.Dense // [12][12] local stiffness matrix
}

// register element
func init() {

	// information allocator
	infogetters["B31"] = func() *Info {
		return &Info{Dpn: 6, Nverts: 2, Geo: "lin2", Sect: true}
	}

	// element allocator
	eallocators["B31"] = func(dat *ElemData) (Elem, error) {

		// basic data
		var o Beam
		o.Eid = dat.Cell.Id
		o.Typ = dat.Cell.Type
		o.Vids = dat.Cell.Verts
		o.X = dat.X

		// parameters
		var err error
		o.Mat = dat.Mat.Name
		o.Mdl = getElastic(dat.Mat)
		o.Kind = dat.Sect.Kind
		o.Sp, err = dat.Sect.Props()
		if err != nil {
			return nil, chk.Err("element %d:\n%v", o.Eid, err)
		}
		if o.Sp.I11 <= 0 || o.Sp.I22 <= 0 || o.Sp.J <= 0 {
			return nil, chk.Err("element %d: section %q of kind %q cannot be used with beams", o.Eid, dat.Sect.Name, o.Kind)
		}

		// local system
		o.L, o.E, err = beamAxes(o.X, dat.Sect.Up)
		if err != nil {
			return nil, chk.Err("element %d: %v", o.Eid, err)
		}
		if o.L <= 0 {
			return nil, &GeometryError{Eid: o.Eid, DetJ: o.L / 2.0}
		}
		o.T = mat.NewDense(12, 12, nil)
		for b := 0; b < 4; b++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					o.T.Set(3*b+i, 3*b+j, o.E[i][j])
				}
			}
		}
		o.Kl = o.localK()
		return &o, nil
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Beam) Id() int { return o.Eid }

// Verts returns the node ids
func (o *Beam) Verts() []int { return o.Vids }

// NodeCount returns the number of nodes
func (o *Beam) NodeCount() int { return 2 }

// DofsPerNode returns the number of DOFs per node
func (o *Beam) DofsPerNode() int { return 6 }

// Stiffness computes the element stiffness matrix
//  K = Tᵀ Kl T
func (o *Beam) Stiffness() (K *mat.Dense, err error) {
	K = mat.NewDense(12, 12, nil)
	K.Product(o.T.T(), o.Kl, o.T)
	return
}

// Mass computes the consistent mass matrix, including the polar inertia of the section
func (o *Beam) Mass() (M *mat.Dense, err error) {
	ρ, err := o.Mdl.rho(o.Eid, o.Mat)
	if err != nil {
		return
	}
	L := o.L
	m := ρ * o.Sp.A * L
	Ml := mat.NewDense(12, 12, nil)
	set := func(i, j int, v float64) {
		Ml.Set(i, j, v)
		Ml.Set(j, i, v)
	}

	// axial and torsion
	mt := ρ * (o.Sp.I11 + o.Sp.I22) * L
	set(0, 0, m/3.0)
	set(6, 6, m/3.0)
	set(0, 6, m/6.0)
	set(3, 3, mt/3.0)
	set(9, 9, mt/3.0)
	set(3, 9, mt/6.0)

	// bending: v-θ2 and w-θ1 (opposite coupling signs)
	c := m / 420.0
	for _, p := range []struct {
		i [4]int
		s float64
	}{
		{[4]int{1, 5, 7, 11}, 1},
		{[4]int{2, 4, 8, 10}, -1},
	} {
		a, b, d, e := p.i[0], p.i[1], p.i[2], p.i[3]
		set(a, a, 156*c)
		set(a, b, p.s*22*L*c)
		set(a, d, 54*c)
		set(a, e, -p.s*13*L*c)
		set(b, b, 4*L*L*c)
		set(b, d, p.s*13*L*c)
		set(b, e, -3*L*L*c)
		set(d, d, 156*c)
		set(d, e, -p.s*22*L*c)
		set(e, e, 4*L*L*c)
	}
	M = mat.NewDense(12, 12, nil)
	M.Product(o.T.T(), Ml, o.T)
	return
}

// Stresses computes section forces and extreme fibre stresses at both ends
//  Forces = {N, V1, V2, Mt, M1, M2} @ node 0 followed by the same @ node 1 (local axes)
//  Sig[end] = {σmax, 0, 0, τmax, 0, 0} with σmax = |N|/A + bending and τmax from torsion
func (o *Beam) Stresses(ue []float64) (res *ElemStress, err error) {
	res = &ElemStress{Eid: o.Eid, Type: o.Typ}
	fl := o.localForces(ue)
	res.Forces = make([]float64, 12)
	for i := 0; i < 6; i++ {
		res.Forces[i] = -fl[i]
		res.Forces[6+i] = fl[6+i]
	}
	for end := 0; end < 2; end++ {
		f := res.Forces[6*end : 6*end+6]
		σ, τ := fibreStresses(o.Kind, o.Sp, f)
		res.X = append(res.X, []float64{o.X[0][end], o.X[1][end], o.X[2][end]})
		res.Sig = append(res.Sig, []float64{σ, 0, 0, τ, 0, 0})
		res.Eps = append(res.Eps, []float64{σ / o.Mdl.E, -o.Mdl.Nu * σ / o.Mdl.E, -o.Mdl.Nu * σ / o.Mdl.E, τ / o.Mdl.G, 0, 0})
		res.Vm = append(res.Vm, math.Sqrt(σ*σ+3.0*τ*τ))
	}
	return
}

// Tangent returns the (constant) stiffness matrix and the internal forces K ue
func (o *Beam) Tangent(ue []float64) (Kt *mat.Dense, fint []float64, err error) {
	Kt, err = o.Stiffness()
	if err != nil {
		return
	}
	fint = matVec(Kt, ue)
	return
}

// DistLoad computes the nodal loads equivalent to a uniform body force along the beam
//  q = A b (force per unit length); moments follow the fixed-end solution ±qL²/12
func (o *Beam) DistLoad(dl *inp.Dload) (fe []float64, err error) {
	b, err := bodyForce(dl, o.Eid, o.Mdl, o.Mat)
	if err != nil {
		return
	}
	q := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q[i] += o.E[i][j] * o.Sp.A * b[j]
		}
	}
	L := o.L
	fl := make([]float64, 12)
	fl[0], fl[6] = q[0]*L/2.0, q[0]*L/2.0
	fl[1], fl[7] = q[1]*L/2.0, q[1]*L/2.0
	fl[5], fl[11] = q[1]*L*L/12.0, -q[1]*L*L/12.0
	fl[2], fl[8] = q[2]*L/2.0, q[2]*L/2.0
	fl[4], fl[10] = -q[2]*L*L/12.0, q[2]*L*L/12.0
	var f mat.VecDense
	f.MulVec(o.T.T(), mat.NewVecDense(12, fl))
	fe = make([]float64, 12)
	for i := 0; i < 12; i++ {
		fe[i] = f.AtVec(i)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// localK computes the local stiffness matrix
func (o *Beam) localK() (Kl *mat.Dense) {
	L := o.L
	L2, L3 := L*L, L*L*L
	EA := o.Mdl.E * o.Sp.A
	GJ := o.Mdl.G * o.Sp.J
	EI2 := o.Mdl.E * o.Sp.I22 // v-θ2
	EI1 := o.Mdl.E * o.Sp.I11 // w-θ1
	Kl = mat.NewDense(12, 12, nil)
	set := func(i, j int, v float64) {
		Kl.Set(i, j, v)
		Kl.Set(j, i, v)
	}

	// axial and torsion
	set(0, 0, EA/L)
	set(6, 6, EA/L)
	set(0, 6, -EA/L)
	set(3, 3, GJ/L)
	set(9, 9, GJ/L)
	set(3, 9, -GJ/L)

	// v-θ2
	set(1, 1, 12*EI2/L3)
	set(1, 5, 6*EI2/L2)
	set(1, 7, -12*EI2/L3)
	set(1, 11, 6*EI2/L2)
	set(5, 5, 4*EI2/L)
	set(5, 7, -6*EI2/L2)
	set(5, 11, 2*EI2/L)
	set(7, 7, 12*EI2/L3)
	set(7, 11, -6*EI2/L2)
	set(11, 11, 4*EI2/L)

	// w-θ1
	set(2, 2, 12*EI1/L3)
	set(2, 4, -6*EI1/L2)
	set(2, 8, -12*EI1/L3)
	set(2, 10, -6*EI1/L2)
	set(4, 4, 4*EI1/L)
	set(4, 8, 6*EI1/L2)
	set(4, 10, 2*EI1/L)
	set(8, 8, 12*EI1/L3)
	set(8, 10, 6*EI1/L2)
	set(10, 10, 4*EI1/L)
	return
}

// localForces computes the local nodal forces Kl T ue
func (o *Beam) localForces(ue []float64) (fl []float64) {
	var ul, f mat.VecDense
	ul.MulVec(o.T, mat.NewVecDense(12, ue))
	f.MulVec(o.Kl, &ul)
	fl = make([]float64, 12)
	for i := 0; i < 12; i++ {
		fl[i] = f.AtVec(i)
	}
	return
}

// beamAxes computes the length and the local axes of a 2-node beam
//  The reference vector is the up-vector if given; otherwise global x, or global y
//  for beams nearly parallel to x
func beamAxes(x [][]float64, up []float64) (L float64, e [][]float64, err error) {
	e = alloc(3, 3)
	for i := 0; i < 3; i++ {
		e[0][i] = x[i][1] - x[i][0]
	}
	L = norm3(e[0])
	if L <= 0 {
		return
	}
	for i := 0; i < 3; i++ {
		e[0][i] /= L
	}
	ref := []float64{1, 0, 0}
	if math.Abs(e[0][0]) >= 0.9 {
		ref = []float64{0, 1, 0}
	}
	if len(up) == 3 && norm3(up) > 0 {
		ref = up
	}
	cross3(e[2], e[0], ref)
	n := norm3(e[2])
	if n < 1e-8*norm3(ref) {
		return L, e, chk.Err("up-vector %v is parallel to the beam axis", ref)
	}
	for i := 0; i < 3; i++ {
		e[2][i] /= n
	}
	cross3(e[1], e[2], e[0])
	return
}

// fibreStresses computes the extreme fibre normal stress and the torsional shear stress
// from section forces f = {N, V1, V2, Mt, M1, M2}
func fibreStresses(kind string, sp inp.SectProps, f []float64) (σ, τ float64) {
	N, Mt, M1, M2 := f[0], f[3], f[4], f[5]
	σ = N / sp.A
	sgn := 1.0
	if σ < 0 {
		sgn = -1.0
	}
	switch kind {
	case "circ", "pipe":
		σ += sgn * math.Sqrt(M1*M1+M2*M2) * sp.Cmax1 / sp.I11
	default:
		σ += sgn * (math.Abs(M1)*sp.Cmax1/sp.I11 + math.Abs(M2)*sp.Cmax2/sp.I22)
	}
	switch kind {
	case "circ", "pipe":
		τ = math.Abs(Mt) * sp.Cmax1 / sp.J
	case "rect":
		τ = math.Abs(Mt) * 2.0 * math.Min(sp.Cmax1, sp.Cmax2) / sp.J
	}
	return
}

// cross3 computes c = a × b
func cross3(c, a, b []float64) {
	c[0] = a[1]*b[2] - a[2]*b[1]
	c[1] = a[2]*b[0] - a[0]*b[2]
	c[2] = a[0]*b[1] - a[1]*b[0]
}

// norm3 returns the Euclidean norm of a 3-vector
func norm3(a []float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}
