// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/msolid"
	"github.com/aecs4u/calculix-sub000/shp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Beam3 represents a straight 3-node Timoshenko beam element (B32)
//  Nodes follow lin3: both ends first, then the mid-node
//  Local DOFs per node: {u, v, w, θ0, θ1, θ2}; local axes as in Beam
//  Generalised strains (derivatives along the axis):
//   axial:   ε  = u'
//   shear:   γ1 = v' - θ2,  γ2 = w' + θ1
//   torsion: τ  = θ0'
//   bending: κ1 = θ1',  κ2 = θ2'
//  The stiffness uses 2-point Gauss integration; the mass and loads use 3 points
type Beam3 struct {

	// basic data
	Eid  int         // element id
	Typ  string      // type tag
	Vids []int       // node ids
	X    [][]float64 // matrix of nodal coordinates [3][3]

	// parameters and properties
	Mat  string        // material name
	Mdl  elastic       // elastic constants
	Kind string        // kind of section
	Sp   inp.SectProps // section properties
	L    float64       // length of beam
	E    [][]float64   // local axes [3][3]; E[i] is the unit vector of axis i
	D    []float64     // section moduli {EA, κGA, κGA, GJ, EI11, EI22}

	// integration
	Shp *shp.Shape   // shape structure
	Ips []shp.Ipoint // 2 integration points (stiffness and stresses)
	Ipm []shp.Ipoint // 3 integration points (mass and loads)

	// matrices
	T  *mat.Dense // [18][18] global-to-local transformation matrix
	Kl *mat.Dense // [18][18] local stiffness matrix
}

// register element
func init() {

	// information allocator
	infogetters["B32"] = func() *Info {
		return &Info{Dpn: 6, Nverts: 3, Geo: "lin3", Sect: true}
	}

	// element allocator
	eallocators["B32"] = func(dat *ElemData) (Elem, error) {

		// basic data
		var o Beam3
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
		GAs := msolid.KAPPA_SHEAR * o.Mdl.G * o.Sp.A
		o.D = []float64{o.Mdl.E * o.Sp.A, GAs, GAs, o.Mdl.G * o.Sp.J, o.Mdl.E * o.Sp.I11, o.Mdl.E * o.Sp.I22}

		// local system
		o.L, o.E, err = beamAxes(o.X, dat.Sect.Up)
		if err != nil {
			return nil, chk.Err("element %d: %v", o.Eid, err)
		}
		if o.L <= 0 {
			return nil, &GeometryError{Eid: o.Eid, DetJ: o.L / 2.0}
		}
		if err = o.checkStraight(); err != nil {
			return nil, err
		}
		o.T = mat.NewDense(18, 18, nil)
		for b := 0; b < 6; b++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					o.T.Set(3*b+i, 3*b+j, o.E[i][j])
				}
			}
		}

		// integration points
		o.Shp = shp.Get("lin3", 1)
		if o.Ips, err = shp.GetIps("lin3", 2); err != nil {
			return nil, err
		}
		if o.Ipm, err = shp.GetIps("lin3", 3); err != nil {
			return nil, err
		}
		if o.Kl, err = o.localK(); err != nil {
			return nil, err
		}
		return &o, nil
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Beam3) Id() int { return o.Eid }

// Verts returns the node ids
func (o *Beam3) Verts() []int { return o.Vids }

// NodeCount returns the number of nodes
func (o *Beam3) NodeCount() int { return 3 }

// DofsPerNode returns the number of DOFs per node
func (o *Beam3) DofsPerNode() int { return 6 }

// Stiffness computes the element stiffness matrix
//  K = Tᵀ Kl T
func (o *Beam3) Stiffness() (K *mat.Dense, err error) {
	K = mat.NewDense(18, 18, nil)
	K.Product(o.T.T(), o.Kl, o.T)
	return
}

// Mass computes the consistent mass matrix, including the rotary inertia of the section
//  M = Σ w ρ diag(A, A, A, I11+I22, I11, I22) Sᵀ S J
func (o *Beam3) Mass() (M *mat.Dense, err error) {
	ρ, err := o.Mdl.rho(o.Eid, o.Mat)
	if err != nil {
		return
	}
	A, I1, I2 := o.Sp.A, o.Sp.I11, o.Sp.I22
	inertia := []float64{A, A, A, I1 + I2, I1, I2}
	Ml := mat.NewDense(18, 18, nil)
	for k, ip := range o.Ipm {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := ρ * o.Shp.J * ip.W()
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				v := coef * o.Shp.S[m] * o.Shp.S[n]
				for i := 0; i < 6; i++ {
					Ml.Set(6*m+i, 6*n+i, Ml.At(6*m+i, 6*n+i)+v*inertia[i])
				}
			}
		}
	}
	M = mat.NewDense(18, 18, nil)
	M.Product(o.T.T(), Ml, o.T)
	return
}

// Stresses computes section forces and extreme fibre stresses at the integration points
//  Forces = {N, V1, V2, Mt, M1, M2} @ first point followed by the same @ second point (local axes)
//  Sig[k] = {σmax, 0, 0, τmax, 0, 0}; see Beam.Stresses
func (o *Beam3) Stresses(ue []float64) (res *ElemStress, err error) {
	res = &ElemStress{Eid: o.Eid, Type: o.Typ, X: ipCoords(o.Shp, o.X, o.Ips)}
	ul := o.toLocal(ue)
	B := alloc(6, 18)
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return
		}
		f := make([]float64, 6)
		for i := 0; i < 6; i++ {
			for j := 0; j < 18; j++ {
				f[i] += o.D[i] * B[i][j] * ul[j]
			}
		}
		res.Forces = append(res.Forces, f...)
		σ, τ := fibreStresses(o.Kind, o.Sp, f)
		res.Sig = append(res.Sig, []float64{σ, 0, 0, τ, 0, 0})
		res.Eps = append(res.Eps, []float64{σ / o.Mdl.E, -o.Mdl.Nu * σ / o.Mdl.E, -o.Mdl.Nu * σ / o.Mdl.E, τ / o.Mdl.G, 0, 0})
		res.Vm = append(res.Vm, math.Sqrt(σ*σ+3.0*τ*τ))
	}
	return
}

// Tangent returns the (constant) stiffness matrix and the internal forces K ue
func (o *Beam3) Tangent(ue []float64) (Kt *mat.Dense, fint []float64, err error) {
	Kt, err = o.Stiffness()
	if err != nil {
		return
	}
	fint = matVec(Kt, ue)
	return
}

// DistLoad computes the consistent nodal loads of a uniform body force along the beam
//  fe[6m+i] = Σ w S_m A b_i J; no nodal moments arise
func (o *Beam3) DistLoad(dl *inp.Dload) (fe []float64, err error) {
	b, err := bodyForce(dl, o.Eid, o.Mdl, o.Mat)
	if err != nil {
		return
	}
	fe = make([]float64, 18)
	for k, ip := range o.Ipm {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.Sp.A * o.Shp.J * ip.W()
		for m := 0; m < 3; m++ {
			for i := 0; i < 3; i++ {
				fe[6*m+i] += coef * o.Shp.S[m] * b[i]
			}
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipB computes the generalised strain-displacement matrix B [6][18] in local axes
func (o *Beam3) ipB(B [][]float64, idx int, ip shp.Ipoint) (err error) {
	if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
		return shapeErr(o.Eid, idx, o.Shp, err)
	}
	for i := range B {
		for j := range B[i] {
			B[i][j] = 0
		}
	}
	for m := 0; m < 3; m++ {
		G, S := o.Shp.Gvec[m], o.Shp.S[m]
		c := 6 * m
		B[0][c+0] = G
		B[1][c+1], B[1][c+5] = G, -S
		B[2][c+2], B[2][c+4] = G, S
		B[3][c+3] = G
		B[4][c+4] = G
		B[5][c+5] = G
	}
	return
}

// localK computes the local stiffness matrix
//  Kl = Σ w Bᵀ D B J
func (o *Beam3) localK() (Kl *mat.Dense, err error) {
	Kl = mat.NewDense(18, 18, nil)
	B := alloc(6, 18)
	for k, ip := range o.Ips {
		if err = o.ipB(B, k, ip); err != nil {
			return nil, err
		}
		coef := o.Shp.J * ip.W()
		for i := 0; i < 18; i++ {
			for j := 0; j < 18; j++ {
				v := 0.0
				for r := 0; r < 6; r++ {
					v += B[r][i] * o.D[r] * B[r][j]
				}
				Kl.Set(i, j, Kl.At(i, j)+coef*v)
			}
		}
	}
	return
}

// toLocal computes the local displacements T ue
func (o *Beam3) toLocal(ue []float64) (ul []float64) {
	var u mat.VecDense
	u.MulVec(o.T, mat.NewVecDense(18, ue))
	ul = make([]float64, 18)
	for i := 0; i < 18; i++ {
		ul[i] = u.AtVec(i)
	}
	return
}

// checkStraight checks that the mid-node lies on the chord between the end nodes
func (o *Beam3) checkStraight() error {
	d := make([]float64, 3)
	for i := 0; i < 3; i++ {
		d[i] = o.X[i][2] - o.X[i][0]
	}
	s := d[0]*o.E[0][0] + d[1]*o.E[0][1] + d[2]*o.E[0][2]
	for i := 0; i < 3; i++ {
		d[i] -= s * o.E[0][i]
	}
	if s <= 0 || s >= o.L || norm3(d) > 1e-6*o.L {
		return chk.Err("element %d: mid-node %d of %s must lie between the end nodes on a straight axis", o.Eid, o.Vids[2], o.Typ)
	}
	return nil
}
