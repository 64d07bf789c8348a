// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/msolid"
	"github.com/aecs4u/calculix-sub000/shp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// coefficient of the drilling penalty: γ = DRILL_COEF G t
const DRILL_COEF = 1e-3

// coefficient of the transverse hourglass stabilisation of S4R
const SHELL_HOURGLASS_EPS = 0.01

// Shell represents a flat 4-node Mindlin-Reissner shell element (S4 and S4R)
//  Local DOFs per node: {u, v, w, θx, θy, θz} along/about the local axes {e1, e2, e3}
//  Kinematics: u = z θy, v = -z θx
//   membrane:  εm = {u,x, v,y, u,y + v,x}
//   bending:   κ  = {θy,x, -θx,y, θy,y - θx,x}
//   shear:     γ  = {w,x + θy, w,y - θx}
//   drilling:  ω  = θz - (v,x - u,y)/2
//  S4 interpolates the transverse shear from the tying points of MITC4; S4R uses one point
//  plus a stabilisation of the w = r s hourglass mode
type Shell struct {

	// basic data
	Eid  int         // element id
	Typ  string      // type tag
	Vids []int       // node ids
	X    [][]float64 // matrix of nodal coordinates [3][4]

	// parameters and properties
	Mat     string       // material name
	Ela     elastic      // elastic constants
	Mdl     msolid.Small // constitutive model
	Thick   float64      // thickness
	Reduced bool         // one-point transverse shear (S4R)
	Dps     [][]float64  // [3][3] plane-stress modulus
	Dm      [][]float64  // [3][3] membrane modulus == t Dps
	Db      [][]float64  // [3][3] bending modulus == t³/12 Dps
	Ds      [][]float64  // [2][2] transverse shear modulus == κ G t I
	Dd      [][]float64  // [1][1] drilling penalty

	// local system
	Xc []float64   // [3] centroid
	E  [][]float64 // [3][3] local axes; E[i] is the unit vector of axis i
	Xl [][]float64 // [2][4] local in-plane coordinates of nodes
	T  *mat.Dense  // [24][24] global-to-local transformation matrix

	// integration
	Shp  *shp.Shape   // shape structure
	Ips  []shp.Ipoint // 2×2 integration points
	Ip1  []shp.Ipoint // 1 integration point (reduced shear)
	Btie [][]float64  // [4][24] covariant shear at tying points: γr @ A(0,1), C(0,-1); γs @ D(1,0), B(-1,0)
}

// register element
func init() {
	for _, typ := range []string{"S4", "S4R"} {
		reduced := typ == "S4R"

		// information allocator
		infogetters[typ] = func() *Info {
			return &Info{Dpn: 6, Nverts: 4, Geo: "qua4", Sect: true}
		}

		// element allocator
		eallocators[typ] = func(dat *ElemData) (Elem, error) {

			// basic data
			var o Shell
			o.Eid = dat.Cell.Id
			o.Typ = dat.Cell.Type
			o.Vids = dat.Cell.Verts
			o.X = dat.X
			o.Reduced = reduced

			// parameters
			var err error
			o.Mat = dat.Mat.Name
			o.Ela = getElastic(dat.Mat)
			props, err := dat.Sect.Props()
			if err != nil {
				return nil, chk.Err("element %d:\n%v", o.Eid, err)
			}
			if props.Thick <= 0 {
				return nil, chk.Err("element %d: section %q of kind %q cannot be used with shells", o.Eid, dat.Sect.Name, dat.Sect.Kind)
			}
			o.Thick = props.Thick

			// moduli
			o.Mdl, err = newSmallModel(o.Eid, dat.Mat)
			if err != nil {
				return nil, err
			}
			o.Dps, o.Dm, o.Db, o.Ds = alloc(3, 3), alloc(3, 3), alloc(3, 3), alloc(2, 2)
			if err = o.Mdl.CalcDps(o.Dps); err != nil {
				return nil, &MaterialError{Eid: o.Eid, Mat: o.Mat, Msg: err.Error()}
			}
			if err = o.Mdl.CalcDsh(o.Db, o.Ds, o.Thick); err != nil {
				return nil, &MaterialError{Eid: o.Eid, Mat: o.Mat, Msg: err.Error()}
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					o.Dm[i][j] = o.Thick * o.Dps[i][j]
				}
			}
			o.Dd = [][]float64{{DRILL_COEF * o.Ela.G * o.Thick}}

			// local system
			if err = o.localSystem(); err != nil {
				return nil, err
			}

			// integration points
			o.Shp = shp.Get("qua4", 1)
			if o.Ips, err = shp.GetIps("qua4", 4); err != nil {
				return nil, err
			}
			if o.Ip1, err = shp.GetIps("qua4", 1); err != nil {
				return nil, err
			}
			for k, ip := range o.Ips {
				if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
					return nil, shapeErr(o.Eid, k, o.Shp, err)
				}
			}

			// tying points
			o.Btie = alloc(4, 24)
			for k, p := range []struct {
				r, s float64
				dir  int
			}{
				{0, 1, 0}, {0, -1, 0}, {1, 0, 1}, {-1, 0, 1},
			} {
				if err = o.Shp.CalcAtIp(o.Xl, shp.Ipoint{p.r, p.s, 0, 0}, true); err != nil {
					return nil, shapeErr(o.Eid, k, o.Shp, err)
				}
				for m := 0; m < 4; m++ {
					o.Btie[k][6*m+2] = o.Shp.DSdR[m][p.dir]
					o.Btie[k][6*m+3] = -o.Shp.S[m] * o.Shp.DxdR[1][p.dir]
					o.Btie[k][6*m+4] = o.Shp.S[m] * o.Shp.DxdR[0][p.dir]
				}
			}
			return &o, nil
		}
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Shell) Id() int { return o.Eid }

// Verts returns the node ids
func (o *Shell) Verts() []int { return o.Vids }

// NodeCount returns the number of nodes
func (o *Shell) NodeCount() int { return 4 }

// DofsPerNode returns the number of DOFs per node
func (o *Shell) DofsPerNode() int { return 6 }

// Stiffness computes the element stiffness matrix
//  K = Tᵀ (Km + Kb + Ks + Kd) T
func (o *Shell) Stiffness() (K *mat.Dense, err error) {
	Kl := alloc(24, 24)
	Bm, Bb, Bs, Bd := alloc(3, 24), alloc(3, 24), alloc(2, 24), alloc(1, 24)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.Shp.J * ip.W()
		o.planeB(Bm, Bb, Bd)
		addBtDB(Kl, Bm, o.Dm, coef)
		addBtDB(Kl, Bb, o.Db, coef)
		addBtDB(Kl, Bd, o.Dd, coef)
		if !o.Reduced {
			o.shearB(Bs, ip)
			addBtDB(Kl, Bs, o.Ds, coef)
		}
	}
	if o.Reduced {
		for k, ip := range o.Ip1 {
			if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
				return nil, shapeErr(o.Eid, k, o.Shp, err)
			}
			o.shearB(Bs, ip)
			addBtDB(Kl, Bs, o.Ds, o.Shp.J*ip.W())
		}
		if err = o.addHourglass(Kl); err != nil {
			return
		}
	}
	return o.toGlobal(Kl), nil
}

// addHourglass adds the stiffness stabilising the deflection mode w = r s of one-point shear
//  γ = (h - (h·xi) bi) / 4   with  h = r s @ nodes  and  bi = dS/dxi @ centre
//  Kl[6m+2][6n+2] += κ γ[m] γ[n]   with  κ = ε Ds₀₀ A (Σi bi·bi)
//  Note: γ is orthogonal to linear deflections; thus rigid motions are not affected
func (o *Shell) addHourglass(Kl [][]float64) (err error) {
	if err = o.Shp.CalcAtIp(o.Xl, shp.Ipoint{0, 0, 0, 4}, true); err != nil {
		return shapeErr(o.Eid, 0, o.Shp, err)
	}
	A := 4.0 * o.Shp.J
	bb, hx := 0.0, []float64{0, 0}
	γ := make([]float64, 4)
	for m := 0; m < 4; m++ {
		γ[m] = o.Shp.NatCoords[0][m] * o.Shp.NatCoords[1][m]
		for i := 0; i < 2; i++ {
			bb += o.Shp.G[m][i] * o.Shp.G[m][i]
			hx[i] += γ[m] * o.Xl[i][m]
		}
	}
	for m := 0; m < 4; m++ {
		γ[m] = (γ[m] - hx[0]*o.Shp.G[m][0] - hx[1]*o.Shp.G[m][1]) / 4.0
	}
	κ := SHELL_HOURGLASS_EPS * o.Ds[0][0] * A * bb
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			Kl[6*m+2][6*n+2] += κ * γ[m] * γ[n]
		}
	}
	return
}

// Mass computes the consistent mass matrix
//  ρ t for translations and ρ t³/12 for the three rotations
func (o *Shell) Mass() (M *mat.Dense, err error) {
	ρ, err := o.Ela.rho(o.Eid, o.Mat)
	if err != nil {
		return
	}
	mt := ρ * o.Thick
	mr := ρ * o.Thick * o.Thick * o.Thick / 12.0
	Ml := alloc(24, 24)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.Shp.J * ip.W()
		for m := 0; m < 4; m++ {
			for n := 0; n < 4; n++ {
				v := coef * o.Shp.S[m] * o.Shp.S[n]
				for i := 0; i < 3; i++ {
					Ml[6*m+i][6*n+i] += mt * v
					Ml[6*m+3+i][6*n+3+i] += mr * v
				}
			}
		}
	}
	return o.toGlobal(Ml), nil
}

// Stresses computes stresses at the bottom (z = -t/2) and top (z = +t/2) surfaces
//  Sig[k] bottom and Sig[nip+k] top of integration point k; local axes {e1, e2, e3}
//  Forces = {Nxx, Nyy, Nxy, Mxx, Myy, Mxy} at each integration point (concatenated)
//  Note: transverse shear stresses vanish at the surfaces
func (o *Shell) Stresses(ue []float64) (res *ElemStress, err error) {
	res = &ElemStress{Eid: o.Eid, Type: o.Typ}
	ul := o.toLocal(ue)
	Bm, Bb, Bd := alloc(3, 24), alloc(3, 24), alloc(1, 24)
	nip := len(o.Ips)
	εm, κ := alloc(nip, 3), alloc(nip, 3)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		o.planeB(Bm, Bb, Bd)
		for i := 0; i < 3; i++ {
			for j := 0; j < 24; j++ {
				εm[k][i] += Bm[i][j] * ul[j]
				κ[k][i] += Bb[i][j] * ul[j]
			}
		}
		res.Forces = append(res.Forces, make([]float64, 6)...)
		f := res.Forces[6*k : 6*k+6]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				f[i] += o.Dm[i][j] * εm[k][j]
				f[3+i] += o.Db[i][j] * κ[k][j]
			}
		}
	}
	c := -o.Ela.Nu / (1.0 - o.Ela.Nu)
	for _, z := range []float64{-o.Thick / 2.0, o.Thick / 2.0} {
		for k, ip := range o.Ips {
			ε := make([]float64, 3)
			σ := make([]float64, 3)
			for i := 0; i < 3; i++ {
				ε[i] = εm[k][i] + z*κ[k][i]
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					σ[i] += o.Dps[i][j] * ε[j]
				}
			}
			sig := []float64{σ[0], σ[1], 0, σ[2], 0, 0}
			res.X = append(res.X, o.surfCoords(ip, z))
			res.Sig = append(res.Sig, sig)
			res.Eps = append(res.Eps, []float64{ε[0], ε[1], c * (ε[0] + ε[1]), ε[2], 0, 0})
			res.Vm = append(res.Vm, msolid.VonMises(sig))
		}
	}
	return
}

// Tangent returns the (constant) stiffness matrix and the internal forces K ue
func (o *Shell) Tangent(ue []float64) (Kt *mat.Dense, fint []float64, err error) {
	Kt, err = o.Stiffness()
	if err != nil {
		return
	}
	fint = matVec(Kt, ue)
	return
}

// DistLoad computes nodal loads due to pressure ("P") or body forces ("GRAV", "BX", "BY", "BZ")
//  Note: positive pressure acts against the normal e3 = (x2 - x0) × (x3 - x1)
func (o *Shell) DistLoad(dl *inp.Dload) (fe []float64, err error) {
	b := make([]float64, 3)
	if dl.Kind == "P" {
		for i := 0; i < 3; i++ {
			b[i] = -dl.Value * o.E[2][i]
		}
	} else {
		bv, err := bodyForce(dl, o.Eid, o.Ela, o.Mat)
		if err != nil {
			return nil, err
		}
		for i := 0; i < 3; i++ {
			b[i] = o.Thick * bv[i]
		}
	}
	fe = make([]float64, 24)
	for k, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.Xl, ip, true); err != nil {
			return nil, shapeErr(o.Eid, k, o.Shp, err)
		}
		coef := o.Shp.J * ip.W()
		for m := 0; m < 4; m++ {
			for i := 0; i < 3; i++ {
				fe[6*m+i] += coef * o.Shp.S[m] * b[i]
			}
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// localSystem computes the local axes from the diagonals and the in-plane coordinates of nodes
//  e3 = d1 × d2 / |d1 × d2|,  e1 = (d1 - d2) / |d1 - d2|,  e2 = e3 × e1
//  with d1 = x2 - x0 and d2 = x3 - x1
func (o *Shell) localSystem() (err error) {
	d1, d2, d := make([]float64, 3), make([]float64, 3), make([]float64, 3)
	o.Xc = make([]float64, 3)
	for i := 0; i < 3; i++ {
		d1[i] = o.X[i][2] - o.X[i][0]
		d2[i] = o.X[i][3] - o.X[i][1]
		d[i] = d1[i] - d2[i]
		o.Xc[i] = (o.X[i][0] + o.X[i][1] + o.X[i][2] + o.X[i][3]) / 4.0
	}
	o.E = alloc(3, 3)
	cross3(o.E[2], d1, d2)
	n3, n1 := norm3(o.E[2]), norm3(d)
	if n3 <= 0 || n1 <= 0 {
		return &GeometryError{Eid: o.Eid, DetJ: n3}
	}
	for i := 0; i < 3; i++ {
		o.E[2][i] /= n3
		o.E[0][i] = d[i] / n1
	}
	cross3(o.E[1], o.E[2], o.E[0])
	o.Xl = alloc(2, 4)
	for m := 0; m < 4; m++ {
		for a := 0; a < 2; a++ {
			for i := 0; i < 3; i++ {
				o.Xl[a][m] += (o.X[i][m] - o.Xc[i]) * o.E[a][i]
			}
		}
	}
	o.T = mat.NewDense(24, 24, nil)
	for b := 0; b < 8; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.T.Set(3*b+i, 3*b+j, o.E[i][j])
			}
		}
	}
	return
}

// planeB computes the membrane, bending and drilling B matrices at the current point
func (o *Shell) planeB(Bm, Bb, Bd [][]float64) {
	S, G := o.Shp.S, o.Shp.G
	for m := 0; m < 4; m++ {
		u, v, θx, θy, θz := 6*m, 6*m+1, 6*m+3, 6*m+4, 6*m+5
		Bm[0][u] = G[m][0]
		Bm[1][v] = G[m][1]
		Bm[2][u] = G[m][1]
		Bm[2][v] = G[m][0]
		Bb[0][θy] = G[m][0]
		Bb[1][θx] = -G[m][1]
		Bb[2][θy] = G[m][1]
		Bb[2][θx] = -G[m][0]
		Bd[0][u] = G[m][1] / 2.0
		Bd[0][v] = -G[m][0] / 2.0
		Bd[0][θz] = S[m]
	}
}

// shearB computes the transverse shear B matrix at the current point
//  S4:  γ = J⁻¹ {γr, γs} with γr, γs interpolated from the tying points
//  S4R: γ = {w,x + θy, w,y - θx} (evaluated at the centre)
func (o *Shell) shearB(Bs [][]float64, ip shp.Ipoint) {
	if o.Reduced {
		S, G := o.Shp.S, o.Shp.G
		for m := 0; m < 4; m++ {
			w, θx, θy := 6*m+2, 6*m+3, 6*m+4
			Bs[0][w], Bs[0][θy] = G[m][0], S[m]
			Bs[1][w], Bs[1][θx] = G[m][1], -S[m]
		}
		return
	}
	r, s := ip[0], ip[1]
	Rx := o.Shp.DRdx
	for j := 0; j < 24; j++ {
		γr := (1.0+s)*o.Btie[0][j]/2.0 + (1.0-s)*o.Btie[1][j]/2.0
		γs := (1.0+r)*o.Btie[2][j]/2.0 + (1.0-r)*o.Btie[3][j]/2.0
		Bs[0][j] = Rx[0][0]*γr + Rx[1][0]*γs
		Bs[1][j] = Rx[0][1]*γr + Rx[1][1]*γs
	}
}

// toGlobal computes Tᵀ A T
func (o *Shell) toGlobal(A [][]float64) (res *mat.Dense) {
	Al := mat.NewDense(24, 24, nil)
	for i := 0; i < 24; i++ {
		Al.SetRow(i, A[i])
	}
	res = mat.NewDense(24, 24, nil)
	res.Product(o.T.T(), Al, o.T)
	return
}

// toLocal computes T ue
func (o *Shell) toLocal(ue []float64) (ul []float64) {
	var v mat.VecDense
	v.MulVec(o.T, mat.NewVecDense(24, ue))
	ul = make([]float64, 24)
	for i := 0; i < 24; i++ {
		ul[i] = v.AtVec(i)
	}
	return
}

// surfCoords returns the real coordinates of an integration point shifted by z along e3
func (o *Shell) surfCoords(ip shp.Ipoint, z float64) (x []float64) {
	xl := o.Shp.IpRealCoords(o.Xl, ip)
	x = make([]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = o.Xc[i] + xl[0]*o.E[0][i] + xl[1]*o.E[1][i] + z*o.E[2][i]
	}
	return
}

// addBtDB adds coef Bᵀ D B to K
func addBtDB(K, B, D [][]float64, coef float64) {
	nr, nc := len(B), len(B[0])
	DB := alloc(nr, nc)
	for i := 0; i < nr; i++ {
		for k := 0; k < nr; k++ {
			if D[i][k] == 0 {
				continue
			}
			for j := 0; j < nc; j++ {
				DB[i][j] += D[i][k] * B[k][j]
			}
		}
	}
	for i := 0; i < nc; i++ {
		for k := 0; k < nr; k++ {
			if B[k][i] == 0 {
				continue
			}
			for j := 0; j < nc; j++ {
				K[i][j] += coef * B[k][i] * DB[k][j]
			}
		}
	}
}
