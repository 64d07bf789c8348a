// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"sort"

	"github.com/aecs4u/calculix-sub000/fem"
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/io"
)

// ReportOpts holds options for text reports
type ReportOpts struct {
	Nodes    bool // list displacements of all nodes
	Stresses bool // list stresses of all elements
	Iters    bool // list nonlinear iterations
	Every    int  // dynamic analyses: list every n-th state; ≤ 0 means first and last only
}

// Report returns a text report of the results
func Report(mdl *inp.Model, res *fem.Result, opts ReportOpts) string {
	var b bytes.Buffer
	w := func(msg string, prm ...interface{}) {
		b.WriteString(io.Sf(msg, prm...))
	}

	// header
	w("%s\n", line('=', 80))
	if mdl.Desc != "" {
		w("%s\n", mdl.Desc)
	}
	w("analysis type        : %s\n", res.Type)
	w("success              : %v\n", res.Success)
	if res.Msg != "" {
		w("message              : %s\n", res.Msg)
	}
	w("nodes                : %d\n", len(mdl.Nodes))
	w("elements             : %d\n", len(mdl.Cells))
	types := make([]string, 0, len(mdl.Type2ids))
	for typ := range mdl.Type2ids {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		w("  %-18s : %d\n", typ, len(mdl.Type2ids[typ]))
	}
	w("DOFs (total/free/constrained) : %d / %d / %d\n", res.Ndofs, res.Nfree, res.Ncons)
	if st, err := mdl.Bcs.Stats(&mdl.Sets); err == nil {
		w("boundary conditions  : %d displacement (%d DOFs), %d concentrated, %d distributed\n", st.Ndisp, st.Ncons, st.Ncload, st.Ndload)
	}
	w("%s\n", line('=', 80))

	// results
	switch {
	case len(res.Modes) > 0:
		reportModes(w, res)
	case len(res.History) > 0:
		reportHistory(w, mdl, res, opts.Every)
	case res.U != nil:
		if opts.Iters && len(res.Iters) > 0 {
			reportIters(w, res)
		}
		reportStatic(w, mdl, res, opts)
	}
	return b.String()
}

// reportStatic writes the summary of static or nonlinear results
func reportStatic(w func(string, ...interface{}), mdl *inp.Model, res *fem.Result, opts ReportOpts) {
	umax, dof := res.MaxDisp()
	if dof >= 0 {
		nid, ldof := dof/res.MaxDpn+1, dof%res.MaxDpn
		w("max |displacement|   : %13.6e  @ node %d, %s\n", umax, nid, DispKeys[ldof])
	}
	if len(res.Stresses) > 0 {
		vm, eid := res.MaxVm()
		w("max von Mises stress : %13.6e  @ element %d\n", vm, eid)
		εeq, eid := res.MaxEffStrain()
		w("max effective strain : %13.6e  @ element %d\n", εeq, eid)
	}
	if len(res.Iters) > 0 {
		w("Newton-Raphson       : %d linear solutions\n", res.Nit)
	}

	// reactions summed over all constrained DOFs
	if res.Reactions != nil {
		sum := make([]float64, res.MaxDpn)
		for I, r := range res.Reactions {
			sum[I%res.MaxDpn] += r
		}
		w("sum of reactions     :")
		for i, v := range sum {
			w(" %s=%13.6e", ReactKeys[i], v)
		}
		w("\n")
	}

	// nodes
	if opts.Nodes {
		w("\n%8s", "node")
		for i := 0; i < res.MaxDpn; i++ {
			w("%14s", DispKeys[i])
		}
		w("\n")
		for _, nod := range mdl.Nodes {
			u := res.NodeDisp(nod.Id)
			w("%8d", nod.Id)
			for _, v := range u {
				w("%14.6e", v)
			}
			w("\n")
		}
	}

	// stresses
	if opts.Stresses {
		w("\n%8s%8s%8s%14s\n", "elem", "type", "point", "von Mises")
		for _, s := range res.Stresses {
			for k, vm := range s.Vm {
				w("%8d%8s%8d%14.6e\n", s.Eid, s.Type, k, vm)
			}
		}
	}
}

// reportIters writes the history of nonlinear iterations
func reportIters(w func(string, ...interface{}), res *fem.Result) {
	w("%4s%4s%10s%15s%15s%15s%8s\n", "inc", "it", "λ", "resF", "resU", "resE", "α")
	for _, it := range res.Iters {
		w("%4d%4d%10.4f%15.6e%15.6e%15.6e%8.4f\n", it.Inc, it.It, it.Lam, it.ResF, it.ResU, it.ResE, it.Alpha)
	}
	w("%s\n", line('-', 80))
}

// reportModes writes eigenvalues and frequencies
func reportModes(w func(string, ...interface{}), res *fem.Result) {
	w("%6s%17s%17s%17s%8s\n", "mode", "eigenvalue", "ω [rad/s]", "f [Hz]", "rigid")
	for k, m := range res.Modes {
		rigid := ""
		if m.RigidBody {
			rigid = "yes"
		}
		w("%6d%17.8e%17.8e%17.8e%8s\n", k+1, m.Eigenvalue, m.Omega, m.Freq, rigid)
	}
}

// reportHistory writes the largest displacement of selected states
func reportHistory(w func(string, ...interface{}), mdl *inp.Model, res *fem.Result, every int) {
	w("%8s%15s%15s%10s\n", "step", "t", "max |u|", "node")
	n := len(res.History)
	for k, s := range res.History {
		if !(k == 0 || k == n-1 || (every > 0 && k%every == 0)) {
			continue
		}
		umax, dof := 0.0, -1
		for I, v := range s.U {
			if I%res.MaxDpn < 3 && math.Abs(v) > umax {
				umax, dof = math.Abs(v), I
			}
		}
		nid := 0
		if dof >= 0 {
			nid = dof/res.MaxDpn + 1
		}
		w("%8d%15.6e%15.6e%10d\n", k, s.T, umax, nid)
	}
}

// line returns a line made of n characters c
func line(c byte, n int) string {
	return string(bytes.Repeat([]byte{c}, n))
}
