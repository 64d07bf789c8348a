// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"time"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/sirupsen/logrus"
)

// FEsolver defines the interface of analysis procedures
type FEsolver interface {
	Run(res *Result) (err error) // runs the procedure and fills res; res carries partial progress on errors
}

// solverallocators holds all available solvers; analysis type => allocator
var solverallocators = make(map[string]func(a *Analysis) FEsolver)

// Analysis runs one analysis of a model: elements → DOF table → loads → assembly → solver → stresses
type Analysis struct {

	// input
	Model *inp.Model          // model
	Cfg   *inp.AnalysisConfig // configuration
	Log   logrus.FieldLogger  // optional logger; nil means silent

	// derived
	Elems []Elem       // elements in the order of cells
	Dofs  *DofTable    // DOF-allocation table
	Cons  *Constraints // prescribed displacements
	Fext  []float64    // external forces [ndofs]
	Asm   *Assembler   // assembler
}

// NewAnalysis returns a new analysis
//  Note: cfg must have been post-processed; nil means the default static analysis
func NewAnalysis(mdl *inp.Model, cfg *inp.AnalysisConfig, log logrus.FieldLogger) (o *Analysis, err error) {
	if cfg == nil {
		cfg = new(inp.AnalysisConfig)
		cfg.SetDefault()
		if err = cfg.PostProcess(); err != nil {
			return
		}
	}
	o = &Analysis{Model: mdl, Cfg: cfg, Log: log}
	return
}

// Init allocates the elements, the DOF-allocation table, the loads and the assembler
//  Note: the first invalid element aborts with its typed error
func (o *Analysis) Init() (err error) {
	o.Elems = make([]Elem, len(o.Model.Cells))
	opts := ElemOpts{Nlgeom: o.Cfg.Nlgeom}
	for k, cell := range o.Model.Cells {
		o.Elems[k], err = NewElem(cell, o.Model, opts)
		if err != nil {
			return
		}
	}
	nodeIds := make([]int, len(o.Model.Nodes))
	for k, n := range o.Model.Nodes {
		nodeIds[k] = n.Id
	}
	o.Dofs = NewDofTable(o.Elems, nodeIds)
	o.Cons, o.Fext, err = ResolveBcs(o.Model, o.Dofs, o.Elems)
	if err != nil {
		return
	}
	st, err := o.Model.Bcs.Stats(&o.Model.Sets)
	if err != nil {
		return
	}
	o.Asm = NewAssembler(o.Elems, o.Dofs, o.Cfg)
	o.logf(logrus.Fields{
		"elements": len(o.Elems),
		"nodes":    len(o.Model.Nodes),
		"ndofs":    o.Dofs.Ndofs,
		"maxdpn":   o.Dofs.MaxDpn,
		"ncons":    len(o.Cons.Dofs),
		"ndisp":    st.Ndisp,
		"ncload":   st.Ncload,
		"ndload":   st.Ndload,
		"sparse":   o.Asm.Sparse,
	}, "model initialised")
	return
}

// Run runs the analysis
//  Note: on convergence errors the returned result carries partial progress (e.g. iterations
//        history); on any other error the result is nil
func (o *Analysis) Run() (res *Result, err error) {
	if o.Asm == nil {
		if err = o.Init(); err != nil {
			return
		}
	}
	allocator, ok := solverallocators[o.Cfg.Type]
	if !ok {
		return nil, chk.Err("analysis type %q is not available", o.Cfg.Type)
	}
	res = &Result{Type: o.Cfg.Type, Ndofs: o.Dofs.Ndofs, MaxDpn: o.Dofs.MaxDpn, Ncons: len(o.Cons.Dofs)}
	start := time.Now()
	err = allocator(o).Run(res)
	if err != nil {
		if o.Log != nil {
			o.Log.WithError(err).WithField("type", o.Cfg.Type).Error("analysis failed")
		}
		var cerr *ConvergenceError
		if !errors.As(err, &cerr) {
			res = nil
		}
		return
	}
	if res.U != nil && (o.Cfg.Type == "static" || o.Cfg.Type == "nonlinear") {
		res.Stresses, err = o.Asm.Stresses(res.U)
		if err != nil {
			return nil, err
		}
		res.Nodal = AverageNodal(res.Stresses, o.Elems)
	}
	o.logf(logrus.Fields{
		"type":    o.Cfg.Type,
		"success": res.Success,
		"nfree":   res.Nfree,
		"elapsed": time.Since(start).String(),
	}, "analysis finished")
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// system builds the global system and records the numbers of DOFs
func (o *Analysis) system(K, M *SysMatrix, res *Result) (sys *GlobalSystem, err error) {
	F := make([]float64, len(o.Fext))
	copy(F, o.Fext)
	sys, err = NewGlobalSystem(K, M, F, o.Cons, o.Dofs)
	if err != nil {
		return
	}
	res.Nfree = len(sys.Free)
	return
}

// logf logs an informative message if a logger was given
func (o *Analysis) logf(fields logrus.Fields, msg string) {
	if o.Log != nil {
		o.Log.WithFields(fields).Info(msg)
	}
}
