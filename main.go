// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/aecs4u/calculix-sub000/config"
	"github.com/aecs4u/calculix-sub000/fem"
	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		io.Verbose = true
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// run reads the configuration and the model, runs the analysis and writes the results
func run(args []string) (err error) {

	// configuration
	f := config.NewFlagSet("ccx")
	if err = f.Parse(args); err != nil {
		return
	}
	cfg, err := config.Load(f)
	if err != nil {
		return
	}
	if cfg.Model == "" && f.NArg() > 0 {
		cfg.Model = f.Arg(0)
	}
	if cfg.Model == "" {
		return chk.Err("model file is required; e.g. ccx -m model.yaml")
	}
	log, closer, err := cfg.NewLogger()
	if err != nil {
		return
	}
	defer closer()
	io.Verbose = cfg.Verbose

	// message
	if cfg.Verbose {
		io.PfWhite("\nccx -- finite element analysis of structures\n\n")
		io.Pf("%-20s = %v\n", "model file", cfg.Model)
		io.Pf("%-20s = %v\n", "analysis type", cfg.Type)
		io.Pf("%-20s = %v\n", "matrix storage", cfg.Matrix)
		io.Pf("%-20s = %v\n", "linear solver", cfg.Backend)
		io.Pf("%-20s = %v\n", "number of workers", cfg.Nworkers)
		io.Pf("%-20s = %v\n\n", "results file", cfg.Output)
	}

	// model
	mdl, err := inp.ReadModel(cfg.Model)
	if err != nil {
		return
	}
	log.WithField("model", cfg.Model).Info("model loaded")

	// analysis
	a, err := fem.NewAnalysis(mdl, &cfg.AnalysisConfig, log)
	if err != nil {
		return
	}
	res, err := a.Run()
	if res == nil {
		return
	}

	// results: also written for analyses that did not converge
	rep := out.Report(mdl, res, out.ReportOpts{Nodes: cfg.Nodes, Stresses: cfg.Stresses, Iters: cfg.Iters, Every: cfg.Every})
	if cfg.Report == "" {
		os.Stdout.WriteString(rep)
	} else if e := os.WriteFile(cfg.Report, []byte(rep), 0644); e != nil {
		return chk.Err("cannot write report %q:\n%v", cfg.Report, e)
	}
	if cfg.Output != "" {
		if e := out.Save(cfg.Output, res); e != nil {
			return e
		}
		log.WithField("file", cfg.Output).Info("results saved")
	}
	return
}
