// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/aecs4u/calculix-sub000/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. block under pressure")

	dir := tst.TempDir()
	fnres, fnrep := filepath.Join(dir, "block.json"), filepath.Join(dir, "block.txt")
	err := run([]string{"-m", "examples/block/block.yaml", "-o", fnres, "-r", fnrep, "--stresses", "--loglevel", "error"})
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	res, err := out.Load(fnres)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if !res.Success {
		tst.Errorf("analysis should succeed: %s\n", res.Msg)
		return
	}

	// uniaxial compression: σzz = -p and uz(top) = -p/E
	p, E := 1e6, 2.1e11
	for _, id := range []int{1, 7} {
		chk.Float64(tst, "σzz", 1e-6*p, res.Nodal[id][2], -p)
		chk.Float64(tst, "σxx", 1e-6*p, res.Nodal[id][0], 0)
	}
	chk.Float64(tst, "uz @ 7", 1e-6*p/E, res.U[6*res.MaxDpn+2], -p/E)

	// equivalent strain of uniaxial stress: εeq = 2 (1 + ν) p / (3 E)
	ν := 0.3
	εeq, _ := res.MaxEffStrain()
	chk.Float64(tst, "εeq", 1e-6*p/E, εeq, 2*(1+ν)*p/(3*E))

	// mean stress at nodes
	mdl, err := inp.ReadModel("examples/block/block.yaml")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	dat, err := out.Start(mdl, res)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	if err = dat.Define("top", out.N{7}); err != nil {
		tst.Errorf("Define failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σm @ 7", 1e-6*p, dat.GetRes("sm", "top", -1)[0], -p/3)

	b, err := os.ReadFile(fnrep)
	if err != nil {
		tst.Errorf("cannot read report:\n%v", err)
		return
	}
	io.Pf("%s", b)
	for _, s := range []string{"static", "max effective strain"} {
		if !strings.Contains(string(b), s) {
			tst.Errorf("report should contain %q\n", s)
		}
	}
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. configuration file and modal analysis")

	fnres := filepath.Join(tst.TempDir(), "beam.yaml")
	err := run([]string{"-c", "examples/cantilever/ccx.toml", "-o", fnres, "-r", filepath.Join(tst.TempDir(), "beam.txt")})
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	res, err := out.Load(fnres)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if res.Type != "modal" || !res.Success {
		tst.Errorf("modal analysis should succeed. type=%q msg=%q\n", res.Type, res.Msg)
		return
	}
	chk.Int(tst, "number of modes", len(res.Modes), 4)

	// errors
	if err = run([]string{"--loglevel", "error"}); err == nil {
		tst.Errorf("missing model should fail\n")
	}
	if err = run([]string{"-m", "examples/none.yaml", "--loglevel", "error"}); err == nil {
		tst.Errorf("missing model file should fail\n")
	}
}
