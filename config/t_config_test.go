// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// parse parses command line arguments and loads the configuration
func parse(tst *testing.T, args ...string) (*Config, error) {
	f := NewFlagSet("ccx")
	if err := f.Parse(args); err != nil {
		tst.Fatalf("Parse failed:\n%v", err)
	}
	return Load(f)
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. defaults and flags")

	cfg, err := Load(nil)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if cfg.Type != "static" || cfg.Matrix != "auto" || cfg.LogLevel != "info" || cfg.Config != DefaultFile {
		tst.Errorf("wrong defaults: %+v\n", cfg)
	}
	chk.Int(tst, "maxit", cfg.MaxIt, 50)
	chk.Float64(tst, "β", 1e-15, cfg.Beta, 0.25)

	cfg, err = parse(tst, "-t", "modal", "--nmodes", "4", "-m", "beam.yaml", "--eigbackend", "subspace", "-v")
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if cfg.Type != "modal" || cfg.Model != "beam.yaml" || cfg.EigBackend != "subspace" || !cfg.Verbose {
		tst.Errorf("flags were not loaded: %+v\n", cfg)
	}
	chk.Int(tst, "nmodes", cfg.Nmodes, 4)
	chk.Int(tst, "maxit (default)", cfg.MaxIt, 50)

	// invalid values are caught
	_, err = parse(tst, "-t", "buckling")
	if err == nil {
		tst.Errorf("invalid analysis type should fail\n")
	}
	io.Pforan("err = %v\n", err)
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02. file and environment")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "run.toml")
	toml := `type = "dynamic"
scheme = "linear"
dt = 0.5
nsteps = 3
nmodes = 2
output = "results.yaml"
`
	if err := os.WriteFile(fn, []byte(toml), 0644); err != nil {
		tst.Fatalf("cannot write file:\n%v", err)
	}
	tst.Setenv("CCX_NSTEPS", "7")
	tst.Setenv("CCX_NMODES", "9")
	tst.Setenv("CCX_LOGLEVEL", "debug")

	// flags > environment > file
	cfg, err := parse(tst, "-c", fn, "--nmodes", "5")
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if cfg.Type != "dynamic" || cfg.Output != "results.yaml" || cfg.LogLevel != "debug" || cfg.Config != fn {
		tst.Errorf("wrong configuration: %+v\n", cfg)
	}
	chk.Float64(tst, "dt", 1e-15, cfg.Dt, 0.5)
	chk.Float64(tst, "β", 1e-15, cfg.Beta, 1.0/6.0)
	chk.Int(tst, "nsteps", cfg.Nsteps, 7)
	chk.Int(tst, "nmodes", cfg.Nmodes, 5)

	// explicit missing file
	_, err = parse(tst, "-c", filepath.Join(dir, "missing.toml"))
	if err == nil {
		tst.Errorf("missing configuration file should fail\n")
	}
}

func Test_logging01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("logging01. logger")

	fn := filepath.Join(tst.TempDir(), "ccx.log")
	cfg := &Config{LogLevel: "warn", LogFormat: "json", LogFile: fn}
	log, closer, err := cfg.NewLogger()
	if err != nil {
		tst.Errorf("NewLogger failed:\n%v", err)
		return
	}
	log.Info("hidden")
	log.WithFields(logrus.Fields{"nfree": 12}).Warn("shown")
	if err = closer(); err != nil {
		tst.Errorf("cannot close log file:\n%v", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		tst.Errorf("cannot read log file:\n%v", err)
		return
	}
	l := string(b)
	io.Pforan("%s", l)
	if strings.Contains(l, "hidden") || !strings.Contains(l, `"msg":"shown"`) || !strings.Contains(l, `"nfree":12`) {
		tst.Errorf("wrong log:\n%s", l)
	}

	// errors
	for _, c := range []*Config{{LogLevel: "loud"}, {LogLevel: "info", LogFormat: "xml"}} {
		if _, _, err = c.NewLogger(); err == nil {
			tst.Errorf("invalid logger configuration should fail: %+v\n", c)
		}
	}
}
