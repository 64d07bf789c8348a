// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the run configuration: defaults, TOML file, environment and flags
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"

	"github.com/aecs4u/calculix-sub000/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// constants
const (
	EnvPrefix   = "CCX_"     // prefix of environment variables; e.g. CCX_NMODES=5
	DefaultFile = "ccx.toml" // configuration file read when present
)

// Config holds all configuration for one run
//  Note: keys are the json tags; analysis keys are at the top level (e.g. "type", "nmodes")
type Config struct {
	inp.AnalysisConfig `json:",squash"`

	// files
	Config string `json:"config"` // configuration file (TOML)
	Model  string `json:"model"`  // model file (.json, .yaml or .yml)
	Output string `json:"output"` // results file (.json, .yaml or .yml); empty means none
	Report string `json:"report"` // text report file; empty means standard output

	// report
	Nodes    bool `json:"nodes"`    // list nodal displacements
	Stresses bool `json:"stresses"` // list element stresses
	Iters    bool `json:"iters"`    // list nonlinear iterations
	Every    int  `json:"every"`    // dynamic analyses: list every n-th state

	// logging
	LogLevel  string `json:"loglevel"`  // "debug", "info", "warn" or "error"
	LogFormat string `json:"logformat"` // "text" or "json"
	LogFile   string `json:"logfile"`   // "stderr", "stdout" or a file path
	Verbose   bool   `json:"verbose"`   // print solver progress
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.AnalysisConfig.SetDefault()
	o.Config = DefaultFile
	o.LogLevel = "info"
	o.LogFormat = "text"
	o.LogFile = "stderr"
}

// NewFlagSet returns the command line flags; flag names are configuration keys
func NewFlagSet(name string) (f *pflag.FlagSet) {
	var d Config
	d.SetDefault()
	f = pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.StringP("config", "c", d.Config, "configuration file (TOML)")
	f.StringP("model", "m", d.Model, "model file (.json, .yaml or .yml)")
	f.StringP("output", "o", d.Output, "results file (.json, .yaml or .yml)")
	f.StringP("report", "r", d.Report, "text report file; empty means standard output")
	f.BoolP("verbose", "v", d.Verbose, "print solver progress")
	f.Bool("nodes", d.Nodes, "list nodal displacements in the report")
	f.Bool("stresses", d.Stresses, "list element stresses in the report")
	f.Bool("iters", d.Iters, "list nonlinear iterations in the report")
	f.Int("every", d.Every, "dynamic analyses: list every n-th state in the report")
	f.StringP("type", "t", d.Type, `analysis type: "static", "modal", "nonlinear" or "dynamic"`)
	f.Int("nmodes", d.Nmodes, "number of modes (modal)")
	f.String("matrix", d.Matrix, `global matrix storage: "dense", "sparse" or "auto"`)
	f.String("backend", d.Backend, `linear solver: "dense" or "cg"`)
	f.String("eigbackend", d.EigBackend, `eigen solver: "dense" or "subspace"`)
	f.Int("nworkers", d.Nworkers, "number of goroutines computing element matrices")
	f.Int("nincs", d.Nincs, "number of load increments (nonlinear)")
	f.Int("maxit", d.MaxIt, "max number of iterations per increment (nonlinear)")
	f.Bool("nlgeom", d.Nlgeom, "geometric nonlinearity (nonlinear)")
	f.Bool("linesearch", d.LineSearch, "line search (nonlinear)")
	f.String("scheme", d.Scheme, `Newmark scheme: "average", "linear", "fox-goodwin" or "custom"`)
	f.Float64("dt", d.Dt, "time step (dynamic)")
	f.Int("nsteps", d.Nsteps, "number of time steps (dynamic)")
	f.String("loglevel", d.LogLevel, `log level: "debug", "info", "warn" or "error"`)
	f.String("logformat", d.LogFormat, `log format: "text" or "json"`)
	f.String("logfile", d.LogFile, `log output: "stderr", "stdout" or a file path`)
	return
}

// Load loads the configuration
//  Priority: flags > environment > configuration file > defaults
//  Note: f must have been parsed; a missing configuration file is an error only if it was given explicitly
func Load(f *pflag.FlagSet) (o *Config, err error) {
	k := koanf.New(".")

	// defaults
	var d Config
	d.SetDefault()
	defaults, err := toMap(&d)
	if err != nil {
		return
	}
	if err = k.Load(mapProvider(defaults), nil); err != nil {
		return nil, chk.Err("cannot load defaults:\n%v", err)
	}

	// configuration file
	fn, explicit := d.Config, false
	if f != nil && f.Changed("config") {
		fn, _ = f.GetString("config")
		explicit = true
	}
	if fn != "" {
		err = k.Load(file.Provider(fn), toml.Parser())
		if err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, chk.Err("cannot load configuration file %q:\n%v", fn, err)
			}
			err = nil
		}
		k.Set("config", fn)
	}

	// environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, chk.Err("cannot load environment variables:\n%v", err)
	}

	// flags
	if f != nil {
		if err = k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, chk.Err("cannot load flags:\n%v", err)
		}
	}

	// results
	o = new(Config)
	if err = k.UnmarshalWithConf("", o, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, chk.Err("cannot unmarshal configuration:\n%v", err)
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// toMap converts a configuration into a map of keys
func toMap(c *Config) (m map[string]interface{}, err error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, chk.Err("cannot marshal defaults:\n%v", err)
	}
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, chk.Err("cannot unmarshal defaults:\n%v", err)
	}
	return
}

// mapProvider implements a koanf provider reading from a map
type mapProvider map[string]interface{}

// Read returns the map
func (o mapProvider) Read() (map[string]interface{}, error) {
	return o, nil
}

// ReadBytes is not supported
func (o mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("map provider does not read bytes")
}
