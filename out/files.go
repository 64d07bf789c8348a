// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aecs4u/calculix-sub000/fem"
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Save writes results to a JSON (.json) or YAML (.yaml, .yml) file
func Save(path string, res *fem.Result) (err error) {
	var b []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		b, err = json.MarshalIndent(res, "", "  ")
	case ".yaml", ".yml":
		b, err = yaml.Marshal(res)
	default:
		return chk.Err("results file %q: extension must be .json, .yaml or .yml", path)
	}
	if err != nil {
		return chk.Err("cannot marshal results:\n%v", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return chk.Err("cannot create directory for results file %q:\n%v", path, err)
		}
	}
	if err = os.WriteFile(path, b, 0644); err != nil {
		return chk.Err("cannot write results file %q:\n%v", path, err)
	}
	return
}

// Load reads results saved by Save
func Load(path string) (res *fem.Result, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", path, err)
	}
	res = new(fem.Result)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, res)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, res)
	default:
		return nil, chk.Err("results file %q: extension must be .json, .yaml or .yml", path)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal results file %q:\n%v", path, err)
	}
	return
}
