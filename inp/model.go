// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Model holds all data describing a structure: mesh, materials, sections, sets and boundary conditions
type Model struct {
	Mesh `yaml:",inline"` // nodes and cells

	Desc  string `json:"desc" yaml:"desc"`   // description
	Mats  MatDb  `json:"mats" yaml:"mats"`   // materials
	Sects SectDb `json:"sects" yaml:"sects"` // sections
	Sets  Sets   `json:"sets" yaml:"sets"`   // named sets
	Bcs   Bcs    `json:"bcs" yaml:"bcs"`     // boundary conditions and loads
}

// Init checks input data and computes derived data
func (o *Model) Init() (err error) {
	err = o.Mesh.Init()
	if err != nil {
		return
	}
	if o.Sets.Nodes == nil {
		o.Sets.Nodes = make(map[string][]int)
	}
	if o.Sets.Elems == nil {
		o.Sets.Elems = make(map[string][]int)
	}
	for name, ids := range o.Sets.Nodes {
		for _, id := range ids {
			if _, ok := o.NodeMap[id]; !ok {
				return chk.Err("node set %q references unknown node %d", name, id)
			}
		}
	}
	for name, ids := range o.Sets.Elems {
		for _, id := range ids {
			if _, ok := o.CellMap[id]; !ok {
				return chk.Err("element set %q references unknown element %d", name, id)
			}
		}
	}
	return o.Bcs.Amp.Check()
}

// ReadModel reads a model from a JSON (.json) or YAML (.yaml, .yml) file and initialises it
func ReadModel(path string) (o *Model, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	o = new(Model)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("model file %q: extension must be .json, .yaml or .yml", path)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q:\n%v", path, err)
	}
	err = o.Init()
	if err != nil {
		return nil, chk.Err("model file %q is invalid:\n%v", path, err)
	}
	return
}
