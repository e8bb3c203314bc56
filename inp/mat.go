// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/granulab/aircls/mdl/particle"
)

// Material holds material data
type Material struct {

	// input
	Name string     `json:"name"` // name of material
	Type string     `json:"type"` // type of material: "particle", "air" or "steel"
	Desc string     `json:"desc"` // description
	Prms dbf.Params `json:"prms"` // model parameters

	// derived
	Particle *particle.Properties // particle property model, for "particle" entries
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Particles map[string]*Material // subset: powder fractions
	Airs      map[string]*Material // subset: process air
	Steels    map[string]*Material // subset: construction steels
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}

	// subsets
	mdb.Particles = make(map[string]*Material)
	mdb.Airs = make(map[string]*Material)
	mdb.Steels = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "particle":
			mdb.Particles[m.Name] = m
		case "air":
			mdb.Airs[m.Name] = m
		case "steel":
			mdb.Steels[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"particle\", \"air\" and \"steel\"", m.Type)
		}
	}

	// alloc/init: particle models
	for _, m := range mdb.Particles {
		m.Particle = new(particle.Properties)
		err = m.Particle.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise particle material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material by name or nil if not present
func (o *MatDb) Get(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
