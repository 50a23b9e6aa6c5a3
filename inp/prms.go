// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of hillslope parameter sets
package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stratgroup/landlab/ana"
)

// ParamSet holds one named set of hillslope parameters
type ParamSet struct {

	// input
	Name string     `json:"name"` // name of set
	Desc string     `json:"desc"` // description
	Law  string     `json:"law"`  // transport law; e.g. "taylor" (default) or "linear"
	Prms dbf.Params `json:"prms"` // parameters; e.g. D, Sc, Hstar, P0, E, dx, zb, nnodes

	// derived
	Sol *ana.HillslopeSteady `json:"-"` // steady-state solution
}

// ParamDb implements a database of parameter sets
type ParamDb struct {
	Sets []*ParamSet `json:"sets"` // all sets
}

// ReadParamDb reads all parameter sets from a JSON file and computes
// the steady-state solution of each set
func ReadParamDb(dir, fn string) (db *ParamDb, err error) {

	// new database
	db = new(ParamDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, db)
	if err != nil {
		return nil, err
	}
	if len(db.Sets) == 0 {
		return nil, chk.Err("file %q has no parameter sets", fn)
	}

	// check names
	names := make(map[string]bool)
	for i, s := range db.Sets {
		if s.Name == "" {
			return nil, chk.Err("parameter set # %d has no name", i)
		}
		if names[s.Name] {
			return nil, chk.Err("parameter set %q is repeated", s.Name)
		}
		names[s.Name] = true
	}

	// solutions
	for _, s := range db.Sets {
		s.Sol = &ana.HillslopeSteady{Law: s.Law}
		err = s.Sol.Init(s.Prms)
		if err != nil {
			return nil, fmt.Errorf("parameter set %q: %w", s.Name, err)
		}
	}
	return
}

// Get returns a parameter set
//  Note: returns nil if not found
func (o ParamDb) Get(name string) *ParamSet {
	for _, s := range o.Sets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// String prints one parameter set
func (o *ParamSet) String() string {
	l := io.Sf("    {\n      \"name\" : %q,\n      \"desc\" : %q,\n      \"law\"  : %q,\n      \"prms\" : [\n", o.Name, o.Desc, o.Law)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String outputs all parameter sets
func (o ParamDb) String() string {
	l := "{\n  \"sets\" : [\n"
	for i, s := range o.Sets {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", s)
	}
	l += "\n  ]\n}"
	return l
}
