// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stratgroup/landlab/ana"
	"github.com/stratgroup/landlab/inp"
	"github.com/stratgroup/landlab/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath := io.ArgToString(0, "")
	setname := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)
	save := io.ArgToBool(3, false)
	dirout := io.ArgToString(4, "/tmp/landlab")

	// message
	if verbose {
		io.PfWhite("\nLandlab steady hillslope -- reference values\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"parameters file (empty => defaults)", "fnamepath", fnamepath,
			"parameter set (empty => all)", "setname", setname,
			"show messages", "verbose", verbose,
			"save fixtures", "save", save,
			"output directory", "dirout", dirout,
		))
	}

	// solutions
	var names []string
	var sols []*ana.HillslopeSteady
	if fnamepath == "" {
		sol := new(ana.HillslopeSteady)
		err := sol.Init(nil)
		if err != nil {
			chk.Panic("cannot compute default solution:\n%v", err)
		}
		names = append(names, "default")
		sols = append(sols, sol)
	} else {
		db, err := inp.ReadParamDb(filepath.Split(fnamepath))
		if err != nil {
			chk.Panic("cannot read parameters:\n%v", err)
		}
		for _, s := range db.Sets {
			if setname != "" && s.Name != setname {
				continue
			}
			names = append(names, s.Name)
			sols = append(sols, s.Sol)
		}
		if len(sols) == 0 {
			chk.Panic("parameter set %q is not available in %q", setname, fnamepath)
		}
	}

	// output
	for i, sol := range sols {
		if verbose {
			io.PfYel("\n>>> %s <<<\n", names[i])
			io.Pf("%v\n", sol)
			io.Pforan("%v", out.Table(sol))
		}
		if save {
			out.SaveFixture(dirout, names[i], sol)
			if verbose {
				io.Pf("file <%s> written\n", filepath.Join(dirout, names[i]+".txt"))
			}
		}
	}
}
