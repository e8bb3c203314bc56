// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/granulab/aircls/ana"
	"github.com/granulab/aircls/inp"
	"github.com/granulab/aircls/mdl/classify"
	"github.com/granulab/aircls/out"
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
	fnamepath, fnkey := io.ArgToFilename(0, "data/classifier", ".cls", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	export := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nAircls -- Centrifugal Air Classifier Design\n")
		io.Pf("Copyright 2026 The Aircls Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot cut-size curves", "doplot", doplot,
			"export xlsx and pdf", "export", export,
		))
	}

	// read design
	dsg, err := inp.ReadDesign("", fnamepath)
	if err != nil {
		chk.Panic("cannot read design file:\n%v", err)
	}

	// report
	err = out.Report(dsg)
	if err != nil {
		chk.Panic("report failed:\n%v", err)
	}

	// cut-size table around the design point
	rpms := []float64{dsg.Operating.RpmMin, dsg.Operating.RpmDesign, dsg.Operating.RpmMax}
	flows := []float64{0.8 * dsg.Operating.AirflowDesign, dsg.Operating.AirflowDesign, 1.2 * dsg.Operating.AirflowDesign}
	err = out.CutSizeTable(dsg, rpms, flows)
	if err != nil {
		chk.Panic("cut-size table failed:\n%v", err)
	}

	// cut-size curves
	if doplot {
		mdl, err := dsg.Model()
		if err != nil {
			chk.Panic("cannot build model:\n%v", err)
		}
		curves := ana.CutSizeCurves{Mdl: mdl, Flows: flows, Rhop: classify.RhoParticleDefault}
		err = curves.Calc(101)
		if err != nil {
			chk.Panic("cut-size curves failed:\n%v", err)
		}
		plt.Reset(true, nil)
		err = curves.Plot(dsg.Data.DirOut, fnkey)
		if err != nil {
			chk.Panic("plot failed:\n%v", err)
		}
		if verbose {
			io.Pf("\ncut-size curves written to <%s> with key %q\n", dsg.Data.DirOut, fnkey)
		}
	}

	// spreadsheet and pdf summary
	if export {
		err = out.ExportXLSX(dsg, rpms, flows, dsg.Data.DirOut, fnkey)
		if err != nil {
			chk.Panic("xlsx export failed:\n%v", err)
		}
		err = out.ExportPDF(dsg, dsg.Data.DirOut, fnkey)
		if err != nil {
			chk.Panic("pdf export failed:\n%v", err)
		}
		if verbose {
			io.Pf("\nfiles <%s/%s.xlsx> and <%s/%s.pdf> written\n", dsg.Data.DirOut, fnkey, dsg.Data.DirOut, fnkey)
		}
	}
}
