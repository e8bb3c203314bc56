// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/granulab/aircls/inp"
	"github.com/granulab/aircls/mdl/classify"
)

// ExportXLSX writes the design dimensions and a cut-size table to an .xlsx
// workbook under dirout
func ExportXLSX(dsg *inp.Design, rpms, flows []float64, dirout, fnkey string) (err error) {

	mdl, err := dsg.Model()
	if err != nil {
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	// design sheet
	rows := [][]interface{}{
		{"parameter", "value", "unit"},
		{"description", dsg.Data.Desc, ""},
		{"chamber diameter", dsg.Chamber.Diameter, "m"},
		{"chamber height", dsg.Chamber.Height, "m"},
		{"cone height", dsg.ConeHeight(), "m"},
		{"total height", dsg.TotalHeight(), "m"},
		{"chamber volume", dsg.ChamberVolume(), "m3"},
		{"selector diameter", dsg.Selector.Diameter, "m"},
		{"blade height", dsg.Selector.BladeHeight, "m"},
		{"blade count", dsg.Selector.BladeCount, ""},
		{"blade gap", dsg.BladeGap(), "m"},
		{"solidity", dsg.Solidity(), ""},
		{"annular gap", dsg.AnnularGap(), "m"},
		{"rpm min", dsg.Operating.RpmMin, "rev/min"},
		{"rpm max", dsg.Operating.RpmMax, "rev/min"},
		{"rpm design", dsg.Operating.RpmDesign, "rev/min"},
		{"airflow design", dsg.Operating.AirflowDesign, "m3/hr"},
		{"feed rate", dsg.Operating.FeedRate, "kg/hr"},
		{"tip speed design", dsg.TipSpeedDesign(), "m/s"},
		{"target d50", dsg.Operating.TargetD50, "um"},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, e := excelize.CoordinatesToCellName(j+1, i+1)
			if e != nil {
				return e
			}
			e = f.SetCellValue(sheet, cell, val)
			if e != nil {
				return e
			}
		}
	}

	// cut-size sheet
	_, err = f.NewSheet("cutsize")
	if err != nil {
		return
	}
	err = f.SetCellValue("cutsize", "A1", "rpm \\ m3/hr")
	if err != nil {
		return
	}
	for j, flow := range flows {
		cell, e := excelize.CoordinatesToCellName(j+2, 1)
		if e != nil {
			return e
		}
		e = f.SetCellValue("cutsize", cell, flow)
		if e != nil {
			return e
		}
	}
	for i, rpm := range rpms {
		cell, e := excelize.CoordinatesToCellName(1, i+2)
		if e != nil {
			return e
		}
		e = f.SetCellValue("cutsize", cell, rpm)
		if e != nil {
			return e
		}
		for j, flow := range flows {
			d50, e := mdl.CutSize(rpm, flow, classify.RhoParticleDefault)
			if e != nil {
				return e
			}
			cell, e = excelize.CoordinatesToCellName(j+2, i+2)
			if e != nil {
				return e
			}
			e = f.SetCellValue("cutsize", cell, d50)
			if e != nil {
				return e
			}
		}
	}

	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	return f.SaveAs(filepath.Join(dirout, fnkey+".xlsx"))
}

// ExportPDF writes a one-page design summary to a .pdf file under dirout
func ExportPDF(dsg *inp.Design, dirout, fnkey string) (err error) {

	mdl, err := dsg.Model()
	if err != nil {
		return
	}
	d50, err := mdl.CutSize(dsg.Operating.RpmDesign, dsg.Operating.AirflowDesign, classify.RhoParticleDefault)
	if err != nil {
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Air Classifier Design Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, dsg.Data.Desc, "", "L", false)
	pdf.Ln(4)

	line := func(label string, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}
	line("chamber diameter x height", io.Sf("%.3f x %.3f m", dsg.Chamber.Diameter, dsg.Chamber.Height))
	line("total height", io.Sf("%.3f m", dsg.TotalHeight()))
	line("selector wheel", io.Sf("diam %.3f m, %d blades, height %.3f m",
		dsg.Selector.Diameter, dsg.Selector.BladeCount, dsg.Selector.BladeHeight))
	line("operating speed range", io.Sf("%.0f to %.0f rpm", dsg.Operating.RpmMin, dsg.Operating.RpmMax))
	line("design point", io.Sf("%.0f rpm, %.0f m3/hr", dsg.Operating.RpmDesign, dsg.Operating.AirflowDesign))
	line("tip speed at design point", io.Sf("%.2f m/s", dsg.TipSpeedDesign()))
	line("cut size at design point", io.Sf("%.3f um", d50))
	line("target cut size", io.Sf("%.1f um", dsg.Operating.TargetD50))

	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	return pdf.OutputFileAndClose(filepath.Join(dirout, fnkey+".pdf"))
}
