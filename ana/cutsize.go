// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical studies of the classifier force balance
package ana

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/granulab/aircls/mdl/classify"
)

// TipSpeedLimit is the blade tip speed above which wear and vibration
// become unacceptable for welded rotors [m/s]
const TipSpeedLimit = 100.0

// CutSizeCurves computes families of cut-size curves over the rotor speed
// range, one curve per air flow rate
type CutSizeCurves struct {

	// input
	Mdl   classify.Model // classifier force-balance model
	Flows []float64      // air flow rates [m³/hr]
	Rhop  float64        // particle density [kg/m³]

	// results
	Rpm []float64   // rotor speeds [rev/min]
	D50 [][]float64 // cut sizes [μm]; one row per flow rate
}

// Calc computes np points per curve over the model's speed range
func (o *CutSizeCurves) Calc(np int) (err error) {
	o.Rpm = utl.LinSpace(o.Mdl.RpmMin, o.Mdl.RpmMax, np)
	o.D50 = make([][]float64, len(o.Flows))
	for i, flow := range o.Flows {
		o.D50[i] = make([]float64, np)
		for j, rpm := range o.Rpm {
			o.D50[i][j], err = o.Mdl.CutSize(rpm, flow, o.Rhop)
			if err != nil {
				return
			}
		}
	}
	return
}

// Plot plots cut size versus rotor speed, one curve per flow rate
func (o CutSizeCurves) Plot(dirout, fnkey string) error {
	for i, flow := range o.Flows {
		plt.Plot(o.Rpm, o.D50[i], &plt.A{M: ".", L: io.Sf("$Q=%g\\,m^3/hr$", flow)})
	}
	plt.Gll("$rotor\\;speed\\;[rpm]$", "$d_{50}\\;[\\mu m]$", nil)
	plt.Save(dirout, fnkey)
	return nil
}

// DesignCheck holds the results of checking an operating window against a
// target cut size
type DesignCheck struct {
	D50Design  float64 // cut size at the design point [μm]
	D50AtMin   float64 // cut size at minimum speed (coarsest) [μm]
	D50AtMax   float64 // cut size at maximum speed (finest) [μm]
	RpmTarget  float64 // speed needed for the target cut [rev/min]
	Achievable bool    // target speed lies within the speed range
	TipSpeed   float64 // blade tip speed at maximum speed [m/s]
	TipSafe    bool    // tip speed stays below TipSpeedLimit
	RsqH       float64 // rotor r²·h, the geometric capacity term [m³]
}

// CheckDesign evaluates whether a classifier can reach a target cut size
// within its speed range at the given flow rate
func CheckDesign(mdl classify.Model, rpmDesign, flow, targetD50, rhop float64) (res *DesignCheck, err error) {
	res = new(DesignCheck)
	res.D50Design, err = mdl.CutSize(rpmDesign, flow, rhop)
	if err != nil {
		return
	}
	res.D50AtMin, err = mdl.CutSize(mdl.RpmMin, flow, rhop)
	if err != nil {
		return
	}
	res.D50AtMax, err = mdl.CutSize(mdl.RpmMax, flow, rhop)
	if err != nil {
		return
	}
	res.RpmTarget, err = mdl.RequiredRpm(targetD50, flow, rhop)
	if err != nil {
		return
	}
	res.Achievable = res.RpmTarget >= mdl.RpmMin && res.RpmTarget <= mdl.RpmMax
	res.TipSpeed = mdl.TipSpeed(mdl.RpmMax)
	res.TipSafe = res.TipSpeed < TipSpeedLimit
	res.RsqH = mdl.R * mdl.R * mdl.H
	return
}

// Print prints the design check results
func (o DesignCheck) Print(targetD50 float64) {
	io.Pf("cut size window  = %.3f to %.3f μm\n", o.D50AtMax, o.D50AtMin)
	io.Pf("design point d50 = %.3f μm\n", o.D50Design)
	io.Pf("speed for %g μm  = %.1f rpm\n", targetD50, o.RpmTarget)
	if o.Achievable {
		io.Pf("target           = achievable within speed range\n")
	} else {
		io.Pforan("target           = outside speed range\n")
	}
	io.Pf("max tip speed    = %.1f m/s (limit %g)\n", o.TipSpeed, TipSpeedLimit)
	if !o.TipSafe {
		io.PfRed("tip speed limit exceeded\n")
	}
}
