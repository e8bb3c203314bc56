// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/granulab/aircls/mdl/classify"
)

func Test_cutsize01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cutsize01. curve families")

	o := CutSizeCurves{
		Mdl:   classify.Model{R: 0.2, H: 0.5, RpmMin: 1500, RpmMax: 4000},
		Flows: []float64{2500, 3000, 3500},
		Rhop:  classify.RhoParticleDefault,
	}
	err := o.Calc(11)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}

	chk.IntAssert(len(o.Rpm), 11)
	chk.IntAssert(len(o.D50), 3)

	// faster rotor cuts finer along each curve
	for i := range o.Flows {
		for j := 1; j < len(o.Rpm); j++ {
			if o.D50[i][j] >= o.D50[i][j-1] {
				tst.Errorf("d50 must decrease with speed: flow=%g, d50[%d]=%g ≥ d50[%d]=%g\n",
					o.Flows[i], j, o.D50[i][j], j-1, o.D50[i][j-1])
				return
			}
		}
	}

	// more air carries coarser particles out at any speed
	for j := range o.Rpm {
		if o.D50[1][j] <= o.D50[0][j] || o.D50[2][j] <= o.D50[1][j] {
			tst.Errorf("d50 must increase with flow at rpm=%g\n", o.Rpm[j])
			return
		}
	}

	// endpoints at the reference flow
	chk.Float64(tst, "d50 @ 1500 rpm", 0.001, o.D50[1][0], 7.9120)
	chk.Float64(tst, "d50 @ 4000 rpm", 0.001, o.D50[1][10], 2.9670)

	if chk.Verbose {
		err = o.Plot("/tmp/aircls", "cutsize01")
		if err != nil {
			tst.Errorf("Plot failed: %v\n", err)
		}
	}
}

func Test_check01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check01. coarse rotor cannot reach fine target")

	mdl := classify.Model{R: 0.2, H: 0.5, RpmMin: 1500, RpmMax: 4000}
	res, err := CheckDesign(mdl, 3000, 3000, 20.0, classify.RhoParticleDefault)
	if err != nil {
		tst.Errorf("CheckDesign failed: %v\n", err)
		return
	}
	if chk.Verbose {
		res.Print(20.0)
	}

	chk.Float64(tst, "d50 design", 0.001, res.D50Design, 3.9560)
	chk.Float64(tst, "d50 at min speed", 0.001, res.D50AtMin, 7.9120)
	chk.Float64(tst, "d50 at max speed", 0.001, res.D50AtMax, 2.9670)
	chk.Float64(tst, "rpm for target", 0.02, res.RpmTarget, 593.14)
	chk.Float64(tst, "tip speed", 0.001, res.TipSpeed, 83.776)
	chk.Float64(tst, "r²h", 1e-15, res.RsqH, 0.02)

	// 20 μm needs less spin than the drive can run; the whole window is too fine
	if res.Achievable {
		tst.Errorf("target below the speed range must not be achievable\n")
		return
	}
	if !res.TipSafe {
		tst.Errorf("tip speed must be within the limit\n")
	}
}

func Test_check02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("check02. fine-cut rotor reaches the target")

	mdl := classify.Model{R: 0.1, H: 0.1, RpmMin: 2000, RpmMax: 5000}
	res, err := CheckDesign(mdl, 3000, 2000, 20.0, classify.RhoParticleDefault)
	if err != nil {
		tst.Errorf("CheckDesign failed: %v\n", err)
		return
	}
	if chk.Verbose {
		res.Print(20.0)
	}
	io.Pf("rpm for 20 μm = %.1f\n", res.RpmTarget)

	chk.Float64(tst, "d50 design", 0.001, res.D50Design, 14.445)
	chk.Float64(tst, "rpm for target", 0.1, res.RpmTarget, 2165.9)
	chk.Float64(tst, "tip speed", 0.001, res.TipSpeed, 52.360)

	if !res.Achievable {
		tst.Errorf("target within the speed range must be achievable\n")
		return
	}
	if !res.TipSafe {
		tst.Errorf("tip speed must be within the limit\n")
	}
}
