// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_particle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle01. properties and moisture corrections")

	protein := Protein()
	starch := Starch()
	feed := Feed()

	chk.Float64(tst, "protein effective rho", 1e-10, protein.EffectiveRho(), 1315.0)
	chk.Float64(tst, "starch effective rho", 1e-10, starch.EffectiveRho(), 1468.0)
	chk.Float64(tst, "feed effective rho", 1e-10, feed.EffectiveRho(), 1405.0)

	// 20 μm sphere
	d := 20e-6
	vol := feed.Volume(d)
	chk.Float64(tst, "volume", 1e-22, vol, 4.1887902047863905e-15)
	chk.Float64(tst, "mass", 1e-22, feed.Mass(d), vol*feed.EffectiveRho())

	// init from parameters round trip
	var p Properties
	err := p.Init(protein.GetPrms(false))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho", 1e-15, p.Rho, protein.Rho)
	chk.Float64(tst, "dmean", 1e-15, p.DMean, protein.DMean)
	chk.Float64(tst, "shape", 1e-15, p.Shape, protein.Shape)

	// invalid parameter sets
	err = p.Init(nil)
	if err == nil {
		tst.Errorf("empty parameter set must fail\n")
	}
}

func Test_particle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle02. diameter sampling within bounds")

	rnd.Init(1234)

	protein := Protein()
	n := 200
	diams := protein.SampleDiameters(n)
	sum := 0.0
	for _, d := range diams {
		if d < protein.DMin || d > protein.DMax {
			tst.Errorf("sampled diameter out of bounds: %g\n", d)
			return
		}
		sum += d
	}
	mean := sum / float64(n)
	io.Pf("protein sample mean = %.3f μm\n", mean*1e6)
	chk.Float64(tst, "sample mean", 1.5e-6, mean, protein.DMean)
}

func Test_particle03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle03. feed composition and mixtures")

	comp := YellowPeaFlour()
	err := comp.Validate()
	if err != nil {
		tst.Errorf("composition must be valid: %v\n", err)
		return
	}

	bad := Composition{Protein: 0.5, Starch: 0.1}
	if bad.Validate() == nil {
		tst.Errorf("fractions not summing to one must fail\n")
		return
	}

	rnd.Init(1234)
	n := 1000
	diams, rhos, kinds, err := Mixture(n, comp, Protein(), Starch())
	if err != nil {
		tst.Errorf("Mixture failed: %v\n", err)
		return
	}
	chk.IntAssert(len(diams), n)
	chk.IntAssert(len(rhos), n)

	nprotein := 0
	for i, k := range kinds {
		switch k {
		case KindProtein:
			nprotein++
			chk.Float64(tst, "protein rho", 1e-10, rhos[i], 1315.0)
		case KindStarch:
			chk.Float64(tst, "starch rho", 1e-10, rhos[i], 1468.0)
		default:
			tst.Errorf("unknown particle kind %d\n", k)
			return
		}
	}
	chk.IntAssert(nprotein, 230)
}
