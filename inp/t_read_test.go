// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/granulab/aircls/mdl/classify"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. design file")

	dsg, err := ReadDesign("../data", "classifier.cls")
	if err != nil {
		tst.Errorf("ReadDesign failed: %v\n", err)
		return
	}

	// the file must match the built-in reference design
	ref := DefaultDesign()
	chk.Float64(tst, "selector diameter", 1e-15, dsg.Selector.Diameter, ref.Selector.Diameter)
	chk.Float64(tst, "blade height", 1e-15, dsg.Selector.BladeHeight, ref.Selector.BladeHeight)
	chk.IntAssert(dsg.Selector.BladeCount, ref.Selector.BladeCount)
	chk.Float64(tst, "design rpm", 1e-15, dsg.Operating.RpmDesign, ref.Operating.RpmDesign)
	chk.Float64(tst, "design airflow", 1e-15, dsg.Operating.AirflowDesign, ref.Operating.AirflowDesign)
	chk.Float64(tst, "target d50", 1e-15, dsg.Operating.TargetD50, ref.Operating.TargetD50)
	chk.String(tst, dsg.Chamber.Material, "SS304")
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. materials file")

	mdb, err := ReadMat("../data", "materials.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}

	chk.IntAssert(len(mdb.Particles), 3)
	chk.IntAssert(len(mdb.Airs), 1)
	chk.IntAssert(len(mdb.Steels), 1)

	protein := mdb.Get("protein")
	if protein == nil || protein.Particle == nil {
		tst.Errorf("protein particle material must be available\n")
		return
	}
	chk.Float64(tst, "protein rho", 1e-15, protein.Particle.Rho, 1350)
	chk.Float64(tst, "protein dmean", 1e-20, protein.Particle.DMean, 10e-6)
	chk.Float64(tst, "protein effective rho", 1e-10, protein.Particle.EffectiveRho(), 1315)

	if mdb.Get("unobtainium") != nil {
		tst.Errorf("unknown material must return nil\n")
	}
}

func Test_design01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("design01. derived dimensions")

	dsg := DefaultDesign()
	err := dsg.Validate()
	if err != nil {
		tst.Errorf("reference design must be valid: %v\n", err)
		return
	}

	chk.Float64(tst, "selector radius", 1e-15, dsg.SelectorRadius(), 0.2)
	chk.Float64(tst, "cone height", 1e-5, dsg.ConeHeight(), 0.86603)
	chk.Float64(tst, "total height", 1e-5, dsg.TotalHeight(), 2.06603)
	chk.Float64(tst, "blade gap", 1e-6, dsg.BladeGap(), 0.048360)
	chk.Float64(tst, "solidity", 1e-6, dsg.Solidity(), 0.076394)
	chk.Float64(tst, "tip speed", 1e-3, dsg.TipSpeedDesign(), 62.832)
	chk.Float64(tst, "chamber volume", 1e-5, dsg.ChamberVolume(), 1.16920)
	chk.Float64(tst, "annular gap", 1e-15, dsg.AnnularGap(), 0.3)
	chk.Float64(tst, "r²h", 1e-15, dsg.RsqH(), 0.02)
	chk.Float64(tst, "cyclone height", 1e-15, dsg.CycloneTotalHeight(), 2.0)

	// design-point cut size and the speed the target would need
	d50, err := dsg.CutSizeDesign()
	if err != nil {
		tst.Errorf("CutSizeDesign failed: %v\n", err)
		return
	}
	io.Pf("d50 at design point = %.4f μm\n", d50)
	chk.Float64(tst, "d50 design", 0.001, d50, 3.9560)

	rpm, err := dsg.RpmForTarget()
	if err != nil {
		tst.Errorf("RpmForTarget failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rpm for target", 0.02, rpm, 593.14)
}

func Test_design02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("design02. validation catches bad input")

	dsg := DefaultDesign()
	dsg.Selector.Diameter = -0.4
	if dsg.Validate() == nil {
		tst.Errorf("negative selector diameter must fail\n")
		return
	}

	dsg = DefaultDesign()
	dsg.Selector.Diameter = 1.5 // larger than the chamber
	if dsg.Validate() == nil {
		tst.Errorf("selector larger than chamber must fail\n")
		return
	}

	dsg = DefaultDesign()
	dsg.Operating.RpmMax = dsg.Operating.RpmMin
	if dsg.Validate() == nil {
		tst.Errorf("empty rpm range must fail\n")
		return
	}

	dsg = DefaultDesign()
	dsg.Operating.TargetD50 = 0
	if dsg.Validate() == nil {
		tst.Errorf("zero target d50 must fail\n")
	}
}

func Test_design03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("design03. scaling and target sizing")

	// half-scale pilot unit: lengths halve, throughputs quarter
	dsg, err := ScaledDesign(DefaultDesign(), 0.5)
	if err != nil {
		tst.Errorf("ScaledDesign failed: %v\n", err)
		return
	}
	chk.Float64(tst, "scaled selector diameter", 1e-15, dsg.Selector.Diameter, 0.2)
	chk.Float64(tst, "scaled blade height", 1e-15, dsg.Selector.BladeHeight, 0.25)
	chk.Float64(tst, "scaled airflow", 1e-12, dsg.Operating.AirflowDesign, 750)
	chk.Float64(tst, "scaled feed rate", 1e-12, dsg.Operating.FeedRate, 50)

	_, err = ScaledDesign(DefaultDesign(), 0)
	if err == nil {
		tst.Errorf("zero scale factor must fail\n")
		return
	}

	// rotor sized for a 20 μm cut at 3000 rpm and 2000 m³/hr
	dsg, err = DesignForCutSize(20, 3000, 2000)
	if err != nil {
		tst.Errorf("DesignForCutSize failed: %v\n", err)
		return
	}
	io.Pf("sized rotor: r = %.4f m, h = %.4f m\n", dsg.SelectorRadius(), dsg.Selector.BladeHeight)
	chk.Float64(tst, "sized radius", 1e-4, dsg.SelectorRadius(), 0.0805)
	chk.Float64(tst, "aspect h=r", 1e-15, dsg.Selector.BladeHeight, dsg.SelectorRadius())

	// within the clamps the target is met exactly
	mdl, err := dsg.Model()
	if err != nil {
		tst.Errorf("Model failed: %v\n", err)
		return
	}
	d50, err := mdl.CutSize(3000, 2000, classify.RhoParticleDefault)
	if err != nil {
		tst.Errorf("CutSize failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sized d50", 1e-8, d50, 20.0)

	// fine-cut reference rotor
	fine := FineCutDesign()
	d50, err = fine.CutSizeDesign()
	if err != nil {
		tst.Errorf("CutSizeDesign failed: %v\n", err)
		return
	}
	io.Pf("fine-cut design d50 = %.4f μm\n", d50)
	chk.Float64(tst, "fine-cut d50", 0.001, d50, 14.445)
}
