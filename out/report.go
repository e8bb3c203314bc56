// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting and export of classifier designs
package out

import (
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/granulab/aircls/ana"
	"github.com/granulab/aircls/inp"
	"github.com/granulab/aircls/mdl/classify"
)

// Report prints the full specification of a classifier design
func Report(dsg *inp.Design) (err error) {

	io.PfWhite("\n%s\n", dsg.Data.Desc)
	io.Pf("%s\n\n", strings.Repeat("=", 60))

	io.Pf("CHAMBER\n")
	io.Pf("  diameter          = %8.3f m\n", dsg.Chamber.Diameter)
	io.Pf("  cylinder height   = %8.3f m\n", dsg.Chamber.Height)
	io.Pf("  cone height       = %8.3f m\n", dsg.ConeHeight())
	io.Pf("  total height      = %8.3f m\n", dsg.TotalHeight())
	io.Pf("  wall thickness    = %8.3f m\n", dsg.Chamber.WallThickness)
	io.Pf("  cone angle        = %8.1f deg\n", dsg.Chamber.ConeAngle)
	io.Pf("  volume            = %8.3f m³\n", dsg.ChamberVolume())
	io.Pf("  material          = %s, liner %s\n", dsg.Chamber.Material, dsg.Chamber.LinerMaterial)

	io.Pf("SELECTOR WHEEL\n")
	io.Pf("  diameter          = %8.3f m\n", dsg.Selector.Diameter)
	io.Pf("  blade height      = %8.3f m\n", dsg.Selector.BladeHeight)
	io.Pf("  blade count       = %8d\n", dsg.Selector.BladeCount)
	io.Pf("  blade thickness   = %8.3f m\n", dsg.Selector.BladeThickness)
	io.Pf("  blade gap         = %8.4f m\n", dsg.BladeGap())
	io.Pf("  solidity          = %8.4f\n", dsg.Solidity())
	io.Pf("  lean angle        = %8.1f deg\n", dsg.Selector.LeanAngle)
	io.Pf("  annular gap       = %8.3f m\n", dsg.AnnularGap())

	io.Pf("HUB AND DISTRIBUTOR\n")
	io.Pf("  hub outer/inner   = %8.3f / %.3f m\n", dsg.Hub.OuterDiameter, dsg.Hub.InnerDiameter)
	io.Pf("  hub ports         = %8d x Ø%.3f m at %.0f deg\n", dsg.Hub.PortCount, dsg.Hub.PortDiameter, dsg.Hub.PortAngle)
	io.Pf("  plate diameter    = %8.3f m at z = %.2f m\n", dsg.Distributor.Diameter, dsg.Distributor.PositionZ)
	io.Pf("  plate grooves     = %8d, coating %s\n", dsg.Distributor.GrooveCount, dsg.Distributor.Coating)

	io.Pf("AIR CIRCUIT\n")
	io.Pf("  inlets            = %8d x Ø%.3f m, %d vanes at %.0f deg\n",
		dsg.AirInlets.Count, dsg.AirInlets.Diameter, dsg.AirInlets.VaneCount, dsg.AirInlets.VaneAngle)
	io.Pf("  fines outlet      = %8.3f m at z = %.2f m\n", dsg.Outlets.FinesDiameter, dsg.Outlets.FinesPositionZ)
	io.Pf("  coarse outlet     = %8.3f m\n", dsg.Outlets.CoarseDiameter)
	io.Pf("  cyclone body      = %8.3f m, total height %.3f m\n", dsg.Cyclone.BodyDiameter, dsg.CycloneTotalHeight())
	io.Pf("  damper            = %8.3f m, opening %.0f%% to %.0f%%\n",
		dsg.Damper.Diameter, 100*dsg.Damper.OpeningMin, 100*dsg.Damper.OpeningMax)

	io.Pf("OPERATING WINDOW\n")
	io.Pf("  rotor speed       = %8.0f to %.0f rpm (design %.0f)\n",
		dsg.Operating.RpmMin, dsg.Operating.RpmMax, dsg.Operating.RpmDesign)
	io.Pf("  air flow          = %8.0f m³/hr\n", dsg.Operating.AirflowDesign)
	io.Pf("  feed rate         = %8.0f kg/hr\n", dsg.Operating.FeedRate)
	io.Pf("  tip speed         = %8.2f m/s\n", dsg.TipSpeedDesign())
	io.Pf("  target cut size   = %8.1f μm\n", dsg.Operating.TargetD50)

	// cut-size performance against the target
	mdl, err := dsg.Model()
	if err != nil {
		return
	}
	res, err := ana.CheckDesign(mdl, dsg.Operating.RpmDesign, dsg.Operating.AirflowDesign,
		dsg.Operating.TargetD50, classify.RhoParticleDefault)
	if err != nil {
		return
	}
	io.Pf("PERFORMANCE\n")
	res.Print(dsg.Operating.TargetD50)
	return
}

// CutSizeTable prints a table of cut sizes over speed and flow combinations
func CutSizeTable(dsg *inp.Design, rpms, flows []float64) (err error) {
	mdl, err := dsg.Model()
	if err != nil {
		return
	}
	hline := strings.Repeat("-", 14+11*len(flows))
	io.Pf("\ncut size d50 [μm] (density %g kg/m³)\n", classify.RhoParticleDefault)
	io.Pf("%s\n", hline)
	io.Pf("%12s |", "rpm \\ m³/hr")
	for _, flow := range flows {
		io.Pf(" %10.0f", flow)
	}
	io.Pf("\n%s\n", hline)
	for _, rpm := range rpms {
		io.Pf("%12.0f |", rpm)
		for _, flow := range flows {
			d50, e := mdl.CutSize(rpm, flow, classify.RhoParticleDefault)
			if e != nil {
				return e
			}
			io.Pf(" %10.3f", d50)
		}
		io.Pf("\n")
	}
	io.Pf("%s\n", hline)
	return
}
