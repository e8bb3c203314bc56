// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/granulab/aircls/mdl/classify"
)

// DefaultDesign returns the reference design of the cyclone air classifier
// (Humboldt Wedag type) for yellow pea protein/starch separation
func DefaultDesign() *Design {
	return &Design{
		Data: Data{
			Desc:    "cyclone air classifier, yellow pea protein/starch separation",
			Matfile: "materials.mat",
			DirOut:  "/tmp/aircls",
		},
		Chamber: ChamberData{
			Diameter:      1.0,
			Height:        1.2,
			WallThickness: 0.004,
			ConeAngle:     60.0,
			ConeWall:      0.004,
			Material:      "SS304",
			LinerMaterial: "Hardox 400",
			ConeLiner:     "Alumina ceramic",
		},
		Selector: SelectorData{
			Diameter:       0.400,
			BladeCount:     24,
			BladeHeight:    0.500,
			BladeThickness: 0.004,
			ZoneBottom:     0.45,
			ZoneTop:        0.95,
			LeanAngle:      5.0,
			Material:       "SS304",
		},
		Hub: HubData{
			OuterDiameter: 0.300,
			InnerDiameter: 0.120,
			Height:        0.500,
			PortCount:     8,
			PortDiameter:  0.040,
			PortAngle:     30.0,
		},
		Distributor: DistributorData{
			Diameter:    0.450,
			PositionZ:   0.35,
			Thickness:   0.008,
			LipHeight:   0.015,
			GrooveCount: 24,
			GrooveDepth: 0.002,
			GrooveWidth: 0.005,
			Coating:     "WC-Co",
		},
		Shaft: ShaftData{
			Diameter: 0.080,
			BottomZ:  -0.90,
			TopZ:     1.50,
			Material: "SS316",
		},
		AirInlets: AirInletData{
			Count:          4,
			Diameter:       0.150,
			PositionZ:      0.15,
			VaneCount:      6,
			VaneAngle:      45.0,
			VelocityDesign: 17.5,
		},
		Outlets: OutletData{
			FinesDiameter:  0.200,
			FinesPositionZ: 1.20,
			CoarseDiameter: 0.150,
		},
		Cyclone: CycloneData{
			BodyDiameter:   0.500,
			InletHeight:    0.250,
			InletWidth:     0.100,
			VortexDiameter: 0.250,
			VortexLength:   0.250,
			CylinderHeight: 0.750,
			ConeHeight:     1.250,
			DustOutlet:     0.200,
			OffsetX:        1.0,
		},
		Damper: DamperData{
			Diameter:   0.200,
			PositionZ:  1.10,
			OpeningMin: 0.5,
			OpeningMax: 1.0,
		},
		Operating: OperatingData{
			RpmMin:        1500,
			RpmMax:        4000,
			RpmDesign:     3000,
			AirflowDesign: 3000,
			FeedRate:      200,
			TargetD50:     20.0,
		},
	}
}

// FineCutDesign returns the revised design with the rotor sized for fine
// cuts around 20 μm (smaller rotor with shorter blades)
func FineCutDesign() *Design {
	dsg := DefaultDesign()
	dsg.Data.Desc = "cyclone air classifier, fine-cut rotor"
	dsg.Selector.Diameter = 0.200
	dsg.Selector.BladeCount = 18
	dsg.Selector.BladeHeight = 0.100
	dsg.Selector.BladeThickness = 0.003
	dsg.Selector.ZoneBottom = 0.70
	dsg.Selector.ZoneTop = 0.80
	dsg.Hub.OuterDiameter = 0.120
	dsg.Hub.InnerDiameter = 0.060
	dsg.Hub.Height = 0.100
	dsg.Hub.PortCount = 6
	dsg.Hub.PortDiameter = 0.025
	dsg.Distributor.Diameter = 0.350
	dsg.Distributor.PositionZ = 0.50
	dsg.Distributor.GrooveCount = 16
	dsg.Shaft.Diameter = 0.050
	dsg.AirInlets.Diameter = 0.125
	dsg.AirInlets.VelocityDesign = 15.0
	dsg.Outlets.FinesDiameter = 0.150
	dsg.Cyclone.BodyDiameter = 0.400
	dsg.Cyclone.InletHeight = 0.200
	dsg.Cyclone.InletWidth = 0.080
	dsg.Cyclone.VortexDiameter = 0.200
	dsg.Cyclone.VortexLength = 0.200
	dsg.Cyclone.CylinderHeight = 0.600
	dsg.Cyclone.ConeHeight = 1.000
	dsg.Cyclone.DustOutlet = 0.160
	dsg.Cyclone.OffsetX = 0.9
	dsg.Damper.Diameter = 0.150
	dsg.Operating.RpmMin = 2000
	dsg.Operating.RpmMax = 5000
	dsg.Operating.RpmDesign = 3000
	dsg.Operating.AirflowDesign = 2000
	return dsg
}

// ScaledDesign returns a geometrically scaled copy of a design. Lengths
// scale with the factor; feed rate and air flow scale with the cross-section
// area (factor²), which preserves the cut size.
func ScaledDesign(dsg *Design, factor float64) (*Design, error) {
	if factor <= 0 {
		return nil, chk.Err("scale factor must be positive: %g", factor)
	}
	s := *dsg
	s.Chamber.Diameter *= factor
	s.Chamber.Height *= factor
	s.Selector.Diameter *= factor
	s.Selector.BladeHeight *= factor
	s.Selector.ZoneBottom *= factor
	s.Selector.ZoneTop *= factor
	s.Hub.OuterDiameter *= factor
	s.Hub.InnerDiameter *= factor
	s.Hub.Height *= factor
	s.Distributor.Diameter *= factor
	s.Distributor.PositionZ *= factor
	s.Shaft.Diameter *= factor
	s.AirInlets.PositionZ *= factor
	s.Cyclone.BodyDiameter *= factor
	s.Operating.AirflowDesign *= factor * factor
	s.Operating.FeedRate *= factor * factor
	return &s, nil
}

// rotor sizing constraints for DesignForCutSize [m]
const (
	rotorRadiusMin = 0.05
	rotorRadiusMax = 0.30
	bladeHeightMin = 0.05
	bladeHeightMax = 0.20
)

// DesignForCutSize sizes the rotor of a new design so that the target cut
// size is reached at the given operating point (default particle density).
// The rotor aspect ratio is fixed at h = r before clamping to the
// manufacturable ranges; within the clamps the returned design hits the
// target exactly.
func DesignForCutSize(targetD50, rpm, airflow float64) (*Design, error) {
	if targetD50 <= 0 || rpm <= 0 || airflow <= 0 {
		return nil, chk.Err("target, speed and air flow must be positive: d50=%g, rpm=%g, airflow=%g", targetD50, rpm, airflow)
	}

	Q := airflow / 3600.0
	omega := rpm * 2.0 * math.Pi / 60.0
	d50 := targetD50 * 1e-6
	rhonet := classify.RhoParticleDefault - classify.RhoAir

	// required r²·h from the force balance, with h = r
	rsqh := (9.0 * classify.Mu * Q) / (math.Pi * rhonet * omega * omega * d50 * d50)
	r := math.Cbrt(rsqh)
	h := r

	r = math.Max(rotorRadiusMin, math.Min(rotorRadiusMax, r))
	h = math.Max(bladeHeightMin, math.Min(bladeHeightMax, h))

	dsg := FineCutDesign()
	dsg.Data.Desc = "cyclone air classifier, rotor sized for target cut size"
	dsg.Selector.Diameter = 2.0 * r
	dsg.Selector.BladeHeight = h
	dsg.Hub.OuterDiameter = 1.2 * r
	dsg.Hub.InnerDiameter = 0.6 * r
	dsg.Hub.Height = h
	dsg.Operating.TargetD50 = targetD50
	dsg.Operating.RpmDesign = rpm
	dsg.Operating.AirflowDesign = airflow
	if rpm < dsg.Operating.RpmMin {
		dsg.Operating.RpmMin = rpm
	}
	if rpm > dsg.Operating.RpmMax {
		dsg.Operating.RpmMax = rpm
	}
	return dsg, nil
}
