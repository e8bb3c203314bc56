// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.cls) and (.mat) JSON files
package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/granulab/aircls/mdl/classify"
)

// Data holds global data for a design file
type Data struct {
	Desc    string `json:"desc"`    // description of design
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/aircls
}

// ChamberData holds the classification chamber and conical section
type ChamberData struct {
	Diameter      float64 `json:"diameter"`      // [m]
	Height        float64 `json:"height"`        // cylindrical section [m]
	WallThickness float64 `json:"wallthickness"` // [m]
	ConeAngle     float64 `json:"coneangle"`     // included angle [deg]
	ConeWall      float64 `json:"conewall"`      // cone wall thickness [m]
	Material      string  `json:"material"`      // e.g. SS304
	LinerMaterial string  `json:"linermaterial"` // wear liner
	ConeLiner     string  `json:"coneliner"`     // cone liner
}

// SelectorData holds the selector rotor
type SelectorData struct {
	Diameter       float64 `json:"diameter"`       // [m]
	BladeCount     int     `json:"bladecount"`     // number of blades
	BladeHeight    float64 `json:"bladeheight"`    // axial height of selection zone [m]
	BladeThickness float64 `json:"bladethickness"` // [m]
	ZoneBottom     float64 `json:"zonebottom"`     // [m]
	ZoneTop        float64 `json:"zonetop"`        // [m]
	LeanAngle      float64 `json:"leanangle"`      // forward lean [deg]
	Material       string  `json:"material"`
}

// HubData holds the hub assembly
type HubData struct {
	OuterDiameter float64 `json:"outerdiameter"` // [m]
	InnerDiameter float64 `json:"innerdiameter"` // [m]
	Height        float64 `json:"height"`        // [m]
	PortCount     int     `json:"portcount"`     // feed ports
	PortDiameter  float64 `json:"portdiameter"`  // [m]
	PortAngle     float64 `json:"portangle"`     // downward [deg]
}

// DistributorData holds the distributor plate
type DistributorData struct {
	Diameter    float64 `json:"diameter"`    // [m]
	PositionZ   float64 `json:"positionz"`   // [m]
	Thickness   float64 `json:"thickness"`   // [m]
	LipHeight   float64 `json:"lipheight"`   // [m]
	GrooveCount int     `json:"groovecount"` // radial grooves
	GrooveDepth float64 `json:"groovedepth"` // [m]
	GrooveWidth float64 `json:"groovewidth"` // [m]
	Coating     string  `json:"coating"`     // e.g. WC-Co
}

// ShaftData holds the vertical shaft
type ShaftData struct {
	Diameter float64 `json:"diameter"` // [m]
	BottomZ  float64 `json:"bottomz"`  // [m]
	TopZ     float64 `json:"topz"`     // [m]
	Material string  `json:"material"`
}

// AirInletData holds the tangential air inlets
type AirInletData struct {
	Count          int     `json:"count"`
	Diameter       float64 `json:"diameter"`       // [m] each
	PositionZ      float64 `json:"positionz"`      // [m]
	VaneCount      int     `json:"vanecount"`      // guide vanes per inlet
	VaneAngle      float64 `json:"vaneangle"`      // from radial [deg]
	VelocityDesign float64 `json:"velocitydesign"` // [m/s]
}

// OutletData holds the fines and coarse outlets
type OutletData struct {
	FinesDiameter  float64 `json:"finesdiameter"`  // [m]
	FinesPositionZ float64 `json:"finespositionz"` // [m]
	CoarseDiameter float64 `json:"coarsediameter"` // [m]
}

// CycloneData holds the external Stairmand high-efficiency cyclone
type CycloneData struct {
	BodyDiameter   float64 `json:"bodydiameter"`   // [m]
	InletHeight    float64 `json:"inletheight"`    // a = 0.5D [m]
	InletWidth     float64 `json:"inletwidth"`     // b = 0.2D [m]
	VortexDiameter float64 `json:"vortexdiameter"` // Dx = 0.5D [m]
	VortexLength   float64 `json:"vortexlength"`   // S = 0.5D [m]
	CylinderHeight float64 `json:"cylinderheight"` // h = 1.5D [m]
	ConeHeight     float64 `json:"coneheight"`     // Hc = 2.5D [m]
	DustOutlet     float64 `json:"dustoutlet"`     // B = 0.4D [m]
	OffsetX        float64 `json:"offsetx"`        // from chamber axis [m]
}

// DamperData holds the iris damper on the fines line
type DamperData struct {
	Diameter   float64 `json:"diameter"`   // nominal [m]
	PositionZ  float64 `json:"positionz"`  // [m]
	OpeningMin float64 `json:"openingmin"` // fraction open
	OpeningMax float64 `json:"openingmax"` // fraction open
}

// OperatingData holds the operating parameters and targets
type OperatingData struct {
	RpmMin        float64 `json:"rpmmin"`        // [rpm]
	RpmMax        float64 `json:"rpmmax"`        // [rpm]
	RpmDesign     float64 `json:"rpmdesign"`     // [rpm]
	AirflowDesign float64 `json:"airflowdesign"` // [m³/hr]
	FeedRate      float64 `json:"feedrate"`      // [kg/hr]
	TargetD50     float64 `json:"targetd50"`     // [μm]
}

// Design holds the complete geometric and operating configuration of the
// classifier. Geometric ratios and derived dimensions are computed on
// access and never cached.
type Design struct {
	Data        Data            `json:"data"`
	Chamber     ChamberData     `json:"chamber"`
	Selector    SelectorData    `json:"selector"`
	Hub         HubData         `json:"hub"`
	Distributor DistributorData `json:"distributor"`
	Shaft       ShaftData       `json:"shaft"`
	AirInlets   AirInletData    `json:"airinlets"`
	Outlets     OutletData      `json:"outlets"`
	Cyclone     CycloneData     `json:"cyclone"`
	Damper      DamperData      `json:"damper"`
	Operating   OperatingData   `json:"operating"`
}

// ReadDesign reads and validates a design from a .cls JSON file
func ReadDesign(dir, fn string) (dsg *Design, err error) {
	dsg = new(Design)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, dsg)
	if err != nil {
		return nil, chk.Err("cannot parse design file %q:\n%v", fn, err)
	}
	err = dsg.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks dimensions and operating values for strict positivity and
// consistent ordering
func (o *Design) Validate() (err error) {
	if o.Chamber.Diameter <= 0 || o.Chamber.Height <= 0 {
		return chk.Err("chamber dimensions must be positive: D=%g, H=%g", o.Chamber.Diameter, o.Chamber.Height)
	}
	if o.Chamber.ConeAngle <= 0 || o.Chamber.ConeAngle >= 180 {
		return chk.Err("cone angle must be within (0,180): %g", o.Chamber.ConeAngle)
	}
	if o.Selector.Diameter <= 0 || o.Selector.BladeHeight <= 0 {
		return chk.Err("selector dimensions must be positive: D=%g, h=%g", o.Selector.Diameter, o.Selector.BladeHeight)
	}
	if o.Selector.Diameter >= o.Chamber.Diameter {
		return chk.Err("selector (D=%g) must fit inside the chamber (D=%g)", o.Selector.Diameter, o.Chamber.Diameter)
	}
	if o.Selector.BladeCount < 2 {
		return chk.Err("selector needs at least two blades: %d", o.Selector.BladeCount)
	}
	if o.Operating.RpmMin <= 0 || o.Operating.RpmMax <= o.Operating.RpmMin {
		return chk.Err("rpm range is invalid: [%g, %g]", o.Operating.RpmMin, o.Operating.RpmMax)
	}
	if o.Operating.RpmDesign < o.Operating.RpmMin || o.Operating.RpmDesign > o.Operating.RpmMax {
		return chk.Err("design speed (%g) must lie within [%g, %g]", o.Operating.RpmDesign, o.Operating.RpmMin, o.Operating.RpmMax)
	}
	if o.Operating.AirflowDesign <= 0 {
		return chk.Err("design air flow must be positive: %g", o.Operating.AirflowDesign)
	}
	if o.Operating.TargetD50 <= 0 {
		return chk.Err("target cut size must be positive: %g", o.Operating.TargetD50)
	}
	return
}

// derived dimensions ///////////////////////////////////////////////////////////////////////////

// SelectorRadius returns the selector rotor radius [m]
func (o *Design) SelectorRadius() float64 {
	return o.Selector.Diameter / 2.0
}

// ConeHeight computes the cone height from the chamber radius and the
// included angle [m]
func (o *Design) ConeHeight() float64 {
	halfAngle := o.Chamber.ConeAngle / 2.0 * math.Pi / 180.0
	return (o.Chamber.Diameter / 2.0) / math.Tan(halfAngle)
}

// TotalHeight returns the total classifier height (cylinder + cone) [m]
func (o *Design) TotalHeight() float64 {
	return o.Chamber.Height + o.ConeHeight()
}

// BladeGap returns the gap between selector blades at the outer radius [m]
func (o *Design) BladeGap() float64 {
	circumference := math.Pi * o.Selector.Diameter
	blades := float64(o.Selector.BladeCount) * o.Selector.BladeThickness
	return (circumference - blades) / float64(o.Selector.BladeCount)
}

// Solidity returns the selector blade solidity ratio (blade area over total
// screen area)
func (o *Design) Solidity() float64 {
	circumference := math.Pi * o.Selector.Diameter
	blades := float64(o.Selector.BladeCount) * o.Selector.BladeThickness
	return blades / circumference
}

// TipSpeedDesign returns the rotor tip speed at the design speed [m/s]
func (o *Design) TipSpeedDesign() float64 {
	omega := o.Operating.RpmDesign * 2.0 * math.Pi / 60.0
	return omega * o.SelectorRadius()
}

// ChamberVolume returns the chamber volume (cylinder + cone) [m³]
func (o *Design) ChamberVolume() float64 {
	r := o.Chamber.Diameter / 2.0
	vcyl := math.Pi * r * r * o.Chamber.Height
	vcone := math.Pi * r * r * o.ConeHeight() / 3.0
	return vcyl + vcone
}

// AnnularGap returns the gap between the selector rotor and the chamber
// wall [m]
func (o *Design) AnnularGap() float64 {
	return (o.Chamber.Diameter - o.Selector.Diameter) / 2.0
}

// RsqH returns the r²·h product of the rotor [m³]. The cut size scales with
// 1/√(r²·h): fine cuts need a small product, coarse cuts a large one.
func (o *Design) RsqH() float64 {
	r := o.SelectorRadius()
	return r * r * o.Selector.BladeHeight
}

// CycloneTotalHeight returns the external cyclone height (cylinder+cone) [m]
func (o *Design) CycloneTotalHeight() float64 {
	return o.Cyclone.CylinderHeight + o.Cyclone.ConeHeight
}

// physics model ////////////////////////////////////////////////////////////////////////////////

// Model builds the cut-size model for this design
func (o *Design) Model() (mdl classify.Model, err error) {
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "r", V: o.SelectorRadius()},
		&dbf.P{N: "h", V: o.Selector.BladeHeight},
		&dbf.P{N: "rpmmin", V: o.Operating.RpmMin},
		&dbf.P{N: "rpmmax", V: o.Operating.RpmMax},
	})
	return
}

// CutSizeDesign computes the cut size at the design operating point with the
// default particle density [μm]
func (o *Design) CutSizeDesign() (float64, error) {
	mdl, err := o.Model()
	if err != nil {
		return 0, err
	}
	return mdl.CutSize(o.Operating.RpmDesign, o.Operating.AirflowDesign, classify.RhoParticleDefault)
}

// RpmForTarget computes the rotor speed required for the target cut size at
// the design air flow with the default particle density [rpm]
func (o *Design) RpmForTarget() (float64, error) {
	mdl, err := o.Model()
	if err != nil {
		return 0, err
	}
	return mdl.RequiredRpm(o.Operating.TargetD50, o.Operating.AirflowDesign, classify.RhoParticleDefault)
}
