// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle implements property models for the powder fractions fed
// to the classifier
package particle

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/rnd"
)

// RhoWater is the density of water [kg/m³] used for moisture corrections
const RhoWater = 1000.0

// Properties holds the physical description of one particle population.
// Diameters are in meters, densities in kg/m³.
type Properties struct {
	Rho      float64 // dry density
	DMean    float64 // mean diameter
	DStd     float64 // diameter standard deviation
	DMin     float64 // minimum diameter
	DMax     float64 // maximum diameter
	Shape    float64 // sphericity; 1 = perfect sphere
	Moisture float64 // moisture content fraction
}

// Init initialises this structure
func (o *Properties) Init(prms dbf.Params) error {
	o.Shape = 1.0
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "dmean":
			o.DMean = p.V
		case "dstd":
			o.DStd = p.V
		case "dmin":
			o.DMin = p.V
		case "dmax":
			o.DMax = p.V
		case "shape":
			o.Shape = p.V
		case "moisture":
			o.Moisture = p.V
		}
	}
	if o.Rho <= 0 || o.DMean <= 0 {
		return chk.Err("particle density and mean diameter must be positive: rho=%g, dmean=%g", o.Rho, o.DMean)
	}
	if o.DMin < 0 || o.DMax <= o.DMin {
		return chk.Err("diameter bounds are invalid: dmin=%g, dmax=%g", o.DMin, o.DMax)
	}
	if o.Moisture < 0 || o.Moisture >= 1 {
		return chk.Err("moisture content must be within [0,1): %g", o.Moisture)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Properties) GetPrms(example bool) dbf.Params {
	if example {
		return Protein().GetPrms(false)
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "dmean", V: o.DMean},
		&dbf.P{N: "dstd", V: o.DStd},
		&dbf.P{N: "dmin", V: o.DMin},
		&dbf.P{N: "dmax", V: o.DMax},
		&dbf.P{N: "shape", V: o.Shape},
		&dbf.P{N: "moisture", V: o.Moisture},
	}
}

// EffectiveRho computes the density accounting for moisture
func (o Properties) EffectiveRho() float64 {
	return o.Rho*(1.0-o.Moisture) + RhoWater*o.Moisture
}

// Volume computes the volume of a spherical particle with diameter d
func (o Properties) Volume(d float64) float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(d/2.0, 3.0)
}

// Mass computes the mass of a particle with diameter d, with the moisture
// fraction taken at water density
func (o Properties) Mass(d float64) float64 {
	v := o.Volume(d)
	return o.Rho*v*(1.0-o.Moisture) + RhoWater*v*o.Moisture
}

// SampleDiameters draws n diameters from the truncated normal distribution
// defined by DMean, DStd and [DMin, DMax]. Call rnd.Init first to seed the
// generator.
func (o Properties) SampleDiameters(n int) []float64 {
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		for {
			d := o.DMean + o.DStd*stdnorm()
			if d >= o.DMin && d <= o.DMax {
				res[i] = d
				break
			}
		}
	}
	return res
}

// stdnorm returns one standard normal sample (Box-Muller over gosl uniforms)
func stdnorm() float64 {
	u1 := rnd.Float64(0, 1)
	for u1 == 0 {
		u1 = rnd.Float64(0, 1)
	}
	u2 := rnd.Float64(0, 1)
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// Protein returns the properties of the protein (fine) fraction of yellow
// pea flour
func Protein() Properties {
	return Properties{
		Rho:      1350,    // dry protein
		DMean:    10e-6,   // 10 μm
		DStd:     5e-6,    // 5 μm
		DMin:     2e-6,    // 2 μm
		DMax:     20e-6,   // 20 μm
		Shape:    0.85,    // slightly irregular
		Moisture: 0.10,
	}
}

// Starch returns the properties of the starch (coarse) fraction
func Starch() Properties {
	return Properties{
		Rho:      1520,
		DMean:    30e-6,
		DStd:     10e-6,
		DMin:     15e-6,
		DMax:     60e-6,
		Shape:    0.75, // granular
		Moisture: 0.10,
	}
}

// Feed returns the properties of the mixed flour feed
func Feed() Properties {
	return Properties{
		Rho:      1450,
		DMean:    20e-6,
		DStd:     12e-6,
		DMin:     2e-6,
		DMax:     60e-6,
		Shape:    0.80,
		Moisture: 0.10,
	}
}

// Composition holds the mass fractions of the feed material
type Composition struct {
	Protein  float64 `json:"protein"`
	Starch   float64 `json:"starch"`
	Fibre    float64 `json:"fibre"`
	Other    float64 `json:"other"` // ash, lipids, etc.
	Moisture float64 `json:"moisture"`
}

// Validate checks that the fractions sum to one
func (o Composition) Validate() error {
	total := o.Protein + o.Starch + o.Fibre + o.Other
	if math.Abs(total-1.0) > 0.01 {
		return chk.Err("feed fractions sum to %.3f, should be 1.0", total)
	}
	return nil
}

// YellowPeaFlour returns the typical composition of yellow pea flour
func YellowPeaFlour() Composition {
	return Composition{
		Protein:  0.23,
		Starch:   0.48,
		Fibre:    0.15,
		Other:    0.14,
		Moisture: 0.10,
	}
}

// particle kinds returned by Mixture
const (
	KindProtein = 0
	KindStarch  = 1
)

// Mixture samples a feed of n particles split between the protein and starch
// populations according to the composition. It returns the diameters [m],
// the effective densities [kg/m³] and the kind of each particle, with the
// protein block first. Call rnd.Init first to seed the generator.
func Mixture(n int, comp Composition, protein, starch Properties) (diameters, densities []float64, kinds []int, err error) {
	if err = comp.Validate(); err != nil {
		return
	}
	if n < 1 {
		err = chk.Err("number of particles must be positive: n=%d", n)
		return
	}

	nprotein := int(float64(n) * comp.Protein)
	nstarch := n - nprotein

	diameters = append(protein.SampleDiameters(nprotein), starch.SampleDiameters(nstarch)...)
	densities = make([]float64, n)
	kinds = make([]int, n)
	for i := 0; i < nprotein; i++ {
		densities[i] = protein.EffectiveRho()
		kinds[i] = KindProtein
	}
	for i := nprotein; i < n; i++ {
		densities[i] = starch.EffectiveRho()
		kinds[i] = KindStarch
	}
	return
}
