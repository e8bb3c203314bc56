// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package classify implements the Stokes force-balance cut-size model of a
// centrifugal classifier rotor
package classify

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// air properties at the 20°C reference condition (not user-configurable)
const (
	Mu     = 1.81e-5 // dynamic viscosity of air [Pa·s]
	RhoAir = 1.2     // density of air [kg/m³]
)

// RhoParticleDefault is the particle density assumed when a calculation is
// not tied to a specific fraction; average of the protein and starch
// fractions of yellow pea flour [kg/m³]
const RhoParticleDefault = 1400.0

// Model computes the theoretical aerodynamic cut size (d50) of a rotating
// selector cage and its inverses. A particle at the cylindrical screen of the
// rotor feels an inward drag from the radial air flow and an outward
// centrifugal force; the cut diameter is the size at which the two balance:
//
//   3・π・μ・d・v_r = (π/6)・d³・(ρp - ρa)・ω²・r
//
// with the radial air velocity through the screen given by
//
//   v_r = Q / (2・π・r・h)
//
// Both operations are pure functions of their inputs and the fixed geometry;
// any number of goroutines may call them concurrently.
type Model struct {

	// geometry (immutable after Init)
	R float64 // selector rotor radius [m]
	H float64 // blade height of the selection zone [m]

	// operating bounds
	RpmMin float64 // minimum rotor speed [rpm]
	RpmMax float64 // maximum rotor speed [rpm]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "r":
			o.R = p.V
		case "h":
			o.H = p.V
		case "rpmmin":
			o.RpmMin = p.V
		case "rpmmax":
			o.RpmMax = p.V
		}
	}
	if o.R <= 0 || o.H <= 0 {
		return &InvalidGeometryError{io.Sf("rotor radius and blade height must be positive: r=%g, h=%g", o.R, o.H)}
	}
	return nil
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // reference rotor (Ø400 mm × H500 mm)
			&dbf.P{N: "r", V: 0.2},       // [m]
			&dbf.P{N: "h", V: 0.5},       // [m]
			&dbf.P{N: "rpmmin", V: 1500}, // [rpm]
			&dbf.P{N: "rpmmax", V: 4000}, // [rpm]
		}
	}
	return dbf.Params{
		&dbf.P{N: "r", V: o.R},
		&dbf.P{N: "h", V: o.H},
		&dbf.P{N: "rpmmin", V: o.RpmMin},
		&dbf.P{N: "rpmmax", V: o.RpmMax},
	}
}

// CutSize computes the theoretical cut size for the given operating point.
//  Input:
//   rpm     -- rotor speed [rpm]
//   airflow -- air flow rate [m³/hr]
//   rhop    -- particle density [kg/m³]; e.g. RhoParticleDefault
//  Output:
//   d50 -- cut size [μm]
// Holding the other inputs fixed, d50 decreases with rpm and grows with
// airflow.
func (o Model) CutSize(rpm, airflow, rhop float64) (d50 float64, err error) {
	if err = o.checkGeometry(); err != nil {
		return
	}
	if rpm <= 0 || airflow <= 0 {
		return 0, &InvalidOperatingInputError{io.Sf("rotor speed and air flow must be positive: rpm=%g, airflow=%g", rpm, airflow)}
	}
	if rhop <= RhoAir {
		return 0, &InvalidPhysicalStateError{io.Sf("particle density (%g) must exceed air density (%g)", rhop, RhoAir)}
	}

	// operating point in SI units
	Q := airflow / 3600.0            // [m³/s]
	omega := rpm * 2.0 * math.Pi / 60.0 // [rad/s]

	// radial air velocity through the selector cage
	circumference := 2.0 * math.Pi * o.R
	vr := Q / (circumference * o.H)

	// force balance solved for d²
	d50sq := (18.0 * Mu * vr) / ((rhop - RhoAir) * omega * omega * o.R)
	if d50sq <= 0 {
		return 0, &InvalidPhysicalStateError{io.Sf("force balance has no solution: d50² = %g", d50sq)}
	}
	return math.Sqrt(d50sq) * 1e6, nil
}

// RequiredRpm computes the rotor speed needed to reach a target cut size.
//  Input:
//   targetD50 -- target cut size [μm]
//   airflow   -- air flow rate [m³/hr]
//   rhop      -- particle density [kg/m³]
//  Output:
//   rpm -- required rotor speed [rpm]
// The expression follows from solving the CutSize radicand for ω, except
// that the air-density correction is dropped (ρp instead of ρp-ρa, negligible
// for powders of 1000 kg/m³ and denser). The pair is therefore not an exact
// algebraic inverse: round trips come back low by the factor √((ρp-ρa)/ρp),
// about 0.04% at the default density.
func (o Model) RequiredRpm(targetD50, airflow, rhop float64) (rpm float64, err error) {
	if err = o.checkGeometry(); err != nil {
		return
	}
	if targetD50 <= 0 || airflow <= 0 {
		return 0, &InvalidOperatingInputError{io.Sf("target cut size and air flow must be positive: d50=%g, airflow=%g", targetD50, airflow)}
	}
	if rhop <= RhoAir {
		return 0, &InvalidPhysicalStateError{io.Sf("particle density (%g) must exceed air density (%g)", rhop, RhoAir)}
	}

	d50 := targetD50 * 1e-6 // [m]
	Q := airflow / 3600.0   // [m³/s]

	omegasq := (9.0 * Mu * Q) / (math.Pi * rhop * d50 * d50 * o.R * o.R * o.H)
	if omegasq <= 0 {
		return 0, &InvalidPhysicalStateError{io.Sf("force balance has no solution: ω² = %g", omegasq)}
	}
	return math.Sqrt(omegasq) * 60.0 / (2.0 * math.Pi), nil
}

// RequiredAirflow computes the air flow needed to reach a target cut size at
// a given rotor speed.
//  Input:
//   targetD50 -- target cut size [μm]
//   rpm       -- rotor speed [rpm]
//   rhop      -- particle density [kg/m³]
//  Output:
//   airflow -- required air flow [m³/hr]
// Unlike RequiredRpm, this inverse keeps the net density ρp-ρa and is exact
// with respect to CutSize.
func (o Model) RequiredAirflow(targetD50, rpm, rhop float64) (airflow float64, err error) {
	if err = o.checkGeometry(); err != nil {
		return
	}
	if targetD50 <= 0 || rpm <= 0 {
		return 0, &InvalidOperatingInputError{io.Sf("target cut size and rotor speed must be positive: d50=%g, rpm=%g", targetD50, rpm)}
	}
	if rhop <= RhoAir {
		return 0, &InvalidPhysicalStateError{io.Sf("particle density (%g) must exceed air density (%g)", rhop, RhoAir)}
	}

	d50 := targetD50 * 1e-6
	omega := rpm * 2.0 * math.Pi / 60.0

	Q := math.Pi * (rhop - RhoAir) * d50 * d50 * omega * omega * o.R * o.R * o.H / (9.0 * Mu)
	return Q * 3600.0, nil
}

// TipSpeed computes the rotor tip speed [m/s] at the given speed [rpm]
func (o Model) TipSpeed(rpm float64) float64 {
	omega := rpm * 2.0 * math.Pi / 60.0
	return omega * o.R
}

func (o Model) checkGeometry() error {
	if o.R <= 0 || o.H <= 0 {
		return &InvalidGeometryError{io.Sf("rotor radius and blade height must be positive: r=%g, h=%g", o.R, o.H)}
	}
	return nil
}
