// Copyright 2026 The Aircls Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

// InvalidGeometryError reports a rotor radius or blade height that is zero or
// negative; detected when the model is initialised.
type InvalidGeometryError struct {
	Msg string
}

func (e *InvalidGeometryError) Error() string { return e.Msg }

// InvalidOperatingInputError reports a rotor speed, air flow or target cut
// size that is zero or negative at call time.
type InvalidOperatingInputError struct {
	Msg string
}

func (e *InvalidOperatingInputError) Error() string { return e.Msg }

// InvalidPhysicalStateError reports an operating point where the force
// balance is physically meaningless, i.e. the particle density does not
// exceed the air density.
type InvalidPhysicalStateError struct {
	Msg string
}

func (e *InvalidPhysicalStateError) Error() string { return e.Msg }
