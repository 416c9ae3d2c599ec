// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// AtomsPerCoin is the number of atoms in one helix (1 HLX).
const AtomsPerCoin = 1e8

// MaxAtoms is the maximum amount of atoms that will ever exist.
const MaxAtoms = 21e6 * AtomsPerCoin

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of a helix. The value of the AmountUnit is the
// exponent component of the decadic multiple to convert from an amount in
// helix to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing a helix
// monetary amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountAtom      AmountUnit = -8
)

// String returns the unit as a string. For recognized units, the SI prefix is
// used, or "Atom" for the base unit. For all unrecognized units, "1eN HLX"
// is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "MHLX"
	case AmountKiloCoin:
		return "kHLX"
	case AmountCoin:
		return "HLX"
	case AmountMilliCoin:
		return "mHLX"
	case AmountMicroCoin:
		return "μHLX"
	case AmountAtom:
		return "Atom"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " HLX"
	}
}

// Amount represents the base helix monetary unit (colloquially referred to as
// an "atom"). A single Amount is equal to 1e-8 of a helix.
type Amount int64

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to the
// nearest integer. This is performed by adding or subtracting 0.5 depending
// on the sign, and relying on integer truncation to round the value to the
// nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing some
// value in helix. NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total amount of helix producible as f
// may not refer to an amount at a single moment in time.
//
// NewAmount is for specifically for converting HLX to Atoms. For creating a
// new Amount with an int64 value which denotes a quantity of atoms, do a
// simple type conversion from type int64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented as
	// an integer type. This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid helix amount")
	}

	return round(f * AtomsPerCoin), nil
}

// ToUnit converts a monetary amount counted in helix base units to a
// floating point value representing an amount of helix.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCoin is the equivalent of calling ToUnit with AmountCoin.
func (a Amount) ToCoin() float64 {
	return a.ToUnit(AmountCoin)
}

// Format formats a monetary amount counted in helix base units as a string
// for a given unit. The conversion will succeed for any unit, however, known
// units will be formatted with an appended label describing the units with
// SI notation, or "atom" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountCoin.
func (a Amount) String() string {
	return a.Format(AmountCoin)
}

// MulF64 multiplies an Amount by a floating point value. While this is not
// an operation that must typically be done by a full node or wallet, it is
// useful for services that build on top of helix (for example, calculating
// a fee by multiplying by a percentage).
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
