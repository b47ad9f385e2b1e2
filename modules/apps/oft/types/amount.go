package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// AmountConverter converts token amounts between the local decimal (LD)
// representation and the shared decimal (SD) representation used across
// network boundaries. The rate is the number of LD units per SD unit and is
// fixed for the lifetime of the owning OFT store.
type AmountConverter struct {
	rate uint64
}

// NewAmountConverter returns a converter for the given LD to SD rate.
// A zero rate is a configuration error and is rejected here, so the
// conversion methods never divide by zero.
func NewAmountConverter(rate uint64) (AmountConverter, error) {
	if rate == 0 {
		return AmountConverter{}, ErrInvalidConversionRate
	}

	return AmountConverter{rate: rate}, nil
}

// RateFromDecimals returns 10^(localDecimals-sharedDecimals).
func RateFromDecimals(localDecimals, sharedDecimals uint8) (uint64, error) {
	if sharedDecimals > localDecimals {
		return 0, errorsmod.Wrapf(ErrInvalidDecimals, "shared decimals %d, local decimals %d", sharedDecimals, localDecimals)
	}

	rate := sdkmath.OneInt()
	for i := sharedDecimals; i < localDecimals; i++ {
		rate = rate.MulRaw(10)
	}

	if !rate.IsUint64() {
		return 0, errorsmod.Wrapf(ErrAmountOverflow, "conversion rate 10^%d", localDecimals-sharedDecimals)
	}

	return rate.Uint64(), nil
}

// Rate returns the number of LD units per SD unit.
func (c AmountConverter) Rate() uint64 {
	return c.rate
}

// ToShared converts an LD amount to SD, truncating any dust.
func (c AmountConverter) ToShared(amountLD uint64) uint64 {
	return amountLD / c.rate
}

// ToLocal converts an SD amount to LD. The product is computed on widened
// integers and fails with ErrAmountOverflow rather than wrapping.
func (c AmountConverter) ToLocal(amountSD uint64) (uint64, error) {
	amountLD := sdkmath.NewIntFromUint64(amountSD).Mul(sdkmath.NewIntFromUint64(c.rate))
	if !amountLD.IsUint64() {
		return 0, errorsmod.Wrapf(ErrAmountOverflow, "%d * %d", amountSD, c.rate)
	}

	return amountLD.Uint64(), nil
}

// RemoveDust returns the largest multiple of the rate not exceeding amountLD.
func (c AmountConverter) RemoveDust(amountLD uint64) uint64 {
	return amountLD - c.Dust(amountLD)
}

// Dust returns the part of amountLD that cannot be represented in SD.
func (c AmountConverter) Dust(amountLD uint64) uint64 {
	return amountLD % c.rate
}
