package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrOverrideParamsLengthMismatch = errorsmod.Register(ModuleName, 1,
		"rate limit override actions and keys length mismatch")
	ErrOverrideListFull = errorsmod.Register(ModuleName, 2,
		"rate limit override list is full")
	ErrAlreadyInOverrideList = errorsmod.Register(ModuleName, 3,
		"key already in rate limit override list")
	ErrNotInOverrideList = errorsmod.Register(ModuleName, 4,
		"key not in rate limit override list")
	ErrInvalidOverrideAction = errorsmod.Register(ModuleName, 5,
		"invalid rate limit override action")
	ErrInvalidConversionRate = errorsmod.Register(ModuleName, 6,
		"local to shared decimal conversion rate must be non-zero")
	ErrAmountOverflow = errorsmod.Register(ModuleName, 7,
		"amount overflows local decimal range")
	ErrInvalidDecimals = errorsmod.Register(ModuleName, 8,
		"shared decimals cannot exceed local decimals")
	ErrInvalidPrincipal = errorsmod.Register(ModuleName, 9,
		"invalid principal identifier")
	ErrInvalidTransferID = errorsmod.Register(ModuleName, 10,
		"invalid transfer identifier")
	ErrInvalidCapacity = errorsmod.Register(ModuleName, 11,
		"invalid rate limit override list capacity")
	ErrInvalidFeeBps = errorsmod.Register(ModuleName, 12,
		"invalid fee basis points")
	ErrOFTStoreNotFound = errorsmod.Register(ModuleName, 13,
		"oft store not found")
	ErrOFTStoreAlreadyExists = errorsmod.Register(ModuleName, 14,
		"oft store already exists")
	ErrPaused = errorsmod.Register(ModuleName, 15,
		"oft store is paused")
	ErrInvalidPauseState = errorsmod.Register(ModuleName, 16,
		"oft store is already in the requested pause state")
	ErrSlippageExceeded = errorsmod.Register(ModuleName, 17,
		"amount received is below the minimum amount")
	ErrInvalidOFTType = errorsmod.Register(ModuleName, 18,
		"invalid oft type")
)
