package errors

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "oft-core"

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = errorsmod.Register(codespace, 4, "unauthorized")

	// ErrUnknownRequest is used when the request body cannot be interpreted.
	ErrUnknownRequest = errorsmod.Register(codespace, 6, "unknown request")

	// ErrInvalidAddress is used when an address is found to be invalid.
	ErrInvalidAddress = errorsmod.Register(codespace, 7, "invalid address")

	// ErrInvalidRequest defines an error where the request contains
	// invalid data.
	ErrInvalidRequest = errorsmod.Register(codespace, 18, "invalid request")

	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = errorsmod.Register(codespace, 35, "internal logic error")
)
