package validate

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
)

// QueryRequest validates that the escrow identifier of a query request is present.
// Decoding of the identifier itself is left to the caller.
func QueryRequest(escrow string) error {
	if strings.TrimSpace(escrow) == "" {
		return errorsmod.Wrap(coreerrors.ErrInvalidRequest, "escrow identifier cannot be blank")
	}

	return nil
}
