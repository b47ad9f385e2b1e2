package oftesting

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// GeneratePrincipal returns a random principal identifier.
func GeneratePrincipal() types.PrincipalID {
	var p types.PrincipalID
	if _, err := rand.Read(p[:]); err != nil {
		panic(err)
	}
	return p
}

// GeneratePrincipals returns n distinct random principal identifiers.
func GeneratePrincipals(n int) []types.PrincipalID {
	principals := make([]types.PrincipalID, n)
	for i := range principals {
		principals[i] = GeneratePrincipal()
	}
	return principals
}

// GenerateTransferID returns a random transfer identifier.
func GenerateTransferID() types.TransferID {
	var t types.TransferID
	if _, err := rand.Read(t[:]); err != nil {
		panic(err)
	}
	return t
}

// GenerateTransferIDs returns n distinct random transfer identifiers.
func GenerateTransferIDs(n int) []types.TransferID {
	transferIDs := make([]types.TransferID, n)
	for i := range transferIDs {
		transferIDs[i] = GenerateTransferID()
	}
	return transferIDs
}

// Repeat returns a slice holding action n times.
func Repeat(action types.OverrideAction, n int) []types.OverrideAction {
	actions := make([]types.OverrideAction, n)
	for i := range actions {
		actions[i] = action
	}
	return actions
}

// NewInitStoreParams returns valid store parameters with the default list
// capacities and a nine decimal shift between local and shared amounts.
func NewInitStoreParams(admin, escrow types.PrincipalID) types.InitStoreParams {
	pauser, unpauser := GeneratePrincipal(), GeneratePrincipal()
	return types.InitStoreParams{
		OFTType:                         types.OFTTypeAdapter,
		LD2SDRate:                       1_000_000_000,
		TokenMint:                       GeneratePrincipal(),
		TokenEscrow:                     escrow,
		EndpointProgram:                 GeneratePrincipal(),
		Admin:                           admin,
		Pauser:                          &pauser,
		Unpauser:                        &unpauser,
		MaxRateLimitOverrides:           types.DefaultMaxRateLimitOverrides,
		MaxRateLimitOverrideTransferIDs: types.DefaultMaxRateLimitOverrideTransferIDs,
	}
}

// NewOFTStore returns a new valid store owned by admin.
func NewOFTStore(tb testing.TB, admin types.PrincipalID) *types.OFTStore {
	tb.Helper()
	store, err := types.NewOFTStore(NewInitStoreParams(admin, GeneratePrincipal()))
	require.NoError(tb, err)
	return store
}
