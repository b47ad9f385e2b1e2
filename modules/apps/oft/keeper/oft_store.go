package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// InitOFTStore creates a new record. Only the keeper authority may create
// records, and each escrow owns at most one.
func (k Keeper) InitOFTStore(ctx context.Context, signer types.PrincipalID, params types.InitStoreParams) ([]types.Event, error) {
	if signer != k.authority {
		return nil, errorsmod.Wrapf(coreerrors.ErrUnauthorized, "invalid authority; expected %s, got %s", k.authority, signer)
	}

	store, err := types.NewOFTStore(params)
	if err != nil {
		return nil, err
	}

	if k.HasOFTStore(ctx, store.TokenEscrow) {
		return nil, errorsmod.Wrapf(types.ErrOFTStoreAlreadyExists, "escrow %s", store.TokenEscrow)
	}

	k.SetOFTStore(ctx, *store)
	k.Logger().Info("initialized oft store", "escrow", store.TokenEscrow.String(), "admin", store.Admin.String(), "ld2sd_rate", store.LD2SDRate)

	return []types.Event{types.EventOFTStoreInitialized{Escrow: store.TokenEscrow, Admin: store.Admin}}, nil
}

// SetPause pauses or unpauses the store owned by escrow.
func (k Keeper) SetPause(ctx context.Context, signer, escrow types.PrincipalID, paused bool) ([]types.Event, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return nil, err
	}

	ev, err := store.SetPaused(signer, paused)
	if err != nil {
		return nil, err
	}

	k.SetOFTStore(ctx, store)
	k.Logger().Info("updated oft store pause state", "escrow", escrow.String(), "paused", paused)

	return []types.Event{ev}, nil
}
