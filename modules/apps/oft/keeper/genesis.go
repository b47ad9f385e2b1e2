package keeper

import (
	"context"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// InitGenesis initializes the OFT policy module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, state types.GenesisState) {
	if err := state.Validate(); err != nil {
		panic(err)
	}

	for _, store := range state.Stores {
		k.SetOFTStore(ctx, store)
	}
}

// ExportGenesis returns the OFT policy module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Stores: k.GetAllOFTStores(ctx),
	}
}
