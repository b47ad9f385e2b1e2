package keeper

import (
	"context"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the oft MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Creates a new OFT store. Fails if the signer is not the authority or the store already exists
func (k msgServer) InitOFTStore(ctx context.Context, msg *types.MsgInitOFTStore) (*types.MsgInitOFTStoreResponse, error) {
	events, err := k.Keeper.InitOFTStore(ctx, msg.Signer, msg.Params)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitOFTStoreResponse{Events: events}, nil
}

// Adds or removes principals from the rate limit override list.
// Authorization is checked against the stored admin before the batch shape
func (k msgServer) ManageRateLimitOverride(ctx context.Context, msg *types.MsgManageRateLimitOverride) (*types.MsgManageRateLimitOverrideResponse, error) {
	events, err := k.Keeper.ManageRateLimitOverride(ctx, msg.Admin, msg.Escrow, msg.Actions, msg.Addresses)
	if err != nil {
		return nil, err
	}

	return &types.MsgManageRateLimitOverrideResponse{Events: events}, nil
}

// Adds or removes transfer ids from the rate limit override list
func (k msgServer) ManageRateLimitOverrideTransferID(ctx context.Context, msg *types.MsgManageRateLimitOverrideTransferID) (*types.MsgManageRateLimitOverrideTransferIDResponse, error) {
	events, err := k.Keeper.ManageRateLimitOverrideTransferID(ctx, msg.Admin, msg.Escrow, msg.Actions, msg.TransferIDs)
	if err != nil {
		return nil, err
	}

	return &types.MsgManageRateLimitOverrideTransferIDResponse{Events: events}, nil
}

// Pauses or unpauses an OFT store
func (k msgServer) SetPause(ctx context.Context, msg *types.MsgSetPause) (*types.MsgSetPauseResponse, error) {
	events, err := k.Keeper.SetPause(ctx, msg.Signer, msg.Escrow, msg.Paused)
	if err != nil {
		return nil, err
	}

	return &types.MsgSetPauseResponse{Events: events}, nil
}
