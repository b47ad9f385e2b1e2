package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/internal/validate"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

var _ types.QueryServer = Keeper{}

// Query a single OFT store by escrow
func (k Keeper) OFTStore(ctx context.Context, req *types.QueryOFTStoreRequest) (*types.QueryOFTStoreResponse, error) {
	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}
	return &types.QueryOFTStoreResponse{Store: store}, nil
}

// Query all OFT stores
func (k Keeper) AllOFTStores(ctx context.Context, _ *types.QueryAllOFTStoresRequest) (*types.QueryAllOFTStoresResponse, error) {
	return &types.QueryAllOFTStoresResponse{Stores: k.GetAllOFTStores(ctx)}, nil
}

// Query both rate limit override lists of a store
func (k Keeper) RateLimitOverrides(ctx context.Context, req *types.QueryRateLimitOverridesRequest) (*types.QueryRateLimitOverridesResponse, error) {
	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}

	return &types.QueryRateLimitOverridesResponse{
		Addresses:                       store.Registry.Principals.Entries(),
		TransferIDs:                     store.Registry.TransferIDs.Entries(),
		MaxRateLimitOverrides:           store.Registry.Principals.Capacity(),
		MaxRateLimitOverrideTransferIDs: store.Registry.TransferIDs.Capacity(),
	}, nil
}

// Query whether an address or a transfer id is overridden
func (k Keeper) IsRateLimitOverride(ctx context.Context, req *types.QueryIsRateLimitOverrideRequest) (*types.QueryIsRateLimitOverrideResponse, error) {
	if (req.Address == "") == (req.TransferID == "") {
		return nil, errorsmod.Wrap(coreerrors.ErrInvalidRequest, "exactly one of address or transfer id must be set")
	}

	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}

	if req.Address != "" {
		address, err := types.ParsePrincipalID(req.Address)
		if err != nil {
			return nil, err
		}
		return &types.QueryIsRateLimitOverrideResponse{Overridden: store.Registry.IsPrincipalOverridden(address)}, nil
	}

	transferID, err := types.ParseTransferID(req.TransferID)
	if err != nil {
		return nil, err
	}
	return &types.QueryIsRateLimitOverrideResponse{Overridden: store.Registry.IsTransferIDOverridden(transferID)}, nil
}

// Query the shared decimal form of a local amount and the dust it drops
func (k Keeper) ConvertAmount(ctx context.Context, req *types.QueryConvertAmountRequest) (*types.QueryConvertAmountResponse, error) {
	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}

	converter := store.Converter()
	return &types.QueryConvertAmountResponse{
		AmountSD:       converter.ToShared(req.AmountLD),
		AmountLDNoDust: converter.RemoveDust(req.AmountLD),
		DustLD:         converter.Dust(req.AmountLD),
	}, nil
}

// Query the amounts an outbound transfer would send and deliver
func (k Keeper) DebitView(ctx context.Context, req *types.QueryDebitViewRequest) (*types.QueryDebitViewResponse, error) {
	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}

	amounts, err := store.DebitView(req.AmountLD, req.MinAmountLD)
	if err != nil {
		return nil, err
	}

	return &types.QueryDebitViewResponse{
		AmountSentLD:     amounts.AmountSentLD,
		AmountReceivedLD: amounts.AmountReceivedLD,
		FeeLD:            amounts.FeeLD,
	}, nil
}

// Query the local amount an inbound shared decimal amount credits
func (k Keeper) CreditView(ctx context.Context, req *types.QueryCreditViewRequest) (*types.QueryCreditViewResponse, error) {
	store, err := k.queryOFTStore(ctx, req.Escrow)
	if err != nil {
		return nil, err
	}

	amountLD, err := store.CreditView(req.AmountSD)
	if err != nil {
		return nil, err
	}

	return &types.QueryCreditViewResponse{AmountReceivedLD: amountLD}, nil
}

func (k Keeper) queryOFTStore(ctx context.Context, escrow string) (types.OFTStore, error) {
	if err := validate.QueryRequest(escrow); err != nil {
		return types.OFTStore{}, err
	}

	escrowID, err := types.ParsePrincipalID(escrow)
	if err != nil {
		return types.OFTStore{}, err
	}

	return k.loadOFTStore(ctx, escrowID)
}
