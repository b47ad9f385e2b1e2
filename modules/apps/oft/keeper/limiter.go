package keeper

import (
	"context"

	"github.com/armon/go-metrics"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	coremetrics "github.com/oft-labs/oft-policy/modules/core/metrics"
)

// CheckRateLimitOverride is queried by the rate limiter before throttling a
// transfer of amountLD from sender with the given transfer id. It reports whether
// the transfer bypasses the limiter and, if so, returns the trigger event.
// The record is not modified.
func (k Keeper) CheckRateLimitOverride(ctx context.Context, escrow, sender types.PrincipalID, transferID types.TransferID, amountLD uint64) (bool, []types.Event, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return false, nil, err
	}

	bypass, ev := store.CheckRateLimitOverride(sender, transferID, amountLD)
	if !bypass {
		return false, nil, nil
	}

	kind := overrideKindPrincipal
	if _, ok := ev.(types.EventRateLimitOverrideTransferIDTriggered); ok {
		kind = overrideKindTransferID
	}
	metrics.IncrCounterWithLabels(coremetrics.KeyOverrideTriggered, 1, []metrics.Label{
		{Name: coremetrics.LabelOverrideKind, Value: kind},
	})
	k.Logger().Info("rate limit override triggered", "escrow", escrow.String(), "kind", kind, "amount_ld", amountLD)

	return true, []types.Event{ev}, nil
}
