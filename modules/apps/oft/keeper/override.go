package keeper

import (
	"context"

	"github.com/armon/go-metrics"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	coremetrics "github.com/oft-labs/oft-policy/modules/core/metrics"
)

const (
	overrideKindPrincipal  = "principal"
	overrideKindTransferID = "transfer_id"
)

// ManageRateLimitOverride applies a principal override batch to the store owned
// by escrow. The record is only written back when the whole batch succeeded, so
// a failed request leaves the persisted record untouched.
func (k Keeper) ManageRateLimitOverride(ctx context.Context, admin, escrow types.PrincipalID, actions []types.OverrideAction, addresses []types.PrincipalID) ([]types.Event, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return nil, err
	}

	events, err := store.ManagePrincipalOverrides(admin, actions, addresses)
	if err != nil {
		emitBatchTelemetry(overrideKindPrincipal, err)
		return nil, err
	}

	k.SetOFTStore(ctx, store)
	k.afterBatch(escrow, overrideKindPrincipal, events, store.Registry.Principals.Len())
	return events, nil
}

// ManageRateLimitOverrideTransferID is the transfer id keyed twin of ManageRateLimitOverride.
func (k Keeper) ManageRateLimitOverrideTransferID(ctx context.Context, admin, escrow types.PrincipalID, actions []types.OverrideAction, transferIDs []types.TransferID) ([]types.Event, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return nil, err
	}

	events, err := store.ManageTransferIDOverrides(admin, actions, transferIDs)
	if err != nil {
		emitBatchTelemetry(overrideKindTransferID, err)
		return nil, err
	}

	k.SetOFTStore(ctx, store)
	k.afterBatch(escrow, overrideKindTransferID, events, store.Registry.TransferIDs.Len())
	return events, nil
}

// IsRateLimitOverrideAddress reports whether address is on the principal override list of escrow's store.
func (k Keeper) IsRateLimitOverrideAddress(ctx context.Context, escrow, address types.PrincipalID) (bool, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return false, err
	}
	return store.Registry.IsPrincipalOverridden(address), nil
}

// IsRateLimitOverrideTransferID reports whether transferID is on the transfer id override list of escrow's store.
func (k Keeper) IsRateLimitOverrideTransferID(ctx context.Context, escrow types.PrincipalID, transferID types.TransferID) (bool, error) {
	store, err := k.loadOFTStore(ctx, escrow)
	if err != nil {
		return false, err
	}
	return store.Registry.IsTransferIDOverridden(transferID), nil
}

func (k Keeper) afterBatch(escrow types.PrincipalID, kind string, events []types.Event, size int) {
	logger := k.Logger()
	for _, ev := range events {
		logger.Debug("rate limit override updated", "escrow", escrow.String(), "event", ev.EventType(), "attributes", ev.Attributes())

		action := types.OverrideActionAdd
		switch update := ev.(type) {
		case types.EventRateLimitOverrideUpdated:
			action = update.Action
		case types.EventRateLimitOverrideTransferIDUpdated:
			action = update.Action
		}
		metrics.IncrCounterWithLabels(coremetrics.KeyOverrideUpdated, 1, []metrics.Label{
			{Name: coremetrics.LabelOverrideKind, Value: kind},
			{Name: coremetrics.LabelAction, Value: action.String()},
		})
	}

	emitBatchTelemetry(kind, nil)
	logger.Info("applied rate limit override batch", "escrow", escrow.String(), "kind", kind, "mutations", len(events), "size", size)
}

func emitBatchTelemetry(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.IncrCounterWithLabels(coremetrics.KeyOverrideBatch, 1, []metrics.Label{
		{Name: coremetrics.LabelOverrideKind, Value: kind},
		{Name: coremetrics.LabelOutcome, Value: outcome},
	})
}
