package keeper

import (
	"context"
	"errors"
	"fmt"

	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// Keeper maintains the link to storage and exposes getter/setter methods for the OFT store records
type Keeper struct {
	storeService corestore.KVStoreService
	logger       log.Logger

	// authority may create new OFT stores
	authority types.PrincipalID
}

// NewKeeper creates a new OFT policy Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	logger log.Logger,
	authority types.PrincipalID,
) Keeper {
	if authority.Empty() {
		panic(errors.New("authority must be non-empty"))
	}

	return Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,
	}
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() types.PrincipalID {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// oftStoreKey returns the full store key of the record owned by escrow.
func oftStoreKey(escrow types.PrincipalID) []byte {
	key := append([]byte{}, types.OFTStoreKeyPrefix...)
	return append(key, types.OFTStoreKey(escrow)...)
}

// SetOFTStore stores or replaces the record owned by store.TokenEscrow.
func (k Keeper) SetOFTStore(ctx context.Context, store types.OFTStore) {
	kvStore := k.storeService.OpenKVStore(ctx)
	if err := kvStore.Set(oftStoreKey(store.TokenEscrow), types.MustMarshal(&store)); err != nil {
		panic(err)
	}
}

// HasOFTStore reports whether a record exists for escrow.
func (k Keeper) HasOFTStore(ctx context.Context, escrow types.PrincipalID) bool {
	kvStore := k.storeService.OpenKVStore(ctx)
	has, err := kvStore.Has(oftStoreKey(escrow))
	if err != nil {
		panic(err)
	}
	return has
}

// GetOFTStore returns the record owned by escrow. The returned value is a fresh
// decoded copy; changes to it are discarded unless passed to SetOFTStore.
func (k Keeper) GetOFTStore(ctx context.Context, escrow types.PrincipalID) (types.OFTStore, bool) {
	kvStore := k.storeService.OpenKVStore(ctx)
	bz, err := kvStore.Get(oftStoreKey(escrow))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return types.OFTStore{}, false
	}

	var store types.OFTStore
	if err := types.Unmarshal(bz, &store); err != nil {
		panic(fmt.Errorf("failed to unmarshal oft store %s: %w", escrow, err))
	}
	return store, true
}

// GetAllOFTStores returns every stored record ordered by escrow.
func (k Keeper) GetAllOFTStores(ctx context.Context) []types.OFTStore {
	kvStore := k.storeService.OpenKVStore(ctx)
	iterator, err := kvStore.Iterator(types.OFTStoreKeyPrefix, storetypes.PrefixEndBytes(types.OFTStoreKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	allStores := []types.OFTStore{}
	for ; iterator.Valid(); iterator.Next() {
		var store types.OFTStore
		if err := types.Unmarshal(iterator.Value(), &store); err != nil {
			// Log the error and skip this entry if unmarshalling fails
			k.Logger().Error("failed to unmarshal oft store", "key", fmt.Sprintf("%X", iterator.Key()), "error", err)
			continue
		}
		allStores = append(allStores, store)
	}

	return allStores
}

// loadOFTStore is GetOFTStore returning ErrOFTStoreNotFound for a missing record.
func (k Keeper) loadOFTStore(ctx context.Context, escrow types.PrincipalID) (types.OFTStore, error) {
	store, found := k.GetOFTStore(ctx, escrow)
	if !found {
		return types.OFTStore{}, errorsmod.Wrapf(types.ErrOFTStoreNotFound, "escrow %s", escrow)
	}
	return store, nil
}
