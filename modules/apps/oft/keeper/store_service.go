package keeper

import (
	"context"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/dbadapter"
	dbm "github.com/cosmos/cosmos-db"
)

var (
	_ corestore.KVStoreService = dbStoreService{}
	_ corestore.KVStore        = coreKVStore{}
)

type dbStoreService struct {
	store coreKVStore
}

// NewKVStoreService returns a store service backed directly by db. Every
// request sees the same underlying store.
func NewKVStoreService(db dbm.DB) corestore.KVStoreService {
	return dbStoreService{store: coreKVStore{Store: &dbadapter.Store{DB: db}}}
}

func (s dbStoreService) OpenKVStore(context.Context) corestore.KVStore {
	return s.store
}

// coreKVStore exposes a dbadapter store through the error returning core store API.
type coreKVStore struct {
	*dbadapter.Store
}

func (s coreKVStore) Get(key []byte) ([]byte, error) {
	return s.DB.Get(key)
}

func (s coreKVStore) Has(key []byte) (bool, error) {
	return s.DB.Has(key)
}

func (s coreKVStore) Set(key, value []byte) error {
	return s.DB.Set(key, value)
}

func (s coreKVStore) Delete(key []byte) error {
	return s.DB.Delete(key)
}

func (s coreKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.DB.Iterator(start, end)
}

func (s coreKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.DB.ReverseIterator(start, end)
}
