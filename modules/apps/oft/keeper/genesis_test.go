package keeper_test

import (
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	oftesting "github.com/oft-labs/oft-policy/testing"
)

func (s *KeeperTestSuite) TestGenesis() {
	genesis := types.DefaultGenesis()
	for i := 0; i < 2; i++ {
		store := oftesting.NewOFTStore(s.T(), s.admin)
		_, err := store.ManagePrincipalOverrides(s.admin, oftesting.Repeat(types.OverrideActionAdd, 2), oftesting.GeneratePrincipals(2))
		s.Require().NoError(err)
		genesis.Stores = append(genesis.Stores, *store)
	}

	s.keeper.InitGenesis(s.ctx, *genesis)

	for _, expected := range genesis.Stores {
		actual, found := s.keeper.GetOFTStore(s.ctx, expected.TokenEscrow)
		s.Require().True(found)
		s.Require().Equal(expected, actual)
	}

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().ElementsMatch(genesis.Stores, exported.Stores)
}

func (s *KeeperTestSuite) TestInitGenesis_InvalidPanics() {
	store := oftesting.NewOFTStore(s.T(), s.admin)
	genesis := types.GenesisState{Stores: []types.OFTStore{*store, *store}}

	s.Require().Panics(func() {
		s.keeper.InitGenesis(s.ctx, genesis)
	})
}
