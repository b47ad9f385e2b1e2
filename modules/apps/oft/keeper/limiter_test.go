package keeper_test

import (
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	oftesting "github.com/oft-labs/oft-policy/testing"
)

func (s *KeeperTestSuite) TestCheckRateLimitOverride() {
	var (
		sender     types.PrincipalID
		transferID types.TransferID
	)

	overriddenSender := oftesting.GeneratePrincipal()
	overriddenTransferID := oftesting.GenerateTransferID()
	amountLD := uint64(5_000_000_000)

	testCases := []struct {
		name        string
		malleate    func()
		expBypass   bool
		expectedEvs []types.Event
	}{
		{
			"no override",
			func() {},
			false,
			nil,
		},
		{
			"sender override",
			func() {
				sender = overriddenSender
			},
			true,
			[]types.Event{types.EventRateLimitOverrideTriggered{Address: overriddenSender, AmountLD: amountLD}},
		},
		{
			"transfer id override",
			func() {
				transferID = overriddenTransferID
			},
			true,
			[]types.Event{types.EventRateLimitOverrideTransferIDTriggered{TransferID: overriddenTransferID, AmountLD: amountLD}},
		},
		{
			"sender override takes precedence over transfer id override",
			func() {
				sender = overriddenSender
				transferID = overriddenTransferID
			},
			true,
			[]types.Event{types.EventRateLimitOverrideTriggered{Address: overriddenSender, AmountLD: amountLD}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initStore()

			_, err := s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, []types.OverrideAction{types.OverrideActionAdd}, []types.PrincipalID{overriddenSender})
			s.Require().NoError(err)
			_, err = s.keeper.ManageRateLimitOverrideTransferID(s.ctx, s.admin, s.escrow, []types.OverrideAction{types.OverrideActionAdd}, []types.TransferID{overriddenTransferID})
			s.Require().NoError(err)

			sender = oftesting.GeneratePrincipal()
			transferID = oftesting.GenerateTransferID()

			tc.malleate()

			before, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)
			bypass, events, err := s.keeper.CheckRateLimitOverride(s.ctx, s.escrow, sender, transferID, amountLD)
			s.Require().NoError(err)
			s.Require().Equal(tc.expBypass, bypass)
			s.Require().Equal(tc.expectedEvs, events)

			after, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)
			s.Require().Equal(before, after)
		})
	}
}

func (s *KeeperTestSuite) TestCheckRateLimitOverride_StoreNotFound() {
	bypass, events, err := s.keeper.CheckRateLimitOverride(s.ctx, s.escrow, oftesting.GeneratePrincipal(), oftesting.GenerateTransferID(), 1)
	s.Require().ErrorIs(err, types.ErrOFTStoreNotFound)
	s.Require().False(bypass)
	s.Require().Nil(events)
}
