package keeper_test

import (
	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	oftesting "github.com/oft-labs/oft-policy/testing"
)

func (s *KeeperTestSuite) TestManageRateLimitOverride() {
	var (
		caller    types.PrincipalID
		escrow    types.PrincipalID
		actions   []types.OverrideAction
		addresses []types.PrincipalID
		existing  []types.PrincipalID
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: add batch",
			func() {},
			nil,
		},
		{
			"success: empty batch",
			func() {
				actions = []types.OverrideAction{}
				addresses = []types.PrincipalID{}
			},
			nil,
		},
		{
			"success: add and remove the same address in one batch",
			func() {
				actions = []types.OverrideAction{types.OverrideActionAdd, types.OverrideActionRemove}
				addresses = []types.PrincipalID{addresses[0], addresses[0]}
			},
			nil,
		},
		{
			"success: remove existing addresses",
			func() {
				existing = oftesting.GeneratePrincipals(3)
				actions = oftesting.Repeat(types.OverrideActionRemove, 2)
				addresses = existing[:2]
			},
			nil,
		},
		{
			"failure: store not found",
			func() {
				escrow = oftesting.GeneratePrincipal()
			},
			types.ErrOFTStoreNotFound,
		},
		{
			"failure: caller is not the admin",
			func() {
				caller = oftesting.GeneratePrincipal()
			},
			coreerrors.ErrUnauthorized,
		},
		{
			"failure: caller is the authority but not the admin",
			func() {
				caller = s.authority
			},
			coreerrors.ErrUnauthorized,
		},
		{
			"failure: unauthorized takes precedence over a length mismatch",
			func() {
				caller = oftesting.GeneratePrincipal()
				actions = actions[:1]
			},
			coreerrors.ErrUnauthorized,
		},
		{
			"failure: length mismatch",
			func() {
				actions = actions[:1]
			},
			types.ErrOverrideParamsLengthMismatch,
		},
		{
			"failure: list full on the last entry",
			func() {
				existing = oftesting.GeneratePrincipals(int(types.DefaultMaxRateLimitOverrides) - 1)
			},
			types.ErrOverrideListFull,
		},
		{
			"failure: address already in the list",
			func() {
				existing = oftesting.GeneratePrincipals(1)
				addresses[1] = existing[0]
			},
			types.ErrAlreadyInOverrideList,
		},
		{
			"failure: duplicate address in the batch",
			func() {
				addresses[1] = addresses[0]
			},
			types.ErrAlreadyInOverrideList,
		},
		{
			"failure: remove an address not in the list",
			func() {
				actions[1] = types.OverrideActionRemove
			},
			types.ErrNotInOverrideList,
		},
		{
			"failure: invalid action",
			func() {
				actions[1] = types.OverrideAction(7)
			},
			types.ErrInvalidOverrideAction,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initStore()

			caller = s.admin
			escrow = s.escrow
			actions = oftesting.Repeat(types.OverrideActionAdd, 2)
			addresses = oftesting.GeneratePrincipals(2)
			existing = nil

			tc.malleate()

			if len(existing) > 0 {
				_, err := s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, len(existing)), existing)
				s.Require().NoError(err)
			}
			before, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)

			events, err := s.keeper.ManageRateLimitOverride(s.ctx, caller, escrow, actions, addresses)

			after, found := s.keeper.GetOFTStore(s.ctx, s.escrow)
			s.Require().True(found)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Len(events, len(actions))

				expected := make([]types.Event, len(actions))
				for i := range actions {
					expected[i] = types.EventRateLimitOverrideUpdated{Address: addresses[i], Action: actions[i]}
				}
				s.Require().Equal(expected, events)

				staged := before.Registry.Principals.Clone()
				for i := range actions {
					s.Require().NoError(staged.Apply(actions[i], addresses[i]))
				}
				s.Require().Equal(staged.Entries(), after.Registry.Principals.Entries())
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(events)
				s.Require().Equal(before, after)
			}
		})
	}
}

func (s *KeeperTestSuite) TestManageRateLimitOverride_SwapRemoveOrder() {
	s.initStore()
	addresses := oftesting.GeneratePrincipals(3)

	_, err := s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 3), addresses)
	s.Require().NoError(err)

	_, err = s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, []types.OverrideAction{types.OverrideActionRemove}, addresses[:1])
	s.Require().NoError(err)

	store, found := s.keeper.GetOFTStore(s.ctx, s.escrow)
	s.Require().True(found)
	s.Require().Equal([]types.PrincipalID{addresses[2], addresses[1]}, store.Registry.Principals.Entries())

	for i, overridden := range []bool{false, true, true} {
		isOverride, err := s.keeper.IsRateLimitOverrideAddress(s.ctx, s.escrow, addresses[i])
		s.Require().NoError(err)
		s.Require().Equal(overridden, isOverride)
	}
}

func (s *KeeperTestSuite) TestManageRateLimitOverrideTransferID() {
	var (
		caller      types.PrincipalID
		actions     []types.OverrideAction
		transferIDs []types.TransferID
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: fill the list",
			func() {
				actions = oftesting.Repeat(types.OverrideActionAdd, int(types.DefaultMaxRateLimitOverrideTransferIDs))
				transferIDs = oftesting.GenerateTransferIDs(int(types.DefaultMaxRateLimitOverrideTransferIDs))
			},
			nil,
		},
		{
			"success: add then remove",
			func() {
				actions = []types.OverrideAction{types.OverrideActionAdd, types.OverrideActionRemove}
				transferIDs = []types.TransferID{transferIDs[0], transferIDs[0]}
			},
			nil,
		},
		{
			"failure: caller is not the admin",
			func() {
				caller = oftesting.GeneratePrincipal()
			},
			coreerrors.ErrUnauthorized,
		},
		{
			"failure: length mismatch",
			func() {
				transferIDs = transferIDs[:1]
			},
			types.ErrOverrideParamsLengthMismatch,
		},
		{
			"failure: list full",
			func() {
				actions = oftesting.Repeat(types.OverrideActionAdd, int(types.DefaultMaxRateLimitOverrideTransferIDs)+1)
				transferIDs = oftesting.GenerateTransferIDs(int(types.DefaultMaxRateLimitOverrideTransferIDs) + 1)
			},
			types.ErrOverrideListFull,
		},
		{
			"failure: duplicate transfer id",
			func() {
				transferIDs[1] = transferIDs[0]
			},
			types.ErrAlreadyInOverrideList,
		},
		{
			"failure: remove a transfer id not in the list",
			func() {
				actions[0] = types.OverrideActionRemove
			},
			types.ErrNotInOverrideList,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initStore()

			caller = s.admin
			actions = oftesting.Repeat(types.OverrideActionAdd, 2)
			transferIDs = oftesting.GenerateTransferIDs(2)

			tc.malleate()

			before, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)
			events, err := s.keeper.ManageRateLimitOverrideTransferID(s.ctx, caller, s.escrow, actions, transferIDs)
			after, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)

			if tc.expErr == nil {
				s.Require().NoError(err)

				expected := make([]types.Event, len(actions))
				for i := range actions {
					expected[i] = types.EventRateLimitOverrideTransferIDUpdated{TransferID: transferIDs[i], Action: actions[i]}
				}
				s.Require().Equal(expected, events)
				s.Require().Equal(before.Registry.Principals, after.Registry.Principals)

				for i, transferID := range transferIDs {
					isOverride, err := s.keeper.IsRateLimitOverrideTransferID(s.ctx, s.escrow, transferID)
					s.Require().NoError(err)
					s.Require().Equal(after.Registry.TransferIDs.Contains(transferIDs[i]), isOverride)
				}
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(events)
				s.Require().Equal(before, after)
			}
		})
	}
}

func (s *KeeperTestSuite) TestIsRateLimitOverride_StoreNotFound() {
	_, err := s.keeper.IsRateLimitOverrideAddress(s.ctx, s.escrow, oftesting.GeneratePrincipal())
	s.Require().ErrorIs(err, types.ErrOFTStoreNotFound)

	_, err = s.keeper.IsRateLimitOverrideTransferID(s.ctx, s.escrow, oftesting.GenerateTransferID())
	s.Require().ErrorIs(err, types.ErrOFTStoreNotFound)
}
