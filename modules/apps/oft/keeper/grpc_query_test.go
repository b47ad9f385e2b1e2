package keeper_test

import (
	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	oftesting "github.com/oft-labs/oft-policy/testing"
)

func (s *KeeperTestSuite) TestQueryOFTStore() {
	expected := s.initStore()

	res, err := s.keeper.OFTStore(s.ctx, &types.QueryOFTStoreRequest{Escrow: s.escrow.String()})
	s.Require().NoError(err)
	s.Require().Equal(expected, res.Store)

	_, err = s.keeper.OFTStore(s.ctx, &types.QueryOFTStoreRequest{Escrow: ""})
	s.Require().ErrorIs(err, coreerrors.ErrInvalidRequest)

	_, err = s.keeper.OFTStore(s.ctx, &types.QueryOFTStoreRequest{Escrow: "not-base58!"})
	s.Require().ErrorIs(err, types.ErrInvalidPrincipal)

	_, err = s.keeper.OFTStore(s.ctx, &types.QueryOFTStoreRequest{Escrow: oftesting.GeneratePrincipal().String()})
	s.Require().ErrorIs(err, types.ErrOFTStoreNotFound)
}

func (s *KeeperTestSuite) TestQueryAllOFTStores() {
	res, err := s.keeper.AllOFTStores(s.ctx, &types.QueryAllOFTStoresRequest{})
	s.Require().NoError(err)
	s.Require().Empty(res.Stores)

	expected := s.initStore()
	res, err = s.keeper.AllOFTStores(s.ctx, &types.QueryAllOFTStoresRequest{})
	s.Require().NoError(err)
	s.Require().Equal([]types.OFTStore{expected}, res.Stores)
}

func (s *KeeperTestSuite) TestQueryRateLimitOverrides() {
	s.initStore()
	addresses := oftesting.GeneratePrincipals(2)
	transferIDs := oftesting.GenerateTransferIDs(1)

	_, err := s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 2), addresses)
	s.Require().NoError(err)
	_, err = s.keeper.ManageRateLimitOverrideTransferID(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 1), transferIDs)
	s.Require().NoError(err)

	res, err := s.keeper.RateLimitOverrides(s.ctx, &types.QueryRateLimitOverridesRequest{Escrow: s.escrow.String()})
	s.Require().NoError(err)
	s.Require().Equal(&types.QueryRateLimitOverridesResponse{
		Addresses:                       addresses,
		TransferIDs:                     transferIDs,
		MaxRateLimitOverrides:           types.DefaultMaxRateLimitOverrides,
		MaxRateLimitOverrideTransferIDs: types.DefaultMaxRateLimitOverrideTransferIDs,
	}, res)
}

func (s *KeeperTestSuite) TestQueryIsRateLimitOverride() {
	var req *types.QueryIsRateLimitOverrideRequest

	address := oftesting.GeneratePrincipal()
	transferID := oftesting.GenerateTransferID()

	testCases := []struct {
		name          string
		malleate      func()
		expOverridden bool
		expErr        error
	}{
		{
			"success: overridden address",
			func() {
				req.Address = address.String()
			},
			true,
			nil,
		},
		{
			"success: address not overridden",
			func() {
				req.Address = oftesting.GeneratePrincipal().String()
			},
			false,
			nil,
		},
		{
			"success: overridden transfer id",
			func() {
				req.TransferID = transferID.String()
			},
			true,
			nil,
		},
		{
			"success: transfer id not overridden",
			func() {
				req.TransferID = oftesting.GenerateTransferID().String()
			},
			false,
			nil,
		},
		{
			"failure: neither address nor transfer id",
			func() {},
			false,
			coreerrors.ErrInvalidRequest,
		},
		{
			"failure: both address and transfer id",
			func() {
				req.Address = address.String()
				req.TransferID = transferID.String()
			},
			false,
			coreerrors.ErrInvalidRequest,
		},
		{
			"failure: invalid transfer id",
			func() {
				req.TransferID = "zz"
			},
			false,
			types.ErrInvalidTransferID,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initStore()

			_, err := s.keeper.ManageRateLimitOverride(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 1), []types.PrincipalID{address})
			s.Require().NoError(err)
			_, err = s.keeper.ManageRateLimitOverrideTransferID(s.ctx, s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 1), []types.TransferID{transferID})
			s.Require().NoError(err)

			req = &types.QueryIsRateLimitOverrideRequest{Escrow: s.escrow.String()}

			tc.malleate()

			res, err := s.keeper.IsRateLimitOverride(s.ctx, req)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(tc.expOverridden, res.Overridden)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryConvertAmount() {
	s.initStore()

	res, err := s.keeper.ConvertAmount(s.ctx, &types.QueryConvertAmountRequest{Escrow: s.escrow.String(), AmountLD: 1_234_567_891_234})
	s.Require().NoError(err)
	s.Require().Equal(&types.QueryConvertAmountResponse{
		AmountSD:       1_234,
		AmountLDNoDust: 1_234_000_000_000,
		DustLD:         567_891_234,
	}, res)
}

func (s *KeeperTestSuite) TestQueryDebitView() {
	s.params.DefaultFeeBps = 100
	s.initStore()

	res, err := s.keeper.DebitView(s.ctx, &types.QueryDebitViewRequest{Escrow: s.escrow.String(), AmountLD: 10_500_000_000})
	s.Require().NoError(err)
	s.Require().Equal(&types.QueryDebitViewResponse{
		AmountSentLD:     10_000_000_000,
		AmountReceivedLD: 9_000_000_000,
		FeeLD:            1_000_000_000,
	}, res)

	_, err = s.keeper.DebitView(s.ctx, &types.QueryDebitViewRequest{Escrow: s.escrow.String(), AmountLD: 10_500_000_000, MinAmountLD: 9_500_000_000})
	s.Require().ErrorIs(err, types.ErrSlippageExceeded)

	_, err = s.keeper.SetPause(s.ctx, *s.params.Pauser, s.escrow, true)
	s.Require().NoError(err)
	_, err = s.keeper.DebitView(s.ctx, &types.QueryDebitViewRequest{Escrow: s.escrow.String(), AmountLD: 10_500_000_000})
	s.Require().ErrorIs(err, types.ErrPaused)
}

func (s *KeeperTestSuite) TestQueryCreditView() {
	s.initStore()

	res, err := s.keeper.CreditView(s.ctx, &types.QueryCreditViewRequest{Escrow: s.escrow.String(), AmountSD: 42})
	s.Require().NoError(err)
	s.Require().Equal(uint64(42_000_000_000), res.AmountReceivedLD)

	_, err = s.keeper.CreditView(s.ctx, &types.QueryCreditViewRequest{Escrow: s.escrow.String(), AmountSD: ^uint64(0)})
	s.Require().ErrorIs(err, types.ErrAmountOverflow)
}
