package keeper_test

import (
	"strings"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
	"github.com/cosmos/xcall-dapp/testing/dapptesting"
)

func (s *KeeperTestSuite) TestInitializeGateway() {
	var address string

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"failure: empty address",
			func() {
				address = ""
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: not bech32",
			func() {
				address = "wasm1gateway"
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: wrong bech32 prefix",
			func() {
				bz := dapptesting.NewAccAddress("gateway")
				cosmosAddr, err := types.Config{Bech32Prefix: "cosmos"}.AddressCodec().BytesToString(bz)
				s.Require().NoError(err)
				address = cosmosAddr
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: upper case address is not normalized",
			func() {
				address = strings.ToUpper(address)
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: gateway already configured",
			func() {
				s.configureGateway()
			},
			types.ErrGatewayAlreadyConfigured,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			address = s.gateway

			tc.malleate()

			err := s.keeper.InitializeGateway(s.ctx, address)

			if tc.expErr == nil {
				s.Require().NoError(err)

				gateway, err := s.keeper.GetGateway(s.ctx)
				s.Require().NoError(err)
				s.Require().Equal(address, gateway)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *KeeperTestSuite) TestInvalidAddressPersistsNothing() {
	err := s.keeper.InitializeGateway(s.ctx, "not-an-address")
	s.Require().ErrorIs(err, types.ErrInvalidAddress)

	_, err = s.keeper.GetGateway(s.ctx)
	s.Require().ErrorIs(err, types.ErrGatewayNotConfigured)

	has, err := s.keeper.XCallAddress.Has(s.ctx)
	s.Require().NoError(err)
	s.Require().False(has)
}

func (s *KeeperTestSuite) TestGetGateway() {
	_, err := s.keeper.GetGateway(s.ctx)
	s.Require().ErrorIs(err, types.ErrGatewayNotConfigured)

	s.configureGateway()

	gateway, err := s.keeper.GetGateway(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.gateway, gateway)
}
