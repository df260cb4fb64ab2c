package keeper_test

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
	"github.com/cosmos/xcall-dapp/testing/dapptesting"
)

func (s *KeeperTestSuite) TestSendCallMessage() {
	var (
		funds    []wasmvmtypes.Coin
		data     []byte
		rollback []byte
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: no rollback",
			func() {},
			nil,
		},
		{
			"success: with rollback",
			func() {
				rollback = []byte(types.RollbackSentinel)
			},
			nil,
		},
		{
			"success: empty rollback is forwarded",
			func() {
				rollback = []byte{}
			},
			nil,
		},
		{
			"success: empty data",
			func() {
				data = nil
			},
			nil,
		},
		{
			"success: funds are forwarded",
			func() {
				funds = []wasmvmtypes.Coin{{Denom: "uatom", Amount: "100"}, {Denom: "stake", Amount: "1"}}
			},
			nil,
		},
		{
			"failure: gateway not configured",
			func() {
				s.SetupTest()
			},
			types.ErrGatewayNotConfigured,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.configureGateway()

			funds = nil
			data = []byte("hi")
			rollback = nil

			tc.malleate()

			res, err := s.keeper.SendCallMessage(s.ctx, funds, dapptesting.RemoteNetworkAddress, data, rollback)

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
				return
			}

			s.Require().NoError(err)
			s.Require().Len(res.Messages, 1)
			s.Require().Len(res.Attributes, 1)
			s.Require().Equal(types.AttributeKeyAction, res.Attributes[0].Key)
			s.Require().Equal(types.AttributeValueSendMessage, res.Attributes[0].Value)

			subMsg := res.Messages[0]
			s.Require().Equal(wasmvmtypes.ReplyNever, subMsg.ReplyOn)
			s.Require().NotNil(subMsg.Msg.Wasm)
			execMsg := subMsg.Msg.Wasm.Execute
			s.Require().NotNil(execMsg)
			s.Require().Equal(s.gateway, execMsg.ContractAddr)
			s.Require().Len(execMsg.Funds, len(funds))
			for i, coin := range funds {
				s.Require().Equal(coin, execMsg.Funds[i])
			}

			var gatewayMsg types.GatewayExecuteMsg
			s.Require().NoError(json.Unmarshal(execMsg.Msg, &gatewayMsg))
			envelope := gatewayMsg.SendCallMessage
			s.Require().NotNil(envelope)
			s.Require().Equal(dapptesting.RemoteNetworkAddress, envelope.To)
			s.Require().Equal(len(data), len(envelope.Data))
			if len(data) > 0 {
				s.Require().Equal(data, []byte(envelope.Data))
			}
			s.Require().Nil(envelope.Sources)
			s.Require().Nil(envelope.Destinations)

			if rollback == nil {
				s.Require().Nil(envelope.Rollback)
			} else {
				s.Require().NotNil(envelope.Rollback)
				s.Require().Equal(len(rollback), len(*envelope.Rollback))
				if len(rollback) > 0 {
					s.Require().Equal(rollback, []byte(*envelope.Rollback))
				}
			}

			sendEvents := dapptesting.ParseEventsByType(s.ctx.EventManager().ABCIEvents(), types.EventTypeSendCallMessage)
			s.Require().Len(sendEvents, 1)
		})
	}
}

func (s *KeeperTestSuite) TestSendCallMessageEnvelopeEncoding() {
	s.configureGateway()

	res, err := s.keeper.SendCallMessage(s.ctx, nil, dapptesting.RemoteNetworkAddress, []byte{0x68, 0x69}, nil)
	s.Require().NoError(err)
	s.Require().JSONEq(
		`{"send_call_message":{"to":"0x1.icon/0xabc","data":[104,105]}}`,
		string(res.Messages[0].Msg.Wasm.Execute.Msg),
	)

	res, err = s.keeper.SendCallMessage(s.ctx, nil, dapptesting.RemoteNetworkAddress, []byte{0x68, 0x69}, []byte{0x01})
	s.Require().NoError(err)
	s.Require().JSONEq(
		`{"send_call_message":{"to":"0x1.icon/0xabc","data":[104,105],"rollback":[1]}}`,
		string(res.Messages[0].Msg.Wasm.Execute.Msg),
	)
}

func (s *KeeperTestSuite) TestSendCallMessageDoesNotMutateState() {
	s.configureGateway()

	_, err := s.keeper.SendCallMessage(s.ctx, nil, dapptesting.RemoteNetworkAddress, []byte("hi"), nil)
	s.Require().NoError(err)

	gs, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.NewGenesisState(s.gateway), gs)
}
