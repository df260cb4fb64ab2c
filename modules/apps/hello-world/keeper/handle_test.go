package keeper_test

import (
	"errors"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/keeper"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
	"github.com/cosmos/xcall-dapp/testing/dapptesting"
)

var errRollbackFailed = errors.New("rollback failed")

// mockRollbackHandler records the rollbacks it is called with.
type mockRollbackHandler struct {
	calls []string
	err   error
}

func (m *mockRollbackHandler) OnRollbackReceived(_ sdk.Context, from types.NetworkAddress, data string) error {
	m.calls = append(m.calls, from.String()+":"+data)
	return m.err
}

func (s *KeeperTestSuite) TestHandleCallMessage() {
	var (
		caller string
		data   []byte
	)

	testCases := []struct {
		name      string
		malleate  func()
		expEvents []string
		expErr    error
	}{
		{
			"success: plain message",
			func() {},
			[]string{types.EventTypeMessageReceived},
			nil,
		},
		{
			"success: rollback sentinel",
			func() {
				data = []byte(types.RollbackSentinel)
			},
			[]string{types.EventTypeMessageReceived, types.EventTypeRollbackDataReceived},
			nil,
		},
		{
			"success: sentinel with trailing space is not a rollback",
			func() {
				data = []byte(types.RollbackSentinel + " ")
			},
			[]string{types.EventTypeMessageReceived},
			nil,
		},
		{
			"success: lower case sentinel is not a rollback",
			func() {
				data = []byte("executerollback")
			},
			[]string{types.EventTypeMessageReceived},
			nil,
		},
		{
			"success: empty payload",
			func() {
				data = []byte{}
			},
			[]string{types.EventTypeMessageReceived},
			nil,
		},
		{
			"failure: caller is not the gateway",
			func() {
				caller = s.stranger
			},
			nil,
			types.ErrUnauthorized,
		},
		{
			"failure: caller is not the gateway, rollback payload",
			func() {
				caller = s.stranger
				data = []byte(types.RollbackSentinel)
			},
			nil,
			types.ErrUnauthorized,
		},
		{
			"failure: caller is not the gateway, invalid utf-8",
			func() {
				caller = s.stranger
				data = []byte{0xff, 0xfe}
			},
			nil,
			types.ErrUnauthorized,
		},
		{
			"failure: caller differs from the gateway only by case",
			func() {
				caller = strings.ToUpper(s.gateway)
			},
			nil,
			types.ErrUnauthorized,
		},
		{
			"failure: caller is a prefix of the gateway",
			func() {
				caller = s.gateway[:len(s.gateway)-1]
			},
			nil,
			types.ErrUnauthorized,
		},
		{
			"failure: invalid utf-8",
			func() {
				data = []byte{0x68, 0x69, 0xc3, 0x28}
			},
			nil,
			types.ErrDecode,
		},
		{
			"failure: gateway not configured",
			func() {
				s.SetupTest()
			},
			nil,
			types.ErrGatewayNotConfigured,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.configureGateway()

			caller = s.gateway
			data = []byte("hello")

			tc.malleate()

			res, err := s.keeper.HandleCallMessage(s.ctx, caller, dapptesting.RemoteNetworkAddress, data)

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
				s.Require().Empty(s.ctx.EventManager().Events())
				return
			}

			s.Require().NoError(err)
			s.Require().Len(res.Events, len(tc.expEvents))
			s.Require().Empty(res.Messages)

			sdkEvents := s.ctx.EventManager().ABCIEvents()
			for i, eventType := range tc.expEvents {
				ev := res.Events[i]
				s.Require().Equal(eventType, ev.Type)
				s.Require().Len(ev.Attributes, 2)
				s.Require().Equal(types.AttributeKeyFrom, ev.Attributes[0].Key)
				s.Require().Equal(dapptesting.RemoteNetworkAddress.String(), ev.Attributes[0].Value)
				s.Require().Equal(types.AttributeKeyData, ev.Attributes[1].Key)
				s.Require().Equal(string(data), ev.Attributes[1].Value)

				emitted := dapptesting.ParseEventsByType(sdkEvents, eventType)
				s.Require().Len(emitted, 1)
				from, payload, err := dapptesting.ParseContractEvent(emitted[0])
				s.Require().NoError(err)
				s.Require().Equal(dapptesting.RemoteNetworkAddress.String(), from)
				s.Require().Equal(string(data), payload)
			}

			// MessageReceived always precedes RollbackDataReceived
			s.Require().Equal(types.EventTypeMessageReceived, sdkEvents[0].Type)
		})
	}
}

func (s *KeeperTestSuite) TestHandleCallMessageIsRepeatable() {
	s.configureGateway()

	first, err := s.keeper.HandleCallMessage(s.ctx, s.gateway, dapptesting.RemoteNetworkAddress, []byte(types.RollbackSentinel))
	s.Require().NoError(err)

	second, err := s.keeper.HandleCallMessage(s.ctx, s.gateway, dapptesting.RemoteNetworkAddress, []byte(types.RollbackSentinel))
	s.Require().NoError(err)

	s.Require().Equal(first, second)
}

func (s *KeeperTestSuite) TestHandleCallMessageRollbackHandler() {
	testCases := []struct {
		name     string
		data     string
		handler  *mockRollbackHandler
		expCalls int
		expErr   error
	}{
		{
			"success: handler called on rollback",
			types.RollbackSentinel,
			&mockRollbackHandler{},
			1,
			nil,
		},
		{
			"success: handler not called on plain message",
			"hello",
			&mockRollbackHandler{},
			0,
			nil,
		},
		{
			"failure: handler error aborts the call",
			types.RollbackSentinel,
			&mockRollbackHandler{err: errRollbackFailed},
			1,
			errRollbackFailed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			s.keeper = keeper.NewKeeper(s.storeService, dapptesting.AddressCodec, keeper.WithRollbackHandler(tc.handler))
			s.configureGateway()

			res, err := s.keeper.HandleCallMessage(s.ctx, s.gateway, dapptesting.RemoteNetworkAddress, []byte(tc.data))
			s.Require().Len(tc.handler.calls, tc.expCalls)

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
				s.Require().Empty(s.ctx.EventManager().Events())
				return
			}

			s.Require().NoError(err)
			if tc.expCalls > 0 {
				s.Require().Equal(dapptesting.RemoteNetworkAddress.String()+":"+tc.data, tc.handler.calls[0])
			}
		})
	}
}
