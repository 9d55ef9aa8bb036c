// Hand-maintained gomock doubles for the trade command interfaces.
// Keep method signatures in sync with internal/usecase/commands.

package commandsmock

import (
	"context"
	"reflect"

	"coupon-swap/internal/usecase/commands"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type MockTradeCommands struct {
	ctrl     *gomock.Controller
	recorder *MockTradeCommandsMockRecorder
}

type MockTradeCommandsMockRecorder struct {
	mock *MockTradeCommands
}

func NewMockTradeCommands(ctrl *gomock.Controller) *MockTradeCommands {
	mock := &MockTradeCommands{ctrl: ctrl}
	mock.recorder = &MockTradeCommandsMockRecorder{mock}
	return mock
}

func (m *MockTradeCommands) EXPECT() *MockTradeCommandsMockRecorder {
	return m.recorder
}

func (m *MockTradeCommands) CreateTrade(ctx context.Context, cmd commands.CreateTradeCommand) (*queries.TradeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTrade", ctx, cmd)
	ret0, _ := ret[0].(*queries.TradeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTradeCommandsMockRecorder) CreateTrade(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTrade", reflect.TypeOf((*MockTradeCommands)(nil).CreateTrade), ctx, cmd)
}

func (m *MockTradeCommands) ConfirmTrade(ctx context.Context, tradeID, uid uuid.UUID) (*queries.TradeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfirmTrade", ctx, tradeID, uid)
	ret0, _ := ret[0].(*queries.TradeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTradeCommandsMockRecorder) ConfirmTrade(ctx, tradeID, uid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmTrade", reflect.TypeOf((*MockTradeCommands)(nil).ConfirmTrade), ctx, tradeID, uid)
}
