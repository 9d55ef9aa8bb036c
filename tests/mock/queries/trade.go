// Hand-maintained gomock doubles for the trade query interfaces.
// Keep method signatures in sync with internal/usecase/queries.

package queriesmock

import (
	"context"
	"reflect"

	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type MockTradeQueries struct {
	ctrl     *gomock.Controller
	recorder *MockTradeQueriesMockRecorder
}

type MockTradeQueriesMockRecorder struct {
	mock *MockTradeQueries
}

func NewMockTradeQueries(ctrl *gomock.Controller) *MockTradeQueries {
	mock := &MockTradeQueries{ctrl: ctrl}
	mock.recorder = &MockTradeQueriesMockRecorder{mock}
	return mock
}

func (m *MockTradeQueries) EXPECT() *MockTradeQueriesMockRecorder {
	return m.recorder
}

func (m *MockTradeQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.TradeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.TradeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTradeQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTradeQueries)(nil).GetByID), ctx, id)
}

func (m *MockTradeQueries) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TradeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOpenByUser", ctx, userID)
	ret0, _ := ret[0].([]*queries.TradeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTradeQueriesMockRecorder) ListOpenByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOpenByUser", reflect.TypeOf((*MockTradeQueries)(nil).ListOpenByUser), ctx, userID)
}
