//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"coupon-swap/internal/handler/api"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/queries"
	"coupon-swap/tests/common/builder"
	"coupon-swap/tests/common/httptest"
	commandsmock "coupon-swap/tests/mock/commands"
	queriesmock "coupon-swap/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TradeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTradeCommands
	mockQueries  *queriesmock.MockTradeQueries
	handler      *api.TradeHandler
}

func (s *TradeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTradeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTradeQueries(s.mockCtrl)
	s.handler = api.NewTradeHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/trades", s.handler.Create)
	s.router.POST("/trades/:id/confirm", s.handler.Confirm)
	s.router.GET("/trades/:id", s.handler.Get)
	s.router.GET("/trades/open/:uid", s.handler.ListOpen)
}

func (s *TradeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTradeHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradeHandlerTestSuite))
}

func (s *TradeHandlerTestSuite) TestCreate() {
	url := "/trades"

	b := builder.NewTradeBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateTrade(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(returnView.ID.String(), resp["id"])
		s.Equal("pending", resp["status"])
	})

	s.Run("validation: missing room_id returns 400", func() {
		body := map[string]any{
			"party_a":       b.PartyA.String(),
			"party_b":       b.PartyB.String(),
			"coupon_from_a": b.CouponFromA.String(),
			"coupon_from_b": b.CouponFromB.String(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("domain validation error returns 400", func() {
		s.mockCommands.EXPECT().CreateTrade(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TradeHandlerTestSuite) TestConfirm() {
	b := builder.NewTradeBuilder()
	url := "/trades/" + b.ID.String() + "/confirm"
	reqBody := map[string]any{"user_id": b.PartyA.String()}

	s.Run("success: returns the updated snapshot", func() {
		view := b.With(func(tb *builder.TradeBuilder) {
			tb.Status = "waiting"
			tb.ConfirmedBy = []uuid.UUID{tb.PartyA}
			tb.Version = 2
		}).BuildView()

		s.mockCommands.EXPECT().ConfirmTrade(gomock.Any(), b.ID, b.PartyA).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("waiting", resp["status"])
	})

	s.Run("invalid trade id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/trades/not-a-uuid/confirm", reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown trade returns 404", func() {
		s.mockCommands.EXPECT().ConfirmTrade(gomock.Any(), b.ID, b.PartyA).
			Return(nil, errs.ErrTradeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("non-participant returns 403", func() {
		s.mockCommands.EXPECT().ConfirmTrade(gomock.Any(), b.ID, b.PartyA).
			Return(nil, errs.ErrNotTradeParty).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("lost ownership returns 409", func() {
		s.mockCommands.EXPECT().ConfirmTrade(gomock.Any(), b.ID, b.PartyA).
			Return(nil, errs.ErrCouponNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *TradeHandlerTestSuite) TestGet() {
	b := builder.NewTradeBuilder()

	s.Run("success: returns the trade", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/"+b.ID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown trade returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(nil, errs.ErrTradeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/"+b.ID.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TradeHandlerTestSuite) TestListOpen() {
	uid := uuid.New()

	s.Run("success: wraps open trades in a list payload", func() {
		views := []*queries.TradeView{
			builder.NewTradeBuilder().BuildView(),
			builder.NewTradeBuilder().With(func(tb *builder.TradeBuilder) {
				tb.Status = "waiting"
			}).BuildView(),
		}
		s.mockQueries.EXPECT().ListOpenByUser(gomock.Any(), uid).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/open/"+uid.String(), nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string][]map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Len(resp["trades"], 2)
	})

	s.Run("invalid user id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trades/open/nope", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
