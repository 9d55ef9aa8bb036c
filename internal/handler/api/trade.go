package api

import (
	"net/http"

	reqdto "coupon-swap/internal/handler/dto/request"
	resdto "coupon-swap/internal/handler/dto/response"
	"coupon-swap/internal/handler/httperr"
	"coupon-swap/internal/usecase/commands"
	"coupon-swap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TradeHandler struct {
	cmds commands.TradeCommands
	q    queries.TradeQueries
}

func NewTradeHandler(cmds commands.TradeCommands, q queries.TradeQueries) *TradeHandler {
	return &TradeHandler{cmds: cmds, q: q}
}

// @Summary Create trade
// @Description Propose a two-party coupon swap tied to a chat room
// @Tags trades
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTradeRequest true "Create trade request"
// @Success 201 {object} resdto.TradeResponse
// @Failure 400 {object} map[string]string
// @Router /trades [post]
func (h *TradeHandler) Create(c *gin.Context) {
	var req reqdto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateTrade(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Create trade failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTradeView(view))
}

// @Summary Confirm trade
// @Description Record a party's confirmation; the second confirmation settles the swap
// @Tags trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID"
// @Param request body reqdto.ConfirmTradeRequest true "Confirm trade request"
// @Success 200 {object} resdto.TradeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trades/{id}/confirm [post]
func (h *TradeHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ConfirmTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ConfirmTrade(c.Request.Context(), id, req.UserID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Confirm trade failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeView(view))
}

// @Summary Get trade
// @Description Get a trade by ID
// @Tags trades
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trades/{id} [get]
func (h *TradeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeView(view))
}

// @Summary List open trades
// @Description List pending and waiting trades for a user, newest first
// @Tags trades
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string][]resdto.TradeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trades/open/{uid} [get]
func (h *TradeHandler) ListOpen(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	views, err := h.q.ListOpenByUser(c.Request.Context(), uid)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list open trades", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": resdto.FromTradeList(views)})
}
