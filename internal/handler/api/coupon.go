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

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Upload coupon
// @Description Register a coupon and place it in the owner's wallet
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.UploadCouponRequest true "Upload coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Upload(c *gin.Context) {
	var req reqdto.UploadCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UploadCoupon(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Upload coupon failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Get coupon
// @Description Get a coupon by ID
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description List the whole coupon catalog, newest first
// @Tags coupons
// @Produce json
// @Success 200 {object} map[string][]resdto.CouponResponse
// @Failure 500 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": resdto.FromCouponList(views)})
}

// @Summary Coupon matches
// @Description Score other users' coupons against the user's preferences
// @Tags coupons
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string][]resdto.CouponMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/matches/{uid} [get]
func (h *CouponHandler) Matches(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	views, err := h.q.MatchesForUser(c.Request.Context(), uid)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to compute matches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": resdto.FromCouponMatches(views)})
}

// @Summary Search coupons
// @Description Keyword search over platform, category, value and expiry
// @Tags coupons
// @Produce json
// @Param q query string true "Whitespace-separated keywords"
// @Param sort query string false "Expiry sort order (asc or desc)"
// @Success 200 {object} map[string][]resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/search [get]
func (h *CouponHandler) Search(c *gin.Context) {
	order := queries.SortNone
	switch c.Query("sort") {
	case "asc":
		order = queries.SortAsc
	case "desc":
		order = queries.SortDesc
	}
	views, err := h.q.Search(c.Request.Context(), c.Query("q"), order)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": resdto.FromCouponList(views)})
}
