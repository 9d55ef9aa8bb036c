package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coupon-swap/internal/handler/api"
	"coupon-swap/internal/handler/middleware"
	"coupon-swap/internal/handler/ws"
	"coupon-swap/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	tradeHandler *api.TradeHandler,
	couponHandler *api.CouponHandler,
	userHandler *api.UserHandler,
	wsHandler *ws.Handler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, tradeHandler, couponHandler, userHandler, wsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	tradeHandler *api.TradeHandler,
	couponHandler *api.CouponHandler,
	userHandler *api.UserHandler,
	wsHandler *ws.Handler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws", wsHandler.Serve)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		trades := apiGroup.Group("/trades")
		{
			addRoutes(trades, []route{
				{Method: http.MethodPost, Path: "", Handler: tradeHandler.Create},
				{Method: http.MethodGet, Path: "/open/:uid", Handler: tradeHandler.ListOpen},
				{Method: http.MethodGet, Path: "/:id", Handler: tradeHandler.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: tradeHandler.Confirm},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Upload},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: couponHandler.Search},
				{Method: http.MethodGet, Path: "/matches/:uid", Handler: couponHandler.Matches},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: userHandler.Signup},
				{Method: http.MethodGet, Path: "/:id", Handler: userHandler.Get},
				{Method: http.MethodPut, Path: "/:id/preferences", Handler: userHandler.UpdatePreferences},
				{Method: http.MethodGet, Path: "/:id/wallet", Handler: userHandler.Wallet},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
