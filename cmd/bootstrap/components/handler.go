package components

import (
	"context"

	"coupon-swap/internal/handler"
	"coupon-swap/internal/handler/api"
	"coupon-swap/internal/handler/ws"
	"coupon-swap/internal/pkg/config"
	"coupon-swap/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTradeHandler,
		api.NewCouponHandler,
		api.NewUserHandler,
		ws.NewHub,
		func(h *ws.Hub) commands.TradeNotifier { return h },
		func(cfg config.Config) config.WSConfig { return cfg.WS },
		ws.NewHandler,
	),
	fx.Invoke(runHub),
	fx.Invoke(handler.NewRouter),
)

func runHub(lc fx.Lifecycle, hub *ws.Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
