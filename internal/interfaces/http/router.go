package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/auth"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/application/oauth"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Fiscal    *fiscal.Service
	Goods     *fiscal.GoodsService
	Sweeps    *fiscal.SweepService
	Journal   *fiscal.Journal
	XeroOAuth *oauth.Service
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas: webhooks (firma HMAC), OAuth2 de Xero y API de operadores (JWT).
func Router(app *fiber.App, deps RouterDeps) {
	operatorGuard := []fiber.Handler{
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleOperator),
	}
	operatorHandler := NewOperatorHandler(deps.Sweeps, deps.Goods, deps.Journal, deps.Log)

	// Dear (webhooks firmados)
	dear := app.Group("/dear")
	dearHandler := NewDearHandler(deps.Fiscal, deps.Goods, deps.Log)
	dear.Post("/invoice/:clientID", dearHandler.Invoice)
	dear.Post("/credit_note/:clientID", dearHandler.CreditNote)
	dear.Post("/goods_configure/:clientID", dearHandler.GoodsConfigure)
	dear.Post("/goods_adjust/:clientID", dearHandler.GoodsAdjust)

	// Xero (OAuth2 y webhook firmado). Las rutas fijas van antes de /:clientID.
	xero := app.Group("/xero")
	xeroHandler := NewXeroHandler(deps.Fiscal, deps.XeroOAuth, deps.Log)
	xero.Get("/callback/:clientID", xeroHandler.Callback)
	xero.Post("/webhook/:clientID", xeroHandler.Webhook)
	xero.Post("/bulk_goods_configure/:clientID", append(operatorGuard, operatorHandler.Sweep(fiscal.SweepConfigure))...)
	xero.Post("/bulk_goods_adjust/:clientID", append(operatorGuard, operatorHandler.Sweep(fiscal.SweepAdjust))...)
	xero.Get("/:clientID", xeroHandler.Authorize)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Operadores (protegido)
	clients := api.Group("/clients/:clientID", operatorGuard...)
	clients.Post("/bulk_goods_configure", operatorHandler.Sweep(fiscal.SweepConfigure))
	clients.Post("/bulk_goods_adjust", operatorHandler.Sweep(fiscal.SweepAdjust))
	clients.Post("/bulk_buyer_audit", operatorHandler.Sweep(fiscal.SweepAudit))
	clients.Post("/goods/configure", operatorHandler.ConfigureGoods)
	clients.Post("/goods/adjust", operatorHandler.AdjustGoods)
	clients.Get("/submissions", operatorHandler.Submissions)
}
