// Package bootstrap arma las dependencias compartidas por la API y por efrisctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paymojammn/taxmoja-app/internal/application/auth"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/application/oauth"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/dear"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/gateway"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/postgres"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/xero"
	"github.com/paymojammn/taxmoja-app/pkg/config"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Container servicios de aplicación listos para usar. Close libera el pool.
type Container struct {
	Pool      *pgxpool.Pool
	Clients   *postgres.ClientRepo
	Users     *postgres.UserRepo
	Fiscal    *fiscal.Service
	Goods     *fiscal.GoodsService
	Sweeps    *fiscal.SweepService
	Journal   *fiscal.Journal
	XeroOAuth *oauth.Service
	Auth      *auth.AuthUseCase
}

// Build conecta a PostgreSQL y registra los adaptadores de Dear y Xero.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	clientRepo := postgres.NewClientRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	mita := gateway.NewMITAClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, log)
	pipeline := fiscal.NewPipeline(mita, submissionRepo, log)

	dearAdapter := dear.NewAdapter(dear.NewClient(cfg.Dear.BaseURL, cfg.Dear.Timeout, log), log)
	xeroClient := xero.NewClient(cfg.Xero, clientRepo, log)
	xeroAdapter := xero.NewAdapter(xeroClient, log)

	svc := fiscal.NewService(clientRepo, pipeline, log, dearAdapter, xeroAdapter)

	return &Container{
		Pool:      pool,
		Clients:   clientRepo,
		Users:     userRepo,
		Fiscal:    svc,
		Goods:     fiscal.NewGoodsService(svc, pipeline, log),
		Sweeps:    fiscal.NewSweepService(svc, pipeline, log),
		Journal:   fiscal.NewJournal(svc, submissionRepo),
		XeroOAuth: oauth.NewService(clientRepo, xeroClient, log),
		Auth: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
	}, nil
}

// Close cierra el pool de conexiones.
func (c *Container) Close() {
	if c != nil && c.Pool != nil {
		c.Pool.Close()
	}
}
