package repository

//go:generate mockgen -source=client_repository.go -destination=mocks/client_repository_mock.go -package=mocks

import (
	"context"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// ClientRepository almacén de configuración por cliente (ConnectorConfig).
// GetConfig devuelve nil, nil si el cliente no existe.
type ClientRepository interface {
	GetConfig(ctx context.Context, clientID string) (*entity.ConnectorConfig, error)
	// SaveCredState persiste solo el estado OAuth2; última escritura gana.
	SaveCredState(ctx context.Context, clientID string, state *entity.CredState) error
	Create(ctx context.Context, cfg *entity.ConnectorConfig) error
	List(ctx context.Context, platform entity.Platform) ([]*entity.ConnectorConfig, error)
}
