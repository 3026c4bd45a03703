package ports

//go:generate mockgen -source=oauth.go -destination=mocks/oauth_mock.go -package=mocks

import (
	"context"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// OAuthProvider flujo de autorización OAuth2 de una plataforma.
type OAuthProvider interface {
	Platform() entity.Platform
	// AuthorizationURL arma la URL de consentimiento con el nonce state.
	AuthorizationURL(cfg *entity.ConnectorConfig, state string) (string, error)
	// Exchange canjea el código y resuelve el tenant por defecto.
	Exchange(ctx context.Context, cfg *entity.ConnectorConfig, code string) (*entity.CredState, error)
}
