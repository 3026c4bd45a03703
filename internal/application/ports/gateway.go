package ports

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

import (
	"context"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// GatewayResponse respuesta cruda de la pasarela; su esquema no se interpreta aquí.
type GatewayResponse struct {
	StatusCode int
	Body       []byte
}

// Accepted indica si la pasarela respondió 2xx.
func (r *GatewayResponse) Accepted() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// GatewaySubmitter envía payloads a la pasarela de fiscalización. Un solo POST, sin reintentos.
type GatewaySubmitter interface {
	Submit(ctx context.Context, endpoint string, payload any, auth entity.GatewayAuth) (*GatewayResponse, error)
}
