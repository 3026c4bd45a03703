package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Verificar en tiempo de compilación que MITAClient implementa GatewaySubmitter.
var _ ports.GatewaySubmitter = (*MITAClient)(nil)

// Cabeceras de autenticación del middleware MITA.
const (
	HeaderTaxID        = "x-tax-id"
	HeaderAPIToken     = "x-api-token"
	HeaderCountryCode  = "x-tax-country-code"
	HeaderAPIKeyHeader = "x-api-key-header"

	maxResponseBytes = 1 << 20
)

// MITAClient envía payloads JSON al middleware MITA (pasarela EFRIS).
// Un POST síncrono por envío; la respuesta se devuelve cruda y nunca se reintenta.
type MITAClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewMITAClient construye el cliente. baseURL es MITA_URL (sin barra final).
func NewMITAClient(baseURL string, timeout time.Duration, log *logger.Logger) *MITAClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MITAClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithComponent("gateway"),
	}
}

// Submit serializa el payload y lo envía a {baseURL}/{endpoint} con las cabeceras del cliente.
// Devuelve GatewayError solo ante fallos de transporte; un 4xx/5xx es una respuesta válida.
func (c *MITAClient) Submit(ctx context.Context, endpoint string, payload any, auth entity.GatewayAuth) (*ports.GatewayResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.GatewayError{Endpoint: endpoint, Err: fmt.Errorf("serializar payload: %w", err)}
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.GatewayError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTaxID, auth.TaxID)
	req.Header.Set(HeaderAPIToken, auth.APIToken)
	req.Header.Set(HeaderCountryCode, auth.CountryCode)
	if auth.APIKeyHeader != "" {
		req.Header.Set(HeaderAPIKeyHeader, auth.APIKeyHeader)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return nil, &domain.GatewayError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.GatewayError{Endpoint: endpoint, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("respuesta de la pasarela")
	return &ports.GatewayResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}
