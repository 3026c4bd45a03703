package dear

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

const (
	headerAccountID = "api-auth-accountid"
	headerAppKey    = "api-auth-applicationkey"

	platformName     = "dear"
	maxResponseBytes = 4 << 20
)

// Client cliente de solo lectura de la API externa de Dear (Cin7 Core).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL es DEAR_URL; el BaseURL del cliente tiene prioridad.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithComponent("dear"),
	}
}

// get hace GET {base}/{path} con las credenciales del cliente y decodifica el JSON en out.
// op nombra la lectura en el UpstreamError.
func (c *Client) get(ctx context.Context, cfg *entity.ConnectorConfig, op, path string, out any) error {
	settings := cfg.Settings.Dear
	if settings == nil {
		return domain.NewMissingField("settings.dear")
	}
	base := c.baseURL
	if settings.BaseURL != "" {
		base = strings.TrimRight(settings.BaseURL, "/")
	}
	url := base + "/" + strings.TrimLeft(path, "/")

	upstream := func(err error) error {
		return &domain.UpstreamError{Platform: platformName, Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return upstream(err)
	}
	req.Header.Set(headerAccountID, settings.AccountID)
	req.Header.Set(headerAppKey, settings.AppKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("client_id", cfg.ClientID).Str("op", op).Msg("DEAR URL no disponible")
		return upstream(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return upstream(fmt.Errorf("leer respuesta: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Str("client_id", cfg.ClientID).Str("op", op).Int("status", resp.StatusCode).Msg("respuesta de error de Dear")
		return upstream(fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return upstream(fmt.Errorf("respuesta no es JSON válido: %w", err))
	}
	c.log.Debug().Str("client_id", cfg.ClientID).Str("op", op).Msg("lectura de Dear completada")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
