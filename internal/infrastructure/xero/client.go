package xero

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
	"github.com/paymojammn/taxmoja-app/pkg/config"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa OAuthProvider.
var _ ports.OAuthProvider = (*Client)(nil)

const (
	platformName     = "xero"
	headerTenantID   = "xero-tenant-id"
	maxResponseBytes = 8 << 20

	// expiryLeeway el token se refresca si vence dentro de este margen.
	expiryLeeway = time.Minute
)

// Scopes permisos solicitados en la autorización.
var Scopes = []string{
	"offline_access",
	"accounting.transactions",
	"accounting.contacts",
	"accounting.settings",
	"accounting.attachments",
	"accounting.attachments.read",
}

var errNotConnected = errors.New("el cliente no ha completado la autorización OAuth2")

// Client cliente de la API contable de Xero con OAuth2 por cliente.
// Antes de cada llamada refresca el token si venció y persiste el nuevo estado.
type Client struct {
	endpoints  config.XeroConfig
	httpClient *http.Client
	clients    repository.ClientRepository
	log        *logger.Logger
	now        func() time.Time
}

// NewClient construye el cliente con los endpoints configurados (XERO_*).
func NewClient(endpoints config.XeroConfig, clients repository.ClientRepository, log *logger.Logger) *Client {
	timeout := endpoints.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	endpoints.APIBaseURL = strings.TrimRight(endpoints.APIBaseURL, "/")
	return &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: timeout},
		clients:    clients,
		log:        log.WithComponent("xero"),
		now:        time.Now,
	}
}

// Platform implementa ports.OAuthProvider.
func (c *Client) Platform() entity.Platform { return entity.PlatformXero }

func (c *Client) oauthConfig(cfg *entity.ConnectorConfig) (*oauth2.Config, error) {
	s := cfg.Settings.Xero
	if s == nil {
		return nil, domain.NewMissingField("settings.xero")
	}
	if s.ClientID == "" {
		return nil, domain.NewMissingField("settings.xero.client_id")
	}
	return &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURL:  s.CallbackURI,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.endpoints.AuthURL,
			TokenURL:  c.endpoints.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}, nil
}

// oauthContext hace que x/oauth2 use el cliente HTTP con timeout.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// AuthorizationURL implementa ports.OAuthProvider.
func (c *Client) AuthorizationURL(cfg *entity.ConnectorConfig, state string) (string, error) {
	conf, err := c.oauthConfig(cfg)
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state), nil
}

// Exchange canjea el código de autorización y elige el tenant por defecto.
func (c *Client) Exchange(ctx context.Context, cfg *entity.ConnectorConfig, code string) (*entity.CredState, error) {
	conf, err := c.oauthConfig(cfg)
	if err != nil {
		return nil, err
	}
	tok, err := conf.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("canje de código: %w", err)
	}
	tenantID, err := c.defaultTenant(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}
	return &entity.CredState{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
		TenantID:     tenantID,
		Scopes:       Scopes,
		Status:       entity.AuthStateAuthenticated,
	}, nil
}

// defaultTenant primera organización autorizada; si no hay, la primera conexión.
func (c *Client) defaultTenant(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.ConnectionsURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	body, status, err := c.send(req)
	if err != nil {
		return "", &domain.UpstreamError{Platform: platformName, Op: "connections", Err: err}
	}
	if status < 200 || status >= 300 {
		return "", &domain.UpstreamError{Platform: platformName, Op: "connections", Err: fmt.Errorf("HTTP %d: %s", status, truncate(string(body), 200))}
	}
	var conns []connection
	if err := json.Unmarshal(body, &conns); err != nil {
		return "", &domain.UpstreamError{Platform: platformName, Op: "connections", Err: err}
	}
	if len(conns) == 0 {
		return "", errors.New("la autorización no incluye ninguna organización")
	}
	for _, conn := range conns {
		if strings.EqualFold(conn.TenantType, "ORGANISATION") {
			return conn.TenantID, nil
		}
	}
	return conns[0].TenantID, nil
}

// token devuelve un access token vigente. Si el almacenado vence dentro de expiryLeeway
// se refresca y el nuevo estado se persiste antes de continuar (última escritura gana).
func (c *Client) token(ctx context.Context, cfg *entity.ConnectorConfig) (*oauth2.Token, error) {
	conf, err := c.oauthConfig(cfg)
	if err != nil {
		return nil, err
	}
	cred := cfg.CredState
	if cred == nil || (cred.AccessToken == "" && cred.RefreshToken == "") {
		return nil, &domain.AuthError{Platform: platformName, Err: errNotConnected}
	}
	current := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    cred.TokenType,
		Expiry:       cred.Expiry,
	}
	if cred.Expired(c.now(), expiryLeeway) {
		current.AccessToken = "" // obliga a x/oauth2 a refrescar
	}
	tok, err := conf.TokenSource(c.oauthContext(ctx), current).Token()
	if err != nil {
		c.log.Error().Err(err).Str("client_id", cfg.ClientID).Msg("refresco del token OAuth2 fallido")
		return nil, &domain.AuthError{Platform: platformName, Err: err}
	}
	if tok.AccessToken == cred.AccessToken {
		return tok, nil
	}

	next := *cred
	next.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		next.RefreshToken = tok.RefreshToken
	}
	next.TokenType = tok.TokenType
	next.Expiry = tok.Expiry
	next.Status = entity.AuthStateAuthenticated
	if err := c.clients.SaveCredState(ctx, cfg.ClientID, &next); err != nil {
		return nil, fmt.Errorf("guardar credenciales refrescadas: %w", err)
	}
	cfg.CredState = &next
	c.log.Info().Str("client_id", cfg.ClientID).Time("expiry", next.Expiry).Msg("token OAuth2 refrescado")
	return tok, nil
}

// call ejecuta {APIBaseURL}/{path} con el token y el tenant del cliente y devuelve el cuerpo.
// op nombra la operación en los errores.
func (c *Client) call(ctx context.Context, cfg *entity.ConnectorConfig, method, op, path, accept string, payload any) ([]byte, error) {
	tok, err := c.token(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CredState.TenantID == "" {
		return nil, domain.NewMissingField("cred_state.tenant_id")
	}
	upstream := func(err error) error {
		return &domain.UpstreamError{Platform: platformName, Op: op, Err: err}
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("serializar %s: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoints.APIBaseURL+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return nil, upstream(err)
	}
	tok.SetAuthHeader(req)
	req.Header.Set(headerTenantID, cfg.CredState.TenantID)
	req.Header.Set("Accept", accept)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	raw, status, err := c.send(req)
	if err != nil {
		c.log.Error().Err(err).Str("client_id", cfg.ClientID).Str("op", op).Msg("Xero no disponible")
		return nil, upstream(err)
	}
	switch {
	case status == http.StatusUnauthorized:
		return nil, &domain.AuthError{Platform: platformName, Err: fmt.Errorf("%s: HTTP 401", op)}
	case status < 200 || status >= 300:
		c.log.Warn().Str("client_id", cfg.ClientID).Str("op", op).Int("status", status).Msg("respuesta de error de Xero")
		return nil, upstream(fmt.Errorf("HTTP %d: %s", status, truncate(string(raw), 200)))
	}
	return raw, nil
}

// getJSON GET y decodificación en out.
func (c *Client) getJSON(ctx context.Context, cfg *entity.ConnectorConfig, op, path string, out any) error {
	raw, err := c.call(ctx, cfg, http.MethodGet, op, path, "application/json", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.UpstreamError{Platform: platformName, Op: op, Err: fmt.Errorf("respuesta no es JSON válido: %w", err)}
	}
	return nil
}

// put PUT con cuerpo JSON; Xero usa PUT para crear.
func (c *Client) put(ctx context.Context, cfg *entity.ConnectorConfig, op, path string, payload any) error {
	_, err := c.call(ctx, cfg, http.MethodPut, op, path, "application/json", payload)
	return err
}

// download contenido binario de un adjunto.
func (c *Client) download(ctx context.Context, cfg *entity.ConnectorConfig, op, path, mimeType string) ([]byte, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return c.call(ctx, cfg, http.MethodGet, op, path, mimeType, nil)
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("leer respuesta: %w", err)
	}
	return raw, resp.StatusCode, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
