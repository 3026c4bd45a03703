package entity

import "time"

// Estados de la conexión OAuth2 de un cliente.
const (
	AuthStateUnauthenticated        = "unauthenticated"
	AuthStateAuthorizationRequested = "authorization_requested"
	AuthStateAuthenticated          = "authenticated"
)

// CredState estado OAuth2 persistido de la conexión con la plataforma.
type CredState struct {
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	TenantID     string    `json:"tenant_id,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
	OAuthState   string    `json:"oauth_state,omitempty"` // nonce del flujo de autorización en curso
	Status       string    `json:"status"`
}

// AuthStatus resuelve el estado de la máquina de autenticación; Expired se deriva del reloj.
func (c *CredState) AuthStatus() string {
	if c == nil || c.Status == "" {
		return AuthStateUnauthenticated
	}
	return c.Status
}

// Expired indica si el access token ya venció (con margen).
func (c *CredState) Expired(now time.Time, leeway time.Duration) bool {
	if c == nil || c.AccessToken == "" {
		return true
	}
	if c.Expiry.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(c.Expiry)
}
