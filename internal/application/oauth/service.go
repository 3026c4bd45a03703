// Package oauth flujo de autorización OAuth2 con plataformas contables:
// Unauthenticated → AuthorizationRequested → Authenticated.
package oauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

var errStateMismatch = errors.New("state OAuth2 no coincide")

// Service inicia y completa la conexión OAuth2 de un cliente.
type Service struct {
	clients  repository.ClientRepository
	provider ports.OAuthProvider
	log      *logger.Logger
	newState func() string
}

// NewService construye el servicio para el proveedor dado.
func NewService(clients repository.ClientRepository, provider ports.OAuthProvider, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		clients:  clients,
		provider: provider,
		log:      log.WithComponent("oauth"),
		newState: func() string { return uuid.New().String() },
	}
}

func (s *Service) config(ctx context.Context, clientID string) (*entity.ConnectorConfig, error) {
	cfg, err := s.clients.GetConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.Active {
		return nil, fmt.Errorf("cliente %s: %w", clientID, domain.ErrNotFound)
	}
	if cfg.Platform != s.provider.Platform() {
		return nil, fmt.Errorf("%w: %s no usa OAuth2 de %s", domain.ErrUnsupportedPlatform, cfg.Platform, s.provider.Platform())
	}
	return cfg, nil
}

// Start genera un nonce, lo persiste y devuelve la URL de consentimiento.
func (s *Service) Start(ctx context.Context, clientID string) (string, error) {
	cfg, err := s.config(ctx, clientID)
	if err != nil {
		return "", err
	}
	state := s.newState()
	authURL, err := s.provider.AuthorizationURL(cfg, state)
	if err != nil {
		return "", err
	}
	cred := entity.CredState{}
	if cfg.CredState != nil {
		cred = *cfg.CredState
	}
	cred.OAuthState = state
	cred.Status = entity.AuthStateAuthorizationRequested
	if err := s.clients.SaveCredState(ctx, clientID, &cred); err != nil {
		return "", fmt.Errorf("guardar estado OAuth2: %w", err)
	}
	s.log.Info().Str("client_id", clientID).Msg("autorización OAuth2 solicitada")
	return authURL, nil
}

// Callback valida el state recibido, canjea el código y persiste las credenciales.
func (s *Service) Callback(ctx context.Context, clientID, state, code string) error {
	cfg, err := s.config(ctx, clientID)
	if err != nil {
		return err
	}
	platform := string(cfg.Platform)
	if cfg.CredState == nil || cfg.CredState.OAuthState == "" || cfg.CredState.AuthStatus() != entity.AuthStateAuthorizationRequested {
		return &domain.AuthError{Platform: platform, Err: errors.New("no hay una autorización en curso")}
	}
	if subtle.ConstantTimeCompare([]byte(state), []byte(cfg.CredState.OAuthState)) != 1 {
		s.log.Warn().Str("client_id", clientID).Msg("callback OAuth2 con state inválido")
		return &domain.AuthError{Platform: platform, Err: errStateMismatch}
	}
	if code == "" {
		return domain.NewMissingField("code")
	}
	cred, err := s.provider.Exchange(ctx, cfg, code)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", clientID).Msg("canje del código OAuth2 fallido")
		return &domain.AuthError{Platform: platform, Err: err}
	}
	cred.OAuthState = ""
	cred.Status = entity.AuthStateAuthenticated
	if err := s.clients.SaveCredState(ctx, clientID, cred); err != nil {
		return fmt.Errorf("guardar credenciales OAuth2: %w", err)
	}
	s.log.Info().Str("client_id", clientID).Str("tenant_id", cred.TenantID).Msg("cliente autenticado")
	return nil
}
