package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const selectClient = `
	SELECT c.id, c.company_name, c.platform, c.gateway_auth, c.field_mapping, c.stock_defaults,
	       c.settings, c.strict_tax_pin, c.active, c.created_at, c.updated_at, cc.cred_state
	FROM clients c
	LEFT JOIN client_credentials cc ON cc.client_id = c.id`

// ClientRepo almacén de ConnectorConfig. Los bloques de configuración van en columnas JSONB
// y el estado OAuth2 en client_credentials.
type ClientRepo struct {
	q  Querier
	tx *TxRunner
}

// NewClientRepository construye el adaptador sobre el pool.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{q: pool, tx: NewTxRunner(pool)}
}

// GetConfig devuelve la configuración del cliente o nil, nil si no existe.
func (r *ClientRepo) GetConfig(ctx context.Context, clientID string) (*entity.ConnectorConfig, error) {
	cfg, err := scanClient(r.q.QueryRow(ctx, selectClient+` WHERE c.id = $1`, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client config: %w", err)
	}
	return cfg, nil
}

// List clientes de una plataforma; platform vacío lista todos.
func (r *ClientRepo) List(ctx context.Context, platform entity.Platform) ([]*entity.ConnectorConfig, error) {
	rows, err := r.q.Query(ctx, selectClient+` WHERE ($1 = '' OR c.platform = $1) ORDER BY c.id`, string(platform))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.ConnectorConfig
	for rows.Next() {
		cfg, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Create inserta la configuración y su fila de credenciales en una sola transacción.
func (r *ClientRepo) Create(ctx context.Context, cfg *entity.ConnectorConfig) error {
	if cfg.ClientID == "" {
		return domain.NewMissingField("client_id")
	}
	if !cfg.Platform.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedPlatform, cfg.Platform)
	}
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	blocks, err := marshalBlocks(cfg)
	if err != nil {
		return err
	}
	cred, err := json.Marshal(credOrEmpty(cfg.CredState))
	if err != nil {
		return fmt.Errorf("serializar cred_state: %w", err)
	}

	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO clients (id, company_name, platform, gateway_auth, field_mapping, stock_defaults,
			                     settings, strict_tax_pin, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			cfg.ClientID, cfg.CompanyName, string(cfg.Platform), blocks[0], blocks[1], blocks[2], blocks[3],
			cfg.StrictTaxPin, cfg.Active, cfg.CreatedAt, cfg.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("cliente %s ya existe: %w", cfg.ClientID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert client: %w", err)
		}
		if _, err := q.Exec(ctx, `
			INSERT INTO client_credentials (client_id, cred_state, updated_at) VALUES ($1, $2, $3)`,
			cfg.ClientID, cred, now,
		); err != nil {
			return fmt.Errorf("insert client credentials: %w", err)
		}
		return nil
	})
}

// SaveCredState reemplaza el estado OAuth2 (tokens, tenant y nonce). Última escritura gana.
func (r *ClientRepo) SaveCredState(ctx context.Context, clientID string, state *entity.CredState) error {
	raw, err := json.Marshal(credOrEmpty(state))
	if err != nil {
		return fmt.Errorf("serializar cred_state: %w", err)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO client_credentials (client_id, cred_state, updated_at)
		SELECT id, $2, now() FROM clients WHERE id = $1
		ON CONFLICT (client_id) DO UPDATE SET cred_state = EXCLUDED.cred_state, updated_at = EXCLUDED.updated_at`,
		clientID, raw,
	)
	if err != nil {
		return fmt.Errorf("save cred state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cliente %s: %w", clientID, domain.ErrNotFound)
	}
	return nil
}

func credOrEmpty(c *entity.CredState) *entity.CredState {
	if c == nil {
		return &entity.CredState{Status: entity.AuthStateUnauthenticated}
	}
	return c
}

// marshalBlocks gateway_auth, field_mapping, stock_defaults y settings como JSON.
func marshalBlocks(cfg *entity.ConnectorConfig) ([4][]byte, error) {
	var out [4][]byte
	for i, v := range []any{cfg.Gateway, cfg.Fields, cfg.Stock, cfg.Settings} {
		raw, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("serializar configuración del cliente: %w", err)
		}
		out[i] = raw
	}
	return out, nil
}

func scanClient(row pgx.Row) (*entity.ConnectorConfig, error) {
	var (
		cfg                                   entity.ConnectorConfig
		platform                              string
		gateway, fields, stock, settings, cred []byte
	)
	if err := row.Scan(
		&cfg.ClientID, &cfg.CompanyName, &platform, &gateway, &fields, &stock,
		&settings, &cfg.StrictTaxPin, &cfg.Active, &cfg.CreatedAt, &cfg.UpdatedAt, &cred,
	); err != nil {
		return nil, err
	}
	cfg.Platform = entity.Platform(platform)

	targets := []struct {
		raw []byte
		dst any
	}{
		{gateway, &cfg.Gateway},
		{fields, &cfg.Fields},
		{stock, &cfg.Stock},
		{settings, &cfg.Settings},
	}
	for _, t := range targets {
		if len(t.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(t.raw, t.dst); err != nil {
			return nil, fmt.Errorf("configuración del cliente %s: %w", cfg.ClientID, err)
		}
	}
	if len(cred) > 0 {
		var state entity.CredState
		if err := json.Unmarshal(cred, &state); err != nil {
			return nil, fmt.Errorf("cred_state del cliente %s: %w", cfg.ClientID, err)
		}
		cfg.CredState = &state
	}
	return &cfg, nil
}
