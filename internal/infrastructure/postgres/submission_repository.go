package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

const selectSubmission = `
	SELECT id, client_id, platform, kind, reference, endpoint, payload, status,
	       gateway_status, COALESCE(gateway_body, ''), COALESCE(error, ''), created_at
	FROM submissions`

// SubmissionRepo bitácora de envíos a la pasarela. El índice único parcial
// submissions_accepted_uniq impide dos envíos aceptados de la misma factura o nota crédito.
type SubmissionRepo struct {
	q Querier
}

// NewSubmissionRepository construye el adaptador.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{q: pool}
}

// Create registra el envío. Asigna ID y fecha si vienen vacíos.
func (r *SubmissionRepo) Create(ctx context.Context, s *entity.Submission) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	payload := s.Payload
	if len(payload) == 0 {
		payload = []byte("null")
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO submissions (id, client_id, platform, kind, reference, endpoint, payload, status,
		                         gateway_status, gateway_body, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.ClientID, string(s.Platform), string(s.Kind), s.Reference, s.Endpoint, []byte(payload), s.Status,
		s.GatewayStatus, nullIfEmpty(s.GatewayBody), nullIfEmpty(s.Error), s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s %s: %w", s.Kind, s.Reference, domain.ErrDuplicateSubmission)
		}
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// FindAccepted envío aceptado para la referencia, o nil, nil.
func (r *SubmissionRepo) FindAccepted(ctx context.Context, clientID string, kind entity.DocumentKind, reference string) (*entity.Submission, error) {
	row := r.q.QueryRow(ctx, selectSubmission+`
		WHERE client_id = $1 AND kind = $2 AND reference = $3 AND status = $4
		ORDER BY created_at DESC LIMIT 1`,
		clientID, string(kind), reference, entity.SubmissionSubmitted,
	)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find accepted submission: %w", err)
	}
	return s, nil
}

// ListByClient envíos del cliente, más recientes primero.
func (r *SubmissionRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*entity.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.q.Query(ctx, selectSubmission+`
		WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		clientID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var (
		s              entity.Submission
		platform, kind string
		payload        []byte
	)
	if err := row.Scan(
		&s.ID, &s.ClientID, &platform, &kind, &s.Reference, &s.Endpoint, &payload, &s.Status,
		&s.GatewayStatus, &s.GatewayBody, &s.Error, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.Platform = entity.Platform(platform)
	s.Kind = entity.DocumentKind(kind)
	s.Payload = payload
	return &s, nil
}
