package repository

//go:generate mockgen -source=submission_repository.go -destination=mocks/submission_repository_mock.go -package=mocks

import (
	"context"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// SubmissionRepository bitácora de envíos a la pasarela.
type SubmissionRepository interface {
	// Create devuelve domain.ErrDuplicateSubmission si ya existe un envío aceptado con la misma referencia.
	Create(ctx context.Context, s *entity.Submission) error
	// FindAccepted devuelve el envío aceptado (2xx) para la referencia, o nil, nil.
	FindAccepted(ctx context.Context, clientID string, kind entity.DocumentKind, reference string) (*entity.Submission, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*entity.Submission, error)
}
