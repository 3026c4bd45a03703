package fiscal

import (
	"context"
	"time"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
)

// Journal consulta la bitácora de envíos de un cliente.
type Journal struct {
	svc         *Service
	submissions repository.SubmissionRepository
}

// NewJournal construye el caso de uso de consulta.
func NewJournal(svc *Service, submissions repository.SubmissionRepository) *Journal {
	return &Journal{svc: svc, submissions: submissions}
}

// List envíos del cliente, más recientes primero. ErrNotFound si el cliente no existe.
func (j *Journal) List(ctx context.Context, clientID string, page dto.PageRequest) ([]dto.SubmissionResponse, error) {
	if _, err := j.svc.ClientConfig(ctx, clientID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	list, err := j.submissions.ListByClient(ctx, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubmissionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSubmissionResponse(s))
	}
	return out, nil
}

func toSubmissionResponse(s *entity.Submission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:            s.ID,
		Kind:          string(s.Kind),
		Reference:     s.Reference,
		Endpoint:      s.Endpoint,
		Status:        s.Status,
		GatewayStatus: s.GatewayStatus,
		Error:         s.Error,
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
