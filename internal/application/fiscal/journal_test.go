package fiscal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

func TestJournalList_PaginaPorDefectoYFormato(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	j := fiscal.NewJournal(f.svc, f.submissions)
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	f.clients.EXPECT().GetConfig(ctx, "cli-1").Return(testConfig(), nil)
	f.submissions.EXPECT().ListByClient(ctx, "cli-1", 20, 0).Return([]*entity.Submission{{
		ID:            "sub-1",
		Kind:          entity.KindInvoice,
		Reference:     "INV-0001",
		Endpoint:      "invoice/queue?erp=dear",
		Status:        entity.SubmissionSubmitted,
		GatewayStatus: 200,
		CreatedAt:     created,
	}}, nil)

	out, err := j.List(ctx, "cli-1", dto.PageRequest{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "invoice", out[0].Kind)
	assert.Equal(t, "INV-0001", out[0].Reference)
	assert.Equal(t, "2024-03-01T10:30:00Z", out[0].CreatedAt)
}

func TestJournalList_LimiteMaximo(t *testing.T) {
	f := newServiceFixture(t)
	j := fiscal.NewJournal(f.svc, f.submissions)

	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-1").Return(testConfig(), nil)
	f.submissions.EXPECT().ListByClient(gomock.Any(), "cli-1", 100, 40).Return(nil, nil)

	out, err := j.List(context.Background(), "cli-1", dto.PageRequest{Limit: 500, Offset: 40})

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJournalList_ClienteInexistente(t *testing.T) {
	f := newServiceFixture(t)
	j := fiscal.NewJournal(f.svc, f.submissions)
	f.clients.EXPECT().GetConfig(gomock.Any(), "nadie").Return(nil, nil)

	_, err := j.List(context.Background(), "nadie", dto.PageRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
