package fiscal_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	portmocks "github.com/paymojammn/taxmoja-app/internal/application/ports/mocks"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	repomocks "github.com/paymojammn/taxmoja-app/internal/domain/repository/mocks"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testConfig() *entity.ConnectorConfig {
	return &entity.ConnectorConfig{
		ClientID: "cli-1",
		Platform: entity.PlatformDear,
		Gateway:  entity.GatewayAuth{TaxID: "1000000000", APIToken: "tok", CountryCode: "UG"},
		Fields: entity.FieldMapping{
			TaxPin:         "AdditionalAttribute1",
			BuyerType:      "AdditionalAttribute2",
			IsExport:       "AdditionalAttribute3",
			DefaultCashier: "caja@cliente.ug",
		},
		Active: true,
	}
}

func invoiceInput() entity.BuilderInput {
	return entity.BuilderInput{
		Header: entity.DocumentHeader{
			ID:           "sale-1",
			CustomerID:   "cust-1",
			CustomerName: "Acme Ltd",
			Currency:     efris.CurrencyUGX,
			PaymentMode:  efris.PaymentModeCash,
			InvoiceType:  efris.InvoiceTypeInvoice,
			InvoiceKind:  efris.InvoiceKindInvoice,
			Endpoint:     efris.EndpointInvoiceQueue + "?erp=dear",
		},
		Customer: entity.CustomerRecord{"TaxNumber": "1000023516", "AdditionalAttribute2": "B2B"},
		Fields:   testConfig().Fields,
		Parents: []entity.ParentDocument{{
			ID:     "inv-1",
			Number: "INV-0001",
			Lines: []entity.RawLine{
				{Code: "SKU-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("1500.50"), TaxCategory: "Standard"},
			},
		}},
	}
}

func creditNoteInput() entity.BuilderInput {
	in := invoiceInput()
	in.IsCreditNote = true
	in.OriginInvoiceNumber = "INV-0001"
	in.Parents = []entity.ParentDocument{{
		ID:     "cn-1",
		Number: "CR-0001",
		Lines:  []entity.RawLine{{Code: "SKU-1", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(1500)}},
		CreditNote: &entity.CreditNoteSource{
			Number:        "CR-0001",
			InvoiceNumber: "INV-0001",
			Correlation:   "task-77",
			Memo:          "102",
		},
	}}
	return in
}

type pipelineFixture struct {
	gateway     *portmocks.MockGatewaySubmitter
	submissions *repomocks.MockSubmissionRepository
	pipeline    *fiscal.Pipeline
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	ctrl := gomock.NewController(t)
	f := &pipelineFixture{
		gateway:     portmocks.NewMockGatewaySubmitter(ctrl),
		submissions: repomocks.NewMockSubmissionRepository(ctrl),
	}
	f.pipeline = fiscal.NewPipeline(f.gateway, f.submissions, nil)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y notas crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitDocument_FacturaAceptada(t *testing.T) {
	f := newPipelineFixture(t)
	cfg := testConfig()
	ctx := context.Background()

	f.submissions.EXPECT().FindAccepted(ctx, "cli-1", entity.KindInvoice, "INV-0001").Return(nil, nil)
	f.gateway.EXPECT().
		Submit(ctx, "invoice/queue?erp=dear", gomock.Any(), cfg.Gateway).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ entity.GatewayAuth) (*ports.GatewayResponse, error) {
			inv, ok := payload.(*entity.CanonicalInvoice)
			require.True(t, ok, "el payload debe ser el CanonicalInvoice")
			assert.Equal(t, "INV-0001", inv.InstanceInvoiceID)
			assert.Equal(t, efris.BuyerTypeBusiness, inv.BuyerDetails.BuyerType)
			assert.Equal(t, "1000023516", inv.BuyerDetails.TaxPin)
			assert.Equal(t, "caja@cliente.ug", inv.InvoiceDetails.Cashier)
			return &ports.GatewayResponse{StatusCode: 200, Body: []byte(`{"ok":true}`)}, nil
		})
	f.submissions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.Submission) error {
		assert.Equal(t, entity.SubmissionSubmitted, s.Status)
		assert.Equal(t, "INV-0001", s.Reference)
		assert.Equal(t, entity.PlatformDear, s.Platform)
		assert.NotEmpty(t, s.ID)
		assert.Contains(t, string(s.Payload), `"instance_invoice_id":"INV-0001"`)
		return nil
	})

	out := f.pipeline.SubmitDocument(ctx, cfg, invoiceInput())

	assert.Equal(t, dto.StatusSubmitted, out.Status)
	assert.Equal(t, 200, out.GatewayStatus)
	assert.Equal(t, "INV-0001", out.Reference)
	assert.Empty(t, out.Warnings)
}

func TestSubmitDocument_NotaCreditoLlevaEnlace(t *testing.T) {
	f := newPipelineFixture(t)
	cfg := testConfig()
	ctx := context.Background()

	f.submissions.EXPECT().FindAccepted(ctx, "cli-1", entity.KindCreditNote, "CR-0001").Return(nil, nil)
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ entity.GatewayAuth) (*ports.GatewayResponse, error) {
			inv := payload.(*entity.CanonicalInvoice)
			assert.Equal(t, "CR-0001", inv.InvoiceDetails.InvoiceCode)
			assert.Equal(t, "INV-0001", inv.InvoiceDetails.OriginalInstanceInvoiceID)
			assert.Equal(t, "task-77", inv.InvoiceDetails.ReturnReason)
			assert.Equal(t, "102", inv.InvoiceDetails.ReturnReasonCode)
			assert.True(t, inv.GoodsDetails[0].Quantity.Equal(decimal.NewFromInt(1)), "cantidad en valor absoluto")
			return &ports.GatewayResponse{StatusCode: 201}, nil
		})
	f.submissions.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	out := f.pipeline.SubmitDocument(ctx, cfg, creditNoteInput())

	assert.Equal(t, dto.StatusSubmitted, out.Status)
	assert.Equal(t, string(entity.KindCreditNote), out.Kind)
}

func TestSubmitDocument_NotaCreditoSinEnlaceFallaAntesDeEnviar(t *testing.T) {
	f := newPipelineFixture(t)
	in := creditNoteInput()
	in.Parents[0].CreditNote = nil

	out := f.pipeline.SubmitDocument(context.Background(), testConfig(), in)

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Equal(t, dto.StepBuild, out.Step)
	assert.Contains(t, out.Message, "credit_note_link")
}

func TestSubmitDocument_YaAceptadoNoSeReenvia(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	prev := &entity.Submission{ID: "sub-1", Status: entity.SubmissionSubmitted, GatewayStatus: 200, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	f.submissions.EXPECT().FindAccepted(ctx, "cli-1", entity.KindInvoice, "INV-0001").Return(prev, nil)
	// sin EXPECT de Submit ni Create: gomock falla si se llaman

	out := f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())

	assert.Equal(t, dto.StatusDuplicate, out.Status)
	assert.Equal(t, 200, out.GatewayStatus)
	assert.Contains(t, out.Message, "2026-01-02")
}

func TestSubmitDocument_FalloDeBitacoraNoBloqueaElEnvio(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	f.submissions.EXPECT().FindAccepted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db caída"))
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(&ports.GatewayResponse{StatusCode: 200}, nil)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db caída"))

	out := f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())

	assert.Equal(t, dto.StatusSubmitted, out.Status)
}

func TestSubmitDocument_RechazoDeLaPasarela(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	f.submissions.EXPECT().FindAccepted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.GatewayResponse{StatusCode: 422, Body: []byte(`{"detail":"invalid tin"}`)}, nil)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.Submission) error {
		assert.Equal(t, entity.SubmissionRejected, s.Status)
		assert.Equal(t, 422, s.GatewayStatus)
		return nil
	})

	out := f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())

	assert.Equal(t, dto.StatusRejected, out.Status)
	assert.Equal(t, dto.StepSubmit, out.Step)
	assert.Equal(t, `{"detail":"invalid tin"}`, out.GatewayBody)
	assert.True(t, out.Failed())
}

func TestSubmitDocument_FalloDeTransporte(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	gwErr := &domain.GatewayError{Endpoint: "invoice/queue", Err: errors.New("connection refused")}
	f.submissions.EXPECT().FindAccepted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gwErr)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.Submission) error {
		assert.Equal(t, entity.SubmissionFailed, s.Status)
		assert.Contains(t, s.Error, "connection refused")
		return nil
	})

	out := f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Equal(t, dto.StepSubmit, out.Step)
}

func TestSubmitDocument_CampoObligatorioAusente(t *testing.T) {
	f := newPipelineFixture(t)
	in := invoiceInput()
	in.Header.CustomerID = ""

	out := f.pipeline.SubmitDocument(context.Background(), testConfig(), in)

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Equal(t, dto.StepBuild, out.Step)
	assert.Contains(t, out.Message, "customer_id")
}

func TestSubmitDocument_AdvierteEmpresaSinTINYDocumentosIgnorados(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	in := invoiceInput()
	in.Customer = entity.CustomerRecord{"AdditionalAttribute2": "b2g"}
	in.Parents = append(in.Parents, entity.ParentDocument{ID: "inv-2", Number: "INV-0002"})

	f.submissions.EXPECT().FindAccepted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(&ports.GatewayResponse{StatusCode: 200}, nil)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	out := f.pipeline.SubmitDocument(ctx, testConfig(), in)

	assert.Equal(t, dto.StatusSubmitted, out.Status, "la advertencia no bloquea el envío")
	require.Len(t, out.Warnings, 2)
	assert.Contains(t, out.Warnings[0], domain.WarnBusinessWithoutTaxPin)
	assert.Contains(t, out.Warnings[1], domain.WarnExtraParentDocuments)
}

func TestSubmitDocument_PoliticaEstrictaBloquea(t *testing.T) {
	f := newPipelineFixture(t)
	cfg := testConfig()
	cfg.StrictTaxPin = true
	in := invoiceInput()
	in.Customer = entity.CustomerRecord{"AdditionalAttribute2": "B2B"}

	out := f.pipeline.SubmitDocument(context.Background(), cfg, in)

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Contains(t, out.Message, domain.ErrTaxPinRequired.Error())
}

func TestSubmitDocument_PayloadDeterminista(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	var bodies [][]byte
	f.submissions.EXPECT().FindAccepted(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.gateway.EXPECT().Submit(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ entity.GatewayAuth) (*ports.GatewayResponse, error) {
			b, err := json.Marshal(payload)
			require.NoError(t, err)
			bodies = append(bodies, b)
			return &ports.GatewayResponse{StatusCode: 500}, nil
		}).Times(2)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

	f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())
	f.pipeline.SubmitDocument(ctx, testConfig(), invoiceInput())

	require.Len(t, bodies, 2)
	assert.Equal(t, string(bodies[0]), string(bodies[1]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Bienes
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitGoodsAdjustment_CodigosInvalidosNoSeEnvian(t *testing.T) {
	f := newPipelineFixture(t)
	adj := entity.GoodsAdjustment{
		GoodsCode:     "SKU-1",
		Quantity:      "3",
		OperationType: efris.OperationIncrease,
		AdjustType:    efris.AdjustOthers, // debe ir vacío en una entrada
		StockInType:   efris.StockInManufacture,
	}

	out := f.pipeline.SubmitGoodsAdjustment(context.Background(), testConfig(), adj)

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Equal(t, dto.StepValidate, out.Step)
}

func TestSubmitGoodsAdjustment_SinDeduplicacion(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()
	adj := entity.GoodsAdjustment{
		GoodsCode:     "SKU-1",
		Quantity:      "3",
		OperationType: efris.OperationDecrease,
		AdjustType:    efris.AdjustOthers,
	}
	// los ajustes se repiten legítimamente: no se consulta FindAccepted
	f.gateway.EXPECT().Submit(ctx, efris.EndpointStockAdjustment, adj, gomock.Any()).Return(&ports.GatewayResponse{StatusCode: 200}, nil).Times(2)
	f.submissions.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

	assert.Equal(t, dto.StatusSubmitted, f.pipeline.SubmitGoodsAdjustment(ctx, testConfig(), adj).Status)
	assert.Equal(t, dto.StatusSubmitted, f.pipeline.SubmitGoodsAdjustment(ctx, testConfig(), adj).Status)
}

func TestSubmitGoodsConfiguration_RequiereCodigo(t *testing.T) {
	f := newPipelineFixture(t)

	out := f.pipeline.SubmitGoodsConfiguration(context.Background(), testConfig(), entity.GoodsConfiguration{GoodsName: "Tornillo"})

	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.Contains(t, out.Message, "goods_code")
}
