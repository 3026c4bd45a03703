package xero_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	efriscore "github.com/paymojammn/taxmoja-app/internal/domain/efris"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository/mocks"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/xero"
	"github.com/paymojammn/taxmoja-app/pkg/config"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeXero struct {
	t      *testing.T
	mux    *http.ServeMux
	srv    *httptest.Server
	bearer string // token esperado en la API contable
}

func newFakeXero(t *testing.T) *fakeXero {
	t.Helper()
	f := &fakeXero{t: t, mux: http.NewServeMux(), bearer: "at-1"}
	f.srv = httptest.NewServer(f.mux)
	t.Cleanup(f.srv.Close)
	return f
}

// api registra una ruta de la API contable que valida token y tenant.
func (f *fakeXero) api(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(f.t, "Bearer "+f.bearer, r.Header.Get("Authorization"))
		assert.Equal(f.t, "tenant-1", r.Header.Get("xero-tenant-id"))
		h(w, r)
	})
}

func (f *fakeXero) json(pattern, body string) {
	f.api(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
}

func (f *fakeXero) endpoints() config.XeroConfig {
	return config.XeroConfig{
		APIBaseURL:     f.srv.URL + "/api.xro/2.0",
		AuthURL:        f.srv.URL + "/identity/connect/authorize",
		TokenURL:       f.srv.URL + "/connect/token",
		ConnectionsURL: f.srv.URL + "/connections",
		Timeout:        2 * time.Second,
	}
}

func xeroConfig(cred *entity.CredState) *entity.ConnectorConfig {
	return &entity.ConnectorConfig{
		ClientID: "cli-x",
		Platform: entity.PlatformXero,
		Active:   true,
		Settings: entity.PlatformSettings{Xero: &entity.XeroSettings{
			ClientID:            "app-id",
			ClientSecret:        "app-secret",
			CallbackURI:         "https://svc.example/xero/callback/cli-x",
			ExemptTaxRateCode:   "EXEMPTOUTPUT",
			StandardTaxRateCode: "OUTPUT",
		}},
		CredState: cred,
	}
}

func validCred() *entity.CredState {
	return &entity.CredState{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
		TenantID:     "tenant-1",
		Status:       entity.AuthStateAuthenticated,
	}
}

func newClient(t *testing.T, f *fakeXero) (*xero.Client, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	return xero.NewClient(f.endpoints(), repo, nil), repo
}

const invoiceJSON = `{"Invoices": [{
  "InvoiceID": "inv-uuid-1", "InvoiceNumber": "INV-0042", "Type": "ACCREC", "Status": "AUTHORISED",
  "CurrencyCode": "UGX", "Reference": "PO-7",
  "Contact": {"ContactID": "ct-1", "Name": "Ministerio de Salud"},
  "LineItems": [{"ItemCode": "SKU-1", "Quantity": 3, "UnitAmount": 1200.5, "TaxType": "OUTPUT"}]
}]}`

// ──────────────────────────────────────────────────────────────────────────────
// OAuth2
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizationURL_IncluyeScopesYState(t *testing.T) {
	f := newFakeXero(t)
	client, _ := newClient(t, f)

	raw, err := client.AuthorizationURL(xeroConfig(nil), "nonce-1")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/identity/connect/authorize", u.Path)
	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, "nonce-1", q.Get("state"))
	assert.Equal(t, "https://svc.example/xero/callback/cli-x", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "offline_access")
	assert.Contains(t, q.Get("scope"), "accounting.attachments.read")
}

func TestAuthorizationURL_SinAjustes(t *testing.T) {
	f := newFakeXero(t)
	client, _ := newClient(t, f)
	cfg := xeroConfig(nil)
	cfg.Settings.Xero = nil

	_, err := client.AuthorizationURL(cfg, "nonce-1")

	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestExchange_EligeLaOrganizacion(t *testing.T) {
	f := newFakeXero(t)
	f.mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "app-id", user)
		assert.Equal(t, "app-secret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code-1", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at-1","refresh_token":"rt-1","token_type":"Bearer","expires_in":1800}`)
	})
	f.mux.HandleFunc("/connections", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"c1","tenantId":"practice-1","tenantType":"PRACTICEMANAGER"},
		                          {"id":"c2","tenantId":"tenant-1","tenantType":"ORGANISATION"}]`)
	})
	client, _ := newClient(t, f)

	cred, err := client.Exchange(context.Background(), xeroConfig(nil), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "at-1", cred.AccessToken)
	assert.Equal(t, "rt-1", cred.RefreshToken)
	assert.Equal(t, "tenant-1", cred.TenantID)
	assert.Equal(t, entity.AuthStateAuthenticated, cred.Status)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), cred.Expiry, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresco de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresco_PersisteElNuevoEstado(t *testing.T) {
	f := newFakeXero(t)
	f.bearer = "at-2"
	f.mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt-1", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at-2","refresh_token":"rt-2","token_type":"Bearer","expires_in":1800}`)
	})
	f.json("/api.xro/2.0/Contacts/ct-1", `{"Contacts":[{"ContactID":"ct-1","Name":"Acme"}]}`)
	client, repo := newClient(t, f)
	adapter := xero.NewAdapter(client, nil)

	cred := validCred()
	cred.Expiry = time.Now().Add(-time.Minute)
	cfg := xeroConfig(cred)

	repo.EXPECT().SaveCredState(gomock.Any(), "cli-x", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, s *entity.CredState) error {
		assert.Equal(t, "at-2", s.AccessToken)
		assert.Equal(t, "rt-2", s.RefreshToken)
		assert.Equal(t, "tenant-1", s.TenantID, "el tenant se conserva")
		assert.Equal(t, entity.AuthStateAuthenticated, s.Status)
		return nil
	})

	_, err := adapter.FetchCustomer(context.Background(), cfg, "ct-1")

	require.NoError(t, err)
	assert.Equal(t, "at-2", cfg.CredState.AccessToken)
}

func TestRefresco_FallidoEsErrorDeAutenticacion(t *testing.T) {
	f := newFakeXero(t)
	f.mux.HandleFunc("/connect/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
	})
	client, _ := newClient(t, f)
	cred := validCred()
	cred.Expiry = time.Now().Add(-time.Hour)

	_, err := xero.NewAdapter(client, nil).FetchCustomer(context.Background(), xeroConfig(cred), "ct-1")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestSinCredenciales_EsErrorDeAutenticacion(t *testing.T) {
	f := newFakeXero(t)
	client, _ := newClient(t, f)

	_, err := xero.NewAdapter(client, nil).FetchCustomer(context.Background(), xeroConfig(nil), "ct-1")

	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y notas crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestFactura_UnaEntradaSinNotas(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Invoices/inv-uuid-1", invoiceJSON)
	client, _ := newClient(t, f)
	a := xero.NewAdapter(client, nil)
	cfg := xeroConfig(validCred())
	ctx := context.Background()

	doc, err := a.FetchDocument(ctx, cfg, entity.DocumentRef{Kind: entity.KindInvoice, ID: "inv-uuid-1"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "ct-1", doc.CustomerID)

	customer := entity.CustomerRecord{"TaxNumber": "1000023516", xero.BuyerTypeField: "B2G"}
	inputs, err := a.ToBuilderInputs(ctx, cfg, doc, customer)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	in := inputs[0]

	assert.False(t, in.IsCreditNote)
	assert.Equal(t, efris.PaymentModeEFT, in.Header.PaymentMode)
	assert.Equal(t, []string{xero.Cashier}, in.Header.CashierCandidates)
	assert.Equal(t, efris.EndpointInvoiceQueue, in.Header.Endpoint)
	assert.Equal(t, "Ministerio de Salud", in.Header.CustomerName)
	require.Len(t, in.Parents, 1)
	assert.Equal(t, "INV-0042", in.Parents[0].Number)
	assert.True(t, in.Parents[0].Lines[0].UnitPrice.Equal(decimal.RequireFromString("1200.5")))

	buyer := efriscore.ResolveBuyer(in.Customer, in.Fields)
	assert.Equal(t, efris.BuyerTypeBusiness, buyer.BuyerType)
	assert.Equal(t, "1000023516", buyer.TaxPin)
}

func TestFactura_NoAutorizadaSeOmite(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Invoices/inv-draft", `{"Invoices":[{"InvoiceID":"inv-draft","Status":"DRAFT"}]}`)
	client, _ := newClient(t, f)

	doc, err := xero.NewAdapter(client, nil).FetchDocument(context.Background(), xeroConfig(validCred()),
		entity.DocumentRef{Kind: entity.KindInvoice, ID: "inv-draft"})

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFactura_CadaNotaCreditoSeEnviaPorSeparado(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Invoices/inv-uuid-1", `{"Invoices": [{
	  "InvoiceID": "inv-uuid-1", "InvoiceNumber": "INV-0042", "Status": "PAID", "CurrencyCode": "USD",
	  "Contact": {"ContactID": "ct-1", "Name": "Acme"},
	  "CreditNotes": [{"CreditNoteID": "cn-1", "CreditNoteNumber": "CN-1"}, {"CreditNoteID": "cn-2", "CreditNoteNumber": "CN-2"}]
	}]}`)
	f.json("/api.xro/2.0/CreditNotes/cn-1", `{"CreditNotes": [{
	  "CreditNoteID": "cn-1", "CreditNoteNumber": "CN-1", "Reference": "producto dañado", "CurrencyCode": "USD",
	  "Contact": {"ContactID": "ct-1", "Name": "Acme"},
	  "LineItems": [{"ItemCode": "SKU-1", "Quantity": 1, "UnitAmount": 10, "TaxType": "OUTPUT"}],
	  "HasAttachments": true,
	  "Attachments": [{"AttachmentID": "att-1", "FileName": "devolucion.pdf", "MimeType": "application/pdf"}]
	}]}`)
	f.json("/api.xro/2.0/CreditNotes/cn-2", `{"CreditNotes": [{
	  "CreditNoteID": "cn-2", "CreditNoteNumber": "CN-2", "Reference": "descuento",
	  "LineItems": [{"ItemCode": "SKU-2", "Quantity": 2, "UnitAmount": 5, "TaxType": "OUTPUT"}]
	}]}`)
	f.api("/api.xro/2.0/CreditNotes/cn-1/Attachments/att-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	client, _ := newClient(t, f)
	a := xero.NewAdapter(client, nil)
	cfg := xeroConfig(validCred())
	ctx := context.Background()

	doc, err := a.FetchDocument(ctx, cfg, entity.DocumentRef{Kind: entity.KindInvoice, ID: "inv-uuid-1"})
	require.NoError(t, err)
	inputs, err := a.ToBuilderInputs(ctx, cfg, doc, entity.CustomerRecord{})
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	first := inputs[0]
	assert.True(t, first.IsCreditNote)
	assert.Equal(t, "INV-0042", first.OriginInvoiceNumber)
	cn := first.Parents[0].CreditNote
	require.NotNil(t, cn)
	assert.Equal(t, "CN-1", cn.Number)
	assert.Equal(t, "INV-0042", cn.InvoiceNumber)
	assert.Equal(t, "producto dañado", cn.Correlation)
	assert.Equal(t, efris.ReturnReasonOthers, cn.Memo)
	require.Len(t, first.Header.Attachments, 1)
	assert.Equal(t, entity.Attachment{
		FileName:    "devolucion",
		FileType:    "pdf",
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
	}, first.Header.Attachments[0])

	second := inputs[1]
	assert.Equal(t, "CN-2", second.Parents[0].Number)
	assert.Equal(t, "USD", second.Header.Currency, "sin moneda propia hereda la de la factura")
	assert.Equal(t, "ct-1", second.Header.CustomerID, "sin contacto propio hereda el de la factura")
	assert.Empty(t, second.Header.Attachments)

	link := efriscore.LinkCreditNote(*cn, first.OriginInvoiceNumber)
	assert.Equal(t, "105", link.ReturnReasonCode)
}

func TestFetchDocument_ErrorDeXero(t *testing.T) {
	f := newFakeXero(t)
	f.api("/api.xro/2.0/Invoices/inv-x", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client, _ := newClient(t, f)

	_, err := xero.NewAdapter(client, nil).FetchDocument(context.Background(), xeroConfig(validCred()),
		entity.DocumentRef{Kind: entity.KindInvoice, ID: "inv-x"})

	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "invoice", upErr.Op)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contactos y catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchCustomer_TipoDeCompradorPorGrupo(t *testing.T) {
	tests := []struct {
		group string
		want  string
	}{
		{"Business", efris.BuyerTypeBusiness},
		{"business", efris.BuyerTypeBusiness},
		{"Government", efris.BuyerTypeBusiness},
		{"Foreignor", efris.BuyerTypeForeign},
		{"Retail", efris.BuyerTypeConsumer},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			f := newFakeXero(t)
			f.json("/api.xro/2.0/Contacts/ct-1", `{"Contacts":[{"ContactID":"ct-1","Name":"Acme","TaxNumber":"1009",
			  "ContactGroups":[{"Name":"`+tt.group+`"}]}]}`)
			client, _ := newClient(t, f)
			a := xero.NewAdapter(client, nil)
			cfg := xeroConfig(validCred())

			rec, err := a.FetchCustomer(context.Background(), cfg, "ct-1")
			require.NoError(t, err)

			buyer := efriscore.ResolveBuyer(rec, a.ContactFields(cfg))
			assert.Equal(t, tt.want, buyer.BuyerType)
			assert.Equal(t, "1009", buyer.TaxPin)
		})
	}
}

func TestFetchCustomer_SinGrupoEsConsumidor(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Contacts/ct-1", `{"Contacts":[{"ContactID":"ct-1","Name":"Juan"}]}`)
	client, _ := newClient(t, f)
	a := xero.NewAdapter(client, nil)
	cfg := xeroConfig(validCred())

	rec, err := a.FetchCustomer(context.Background(), cfg, "ct-1")
	require.NoError(t, err)

	buyer := efriscore.ResolveBuyer(rec, a.ContactFields(cfg))
	assert.Equal(t, efris.BuyerTypeConsumer, buyer.BuyerType)
	assert.Empty(t, buyer.TaxPin)
}

func TestCatalogo_ValoresPorDefecto(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Items", `{"Items":[{"ItemID":"it-1","Code":"SKU-1","Name":"Cemento",
	  "PurchaseDetails":{"UnitPrice":32000}}]}`)
	client, _ := newClient(t, f)
	a := xero.NewAdapter(client, nil)
	cfg := xeroConfig(validCred())
	cfg.Stock = entity.StockDefaults{Supplier: "Proveedor SA", SupplierTIN: "1003841291", Quantity: "100", PurchasePrice: "5000"}

	items, err := a.ListAllGoods(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, items, 1)

	gc := a.GoodsConfigurationFor(cfg, items[0])
	assert.Equal(t, entity.GoodsConfiguration{
		GoodsName:            "Cemento",
		GoodsCode:            "SKU-1",
		UnitPrice:            "32000",
		MeasureUnit:          "PP",
		Currency:             efris.CurrencyUGX,
		CommodityTaxCategory: "50131701",
		GoodsDescription:     "Cemento",
	}, gc)

	adj := a.OpeningStockFor(cfg, items[0])
	assert.Equal(t, "SKU-1", adj.GoodsCode)
	assert.Equal(t, efris.OperationIncrease, adj.OperationType)
	assert.Equal(t, efris.StockInImport, adj.StockInType)
	assert.Equal(t, "Initial Stock", adj.PurchaseRemarks)
	assert.NoError(t, efris.ValidateAdjustmentCodes(adj.OperationType, adj.AdjustType, adj.StockInType))
}

func TestListAllContacts_Paginado(t *testing.T) {
	f := newFakeXero(t)
	f.api("/api.xro/2.0/Contacts", func(w http.ResponseWriter, r *http.Request) {
		n := 100
		if r.URL.Query().Get("page") == "2" {
			n = 3
		}
		contacts := make([]map[string]any, n)
		for i := range contacts {
			contacts[i] = map[string]any{"ContactID": "c", "Name": "N"}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"Contacts": contacts})
	})
	client, _ := newClient(t, f)

	contacts, err := xero.NewAdapter(client, nil).ListAllContacts(context.Background(), xeroConfig(validCred()))

	require.NoError(t, err)
	assert.Len(t, contacts, 103)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escritura en Xero
// ──────────────────────────────────────────────────────────────────────────────

func TestPushGoods_TasaCeroUsaCodigoExento(t *testing.T) {
	f := newFakeXero(t)
	var got map[string][]map[string]any
	f.api("/api.xro/2.0/Items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Items":[]}`)
	})
	client, _ := newClient(t, f)
	setup := entity.GoodsSetup{
		Configuration:    entity.GoodsConfiguration{GoodsName: "Arroz", GoodsCode: "ARZ", UnitPrice: "4500.50"},
		CommodityTaxRate: decimal.Zero,
	}

	err := xero.NewAdapter(client, nil).PushGoods(context.Background(), xeroConfig(validCred()), setup)

	require.NoError(t, err)
	require.Len(t, got["Items"], 1)
	item := got["Items"][0]
	assert.Equal(t, "ARZ", item["Code"])
	purchase := item["PurchaseDetails"].(map[string]any)
	assert.Equal(t, "EXEMPTOUTPUT", purchase["TaxType"])
	assert.Equal(t, "300", purchase["AccountCode"])
	assert.Equal(t, 4500.5, purchase["UnitPrice"])
}

func TestRecordStockMovement_FacturaContraPrimerContacto(t *testing.T) {
	f := newFakeXero(t)
	f.json("/api.xro/2.0/Contacts", `{"Contacts":[{"ContactID":"ct-first","Name":"Primero"}]}`)
	var got map[string][]map[string]any
	f.api("/api.xro/2.0/Invoices", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Invoices":[]}`)
	})
	client, _ := newClient(t, f)
	mv := entity.StockMovement{
		DocumentType:     entity.AdjustmentIncrease,
		CommodityTaxRate: decimal.RequireFromString("0.18"),
		Adjustment: entity.GoodsAdjustment{
			GoodsCode: "ARZ", Quantity: "10", PurchasePrice: "3000", PurchaseRemarks: "compra local",
			OperationType: efris.OperationIncrease, StockInType: efris.StockInLocalPurchase,
		},
	}

	err := xero.NewAdapter(client, nil).RecordStockMovement(context.Background(), xeroConfig(validCred()), mv)

	require.NoError(t, err)
	require.Len(t, got["Invoices"], 1)
	inv := got["Invoices"][0]
	assert.Equal(t, "ACCPAY", inv["Type"])
	assert.Equal(t, "AUTHORISED", inv["Status"])
	assert.Equal(t, "ct-first", inv["Contact"].(map[string]any)["ContactID"])
	line := inv["LineItems"].([]any)[0].(map[string]any)
	assert.Equal(t, "ARZ", line["ItemCode"])
	assert.Equal(t, "OUTPUT", line["TaxType"])
	assert.Equal(t, float64(10), line["Quantity"])
}

func TestPushGoods_RechazoDeXero(t *testing.T) {
	f := newFakeXero(t)
	f.api("/api.xro/2.0/Items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"Message":"A validation exception occurred"}`)
	})
	client, _ := newClient(t, f)

	err := xero.NewAdapter(client, nil).PushGoods(context.Background(), xeroConfig(validCred()),
		entity.GoodsSetup{Configuration: entity.GoodsConfiguration{GoodsCode: "X", GoodsName: "X", UnitPrice: "1"}})

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
