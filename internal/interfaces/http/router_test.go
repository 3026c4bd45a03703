package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/paymojammn/taxmoja-app/internal/application/auth"
	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/application/oauth"
	portmocks "github.com/paymojammn/taxmoja-app/internal/application/ports/mocks"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	repomocks "github.com/paymojammn/taxmoja-app/internal/domain/repository/mocks"
	apphttp "github.com/paymojammn/taxmoja-app/internal/interfaces/http"
	"github.com/paymojammn/taxmoja-app/pkg/webhook"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: router completo sobre servicios reales y puertos simulados
// ──────────────────────────────────────────────────────────────────────────────

const webhookSecret = "s3cret"

type routerFixture struct {
	clients     *repomocks.MockClientRepository
	submissions *repomocks.MockSubmissionRepository
	users       *repomocks.MockUserRepository
	dear        *portmocks.MockConnector
	provider    *portmocks.MockOAuthProvider
	app         *fiber.App
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		clients:     repomocks.NewMockClientRepository(ctrl),
		submissions: repomocks.NewMockSubmissionRepository(ctrl),
		users:       repomocks.NewMockUserRepository(ctrl),
		dear:        portmocks.NewMockConnector(ctrl),
		provider:    portmocks.NewMockOAuthProvider(ctrl),
	}
	f.dear.EXPECT().Platform().Return(entity.PlatformDear).AnyTimes()
	f.provider.EXPECT().Platform().Return(entity.PlatformXero).AnyTimes()

	pipeline := fiscal.NewPipeline(portmocks.NewMockGatewaySubmitter(ctrl), f.submissions, nil)
	svc := fiscal.NewService(f.clients, pipeline, nil, f.dear)

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		Fiscal:    svc,
		Goods:     fiscal.NewGoodsService(svc, pipeline, nil),
		Sweeps:    fiscal.NewSweepService(svc, pipeline, nil),
		Journal:   fiscal.NewJournal(svc, f.submissions),
		XeroOAuth: oauth.NewService(f.clients, f.provider, nil),
		AuthUC:    auth.NewAuthUseCase(f.users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "taxmoja-app-test"}),
		JWTSecret: testJWTSecret,
	})
	return f
}

func dearClient() *entity.ConnectorConfig {
	return &entity.ConnectorConfig{
		ClientID: "cli-dear",
		Platform: entity.PlatformDear,
		Settings: entity.PlatformSettings{Dear: &entity.DearSettings{WebhookKey: webhookSecret}},
		Active:   true,
	}
}

func xeroClient() *entity.ConnectorConfig {
	return &entity.ConnectorConfig{
		ClientID:  "cli-xero",
		Platform:  entity.PlatformXero,
		Settings:  entity.PlatformSettings{Xero: &entity.XeroSettings{ClientID: "app-1", WebhookKey: webhookSecret}},
		CredState: &entity.CredState{TenantID: "tenant-1", Status: entity.AuthStateAuthenticated},
		Active:    true,
	}
}

func (f *routerFixture) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func signedPost(path, header string, body []byte, secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(header, webhook.Sign(body, secret))
	return req
}

func decodeWebhook(t *testing.T, resp *http.Response) dto.WebhookResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.WebhookResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Webhooks de Dear
// ──────────────────────────────────────────────────────────────────────────────

func TestDearInvoice_FirmaValidaProcesaElDocumento(t *testing.T) {
	f := newRouterFixture(t)
	body := []byte(`{"SaleTaskID":"task-1","SaleRepEmail":"rep@cliente.ug"}`)
	ref := entity.DocumentRef{Kind: entity.KindInvoice, ID: "task-1", CashierHint: "rep@cliente.ug"}

	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)
	f.dear.EXPECT().FetchDocument(gomock.Any(), gomock.Any(), ref).Return(nil, nil)

	resp := f.do(t, signedPost("/dear/invoice/cli-dear", apphttp.HeaderDearSignature, body, webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, dto.StatusSkipped, out.Status)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "task-1", out.Results[0].DocumentID)
}

func TestDearInvoice_FirmaInvalidaNoInvocaAlAdaptador(t *testing.T) {
	f := newRouterFixture(t)
	body := []byte(`{"SaleTaskID":"task-1"}`)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)

	resp := f.do(t, signedPost("/dear/invoice/cli-dear", apphttp.HeaderDearSignature, body, "otro-secreto"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_SIGNATURE")
}

func TestDearInvoice_SinCabeceraDeFirma(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)
	req := httptest.NewRequest(http.MethodPost, "/dear/invoice/cli-dear", bytes.NewReader([]byte(`{}`)))

	resp := f.do(t, req)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDearInvoice_ClienteDesconocidoEs401(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "nadie").Return(nil, nil)

	resp := f.do(t, signedPost("/dear/invoice/nadie", apphttp.HeaderDearSignature, []byte(`{}`), webhookSecret))
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDearInvoice_ClienteDeOtraPlataformaEs401(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(xeroClient(), nil)

	resp := f.do(t, signedPost("/dear/invoice/cli-xero", apphttp.HeaderDearSignature, []byte(`{}`), webhookSecret))
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDearInvoice_CuerpoInvalidoTrasVerificarResponde200(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)

	resp := f.do(t, signedPost("/dear/invoice/cli-dear", apphttp.HeaderDearSignature, []byte(`{no es json`), webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, "error", out.Status)
	assert.NotEmpty(t, out.Message)
}

func TestDearCreditNote_SinSaleIDResponde200ConError(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)

	resp := f.do(t, signedPost("/dear/credit_note/cli-dear", apphttp.HeaderDearSignature, []byte(`{}`), webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, "error", out.Status)
	assert.Contains(t, out.Message, "SaleID")
}

func TestDearInvoice_PanicDelAdaptadorResponde200(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)
	f.dear.EXPECT().FetchDocument(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_, _, _ any) (*entity.RawDocument, error) { panic("índice fuera de rango") },
	)

	resp := f.do(t, signedPost("/dear/invoice/cli-dear", apphttp.HeaderDearSignature, []byte(`{"SaleTaskID":"t"}`), webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, dto.StatusFailed, out.Status)
	assert.NotContains(t, out.Message, "índice")
}

func TestDearGoodsConfigure_PlataformaSinEventosDeProducto(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)
	body := []byte(`[{"productID":"p-1","productName":"Tornillo","Price":1500}]`)

	resp := f.do(t, signedPost("/dear/goods_configure/cli-dear", apphttp.HeaderDearSignature, body, webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, "error", out.Status)
	assert.Contains(t, out.Message, "no notifica productos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Xero: webhook y OAuth2
// ──────────────────────────────────────────────────────────────────────────────

func TestXeroWebhook_IntentToReceive(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(xeroClient(), nil)
	body := []byte(`{"events":[],"firstEventSequence":0,"lastEventSequence":0}`)

	resp := f.do(t, signedPost("/xero/webhook/cli-xero", apphttp.HeaderXeroSignature, body, webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeWebhook(t, resp).Status)
}

func TestXeroWebhook_IntentToReceiveConFirmaIncorrecta(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(xeroClient(), nil)
	body := []byte(`{"events":[]}`)

	resp := f.do(t, signedPost("/xero/webhook/cli-xero", apphttp.HeaderXeroSignature, body, "no-es-la-clave"))
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestXeroWebhook_IgnoraOtrasCategoriasYOtrosTenants(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(xeroClient(), nil)
	body := []byte(`{"events":[
		{"resourceId":"c-1","eventCategory":"CONTACT","eventType":"UPDATE","tenantId":"tenant-1"},
		{"resourceId":"i-9","eventCategory":"INVOICE","eventType":"UPDATE","tenantId":"tenant-otro"}
	]}`)

	resp := f.do(t, signedPost("/xero/webhook/cli-xero", apphttp.HeaderXeroSignature, body, webhookSecret))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeWebhook(t, resp)
	assert.Equal(t, "ok", out.Status)
	assert.Empty(t, out.Results)
}

func TestXeroAuthorize_RedirigeAlConsentimiento(t *testing.T) {
	f := newRouterFixture(t)
	cfg := xeroClient()
	cfg.CredState = nil
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(cfg, nil)
	f.provider.EXPECT().AuthorizationURL(cfg, gomock.Any()).Return("https://login.xero.com/authorize?state=n", nil)
	f.clients.EXPECT().SaveCredState(gomock.Any(), "cli-xero", gomock.Any()).DoAndReturn(
		func(_ any, _ string, state *entity.CredState) error {
			assert.Equal(t, entity.AuthStateAuthorizationRequested, state.Status)
			assert.NotEmpty(t, state.OAuthState)
			return nil
		},
	)

	resp := f.do(t, httptest.NewRequest(http.MethodGet, "/xero/cli-xero/", nil))
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://login.xero.com/authorize?state=n", resp.Header.Get("Location"))
}

func TestXeroAuthorize_ClienteDesconocido(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "nadie").Return(nil, nil)

	resp := f.do(t, httptest.NewRequest(http.MethodGet, "/xero/nadie/", nil))
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestXeroCallback_Autenticado(t *testing.T) {
	f := newRouterFixture(t)
	cfg := xeroClient()
	cfg.CredState = &entity.CredState{OAuthState: "nonce-1", Status: entity.AuthStateAuthorizationRequested}
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(cfg, nil)
	f.provider.EXPECT().Exchange(gomock.Any(), cfg, "code-1").Return(&entity.CredState{
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		Expiry:       time.Now().Add(30 * time.Minute),
		TenantID:     "tenant-1",
	}, nil)
	f.clients.EXPECT().SaveCredState(gomock.Any(), "cli-xero", gomock.Any()).Return(nil)

	resp := f.do(t, httptest.NewRequest(http.MethodGet, "/xero/callback/cli-xero?code=code-1&state=nonce-1", nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "You are authenticated", string(raw))
}

func TestXeroCallback_StateIncorrectoEs401(t *testing.T) {
	f := newRouterFixture(t)
	cfg := xeroClient()
	cfg.CredState = &entity.CredState{OAuthState: "nonce-1", Status: entity.AuthStateAuthorizationRequested}
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-xero").Return(cfg, nil)

	resp := f.do(t, httptest.NewRequest(http.MethodGet, "/xero/callback/cli-xero?code=code-1&state=forjado", nil))
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestXeroCallback_AutorizacionRechazada(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, httptest.NewRequest(http.MethodGet, "/xero/callback/cli-xero?error=access_denied", nil))
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// API de operadores
// ──────────────────────────────────────────────────────────────────────────────

func TestOperator_SinTokenEs401(t *testing.T) {
	f := newRouterFixture(t)
	for _, path := range []string{
		"/api/clients/cli-dear/bulk_goods_configure",
		"/xero/bulk_goods_configure/cli-xero",
		"/xero/bulk_goods_adjust/cli-xero",
	} {
		resp := f.do(t, httptest.NewRequest(http.MethodPost, path, nil))
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestOperator_ListaLaBitacora(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)
	f.submissions.EXPECT().ListByClient(gomock.Any(), "cli-dear", 10, 5).Return([]*entity.Submission{
		{ID: "s-1", Kind: entity.KindInvoice, Reference: "INV-1", Status: entity.SubmissionSubmitted, GatewayStatus: 200},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clients/cli-dear/submissions?limit=10&offset=5", nil)
	req.Header.Set("Authorization", bearer(t, entity.RoleOperator, 60))
	resp := f.do(t, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.SubmissionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "INV-1", out[0].Reference)
}

func TestOperator_BarridoSinCatalogoEs422(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/clients/cli-dear/bulk_buyer_audit", nil)
	req.Header.Set("Authorization", bearer(t, entity.RoleAdmin, 60))
	resp := f.do(t, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNSUPPORTED")
}

func TestOperator_AjusteConTipoInvalidoEs400(t *testing.T) {
	f := newRouterFixture(t)
	f.clients.EXPECT().GetConfig(gomock.Any(), "cli-dear").Return(dearClient(), nil)

	body := []byte(`{"goods_code":"SKU1","document_type":"OTRO","quantity":"5"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clients/cli-dear/goods/adjust", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, entity.RoleOperator, 60))
	resp := f.do(t, req)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_DevuelveToken(t *testing.T) {
	f := newRouterFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().FindByEmail(gomock.Any(), "ops@taxmoja.ug").Return(&entity.User{
		ID:           testUserID,
		Email:        "ops@taxmoja.ug",
		PasswordHash: string(hash),
		Role:         entity.RoleOperator,
		Status:       entity.UserStatusActive,
	}, nil)

	body := []byte(`{"email":"OPS@taxmoja.ug","password":"clave-segura"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := f.do(t, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleOperator, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	f := newRouterFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().FindByEmail(gomock.Any(), "ops@taxmoja.ug").Return(&entity.User{
		ID: testUserID, Email: "ops@taxmoja.ug", PasswordHash: string(hash), Status: entity.UserStatusActive,
	}, nil)

	body := []byte(`{"email":"ops@taxmoja.ug","password":"otra-clave"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := f.do(t, req)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
