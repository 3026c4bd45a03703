package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/infrastructure/gateway"
)

var testAuth = entity.GatewayAuth{TaxID: "1000000000", APIToken: "tok-123", CountryCode: "UG", APIKeyHeader: "key-9"}

func TestSubmit_CabecerasYCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/invoice/queue", r.URL.Path)
		assert.Equal(t, "erp=dear", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "1000000000", r.Header.Get("x-tax-id"))
		assert.Equal(t, "tok-123", r.Header.Get("x-api-token"))
		assert.Equal(t, "UG", r.Header.Get("x-tax-country-code"))
		assert.Equal(t, "key-9", r.Header.Get("x-api-key-header"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "INV-1", body["instance_invoice_id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":"queued"}`)
	}))
	defer srv.Close()

	c := gateway.NewMITAClient(srv.URL+"/api/v1/", time.Second, nil)
	resp, err := c.Submit(context.Background(), "invoice/queue?erp=dear", map[string]string{"instance_invoice_id": "INV-1"}, testAuth)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.Accepted())
	assert.JSONEq(t, `{"status":"queued"}`, string(resp.Body))
}

func TestSubmit_RechazoSeDevuelveCrudo(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"bad tin"}`)
	}))
	defer srv.Close()

	c := gateway.NewMITAClient(srv.URL, time.Second, nil)
	resp, err := c.Submit(context.Background(), "stock/configuration", struct{}{}, testAuth)

	require.NoError(t, err, "un 4xx no es un error de transporte")
	assert.False(t, resp.Accepted())
	assert.Equal(t, `{"detail":"bad tin"}`, string(resp.Body))
	assert.Equal(t, 1, calls, "sin reintentos")
}

func TestSubmit_FalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := gateway.NewMITAClient(url, time.Second, nil)
	_, err := c.Submit(context.Background(), "invoice/queue", struct{}{}, testAuth)

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "invoice/queue", gwErr.Endpoint)
	assert.ErrorIs(t, err, domain.ErrGatewaySubmission)
}

func TestSubmit_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := gateway.NewMITAClient(srv.URL, 50*time.Millisecond, nil)
	_, err := c.Submit(context.Background(), "invoice/queue", struct{}{}, testAuth)

	assert.ErrorIs(t, err, domain.ErrGatewaySubmission)
}
