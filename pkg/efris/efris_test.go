package efris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

func TestCleanCurrency(t *testing.T) {
	cases := map[string]string{
		"UGX": efris.CurrencyUGX,
		"ugx": efris.CurrencyUGX,
		"101": efris.CurrencyUGX,
		"USD": efris.CurrencyUSD,
		"102": efris.CurrencyUSD,
		"EUR": efris.CurrencyEUR,
		"104": efris.CurrencyEUR,
		"KES": "",
		"":    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, efris.CleanCurrency(in), "moneda %q", in)
	}
}

func TestValidateAdjustmentCodes_Incremento(t *testing.T) {
	assert.NoError(t, efris.ValidateAdjustmentCodes(efris.OperationIncrease, "", efris.StockInManufacture))
	assert.Error(t, efris.ValidateAdjustmentCodes(efris.OperationIncrease, efris.AdjustOthers, efris.StockInManufacture))
	assert.Error(t, efris.ValidateAdjustmentCodes(efris.OperationIncrease, "", ""))
}

func TestValidateAdjustmentCodes_Reduccion(t *testing.T) {
	assert.NoError(t, efris.ValidateAdjustmentCodes(efris.OperationDecrease, efris.AdjustOthers, ""))
	assert.Error(t, efris.ValidateAdjustmentCodes(efris.OperationDecrease, "", ""))
	assert.Error(t, efris.ValidateAdjustmentCodes(efris.OperationDecrease, efris.AdjustOthers, efris.StockInImport))
}

func TestValidateAdjustmentCodes_OperacionDesconocida(t *testing.T) {
	assert.Error(t, efris.ValidateAdjustmentCodes("999", "", ""))
}

func TestAdjustmentCodesForVariance(t *testing.T) {
	op, adj, in := efris.AdjustmentCodesForVariance(true)
	assert.Equal(t, []string{"101", "", "103"}, []string{op, adj, in})

	op, adj, in = efris.AdjustmentCodesForVariance(false)
	assert.Equal(t, []string{"102", "104", ""}, []string{op, adj, in})
}
