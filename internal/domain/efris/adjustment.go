package efris

import (
	"github.com/shopspring/decimal"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// AdjustmentFromCount convierte una línea de conteo físico en un ajuste de inventario.
// La variación (contado - existencias) decide la operación; la cantidad va en valor absoluto.
func AdjustmentFromCount(line entity.StockCountLine, purchasePrice decimal.Decimal, remarks string) (entity.GoodsAdjustment, error) {
	if line.ProductID == "" {
		return entity.GoodsAdjustment{}, domain.NewMissingField("product_id")
	}
	code := line.GoodsCode
	if code == "" {
		code = line.ProductID
	}
	variance := line.Adjustment.Sub(line.QuantityOnHand)
	op, adjust, stockIn := efris.AdjustmentCodesForVariance(variance.IsPositive())
	return entity.GoodsAdjustment{
		GoodsCode:       code,
		StockInType:     stockIn,
		Quantity:        variance.Abs().String(),
		PurchasePrice:   purchasePrice.String(),
		PurchaseRemarks: remarks,
		OperationType:   op,
		AdjustType:      adjust,
	}, nil
}
