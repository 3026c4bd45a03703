package efris

import "fmt"

// ValidateAdjustmentCodes aplica las reglas de la pasarela para ajustes de inventario:
//   - operationType 101: adjustType vacío y stockInType obligatorio.
//   - operationType 102: adjustType obligatorio y stockInType vacío.
func ValidateAdjustmentCodes(operationType, adjustType, stockInType string) error {
	switch operationType {
	case OperationIncrease:
		if adjustType != "" {
			return fmt.Errorf("efris: adjust_type debe ir vacío cuando operation_type es %s", OperationIncrease)
		}
		if !ValidStockInTypeCodes[stockInType] {
			return fmt.Errorf("efris: stock_in_type %q inválido para operation_type %s", stockInType, OperationIncrease)
		}
	case OperationDecrease:
		if stockInType != "" {
			return fmt.Errorf("efris: stock_in_type debe ir vacío cuando operation_type es %s", OperationDecrease)
		}
		if !ValidAdjustTypeCodes[adjustType] {
			return fmt.Errorf("efris: adjust_type %q inválido para operation_type %s", adjustType, OperationDecrease)
		}
	default:
		return fmt.Errorf("efris: operation_type %q desconocido", operationType)
	}
	return nil
}

// AdjustmentCodesForVariance elige los códigos de operación según el signo de la variación
// (conteo físico menos existencias): positiva es entrada por manufactura, el resto es
// una reducción con motivo "otros".
func AdjustmentCodesForVariance(positive bool) (operationType, adjustType, stockInType string) {
	if positive {
		return OperationIncrease, "", StockInManufacture
	}
	return OperationDecrease, AdjustOthers, ""
}
