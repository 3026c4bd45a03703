package entity

import "github.com/shopspring/decimal"

// GoodsConfiguration payload de stock/configuration (registro de un bien en EFRIS).
type GoodsConfiguration struct {
	GoodsName            string `json:"goods_name"`
	GoodsCode            string `json:"goods_code"`
	UnitPrice            string `json:"unit_price"`
	MeasureUnit          string `json:"measure_unit"`
	Currency             string `json:"currency"`
	CommodityTaxCategory string `json:"commodity_tax_category"`
	GoodsDescription     string `json:"goods_description"`
}

// GoodsAdjustment payload de stock/adjustment (entrada o reducción de inventario).
type GoodsAdjustment struct {
	GoodsCode       string `json:"goods_code"`
	Supplier        string `json:"supplier"`
	SupplierTIN     string `json:"supplier_tin"`
	StockInType     string `json:"stock_in_type"`
	Quantity        string `json:"quantity"`
	PurchasePrice   string `json:"purchase_price"`
	PurchaseRemarks string `json:"purchase_remarks"`
	OperationType   string `json:"operation_type"`
	AdjustType      string `json:"adjust_type"`
}

// GoodsSetup alta de un bien solicitada por un operador; CommodityTaxRate decide el código
// de impuesto que se usa al registrarlo en la plataforma contable.
type GoodsSetup struct {
	Configuration    GoodsConfiguration
	CommodityTaxRate decimal.Decimal
}

// Tipos de documento de ajuste en Xero.
const (
	AdjustmentIncrease = "ACCPAY"
	AdjustmentDecrease = "ACCREC"
)

// StockMovement ajuste solicitado por un operador; DocumentType es AdjustmentIncrease o AdjustmentDecrease.
type StockMovement struct {
	Adjustment       GoodsAdjustment
	DocumentType     string
	CommodityTaxRate decimal.Decimal
}

// ProductRef producto notificado por la plataforma para darlo de alta en EFRIS.
type ProductRef struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// StockCountLine línea de un conteo físico: Adjustment es la cantidad contada.
// GoodsCode es el código con el que el bien se registró en EFRIS (ProductID si está vacío).
type StockCountLine struct {
	ProductID      string
	GoodsCode      string
	Adjustment     decimal.Decimal
	QuantityOnHand decimal.Decimal
}

// StockCount conteo físico (stocktake) con su número de referencia.
type StockCount struct {
	Reference string
	Lines     []StockCountLine
}
