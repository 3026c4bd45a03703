package dto

import "github.com/shopspring/decimal"

// GoodsConfigurationRequest alta de un bien por un operador.
type GoodsConfigurationRequest struct {
	GoodsName            string          `json:"goods_name"`
	GoodsCode            string          `json:"goods_code"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	MeasureUnit          string          `json:"measure_unit"`
	Currency             string          `json:"currency"`
	CommodityTaxCategory string          `json:"commodity_tax_category"`
	CommodityTaxRate     decimal.Decimal `json:"commodity_tax_rate"`
	Description          string          `json:"description"`
}

// GoodsAdjustmentRequest ajuste de inventario por un operador.
type GoodsAdjustmentRequest struct {
	GoodsCode        string          `json:"goods_code"`
	DocumentType     string          `json:"document_type"` // ACCPAY (entrada) o ACCREC (salida)
	Supplier         string          `json:"supplier"`
	SupplierTIN      string          `json:"supplier_tin"`
	Quantity         decimal.Decimal `json:"quantity"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	PurchaseRemarks  string          `json:"purchase_remarks"`
	StockInType      string          `json:"stock_in_type"`
	AdjustType       string          `json:"adjust_type"`
	OperationType    string          `json:"operation_type"`
	CommodityTaxRate decimal.Decimal `json:"commodity_tax_rate"`
}

// SubmissionResponse envío registrado en la bitácora.
type SubmissionResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Reference     string `json:"reference"`
	Endpoint      string `json:"endpoint"`
	Status        string `json:"status"`
	GatewayStatus int    `json:"gateway_status"`
	Error         string `json:"error,omitempty"`
	CreatedAt     string `json:"created_at"`
}
