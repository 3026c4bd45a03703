// Package efris contiene los catálogos de códigos de la pasarela EFRIS (URA, Uganda)
// tal como los expone el middleware MITA, y las reglas de validación asociadas.
package efris

// =============================================================================
// Tipos de comprador (buyerType)
// B2G se reporta con el mismo código que B2B.
// =============================================================================

const (
	BuyerTypeBusiness = "0" // B2B / B2G
	BuyerTypeConsumer = "1" // B2C
	BuyerTypeForeign  = "2" // B2F
)

// ValidBuyerTypeCodes códigos de tipo de comprador aceptados por la pasarela.
var ValidBuyerTypeCodes = map[string]bool{
	BuyerTypeBusiness: true,
	BuyerTypeConsumer: true,
	BuyerTypeForeign:  true,
}

// =============================================================================
// Código de industria (industryCode)
// =============================================================================

const (
	IndustryGeneral         = "101" // General Industry
	IndustryExport          = "102" // Export
	IndustryImportedService = "104"
	IndustryTelecom         = "105"
	IndustryStampDuty       = "106"
	IndustryHotelService    = "107"
	IndustryOtherTaxes      = "108"
	IndustryAirline         = "109"
	IndustryEDC             = "110"
)

// =============================================================================
// Tipo y clase de factura (invoiceType / invoiceKind)
// =============================================================================

const (
	InvoiceTypeInvoice    = "1" // Invoice/Receipt
	InvoiceTypeDebitNote  = "4"
	InvoiceTypeCreditMemo = "5"

	InvoiceKindInvoice = "1"
	InvoiceKindReceipt = "2"
)

// =============================================================================
// Medio de pago (payWay)
// =============================================================================

const (
	PaymentModeCredit      = "101"
	PaymentModeCash        = "102"
	PaymentModeCheque      = "103"
	PaymentModeDemandDraft = "104"
	PaymentModeMobileMoney = "105"
	PaymentModeCard        = "106"
	PaymentModeEFT         = "107"
	PaymentModePOS         = "108"
	PaymentModeRTGS        = "109"
	PaymentModeSwift       = "110"
)

// =============================================================================
// Motivo de nota crédito (reasonCode)
// =============================================================================

const (
	ReturnReasonExpiredOrDamaged = "101"
	ReturnReasonCancelled        = "102"
	ReturnReasonMiscalculated    = "103"
	ReturnReasonWaiveOff         = "104" // código por defecto cuando el memo no es reconocido
	ReturnReasonOthers           = "105"

	DefaultReturnReasonCode = ReturnReasonWaiveOff
)

// ValidReturnReasonCodes códigos de motivo aceptados para notas crédito.
var ValidReturnReasonCodes = map[string]bool{
	ReturnReasonExpiredOrDamaged: true,
	ReturnReasonCancelled:        true,
	ReturnReasonMiscalculated:    true,
	ReturnReasonWaiveOff:         true,
	ReturnReasonOthers:           true,
}

// =============================================================================
// Moneda (currency)
// =============================================================================

const (
	CurrencyUGX = "101"
	CurrencyUSD = "102"
	CurrencyEUR = "104"
)

// =============================================================================
// Ajustes de inventario (operationType / adjustType / stockInType)
// =============================================================================

const (
	OperationIncrease = "101"
	OperationDecrease = "102"

	AdjustExpired     = "101"
	AdjustDamaged     = "102"
	AdjustPersonalUse = "103"
	AdjustOthers      = "104"
	AdjustRawMaterial = "105"

	StockInImport        = "101"
	StockInLocalPurchase = "102"
	StockInManufacture   = "103"
	StockInOpeningStock  = "104"
)

// ValidAdjustTypeCodes motivos de reducción de inventario.
var ValidAdjustTypeCodes = map[string]bool{
	AdjustExpired: true, AdjustDamaged: true, AdjustPersonalUse: true,
	AdjustOthers: true, AdjustRawMaterial: true,
}

// ValidStockInTypeCodes tipos de entrada de inventario.
var ValidStockInTypeCodes = map[string]bool{
	StockInImport: true, StockInLocalPurchase: true,
	StockInManufacture: true, StockInOpeningStock: true,
}

// =============================================================================
// Endpoints del middleware MITA (relativos a MITA_URL)
// =============================================================================

const (
	EndpointInvoiceQueue       = "invoice/queue"
	EndpointStockConfiguration = "stock/configuration"
	EndpointStockAdjustment    = "stock/adjustment"
)
