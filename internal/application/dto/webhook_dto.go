package dto

import "github.com/shopspring/decimal"

// XeroWebhookPayload sobre de eventos de Xero.
type XeroWebhookPayload struct {
	Events        []XeroEvent `json:"events"`
	FirstEventSeq int         `json:"firstEventSequence"`
	LastEventSeq  int         `json:"lastEventSequence"`
}

// XeroEvent evento individual.
type XeroEvent struct {
	ResourceURL   string `json:"resourceUrl"`
	ResourceID    string `json:"resourceId"`
	EventDateUTC  string `json:"eventDateUtc"`
	EventType     string `json:"eventType"`
	EventCategory string `json:"eventCategory"`
	TenantID      string `json:"tenantId"`
	TenantType    string `json:"tenantType"`
}

// DearSaleWebhook webhook de factura autorizada en Dear.
type DearSaleWebhook struct {
	SaleTaskID   string `json:"SaleTaskID"`
	SaleRepEmail string `json:"SaleRepEmail"`
}

// DearCreditNoteWebhook webhook de nota crédito autorizada en Dear.
type DearCreditNoteWebhook struct {
	SaleID string `json:"SaleID"`
}

// DearProductWebhook elemento del webhook de producto creado/actualizado.
type DearProductWebhook struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"Price"`
}

// DearStockAdjustmentWebhook webhook de conteo físico completado.
type DearStockAdjustmentWebhook struct {
	TaskID string `json:"TaskID"`
}

// WebhookResponse cuerpo de respuesta a webhooks ya verificados (siempre HTTP 200).
type WebhookResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Results []ProcessResult `json:"results,omitempty"`
	Sweep   *SweepSummary   `json:"sweep,omitempty"`
}
