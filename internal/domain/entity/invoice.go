package entity

// CanonicalInvoice contrato único que todos los conectores envían a invoice/queue.
// Se construye una vez por evento y no se modifica después.
type CanonicalInvoice struct {
	InvoiceDetails    InvoiceDetails `json:"invoice_details"`
	GoodsDetails      []GoodsLine    `json:"goods_details"`
	BuyerDetails      BuyerDetails   `json:"buyer_details"`
	Attachments       []Attachment   `json:"attachments,omitempty"`
	InstanceInvoiceID string         `json:"instance_invoice_id"`
}

// InvoiceDetails cabecera del documento fiscal.
type InvoiceDetails struct {
	InvoiceCode               string `json:"invoice_code"`
	Cashier                   string `json:"cashier"`
	PaymentMode               string `json:"payment_mode"`
	Currency                  string `json:"currency"`
	InvoiceType               string `json:"invoice_type"`
	InvoiceKind               string `json:"invoice_kind"`
	GoodsDescription          string `json:"goods_description"`
	IndustryCode              string `json:"industry_code"`
	OriginalInstanceInvoiceID string `json:"original_instance_invoice_id"`
	ReturnReason              string `json:"return_reason"`
	ReturnReasonCode          string `json:"return_reason_code"`
	IsExport                  bool   `json:"is_export"`
}

// BuyerDetails datos del comprador; los opcionales siempre se emiten (vacíos).
type BuyerDetails struct {
	TaxPin             string `json:"tax_pin"`
	NIN                string `json:"nin"`
	PassportNumber     string `json:"passport_number"`
	LegalName          string `json:"legal_name"`
	BusinessName       string `json:"business_name"`
	Address            string `json:"address"`
	Email              string `json:"email"`
	Mobile             string `json:"mobile"`
	BuyerType          string `json:"buyer_type"`
	BuyerCitizenship   string `json:"buyer_citizenship"`
	BuyerSector        string `json:"buyer_sector"`
	BuyerReference     string `json:"buyer_reference"`
	IsPrivileged       bool   `json:"is_privileged"`
	LocalPurchaseOrder string `json:"local_purchase_order"`
}

// Attachment adjunto de nota crédito (contenido en base64).
type Attachment struct {
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	FileContent string `json:"fileContent"`
}

// CreditNoteLink enlace de una nota crédito con la factura que revierte.
type CreditNoteLink struct {
	OriginalInvoiceCode string
	ReturnReason        string
	ReturnReasonCode    string
}
