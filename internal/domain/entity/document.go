package entity

// DocumentKind tipo de documento o de envío.
type DocumentKind string

const (
	KindInvoice            DocumentKind = "invoice"
	KindCreditNote         DocumentKind = "credit_note"
	KindGoodsConfiguration DocumentKind = "goods_configuration"
	KindGoodsAdjustment    DocumentKind = "goods_adjustment"
)

// DocumentRef referencia recibida en un evento entrante (webhook o disparo manual).
type DocumentRef struct {
	Kind        DocumentKind
	ID          string
	CashierHint string // p. ej. SaleRepEmail del webhook de Dear
}

// RawDocument documento crudo devuelto por el adaptador; Payload es el tipo propio de la plataforma.
type RawDocument struct {
	Kind       DocumentKind
	ID         string
	CustomerID string
	Payload    any
}

// CreditNoteSource datos de la nota crédito necesarios para enlazarla con su factura.
type CreditNoteSource struct {
	Number        string // número propio de la nota crédito
	InvoiceNumber string // referencia a la factura que revierte
	Correlation   string // id de tarea/correlación de la plataforma
	Memo          string // código de motivo propuesto por la plataforma
}

// ParentDocument documento padre con líneas anidadas (factura de una venta, nota crédito).
type ParentDocument struct {
	ID         string
	Number     string
	Lines      []RawLine
	CreditNote *CreditNoteSource
}

// DocumentHeader datos de cabecera que el adaptador traduce de la plataforma.
type DocumentHeader struct {
	ID                string // identificador interno del documento en la plataforma
	CustomerID        string
	CustomerName      string
	Currency          string
	PaymentMode       string
	InvoiceType       string
	InvoiceKind       string
	CashierCandidates []string
	Attachments       []Attachment
	Endpoint          string // sufijo de la pasarela (invoice/queue, invoice/queue?erp=dear)
}

// BuilderInput todo lo que el pipeline necesita para construir un envío.
type BuilderInput struct {
	Header              DocumentHeader
	Customer            CustomerRecord
	Fields              FieldMapping // mapeo efectivo para resolver el comprador
	Parents             []ParentDocument
	IsCreditNote        bool
	OriginInvoiceNumber string
}
