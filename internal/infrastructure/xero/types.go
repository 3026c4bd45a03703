package xero

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Estados de factura que se fiscalizan.
const (
	StatusAuthorised = "AUTHORISED"
	StatusPaid       = "PAID"
)

// Contact contacto de Xero.
type Contact struct {
	ContactID     string         `json:"ContactID"`
	Name          string         `json:"Name"`
	TaxNumber     string         `json:"TaxNumber"`
	EmailAddress  string         `json:"EmailAddress"`
	ContactGroups []ContactGroup `json:"ContactGroups"`
}

// ContactGroup grupo de contactos; el primero define el tipo de comprador.
type ContactGroup struct {
	ContactGroupID string `json:"ContactGroupID"`
	Name           string `json:"Name"`
}

// LineItem línea de factura o nota crédito.
type LineItem struct {
	ItemCode    string          `json:"ItemCode"`
	Description string          `json:"Description"`
	Quantity    decimal.Decimal `json:"Quantity"`
	UnitAmount  decimal.Decimal `json:"UnitAmount"`
	TaxType     string          `json:"TaxType"`
}

// CreditNoteRef nota crédito asignada a una factura (resumen incluido en la factura).
type CreditNoteRef struct {
	ID               string `json:"ID"`
	CreditNoteID     string `json:"CreditNoteID"`
	CreditNoteNumber string `json:"CreditNoteNumber"`
}

// Invoice factura de Xero (Invoices/{id}).
type Invoice struct {
	InvoiceID     string          `json:"InvoiceID"`
	InvoiceNumber string          `json:"InvoiceNumber"`
	Type          string          `json:"Type"`
	Status        string          `json:"Status"`
	Reference     string          `json:"Reference"`
	CurrencyCode  string          `json:"CurrencyCode"`
	Contact       Contact         `json:"Contact"`
	LineItems     []LineItem      `json:"LineItems"`
	CreditNotes   []CreditNoteRef `json:"CreditNotes"`
}

// AttachmentRef adjunto declarado en una nota crédito.
type AttachmentRef struct {
	AttachmentID string `json:"AttachmentID"`
	FileName     string `json:"FileName"`
	MimeType     string `json:"MimeType"`
}

// CreditNote nota crédito de Xero (CreditNotes/{id}).
type CreditNote struct {
	CreditNoteID     string          `json:"CreditNoteID"`
	CreditNoteNumber string          `json:"CreditNoteNumber"`
	Status           string          `json:"Status"`
	Reference        string          `json:"Reference"`
	CurrencyCode     string          `json:"CurrencyCode"`
	Contact          Contact         `json:"Contact"`
	LineItems        []LineItem      `json:"LineItems"`
	HasAttachments   bool            `json:"HasAttachments"`
	Attachments      []AttachmentRef `json:"Attachments"`
}

// ItemDetails precios de compra o venta de un producto.
type ItemDetails struct {
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	AccountCode string          `json:"AccountCode"`
	TaxType     string          `json:"TaxType"`
}

// Item producto de Xero.
type Item struct {
	ItemID          string          `json:"ItemID"`
	Code            string          `json:"Code"`
	Name            string          `json:"Name"`
	Description     string          `json:"Description"`
	QuantityOnHand  decimal.Decimal `json:"QuantityOnHand"`
	PurchaseDetails ItemDetails     `json:"PurchaseDetails"`
	SalesDetails    ItemDetails     `json:"SalesDetails"`
}

// connection tenant autorizado devuelto por el endpoint de conexiones.
type connection struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenantId"`
	TenantType string `json:"tenantType"`
	TenantName string `json:"tenantName"`
}

type invoiceList struct {
	Invoices []Invoice `json:"Invoices"`
}

type creditNoteList struct {
	CreditNotes []CreditNote `json:"CreditNotes"`
}

type contactList struct {
	Contacts []Contact `json:"Contacts"`
}

type itemList struct {
	Items []Item `json:"Items"`
}

// ── Payloads de escritura ─────────────────────────────────────────────────────

// Los montos salen como número JSON; decimal.Decimal se serializaría como string.

type itemDetailsWrite struct {
	UnitPrice   json.Number `json:"UnitPrice"`
	AccountCode string      `json:"AccountCode"`
	TaxType     string      `json:"TaxType"`
}

type itemWrite struct {
	Code            string           `json:"Code"`
	Name            string           `json:"Name"`
	Description     string           `json:"Description,omitempty"`
	IsSold          bool             `json:"IsSold"`
	IsPurchased     bool             `json:"IsPurchased"`
	PurchaseDetails itemDetailsWrite `json:"PurchaseDetails"`
	SalesDetails    itemDetailsWrite `json:"SalesDetails"`
}

type lineItemWrite struct {
	ItemCode    string      `json:"ItemCode"`
	Description string      `json:"Description"`
	Quantity    json.Number `json:"Quantity"`
	UnitAmount  json.Number `json:"UnitAmount"`
	TaxType     string      `json:"TaxType"`
	AccountCode string      `json:"AccountCode"`
}

type contactRef struct {
	ContactID string `json:"ContactID"`
}

type invoiceWrite struct {
	Type      string          `json:"Type"`
	Contact   contactRef      `json:"Contact"`
	Date      string          `json:"Date"`
	DueDate   string          `json:"DueDate"`
	Status    string          `json:"Status"`
	LineItems []lineItemWrite `json:"LineItems"`
}
