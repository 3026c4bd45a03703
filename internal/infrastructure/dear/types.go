package dear

import "github.com/shopspring/decimal"

// Sale venta de Dear (/sale?ID=).
type Sale struct {
	ID               string        `json:"ID"`
	CustomerID       string        `json:"CustomerID"`
	Customer         string        `json:"Customer"`
	CustomerCurrency string        `json:"CustomerCurrency"`
	Email            string        `json:"Email"`
	Phone            string        `json:"Phone"`
	Invoices         []SaleInvoice `json:"Invoices"`
}

// SaleInvoice factura de una venta.
type SaleInvoice struct {
	TaskID        string     `json:"TaskID"`
	InvoiceNumber string     `json:"InvoiceNumber"`
	Status        string     `json:"Status"`
	Lines         []SaleLine `json:"Lines"`
}

// SaleLine línea de factura o nota crédito.
type SaleLine struct {
	ProductID string          `json:"ProductID"`
	SKU       string          `json:"SKU"`
	Name      string          `json:"Name"`
	Quantity  decimal.Decimal `json:"Quantity"`
	Price     decimal.Decimal `json:"Price"`
	TaxRule   string          `json:"TaxRule"`
}

// CreditNoteList respuesta de /sale/creditnote?SaleID=.
type CreditNoteList struct {
	SaleID      string       `json:"SaleID"`
	CreditNotes []CreditNote `json:"CreditNotes"`
}

// CreditNote nota crédito de una venta.
type CreditNote struct {
	TaskID                  string     `json:"TaskID"`
	CreditNoteNumber        string     `json:"CreditNoteNumber"`
	CreditNoteInvoiceNumber string     `json:"CreditNoteInvoiceNumber"`
	Memo                    string     `json:"Memo"`
	Status                  string     `json:"Status"`
	Lines                   []SaleLine `json:"Lines"`
}

// customerList respuesta de /customer (por ID o paginada).
type customerList struct {
	Total        int              `json:"Total"`
	Page         int              `json:"Page"`
	CustomerList []map[string]any `json:"CustomerList"`
}

// productList respuesta de /product; los productos quedan crudos para los mapeos configurables.
type productList struct {
	Total    int              `json:"Total"`
	Page     int              `json:"Page"`
	Products []map[string]any `json:"Products"`
}

// stockAdjustment respuesta de /stockadjustment?TaskID=.
type stockAdjustment struct {
	TaskID             string      `json:"TaskID"`
	StocktakeNumber    string      `json:"StocktakeNumber"`
	ExistingStockLines []StockLine `json:"ExistingStockLines"`
}

// StockLine línea de un conteo físico.
type StockLine struct {
	ProductID      string          `json:"ProductID"`
	SKU            string          `json:"SKU"`
	ProductName    string          `json:"ProductName"`
	QuantityOnHand decimal.Decimal `json:"QuantityOnHand"`
	Adjustment     decimal.Decimal `json:"Adjustment"`
}

// invoicePayload documento crudo de una factura.
type invoicePayload struct {
	Sale        Sale
	CashierHint string
}

// creditNotePayload documento crudo de las notas crédito de una venta.
type creditNotePayload struct {
	Sale        Sale
	CreditNotes []CreditNote
	CashierHint string
}
