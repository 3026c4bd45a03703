package efris

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// MaxBuyerReferenceLen límite de la pasarela para buyer_reference (en caracteres).
const MaxBuyerReferenceLen = 45

// Document documento ya traducido por el adaptador y listo para construir el payload.
type Document struct {
	entity.DocumentHeader
	Number string                 // número de la factura o número propio de la nota crédito
	Link   *entity.CreditNoteLink // obligatorio en notas crédito
}

// Build arma el CanonicalInvoice. Es determinista: mismas entradas, mismo payload.
// Falla con MissingFieldError si falta un identificador estructural; los campos opcionales
// del comprador se emiten siempre como "".
func Build(
	doc Document,
	buyer entity.BuyerProfile,
	goods []entity.GoodsLine,
	cfg *entity.ConnectorConfig,
	isCreditNote bool,
) (*entity.CanonicalInvoice, error) {
	if cfg == nil {
		return nil, domain.NewMissingField("config")
	}
	switch {
	case doc.ID == "":
		return nil, domain.NewMissingField("document_id")
	case doc.CustomerID == "":
		return nil, domain.NewMissingField("customer_id")
	case doc.Number == "":
		return nil, domain.NewMissingField("invoice_code")
	case len(goods) == 0:
		return nil, domain.NewMissingField("goods_details")
	}
	if !efris.ValidBuyerTypeCodes[buyer.BuyerType] {
		return nil, fmt.Errorf("%w: buyer_type %q", domain.ErrInvalidInput, buyer.BuyerType)
	}
	if cfg.StrictTaxPin && CheckBuyer(buyer) != nil {
		return nil, fmt.Errorf("%w: documento %s", domain.ErrTaxPinRequired, doc.Number)
	}

	details := entity.InvoiceDetails{
		InvoiceCode:      doc.Number,
		Cashier:          resolveDocumentCashier(doc, cfg),
		PaymentMode:      doc.PaymentMode,
		Currency:         doc.Currency,
		InvoiceType:      doc.InvoiceType,
		InvoiceKind:      doc.InvoiceKind,
		GoodsDescription: fmt.Sprintf("%s-%s", doc.CustomerName, doc.ID),
		IndustryCode:     industryCode(buyer.IsExport),
		IsExport:         buyer.IsExport,
	}
	if isCreditNote {
		if doc.Link == nil {
			return nil, domain.NewMissingField("credit_note_link")
		}
		if doc.Link.OriginalInvoiceCode == "" {
			return nil, domain.NewMissingField("original_invoice_code")
		}
		details.OriginalInstanceInvoiceID = doc.Link.OriginalInvoiceCode
		details.ReturnReason = doc.Link.ReturnReason
		details.ReturnReasonCode = doc.Link.ReturnReasonCode
	}

	inv := &entity.CanonicalInvoice{
		InvoiceDetails: details,
		GoodsDetails:   append([]entity.GoodsLine(nil), goods...),
		BuyerDetails: entity.BuyerDetails{
			TaxPin:         buyer.TaxPin,
			LegalName:      doc.CustomerName,
			BuyerType:      buyer.BuyerType,
			BuyerReference: TruncateReference(doc.CustomerName),
		},
		InstanceInvoiceID: doc.Number,
	}
	if len(doc.Attachments) > 0 {
		inv.Attachments = append([]entity.Attachment(nil), doc.Attachments...)
	}
	return inv, nil
}

// industryCode 101 general; 102 si el comprador es de exportación.
func industryCode(isExport bool) string {
	if isExport {
		return efris.IndustryExport
	}
	return efris.IndustryGeneral
}

func resolveDocumentCashier(doc Document, cfg *entity.ConnectorConfig) string {
	sources := make([]string, 0, len(doc.CashierCandidates)+1)
	sources = append(sources, doc.CashierCandidates...)
	sources = append(sources, cfg.Fields.DefaultCashier)
	return ResolveCashier(sources...)
}

// TruncateReference recorta a MaxBuyerReferenceLen caracteres (no bytes), tras normalizar a NFC
// para que un carácter acentuado cuente una sola vez.
func TruncateReference(s string) string {
	s = norm.NFC.String(s)
	r := []rune(s)
	if len(r) <= MaxBuyerReferenceLen {
		return s
	}
	return string(r[:MaxBuyerReferenceLen])
}
