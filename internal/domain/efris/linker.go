package efris

import (
	"strings"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// LinkCreditNote calcula el enlace de una nota crédito con la factura que revierte.
// El código de motivo es el memo si pertenece a {101..105}; si no, 104.
func LinkCreditNote(cn entity.CreditNoteSource, originInvoiceNumber string) entity.CreditNoteLink {
	original := strings.TrimSpace(cn.InvoiceNumber)
	if original == "" {
		original = strings.TrimSpace(originInvoiceNumber)
	}
	code := efris.DefaultReturnReasonCode
	if memo := strings.TrimSpace(cn.Memo); efris.ValidReturnReasonCodes[memo] {
		code = memo
	}
	return entity.CreditNoteLink{
		OriginalInvoiceCode: original,
		ReturnReason:        cn.Correlation,
		ReturnReasonCode:    code,
	}
}

// LinkCreditNotes aplica LinkCreditNote a cada nota de un lote; todas comparten la factura de origen.
func LinkCreditNotes(notes []entity.CreditNoteSource, originInvoiceNumber string) []entity.CreditNoteLink {
	links := make([]entity.CreditNoteLink, 0, len(notes))
	for _, cn := range notes {
		links = append(links, LinkCreditNote(cn, originInvoiceNumber))
	}
	return links
}
