package xero

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Verificar en tiempo de compilación las capacidades del adaptador.
var (
	_ ports.Connector   = (*Adapter)(nil)
	_ ports.Catalog     = (*Adapter)(nil)
	_ ports.GoodsWriter = (*Adapter)(nil)
)

const (
	// Cashier Xero no expone vendedor; todas las facturas salen con este cajero.
	Cashier = "System"
	// CreditNoteMemo código de motivo enviado en todas las notas crédito.
	CreditNoteMemo = efris.ReturnReasonOthers

	// BuyerTypeField campo sintético del contacto con B2B/B2G/B2F/B2C.
	BuyerTypeField = "BuyerType"

	contactsPageSize = 100

	defaultPurchaseAccount   = "300"
	defaultCommodityCategory = "50131701"
	defaultMeasureUnit       = "PP"
	defaultRemarks           = "Initial Stock"
)

// Adapter traduce facturas, notas crédito, contactos y productos de Xero.
type Adapter struct {
	client *Client
	log    *logger.Logger
}

// NewAdapter construye el adaptador de Xero.
func NewAdapter(client *Client, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{client: client, log: log.WithComponent("xero")}
}

// Platform implementa ports.Connector.
func (a *Adapter) Platform() entity.Platform { return entity.PlatformXero }

// invoicePayload factura autorizada y, si tiene, sus notas crédito con adjuntos.
type invoicePayload struct {
	Invoice     Invoice
	CreditNotes []creditNoteWithFiles
}

type creditNoteWithFiles struct {
	CreditNote  CreditNote
	Attachments []entity.Attachment
}

// FetchDocument lee Invoices/{id}. Las facturas que no están AUTHORISED ni PAID devuelven nil.
func (a *Adapter) FetchDocument(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.DocumentRef) (*entity.RawDocument, error) {
	if ref.Kind != entity.KindInvoice {
		return nil, fmt.Errorf("%w: tipo de documento %q para xero", domain.ErrInvalidInput, ref.Kind)
	}
	if ref.ID == "" {
		return nil, domain.NewMissingField("resource_id")
	}
	var list invoiceList
	if err := a.client.getJSON(ctx, cfg, "invoice", "Invoices/"+url.PathEscape(ref.ID), &list); err != nil {
		return nil, err
	}
	if len(list.Invoices) == 0 {
		return nil, &domain.UpstreamError{Platform: platformName, Op: "invoice", Err: fmt.Errorf("factura %s: %w", ref.ID, domain.ErrNotFound)}
	}
	inv := list.Invoices[0]
	if inv.Status != StatusAuthorised && inv.Status != StatusPaid {
		a.log.Info().Str("client_id", cfg.ClientID).Str("invoice", inv.InvoiceNumber).Str("status", inv.Status).Msg("factura no autorizada, se omite")
		return nil, nil
	}

	payload := &invoicePayload{Invoice: inv}
	for _, cnRef := range inv.CreditNotes {
		cn, err := a.creditNote(ctx, cfg, cnRef)
		if err != nil {
			return nil, err
		}
		payload.CreditNotes = append(payload.CreditNotes, *cn)
	}
	return &entity.RawDocument{
		Kind:       entity.KindInvoice,
		ID:         inv.InvoiceID,
		CustomerID: inv.Contact.ContactID,
		Payload:    payload,
	}, nil
}

func (a *Adapter) creditNote(ctx context.Context, cfg *entity.ConnectorConfig, ref CreditNoteRef) (*creditNoteWithFiles, error) {
	id := ref.CreditNoteID
	if id == "" {
		id = ref.ID
	}
	if id == "" {
		return nil, domain.NewMissingField("credit_note_id")
	}
	var list creditNoteList
	if err := a.client.getJSON(ctx, cfg, "credit_note", "CreditNotes/"+url.PathEscape(id), &list); err != nil {
		return nil, err
	}
	if len(list.CreditNotes) == 0 {
		return nil, &domain.UpstreamError{Platform: platformName, Op: "credit_note", Err: fmt.Errorf("nota crédito %s: %w", id, domain.ErrNotFound)}
	}
	out := &creditNoteWithFiles{CreditNote: list.CreditNotes[0]}
	if !out.CreditNote.HasAttachments {
		return out, nil
	}
	for _, att := range out.CreditNote.Attachments {
		p := fmt.Sprintf("CreditNotes/%s/Attachments/%s", url.PathEscape(id), url.PathEscape(att.AttachmentID))
		data, err := a.client.download(ctx, cfg, "credit_note_attachment", p, att.MimeType)
		if err != nil {
			return nil, err
		}
		out.Attachments = append(out.Attachments, attachment(att.FileName, data))
	}
	return out, nil
}

// attachment separa nombre y extensión: fileName sin extensión, fileType la extensión sin punto.
func attachment(fileName string, data []byte) entity.Attachment {
	ext := path.Ext(fileName)
	return entity.Attachment{
		FileName:    strings.TrimSuffix(fileName, ext),
		FileType:    strings.TrimPrefix(ext, "."),
		FileContent: base64.StdEncoding.EncodeToString(data),
	}
}

// FetchCustomer lee Contacts/{id} y lo expone con los campos que usa el resolvedor.
func (a *Adapter) FetchCustomer(ctx context.Context, cfg *entity.ConnectorConfig, customerID string) (entity.CustomerRecord, error) {
	if customerID == "" {
		return nil, domain.NewMissingField("customer_id")
	}
	var list contactList
	if err := a.client.getJSON(ctx, cfg, "contact", "Contacts/"+url.PathEscape(customerID), &list); err != nil {
		return nil, err
	}
	if len(list.Contacts) == 0 {
		return nil, &domain.UpstreamError{Platform: platformName, Op: "contact", Err: fmt.Errorf("contacto %s: %w", customerID, domain.ErrNotFound)}
	}
	return contactRecord(list.Contacts[0]), nil
}

// contactRecord registro de contacto con el tipo de comprador derivado del primer grupo.
func contactRecord(c Contact) entity.CustomerRecord {
	return entity.CustomerRecord{
		"ContactID":    c.ContactID,
		"Name":         c.Name,
		"TaxNumber":    c.TaxNumber,
		"EmailAddress": c.EmailAddress,
		BuyerTypeField: buyerTypeFromGroups(c.ContactGroups),
	}
}

// buyerTypeFromGroups Business/Government es empresa, Foreignor es extranjero y el resto,
// incluido un contacto sin grupo, es consumidor.
func buyerTypeFromGroups(groups []ContactGroup) string {
	if len(groups) == 0 {
		return "B2C"
	}
	switch strings.ToLower(strings.TrimSpace(groups[0].Name)) {
	case "business":
		return "B2B"
	case "government":
		return "B2G"
	case "foreignor":
		return "B2F"
	default:
		return "B2C"
	}
}

// fields mapeo efectivo de Xero: el tipo de comprador sale del campo sintético.
func fields(cfg *entity.ConnectorConfig) entity.FieldMapping {
	f := cfg.Fields
	f.BuyerType = BuyerTypeField
	return f
}

// ToBuilderInputs una entrada por nota crédito o, si la factura no tiene notas, una para la factura.
func (a *Adapter) ToBuilderInputs(_ context.Context, cfg *entity.ConnectorConfig, doc *entity.RawDocument, customer entity.CustomerRecord) ([]entity.BuilderInput, error) {
	p, ok := doc.Payload.(*invoicePayload)
	if !ok {
		return nil, fmt.Errorf("%w: payload %T no pertenece a xero", domain.ErrInvalidInput, doc.Payload)
	}
	inv := p.Invoice
	if customer == nil {
		customer = contactRecord(inv.Contact)
	}

	if len(p.CreditNotes) == 0 {
		return []entity.BuilderInput{{
			Header:   header(inv.InvoiceID, inv.Contact, inv.CurrencyCode, nil),
			Customer: customer,
			Fields:   fields(cfg),
			Parents: []entity.ParentDocument{{
				ID:     inv.InvoiceID,
				Number: inv.InvoiceNumber,
				Lines:  rawLines(inv.LineItems),
			}},
		}}, nil
	}

	inputs := make([]entity.BuilderInput, 0, len(p.CreditNotes))
	for _, c := range p.CreditNotes {
		cn := c.CreditNote
		contact := cn.Contact
		if contact.ContactID == "" {
			contact = inv.Contact
		}
		currency := cn.CurrencyCode
		if currency == "" {
			currency = inv.CurrencyCode
		}
		inputs = append(inputs, entity.BuilderInput{
			Header:              header(cn.CreditNoteID, contact, currency, c.Attachments),
			Customer:            customer,
			Fields:              fields(cfg),
			IsCreditNote:        true,
			OriginInvoiceNumber: inv.InvoiceNumber,
			Parents: []entity.ParentDocument{{
				ID:     cn.CreditNoteID,
				Number: cn.CreditNoteNumber,
				Lines:  rawLines(cn.LineItems),
				CreditNote: &entity.CreditNoteSource{
					Number:        cn.CreditNoteNumber,
					InvoiceNumber: inv.InvoiceNumber,
					Correlation:   cn.Reference,
					Memo:          CreditNoteMemo,
				},
			}},
		})
	}
	return inputs, nil
}

func header(id string, contact Contact, currency string, attachments []entity.Attachment) entity.DocumentHeader {
	return entity.DocumentHeader{
		ID:                id,
		CustomerID:        contact.ContactID,
		CustomerName:      contact.Name,
		Currency:          currency,
		PaymentMode:       efris.PaymentModeEFT,
		InvoiceType:       efris.InvoiceTypeInvoice,
		InvoiceKind:       efris.InvoiceKindInvoice,
		CashierCandidates: []string{Cashier},
		Attachments:       attachments,
		Endpoint:          efris.EndpointInvoiceQueue,
	}
}

func rawLines(items []LineItem) []entity.RawLine {
	out := make([]entity.RawLine, 0, len(items))
	for _, it := range items {
		out = append(out, entity.RawLine{
			Code:        it.ItemCode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitAmount,
			TaxCategory: it.TaxType,
		})
	}
	return out
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// ListAllGoods lee Items (Xero no pagina productos).
func (a *Adapter) ListAllGoods(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CatalogItem, error) {
	var list itemList
	if err := a.client.getJSON(ctx, cfg, "items", "Items", &list); err != nil {
		return nil, err
	}
	items := make([]entity.CatalogItem, 0, len(list.Items))
	for _, it := range list.Items {
		items = append(items, entity.CatalogItem{
			ID:             it.ItemID,
			Code:           it.Code,
			Name:           it.Name,
			Description:    it.Description,
			UnitPrice:      it.PurchaseDetails.UnitPrice,
			QuantityOnHand: it.QuantityOnHand,
		})
	}
	return items, nil
}

// ListAllContacts recorre Contacts?page= de a 100.
func (a *Adapter) ListAllContacts(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CustomerRecord, error) {
	var contacts []entity.CustomerRecord
	for page := 1; ; page++ {
		var list contactList
		if err := a.client.getJSON(ctx, cfg, "contacts", fmt.Sprintf("Contacts?page=%d", page), &list); err != nil {
			return nil, err
		}
		for _, c := range list.Contacts {
			contacts = append(contacts, contactRecord(c))
		}
		if len(list.Contacts) < contactsPageSize {
			return contacts, nil
		}
	}
}

// ContactFields mapeo con el campo sintético de tipo de comprador.
func (a *Adapter) ContactFields(cfg *entity.ConnectorConfig) entity.FieldMapping {
	return fields(cfg)
}

// GoodsConfigurationFor usa los valores por defecto del cliente o, si faltan, 50131701 / UGX / PP.
func (a *Adapter) GoodsConfigurationFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsConfiguration {
	currency := efris.CleanCurrency(cfg.Stock.Currency)
	if currency == "" {
		currency = efris.CurrencyUGX
	}
	return entity.GoodsConfiguration{
		GoodsName:            item.Name,
		GoodsCode:            item.Code,
		UnitPrice:            item.UnitPrice.String(),
		MeasureUnit:          firstNonEmpty(cfg.Stock.MeasureUnit, defaultMeasureUnit),
		Currency:             currency,
		CommodityTaxCategory: firstNonEmpty(cfg.Stock.CommodityCategory, defaultCommodityCategory),
		GoodsDescription:     item.Name,
	}
}

// OpeningStockFor existencias iniciales como importación (operación 101, entrada 101).
func (a *Adapter) OpeningStockFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsAdjustment {
	return entity.GoodsAdjustment{
		GoodsCode:       item.Code,
		Supplier:        cfg.Stock.Supplier,
		SupplierTIN:     cfg.Stock.SupplierTIN,
		StockInType:     efris.StockInImport,
		Quantity:        cfg.Stock.Quantity,
		PurchasePrice:   cfg.Stock.PurchasePrice,
		PurchaseRemarks: firstNonEmpty(cfg.Stock.Remarks, defaultRemarks),
		OperationType:   efris.OperationIncrease,
	}
}

// ── Escritura en Xero ─────────────────────────────────────────────────────────

// PushGoods crea el producto en Xero antes de registrarlo en EFRIS.
func (a *Adapter) PushGoods(ctx context.Context, cfg *entity.ConnectorConfig, setup entity.GoodsSetup) error {
	s, err := settings(cfg)
	if err != nil {
		return err
	}
	gc := setup.Configuration
	price, err := amount(gc.UnitPrice)
	if err != nil {
		return err
	}
	details := itemDetailsWrite{
		UnitPrice:   price,
		AccountCode: purchaseAccount(s),
		TaxType:     taxType(s, setup.CommodityTaxRate),
	}
	body := map[string][]itemWrite{"Items": {{
		Code:            gc.GoodsCode,
		Name:            gc.GoodsName,
		Description:     gc.GoodsDescription,
		IsSold:          true,
		IsPurchased:     true,
		PurchaseDetails: details,
		SalesDetails:    details,
	}}}
	if err := a.client.put(ctx, cfg, "put_item", "Items", body); err != nil {
		return err
	}
	a.log.Info().Str("client_id", cfg.ClientID).Str("goods_code", gc.GoodsCode).Msg("producto creado en Xero")
	return nil
}

// RecordStockMovement registra el ajuste como factura AUTHORISED ACCPAY (entrada) o ACCREC (salida)
// contra el contacto configurado o, si no hay, el primer contacto.
func (a *Adapter) RecordStockMovement(ctx context.Context, cfg *entity.ConnectorConfig, mv entity.StockMovement) error {
	s, err := settings(cfg)
	if err != nil {
		return err
	}
	contactID := s.StockInContact
	if contactID == "" {
		var list contactList
		if err := a.client.getJSON(ctx, cfg, "contacts", "Contacts?page=1", &list); err != nil {
			return err
		}
		if len(list.Contacts) == 0 {
			return domain.NewMissingField("settings.xero.stock_in_contact")
		}
		contactID = list.Contacts[0].ContactID
	}
	adj := mv.Adjustment
	qty, err := amount(adj.Quantity)
	if err != nil {
		return err
	}
	price, err := amount(adj.PurchasePrice)
	if err != nil {
		return err
	}
	today := a.client.now().UTC().Format("2006-01-02")
	body := map[string][]invoiceWrite{"Invoices": {{
		Type:    mv.DocumentType,
		Contact: contactRef{ContactID: contactID},
		Date:    today,
		DueDate: today,
		Status:  StatusAuthorised,
		LineItems: []lineItemWrite{{
			ItemCode:    adj.GoodsCode,
			Description: adj.PurchaseRemarks,
			Quantity:    qty,
			UnitAmount:  price,
			TaxType:     taxType(s, mv.CommodityTaxRate),
			AccountCode: purchaseAccount(s),
		}},
	}}}
	if err := a.client.put(ctx, cfg, "put_invoice", "Invoices", body); err != nil {
		return err
	}
	a.log.Info().Str("client_id", cfg.ClientID).Str("goods_code", adj.GoodsCode).Str("type", mv.DocumentType).Msg("ajuste registrado en Xero")
	return nil
}

func settings(cfg *entity.ConnectorConfig) (*entity.XeroSettings, error) {
	if cfg.Settings.Xero == nil {
		return nil, domain.NewMissingField("settings.xero")
	}
	return cfg.Settings.Xero, nil
}

func purchaseAccount(s *entity.XeroSettings) string {
	return firstNonEmpty(s.PurchaseAccount, defaultPurchaseAccount)
}

// taxType código exento si la tasa del bien es cero; si no, el código estándar.
func taxType(s *entity.XeroSettings, rate decimal.Decimal) string {
	if rate.IsZero() {
		return s.ExemptTaxRateCode
	}
	return s.StandardTaxRateCode
}

func amount(raw string) (json.Number, error) {
	if strings.TrimSpace(raw) == "" {
		return "0", nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: monto %q", domain.ErrInvalidInput, raw)
	}
	return json.Number(d.String()), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
