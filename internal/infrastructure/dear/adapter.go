package dear

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Verificar en tiempo de compilación las capacidades del adaptador.
var (
	_ ports.Connector        = (*Adapter)(nil)
	_ ports.Catalog          = (*Adapter)(nil)
	_ ports.GoodsEventSource = (*Adapter)(nil)
)

const (
	pageLimit = 100
	// EndpointInvoice Dear usa la cola de facturas marcada con su ERP.
	EndpointInvoice = efris.EndpointInvoiceQueue + "?erp=dear"
	// SalesRepresentativeField campo del cliente usado como segundo candidato a cajero.
	SalesRepresentativeField = "SalesRepresentative"
)

// Adapter traduce ventas, notas crédito, productos y conteos de Dear.
type Adapter struct {
	client *Client
	log    *logger.Logger
}

// NewAdapter construye el adaptador de Dear.
func NewAdapter(client *Client, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{client: client, log: log.WithComponent("dear")}
}

// Platform implementa ports.Connector.
func (a *Adapter) Platform() entity.Platform { return entity.PlatformDear }

// FetchDocument lee la venta (factura) o la venta más sus notas crédito.
func (a *Adapter) FetchDocument(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.DocumentRef) (*entity.RawDocument, error) {
	switch ref.Kind {
	case entity.KindInvoice:
		sale, err := a.sale(ctx, cfg, ref.ID)
		if err != nil {
			return nil, err
		}
		return &entity.RawDocument{
			Kind:       entity.KindInvoice,
			ID:         sale.ID,
			CustomerID: sale.CustomerID,
			Payload:    &invoicePayload{Sale: *sale, CashierHint: ref.CashierHint},
		}, nil
	case entity.KindCreditNote:
		var notes CreditNoteList
		if err := a.client.get(ctx, cfg, "sale/creditnote", "sale/creditnote?SaleID="+url.QueryEscape(ref.ID), &notes); err != nil {
			return nil, err
		}
		sale, err := a.sale(ctx, cfg, ref.ID)
		if err != nil {
			return nil, err
		}
		return &entity.RawDocument{
			Kind:       entity.KindCreditNote,
			ID:         sale.ID,
			CustomerID: sale.CustomerID,
			Payload:    &creditNotePayload{Sale: *sale, CreditNotes: notes.CreditNotes, CashierHint: ref.CashierHint},
		}, nil
	}
	return nil, fmt.Errorf("%w: tipo de documento %q para dear", domain.ErrInvalidInput, ref.Kind)
}

func (a *Adapter) sale(ctx context.Context, cfg *entity.ConnectorConfig, id string) (*Sale, error) {
	var sale Sale
	if err := a.client.get(ctx, cfg, "sale", "sale?ID="+url.QueryEscape(id), &sale); err != nil {
		return nil, err
	}
	if sale.ID == "" {
		sale.ID = id
	}
	return &sale, nil
}

// FetchCustomer lee el primer registro de /customer?ID=.
func (a *Adapter) FetchCustomer(ctx context.Context, cfg *entity.ConnectorConfig, customerID string) (entity.CustomerRecord, error) {
	if customerID == "" {
		return nil, domain.NewMissingField("customer_id")
	}
	var list customerList
	if err := a.client.get(ctx, cfg, "customer", "customer?ID="+url.QueryEscape(customerID), &list); err != nil {
		return nil, err
	}
	if len(list.CustomerList) == 0 {
		return nil, &domain.UpstreamError{Platform: platformName, Op: "customer", Err: fmt.Errorf("cliente %s: %w", customerID, domain.ErrNotFound)}
	}
	return entity.CustomerRecord(list.CustomerList[0]), nil
}

// ToBuilderInputs produce una entrada por evento. Con varias facturas o notas crédito en la
// venta, el pipeline procesa solo la primera.
func (a *Adapter) ToBuilderInputs(_ context.Context, cfg *entity.ConnectorConfig, doc *entity.RawDocument, customer entity.CustomerRecord) ([]entity.BuilderInput, error) {
	switch p := doc.Payload.(type) {
	case *invoicePayload:
		in := entity.BuilderInput{
			Header:   a.header(p.Sale, p.CashierHint, customer),
			Customer: customer,
			Fields:   cfg.Fields,
		}
		for _, inv := range p.Sale.Invoices {
			in.Parents = append(in.Parents, entity.ParentDocument{
				ID:     inv.TaskID,
				Number: inv.InvoiceNumber,
				Lines:  rawLines(inv.Lines),
			})
		}
		return []entity.BuilderInput{in}, nil
	case *creditNotePayload:
		in := entity.BuilderInput{
			Header:       a.header(p.Sale, p.CashierHint, customer),
			Customer:     customer,
			Fields:       cfg.Fields,
			IsCreditNote: true,
		}
		if len(p.Sale.Invoices) > 0 {
			in.OriginInvoiceNumber = p.Sale.Invoices[0].InvoiceNumber
		}
		for _, cn := range p.CreditNotes {
			in.Parents = append(in.Parents, entity.ParentDocument{
				ID:     cn.TaskID,
				Number: cn.CreditNoteNumber,
				Lines:  rawLines(cn.Lines),
				CreditNote: &entity.CreditNoteSource{
					Number:        cn.CreditNoteNumber,
					InvoiceNumber: cn.CreditNoteInvoiceNumber,
					Correlation:   cn.TaskID,
					Memo:          cn.Memo,
				},
			})
		}
		return []entity.BuilderInput{in}, nil
	}
	return nil, fmt.Errorf("%w: payload %T no pertenece a dear", domain.ErrInvalidInput, doc.Payload)
}

func (a *Adapter) header(sale Sale, cashierHint string, customer entity.CustomerRecord) entity.DocumentHeader {
	return entity.DocumentHeader{
		ID:                sale.ID,
		CustomerID:        sale.CustomerID,
		CustomerName:      sale.Customer,
		Currency:          sale.CustomerCurrency,
		PaymentMode:       efris.PaymentModeCash,
		InvoiceType:       efris.InvoiceTypeInvoice,
		InvoiceKind:       efris.InvoiceKindInvoice,
		CashierCandidates: []string{cashierHint, customer.String(SalesRepresentativeField)},
		Endpoint:          EndpointInvoice,
	}
}

func rawLines(lines []SaleLine) []entity.RawLine {
	out := make([]entity.RawLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.RawLine{
			Code:        l.ProductID,
			Quantity:    l.Quantity,
			UnitPrice:   l.Price,
			TaxCategory: l.TaxRule,
		})
	}
	return out
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// ListAllGoods recorre /product paginado de a 100.
func (a *Adapter) ListAllGoods(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	for page := 1; ; page++ {
		var list productList
		path := fmt.Sprintf("product?Page=%d&Limit=%d", page, pageLimit)
		if err := a.client.get(ctx, cfg, "product", path, &list); err != nil {
			return nil, err
		}
		for _, p := range list.Products {
			items = append(items, catalogItem(entity.CustomerRecord(p)))
		}
		if len(list.Products) < pageLimit || (list.Total > 0 && len(items) >= list.Total) {
			return items, nil
		}
	}
}

// ListAllContacts recorre /customer paginado de a 100.
func (a *Adapter) ListAllContacts(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CustomerRecord, error) {
	var contacts []entity.CustomerRecord
	for page := 1; ; page++ {
		var list customerList
		path := fmt.Sprintf("customer?Page=%d&Limit=%d", page, pageLimit)
		if err := a.client.get(ctx, cfg, "customer", path, &list); err != nil {
			return nil, err
		}
		for _, c := range list.CustomerList {
			contacts = append(contacts, entity.CustomerRecord(c))
		}
		if len(list.CustomerList) < pageLimit || (list.Total > 0 && len(contacts) >= list.Total) {
			return contacts, nil
		}
	}
}

// ContactFields los clientes de Dear usan el mismo mapeo que las facturas.
func (a *Adapter) ContactFields(cfg *entity.ConnectorConfig) entity.FieldMapping {
	return cfg.Fields
}

// GoodsConfigurationFor el nombre del producto es a la vez nombre y código en EFRIS.
func (a *Adapter) GoodsConfigurationFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsConfiguration {
	return productConfiguration(cfg, item.Name, item.UnitPrice, item.Attributes)
}

// OpeningStockFor entrada de existencias iniciales con los valores por defecto del cliente.
func (a *Adapter) OpeningStockFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsAdjustment {
	price := item.Attributes.String(cfg.Fields.StockInPrice)
	if price == "" {
		price = cfg.Stock.PurchasePrice
	}
	qty := cfg.Stock.Quantity
	if item.QuantityOnHand.IsPositive() {
		qty = item.QuantityOnHand.String()
	}
	remarks := cfg.Stock.Remarks
	if remarks == "" {
		remarks = fmt.Sprintf("%s-%s", item.Code, item.Name)
	}
	return entity.GoodsAdjustment{
		GoodsCode:       item.Name,
		Supplier:        cfg.Stock.Supplier,
		SupplierTIN:     cfg.Stock.SupplierTIN,
		StockInType:     efris.StockInOpeningStock,
		Quantity:        qty,
		PurchasePrice:   price,
		PurchaseRemarks: remarks,
		OperationType:   efris.OperationIncrease,
	}
}

// ── Eventos de productos y conteos ────────────────────────────────────────────

// ConfigurationForProduct completa el producto notificado con sus atributos en Dear.
func (a *Adapter) ConfigurationForProduct(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.ProductRef) (entity.GoodsConfiguration, error) {
	product, err := a.product(ctx, cfg, ref.ProductID)
	if err != nil {
		return entity.GoodsConfiguration{}, err
	}
	name := ref.Name
	if name == "" {
		name = product.String("Name")
	}
	return productConfiguration(cfg, name, ref.Price, product), nil
}

// FetchStockCount lee un conteo físico completado.
func (a *Adapter) FetchStockCount(ctx context.Context, cfg *entity.ConnectorConfig, taskID string) (*entity.StockCount, error) {
	var sa stockAdjustment
	if err := a.client.get(ctx, cfg, "stockadjustment", "stockadjustment?TaskID="+url.QueryEscape(taskID), &sa); err != nil {
		return nil, err
	}
	count := &entity.StockCount{Reference: sa.StocktakeNumber}
	for _, l := range sa.ExistingStockLines {
		count.Lines = append(count.Lines, entity.StockCountLine{
			ProductID:      l.ProductID,
			GoodsCode:      l.ProductName,
			Adjustment:     l.Adjustment,
			QuantityOnHand: l.QuantityOnHand,
		})
	}
	return count, nil
}

// ProductCost costo promedio del producto.
func (a *Adapter) ProductCost(ctx context.Context, cfg *entity.ConnectorConfig, productID string) (decimal.Decimal, error) {
	product, err := a.product(ctx, cfg, productID)
	if err != nil {
		return decimal.Zero, err
	}
	raw := product.String("AverageCost")
	if raw == "" {
		return decimal.Zero, nil
	}
	cost, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: AverageCost %q", domain.ErrInvalidInput, raw)
	}
	return cost, nil
}

func (a *Adapter) product(ctx context.Context, cfg *entity.ConnectorConfig, productID string) (entity.CustomerRecord, error) {
	if productID == "" {
		return nil, domain.NewMissingField("product_id")
	}
	var list productList
	if err := a.client.get(ctx, cfg, "product", "product?ID="+url.QueryEscape(productID), &list); err != nil {
		return nil, err
	}
	if len(list.Products) == 0 {
		return nil, &domain.UpstreamError{Platform: platformName, Op: "product", Err: fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)}
	}
	return entity.CustomerRecord(list.Products[0]), nil
}

// productConfiguration toma los atributos de los campos configurados y, si faltan,
// los valores por defecto del cliente.
func productConfiguration(cfg *entity.ConnectorConfig, name string, price decimal.Decimal, product entity.CustomerRecord) entity.GoodsConfiguration {
	currency := efris.CleanCurrency(product.String(cfg.Fields.StockCurrency))
	if currency == "" {
		currency = efris.CleanCurrency(cfg.Stock.Currency)
	}
	if currency == "" {
		currency = efris.CurrencyUGX
	}
	return entity.GoodsConfiguration{
		GoodsName:            name,
		GoodsCode:            name,
		UnitPrice:            price.String(),
		MeasureUnit:          firstNonEmpty(product.String(cfg.Fields.StockMeasureUnit), cfg.Stock.MeasureUnit),
		Currency:             currency,
		CommodityTaxCategory: firstNonEmpty(product.String(cfg.Fields.StockCommodityCategory), cfg.Stock.CommodityCategory),
		GoodsDescription:     firstNonEmpty(product.String(cfg.Fields.StockDescription), name),
	}
}

func catalogItem(p entity.CustomerRecord) entity.CatalogItem {
	price, _ := decimal.NewFromString(p.String("PriceTier1"))
	return entity.CatalogItem{
		ID:          p.String("ID"),
		Code:        p.String("SKU"),
		Name:        p.String("Name"),
		Description: p.String("Description"),
		UnitPrice:   price,
		Attributes:  p,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
