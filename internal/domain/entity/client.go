package entity

import "time"

// Platform identifica la plataforma ERP/contable de origen.
type Platform string

const (
	PlatformDear       Platform = "dear"
	PlatformXero       Platform = "xero"
	PlatformQuickBooks Platform = "quickbooks"
	PlatformOrderEasy  Platform = "ordereasy"
)

// Valid indica si la plataforma es conocida.
func (p Platform) Valid() bool {
	switch p {
	case PlatformDear, PlatformXero, PlatformQuickBooks, PlatformOrderEasy:
		return true
	}
	return false
}

// GatewayAuth material de autenticación del cliente ante la pasarela (cabeceras MITA).
type GatewayAuth struct {
	TaxID        string `json:"tax_id"`
	APIToken     string `json:"api_token"`
	CountryCode  string `json:"country_code"`
	APIKeyHeader string `json:"api_key_header"`
}

// FieldMapping nombres de los campos de la plataforma de origen que contienen cada dato.
type FieldMapping struct {
	TaxPin                 string `json:"tax_pin"`
	BuyerType              string `json:"buyer_type"`
	IsExport               string `json:"is_export"`
	DefaultCashier         string `json:"default_cashier"` // valor, no nombre de campo
	StockDescription       string `json:"stock_description"`
	StockMeasureUnit       string `json:"stock_measure_unit"`
	StockCommodityCategory string `json:"stock_commodity_category"`
	StockCurrency          string `json:"stock_currency"`
	StockInPrice           string `json:"stock_in_price"`
}

// StockDefaults valores usados en barridos masivos cuando la plataforma no los provee.
type StockDefaults struct {
	CommodityCategory string `json:"commodity_category"`
	Currency          string `json:"currency"`
	MeasureUnit       string `json:"measure_unit"`
	// Existencias iniciales (barrido de ajuste)
	Supplier      string `json:"supplier"`
	SupplierTIN   string `json:"supplier_tin"`
	Quantity      string `json:"quantity"`
	PurchasePrice string `json:"purchase_price"`
	Remarks       string `json:"remarks"`
}

// DearSettings credenciales de Dear (Cin7 Core).
type DearSettings struct {
	BaseURL    string `json:"base_url"`
	AccountID  string `json:"account_id"`
	AppKey     string `json:"app_key"`
	WebhookKey string `json:"webhook_key"`
}

// XeroSettings aplicación OAuth2 de Xero y cuentas contables del cliente.
type XeroSettings struct {
	ClientID            string `json:"client_id"`
	ClientSecret        string `json:"client_secret"`
	WebhookKey          string `json:"webhook_key"`
	CallbackURI         string `json:"callback_uri"`
	Environment         string `json:"environment"`
	PurchaseAccount     string `json:"purchase_account"`
	StockInContact      string `json:"stock_in_contact"`
	ExemptTaxRateCode   string `json:"exempt_tax_rate_code"`
	StandardTaxRateCode string `json:"standard_tax_rate_code"`
}

// QuickBooksSettings solo se almacena; no hay adaptador registrado.
type QuickBooksSettings struct {
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
	RealmID        string `json:"realm_id"`
	DefaultCashier string `json:"default_cashier"`
}

// OrderEasySettings solo se almacena; no hay adaptador registrado.
type OrderEasySettings struct {
	BaseURL string `json:"oe_url"`
	APIKey  string `json:"oe_api_key"`
}

// PlatformSettings ajustes específicos; solo el de la plataforma del cliente está poblado.
type PlatformSettings struct {
	Dear       *DearSettings       `json:"dear,omitempty"`
	Xero       *XeroSettings       `json:"xero,omitempty"`
	QuickBooks *QuickBooksSettings `json:"quickbooks,omitempty"`
	OrderEasy  *OrderEasySettings  `json:"ordereasy,omitempty"`
}

// ConnectorConfig registro de configuración por cliente. El núcleo lo trata como inmutable
// durante un envío; solo CredState cambia (refresco OAuth2) y se relee antes de cada uso.
type ConnectorConfig struct {
	ClientID     string
	CompanyName  string
	Platform     Platform
	Gateway      GatewayAuth
	Fields       FieldMapping
	Stock        StockDefaults
	Settings     PlatformSettings
	CredState    *CredState
	StrictTaxPin bool // comprador empresarial sin TIN bloquea el envío
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WebhookKey devuelve el secreto compartido de webhooks de la plataforma del cliente.
func (c *ConnectorConfig) WebhookKey() string {
	switch c.Platform {
	case PlatformDear:
		if c.Settings.Dear != nil {
			return c.Settings.Dear.WebhookKey
		}
	case PlatformXero:
		if c.Settings.Xero != nil {
			return c.Settings.Xero.WebhookKey
		}
	}
	return ""
}
