package entity

import "github.com/shopspring/decimal"

// GoodsLine línea canónica de bienes en el payload de la pasarela.
type GoodsLine struct {
	GoodCode    string          `json:"good_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"sale_price"`
	TaxCategory string          `json:"tax_category"`
}

// RawLine línea tal como llega de la plataforma, ya tipada por el adaptador.
type RawLine struct {
	Code        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxCategory string
}

// CatalogItem producto listado por la plataforma en barridos masivos.
type CatalogItem struct {
	ID             string
	Code           string
	Name           string
	Description    string
	UnitPrice      decimal.Decimal
	QuantityOnHand decimal.Decimal
	Attributes     CustomerRecord // campos crudos para mapeos configurables
}
