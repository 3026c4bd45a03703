package ports

//go:generate mockgen -source=connector.go -destination=mocks/connector_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// Connector adaptador de una plataforma de origen. Traduce sus documentos a entradas
// del pipeline canónico; no contiene reglas fiscales.
type Connector interface {
	Platform() entity.Platform
	// FetchDocument lee el documento referenciado por el evento.
	FetchDocument(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.DocumentRef) (*entity.RawDocument, error)
	// FetchCustomer lee el registro crudo del cliente/contacto.
	FetchCustomer(ctx context.Context, cfg *entity.ConnectorConfig, customerID string) (entity.CustomerRecord, error)
	// ToBuilderInputs devuelve un BuilderInput por envío (vacío si el documento no aplica).
	ToBuilderInputs(ctx context.Context, cfg *entity.ConnectorConfig, doc *entity.RawDocument, customer entity.CustomerRecord) ([]entity.BuilderInput, error)
}

// Catalog plataformas que permiten barridos masivos de bienes y contactos.
type Catalog interface {
	ListAllGoods(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CatalogItem, error)
	ListAllContacts(ctx context.Context, cfg *entity.ConnectorConfig) ([]entity.CustomerRecord, error)
	// GoodsConfigurationFor traduce un producto del catálogo al payload de stock/configuration.
	GoodsConfigurationFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsConfiguration
	// OpeningStockFor traduce un producto del catálogo a una entrada de existencias iniciales.
	OpeningStockFor(cfg *entity.ConnectorConfig, item entity.CatalogItem) entity.GoodsAdjustment
	// ContactFields mapeo efectivo para resolver compradores de ListAllContacts.
	ContactFields(cfg *entity.ConnectorConfig) entity.FieldMapping
}

// GoodsEventSource plataformas que notifican altas de productos y conteos físicos por webhook.
type GoodsEventSource interface {
	ConfigurationForProduct(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.ProductRef) (entity.GoodsConfiguration, error)
	FetchStockCount(ctx context.Context, cfg *entity.ConnectorConfig, taskID string) (*entity.StockCount, error)
	ProductCost(ctx context.Context, cfg *entity.ConnectorConfig, productID string) (decimal.Decimal, error)
}

// GoodsWriter plataformas contables donde el alta o ajuste de un bien también se registra.
type GoodsWriter interface {
	PushGoods(ctx context.Context, cfg *entity.ConnectorConfig, setup entity.GoodsSetup) error
	RecordStockMovement(ctx context.Context, cfg *entity.ConnectorConfig, mv entity.StockMovement) error
}
