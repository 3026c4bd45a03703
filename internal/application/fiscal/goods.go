package fiscal

import (
	"context"
	"fmt"
	"strings"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	domainefris "github.com/paymojammn/taxmoja-app/internal/domain/efris"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// GoodsService registro de bienes y ajustes de inventario, disparados por webhook o por un operador.
// Las capacidades se descubren sobre los adaptadores registrados en Service.
type GoodsService struct {
	svc      *Service
	pipeline *Pipeline
	log      *logger.Logger
}

// NewGoodsService construye el servicio de bienes.
func NewGoodsService(svc *Service, pipeline *Pipeline, log *logger.Logger) *GoodsService {
	if log == nil {
		log = logger.Nop()
	}
	return &GoodsService{svc: svc, pipeline: pipeline, log: log.WithComponent("goods")}
}

func (g *GoodsService) eventSource(p entity.Platform) (ports.GoodsEventSource, error) {
	c, err := g.svc.Connector(p)
	if err != nil {
		return nil, err
	}
	src, ok := c.(ports.GoodsEventSource)
	if !ok {
		return nil, fmt.Errorf("%w: %s no notifica productos", domain.ErrCapabilityUnsupported, p)
	}
	return src, nil
}

// writer devuelve nil si la plataforma no registra bienes del lado contable.
func (g *GoodsService) writer(p entity.Platform) ports.GoodsWriter {
	c, err := g.svc.Connector(p)
	if err != nil {
		return nil
	}
	w, _ := c.(ports.GoodsWriter)
	return w
}

// ConfigureFromEvent registra en EFRIS cada producto notificado. Continúa ante errores por elemento.
func (g *GoodsService) ConfigureFromEvent(ctx context.Context, cfg *entity.ConnectorConfig, refs []entity.ProductRef) (*dto.SweepSummary, error) {
	src, err := g.eventSource(cfg.Platform)
	if err != nil {
		return nil, err
	}
	sum := &dto.SweepSummary{ClientID: cfg.ClientID, Operation: "goods_configure", Items: []dto.SweepItem{}}
	for _, ref := range refs {
		gc, err := src.ConfigurationForProduct(ctx, cfg, ref)
		if err != nil {
			g.log.Error().Err(err).Str("client_id", cfg.ClientID).Str("product_id", ref.ProductID).Msg("no se pudo leer el producto")
			sum.Add(dto.SweepItem{Reference: ref.ProductID, Status: dto.StatusFailed, Message: err.Error()}, false)
			continue
		}
		out := g.pipeline.SubmitGoodsConfiguration(ctx, cfg, gc)
		sum.Add(itemFromOutcome(out), !out.Failed())
	}
	return sum.Finish(), nil
}

// AdjustFromEvent convierte un conteo físico en ajustes, uno por línea. Las líneas sin variación se omiten.
func (g *GoodsService) AdjustFromEvent(ctx context.Context, cfg *entity.ConnectorConfig, taskID string) (*dto.SweepSummary, error) {
	if taskID == "" {
		return nil, domain.NewMissingField("task_id")
	}
	src, err := g.eventSource(cfg.Platform)
	if err != nil {
		return nil, err
	}
	count, err := src.FetchStockCount(ctx, cfg, taskID)
	if err != nil {
		return nil, err
	}
	sum := &dto.SweepSummary{ClientID: cfg.ClientID, Operation: "goods_adjust", Items: []dto.SweepItem{}}
	for _, line := range count.Lines {
		if line.Adjustment.Equal(line.QuantityOnHand) {
			sum.Add(dto.SweepItem{Reference: line.ProductID, Status: dto.StatusSkipped, Message: "sin variación"}, true)
			continue
		}
		price, err := src.ProductCost(ctx, cfg, line.ProductID)
		if err != nil {
			g.log.Error().Err(err).Str("client_id", cfg.ClientID).Str("product_id", line.ProductID).Msg("no se pudo leer el costo del producto")
			sum.Add(dto.SweepItem{Reference: line.ProductID, Status: dto.StatusFailed, Message: err.Error()}, false)
			continue
		}
		adj, err := domainefris.AdjustmentFromCount(line, price, count.Reference)
		if err != nil {
			sum.Add(dto.SweepItem{Reference: line.ProductID, Status: dto.StatusFailed, Message: err.Error()}, false)
			continue
		}
		out := g.pipeline.SubmitGoodsAdjustment(ctx, cfg, adj)
		sum.Add(itemFromOutcome(out), !out.Failed())
	}
	return sum.Finish(), nil
}

// ConfigureGoods alta de un bien por un operador: primero en la plataforma contable
// (si la soporta) y luego en EFRIS.
func (g *GoodsService) ConfigureGoods(ctx context.Context, clientID string, req dto.GoodsConfigurationRequest) (*dto.Outcome, error) {
	cfg, err := g.svc.ClientConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}
	gc, err := configurationFromRequest(req)
	if err != nil {
		return nil, err
	}
	if w := g.writer(cfg.Platform); w != nil {
		setup := entity.GoodsSetup{Configuration: gc, CommodityTaxRate: req.CommodityTaxRate}
		if err := w.PushGoods(ctx, cfg, setup); err != nil {
			g.log.Error().Err(err).Str("client_id", clientID).Str("goods_code", gc.GoodsCode).Msg("no se pudo registrar el bien en la plataforma")
			out := fail(dto.Outcome{Kind: string(entity.KindGoodsConfiguration), Reference: gc.GoodsCode}, dto.StepUpstreamWrite, err)
			return &out, nil
		}
	}
	out := g.pipeline.SubmitGoodsConfiguration(ctx, cfg, gc)
	return &out, nil
}

// AdjustGoods ajuste de inventario por un operador; ACCPAY es entrada y ACCREC salida.
func (g *GoodsService) AdjustGoods(ctx context.Context, clientID string, req dto.GoodsAdjustmentRequest) (*dto.Outcome, error) {
	cfg, err := g.svc.ClientConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}
	mv, err := movementFromRequest(req)
	if err != nil {
		return nil, err
	}
	if w := g.writer(cfg.Platform); w != nil {
		if err := w.RecordStockMovement(ctx, cfg, mv); err != nil {
			g.log.Error().Err(err).Str("client_id", clientID).Str("goods_code", req.GoodsCode).Msg("no se pudo registrar el movimiento en la plataforma")
			out := fail(dto.Outcome{Kind: string(entity.KindGoodsAdjustment), Reference: req.GoodsCode}, dto.StepUpstreamWrite, err)
			return &out, nil
		}
	}
	out := g.pipeline.SubmitGoodsAdjustment(ctx, cfg, mv.Adjustment)
	return &out, nil
}

func configurationFromRequest(req dto.GoodsConfigurationRequest) (entity.GoodsConfiguration, error) {
	if strings.TrimSpace(req.GoodsCode) == "" {
		return entity.GoodsConfiguration{}, domain.NewMissingField("goods_code")
	}
	name := strings.TrimSpace(req.GoodsName)
	if name == "" {
		name = req.GoodsCode
	}
	currency := efris.CurrencyUGX
	if req.Currency != "" {
		currency = efris.CleanCurrency(req.Currency)
	}
	if currency == "" {
		return entity.GoodsConfiguration{}, fmt.Errorf("%w: moneda %q no soportada", domain.ErrInvalidInput, req.Currency)
	}
	if req.UnitPrice.IsNegative() {
		return entity.GoodsConfiguration{}, fmt.Errorf("%w: unit_price negativo", domain.ErrInvalidInput)
	}
	desc := req.Description
	if desc == "" {
		desc = name
	}
	return entity.GoodsConfiguration{
		GoodsName:            name,
		GoodsCode:            strings.TrimSpace(req.GoodsCode),
		UnitPrice:            req.UnitPrice.String(),
		MeasureUnit:          req.MeasureUnit,
		Currency:             currency,
		CommodityTaxCategory: req.CommodityTaxCategory,
		GoodsDescription:     desc,
	}, nil
}

// movementFromRequest completa los códigos de operación a partir del tipo de documento
// cuando el operador no los envía.
func movementFromRequest(req dto.GoodsAdjustmentRequest) (entity.StockMovement, error) {
	if strings.TrimSpace(req.GoodsCode) == "" {
		return entity.StockMovement{}, domain.NewMissingField("goods_code")
	}
	if !req.Quantity.IsPositive() {
		return entity.StockMovement{}, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	docType := strings.ToUpper(strings.TrimSpace(req.DocumentType))
	op, adjust, stockIn := req.OperationType, req.AdjustType, req.StockInType
	switch docType {
	case entity.AdjustmentIncrease:
		if op == "" {
			op = efris.OperationIncrease
		}
		if stockIn == "" && op == efris.OperationIncrease {
			stockIn = efris.StockInLocalPurchase
		}
	case entity.AdjustmentDecrease:
		if op == "" {
			op = efris.OperationDecrease
		}
		if adjust == "" && op == efris.OperationDecrease {
			adjust = efris.AdjustOthers
		}
	default:
		return entity.StockMovement{}, fmt.Errorf("%w: document_type %q (ACCPAY o ACCREC)", domain.ErrInvalidInput, req.DocumentType)
	}
	return entity.StockMovement{
		DocumentType:     docType,
		CommodityTaxRate: req.CommodityTaxRate,
		Adjustment: entity.GoodsAdjustment{
			GoodsCode:       strings.TrimSpace(req.GoodsCode),
			Supplier:        req.Supplier,
			SupplierTIN:     req.SupplierTIN,
			StockInType:     stockIn,
			Quantity:        req.Quantity.String(),
			PurchasePrice:   req.PurchasePrice.String(),
			PurchaseRemarks: req.PurchaseRemarks,
			OperationType:   op,
			AdjustType:      adjust,
		},
	}, nil
}

func itemFromOutcome(out dto.Outcome) dto.SweepItem {
	return dto.SweepItem{Reference: out.Reference, Status: out.Status, Message: out.Message}
}
