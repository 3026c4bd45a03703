package fiscal

import (
	"context"
	"fmt"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	domainefris "github.com/paymojammn/taxmoja-app/internal/domain/efris"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Operaciones de barrido masivo.
const (
	SweepConfigure = "bulk_goods_configure"
	SweepAdjust    = "bulk_goods_adjust"
	SweepAudit     = "bulk_buyer_audit"
)

// SweepService barridos masivos sobre el catálogo de la plataforma. Son secuenciales,
// no transaccionales y continúan ante errores por elemento.
type SweepService struct {
	svc      *Service
	pipeline *Pipeline
	log      *logger.Logger
}

// NewSweepService construye el servicio de barridos.
func NewSweepService(svc *Service, pipeline *Pipeline, log *logger.Logger) *SweepService {
	if log == nil {
		log = logger.Nop()
	}
	return &SweepService{svc: svc, pipeline: pipeline, log: log.WithComponent("sweep")}
}

// Run ejecuta el barrido indicado por nombre (CLI y rutas).
func (s *SweepService) Run(ctx context.Context, clientID, operation string) (*dto.SweepSummary, error) {
	switch operation {
	case SweepConfigure:
		return s.ConfigureAll(ctx, clientID)
	case SweepAdjust:
		return s.AdjustAll(ctx, clientID)
	case SweepAudit:
		return s.AuditBuyers(ctx, clientID)
	}
	return nil, fmt.Errorf("%w: barrido %q", domain.ErrInvalidInput, operation)
}

func (s *SweepService) catalog(ctx context.Context, clientID string) (*entity.ConnectorConfig, ports.Catalog, error) {
	cfg, err := s.svc.ClientConfig(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.svc.Connector(cfg.Platform)
	if err != nil {
		return nil, nil, err
	}
	cat, ok := c.(ports.Catalog)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s no expone catálogo", domain.ErrCapabilityUnsupported, cfg.Platform)
	}
	return cfg, cat, nil
}

// ConfigureAll registra en EFRIS todos los bienes del catálogo.
func (s *SweepService) ConfigureAll(ctx context.Context, clientID string) (*dto.SweepSummary, error) {
	cfg, cat, err := s.catalog(ctx, clientID)
	if err != nil {
		return nil, err
	}
	items, err := cat.ListAllGoods(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sum := &dto.SweepSummary{ClientID: clientID, Operation: SweepConfigure, Items: []dto.SweepItem{}}
	for _, item := range items {
		out := s.pipeline.SubmitGoodsConfiguration(ctx, cfg, cat.GoodsConfigurationFor(cfg, item))
		sum.Add(itemFromOutcome(out), !out.Failed())
	}
	s.log.Info().Str("client_id", clientID).Int("total", sum.Total).Int("failed", sum.Failed).Msg("barrido de configuración terminado")
	return sum.Finish(), nil
}

// AdjustAll envía las existencias iniciales de todos los bienes del catálogo.
func (s *SweepService) AdjustAll(ctx context.Context, clientID string) (*dto.SweepSummary, error) {
	cfg, cat, err := s.catalog(ctx, clientID)
	if err != nil {
		return nil, err
	}
	items, err := cat.ListAllGoods(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sum := &dto.SweepSummary{ClientID: clientID, Operation: SweepAdjust, Items: []dto.SweepItem{}}
	for _, item := range items {
		out := s.pipeline.SubmitGoodsAdjustment(ctx, cfg, cat.OpeningStockFor(cfg, item))
		sum.Add(itemFromOutcome(out), !out.Failed())
	}
	s.log.Info().Str("client_id", clientID).Int("total", sum.Total).Int("failed", sum.Failed).Msg("barrido de ajuste terminado")
	return sum.Finish(), nil
}

// AuditBuyers resuelve el perfil fiscal de cada contacto y reporta las empresas sin TIN.
// No envía nada a la pasarela.
func (s *SweepService) AuditBuyers(ctx context.Context, clientID string) (*dto.SweepSummary, error) {
	cfg, cat, err := s.catalog(ctx, clientID)
	if err != nil {
		return nil, err
	}
	contacts, err := cat.ListAllContacts(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fields := cat.ContactFields(cfg)
	sum := &dto.SweepSummary{ClientID: clientID, Operation: SweepAudit, Items: []dto.SweepItem{}}
	for _, c := range contacts {
		ref := contactReference(c)
		if w := domainefris.CheckBuyer(domainefris.ResolveBuyer(c, fields)); w != nil {
			sum.Add(dto.SweepItem{Reference: ref, Status: w.Code, Message: w.Message}, false)
			continue
		}
		sum.Add(dto.SweepItem{Reference: ref, Status: "ok"}, true)
	}
	return sum.Finish(), nil
}

func contactReference(c entity.CustomerRecord) string {
	for _, k := range []string{"Name", "ContactID", "ID"} {
		if v := c.String(k); v != "" {
			return v
		}
	}
	return "(sin nombre)"
}
