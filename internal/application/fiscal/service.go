package fiscal

import (
	"context"
	"fmt"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Service procesa eventos entrantes: busca la configuración del cliente, delega la lectura
// y traducción al adaptador de la plataforma y pasa cada entrada por el pipeline.
type Service struct {
	clients    repository.ClientRepository
	connectors map[entity.Platform]ports.Connector
	pipeline   *Pipeline
	log        *logger.Logger
}

// NewService construye el servicio con los adaptadores registrados.
// Las plataformas sin adaptador (quickbooks, ordereasy) responden ErrUnsupportedPlatform.
func NewService(clients repository.ClientRepository, pipeline *Pipeline, log *logger.Logger, connectors ...ports.Connector) *Service {
	if log == nil {
		log = logger.Nop()
	}
	m := make(map[entity.Platform]ports.Connector, len(connectors))
	for _, c := range connectors {
		m[c.Platform()] = c
	}
	return &Service{clients: clients, connectors: m, pipeline: pipeline, log: log.WithComponent("fiscal")}
}

// ClientConfig carga la configuración del cliente. ErrNotFound si no existe o está inactivo.
func (s *Service) ClientConfig(ctx context.Context, clientID string) (*entity.ConnectorConfig, error) {
	if clientID == "" {
		return nil, domain.NewMissingField("client_id")
	}
	cfg, err := s.clients.GetConfig(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración de %s: %w", clientID, err)
	}
	if cfg == nil || !cfg.Active {
		return nil, fmt.Errorf("cliente %s: %w", clientID, domain.ErrNotFound)
	}
	return cfg, nil
}

// Connector devuelve el adaptador de la plataforma del cliente.
func (s *Service) Connector(p entity.Platform) (ports.Connector, error) {
	c, ok := s.connectors[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, p)
	}
	return c, nil
}

// ProcessDocument ejecuta el flujo completo para una factura o nota crédito. Los errores
// posteriores a cargar la configuración quedan en el resultado con el paso que falló;
// solo se devuelve error si el cliente no existe.
func (s *Service) ProcessDocument(ctx context.Context, clientID string, ref entity.DocumentRef) (*dto.ProcessResult, error) {
	cfg, err := s.ClientConfig(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.ProcessWithConfig(ctx, cfg, ref), nil
}

// ProcessWithConfig igual que ProcessDocument con la configuración ya cargada
// (los webhooks la cargan antes para verificar la firma).
func (s *Service) ProcessWithConfig(ctx context.Context, cfg *entity.ConnectorConfig, ref entity.DocumentRef) (res *dto.ProcessResult) {
	res = &dto.ProcessResult{
		ClientID:   cfg.ClientID,
		Platform:   string(cfg.Platform),
		DocumentID: ref.ID,
		Outcomes:   []dto.Outcome{},
	}
	lg := s.log.With().
		Str("client_id", cfg.ClientID).
		Str("platform", string(cfg.Platform)).
		Str("kind", string(ref.Kind)).
		Str("document_id", ref.ID).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			lg.Error().Interface("panic", r).Msg("fallo inesperado procesando el evento")
			res.Status = dto.StatusFailed
			res.Message = "error interno procesando el documento"
		}
	}()

	stepFail := func(step string, err error) *dto.ProcessResult {
		lg.Error().Err(err).Str("step", step).Msg("procesamiento abortado")
		res.Status = dto.StatusFailed
		res.Step = step
		res.Message = err.Error()
		return res
	}

	conn, err := s.Connector(cfg.Platform)
	if err != nil {
		return stepFail(dto.StepLoadConfig, err)
	}
	if ref.ID == "" {
		return stepFail(dto.StepFetchDocument, domain.NewMissingField("document_id"))
	}

	doc, err := conn.FetchDocument(ctx, cfg, ref)
	if err != nil {
		return stepFail(dto.StepFetchDocument, err)
	}
	if doc == nil {
		res.Status = dto.StatusSkipped
		res.Message = "el documento no requiere fiscalización"
		lg.Info().Msg(res.Message)
		return res
	}

	customer, err := conn.FetchCustomer(ctx, cfg, doc.CustomerID)
	if err != nil {
		return stepFail(dto.StepFetchCustomer, err)
	}

	inputs, err := conn.ToBuilderInputs(ctx, cfg, doc, customer)
	if err != nil {
		return stepFail(dto.StepTranslate, err)
	}
	if len(inputs) == 0 {
		res.Status = dto.StatusSkipped
		res.Message = "el documento no produjo envíos"
		lg.Info().Msg(res.Message)
		return res
	}

	for _, in := range inputs {
		res.Outcomes = append(res.Outcomes, s.pipeline.SubmitDocument(ctx, cfg, in))
	}
	status, failed := aggregateStatus(res.Outcomes)
	res.Status = status
	lg.Info().Int("submissions", len(inputs)).Int("failed", failed).Str("status", res.Status).Msg("evento procesado")
	return res
}

// aggregateStatus estado del evento; un reintento en que todo ya estaba aceptado es duplicate.
func aggregateStatus(outcomes []dto.Outcome) (status string, failed int) {
	duplicates := 0
	for _, out := range outcomes {
		switch {
		case out.Failed():
			failed++
		case out.Status == dto.StatusDuplicate:
			duplicates++
		}
	}
	switch {
	case failed == len(outcomes):
		return dto.StatusFailed, failed
	case failed > 0:
		return dto.StatusPartial, failed
	case duplicates == len(outcomes):
		return dto.StatusDuplicate, 0
	default:
		return dto.StatusSubmitted, 0
	}
}
