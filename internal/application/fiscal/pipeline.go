// Package fiscal orquesta el envío de documentos a la pasarela EFRIS:
//
//	comprador → normalización → enlace de nota crédito → payload → envío → bitácora
//
// Los adaptadores de plataforma solo traducen; las reglas viven en domain/efris.
package fiscal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/ports"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	domainefris "github.com/paymojammn/taxmoja-app/internal/domain/efris"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/internal/domain/repository"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// Pipeline construye payloads canónicos y los envía a la pasarela, un POST por envío.
type Pipeline struct {
	gateway     ports.GatewaySubmitter
	submissions repository.SubmissionRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewPipeline construye el pipeline. submissions puede ser nil (sin bitácora ni deduplicación).
func NewPipeline(gateway ports.GatewaySubmitter, submissions repository.SubmissionRepository, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		gateway:     gateway,
		submissions: submissions,
		log:         log.WithComponent("pipeline"),
		now:         time.Now,
	}
}

// SubmitDocument arma y envía una factura o nota crédito. Nunca devuelve error: el resultado
// indica el paso que falló.
func (p *Pipeline) SubmitDocument(ctx context.Context, cfg *entity.ConnectorConfig, in entity.BuilderInput) dto.Outcome {
	kind := entity.KindInvoice
	if in.IsCreditNote {
		kind = entity.KindCreditNote
	}
	out := dto.Outcome{Kind: string(kind), Reference: in.Header.ID}
	clientID := ""
	if cfg != nil {
		clientID = cfg.ClientID
	}
	lg := p.log.With().Str("client_id", clientID).Str("kind", string(kind)).Str("document_id", in.Header.ID).Logger()

	buyer := domainefris.ResolveBuyer(in.Customer, in.Fields)
	if w := domainefris.CheckBuyer(buyer); w != nil {
		lg.Warn().Str("warning", w.Code).Str("customer_id", in.Header.CustomerID).Msg(w.Message)
		out.Warnings = append(out.Warnings, w.String())
	}

	norm, err := domainefris.NormalizeFirst(in.Parents)
	if err != nil {
		return fail(out, dto.StepNormalize, err)
	}
	if norm.Ignored > 0 {
		w := domain.ValidationWarning{
			Code:    domain.WarnExtraParentDocuments,
			Message: fmt.Sprintf("se procesó solo el primer documento; %d ignorados", norm.Ignored),
		}
		lg.Warn().Str("warning", w.Code).Int("ignored", norm.Ignored).Msg(w.Message)
		out.Warnings = append(out.Warnings, w.String())
	}

	doc := domainefris.Document{DocumentHeader: in.Header, Number: norm.Parent.Number}
	if in.IsCreditNote && norm.Parent.CreditNote != nil {
		cn := norm.Parent.CreditNote
		link := domainefris.LinkCreditNote(*cn, in.OriginInvoiceNumber)
		doc.Link = &link
		if cn.Number != "" {
			doc.Number = cn.Number
		}
	}

	inv, err := domainefris.Build(doc, buyer, norm.Goods, cfg, in.IsCreditNote)
	if err != nil {
		return fail(out, dto.StepBuild, err)
	}
	out.Reference = inv.InstanceInvoiceID

	endpoint := in.Header.Endpoint
	if endpoint == "" {
		endpoint = efris.EndpointInvoiceQueue
	}
	return p.submit(ctx, cfg, kind, inv.InstanceInvoiceID, endpoint, inv, true, out)
}

// SubmitGoodsConfiguration registra (o actualiza) un bien en EFRIS.
func (p *Pipeline) SubmitGoodsConfiguration(ctx context.Context, cfg *entity.ConnectorConfig, gc entity.GoodsConfiguration) dto.Outcome {
	out := dto.Outcome{Kind: string(entity.KindGoodsConfiguration), Reference: gc.GoodsCode}
	if cfg == nil {
		return fail(out, dto.StepValidate, domain.NewMissingField("config"))
	}
	if gc.GoodsCode == "" {
		return fail(out, dto.StepValidate, domain.NewMissingField("goods_code"))
	}
	if gc.GoodsName == "" {
		return fail(out, dto.StepValidate, domain.NewMissingField("goods_name"))
	}
	return p.submit(ctx, cfg, entity.KindGoodsConfiguration, gc.GoodsCode, efris.EndpointStockConfiguration, gc, false, out)
}

// SubmitGoodsAdjustment envía una entrada o reducción de inventario tras validar los códigos.
func (p *Pipeline) SubmitGoodsAdjustment(ctx context.Context, cfg *entity.ConnectorConfig, adj entity.GoodsAdjustment) dto.Outcome {
	out := dto.Outcome{Kind: string(entity.KindGoodsAdjustment), Reference: adj.GoodsCode}
	if cfg == nil {
		return fail(out, dto.StepValidate, domain.NewMissingField("config"))
	}
	if adj.GoodsCode == "" {
		return fail(out, dto.StepValidate, domain.NewMissingField("goods_code"))
	}
	if err := efris.ValidateAdjustmentCodes(adj.OperationType, adj.AdjustType, adj.StockInType); err != nil {
		return fail(out, dto.StepValidate, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	return p.submit(ctx, cfg, entity.KindGoodsAdjustment, adj.GoodsCode, efris.EndpointStockAdjustment, adj, false, out)
}

// submit hace un único POST y registra el resultado. Con dedupe consulta antes la bitácora
// y no reenvía documentos ya aceptados.
func (p *Pipeline) submit(
	ctx context.Context,
	cfg *entity.ConnectorConfig,
	kind entity.DocumentKind,
	reference, endpoint string,
	payload any,
	dedupe bool,
	out dto.Outcome,
) dto.Outcome {
	lg := p.log.With().Str("client_id", cfg.ClientID).Str("kind", string(kind)).Str("reference", reference).Logger()

	if dedupe && p.submissions != nil {
		prev, err := p.submissions.FindAccepted(ctx, cfg.ClientID, kind, reference)
		if err != nil {
			lg.Warn().Err(err).Msg("no se pudo consultar la bitácora; se envía igualmente")
		} else if prev != nil {
			lg.Info().Str("submission_id", prev.ID).Msg("documento ya aceptado por la pasarela; no se reenvía")
			out.Status = dto.StatusDuplicate
			out.Message = fmt.Sprintf("ya enviado el %s", prev.CreatedAt.Format(time.RFC3339))
			out.GatewayStatus = prev.GatewayStatus
			return out
		}
	}

	resp, err := p.gateway.Submit(ctx, endpoint, payload, cfg.Gateway)
	sub := &entity.Submission{
		ID:        uuid.New().String(),
		ClientID:  cfg.ClientID,
		Platform:  cfg.Platform,
		Kind:      kind,
		Reference: reference,
		Endpoint:  endpoint,
		CreatedAt: p.now(),
	}
	switch {
	case err != nil:
		lg.Error().Err(err).Str("endpoint", endpoint).Msg("envío a la pasarela fallido")
		out = fail(out, dto.StepSubmit, err)
		sub.Status = entity.SubmissionFailed
		sub.Error = err.Error()
	case !resp.Accepted():
		lg.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("la pasarela rechazó el envío")
		out.Status = dto.StatusRejected
		out.Step = dto.StepSubmit
		out.GatewayStatus = resp.StatusCode
		out.GatewayBody = string(resp.Body)
		out.Message = fmt.Sprintf("la pasarela respondió %d", resp.StatusCode)
		sub.Status = entity.SubmissionRejected
		sub.GatewayStatus = resp.StatusCode
		sub.GatewayBody = string(resp.Body)
	default:
		lg.Info().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("envío aceptado por la pasarela")
		out.Status = dto.StatusSubmitted
		out.GatewayStatus = resp.StatusCode
		out.GatewayBody = string(resp.Body)
		sub.Status = entity.SubmissionSubmitted
		sub.GatewayStatus = resp.StatusCode
		sub.GatewayBody = string(resp.Body)
	}
	p.journal(ctx, sub, payload)
	return out
}

// journal persiste el envío; un fallo de bitácora no cambia el resultado.
func (p *Pipeline) journal(ctx context.Context, sub *entity.Submission, payload any) {
	if p.submissions == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		p.log.Error().Err(err).Str("reference", sub.Reference).Msg("no se pudo serializar el payload para la bitácora")
		return
	}
	sub.Payload = raw
	if err := p.submissions.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			p.log.Warn().Str("reference", sub.Reference).Msg("envío concurrente ya registrado como aceptado")
			return
		}
		p.log.Error().Err(err).Str("reference", sub.Reference).Msg("no se pudo registrar el envío")
	}
}

func fail(out dto.Outcome, step string, err error) dto.Outcome {
	out.Status = dto.StatusFailed
	out.Step = step
	out.Message = err.Error()
	return out
}
