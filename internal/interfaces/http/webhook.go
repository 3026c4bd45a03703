package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
	"github.com/paymojammn/taxmoja-app/pkg/webhook"
)

// Cabeceras de firma por plataforma.
const (
	HeaderDearSignature = "X-Webhook-Signature"
	HeaderXeroSignature = "X-Xero-Signature"
)

// Estados del cuerpo de respuesta de un webhook.
const (
	webhookOK    = "ok"
	webhookError = "error"
)

var (
	errBadSignature  = errors.New("firma del webhook inválida")
	errInternalEvent = errors.New("error interno procesando el evento")
)

// webhookGuard verifica la firma antes de que cualquier adaptador lea el cuerpo.
type webhookGuard struct {
	svc *fiscal.Service
	log *logger.Logger
}

// authenticate carga la configuración del cliente y compara la firma de la cabecera con
// la del cuerpo exacto. Cliente desconocido, de otra plataforma o sin secreto cuentan
// como firma inválida.
func (g webhookGuard) authenticate(c *fiber.Ctx, platform entity.Platform, header string) (*entity.ConnectorConfig, error) {
	clientID := c.Params("clientID")
	cfg, err := g.svc.ClientConfig(c.UserContext(), clientID)
	if err != nil {
		g.log.Warn().Err(err).Str("client_id", clientID).Msg("webhook de cliente desconocido")
		return nil, errBadSignature
	}
	if cfg.Platform != platform {
		g.log.Warn().Str("client_id", clientID).Str("platform", string(cfg.Platform)).Msg("webhook de otra plataforma")
		return nil, errBadSignature
	}
	if !webhook.Verify(c.Body(), c.Get(header), cfg.WebhookKey()) {
		g.log.Warn().Str("client_id", clientID).Str("platform", string(platform)).Msg("firma de webhook inválida")
		return nil, errBadSignature
	}
	return cfg, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: errBadSignature.Error()})
}

// processed responde 200 aun cuando el procesamiento falla, para que la plataforma no reintente.
func processed(c *fiber.Ctx, resp dto.WebhookResponse) error {
	return c.Status(fiber.StatusOK).JSON(resp)
}

func failedWebhook(c *fiber.Ctx, err error) error {
	return processed(c, dto.WebhookResponse{Status: webhookError, Message: err.Error()})
}

// guarded ejecuta fn y convierte un panic en respuesta 200 con mensaje genérico.
func (g webhookGuard) guarded(c *fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Str("path", c.Path()).Msg("fallo inesperado procesando el webhook")
			err = failedWebhook(c, errInternalEvent)
		}
	}()
	return fn()
}

func resultResponse(res *dto.ProcessResult) dto.WebhookResponse {
	return dto.WebhookResponse{Status: res.Status, Message: res.Message, Results: []dto.ProcessResult{*res}}
}

func sweepResponse(sum *dto.SweepSummary) dto.WebhookResponse {
	status := webhookOK
	if sum.Failed > 0 {
		status = dto.StatusPartial
		if sum.Succeeded == 0 {
			status = dto.StatusFailed
		}
	}
	return dto.WebhookResponse{Status: status, Message: sum.Summary, Sweep: sum}
}
