package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/application/oauth"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

const (
	xeroEventCategoryInvoice = "INVOICE"
	authenticatedMessage     = "You are authenticated"
)

// XeroHandler autorización OAuth2 y webhooks de Xero.
type XeroHandler struct {
	guard webhookGuard
	svc   *fiscal.Service
	oauth *oauth.Service
	log   *logger.Logger
}

// NewXeroHandler construye el handler.
func NewXeroHandler(svc *fiscal.Service, oauthSvc *oauth.Service, log *logger.Logger) *XeroHandler {
	if log == nil {
		log = logger.Nop()
	}
	lg := log.WithComponent("xero-http")
	return &XeroHandler{
		guard: webhookGuard{svc: svc, log: lg},
		svc:   svc,
		oauth: oauthSvc,
		log:   lg,
	}
}

// Authorize godoc
// @Summary      Inicia la autorización OAuth2 con Xero
// @Tags         xero
// @Param        clientID  path  string  true  "cliente"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /xero/{clientID}/ [get]
func (h *XeroHandler) Authorize(c *fiber.Ctx) error {
	authURL, err := h.oauth.Start(c.UserContext(), c.Params("clientID"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Redirect(authURL, fiber.StatusFound)
}

// Callback godoc
// @Summary      Callback OAuth2 de Xero
// @Tags         xero
// @Produce      plain
// @Param        clientID  path   string  true  "cliente"
// @Param        code      query  string  true  "código de autorización"
// @Param        state     query  string  true  "nonce"
// @Success      200  {string}  string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /xero/callback/{clientID} [get]
func (h *XeroHandler) Callback(c *fiber.Ctx) error {
	clientID := c.Params("clientID")
	if e := c.Query("error"); e != "" {
		h.log.Warn().Str("client_id", clientID).Str("error", e).Msg("autorización rechazada en Xero")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AUTHORIZATION_DENIED", Message: e})
	}
	err := h.oauth.Callback(c.UserContext(), clientID, c.Query("state"), c.Query("code"))
	if err != nil {
		if errors.Is(err, domain.ErrAuthentication) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
		}
		return respondError(c, h.log, err)
	}
	return c.SendString(authenticatedMessage)
}

// Webhook godoc
// @Summary      Webhook de eventos de Xero
// @Tags         xero
// @Accept       json
// @Produce      json
// @Param        clientID          path    string                  true  "cliente"
// @Param        X-Xero-Signature  header  string                  true  "base64(HMAC-SHA256)"
// @Param        body              body    dto.XeroWebhookPayload  true  "eventos"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /xero/webhook/{clientID} [post]
func (h *XeroHandler) Webhook(c *fiber.Ctx) error {
	cfg, err := h.guard.authenticate(c, entity.PlatformXero, HeaderXeroSignature)
	if err != nil {
		return unauthorized(c)
	}
	return h.guard.guarded(c, func() error {
		var in dto.XeroWebhookPayload
		if err := decode(c.Body(), &in); err != nil {
			return failedWebhook(c, err)
		}
		// intent to receive: Xero valida la firma con una lista vacía
		if len(in.Events) == 0 {
			return processed(c, dto.WebhookResponse{Status: webhookOK})
		}
		resp := dto.WebhookResponse{Status: webhookOK, Results: []dto.ProcessResult{}}
		for _, ev := range in.Events {
			if !strings.EqualFold(ev.EventCategory, xeroEventCategoryInvoice) || ev.ResourceID == "" {
				continue
			}
			if !sameTenant(cfg, ev.TenantID) {
				h.log.Warn().Str("client_id", cfg.ClientID).Str("tenant_id", ev.TenantID).Msg("evento de otra organización ignorado")
				continue
			}
			ref := entity.DocumentRef{Kind: entity.KindInvoice, ID: ev.ResourceID}
			res := h.svc.ProcessWithConfig(c.UserContext(), cfg, ref)
			if res.Status == dto.StatusFailed || res.Status == dto.StatusPartial {
				resp.Status = dto.StatusPartial
			}
			resp.Results = append(resp.Results, *res)
		}
		return processed(c, resp)
	})
}

func sameTenant(cfg *entity.ConnectorConfig, tenantID string) bool {
	if tenantID == "" || cfg.CredState == nil || cfg.CredState.TenantID == "" {
		return true
	}
	return cfg.CredState.TenantID == tenantID
}
