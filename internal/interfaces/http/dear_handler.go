package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// DearHandler webhooks de Dear (Cin7 Core): venta, nota crédito, producto y conteo físico.
type DearHandler struct {
	guard webhookGuard
	svc   *fiscal.Service
	goods *fiscal.GoodsService
}

// NewDearHandler construye el handler.
func NewDearHandler(svc *fiscal.Service, goods *fiscal.GoodsService, log *logger.Logger) *DearHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DearHandler{
		guard: webhookGuard{svc: svc, log: log.WithComponent("dear-webhook")},
		svc:   svc,
		goods: goods,
	}
}

// Invoice godoc
// @Summary      Webhook de venta autorizada
// @Tags         dear
// @Accept       json
// @Produce      json
// @Param        clientID             path    string               true  "cliente"
// @Param        X-Webhook-Signature  header  string               true  "base64(HMAC-SHA256)"
// @Param        body                 body    dto.DearSaleWebhook  true  "SaleTaskID, SaleRepEmail"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dear/invoice/{clientID} [post]
func (h *DearHandler) Invoice(c *fiber.Ctx) error {
	cfg, err := h.guard.authenticate(c, entity.PlatformDear, HeaderDearSignature)
	if err != nil {
		return unauthorized(c)
	}
	return h.guard.guarded(c, func() error {
		var in dto.DearSaleWebhook
		if err := decode(c.Body(), &in); err != nil {
			return failedWebhook(c, err)
		}
		if in.SaleTaskID == "" {
			return failedWebhook(c, domain.NewMissingField("SaleTaskID"))
		}
		ref := entity.DocumentRef{Kind: entity.KindInvoice, ID: in.SaleTaskID, CashierHint: in.SaleRepEmail}
		return processed(c, resultResponse(h.svc.ProcessWithConfig(c.UserContext(), cfg, ref)))
	})
}

// CreditNote godoc
// @Summary      Webhook de nota crédito autorizada
// @Tags         dear
// @Accept       json
// @Produce      json
// @Param        clientID             path    string                     true  "cliente"
// @Param        X-Webhook-Signature  header  string                     true  "base64(HMAC-SHA256)"
// @Param        body                 body    dto.DearCreditNoteWebhook  true  "SaleID"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dear/credit_note/{clientID} [post]
func (h *DearHandler) CreditNote(c *fiber.Ctx) error {
	cfg, err := h.guard.authenticate(c, entity.PlatformDear, HeaderDearSignature)
	if err != nil {
		return unauthorized(c)
	}
	return h.guard.guarded(c, func() error {
		var in dto.DearCreditNoteWebhook
		if err := decode(c.Body(), &in); err != nil {
			return failedWebhook(c, err)
		}
		if in.SaleID == "" {
			return failedWebhook(c, domain.NewMissingField("SaleID"))
		}
		ref := entity.DocumentRef{Kind: entity.KindCreditNote, ID: in.SaleID}
		return processed(c, resultResponse(h.svc.ProcessWithConfig(c.UserContext(), cfg, ref)))
	})
}

// GoodsConfigure godoc
// @Summary      Webhook de producto creado o actualizado
// @Tags         dear
// @Accept       json
// @Produce      json
// @Param        clientID             path    string                   true  "cliente"
// @Param        X-Webhook-Signature  header  string                   true  "base64(HMAC-SHA256)"
// @Param        body                 body    []dto.DearProductWebhook true  "productos"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dear/goods_configure/{clientID} [post]
func (h *DearHandler) GoodsConfigure(c *fiber.Ctx) error {
	cfg, err := h.guard.authenticate(c, entity.PlatformDear, HeaderDearSignature)
	if err != nil {
		return unauthorized(c)
	}
	return h.guard.guarded(c, func() error {
		var in []dto.DearProductWebhook
		if err := decode(c.Body(), &in); err != nil {
			return failedWebhook(c, err)
		}
		refs := make([]entity.ProductRef, 0, len(in))
		for _, p := range in {
			refs = append(refs, entity.ProductRef{ProductID: p.ProductID, Name: p.ProductName, Price: p.Price})
		}
		sum, err := h.goods.ConfigureFromEvent(c.UserContext(), cfg, refs)
		if err != nil {
			return failedWebhook(c, err)
		}
		return processed(c, sweepResponse(sum))
	})
}

// GoodsAdjust godoc
// @Summary      Webhook de conteo físico completado
// @Tags         dear
// @Accept       json
// @Produce      json
// @Param        clientID             path    string                          true  "cliente"
// @Param        X-Webhook-Signature  header  string                          true  "base64(HMAC-SHA256)"
// @Param        body                 body    dto.DearStockAdjustmentWebhook  true  "TaskID"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dear/goods_adjust/{clientID} [post]
func (h *DearHandler) GoodsAdjust(c *fiber.Ctx) error {
	cfg, err := h.guard.authenticate(c, entity.PlatformDear, HeaderDearSignature)
	if err != nil {
		return unauthorized(c)
	}
	return h.guard.guarded(c, func() error {
		var in dto.DearStockAdjustmentWebhook
		if err := decode(c.Body(), &in); err != nil {
			return failedWebhook(c, err)
		}
		sum, err := h.goods.AdjustFromEvent(c.UserContext(), cfg, in.TaskID)
		if err != nil {
			return failedWebhook(c, err)
		}
		return processed(c, sweepResponse(sum))
	})
}

// decode lee el cuerpo ya verificado; no depende del Content-Type que envíe la plataforma.
func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: cuerpo del webhook: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
