package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// OperatorHandler disparos manuales de operadores: barridos, alta de bienes, ajustes y bitácora.
type OperatorHandler struct {
	sweeps  *fiscal.SweepService
	goods   *fiscal.GoodsService
	journal *fiscal.Journal
	log     *logger.Logger
}

// NewOperatorHandler construye el handler.
func NewOperatorHandler(sweeps *fiscal.SweepService, goods *fiscal.GoodsService, journal *fiscal.Journal, log *logger.Logger) *OperatorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &OperatorHandler{sweeps: sweeps, goods: goods, journal: journal, log: log.WithComponent("operator-http")}
}

// Sweep devuelve el handler del barrido indicado.
// @Summary      Barrido masivo sobre el catálogo de la plataforma
// @Tags         operator
// @Produce      json
// @Security     BearerAuth
// @Param        clientID  path  string  true  "cliente"
// @Success      200  {object}  dto.SweepSummary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/clients/{clientID}/bulk_goods_configure [post]
// @Router       /api/clients/{clientID}/bulk_goods_adjust [post]
// @Router       /api/clients/{clientID}/bulk_buyer_audit [post]
func (h *OperatorHandler) Sweep(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Params("clientID")
		sum, err := h.sweeps.Run(c.UserContext(), clientID, operation)
		if err != nil {
			return respondError(c, h.log, err)
		}
		h.log.Info().Str("client_id", clientID).Str("operation", operation).Str("user_id", GetUserID(c)).
			Int("total", sum.Total).Int("failed", sum.Failed).Msg("barrido ejecutado")
		return c.JSON(sum)
	}
}

// ConfigureGoods godoc
// @Summary      Alta de un bien en la plataforma y en EFRIS
// @Tags         operator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientID  path  string                         true  "cliente"
// @Param        body      body  dto.GoodsConfigurationRequest  true  "bien"
// @Success      200  {object}  dto.Outcome
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.Outcome
// @Router       /api/clients/{clientID}/goods/configure [post]
func (h *OperatorHandler) ConfigureGoods(c *fiber.Ctx) error {
	var in dto.GoodsConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.goods.ConfigureGoods(c.UserContext(), c.Params("clientID"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(outcomeStatus(*out)).JSON(out)
}

// AdjustGoods godoc
// @Summary      Ajuste de inventario en la plataforma y en EFRIS
// @Tags         operator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientID  path  string                      true  "cliente"
// @Param        body      body  dto.GoodsAdjustmentRequest  true  "ajuste"
// @Success      200  {object}  dto.Outcome
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.Outcome
// @Router       /api/clients/{clientID}/goods/adjust [post]
func (h *OperatorHandler) AdjustGoods(c *fiber.Ctx) error {
	var in dto.GoodsAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.goods.AdjustGoods(c.UserContext(), c.Params("clientID"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(outcomeStatus(*out)).JSON(out)
}

// Submissions godoc
// @Summary      Bitácora de envíos a la pasarela
// @Tags         operator
// @Produce      json
// @Security     BearerAuth
// @Param        clientID  path   string  true   "cliente"
// @Param        limit     query  int     false  "máximo 100"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {array}   dto.SubmissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{clientID}/submissions [get]
func (h *OperatorHandler) Submissions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser enteros"})
	}
	list, err := h.journal.List(c.UserContext(), c.Params("clientID"), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// outcomeStatus 200 si el envío se aceptó o ya existía; 422 si falló antes de enviarse; 502 en otro caso.
func outcomeStatus(out dto.Outcome) int {
	if !out.Failed() {
		return fiber.StatusOK
	}
	switch out.Step {
	case dto.StepTranslate, dto.StepNormalize, dto.StepLink, dto.StepBuild, dto.StepValidate:
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusBadGateway
}
