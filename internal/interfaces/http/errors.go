package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// respondError traduce errores de dominio a {code, message}. Los no clasificados
// se registran y se responden sin detalle.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, body := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrMissingField), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUnsupportedPlatform), errors.Is(err, domain.ErrCapabilityUnsupported):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "UNSUPPORTED", Message: err.Error()}
	case errors.Is(err, domain.ErrAuthentication):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "PLATFORM_AUTH", Message: err.Error()}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: err.Error()}
	case errors.Is(err, domain.ErrGatewaySubmission):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "GATEWAY_UNAVAILABLE", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}
