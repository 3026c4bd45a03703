package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer token del operador y deja UserID y Role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return deny(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return deny(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return deny(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		userID, role, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe usarse después de AuthMiddleware.
//   - 401 si el token no trae rol.
//   - 403 si el rol no está entre los permitidos.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return deny(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye rol")
		}
		if !allowed[role] {
			return deny(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin permiso para esta operación")
		}
		return c.Next()
	}
}

// GetUserID operador autenticado; "" fuera de AuthMiddleware.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole rol del operador autenticado; "" fuera de AuthMiddleware.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

func deny(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
