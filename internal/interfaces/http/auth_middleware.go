package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jortega/stock-ledger-api/internal/application/dto"
	"github.com/jortega/stock-ledger-api/pkg/jwt"
)

// Local key para el caller autenticado en Fiber.
const LocalCaller = "caller"

// AuthMiddleware valida el Bearer Token JWT y deja el caller en c.Locals.
// Protege las rutas de escritura: los sistemas consumidores firman sus tokens
// HS256 con el secreto compartido.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		caller, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

// GetCaller devuelve el caller del contexto (después del middleware de auth).
func GetCaller(c *fiber.Ctx) string {
	v := c.Locals(LocalCaller)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
