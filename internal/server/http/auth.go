package http

import (
	"errors"
	"strings"

	"checkers/internal/core"
	"checkers/internal/server/service"

	"github.com/gofiber/fiber/v2"
)

// SeatRequired resolves the bearer seat token for the route's game and
// stores the seat in Locals("seat").
func SeatRequired(svc *service.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if !isValidUUID(gameID) {
			return invalidGameID(c)
		}

		token := extractBearerToken(c.Get("Authorization"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(core.ErrorResponse{
				Error: "missing seat token",
				Code:  core.ErrUnauthorized,
			})
		}

		seat, err := svc.Authorize(gameID, token)
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
				Error: "game not found",
				Code:  core.ErrGameNotFound,
			})
		case errors.Is(err, service.ErrNotYourSeat):
			return c.Status(fiber.StatusForbidden).JSON(core.ErrorResponse{
				Error: "token does not hold a seat in this game",
				Code:  core.ErrUnauthorized,
			})
		case err != nil:
			return c.Status(fiber.StatusUnauthorized).JSON(core.ErrorResponse{
				Error: "invalid or expired seat token",
				Code:  core.ErrUnauthorized,
			})
		}

		c.Locals("seat", seat)
		return c.Next()
	}
}

func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
