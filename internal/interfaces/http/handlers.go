package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError registra la causa real y responde un 500 genérico sin detalle interno.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
}
