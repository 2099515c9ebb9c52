package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
)

// AccountHandler configuración de perfil del usuario autenticado.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// UpdateSettings godoc
// @Summary      Actualizar perfil (name, image)
// @Tags         account
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/account/settings [put]
func (h *AccountHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos: name no puede estar vacío e image debe ser una URL"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ningún dato para actualizar"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "sesión inválida"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(out)
}
