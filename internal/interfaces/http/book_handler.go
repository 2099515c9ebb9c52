package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
)

// BookHandler maneja las peticiones HTTP del catálogo. El listado y el detalle
// son públicos; las mutaciones requieren rol ADMIN (ver router).
type BookHandler struct {
	uc *usecase.BookUseCase
}

// NewBookHandler construye el handler.
func NewBookHandler(uc *usecase.BookUseCase) *BookHandler {
	return &BookHandler{uc: uc}
}

// List godoc
// @Summary      Listar libros con paginación y búsqueda
// @Tags         books
// @Produce      json
// @Param        page    query  int     false  "Página (desde 1)"  default(1)
// @Param        limit   query  int     false  "Ítems por página"  default(10)
// @Param        search  query  string  false  "Filtro por título, autor, código o categoría (substring, case-insensitive)"
// @Success      200     {object}  dto.BookListResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	return h.list(c, usecase.PublicPageLimit, "")
}

// ListAdmin listado para la consola administrativa (límite por defecto distinto).
func (h *BookHandler) ListAdmin(c *fiber.Ctx) error {
	return h.list(c, usecase.AdminPageLimit, "")
}

// list ejecuta el listado con el límite por defecto del caller y un filtro
// opcional de categoría ya resuelto.
func (h *BookHandler) list(c *fiber.Ctx, defaultLimit int, category string) error {
	out, err := h.uc.List(usecase.ListBooksParams{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", defaultLimit),
		Search:   c.Query("search"),
		Category: category,
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener libro por ID
// @Tags         books
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  dto.BookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "libro no encontrado"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "libro no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear libro
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Datos del libro (title obligatorio)"
// @Success      201   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el campo title es obligatorio y no puede estar vacío"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return h.mapBookError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar libro (parcial)
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del libro"
// @Param        body  body  dto.UpdateBookRequest  true  "Campos a actualizar; cadena vacía limpia el campo"
// @Success      200   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "libro no encontrado"})
	}
	var in dto.UpdateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos: algún campo excede el largo permitido"})
	}
	if in.Code == nil && in.Title == nil && in.Author == nil && in.Price == nil && in.Category == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ningún campo para actualizar"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return h.mapBookError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro
// @Tags         books
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "libro no encontrado"})
	}
	if err := h.uc.Delete(id); err != nil {
		return h.mapBookError(c, err)
	}
	return c.JSON(fiber.Map{"message": "libro eliminado"})
}

// parseBookID valida el :id del path. La columna id es UUID: un id que no
// parsea no puede resolver a ningún libro, así que el caller responde 404
// directamente en vez de dejar que Postgres rechace el cast (error 22P02).
func parseBookID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// mapBookError traduce errores de dominio a códigos HTTP. El DuplicateError
// conserva el nombre del campo en conflicto.
func (h *BookHandler) mapBookError(c *fiber.Ctx, err error) error {
	var dup *domain.DuplicateError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el título no puede estar vacío"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "libro no encontrado"})
	case errors.As(err, &dup):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: dup.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un libro con ese valor único"})
	default:
		return internalError(c, err)
	}
}
