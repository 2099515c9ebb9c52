package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
)

// CategoryHandler categorías del catálogo y navegación por categoría.
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	bookUC     *usecase.BookUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, bookUC *usecase.BookUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, bookUC: bookUC}
}

// List godoc
// @Summary      Listar categorías distintas con su slug
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.categoryUC.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// BooksBySlug godoc
// @Summary      Listar libros de una categoría (por slug)
// @Tags         categories
// @Produce      json
// @Param        slug   path   string  true   "Slug de la categoría"
// @Param        page   query  int     false  "Página (desde 1)"  default(1)
// @Param        limit  query  int     false  "Ítems por página"  default(24)
// @Success      200    {object}  dto.BookListResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/categories/{slug}/books [get]
func (h *CategoryHandler) BooksBySlug(c *fiber.Ctx) error {
	categoryName, err := h.categoryUC.ResolveSlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "categoría no encontrada"})
		}
		return internalError(c, err)
	}
	out, err := h.bookUC.List(usecase.ListBooksParams{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", usecase.GridPageLimit),
		Search:   c.Query("search"),
		Category: categoryName,
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
