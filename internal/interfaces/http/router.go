package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BookUC     *usecase.BookUseCase
	CategoryUC *usecase.CategoryUseCase
	AccountUC  *usecase.AccountUseCase
	StatsUC    *usecase.StatsUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	CookieName string
	ExpMinutes int
}

// Router registra las rutas de la API y el área administrativa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret, deps.CookieName)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público; refresh exige sesión vigente)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.ExpMinutes)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/refresh", authRequired, authHandler.Refresh)

	// Catálogo: lectura pública
	bookHandler := NewBookHandler(deps.BookUC)
	books := api.Group("/books")
	books.Get("/", bookHandler.List)
	books.Get("/:id", bookHandler.GetByID)

	// Catálogo: mutaciones solo ADMIN
	books.Post("/", authRequired, adminOnly, bookHandler.Create)
	books.Put("/:id", authRequired, adminOnly, bookHandler.Update)
	books.Delete("/:id", authRequired, adminOnly, bookHandler.Delete)

	// Categorías (público)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.BookUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:slug/books", categoryHandler.BooksBySlug)

	// Perfil del usuario autenticado
	accountHandler := NewAccountHandler(deps.AccountUC)
	api.Put("/account/settings", authRequired, accountHandler.UpdateSettings)

	// Métricas admin (API JSON: 401/403, sin redirects)
	adminHandler := NewAdminHandler(deps.StatsUC)
	api.Get("/admin/stats", authRequired, adminOnly, adminHandler.Stats)

	// Entrada de sign-in: destino de los redirects del route guard.
	app.Get(SignInPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "inicie sesión vía POST /api/auth/login",
			"callbackUrl": c.Query("callbackUrl", HomePath),
		})
	})

	// Área /admin (páginas del back-office): el guard redirige en vez de responder error.
	admin := app.Group("/admin", RouteGuard(deps.JWTSecret, deps.CookieName, "/admin"))
	admin.Get("/", adminHandler.Overview)
	admin.Get("/books", bookHandler.ListAdmin)
}
