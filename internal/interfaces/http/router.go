package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coopmarket/coopmarket-api/internal/application/auth"
	"github.com/coopmarket/coopmarket-api/internal/application/usecase"
	"github.com/coopmarket/coopmarket-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CooperativeUC *usecase.CooperativeUseCase
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	DashboardUC   *usecase.DashboardUseCase
	ContactUC     *usecase.ContactUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	BaseURL       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	cooperativeHandler := NewCooperativeHandler(deps.CooperativeUC, deps.ProductUC)
	productHandler := NewProductHandler(deps.ProductUC)
	userHandler := NewUserHandler(deps.UserUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.BaseURL)
	contactHandler := NewContactHandler(deps.ContactUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	// Catálogo público
	api.Get("/products", productHandler.List)
	api.Get("/products/featured", productHandler.Featured)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/cooperatives", cooperativeHandler.List)
	api.Get("/cooperatives/featured", cooperativeHandler.Featured)
	api.Get("/cooperatives/:id", cooperativeHandler.GetByID)
	api.Get("/cooperatives/:id/products", cooperativeHandler.Products)
	api.Post("/contact", contactHandler.Send)

	// Auth (público)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Sesión (cualquier rol autenticado)
	authenticated := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authenticated.Get("/me", authHandler.Me)
	authenticated.Post("/logout", authHandler.Logout)

	// Panel admin. Roles disjuntos: un manager no entra aquí.
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Get("/dashboard", dashboardHandler.Admin)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/cooperatives", cooperativeHandler.List)
	admin.Post("/cooperatives", cooperativeHandler.Create)
	admin.Get("/cooperatives/:id", cooperativeHandler.GetByID)
	admin.Put("/cooperatives/:id", cooperativeHandler.Update)
	admin.Delete("/cooperatives/:id", cooperativeHandler.Delete)

	// Panel manager. Un admin tampoco entra aquí.
	manager := api.Group("/manager", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleManager))
	manager.Get("/dashboard", dashboardHandler.Manager)
	manager.Get("/cooperatives", cooperativeHandler.List)
	manager.Get("/products", productHandler.List)
	manager.Post("/products", productHandler.Create)
	manager.Get("/products/:id", productHandler.GetByID)
	manager.Put("/products/:id", productHandler.Update)
	manager.Delete("/products/:id", productHandler.Delete)
}
