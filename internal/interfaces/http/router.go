package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/auth"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/application/usecase"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateSale  *sales.CreateSaleUseCase
	Numbering   *sales.NumberingUseCase
	SalePDF     *sales.PDFUseCase
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; register y listado solo admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)
	authGroup.Get("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sales (protegido). next-number va antes de :id.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.Numbering, deps.SalePDF)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/next-number", saleHandler.NextNumber)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/cards", dashboardHandler.Cards)
	dashboard.Get("/ventas-mensuales", dashboardHandler.MonthlySales)
	dashboard.Get("/distribucion", dashboardHandler.Distribution)
	dashboard.Get("/productos-top", dashboardHandler.TopProducts)
	dashboard.Get("/ventas-diarias", dashboardHandler.DailySales)
}
