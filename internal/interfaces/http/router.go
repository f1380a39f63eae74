package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/stock-ledger-api/internal/application/stock"
	"github.com/jortega/stock-ledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	StockOps      *stock.OperationUseCase
	MovementQuery *stock.MovementQueries
	JWTSecret     string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// escrituras exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", protected, categoryHandler.Create)
	categories.Put("/:id", protected, categoryHandler.Update)
	categories.Delete("/:id", protected, categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/active", productHandler.ListActive)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/search", productHandler.Search)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", protected, productHandler.Create)
	products.Put("/:id", protected, productHandler.Update)
	products.Patch("/:id/activate", protected, productHandler.Activate)
	products.Patch("/:id/deactivate", protected, productHandler.Deactivate)
	products.Delete("/:id", protected, productHandler.Delete)

	// Stock movements (el libro es append-only: solo POST de operaciones y lecturas)
	movements := api.Group("/movements")
	stockHandler := NewStockHandler(deps.StockOps, deps.MovementQuery)
	movements.Get("/", stockHandler.List)
	movements.Get("/period", stockHandler.ListByPeriod)
	movements.Get("/product/:productId", stockHandler.ListByProduct)
	movements.Get("/type/:type", stockHandler.ListByType)
	movements.Get("/:id", stockHandler.GetByID)
	movements.Post("/receipt", protected, stockHandler.Receipt)
	movements.Post("/issue", protected, stockHandler.Issue)
	movements.Post("/adjustment", protected, stockHandler.Adjustment)
}
