package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/order"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PlaceOrder  *order.PlaceOrderUseCase
	OrderQuery  *order.OrderQueryUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	PromotionUC *usecase.PromotionUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	JWTOpts     jwt.Options
}

// Router registra las rutas de la API. El catálogo (productos, categorías,
// promociones, empresas) es de lectura pública; todo lo demás exige Bearer
// Token, con RequireRole donde la operación es de staff.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTOpts)
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
	superAdminOnly := RequireRole(entity.RoleSuperAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: lecturas públicas, escrituras de staff
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/search", productHandler.Search)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, staffOnly, productHandler.Create)
	products.Put("/:id", authRequired, staffOnly, productHandler.Update)
	products.Delete("/:id", authRequired, staffOnly, productHandler.Delete)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", productHandler.ListByCategory)
	categories.Post("/", authRequired, staffOnly, categoryHandler.Create)
	categories.Put("/:id", authRequired, staffOnly, categoryHandler.Update)
	categories.Delete("/:id", authRequired, staffOnly, categoryHandler.Delete)

	// Promotions
	promotionHandler := NewPromotionHandler(deps.PromotionUC, deps.ProductUC)
	promotions := api.Group("/promotions")
	promotions.Get("/", promotionHandler.List)
	promotions.Get("/:id", promotionHandler.GetByID)
	promotions.Get("/:id/products", promotionHandler.ListProducts)
	promotions.Post("/", authRequired, staffOnly, promotionHandler.Create)
	promotions.Put("/:id", authRequired, staffOnly, promotionHandler.Update)
	promotions.Delete("/:id", authRequired, staffOnly, promotionHandler.Delete)
	promotions.Post("/:id/products", authRequired, staffOnly, promotionHandler.AssignProducts)
	promotions.Delete("/:id/products", authRequired, staffOnly, promotionHandler.RemoveProducts)

	// Companies: lecturas públicas, gestión solo SuperAdmin
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/products", productHandler.ListByCompany)
	companies.Get("/:id/categories", categoryHandler.ListByCompany)
	companies.Post("/", authRequired, superAdminOnly, companyHandler.Create)
	companies.Put("/:id", authRequired, superAdminOnly, companyHandler.Update)
	companies.Delete("/:id", authRequired, superAdminOnly, companyHandler.Delete)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", authRequired)
	users.Get("/me", userHandler.Me)
	users.Get("/", superAdminOnly, userHandler.List)
	users.Post("/admins", superAdminOnly, userHandler.CreateAdmin)
	users.Put("/:id/status", superAdminOnly, userHandler.SetStatus)
	users.Get("/:id", userHandler.GetByID)
	companies.Get("/:id/users", authRequired, staffOnly, userHandler.ListByCompany)

	// Orders (protegido)
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderQuery)
	orders := api.Group("/orders", authRequired)
	orders.Post("/", orderHandler.Create)
	orders.Get("/mine", orderHandler.ListMine)
	orders.Get("/", staffOnly, orderHandler.ListAll)
	orders.Get("/:id", orderHandler.GetByID)
}
