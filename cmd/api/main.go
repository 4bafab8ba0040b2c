package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/order"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comercio-api/internal/interfaces/http"
	"github.com/jhoicas/Comercio-api/pkg/config"
	"github.com/jhoicas/Comercio-api/pkg/jwt"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtOpts := jwt.Options{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.Expiration,
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, jwtOpts)
	placeOrderUC := order.NewPlaceOrderUseCase(txRunner, orderRepo)
	orderQueryUC := order.NewOrderQueryUseCase(orderRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, companyRepo, promotionRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo, productRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo)

	// SuperAdmin inicial: solo si la tabla de usuarios está vacía.
	if err := authUC.EnsureSuperAdmin(cfg.Seed.SuperAdminEmail, cfg.Seed.SuperAdminPassword); err != nil {
		log.Component("seed").Fatal().Err(err).Msg("seed del SuperAdmin")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PlaceOrder:  placeOrderUC,
		OrderQuery:  orderQueryUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		PromotionUC: promotionUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		JWTOpts:     jwtOpts,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
