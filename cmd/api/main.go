package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/landinggenius/backend/internal/config"
	"github.com/landinggenius/backend/internal/db"
	"github.com/landinggenius/backend/internal/draft"
	"github.com/landinggenius/backend/internal/generator"
	"github.com/landinggenius/backend/internal/handlers"
	"github.com/landinggenius/backend/internal/logger"
	"github.com/landinggenius/backend/internal/middleware"
	"github.com/landinggenius/backend/internal/models"
	"github.com/landinggenius/backend/internal/repository"
	"github.com/landinggenius/backend/internal/services/gateway"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Package{},
		&models.TokenTransaction{},
		&models.Payment{},
	); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	if err := db.SeedPackages(gdb); err != nil {
		log.Fatal("seed packages", zap.Error(err))
	}

	drafts := draft.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	if err := drafts.Ping(context.Background()); err != nil {
		log.Fatal("connect redis", zap.Error(err))
	}
	log.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	userRepo := repository.NewGormUserRepository(gdb)
	projectRepo := repository.NewGormProjectRepository(gdb)
	packageRepo := repository.NewGormPackageRepository(gdb)
	paymentRepo := repository.NewGormPaymentRepository(gdb)

	gw := gateway.New(cfg.GatewaySecret, cfg.FrontendBaseURL)
	gen := generator.New()

	wizardH := handlers.NewWizardHandler(drafts, gen)
	projectH := handlers.NewProjectHandler(projectRepo, userRepo, drafts)
	packageH := handlers.NewPackageHandler(packageRepo)
	publicH := handlers.NewPublicHandler(projectRepo)
	paymentH := handlers.NewPaymentHandler(paymentRepo, packageRepo, userRepo, gw)

	authH := &handlers.AuthHandler{
		Users:     userRepo,
		Packages:  packageRepo,
		Payments:  paymentRepo,
		Gateway:   gw,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}

	googleH := &handlers.GoogleOAuthHandler{
		Users:           userRepo,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Use(middleware.WizardSession())

	api := app.Group("/api")

	// public
	api.Post("/auth/register/validate", authH.ValidateStep)
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/packages", packageH.List)
	api.Post("/payments/callback", paymentH.HandleCallback)

	// wizard (anonymous, session-scoped)
	wizard := api.Group("/wizard")
	wizard.Post("/mulai", wizardH.SaveProduct)
	wizard.Get("/mulai", wizardH.GetProduct)
	wizard.Get("/masalah", wizardH.GetProblems)
	wizard.Post("/masalah", wizardH.SelectProblem)
	wizard.Get("/pattern", wizardH.GetPattern)
	wizard.Get("/preview", wizardH.GetPreview)
	wizard.Post("/selesai", wizardH.Complete)

	// protected (JWT)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)
	protected.Get("/payments/channels", paymentH.GetChannels)
	protected.Post("/tokens/topup", paymentH.Topup)

	protected.Get("/projects", projectH.ListMine)
	protected.Post("/projects", projectH.Create)
	protected.Get("/projects/:id", projectH.Get)
	protected.Put("/projects/:id", projectH.Update)
	protected.Delete("/projects/:id", projectH.Delete)
	protected.Post("/projects/:id/publish", projectH.Publish)

	// published landing pages, reachable by public URL only
	app.Get("/p/:url", publicH.Show)

	log.Info("listening", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("listen", zap.Error(err))
	}
}
