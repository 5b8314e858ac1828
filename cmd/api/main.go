package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/database"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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
		Str("db_driver", cfg.DB.Driver).
		Str("session_driver", cfg.Session.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	store, redisClient, err := session.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesiones")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	clientRepo := database.NewClientRepository(db)
	employeeRepo := database.NewEmployeeRepository(db)
	txRunner := database.NewTxRunner(db)

	gate := auth.NewGate(store, log)
	authUC := auth.NewAuthUseCase(employeeRepo, clientRepo, store, gate)
	clientUC := usecase.NewClientUseCase(clientRepo, txRunner)
	catalogUC := usecase.NewCatalogUseCase(database.NewCatalogRepository(db))
	supplierUC := usecase.NewSupplierUseCase(database.NewSupplierRepository(db))
	productUC := usecase.NewProductUseCase(database.NewProductRepository(db))

	// PDF: comprobante del ticket de venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	saleUC := usecase.NewSaleUseCase(database.NewSaleRepository(db), pdfGenerator)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Development:  cfg.App.IsDevelopment(),
		SwaggerFile:  "./docs/swagger.json",
	}, httpRouter.RouterDeps{
		Gate:       gate,
		AuthUC:     authUC,
		ClientUC:   clientUC,
		CatalogUC:  catalogUC,
		SupplierUC: supplierUC,
		SaleUC:     saleUC,
		ProductUC:  productUC,
		DB:         db,
		Log:        log,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.SecureCookie,
		},
		DebugErrors:        cfg.App.DebugErrors,
		QueryTimeout:       cfg.DB.QueryTimeout,
		LoginRatePerMinute: cfg.HTTP.LoginRatePerMinute,
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
