package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/gestione-sindacale/internal/application/analytics"
	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	appmail "github.com/jhoicas/gestione-sindacale/internal/application/mail"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	inframail "github.com/jhoicas/gestione-sindacale/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/gestione-sindacale/internal/infrastructure/pdf"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/gestione-sindacale/internal/interfaces/http"
	"github.com/jhoicas/gestione-sindacale/pkg/config"
	"github.com/jhoicas/gestione-sindacale/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET obligatorio")
	}

	ctx := context.Background()
	collections, closeStorage, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStorage()

	store := tenantstore.New(collections,
		tenantstore.WithLogger(log.Component("tenantstore")),
		tenantstore.WithLogCap(cfg.Activity.LogCap),
		tenantstore.WithRetryAttempts(cfg.Storage.RetryAttempts),
	)

	// Correo: sin RESEND_API_KEY el servicio responde "no configurado" en cada envío.
	var sender appmail.Sender
	if s := inframail.NewResendSender(cfg.Mail.ResendAPIKey); s != nil {
		sender = s
	} else {
		log.Warn().Msg("RESEND_API_KEY ausente: correo deshabilitado")
	}
	mailer := appmail.NewService(sender, appmail.Config{
		AppName:   cfg.App.Name,
		From:      cfg.Mail.From,
		SupportTo: cfg.Mail.SupportTo,
	}, log.Component("mail"))

	loc := cfg.App.Location()
	policy := domaindeadline.Policy{
		Window:       cfg.Deadline.WindowDays,
		DangerWithin: cfg.Deadline.DangerDays,
		Location:     loc,
	}
	var (
		alerter      deadline.Alerter
		emailAlerter *deadline.EmailAlerter
	)
	if cfg.Deadline.EmailAlerts {
		emailAlerter = deadline.NewEmailAlerter(store, mailer, log.Component("deadline"))
		alerter = emailAlerter
	}
	scanner := deadline.NewScanner(store, policy, alerter, log.Component("deadline"))

	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(store, scanner, jwtCfg, log.Component("auth"))
	resetUC := auth.NewPasswordResetUseCase(store, mailer, jwtCfg, cfg.App.PublicURL, log.Component("auth"))

	// PDF: schede iscritto/pratica e report tabellari
	reportUC := usecase.NewReportUseCase(store, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // documentos en base64
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// El nombre del servicio es el namespace de las métricas: sin guiones.
	prometheus := fiberprometheus.New(strings.ReplaceAll(cfg.App.Name, "-", "_"))
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestione Sindacale API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		PasswordReset:  resetUC,
		MemberUC:       usecase.NewMemberUseCase(store, loc),
		CaseUC:         usecase.NewCaseUseCase(store, scanner, loc, log.Component("cases")),
		EventUC:        usecase.NewEventUseCase(store),
		DocumentUC:     usecase.NewDocumentUseCase(store),
		NotificationUC: usecase.NewNotificationUseCase(store),
		ActivityUC:     usecase.NewActivityUseCase(store),
		ReportUC:       reportUC,
		SupportUC:      usecase.NewSupportUseCase(mailer),
		DashboardUC:    appanalytics.NewDashboardUseCase(store, scanner, loc, log.Component("dashboard")),
		JWTSecret:      cfg.JWT.Secret,
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
	if emailAlerter != nil {
		emailAlerter.Wait()
	}

	log.Info().Msg("aplicación detenida")
}
