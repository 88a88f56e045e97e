package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestione-sindacale/internal/application/analytics"
	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	PasswordReset  *auth.PasswordResetUseCase
	MemberUC       *usecase.MemberUseCase
	CaseUC         *usecase.CaseUseCase
	EventUC        *usecase.EventUseCase
	DocumentUC     *usecase.DocumentUseCase
	NotificationUC *usecase.NotificationUseCase
	ActivityUC     *usecase.ActivityUseCase
	ReportUC       *usecase.ReportUseCase
	SupportUC      *usecase.SupportUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.PasswordReset)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Supporto (público)
	supportHandler := NewSupportHandler(deps.SupportUC)
	api.Post("/support", supportHandler.Contact)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	write := RequireWrite()

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Iscritti
	members := protected.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC, deps.ReportUC)
	members.Get("/", memberHandler.List)
	members.Get("/report.pdf", memberHandler.Report)
	members.Post("/", write, memberHandler.Create)
	members.Get("/:id", memberHandler.GetByID)
	members.Get("/:id/pdf", memberHandler.PDF)
	members.Put("/:id", write, memberHandler.Update)
	members.Delete("/:id", write, memberHandler.Delete)

	// Pratiche
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC, deps.ReportUC)
	cases.Get("/", caseHandler.List)
	cases.Get("/report.pdf", caseHandler.Report)
	cases.Post("/", write, caseHandler.Create)
	cases.Get("/:id", caseHandler.GetByID)
	cases.Get("/:id/pdf", caseHandler.PDF)
	cases.Put("/:id", write, caseHandler.Update)
	cases.Patch("/:id/status", write, caseHandler.MoveStatus)
	cases.Delete("/:id", write, caseHandler.Delete)

	// Calendario
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Get("/", eventHandler.List)
	events.Post("/", write, eventHandler.Create)
	events.Put("/:id", write, eventHandler.Update)
	events.Delete("/:id", write, eventHandler.Delete)

	// Documenti
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Post("/", write, documentHandler.Create)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Delete("/:id", write, documentHandler.Delete)

	// Notifiche: marcar como leída no requiere rol de escritura.
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllAsRead)
	notifications.Post("/:id/read", notificationHandler.MarkAsRead)

	// Registro attività
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", RequireRole(entity.RoleOwner, entity.RoleAdmin), activityHandler.List)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/report.pdf", dashboardHandler.Report)
}
