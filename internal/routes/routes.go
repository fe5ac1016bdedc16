package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/avantivendas/visitas-api/internal/audit"
	"github.com/avantivendas/visitas-api/internal/auth"
	"github.com/avantivendas/visitas-api/internal/config"
	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/handlers"
	infraCache "github.com/avantivendas/visitas-api/internal/infra/cache"
	infraRepo "github.com/avantivendas/visitas-api/internal/infra/repository"
	"github.com/avantivendas/visitas-api/internal/middleware"
	"github.com/avantivendas/visitas-api/internal/session"
	ucAgenda "github.com/avantivendas/visitas-api/internal/usecase/agenda"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var agendaRepo domain.Repository = infraRepo.NewAgendaGormRepository(db)
	agendaRepo = infraCache.NewCachingAgendaRepository(rdb, 10*time.Second, agendaRepo)

	formDefaults := session.NewFormDefaults(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var credStore auth.CredentialStore
	if cfg.AuthMode == config.AuthModeMemory {
		credStore = auth.NewMemoryStore(auth.SeedUsers())
	} else {
		credStore = auth.NewGormStore(db)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAgendamentoUC := ucAgenda.NewCreateAgendamento(
		agendaRepo,
		formDefaults,
		auditDispatcher,
	)

	listAgendamentosUC := ucAgenda.NewListAgendamentos(agendaRepo)

	exportAgendamentosUC := ucAgenda.NewExportAgendamentos(
		agendaRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(credStore, formDefaults, auditDispatcher, cfg)
	meHandler := handlers.NewMeHandler(formDefaults)

	agendaHandler := handlers.NewAgendaHandler(
		createAgendamentoUC,
		listAgendamentosUC,
		exportAgendamentosUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/agendamentos", agendaHandler.Create)
			secured.GET("/me/agendamentos", agendaHandler.List)
			secured.GET("/me/agendamentos/export", agendaHandler.Export)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
