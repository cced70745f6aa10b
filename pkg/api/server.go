// Package api is the HTTP surface: echo server, JWT auth, tenant binding,
// and per-domain handlers over the service layer.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/crewforge/crewd/pkg/auth"
	"github.com/crewforge/crewd/pkg/config"
	"github.com/crewforge/crewd/pkg/database"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/meeting"
	"github.com/crewforge/crewd/pkg/runtime"
	"github.com/crewforge/crewd/pkg/scheduler"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/skills"
	"github.com/crewforge/crewd/pkg/tools"
	"github.com/crewforge/crewd/pkg/workspace"
)

// Services bundles the domain services the server depends on.
type Services struct {
	Teams         *services.TeamService
	Agents        *services.AgentService
	Tasks         *services.TaskService
	Goals         *services.GoalService
	Approvals     *services.ApprovalService
	Chat          *services.ChatService
	Notifications *services.NotificationService
	Sor           *services.SorService
	Credits       *services.CreditService
	Activity      *services.ActivityService
	Credentials   *services.CredentialService
}

// Server is the HTTP server with all route handlers.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	verifier *auth.Verifier

	svc       Services
	kb        *kb.Service
	workspace *workspace.Store
	skills    *skills.Library
	registry  *tools.Registry
	runner    *runtime.Runner
	resolver  runtime.TargetResolver
	scheduler *scheduler.Scheduler
	meetings  *meeting.Orchestrator

	transcriber *llm.TranscriptionClient
	connManager *events.ConnectionManager

	echo       *echo.Echo
	httpServer *http.Server
	logger     *slog.Logger
}

// Deps carries the non-service dependencies of NewServer.
type Deps struct {
	Config      *config.Config
	DB          *database.Client
	Verifier    *auth.Verifier
	KB          *kb.Service
	Workspace   *workspace.Store
	Skills      *skills.Library
	Registry    *tools.Registry
	Runner      *runtime.Runner
	Resolver    runtime.TargetResolver
	Scheduler   *scheduler.Scheduler
	Meetings    *meeting.Orchestrator
	Transcriber *llm.TranscriptionClient
	ConnManager *events.ConnectionManager
}

// NewServer creates the API server and registers all routes.
func NewServer(svc Services, deps Deps) *Server {
	s := &Server{
		cfg:         deps.Config,
		dbClient:    deps.DB,
		verifier:    deps.Verifier,
		svc:         svc,
		kb:          deps.KB,
		workspace:   deps.Workspace,
		skills:      deps.Skills,
		registry:    deps.Registry,
		runner:      deps.Runner,
		resolver:    deps.Resolver,
		scheduler:   deps.Scheduler,
		meetings:    deps.Meetings,
		transcriber: deps.Transcriber,
		connManager: deps.ConnManager,
		logger:      slog.With("component", "api"),
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(securityHeaders())
	if len(s.cfg.Settings.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.cfg.Settings.CORSOrigins,
			AllowHeaders: []string{"Authorization", "Content-Type", "X-Team-Id"},
		}))
	}

	// Public routes: no bearer token required.
	e.GET("/health", s.healthHandler)
	e.GET("/api/v1/platform/config", s.platformConfigHandler)

	// Authenticated routes.
	authed := e.Group("/api/v1", s.requireAuth())

	// Team management works without an X-Team-Id binding.
	authed.POST("/teams", s.createTeamHandler)
	authed.GET("/teams", s.listTeamsHandler)

	// User-scoped notifications are tenant-exempt.
	authed.GET("/notifications", s.listNotificationsHandler)
	authed.GET("/notifications/unread-count", s.unreadCountHandler)
	authed.POST("/notifications/:id/read", s.markNotificationReadHandler)
	authed.POST("/notifications/read-all", s.markAllNotificationsReadHandler)

	// Everything below requires the tenant binding.
	team := authed.Group("", s.requireTeam())

	team.GET("/teams/:id", s.getTeamHandler)
	team.GET("/teams/:id/members", s.listMembersHandler)
	team.POST("/teams/:id/members", s.addMemberHandler)
	team.DELETE("/teams/:id/members/:userId", s.removeMemberHandler)
	team.PUT("/teams/:id/subscription", s.upsertSubscriptionHandler)

	team.GET("/agents", s.listAgentsHandler)
	team.POST("/agents", s.createAgentHandler)
	team.GET("/agents/:id", s.getAgentHandler)
	team.PATCH("/agents/:id", s.updateAgentHandler)
	team.DELETE("/agents/:id", s.deleteAgentHandler)
	team.POST("/agents/:id/start", s.startAgentHandler)
	team.POST("/agents/:id/stop", s.stopAgentHandler)
	team.POST("/agents/:id/trigger", s.triggerAgentHandler)
	team.POST("/agents/:id/chat", s.agentChatHandler)
	team.GET("/agents/:id/memories", s.listMemoriesHandler)

	team.GET("/tasks", s.listTasksHandler)
	team.POST("/tasks", s.createTaskHandler)
	team.GET("/tasks/:id", s.getTaskHandler)
	team.PATCH("/tasks/:id", s.updateTaskHandler)
	team.DELETE("/tasks/:id", s.deleteTaskHandler)

	team.GET("/goals", s.listGoalsHandler)
	team.POST("/goals", s.createGoalHandler)
	team.GET("/goals/:id", s.getGoalHandler)
	team.PATCH("/goals/:id/status", s.updateGoalStatusHandler)
	team.DELETE("/goals/:id", s.deleteGoalHandler)
	team.GET("/goals/measurable", s.listMeasurableGoalsHandler)
	team.POST("/goals/measurable", s.createMeasurableGoalHandler)
	team.POST("/goals/measurable/:id/metric", s.recordMetricHandler)

	team.GET("/approvals", s.listApprovalsHandler)
	team.POST("/approvals/:id/approve", s.approveHandler)
	team.POST("/approvals/:id/reject", s.rejectHandler)

	team.GET("/channels", s.listChannelsHandler)
	team.POST("/channels", s.createChannelHandler)
	team.DELETE("/channels/:id", s.deleteChannelHandler)
	team.GET("/channels/dm/:agentId", s.getDMHandler)
	team.GET("/channels/task/:taskId", s.getTaskThreadHandler)
	team.GET("/channels/:id/messages", s.listMessagesHandler)
	team.POST("/channels/:id/messages", s.sendMessageHandler)

	team.GET("/kb/documents", s.listDocumentsHandler)
	team.POST("/kb/documents", s.uploadDocumentHandler)
	team.GET("/kb/documents/:id", s.getDocumentHandler)
	team.DELETE("/kb/documents/:id", s.deleteDocumentHandler)
	team.POST("/kb/search", s.searchKBHandler)

	team.GET("/sor/tables", s.listSorTablesHandler)
	team.POST("/sor/tables", s.createSorTableHandler)
	team.GET("/sor/tables/:id", s.getSorTableHandler)
	team.DELETE("/sor/tables/:id", s.deleteSorTableHandler)
	team.GET("/sor/tables/:id/rows", s.listSorRowsHandler)
	team.POST("/sor/tables/:id/rows", s.createSorRowHandler)
	team.PATCH("/sor/tables/:id/rows/:rowId", s.updateSorRowHandler)
	team.DELETE("/sor/tables/:id/rows/:rowId", s.deleteSorRowHandler)
	team.GET("/sor/tables/:id/permissions", s.listSorPermissionsHandler)
	team.PUT("/sor/tables/:id/permissions", s.upsertSorPermissionHandler)

	team.GET("/credentials", s.listCredentialsHandler)
	team.PUT("/credentials/:serviceId", s.upsertCredentialHandler)
	team.DELETE("/credentials/:serviceId", s.deleteCredentialHandler)

	team.GET("/workspace/files", s.listWorkspaceHandler)
	team.GET("/workspace/files/*", s.readWorkspaceFileHandler)
	team.PUT("/workspace/files/*", s.writeWorkspaceFileHandler)
	team.DELETE("/workspace/files/*", s.deleteWorkspaceFileHandler)
	team.POST("/workspace/lock", s.lockWorkspaceFileHandler)
	team.POST("/workspace/unlock", s.unlockWorkspaceFileHandler)

	team.GET("/credits/balance", s.creditBalanceHandler)
	team.GET("/credits/ledger", s.creditLedgerHandler)
	team.POST("/credits/topup", s.creditTopUpHandler)

	team.GET("/activity", s.listActivityHandler)

	team.GET("/skills", s.listSkillsHandler)
	team.GET("/providers", s.listProvidersHandler)
	team.GET("/models", s.listModelsHandler)

	team.POST("/teams/:id/meetings/meet-and-greet", s.startMeetingHandler)
	team.GET("/meetings/:id/stream", s.meetingStreamHandler)
	team.POST("/meetings/:id/message", s.meetingMessageHandler)
	team.POST("/meetings/:id/voice", s.meetingVoiceHandler)
	team.POST("/meetings/:id/raise-hand", s.meetingRaiseHandHandler)
	team.DELETE("/meetings/:id", s.endMeetingHandler)

	// WebSocket event stream (token via query param, checked in handler).
	authed.GET("/ws", s.wsHandler)

	return e
}

// Start runs the HTTP server until Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", slog.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the echo instance for tests.
func (s *Server) Router() *echo.Echo {
	return s.echo
}
