// crewd is the agent-team orchestrator server: HTTP API, heartbeat
// scheduler, meeting orchestrator, and real-time event delivery.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/pkg/api"
	"github.com/crewforge/crewd/pkg/auth"
	"github.com/crewforge/crewd/pkg/config"
	"github.com/crewforge/crewd/pkg/database"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/kb"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/meeting"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/runtime"
	"github.com/crewforge/crewd/pkg/scheduler"
	"github.com/crewforge/crewd/pkg/services"
	"github.com/crewforge/crewd/pkg/skills"
	"github.com/crewforge/crewd/pkg/tools"
	"github.com/crewforge/crewd/pkg/vault"
	"github.com/crewforge/crewd/pkg/workspace"
)

// mentionTimeout bounds one agent's reasoning loop when woken by a chat
// mention.
const mentionTimeout = 2 * time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// hostedKeyFromEnv looks up platform-managed provider keys. The key for
// provider "openai" comes from PROVIDER_KEY_OPENAI.
func hostedKeyFromEnv(providerID string) (string, bool) {
	name := "PROVIDER_KEY_" + strings.ToUpper(strings.ReplaceAll(providerID, "-", "_"))
	key := os.Getenv(name)
	return key, key != ""
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration: process settings plus the provider/model catalogs.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting crewd",
		"addr", cfg.Addr(),
		"hosted_mode", cfg.Settings.HostedMode,
		"config_dir", *configDir)

	// 2. Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Secrets vault and token verifier.
	credVault, err := vault.New(cfg.Settings.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize vault", "error", err)
		os.Exit(1)
	}

	verifier, err := auth.NewVerifier(ctx, auth.Options{
		Secret:             cfg.Settings.JWTSecret,
		IssuerURL:          cfg.Settings.IssuerURL,
		IssuerAPIKey:       cfg.Settings.IssuerAnonKey,
		InsecureSkipVerify: !cfg.Settings.IsProduction(),
	})
	if err != nil {
		slog.Error("Failed to initialize token verifier", "error", err)
		os.Exit(1)
	}

	// 4. Model routing: tenant credentials feed the router, the router's
	// cache is invalidated when credentials change.
	credentialService := services.NewCredentialService(dbClient.Client, credVault, nil)
	router := llm.NewRouter(cfg, credentialService, hostedKeyFromEnv)
	credentialService.SetRouter(router)
	llmClient := llm.NewClient()

	// 5. Domain services.
	teamService := services.NewTeamService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	goalService := services.NewGoalService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client)
	sorService := services.NewSorService(dbClient.Client)
	creditService := services.NewCreditService(dbClient.Client)
	activityService := services.NewActivityService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Event delivery: publisher, WebSocket manager, and the dedicated
	// LISTEN connection.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEntCatchupQuerier(dbClient.Client), 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)

	chatService.SetEventPublisher(eventPublisher)
	taskService.SetEventPublisher(eventPublisher)
	approvalService.SetEventPublisher(eventPublisher)
	slog.Info("Event delivery initialized")

	// 7. Knowledge base. The platform embedding model is optional; without
	// it retrieval degrades to lexical ranking.
	var embedder kb.Embedder
	if cfg.Settings.EmbeddingModelEndpoint != "" && cfg.Settings.EmbeddingModelName != "" {
		embedder = &kb.LLMEmbedder{
			Client: llmClient,
			Target: llm.Target{
				Endpoint:    cfg.Settings.EmbeddingModelEndpoint,
				Model:       cfg.Settings.EmbeddingModelName,
				APIKey:      cfg.Settings.EmbeddingModelKey,
				SkipCredits: true,
			},
		}
	}
	var summarizer kb.Summarizer
	if cfg.Settings.FallbackModelEndpoint != "" && cfg.Settings.FallbackModelName != "" {
		summarizer = &kb.LLMSummarizer{
			Client: llmClient,
			Target: llm.Target{
				Endpoint:    cfg.Settings.FallbackModelEndpoint,
				Model:       cfg.Settings.FallbackModelName,
				APIKey:      cfg.Settings.FallbackModelKey,
				SkipCredits: true,
			},
		}
	}
	kbService := kb.NewService(dbClient.Client, dbClient.DB(), embedder, summarizer)
	kbService.SetEventPublisher(eventPublisher)

	// Documents stuck mid-ingestion did not survive the previous process.
	if n, err := kbService.CleanupStalled(ctx); err != nil {
		slog.Error("Failed to clean up stalled documents", "error", err)
	} else if n > 0 {
		slog.Info("Cleaned up stalled documents", "count", n)
	}

	// 8. Workspace and skills.
	store, err := workspace.NewStore(cfg.Settings.WorkspaceRoot)
	if err != nil {
		slog.Error("Failed to initialize workspace", "error", err)
		os.Exit(1)
	}

	skillsLib, err := skills.Load(cfg.Settings.SkillsDir)
	if err != nil {
		slog.Error("Failed to load skills", "error", err)
		os.Exit(1)
	}
	slog.Info("Skills loaded", "count", skillsLib.Len())

	// 9. Agent runtime: builtin tools over the services, one reasoning
	// loop per invocation.
	registry, err := tools.NewBuiltinRegistry(tools.Deps{
		Tasks:     taskService,
		Chat:      chatService,
		Approvals: approvalService,
		Activity:  activityService,
		Sor:       sorService,
		KB:        kbService,
		Workspace: store,
	})
	if err != nil {
		slog.Error("Failed to build tool registry", "error", err)
		os.Exit(1)
	}

	runner := runtime.NewRunner(router, llmClient, registry, creditService, approvalService, activityService)

	// Chat mentions wake the mentioned agent in a supervised goroutine so
	// SendMessage never blocks on a model call.
	chatService.SetAgentMentionHandler(func(teamID, agentID, channelID string, message models.MessageView) {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Mention handler panicked",
						"agent_id", agentID, "panic", r, "stack", string(debug.Stack()))
				}
			}()

			runCtx, cancel := context.WithTimeout(context.Background(), mentionTimeout)
			defer cancel()

			a, err := agentService.GetAgent(runCtx, teamID, agentID)
			if err != nil {
				slog.Warn("Mentioned agent not found", "agent_id", agentID, "error", err)
				return
			}
			// Stopped agents stay silent.
			if a.Status != agent.StatusRunning {
				slog.Debug("Ignoring mention of non-running agent",
					"agent_id", agentID, "status", a.Status)
				return
			}

			prompt := a.SystemPrompt
			var allowed []string
			if len(a.Skills) > 0 {
				instructions, grants := skillsLib.Compose(a.Skills)
				if instructions != "" {
					prompt = prompt + "\n\n" + instructions
				}
				allowed = grants
			}

			spec := llm.ModelSpec{ModelID: a.ModelID}
			if a.ModelEndpoint != nil {
				spec.Endpoint = *a.ModelEndpoint
			}
			if a.ModelName != nil {
				spec.Name = *a.ModelName
			}

			result, err := runner.Execute(runCtx, runtime.Run{
				TeamID:       teamID,
				AgentID:      agentID,
				Spec:         spec,
				SystemPrompt: prompt,
				Tools:        allowed,
				Messages: []llm.Message{
					{Role: llm.RoleUser, Content: message.Content},
				},
			})
			if err != nil {
				slog.Warn("Mention response failed", "agent_id", agentID, "error", err)
				return
			}
			if result.FinalText == "" {
				return
			}
			if _, err := chatService.SendMessage(runCtx, teamID, channelID, "agent", agentID, result.FinalText); err != nil {
				slog.Warn("Failed to post mention reply", "agent_id", agentID, "error", err)
			}
		}()
	})

	// 10. Heartbeat scheduler and meeting orchestrator.
	heartbeats := scheduler.New(agentService, teamService, creditService, chatService,
		activityService, router, runner, cfg.Settings.HostedMode)
	heartbeats.Start(ctx)

	meetings := meeting.New(dbClient.Client, agentService, creditService, router, llmClient, eventPublisher)
	meetings.Start(ctx)

	var transcriber *llm.TranscriptionClient
	if cfg.Settings.TranscriptionAPIKey != "" {
		transcriber = llm.NewTranscriptionClient()
	}

	// 11. HTTP server.
	httpServer := api.NewServer(api.Services{
		Teams:         teamService,
		Agents:        agentService,
		Tasks:         taskService,
		Goals:         goalService,
		Approvals:     approvalService,
		Chat:          chatService,
		Notifications: notificationService,
		Sor:           sorService,
		Credits:       creditService,
		Activity:      activityService,
		Credentials:   credentialService,
	}, api.Deps{
		Config:      cfg,
		DB:          dbClient,
		Verifier:    verifier,
		KB:          kbService,
		Workspace:   store,
		Skills:      skillsLib,
		Registry:    registry,
		Runner:      runner,
		Resolver:    router,
		Scheduler:   heartbeats,
		Meetings:    meetings,
		Transcriber: transcriber,
		ConnManager: connManager,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	stats := cfg.Stats()
	slog.Info("crewd started",
		"providers", stats.Providers,
		"models", stats.Models)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop producing work before tearing the API down.
	heartbeats.Stop()
	slog.Info("Scheduler stopped")

	meetings.Shutdown()
	slog.Info("Meetings ended")

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
