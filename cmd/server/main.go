package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/aggregate"
	"github.com/mamadbah2/warehouse/internal/config"
	"github.com/mamadbah2/warehouse/internal/repository"
	"github.com/mamadbah2/warehouse/internal/repository/mongodb"
	"github.com/mamadbah2/warehouse/internal/repository/sheets"
	"github.com/mamadbah2/warehouse/internal/repository/static"
	"github.com/mamadbah2/warehouse/internal/scheduler"
	"github.com/mamadbah2/warehouse/internal/server/handlers"
	"github.com/mamadbah2/warehouse/internal/server/router"
	chatsvc "github.com/mamadbah2/warehouse/internal/service/chat"
	commandsvc "github.com/mamadbah2/warehouse/internal/service/commands"
	reportingsvc "github.com/mamadbah2/warehouse/internal/service/reporting"
	submissionsvc "github.com/mamadbah2/warehouse/internal/service/submission"
	whatsappsvc "github.com/mamadbah2/warehouse/internal/service/whatsapp"
	"github.com/mamadbah2/warehouse/internal/shelflife"
	"github.com/mamadbah2/warehouse/pkg/clients/anthropic"
	"github.com/mamadbah2/warehouse/pkg/clients/chatwebhook"
	whatsappclient "github.com/mamadbah2/warehouse/pkg/clients/whatsapp"
	"github.com/mamadbah2/warehouse/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)
	gin.SetMode(gin.ReleaseMode)

	store, err := buildStore(cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init datasource", zap.Error(err))
	}

	reportingSvc := reportingsvc.NewService(store, shelflife.NewEstimator(nil, anchorFrom(cfg.ShelfLife)), overviewSettings(cfg.Overview), logger.Named(baseLogger, "svc.reporting"))
	submissionSvc := submissionsvc.NewService(store, logger.Named(baseLogger, "svc.submission"))
	chatSvc := chatsvc.NewService(buildResponder(cfg, reportingSvc, baseLogger), cfg.Chat.Timeout, logger.Named(baseLogger, "svc.chat"))

	h := router.Handlers{
		Dashboard:  handlers.NewDashboardHandler(reportingSvc, logger.Named(baseLogger, "handlers.dashboard")),
		Chat:       handlers.NewChatHandler(chatSvc, logger.Named(baseLogger, "handlers.chat")),
		Submission: handlers.NewSubmissionHandler(submissionSvc, logger.Named(baseLogger, "handlers.submission")),
	}

	var saver scheduler.SnapshotSaver
	if cfg.MongoDB.URI != "" {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()

		saver = mongoRepo
		h.Snapshot = handlers.NewSnapshotHandler(mongoRepo, logger.Named(baseLogger, "handlers.snapshot"))
	} else {
		baseLogger.Warn("MONGODB_URI not set, snapshot archive disabled")
	}

	var notifier scheduler.Notifier
	if cfg.WhatsApp.Enabled() {
		dispatcher := commandsvc.NewService(reportingSvc, chatSvc, logger.Named(baseLogger, "svc.commands"))
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsappclient.NewClient(cfg.WhatsApp), dispatcher, logger.Named(baseLogger, "svc.whatsapp"))

		notifier = messagingSvc
		h.Webhook = handlers.NewWebhookHandler(messagingSvc, logger.Named(baseLogger, "handlers.whatsapp"))
	} else {
		baseLogger.Warn("WHATSAPP_TOKEN not set, whatsapp channel disabled")
	}

	if saver != nil || notifier != nil {
		sched, err := scheduler.NewScheduler(cfg.Snapshot, cfg.WhatsApp.ManagerID, reportingSvc, saver, notifier, logger.Named(baseLogger, "scheduler"))
		if err != nil {
			baseLogger.Fatal("failed to init scheduler", zap.Error(err))
		}
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	engine := router.New(h, logger.Named(baseLogger, "router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Chat.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("data_source", cfg.Data.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildStore(cfg *config.Config, base *zap.Logger) (repository.Store, error) {
	if cfg.Data.Source != config.SourceSheets {
		return static.NewStore(logger.Named(base, "repo.static")), nil
	}

	client, err := sheets.NewGoogleSheetClient(context.Background(), cfg.Sheets, logger.Named(base, "repo.sheets"))
	if err != nil {
		return nil, err
	}
	return sheets.NewSource(client, logger.Named(base, "repo.sheets")), nil
}

// buildResponder prefers the webhook, then the assistant, then the canned reply.
func buildResponder(cfg *config.Config, briefer chatsvc.Briefer, base *zap.Logger) chatsvc.Responder {
	switch {
	case cfg.Chat.WebhookURL != "":
		base.Info("chat relayed to webhook")
		return chatsvc.NewWebhookResponder(chatwebhook.NewClient(cfg.Chat.WebhookURL))
	case cfg.AI.AnthropicKey != "":
		base.Info("chat answered by anthropic assistant", zap.String("model", cfg.AI.Model))
		return chatsvc.NewAssistantResponder(anthropic.NewClient(cfg.AI.AnthropicKey, cfg.AI.Model), briefer)
	default:
		base.Warn("no chat backend configured, replies are canned")
		return chatsvc.StaticResponder{}
	}
}

func anchorFrom(cfg config.ShelfLifeConfig) shelflife.Anchor {
	if cfg.Anchor == config.AnchorBalanceDate {
		return shelflife.AnchorBalanceDate
	}
	return shelflife.AnchorToday
}

func overviewSettings(cfg config.OverviewConfig) aggregate.OverviewSettings {
	return aggregate.OverviewSettings{
		Onground:              cfg.Onground,
		PredictedOutbound:     cfg.PredictedOutbound,
		InventoryTarget:       cfg.InventoryTarget,
		OperationCostPerDay:   cfg.OperationCostPerDay,
		OperationCostPerMonth: cfg.OperationCostPerMonth,
	}
}
