// Package router wires the HTTP routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/server/handlers"
)

// Handlers groups the route handlers. Snapshot and Webhook are optional and
// their routes are only mounted when set.
type Handlers struct {
	Dashboard  *handlers.DashboardHandler
	Chat       *handlers.ChatHandler
	Submission *handlers.SubmissionHandler
	Snapshot   *handlers.SnapshotHandler
	Webhook    *handlers.WebhookHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/overview", h.Dashboard.Overview)
		api.GET("/overview/daily", h.Dashboard.Daily)

		api.GET("/health-check/batches", h.Dashboard.Batches)
		api.GET("/health-check/materials", h.Dashboard.Materials)
		api.GET("/health-check/summary", h.Dashboard.HealthSummary)
		api.GET("/inventory/valuation", h.Dashboard.Valuation)

		api.GET("/credit-scoring/customers", h.Dashboard.Customers)
		api.GET("/credit-scoring/summary", h.Dashboard.CustomerSummary)

		api.GET("/chat/greeting", h.Chat.Greeting)
		api.POST("/chat", h.Chat.Send)

		submissions := api.Group("/submissions")
		submissions.POST("/inbound", h.Submission.Inbound)
		submissions.POST("/outbound", h.Submission.Outbound)
		submissions.GET("/inventory/draft", h.Submission.Draft)
		submissions.POST("/inventory/draft", h.Submission.AddDraftItem)
		submissions.DELETE("/inventory/draft", h.Submission.DiscardDraft)
		submissions.DELETE("/inventory/draft/:id", h.Submission.RemoveDraftItem)
		submissions.POST("/inventory", h.Submission.Inventory)

		if h.Snapshot != nil {
			api.GET("/snapshots/latest", h.Snapshot.Latest)
		}
	}

	if h.Webhook != nil {
		r.GET("/webhook", h.Webhook.Verify)
		r.POST("/webhook", h.Webhook.Receive)
		r.POST("/send-message", h.Webhook.SendMessage)
	}

	logger.Info("router initialized",
		zap.Bool("snapshots", h.Snapshot != nil),
		zap.Bool("whatsapp", h.Webhook != nil))

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
