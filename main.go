package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/goodcents/goodcents-api/config"
	"github.com/goodcents/goodcents-api/handlers"
	"github.com/goodcents/goodcents-api/middleware"
	"github.com/goodcents/goodcents-api/models"
	"github.com/goodcents/goodcents-api/routes"
	"github.com/goodcents/goodcents-api/services"
	"github.com/goodcents/goodcents-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Front-ends expect plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	catalogue := models.DefaultCatalogue()
	settings := services.NewSettingsStore(models.Settings{
		RoundupsEnabled:    true,
		AICharitySelection: true,
		RoundToPound:       true,
		MonthlyCap:         false,
	})
	ledger := services.NewLedger(openingAccount(), seedTransactions(time.Now()))

	local := services.NewLocalSelector()
	remote := services.NewClaudeSelector(services.ClaudeSelectorOpts{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.ClaudeModel,
		MaxTokens: cfg.ClaudeMaxTokens,
		Timeout:   cfg.ClaudeTimeout,
	}, catalogue, local)

	payments := services.NewPaymentService(ledger, settings, local, remote)

	feedHandler := handlers.NewFeedHandler()
	paymentHandler := handlers.NewPaymentHandler(payments, feedHandler)
	accountHandler := handlers.NewAccountHandler(payments, catalogue)
	settingsHandler := handlers.NewSettingsHandler(settings)
	pagesHandler := handlers.NewPagesHandler(cfg.WebDir, remote.Configured())

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:  []string{cfg.FrontendURL, "http://localhost:8000", "http://127.0.0.1:8000"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		start := time.Now()
		c.Next()
		utils.Debug("📨 %s %s - %d (%v) [%s]",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), requestID[:8])
	})

	router.Use(middleware.RateLimiter())

	routes.SetupPageRoutes(router, pagesHandler)
	routes.SetupAPIRoutes(router.Group("/api"), paymentHandler, accountHandler, settingsHandler, feedHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"ai":      remote.Configured(),
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	utils.Info("🚀 GoodCents demo server starting on port %s (%s mode)", cfg.Port, utils.GetEnvMode())
	utils.Info("   Claude AI: %s", aiStatus(remote.Configured()))
	utils.Info("   API key: %s", utils.MaskKey(cfg.AnthropicAPIKey))
	utils.Info("   Demo:     http://localhost:%s/demo", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func aiStatus(enabled bool) string {
	if enabled {
		return "ready"
	}
	return "disabled (add ANTHROPIC_API_KEY for real charity selection)"
}

// openingAccount is the demo account every fresh process starts with.
func openingAccount() models.Account {
	return models.Account{
		Balance:        decimal.RequireFromString("2847.93"),
		MonthlyDonated: decimal.RequireFromString("1.59"),
	}
}

// seedTransactions gives the bank app a believable history on first load.
func seedTransactions(now time.Time) []models.Transaction {
	charity := func(name string) *string { return &name }
	return []models.Transaction{
		{
			ID: 4, Merchant: "Costa Coffee",
			Amount:  decimal.RequireFromString("4.65"),
			Roundup: decimal.RequireFromString("0.35"),
			Charity: charity("FareShare"), Type: "purchase", Confidence: 89,
			CreatedAt: now.Add(-2 * time.Minute),
		},
		{
			ID: 3, Merchant: "Amazon Books",
			Amount:  decimal.RequireFromString("23.99"),
			Roundup: decimal.RequireFromString("0.01"),
			Charity: charity("Teach First"), Type: "purchase", Confidence: 95,
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID: 2, Merchant: "Tesco Express",
			Amount:  decimal.RequireFromString("8.47"),
			Roundup: decimal.RequireFromString("0.53"),
			Charity: charity("FareShare"), Type: "purchase", Confidence: 87,
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID: 1, Merchant: "Uber",
			Amount:  decimal.RequireFromString("12.30"),
			Roundup: decimal.RequireFromString("0.70"),
			Charity: charity("Crisis"), Type: "purchase", Confidence: 92,
			CreatedAt: now.Add(-26 * time.Hour),
		},
	}
}
