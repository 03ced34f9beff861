package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/goodcents/goodcents-api/handlers"
)

// SetupAPIRoutes registers the JSON API consumed by the two front-ends.
func SetupAPIRoutes(rg *gin.RouterGroup, payment *handlers.PaymentHandler, account *handlers.AccountHandler, settings *handlers.SettingsHandler, feed *handlers.FeedHandler) {
	rg.GET("/account", account.GetAccount)
	rg.GET("/transactions", account.GetTransactions)
	rg.GET("/charities", account.GetCharities)

	rg.GET("/settings", settings.GetSettings)
	rg.POST("/settings", settings.UpdateSettings)

	rg.POST("/payment", payment.ProcessPayment)

	rg.GET("/feed", feed.HandleWS)
}

// SetupPageRoutes registers the HTML pages.
func SetupPageRoutes(r *gin.Engine, pages *handlers.PagesHandler) {
	r.GET("/", pages.BankApp)
	r.GET("/bank", pages.BankApp)
	r.GET("/checkout", pages.Checkout)
	r.GET("/demo", pages.Demo)
}
