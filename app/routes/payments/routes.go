package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payments routes
func SetupPaymentsRoutes(app *fiber.App) {
	paymentsAPI := app.Group("/api/payments")
	paymentsAPI.Use(auth.AuthMiddleware)

	paymentsAPI.Post("/", RecordPaymentAPI)
	paymentsAPI.Get("/stats", GetPaymentStatsAPI)
}
