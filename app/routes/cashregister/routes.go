package cashregister

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupCashRegisterRoutes sets up the cash register tracking routes
func SetupCashRegisterRoutes(app *fiber.App) {
	register := app.Group("/cash-register")
	register.Use(auth.AuthMiddleware)

	registerAPI := app.Group("/api/cash-register")
	registerAPI.Use(auth.AuthMiddleware)

	// Web routes
	register.Get("/", func(c *fiber.Ctx) error {
		return c.Render("cashregister/index", fiber.Map{
			"Title":       "Cash Register - Torii",
			"CurrentPage": "cash-register",
		})
	})

	// API routes
	registerAPI.Get("/balance", GetBalanceAPI)
	registerAPI.Get("/history", GetHistoryAPI)
	registerAPI.Get("/stats", GetStatsAPI)
	registerAPI.Get("/by-person", GetSignerStatsAPI)
	registerAPI.Post("/sign", auth.AdminRequired, SignCheckpointAPI)
}
