package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)

	dashboardAPI := app.Group("/api/dashboard")
	dashboardAPI.Use(auth.AuthMiddleware)

	// Web routes
	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - Torii",
			"CurrentPage": "dashboard",
		})
	})

	// API routes
	dashboardAPI.Get("/stats", GetDashboardStatsAPI)
}
