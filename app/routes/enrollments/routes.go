package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupEnrollmentsRoutes sets up the enrollments routes
func SetupEnrollmentsRoutes(app *fiber.App) {
	enrollments := app.Group("/enrollments")
	enrollments.Use(auth.AuthMiddleware)

	enrollmentsAPI := app.Group("/api/enrollments")
	enrollmentsAPI.Use(auth.AuthMiddleware)

	// Web routes
	enrollments.Get("/", func(c *fiber.Ctx) error {
		return c.Render("enrollments/index", fiber.Map{
			"Title":       "Enrollments & Payments - Torii",
			"CurrentPage": "enrollments",
		})
	})

	// API routes
	enrollmentsAPI.Get("/", GetEnrollmentsAPI)
	enrollmentsAPI.Get("/quote", QuoteFeeAPI)
	enrollmentsAPI.Post("/", CreateEnrollmentAPI)
	enrollmentsAPI.Get("/:id/payments", GetEnrollmentPaymentsAPI)
	enrollmentsAPI.Delete("/:id", auth.AdminRequired, DeleteEnrollmentAPI)
}
