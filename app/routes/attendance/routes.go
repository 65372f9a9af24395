package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupAttendanceRoutes sets up the attendance routes
func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)

	attendanceAPI := app.Group("/api/attendance")
	attendanceAPI.Use(auth.AuthMiddleware)

	// Web routes
	attendance.Get("/", func(c *fiber.Ctx) error {
		return c.Render("attendance/index", fiber.Map{
			"Title":       "Attendance - Torii",
			"CurrentPage": "attendance",
		})
	})

	// API routes
	attendanceAPI.Get("/", GetSheetAPI)
	attendanceAPI.Get("/summary", GetSummaryAPI)
	attendanceAPI.Post("/", RecordSheetAPI)
}
