package academic

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupAcademicRoutes sets up the academic year routes
func SetupAcademicRoutes(app *fiber.App) {
	academicAPI := app.Group("/api/academic-years")
	academicAPI.Use(auth.AuthMiddleware)

	academicAPI.Get("/", GetAcademicYearsAPI)
	academicAPI.Post("/", auth.AdminRequired, CreateAcademicYearAPI)
	academicAPI.Post("/:id/rollover", auth.AdminRequired, RolloverAPI)
}
