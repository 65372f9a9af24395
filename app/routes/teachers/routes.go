package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupTeachersRoutes sets up the teachers routes
func SetupTeachersRoutes(app *fiber.App) {
	teachers := app.Group("/teachers")
	teachers.Use(auth.AuthMiddleware)

	teachersAPI := app.Group("/api/teachers")
	teachersAPI.Use(auth.AuthMiddleware)

	// Web routes
	teachers.Get("/", func(c *fiber.Ctx) error {
		return c.Render("teachers/index", fiber.Map{
			"Title":       "Teachers - Torii",
			"CurrentPage": "teachers",
		})
	})

	// API routes
	teachersAPI.Get("/", GetTeachersAPI)
	teachersAPI.Get("/:id", GetTeacherAPI)
	teachersAPI.Post("/", CreateTeacherAPI)
	teachersAPI.Put("/:id", UpdateTeacherAPI)
	teachersAPI.Delete("/:id", auth.AdminRequired, DeleteTeacherAPI)
}
