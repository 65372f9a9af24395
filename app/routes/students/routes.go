package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	// Web routes
	students.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title":       "Students - Torii",
			"CurrentPage": "students",
		})
	})

	// API routes
	studentsAPI.Get("/", GetStudentsAPI)
	studentsAPI.Get("/:id", GetStudentAPI)
	studentsAPI.Post("/", CreateStudentAPI)
	studentsAPI.Put("/:id", UpdateStudentAPI)
	studentsAPI.Post("/:id/registration-fee", auth.AdminRequired, MarkRegistrationFeePaidAPI)
	studentsAPI.Delete("/:id", auth.AdminRequired, DeleteStudentAPI)
}
