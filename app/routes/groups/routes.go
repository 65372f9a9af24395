package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/routes/auth"
)

// SetupGroupsRoutes sets up the groups routes
func SetupGroupsRoutes(app *fiber.App) {
	groups := app.Group("/groups")
	groups.Use(auth.AuthMiddleware)

	groupsAPI := app.Group("/api/groups")
	groupsAPI.Use(auth.AuthMiddleware)

	// Web routes
	groups.Get("/", func(c *fiber.Ctx) error {
		return c.Render("groups/index", fiber.Map{
			"Title":       "Groups - Torii",
			"CurrentPage": "groups",
		})
	})

	// API routes
	groupsAPI.Get("/", GetGroupsAPI)
	groupsAPI.Get("/:id", GetGroupAPI)
	groupsAPI.Post("/", CreateGroupAPI)
	groupsAPI.Put("/:id", UpdateGroupAPI)
	groupsAPI.Delete("/:id", auth.AdminRequired, DeleteGroupAPI)
	groupsAPI.Post("/:id/teachers", AssignTeacherAPI)
	groupsAPI.Delete("/:id/teachers/:teacherId", RemoveTeacherAPI)

	// Languages lookup used by the group forms
	languagesAPI := app.Group("/api/languages")
	languagesAPI.Use(auth.AuthMiddleware)
	languagesAPI.Get("/", GetLanguagesAPI)
}
