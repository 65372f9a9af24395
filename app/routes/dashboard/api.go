package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
)

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}

	byLanguage, err := database.GetStudentsByLanguage(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch language breakdown"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"stats":       stats,
			"by_language": byLanguage,
		},
	})
}
