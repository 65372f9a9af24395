package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

func GetAcademicYearsAPI(c *fiber.Ctx) error {
	years, err := database.GetAcademicYears(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academic years"})
	}

	return c.JSON(fiber.Map{
		"academic_years": years,
		"count":          len(years),
	})
}

func CreateAcademicYearAPI(c *fiber.Ctx) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if year.Name == "" || year.StartDate.IsZero() || year.EndDate.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Name, start date and end date are required"})
	}
	if !year.EndDate.After(year.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := database.CreateAcademicYear(config.GetDB(), &year); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create academic year"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    year,
	})
}

// RolloverAPI makes the given year current and clears every student's
// registration-fee flag. This is the only way that flag is ever unset.
func RolloverAPI(c *fiber.Ctx) error {
	yearID := c.Params("id")

	if err := database.RolloverAcademicYear(config.GetDB(), yearID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic year not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to roll over academic year"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Academic year rolled over; registration fees reset",
	})
}
