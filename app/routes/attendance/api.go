package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

// RecordSheetAPI saves one group's attendance sheet for one date.
// Re-submitting the same date overwrites the earlier statuses.
func RecordSheetAPI(c *fiber.Ctx) error {
	type sheetRequest struct {
		Date    string                     `json:"date" validate:"required"`
		Entries []database.AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
	}

	var req sheetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	recordedBy, _ := c.Locals("user_name").(string)

	if err := database.RecordAttendanceSheet(config.GetDB(), date, recordedBy, req.Entries); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record attendance"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true})
}

func GetSheetAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	dateStr := c.Query("date")

	if groupID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_id and date are required"})
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	rows, err := database.GetAttendanceForGroupDate(config.GetDB(), groupID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendance": rows,
		"count":      len(rows),
	})
}

func GetSummaryAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if groupID == "" || fromStr == "" || toStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_id, from and to are required"})
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "from must be YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "to must be YYYY-MM-DD"})
	}

	summary, err := database.GetAttendanceSummary(config.GetDB(), groupID, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance summary"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
