package groups

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

type groupRequest struct {
	Name           string  `json:"name" validate:"required"`
	LanguageID     string  `json:"language_id" validate:"required,uuid"`
	Level          int     `json:"level" validate:"required,min=1"`
	Mode           string  `json:"mode" validate:"required,oneof=online_group online_individual presential_group presential_individual"`
	DurationMonths int     `json:"duration_months" validate:"required,min=1"`
	MinStudents    int     `json:"min_students" validate:"required,min=1"`
	IsOldPricing   bool    `json:"is_old_pricing"`
	StartDate      *string `json:"start_date,omitempty"`
}

func GetGroupsAPI(c *fiber.Ctx) error {
	groups, err := database.GetGroupsWithCounts(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}

	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(groups),
	})
}

func GetGroupAPI(c *fiber.Ctx) error {
	groupID := c.Params("id")

	group, err := database.GetGroupByID(config.GetDB(), groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	teachers, err := database.GetGroupTeachers(config.GetDB(), groupID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group teachers"})
	}
	group.Teachers = teachers

	return c.JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

func CreateGroupAPI(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Start date must be YYYY-MM-DD"})
		}
		startDate = &t
	}

	if _, err := database.GetLanguageByID(config.GetDB(), req.LanguageID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Language not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch language"})
	}

	group := &models.Group{
		Name:           req.Name,
		LanguageID:     req.LanguageID,
		Level:          req.Level,
		Mode:           models.GroupMode(req.Mode),
		DurationMonths: req.DurationMonths,
		MinStudents:    req.MinStudents,
		IsOldPricing:   req.IsOldPricing,
		StartDate:      startDate,
	}

	if err := database.CreateGroup(config.GetDB(), group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create group"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    group,
	})
}

func UpdateGroupAPI(c *fiber.Ctx) error {
	groupID := c.Params("id")

	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Start date must be YYYY-MM-DD"})
		}
		startDate = &t
	}

	group := &models.Group{
		ID:             groupID,
		Name:           req.Name,
		Level:          req.Level,
		DurationMonths: req.DurationMonths,
		MinStudents:    req.MinStudents,
		StartDate:      startDate,
	}

	if err := database.UpdateGroup(config.GetDB(), group); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update group"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteGroupAPI(c *fiber.Ctx) error {
	groupID := c.Params("id")

	if err := database.DeleteGroup(config.GetDB(), groupID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete group"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func AssignTeacherAPI(c *fiber.Ctx) error {
	groupID := c.Params("id")

	type assignRequest struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
	}
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.AssignTeacherToGroup(config.GetDB(), groupID, req.TeacherID); err != nil {
		if err == database.ErrTeacherAlreadyAssigned {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign teacher"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true})
}

func RemoveTeacherAPI(c *fiber.Ctx) error {
	groupID := c.Params("id")
	teacherID := c.Params("teacherId")

	if err := database.RemoveTeacherFromGroup(config.GetDB(), groupID, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove teacher"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func GetLanguagesAPI(c *fiber.Ctx) error {
	languages, err := database.GetLanguages(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch languages"})
	}

	return c.JSON(fiber.Map{
		"languages": languages,
		"count":     len(languages),
	})
}
