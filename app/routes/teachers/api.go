package teachers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

type teacherRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Specialty   *string `json:"specialty,omitempty"`
}

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

// GetTeacherAPI returns one teacher with the groups they are assigned to.
func GetTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")

	teacher, err := database.GetTeacherByID(config.GetDB(), teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	groups, err := database.GetGroupsForTeacher(config.GetDB(), teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher groups"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"teacher": teacher,
			"groups":  groups,
		},
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.Teacher{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Specialty:   req.Specialty,
	}

	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		if err == database.ErrDuplicateEmail {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    teacher,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	teacher := &models.Teacher{
		ID:          teacherID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Specialty:   req.Specialty,
	}

	if err := database.UpdateTeacher(config.GetDB(), teacher); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")

	if err := database.DeleteTeacher(config.GetDB(), teacherID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}

	return c.JSON(fiber.Map{"success": true})
}
