package students

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	search := c.Query("search")

	var students []*models.Student
	var err error
	if search != "" {
		students, err = database.SearchStudents(config.GetDB(), search)
	} else {
		students, err = database.GetStudents(config.GetDB())
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// GetStudentAPI returns one student with enrollments and payment history.
func GetStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	enrollments, err := database.GetEnrollmentsForStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	payments, err := database.GetPaymentsForStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student":     student,
			"enrollments": enrollments,
			"payments":    payments,
			"total_paid":  totalPaid,
		},
	})
}

type studentRequest struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	IDDocumentLink *string `json:"id_document_link,omitempty" validate:"omitempty,url"`
	BirthDate      *string `json:"birth_date,omitempty"`
	YearShort      int     `json:"year_short" validate:"omitempty,min=20,max=99"`
}

func (r *studentRequest) parseBirthDate() (*time.Time, error) {
	if r.BirthDate == nil || *r.BirthDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	birthDate, err := req.parseBirthDate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Birth date must be YYYY-MM-DD"})
	}

	// Default the admission year to the current calendar year, short form.
	yearShort := req.YearShort
	if yearShort == 0 {
		yearShort = time.Now().Year() % 100
	}

	student := &models.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		IDDocumentLink: req.IDDocumentLink,
		BirthDate:      birthDate,
		YearShort:      yearShort,
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		if err == database.ErrDuplicateEmail {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	birthDate, err := req.parseBirthDate()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Birth date must be YYYY-MM-DD"})
	}

	student := &models.Student{
		ID:             studentID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		IDDocumentLink: req.IDDocumentLink,
		BirthDate:      birthDate,
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		if err == database.ErrDuplicateEmail {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// MarkRegistrationFeePaidAPI flags the yearly registration fee as settled
// outside the payment flow, for fees collected before the system existed
// or waived by the director. Re-marking a paid student changes nothing.
func MarkRegistrationFeePaidAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := database.MarkRegistrationFeePaid(config.GetDB(), studentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark registration fee"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteStudentAPI removes the row outright; there is no undo.
func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := database.DeleteStudent(config.GetDB(), studentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true})
}
