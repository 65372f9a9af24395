package enrollments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/tuition"
)

func GetEnrollmentsAPI(c *fiber.Ctx) error {
	enrollments, err := database.GetEnrollmentsWithDetails(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

// QuoteFeeAPI computes what an enrollment would cost before it is
// created, so the form can show the breakdown the way the paper
// price list does.
func QuoteFeeAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	studentID := c.Query("student_id")
	hours := c.QueryInt("hours", tuition.DefaultHours)
	eraOverride := c.Query("pricing_era")

	if groupID == "" || studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_id and student_id are required"})
	}

	group, err := database.GetGroupByID(config.GetDB(), groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	registrationFeePaid, err := database.IsRegistrationFeePaid(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	era := group.PricingEra()
	if eraOverride != "" {
		era = models.PricingEra(eraOverride)
	}

	baseFee := tuition.CalculateCourseFee(group.Language.Name, group.Mode, era, hours)
	if baseFee == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No price configured for this language and mode"})
	}

	totalFee, includesRegistrationFee := tuition.ComputeTotalFee(baseFee, registrationFeePaid)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"base_course_fee":           baseFee,
			"registration_fee":          tuition.RegistrationFee,
			"includes_registration_fee": includesRegistrationFee,
			"total_fee":                 totalFee,
			"full_payment_required":     group.Mode.IsIndividual() && group.Mode.IsOnline(),
		},
	})
}

func CreateEnrollmentAPI(c *fiber.Ctx) error {
	type createRequest struct {
		StudentID     string  `json:"student_id" validate:"required,uuid"`
		GroupID       string  `json:"group_id" validate:"required,uuid"`
		Level         int     `json:"level" validate:"required,min=1"`
		Hours         int     `json:"hours" validate:"omitempty,min=1"`
		PricingEra    *string `json:"pricing_era,omitempty" validate:"omitempty,oneof=old new"`
		FirstPayment  float64 `json:"first_payment" validate:"gte=0"`
		PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=cash online"`
		ReceiptLink   *string `json:"receipt_link,omitempty" validate:"omitempty,url"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	method := models.CashPayment
	if req.PaymentMethod != "" {
		method = models.PaymentMethod(req.PaymentMethod)
	}

	var eraOverride *models.PricingEra
	if req.PricingEra != nil {
		era := models.PricingEra(*req.PricingEra)
		eraOverride = &era
	}

	enrollment, err := database.CreateEnrollment(config.GetDB(), database.NewEnrollment{
		StudentID:          req.StudentID,
		GroupID:            req.GroupID,
		Level:              req.Level,
		Hours:              req.Hours,
		PricingEraOverride: eraOverride,
		FirstPayment:       req.FirstPayment,
		PaymentMethod:      method,
		ReceiptLink:        req.ReceiptLink,
	})
	if err != nil {
		if err == database.ErrUnknownPricing {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student or group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create enrollment"})
	}

	message := "Enrollment created (payment below activation threshold)"
	if enrollment.Active {
		message = "Enrollment created and activated"
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    enrollment,
	})
}

func GetEnrollmentPaymentsAPI(c *fiber.Ctx) error {
	enrollmentID := c.Params("id")

	payments, err := database.GetPaymentsForEnrollment(config.GetDB(), enrollmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	totalPaid, err := database.TotalPaidForEnrollment(config.GetDB(), enrollmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute total paid"})
	}

	return c.JSON(fiber.Map{
		"payments":   payments,
		"count":      len(payments),
		"total_paid": totalPaid,
	})
}

func DeleteEnrollmentAPI(c *fiber.Ctx) error {
	enrollmentID := c.Params("id")

	if err := database.DeleteEnrollment(config.GetDB(), enrollmentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}

	return c.JSON(fiber.Map{"success": true})
}
