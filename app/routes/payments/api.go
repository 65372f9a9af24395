package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
)

// RecordPaymentAPI appends a ledger entry. Amounts must be positive;
// there is no edit or delete path for payments, so a mistake is
// corrected by recording a compensating entry by hand.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type paymentRequest struct {
		StudentID     string  `json:"student_id" validate:"required,uuid"`
		EnrollmentID  string  `json:"enrollment_id" validate:"required,uuid"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash online"`
		ReceiptLink   *string `json:"receipt_link,omitempty" validate:"omitempty,url"`
	}

	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payment := &models.Payment{
		StudentID:     req.StudentID,
		EnrollmentID:  req.EnrollmentID,
		Amount:        req.Amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		ReceiptLink:   req.ReceiptLink,
	}

	if err := database.RecordPayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

func GetPaymentStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetPaymentStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment statistics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
