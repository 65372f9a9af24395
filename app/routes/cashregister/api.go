package cashregister

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yanis-san/torii-auto/app/config"
	"github.com/yanis-san/torii-auto/app/database"
	"github.com/yanis-san/torii-auto/app/models"
	"github.com/yanis-san/torii-auto/app/tuition"
)

// bigWithdrawalThreshold flags signatures worth a second look in the
// audit views.
const bigWithdrawalThreshold = 20000

func GetBalanceAPI(c *fiber.Ctx) error {
	balance, err := database.CurrentCashBalance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute cash balance"})
	}

	last, err := database.GetLastCheckpoint(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch last signature"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"current_balance": balance,
			"last_signature":  last,
		},
	})
}

// SignCheckpointAPI records a counted register signature. The signer
// defaults to the authenticated user; a free-text override is kept for
// signatures done on behalf of someone else.
func SignCheckpointAPI(c *fiber.Ctx) error {
	type signRequest struct {
		SignedBy    string  `json:"signed_by"`
		AmountTaken float64 `json:"amount_taken" validate:"gte=0"`
		Notes       *string `json:"notes,omitempty"`
	}

	var req signRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	signedBy := req.SignedBy
	if signedBy == "" {
		signedBy, _ = c.Locals("user_name").(string)
	}
	if signedBy == "" || signedBy == models.SystemSigner {
		return c.Status(400).JSON(fiber.Map{"error": "A signer name is required"})
	}

	reset, err := database.SignCheckpoint(config.GetDB(), signedBy, req.AmountTaken, req.Notes)
	if err != nil {
		if err == tuition.ErrOverWithdrawal || err == tuition.ErrNegativeWithdrawal {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to sign checkpoint"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    reset,
	})
}

func GetHistoryAPI(c *fiber.Ctx) error {
	history, err := database.GetCheckpointHistory(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch signature history"})
	}

	var totalTaken float64
	for _, sig := range history {
		totalTaken += sig.AmountTaken
	}
	var averageTaken float64
	if len(history) > 0 {
		averageTaken = totalTaken / float64(len(history))
	}

	return c.JSON(fiber.Map{
		"signatures":    history,
		"count":         len(history),
		"total_taken":   totalTaken,
		"average_taken": averageTaken,
	})
}

// signatureDelay measures the gap between two consecutive signatures.
type signatureDelay struct {
	Signature         time.Time `json:"signature"`
	SignedBy          string    `json:"signed_by"`
	PreviousSignature time.Time `json:"previous_signature"`
	DelayDays         int       `json:"delay_days"`
}

// GetStatsAPI mirrors the audit views of the tracking screen: recent
// signatures, big withdrawals, zero-withdrawal verifications and the
// delays between consecutive signatures.
func GetStatsAPI(c *fiber.Ctx) error {
	history, err := database.GetCheckpointHistory(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch signature history"})
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var recent, bigWithdrawals, verifications []*models.CashRegisterReset
	for _, sig := range history {
		if sig.ResetDate.After(sevenDaysAgo) {
			recent = append(recent, sig)
		}
		if sig.AmountTaken > bigWithdrawalThreshold {
			bigWithdrawals = append(bigWithdrawals, sig)
		}
		if sig.AmountTaken == 0 {
			verifications = append(verifications, sig)
		}
	}

	// history is newest first, so each entry's predecessor is the next one
	var delays []signatureDelay
	var totalDelayDays int
	for i := 0; i+1 < len(history); i++ {
		current, previous := history[i], history[i+1]
		days := int(current.ResetDate.Sub(previous.ResetDate).Hours() / 24)
		delays = append(delays, signatureDelay{
			Signature:         current.ResetDate,
			SignedBy:          current.ResetBy,
			PreviousSignature: previous.ResetDate,
			DelayDays:         days,
		})
		totalDelayDays += days
	}
	var averageDelayDays float64
	if len(delays) > 0 {
		averageDelayDays = float64(totalDelayDays) / float64(len(delays))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"recent":             recent,
			"big_withdrawals":    bigWithdrawals,
			"verifications":      verifications,
			"delays":             delays,
			"average_delay_days": averageDelayDays,
		},
	})
}

func GetSignerStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetSignerStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch signer statistics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
