package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/yanis-san/torii-auto/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05)
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				checkAcademicYearRollover(db)
				logCashBalance(db)
			}
		}
	}()
}

// checkAcademicYearRollover warns when the current academic year has
// ended but nobody has performed the rollover yet. The rollover itself
// stays a deliberate admin action; it is never run automatically.
func checkAcademicYearRollover(db *sql.DB) {
	year, err := database.GetCurrentAcademicYear(db)
	if err == sql.ErrNoRows {
		log.Println("Warning: no current academic year is configured")
		return
	}
	if err != nil {
		log.Printf("Error checking academic year: %v", err)
		return
	}

	if year.HasEnded() {
		log.Printf("Warning: academic year %s ended on %s but has not been rolled over",
			year.Name, year.EndDate.Format("2006-01-02"))
	}
}

func logCashBalance(db *sql.DB) {
	balance, err := database.CurrentCashBalance(db)
	if err != nil {
		log.Printf("Error computing cash balance: %v", err)
		return
	}
	log.Printf("End-of-day cash register balance: %.0f DA", balance)
}
